package nullstream

import (
	"bytes"
	"io"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRead(t *testing.T) {
	s := New()
	for _, size := range []int{0, 1, 100} {
		n, err := s.Read(make([]byte, size))
		assert.Equal(t, 0, n)
		assert.Equal(t, io.EOF, err)
	}

	n, err := s.ReadAt(make([]byte, 10), 5)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)

	b, err := s.ReadByte()
	assert.Equal(t, byte(0), b)
	assert.Equal(t, io.EOF, err)

	out, err := ioutil.ReadAll(s)
	assert.Empty(t, err)
	assert.Empty(t, out)
}

func TestWrite(t *testing.T) {
	s := New()
	n, err := s.Write(bytes.Repeat([]byte{'x'}, 100))
	assert.Empty(t, err)
	assert.Equal(t, 100, n)

	n, err = io.WriteString(s, "discarded")
	assert.Empty(t, err)
	assert.Equal(t, 9, n)

	copied, err := io.Copy(s, strings.NewReader("some bytes"))
	assert.Empty(t, err)
	assert.Equal(t, int64(10), copied)
}

func TestSeek(t *testing.T) {
	s := New()
	cases := []struct {
		offset int64
		whence int
	}{
		{0, io.SeekStart},
		{42, io.SeekStart},
		{-7, io.SeekCurrent},
		{1 << 40, io.SeekEnd},
		{3, 99},
	}
	for _, c := range cases {
		abs, err := s.Seek(c.offset, c.whence)
		assert.Empty(t, err)
		assert.Equal(t, int64(0), abs)
	}
}

func TestCopyBetweenNullStreams(t *testing.T) {
	n, err := io.Copy(New(), New())
	assert.Empty(t, err)
	assert.Equal(t, int64(0), n)
	assert.Empty(t, New().Close())
}
