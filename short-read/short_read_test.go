package shortread

import (
	"bytes"
	"errors"
	"io"
	"io/ioutil"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func read(t *testing.T, r io.Reader, size int) (string, error) {
	t.Helper()
	buf := make([]byte, size)
	n, err := r.Read(buf)
	return string(buf[:n]), err
}

func TestOneByteAtATime(t *testing.T) {
	sr, err := New(bytes.NewReader([]byte("abc")), Sequence(1, 1, 1))
	require.Empty(t, err)

	for _, want := range []string{"a", "b", "c"} {
		got, err := read(t, sr, 3)
		assert.Empty(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 3, sr.Steps())
}

func TestShorten(t *testing.T) {
	sr, err := New(bytes.NewReader([]byte("1234567890")), Sequence(2, 3, 4, 5, 6))
	require.Empty(t, err)

	for _, want := range []string{"12", "345", "6789", "0"} {
		got, err := read(t, sr, 10)
		assert.Empty(t, err)
		assert.Equal(t, want, got)
	}
	_, err = read(t, sr, 10)
	assert.Equal(t, io.EOF, err)
}

func TestSaturateIsDefault(t *testing.T) {
	sr, err := New(bytes.NewReader([]byte("abcdefgh")), Sequence(1, 3))
	require.Empty(t, err)

	for _, want := range []string{"a", "bcd", "efg", "h"} {
		got, err := read(t, sr, 8)
		assert.Empty(t, err)
		assert.Equal(t, want, got)
	}
}

func TestCycle(t *testing.T) {
	sr, err := New(bytes.NewReader([]byte("abcdefgh")), Sequence(1, 2).WithExhaustion(Cycle))
	require.Empty(t, err)

	for _, want := range []string{"a", "bc", "d", "ef", "g", "h"} {
		got, err := read(t, sr, 8)
		assert.Empty(t, err)
		assert.Equal(t, want, got)
	}
}

func TestStop(t *testing.T) {
	inner := bytes.NewReader([]byte("abcdef"))
	sr, err := New(inner, Sequence(2, 1).WithExhaustion(Stop))
	require.Empty(t, err)

	got, _ := read(t, sr, 8)
	assert.Equal(t, "ab", got)
	got, _ = read(t, sr, 8)
	assert.Equal(t, "c", got)

	got, err = read(t, sr, 8)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "", got)
	assert.Equal(t, 3, inner.Len(), "the inner stream is left untouched")

	_, err = read(t, sr, 8)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 2, sr.Steps(), "calls after the policy ran out take no step")
}

func TestFixed(t *testing.T) {
	sr, err := New(bytes.NewReader(bytes.Repeat([]byte{'z'}, 10)), Fixed(4))
	require.Empty(t, err)

	out, err := ioutil.ReadAll(sr)
	assert.Empty(t, err)
	assert.Equal(t, 10, len(out))
	assert.Equal(t, 4, sr.Steps(), "4 + 4 + 2 and a final EOF read")
}

func TestCallerBufferSmallerThanStep(t *testing.T) {
	sr, err := New(bytes.NewReader([]byte("abcdef")), Fixed(100))
	require.Empty(t, err)

	got, err := read(t, sr, 2)
	assert.Empty(t, err)
	assert.Equal(t, "ab", got)
}

func TestZeroStepForwardsEmptyRead(t *testing.T) {
	sr, err := New(bytes.NewReader([]byte("ab")), Sequence(0, 2))
	require.Empty(t, err)

	got, err := read(t, sr, 2)
	assert.Empty(t, err)
	assert.Equal(t, "", got)
	got, err = read(t, sr, 2)
	assert.Empty(t, err)
	assert.Equal(t, "ab", got)
}

func TestInnerShorterThanLimit(t *testing.T) {
	sr, err := New(iotest.OneByteReader(bytes.NewReader([]byte("abc"))), Fixed(3))
	require.Empty(t, err)

	got, err := read(t, sr, 3)
	assert.Empty(t, err)
	assert.Equal(t, "a", got)
}

func TestPropagatesError(t *testing.T) {
	broken := errors.New("stream reset")
	sr, err := New(iotest.ErrReader(broken), Fixed(1))
	require.Empty(t, err)

	_, err = read(t, sr, 4)
	assert.Equal(t, broken, err)
}

func TestInvalidPolicy(t *testing.T) {
	_, err := New(bytes.NewReader(nil), Sequence())
	assert.True(t, errors.Is(err, ErrEmptyPolicy))

	_, err = New(bytes.NewReader(nil), Sequence(1, -1))
	assert.True(t, errors.Is(err, ErrNegativeStep))

	_, err = New(bytes.NewReader(nil), Fixed(1).WithExhaustion(Exhaustion(9)))
	assert.True(t, errors.Is(err, ErrUnknownExhaustion))
}

func TestParseExhaustion(t *testing.T) {
	for _, e := range []Exhaustion{Saturate, Cycle, Stop} {
		parsed, err := ParseExhaustion(e.String())
		assert.Empty(t, err)
		assert.Equal(t, e, parsed)
	}
	_, err := ParseExhaustion("bounce")
	assert.True(t, errors.Is(err, ErrUnknownExhaustion))
}

func TestPolicyIsCopied(t *testing.T) {
	steps := []int{1, 2}
	p := Sequence(steps...)
	steps[0] = 9
	assert.Equal(t, []int{1, 2}, p.Steps())
	assert.Equal(t, Saturate, p.Exhaustion())
}
