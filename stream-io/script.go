package streamio

import (
	"io"
)

// Script 按预先编排的分片大小吐出数据的内层流, 用于模拟管道/套接字的短读.
// 分片用完之后返回 io.EOF, 或者通过 Fail 指定的错误.
type Script struct {
	chunks [][]byte
	next   int
	calls  int
	err    error
}

// NewScript 返回Script实例.
// sizes 依次切分 data, 大小为0的分片表示一次 (0, nil) 的读取;
// 切分之后剩余的字节作为最后一个分片.
func NewScript(data []byte, sizes ...int) *Script {
	s := &Script{
		err: io.EOF,
	}
	for _, n := range sizes {
		if n > len(data) {
			n = len(data)
		}
		s.chunks = append(s.chunks, data[:n])
		data = data[n:]
	}
	if len(data) > 0 {
		s.chunks = append(s.chunks, data)
	}
	return s
}

// Fail 分片用完之后返回err而不是io.EOF.
func (s *Script) Fail(err error) *Script {
	s.err = err
	return s
}

// Read 每次调用最多返回一个分片; 调用方缓冲区不够时, 分片剩余部分留给下一次调用.
func (s *Script) Read(p []byte) (int, error) {
	s.calls++
	if s.next >= len(s.chunks) {
		return 0, s.err
	}
	if len(p) == 0 {
		return 0, nil
	}

	chunk := s.chunks[s.next]
	n := copy(p, chunk)
	if n < len(chunk) {
		s.chunks[s.next] = chunk[n:]
	} else {
		s.next++
	}
	return n, nil
}

// Calls 返回Read被调用的次数.
func (s *Script) Calls() int {
	return s.calls
}

// Remaining 返回尚未被读走的字节数.
func (s *Script) Remaining() int {
	total := 0
	for _, c := range s.chunks[s.next:] {
		total += len(c)
	}
	return total
}
