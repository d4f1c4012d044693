package nullstream

import (
	"io"
)

// Stream 不做任何I/O的流.
//
// 读取时表现为一个永远为空的文件, 写入时总是成功并丢弃数据,
// Seek总是成功并返回0. 写入不会推进Seek的位置, 同时使用Write和Seek的调用方需要注意.
type Stream struct{}

var (
	_ io.ReadWriteSeeker = Stream{}
	_ io.ReaderAt        = Stream{}
	_ io.ByteReader      = Stream{}
	_ io.StringWriter    = Stream{}
	_ io.Closer          = Stream{}
)

// New 返回Stream实例.
func New() Stream {
	return Stream{}
}

// Read 总是立即返回io.EOF.
func (Stream) Read(p []byte) (int, error) {
	return 0, io.EOF
}

// ReadAt 总是立即返回io.EOF.
func (Stream) ReadAt(p []byte, off int64) (int, error) {
	return 0, io.EOF
}

// ReadByte 总是立即返回io.EOF.
func (Stream) ReadByte() (byte, error) {
	return 0, io.EOF
}

// Write 丢弃p并报告全部写入.
func (Stream) Write(p []byte) (int, error) {
	return len(p), nil
}

// WriteString 丢弃s并报告全部写入.
func (Stream) WriteString(s string) (int, error) {
	return len(s), nil
}

// Seek 忽略目标位置, 包括负数和越界的位置, 总是返回0.
func (Stream) Seek(offset int64, whence int) (int64, error) {
	return 0, nil
}

// Close 什么也不做.
func (Stream) Close() error {
	return nil
}
