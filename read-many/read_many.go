package readmany

import (
	"io"
)

// ReadMany 尽力把buf填满.
//
// 内层流返回短读时继续读取剩余部分, 只有某一次读取没有产出任何字节
// (io.EOF或(0, nil))才提前结束, 所以返回值小于len(buf)意味着流已经读完,
// 返回0意味着流在本次调用前就已经读完.
//
// 内层流的其他错误原样返回, 此时计数为0; 出错之前已经写入buf的字节仍然有效,
// 只是不再报告它们的数量.
func ReadMany(r io.Reader, buf []byte) (int, error) {
	pos := 0
	for pos < len(buf) {
		n, err := r.Read(buf[pos:])
		pos += n
		if err == io.EOF {
			return pos, nil
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			break
		}
	}
	return pos, nil
}

// ReadFull 与io.ReadFull语义一致: 一个字节都没读到时返回io.EOF,
// 读到一部分时返回io.ErrUnexpectedEOF.
func ReadFull(r io.Reader, buf []byte) error {
	n, err := ReadMany(r, buf)
	if err != nil {
		return err
	}
	switch {
	case n == len(buf):
		return nil
	case n == 0:
		return io.EOF
	default:
		return io.ErrUnexpectedEOF
	}
}

// Reader 以方法的形式提供ReadMany.
type Reader struct {
	r io.Reader
}

// NewReader 返回Reader实例.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (m *Reader) Read(p []byte) (int, error) {
	return m.r.Read(p)
}

// ReadMany 见包级函数ReadMany.
func (m *Reader) ReadMany(buf []byte) (int, error) {
	return ReadMany(m.r, buf)
}

// Unwrap 返回内层流.
func (m *Reader) Unwrap() io.Reader {
	return m.r
}
