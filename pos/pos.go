package pos

import (
	"io"
	"math"
)

// Tracker 记录经过包装器移动的字节偏移.
type Tracker struct {
	position uint64
}

// Position 返回当前偏移.
//
// 内层流支持Seek时, 该值与内层流的真实位置一致;
// 否则它是所有经过包装器的读写字节数之和.
// 出错时返回的字节数同样计入, 所以偏移停在出错之前.
func (t *Tracker) Position() uint64 {
	return t.position
}

func (t *Tracker) advance(n int) {
	if n <= 0 {
		return
	}
	if math.MaxUint64-t.position < uint64(n) {
		t.position = math.MaxUint64
		return
	}
	t.position += uint64(n)
}

func (t *Tracker) seek(s io.Seeker, offset int64, whence int) (int64, error) {
	abs, err := s.Seek(offset, whence)
	if err != nil {
		return abs, err
	}
	t.position = uint64(abs)
	return abs, nil
}

// Reader 统计读出字节数的io.Reader包装器.
type Reader struct {
	Tracker
	r io.Reader
}

// NewReader 返回Reader实例.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (pr *Reader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	pr.advance(n)
	return n, err
}

// Unwrap 返回内层流.
func (pr *Reader) Unwrap() io.Reader {
	return pr.r
}

// Writer 统计写入字节数的io.Writer包装器.
type Writer struct {
	Tracker
	w io.Writer
}

// NewWriter 返回Writer实例.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (pw *Writer) Write(p []byte) (int, error) {
	n, err := pw.w.Write(p)
	pw.advance(n)
	return n, err
}

// Unwrap 返回内层流.
func (pw *Writer) Unwrap() io.Writer {
	return pw.w
}

// ReadWriter 读写共用同一个偏移.
type ReadWriter struct {
	Tracker
	rw io.ReadWriter
}

// NewReadWriter 返回ReadWriter实例.
func NewReadWriter(rw io.ReadWriter) *ReadWriter {
	return &ReadWriter{rw: rw}
}

func (p *ReadWriter) Read(b []byte) (int, error) {
	n, err := p.rw.Read(b)
	p.advance(n)
	return n, err
}

func (p *ReadWriter) Write(b []byte) (int, error) {
	n, err := p.rw.Write(b)
	p.advance(n)
	return n, err
}

// Unwrap 返回内层流.
func (p *ReadWriter) Unwrap() io.ReadWriter {
	return p.rw
}

// ReadSeeker 偏移随Seek同步的io.ReadSeeker包装器.
type ReadSeeker struct {
	Tracker
	rs io.ReadSeeker
}

// NewReadSeeker 返回ReadSeeker实例, 初始偏移取自内层流的当前位置.
func NewReadSeeker(rs io.ReadSeeker) (*ReadSeeker, error) {
	p := &ReadSeeker{rs: rs}
	if _, err := p.seek(rs, 0, io.SeekCurrent); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ReadSeeker) Read(b []byte) (int, error) {
	n, err := p.rs.Read(b)
	p.advance(n)
	return n, err
}

// Seek 成功时偏移被设置为内层流返回的绝对位置, 失败时偏移不变.
func (p *ReadSeeker) Seek(offset int64, whence int) (int64, error) {
	return p.seek(p.rs, offset, whence)
}

// Unwrap 返回内层流.
func (p *ReadSeeker) Unwrap() io.ReadSeeker {
	return p.rs
}

// ReadWriteSeeker 同时支持读写和Seek的包装器.
type ReadWriteSeeker struct {
	Tracker
	rws io.ReadWriteSeeker
}

// NewReadWriteSeeker 返回ReadWriteSeeker实例, 初始偏移取自内层流的当前位置.
func NewReadWriteSeeker(rws io.ReadWriteSeeker) (*ReadWriteSeeker, error) {
	p := &ReadWriteSeeker{rws: rws}
	if _, err := p.seek(rws, 0, io.SeekCurrent); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ReadWriteSeeker) Read(b []byte) (int, error) {
	n, err := p.rws.Read(b)
	p.advance(n)
	return n, err
}

func (p *ReadWriteSeeker) Write(b []byte) (int, error) {
	n, err := p.rws.Write(b)
	p.advance(n)
	return n, err
}

// Seek 成功时偏移被设置为内层流返回的绝对位置, 失败时偏移不变.
func (p *ReadWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	return p.seek(p.rws, offset, whence)
}

// Unwrap 返回内层流.
func (p *ReadWriteSeeker) Unwrap() io.ReadWriteSeeker {
	return p.rws
}
