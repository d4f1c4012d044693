package throttle

import (
	"io"
	"time"

	"github.com/juju/ratelimit"
	"github.com/rs/zerolog/log"
)

const (
	__MinBurst = 1
)

// Cfg 限速配置
type Cfg struct {
	Rate  int64 // 每秒放行的字节数, 0表示不限速
	Burst int64 // 令牌桶容量, 默认与Rate相同
}

func (cfg *Cfg) bucket() *ratelimit.Bucket {
	if cfg == nil || cfg.Rate <= 0 {
		return nil
	}
	if cfg.Burst < __MinBurst {
		log.Warn().Msgf("burst %d is too small, fall back to rate %d", cfg.Burst, cfg.Rate)
		cfg.Burst = cfg.Rate
	}
	return ratelimit.NewBucketWithRate(float64(cfg.Rate), cfg.Burst)
}

// take 从令牌桶中取n个令牌, 如果当前令牌不足, 等待直到出现可用令牌.
func take(bucket *ratelimit.Bucket, n int) {
	if bucket == nil || n <= 0 {
		return
	}
	waitUntilAvailable := bucket.Take(int64(n))
	if waitUntilAvailable != 0 {
		log.Debug().Msgf("rate limit exceeds, wait %s until %d bytes turn to be available", waitUntilAvailable.String(), n)
		time.Sleep(waitUntilAvailable)
	}
}

// Reader 限制字节流速的io.Reader包装器, 用于模拟慢速的内层流.
type Reader struct {
	r      io.Reader
	bucket *ratelimit.Bucket
}

// NewReader 返回Reader实例.
func NewReader(r io.Reader, cfg *Cfg) *Reader {
	return &Reader{
		r:      r,
		bucket: cfg.bucket(),
	}
}

// Read 先读内层流, 再为读到的字节付出令牌.
func (tr *Reader) Read(p []byte) (int, error) {
	n, err := tr.r.Read(p)
	take(tr.bucket, n)
	return n, err
}

// Unwrap 返回内层流.
func (tr *Reader) Unwrap() io.Reader {
	return tr.r
}

// Writer 限制字节流速的io.Writer包装器.
type Writer struct {
	w      io.Writer
	bucket *ratelimit.Bucket
}

// NewWriter 返回Writer实例.
func NewWriter(w io.Writer, cfg *Cfg) *Writer {
	return &Writer{
		w:      w,
		bucket: cfg.bucket(),
	}
}

// Write 先为p付出令牌, 再写内层流.
func (tw *Writer) Write(p []byte) (int, error) {
	take(tw.bucket, len(p))
	return tw.w.Write(p)
}

// Unwrap 返回内层流.
func (tw *Writer) Unwrap() io.Writer {
	return tw.w
}
