package shortread

import (
	"io"

	"github.com/gammazero/deque"
	"github.com/rs/zerolog/log"
)

// Reader 故意返回短读的io.Reader包装器, 用于测试调用方对短读的处理.
//
// 每次Read的上限取len(p)与策略下一个步长中的较小值, 内层流实际读到多少就返回多少.
// 内层流的错误原样返回, Reader本身只截短读取, 不制造错误.
type Reader struct {
	r          io.Reader
	q          deque.Deque
	exhaustion Exhaustion
	consumed   int
}

// New 返回Reader实例, 策略非法时返回错误.
func New(r io.Reader, policy Policy) (*Reader, error) {
	if err := policy.validate(); err != nil {
		return nil, err
	}
	sr := &Reader{
		r:          r,
		exhaustion: policy.exhaustion,
	}
	for _, s := range policy.steps {
		sr.q.PushBack(s)
	}
	return sr, nil
}

func (sr *Reader) next() (int, bool) {
	if sr.q.Len() == 0 {
		return 0, false
	}
	step := sr.q.PopFront().(int)
	switch sr.exhaustion {
	case Saturate:
		if sr.q.Len() == 0 {
			sr.q.PushBack(step)
		}
	case Cycle:
		sr.q.PushBack(step)
	case Stop:
	}
	return step, true
}

func (sr *Reader) Read(p []byte) (int, error) {
	step, ok := sr.next()
	if !ok {
		return 0, io.EOF
	}
	sr.consumed++

	limit := len(p)
	if step < limit {
		limit = step
		log.Debug().Int("requested", len(p)).Int("allowed", limit).Int("step", sr.consumed).Msg("injecting short read")
	}
	return sr.r.Read(p[:limit])
}

// Steps 返回已经消耗的策略步数.
func (sr *Reader) Steps() int {
	return sr.consumed
}

// Unwrap 返回内层流.
func (sr *Reader) Unwrap() io.Reader {
	return sr.r
}
