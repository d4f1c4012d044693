package eof

import (
	"io"

	"github.com/rs/zerolog/log"
)

// 与bufio保持一致, 连续空读超过此次数视为内层流无进展.
const __MaxConsecutiveEmptyReads = 100

// State 前瞻字节槽的状态.
type State int

const (
	// Empty 没有持有前瞻字节.
	Empty State = iota
	// Pending 持有一个尚未交给调用方的前瞻字节.
	Pending
	// Exhausted 最近一次探测碰到了流的末尾.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Pending:
		return "byte-pending"
	case Exhausted:
		return "stream-exhausted"
	default:
		return "unknown"
	}
}

// Checker 在不丢失数据的前提下判断内层流是否已经读完.
//
// 判断时最多从内层流预读一个字节, 之后的Read会先把这个字节交还给调用方,
// 所以经过Checker读出的字节序列与内层流完全一致.
type Checker struct {
	r       io.Reader
	state   State
	held    byte
	heldErr error // 与前瞻字节一起从内层流返回的错误
}

// New 返回Checker实例.
func New(r io.Reader) *Checker {
	return &Checker{r: r}
}

// Eof 判断是否已经到达流的末尾.
// 返回false时, 紧接着的Read一定能读到至少一个字节.
func (c *Checker) Eof() (bool, error) {
	switch c.state {
	case Pending:
		return false, nil
	default:
		return c.lookahead()
	}
}

func (c *Checker) lookahead() (bool, error) {
	var buf [1]byte
	for i := 0; i < __MaxConsecutiveEmptyReads; i++ {
		n, err := c.r.Read(buf[:])
		if n == 1 {
			// 错误随前瞻字节一起交给下一次Read
			c.held = buf[0]
			c.heldErr = err
			c.state = Pending
			return false, nil
		}
		if err == io.EOF {
			c.state = Exhausted
			return true, nil
		}
		if err != nil {
			return false, err
		}
	}
	log.Warn().Msgf("inner reader made no progress after %d empty reads", __MaxConsecutiveEmptyReads)
	return false, io.ErrNoProgress
}

// Read 先交还前瞻字节, 再从内层流读取.
// 探测时与前瞻字节一起读到的错误在交还该字节时原样返回.
func (c *Checker) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if c.state == Pending {
		p[0] = c.held
		err := c.heldErr
		c.heldErr = nil
		c.state = Empty
		return 1, err
	}

	c.state = Empty
	return c.r.Read(p)
}

// State 返回前瞻字节槽的当前状态.
func (c *Checker) State() State {
	return c.state
}

// Held 返回探测时预读的字节, 没有时第二个返回值为false.
func (c *Checker) Held() (byte, bool) {
	return c.held, c.state == Pending
}

// Unwrap 返回内层流. 若仍持有前瞻字节, 该字节不会回到内层流中.
func (c *Checker) Unwrap() io.Reader {
	return c.r
}
