package shortread

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPolicy       = errors.New("short read policy has no steps")
	ErrNegativeStep      = errors.New("short read policy step must not be negative")
	ErrUnknownExhaustion = errors.New("unknown exhaustion mode")
)

// Exhaustion 决定步长序列用完之后的行为.
type Exhaustion int

const (
	// Saturate 一直沿用最后一个步长 (默认).
	Saturate Exhaustion = iota
	// Cycle 从第一个步长重新开始.
	Cycle
	// Stop 之后的每次读取都报告流已结束, 不再访问内层流.
	Stop
)

func (e Exhaustion) String() string {
	switch e {
	case Saturate:
		return "saturate"
	case Cycle:
		return "cycle"
	case Stop:
		return "stop"
	default:
		return fmt.Sprintf("exhaustion(%d)", int(e))
	}
}

// ParseExhaustion 将名字解析为Exhaustion.
func ParseExhaustion(name string) (Exhaustion, error) {
	switch name {
	case "saturate", "":
		return Saturate, nil
	case "cycle":
		return Cycle, nil
	case "stop":
		return Stop, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownExhaustion, name)
}

// Policy 每次读取最多放行多少字节.
type Policy struct {
	steps      []int
	exhaustion Exhaustion
}

// Fixed 每次读取最多放行n字节.
func Fixed(n int) Policy {
	return Policy{steps: []int{n}}
}

// Sequence 按顺序依次使用steps作为每次读取的上限, 用完之后沿用最后一个.
func Sequence(steps ...int) Policy {
	return Policy{steps: append([]int(nil), steps...)}
}

// WithExhaustion 返回修改了用完之后行为的副本.
func (p Policy) WithExhaustion(e Exhaustion) Policy {
	p.exhaustion = e
	return p
}

// Exhaustion 返回步长序列用完之后的行为.
func (p Policy) Exhaustion() Exhaustion {
	return p.exhaustion
}

// Steps 返回步长序列的副本.
func (p Policy) Steps() []int {
	return append([]int(nil), p.steps...)
}

func (p Policy) validate() error {
	if len(p.steps) == 0 {
		return ErrEmptyPolicy
	}
	for i, s := range p.steps {
		if s < 0 {
			return fmt.Errorf("%w: step %d is %d", ErrNegativeStep, i, s)
		}
	}
	switch p.exhaustion {
	case Saturate, Cycle, Stop:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnknownExhaustion, int(p.exhaustion))
}
