package comm

import (
	"sync/atomic"
)

// CycleSequence 循环使用的16位序号，用于事件编号
// 从1开始递增，到达 65535 后回到 1，不会产生 0
type CycleSequence struct {
	val uint32
}

func NewCycleSequence(start uint16) *CycleSequence {
	s := &CycleSequence{}
	if start > 0 {
		s.val = uint32(start - 1)
	}
	return s
}

func (s *CycleSequence) NextVal() uint16 {
	for {
		old := atomic.LoadUint32(&s.val)
		next := old%0xffff + 1
		if atomic.CompareAndSwapUint32(&s.val, old, next) {
			return uint16(next)
		}
	}
}
