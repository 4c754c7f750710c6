package snowflake32

import (
	"fmt"
	"sync"
	"time"
)

// Snowflake 24小时内不会重复的32位请求号生成器，用于仿真管理PDU的 RequestID
// 构成为: 0 | seconds 17 bit | datacenter 2 bit | worker 3 bit | sequence 9 bit
// 最大支持32个节点，单节点每秒不超过512个请求号，超过则会阻塞到下一秒再返回
// seconds占用17bits是因为一天86400秒占用17bits
type Snowflake struct {
	sync.Mutex                  // 锁
	seconds    uint32           // 截止到午夜0点的秒数
	datacenter uint32           // 数据中心id, 取值范围：0-3
	worker     uint32           // 工作节点, 取值范围：0-7
	sequence   uint32           // 序列号
	clock      func() time.Time // 时钟
}

const (
	datacenterBits  = uint(2)
	workerBits      = uint(3)
	sequenceBits    = uint(9)
	sequenceMask    = uint32(1)<<sequenceBits - 1
	datacenterMask  = uint32(1)<<datacenterBits - 1
	workerMask      = uint32(1)<<workerBits - 1
	workerShift     = sequenceBits
	datacenterShift = sequenceBits + workerBits
	timestampShift  = sequenceBits + workerBits + datacenterBits
)

// NewSnowflake d 为数据中心id，w 为工作节点id，超出范围的部分被截掉
func NewSnowflake(d int32, w int32) *Snowflake {
	return &Snowflake{datacenter: uint32(d) & datacenterMask, worker: uint32(w) & workerMask, clock: time.Now}
}

func (s *Snowflake) NextVal() uint32 {
	s.Lock()
	defer s.Unlock()
	now := s.passedSeconds()
	if s.seconds == now {
		s.sequence = (s.sequence + 1) & sequenceMask
		if s.sequence == 0 {
			// 当前秒的序列号用尽，等待下一秒
			for now == s.seconds {
				time.Sleep(time.Millisecond)
				now = s.passedSeconds()
			}
		}
	} else {
		s.sequence = 0
	}
	s.seconds = now
	return s.seconds<<timestampShift | s.datacenter<<datacenterShift | s.worker<<workerShift | s.sequence
}

func (s *Snowflake) String() string {
	return fmt.Sprintf("%d:%d:%d:%d", s.seconds, s.datacenter, s.worker, s.sequence)
}

func (s *Snowflake) passedSeconds() uint32 {
	t := s.clock()
	return uint32(t.Hour()*3600 + t.Minute()*60 + t.Second())
}
