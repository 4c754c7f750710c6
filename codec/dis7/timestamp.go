package dis7

import (
	"math/bits"
	"time"
)

// DIS 时间戳：高31位为整点之后经过的时间，单位为 3600s/2^31 (约1.676µs)
// 最低位为1表示绝对时间 (时钟与UTC同步)，为0表示相对时间
const (
	timestampUnits = 1 << 31
	absoluteBit    = uint32(1)
)

// NewTimestamp 编码 t 在所在小时内的位置
func NewTimestamp(t time.Time, absolute bool) uint32 {
	t = t.UTC()
	past := time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
	hi, lo := bits.Mul64(uint64(past), timestampUnits)
	units, _ := bits.Div64(hi, lo, uint64(time.Hour))
	if units >= timestampUnits {
		units = timestampUnits - 1
	}
	ts := uint32(units) << 1
	if absolute {
		ts |= absoluteBit
	}
	return ts
}

// IsAbsolute 是否为绝对时间
func IsAbsolute(ts uint32) bool {
	return ts&absoluteBit != 0
}

// TimestampOffset 解出整点之后经过的时间
func TimestampOffset(ts uint32) time.Duration {
	hi, lo := bits.Mul64(uint64(ts>>1), uint64(time.Hour))
	past, _ := bits.Div64(hi, lo, timestampUnits)
	return time.Duration(past)
}
