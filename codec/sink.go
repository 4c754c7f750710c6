package codec

import (
	"encoding/binary"
	"math"
)

// Sink 以大端字节序写入基本类型，缓冲区按需增长
type Sink struct {
	buf []byte
}

// NewSink size 为预分配的容量
func NewSink(size int) *Sink {
	if size < 0 {
		size = 0
	}
	return &Sink{buf: make([]byte, 0, size)}
}

// Len 已写入的字节数
func (s *Sink) Len() int {
	return len(s.buf)
}

// Bytes 已写入的内容
func (s *Sink) Bytes() []byte {
	return s.buf
}

func (s *Sink) PutUint8(v uint8) {
	s.buf = append(s.buf, v)
}

func (s *Sink) PutUint16(v uint16) {
	s.buf = binary.BigEndian.AppendUint16(s.buf, v)
}

func (s *Sink) PutUint32(v uint32) {
	s.buf = binary.BigEndian.AppendUint32(s.buf, v)
}

func (s *Sink) PutUint64(v uint64) {
	s.buf = binary.BigEndian.AppendUint64(s.buf, v)
}

func (s *Sink) PutInt8(v int8) {
	s.PutUint8(uint8(v))
}

func (s *Sink) PutInt16(v int16) {
	s.PutUint16(uint16(v))
}

func (s *Sink) PutInt32(v int32) {
	s.PutUint32(uint32(v))
}

func (s *Sink) PutInt64(v int64) {
	s.PutUint64(uint64(v))
}

func (s *Sink) PutFloat32(v float32) {
	s.PutUint32(math.Float32bits(v))
}

func (s *Sink) PutFloat64(v float64) {
	s.PutUint64(math.Float64bits(v))
}

func (s *Sink) PutBytes(b []byte) {
	s.buf = append(s.buf, b...)
}

// Pad 写入 n 个 0 字节
func (s *Sink) Pad(n int) {
	for i := 0; i < n; i++ {
		s.buf = append(s.buf, 0)
	}
}
