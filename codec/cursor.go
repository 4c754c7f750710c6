package codec

import (
	"encoding/binary"
	"math"

	"github.com/go-faster/errors"
)

// Cursor 从只读缓冲区中由前向后读取大端字节序的基本类型
//
// 首次读取失败后错误会保留：之后的读取都返回零值，Err 始终返回第一个错误
// 失败的 Cursor 不可再使用
type Cursor struct {
	buf []byte
	pos int
	err error
}

func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos 已读取的字节数
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining 剩余未读的字节数
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Err 返回遇到的第一个错误
func (c *Cursor) Err() error {
	return c.err
}

// Fail 记录 err，已有错误时保留原错误
func (c *Cursor) Fail(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}

func (c *Cursor) take(n int) []byte {
	if c.err != nil {
		return nil
	}
	if n < 0 || n > len(c.buf)-c.pos {
		c.err = errors.Wrapf(ErrBufferUnderrun, "read %d bytes at offset %d, %d left", n, c.pos, len(c.buf)-c.pos)
		return nil
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b
}

func (c *Cursor) Uint8() uint8 {
	b := c.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (c *Cursor) Uint16() uint16 {
	b := c.take(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (c *Cursor) Uint32() uint32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (c *Cursor) Uint64() uint64 {
	b := c.take(8)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

func (c *Cursor) Int8() int8 {
	return int8(c.Uint8())
}

func (c *Cursor) Int16() int16 {
	return int16(c.Uint16())
}

func (c *Cursor) Int32() int32 {
	return int32(c.Uint32())
}

func (c *Cursor) Int64() int64 {
	return int64(c.Uint64())
}

func (c *Cursor) Float32() float32 {
	return math.Float32frombits(c.Uint32())
}

func (c *Cursor) Float64() float64 {
	return math.Float64frombits(c.Uint64())
}

// Bytes 返回后续 n 个字节的拷贝，n 为 0 时返回 nil
func (c *Cursor) Bytes(n int) []byte {
	b := c.take(n)
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// Skip 跳过 n 个字节的填充
func (c *Cursor) Skip(n int) {
	c.take(n)
}
