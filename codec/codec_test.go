package codec

import (
	"math"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	a uint8
	b int16
	c uint32
	d float32
	e float64
}

func (s *sample) Decode(c *Cursor) {
	s.a = c.Uint8()
	s.b = c.Int16()
	s.c = c.Uint32()
	s.d = c.Float32()
	s.e = c.Float64()
}

func (s *sample) Encode(sk *Sink) {
	sk.PutUint8(s.a)
	sk.PutInt16(s.b)
	sk.PutUint32(s.c)
	sk.PutFloat32(s.d)
	sk.PutFloat64(s.e)
}

func (s *sample) Size() int {
	return 1 + 2 + 4 + 4 + 8
}

func TestSink_BigEndian(t *testing.T) {
	s := NewSink(0)
	s.PutUint8(0x01)
	s.PutUint16(0x0203)
	s.PutUint32(0x04050607)
	s.PutUint64(0x08090a0b0c0d0e0f)
	s.PutInt16(-2)
	s.Pad(2)
	s.PutBytes([]byte{0xaa})
	t.Logf("% x", s.Bytes())

	assert.Equal(t, []byte{
		0x01,
		0x02, 0x03,
		0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
		0xff, 0xfe,
		0x00, 0x00,
		0xaa,
	}, s.Bytes())
	assert.Equal(t, 20, s.Len())
}

func TestCursor_Reads(t *testing.T) {
	s := NewSink(0)
	s.PutInt8(-1)
	s.PutInt32(math.MinInt32)
	s.PutInt64(math.MaxInt64)
	s.PutFloat32(-0.5)
	s.PutFloat64(math.Pi)
	s.Pad(3)
	s.PutBytes([]byte("dis"))

	c := NewCursor(s.Bytes())
	assert.Equal(t, int8(-1), c.Int8())
	assert.Equal(t, int32(math.MinInt32), c.Int32())
	assert.Equal(t, int64(math.MaxInt64), c.Int64())
	assert.Equal(t, float32(-0.5), c.Float32())
	assert.Equal(t, math.Pi, c.Float64())
	c.Skip(3)
	assert.Equal(t, []byte("dis"), c.Bytes(3))
	assert.NoError(t, c.Err())
	assert.Equal(t, 0, c.Remaining())
	assert.Equal(t, s.Len(), c.Pos())
}

func TestCursor_UnderrunIsSticky(t *testing.T) {
	c := NewCursor([]byte{0x00, 0x10, 0xff})
	assert.Equal(t, uint16(0x10), c.Uint16())
	assert.Equal(t, uint16(0), c.Uint16())
	require.Error(t, c.Err())
	assert.True(t, errors.Is(c.Err(), ErrBufferUnderrun))

	// 失败之后不再返回剩余的那个字节
	assert.Equal(t, uint8(0), c.Uint8())
	assert.True(t, errors.Is(c.Err(), ErrBufferUnderrun))
	t.Logf("%v", c.Err())
}

func TestCursor_FailKeepsFirstError(t *testing.T) {
	c := NewCursor(nil)
	c.Fail(Malformed("count %d", 3))
	c.Uint32()
	assert.True(t, errors.Is(c.Err(), ErrMalformedField))
	assert.False(t, errors.Is(c.Err(), ErrBufferUnderrun))
}

func TestCursor_NegativeLength(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	assert.Nil(t, c.Bytes(-1))
	assert.True(t, errors.Is(c.Err(), ErrBufferUnderrun))
}

func TestMarshal_RoundTrip(t *testing.T) {
	in := &sample{a: 255, b: math.MinInt16, c: 0xdeadbeef, d: float32(math.Inf(-1)), e: math.Copysign(0, -1)}
	data := Marshal(in)
	assert.Len(t, data, in.Size())

	out, err := Unmarshal[sample](data)
	require.NoError(t, err)
	assert.Equal(t, in.a, out.a)
	assert.Equal(t, in.b, out.b)
	assert.Equal(t, in.c, out.c)
	assert.Equal(t, math.Float32bits(in.d), math.Float32bits(out.d))
	assert.Equal(t, math.Float64bits(in.e), math.Float64bits(out.e))
}

func TestUnmarshal_Truncated(t *testing.T) {
	data := Marshal(&sample{a: 1, b: 2, c: 3, d: 4, e: 5})
	for k := 0; k < len(data); k++ {
		out, err := Unmarshal[sample](data[:k])
		assert.Nil(t, out, "k=%d", k)
		assert.True(t, errors.Is(err, ErrBufferUnderrun), "k=%d", k)
	}
}

func TestCursor_ZeroLengthBytes(t *testing.T) {
	c := NewCursor([]byte{1, 2})
	assert.Nil(t, c.Bytes(0))
	assert.NoError(t, c.Err())
	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, []byte{1, 2}, c.Bytes(2))
	assert.Nil(t, c.Bytes(0))
	assert.NoError(t, c.Err())
}
