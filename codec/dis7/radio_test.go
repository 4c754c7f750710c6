package dis7

import (
	"math"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronwong1989/godis/codec"
)

func TestRadioIdentifier_Boundaries(t *testing.T) {
	cases := []struct {
		in   RadioIdentifier
		wire []byte
	}{
		{RadioIdentifier{}, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{RadioIdentifier{65535, 65535, 65535, 65535}, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{RadioIdentifier{0, 65535, 0, 65535}, []byte{0, 0, 0xff, 0xff, 0, 0, 0xff, 0xff}},
		{RadioIdentifier{65535, 0, 1, 256}, []byte{0xff, 0xff, 0, 0, 0, 1, 1, 0}},
	}
	for _, tc := range cases {
		data := codec.Marshal(&tc.in)
		t.Logf("%s: % x", &tc.in, data)
		assert.Equal(t, tc.wire, data)
		assert.Len(t, data, tc.in.Size())

		out, err := codec.Unmarshal[RadioIdentifier](data)
		require.NoError(t, err)
		assert.Equal(t, tc.in, *out)
	}
}

func TestRadioIdentifier_Truncated(t *testing.T) {
	data := codec.Marshal(&RadioIdentifier{1, 2, 3, 4})
	for k := 0; k < len(data); k++ {
		out, err := codec.Unmarshal[RadioIdentifier](data[:k])
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, codec.ErrBufferUnderrun), "k=%d", k)
	}
}

func TestIntercomIdentifier_SameWireDistinctType(t *testing.T) {
	radio := &RadioIdentifier{1, 2, 3, 4}
	data := codec.Marshal(radio)

	intercom, err := codec.Unmarshal[IntercomIdentifier](data)
	require.NoError(t, err)
	assert.Equal(t, uint16(4), intercom.IntercomNumber)
	assert.Equal(t, data, codec.Marshal(intercom))
	assert.NotEqual(t, any(*radio), any(*intercom))
}

func TestRecords_String(t *testing.T) {
	assert.Equal(t, "1:2:3", EntityID{1, 2, 3}.String())
	assert.Equal(t, "1:2#3", EventIdentifier{SimulationAddress{1, 2}, 3}.String())
	assert.Equal(t, "(1, -0.5, 0)", Vector3Float{1, -0.5, 0}.String())
}

func TestRecords_Truncated(t *testing.T) {
	records := []interface {
		codec.Record
		codec.Sizer
	}{
		&SimulationAddress{1, 2},
		&EntityID{1, 2, 3},
		&EventIdentifier{SimulationAddress{1, 2}, 3},
		&Vector3Float{1, 2, 3},
		&FixedDatum{1, 2},
	}
	for _, r := range records {
		data := codec.Marshal(r)
		require.Len(t, data, r.Size())
		for k := 0; k < len(data); k++ {
			c := codec.NewCursor(data[:k])
			r.Decode(c)
			assert.True(t, errors.Is(c.Err(), codec.ErrBufferUnderrun), "%T k=%d", r, k)
		}
	}
}

func TestVector3Float_ExactBits(t *testing.T) {
	nan := math.Float32frombits(0x7fc00abc)
	in := Vector3Float{X: nan, Y: float32(math.Copysign(0, -1)), Z: math.SmallestNonzeroFloat32}
	data := codec.Marshal(&in)
	t.Logf("% x", data)
	assert.Equal(t, []byte{0x7f, 0xc0, 0x0a, 0xbc, 0x80, 0, 0, 0, 0, 0, 0, 1}, data)

	out, err := codec.Unmarshal[Vector3Float](data)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x7fc00abc), math.Float32bits(out.X))
	assert.Equal(t, uint32(0x80000000), math.Float32bits(out.Y))
	assert.Equal(t, uint32(1), math.Float32bits(out.Z))
}
