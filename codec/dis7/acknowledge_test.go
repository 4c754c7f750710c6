package dis7

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronwong1989/godis/codec"
)

func TestAcknowledgePdu_RoundTrip(t *testing.T) {
	ack := NewAcknowledgePdu()
	ack.OriginatingID = EntityID{1, 1, 0}
	ack.ReceivingID = EntityID{2, 7, 0}
	ack.AcknowledgeFlag = AckStartResume
	ack.ResponseFlag = 1
	ack.RequestID = 0xcafef00d

	data, err := Marshal(ack)
	require.NoError(t, err)
	t.Logf("%s", ack)
	t.Logf("% x", data)
	require.Len(t, data, AcknowledgeLen)
	assert.Equal(t, []byte{0, 3, 0, 1, 0xca, 0xfe, 0xf0, 0x0d}, data[24:])

	out, err := codec.Unmarshal[AcknowledgePdu](data)
	require.NoError(t, err)
	assert.Equal(t, ack, out)
	assert.Contains(t, out.String(), "AbleToComply")
}

func TestAcknowledgeReliablePdu_RoundTrip(t *testing.T) {
	ack := NewAcknowledgeReliablePdu()
	ack.OriginatingID = EntityID{1, 1, 0}
	ack.ReceivingID = EntityID{2, 7, 0}
	ack.AcknowledgeFlag = AckCreateEntity
	ack.RequestID = 42

	data, err := Marshal(ack)
	require.NoError(t, err)
	assert.Equal(t, byte(PduTypeAcknowledgeR), data[2])
	assert.Equal(t, byte(FamilySimulationManagementR), data[3])

	out, err := codec.Unmarshal[AcknowledgeReliablePdu](data)
	require.NoError(t, err)
	assert.Equal(t, ack, out)

	for k := 0; k < len(data); k++ {
		_, err = codec.Unmarshal[AcknowledgeReliablePdu](data[:k])
		assert.True(t, errors.Is(err, codec.ErrBufferUnderrun), "k=%d", k)
	}
}
