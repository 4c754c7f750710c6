package dis7

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronwong1989/godis/codec"
)

func TestHeader_Wire(t *testing.T) {
	h := &Header{
		ProtocolVersion: ProtocolVersion,
		ExerciseID:      3,
		PduType:         PduTypeCollisionElastic,
		ProtocolFamily:  FamilyEntityInformation,
		Timestamp:       0x01020304,
		Length:          100,
		PduStatus:       0x05,
	}
	data := codec.Marshal(h)
	t.Logf("%s: % x", h, data)
	assert.Equal(t, []byte{7, 3, 66, 1, 1, 2, 3, 4, 0, 100, 5, 0}, data)

	out, err := codec.Unmarshal[Header](data)
	require.NoError(t, err)
	assert.Equal(t, h, out)
	assert.Contains(t, out.String(), "CollisionElastic")
	assert.Contains(t, out.String(), "EntityInformation")
}

func TestPduType_String(t *testing.T) {
	assert.Equal(t, "Acknowledge-R", PduTypeAcknowledgeR.String())
	assert.Equal(t, "PduType(250)", PduType(250).String())
	assert.Equal(t, "ProtocolFamily(99)", ProtocolFamily(99).String())
}

func TestNewPdus_Headers(t *testing.T) {
	cases := []struct {
		pdu    Pdu
		kind   PduType
		family ProtocolFamily
	}{
		{NewCollisionPdu(), PduTypeCollision, FamilyEntityInformation},
		{NewCollisionElasticPdu(), PduTypeCollisionElastic, FamilyEntityInformation},
		{NewAcknowledgePdu(), PduTypeAcknowledge, FamilySimulationManagement},
		{NewAcknowledgeReliablePdu(), PduTypeAcknowledgeR, FamilySimulationManagementR},
		{NewCommentPdu(), PduTypeComment, FamilySimulationManagement},
	}
	for _, tc := range cases {
		h := tc.pdu.PduHeader()
		assert.Equal(t, ProtocolVersion, h.ProtocolVersion, "%T", tc.pdu)
		assert.Equal(t, tc.kind, h.PduType, "%T", tc.pdu)
		assert.Equal(t, tc.family, h.ProtocolFamily, "%T", tc.pdu)
	}
}
