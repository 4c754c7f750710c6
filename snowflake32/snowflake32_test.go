package snowflake32

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextVal_Layout(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 20, 30, 0, time.Local)
	snow := NewSnowflake(1, 5)
	snow.clock = func() time.Time { return at }

	first := snow.NextVal()
	second := snow.NextVal()
	t.Logf("first: %#b, %s", first, snow)

	seconds := uint32(10*3600 + 20*60 + 30)
	assert.Equal(t, seconds, first>>timestampShift)
	assert.Equal(t, uint32(1), first>>datacenterShift&datacenterMask)
	assert.Equal(t, uint32(5), first>>workerShift&workerMask)
	assert.Equal(t, uint32(0), first&sequenceMask)
	assert.Equal(t, first+1, second)
	assert.Zero(t, first>>31, "the top bit stays clear")
}

func TestNextVal_Unique(t *testing.T) {
	snow := NewSnowflake(0, 0)
	seen := make(map[uint32]bool)
	for i := 0; i < 520; i++ {
		v := snow.NextVal()
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}
}
