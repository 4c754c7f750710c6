package comm

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var seq = NewCycleSequence(1)

func TestCycleSequence_Wraps(t *testing.T) {
	s := NewCycleSequence(65534)
	assert.Equal(t, uint16(65534), s.NextVal())
	assert.Equal(t, uint16(65535), s.NextVal())
	assert.Equal(t, uint16(1), s.NextVal())

	s = NewCycleSequence(0)
	assert.Equal(t, uint16(1), s.NextVal())
}

func TestCycleSequence_Concurrent(t *testing.T) {
	s := NewCycleSequence(1)
	seen := sync.Map{}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				_, dup := seen.LoadOrStore(s.NextVal(), struct{}{})
				assert.False(t, dup)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkCycleSequence_NextVal(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq.NextVal()
	}
}
