package status

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestMetricMap_GetReturnsStablePointer(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get(EngineTicks)
	a.Add(3)
	b := r.Ints.Get(EngineTicks)

	assert.Same(t, a, b)
	assert.Equal(t, int64(3), b.Load())
	assert.True(t, r.Ints.Has(EngineTicks))
	assert.False(t, r.Ints.Has(EngineFrames))
}

func TestMetricMap_ConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get("shared").Add(1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, m.Count())
	assert.Equal(t, int64(16), m.Get("shared").Load())
}

func TestMetricMap_RangeSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	m.Get("c")
	m.Get("a")
	m.Get("b")

	var keys []string
	m.Range(func(key string, _ *atomic.Int64) {
		keys = append(keys, key)
	})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestAtomicString_Truncates(t *testing.T) {
	var s AtomicString
	assert.Equal(t, "", s.Load())

	s.Store(strings.Repeat("x", MaxStringLen+5))
	assert.Len(t, s.Load(), MaxStringLen)
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	f.Set(1.5)
	assert.Equal(t, 1.5, f.Get())
}

func TestRegistry_TotalCount(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(GameBlocks)
	r.Bools.Get(EnginePaused)
	r.Floats.Get(EngineFrameMillis)
	r.Strings.Get(GameState)
	assert.Equal(t, 4, r.TotalCount())
}

func TestRegisterMeter_Noop(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(EngineTicks).Store(10)
	r.Floats.Get(EngineFrameMillis).Set(16.6)

	reg, err := RegisterMeter(noop.NewMeterProvider().Meter("test"), r)
	require.NoError(t, err)
	require.NotNil(t, reg)
	assert.NoError(t, reg.Unregister())
}
