package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/pyramid-smash/core"
)

type testComponent struct {
	Value int
}

func TestStore_SetGetRemove(t *testing.T) {
	s := NewStore[testComponent](8)

	s.Set(1, testComponent{Value: 10})
	s.Set(3, testComponent{Value: 30})
	s.Set(5, testComponent{Value: 50})

	v, ok := s.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 30, v.Value)
	assert.Equal(t, 3, s.Count())

	// Removing from the middle swaps the last element into place
	s.Remove(1)
	assert.False(t, s.Has(1))
	assert.True(t, s.Has(5))
	v, _ = s.Get(5)
	assert.Equal(t, 50, v.Value)
	assert.ElementsMatch(t, []core.Entity{3, 5}, s.All())

	// Removing twice is a no-op
	s.Remove(1)
	assert.Equal(t, 2, s.Count())
}

func TestStore_SetOverwrites(t *testing.T) {
	s := NewStore[testComponent](4)
	s.Set(2, testComponent{Value: 1})
	s.Set(2, testComponent{Value: 2})

	assert.Equal(t, 1, s.Count())
	v, _ := s.Get(2)
	assert.Equal(t, 2, v.Value)
}

func TestStore_PtrMutatesInPlace(t *testing.T) {
	s := NewStore[testComponent](4)
	s.Set(0, testComponent{Value: 1})

	s.Ptr(0).Value = 7
	v, _ := s.Get(0)
	assert.Equal(t, 7, v.Value)
	assert.Nil(t, s.Ptr(1))
	assert.Nil(t, s.Ptr(100))
}

func TestStore_OutOfRange(t *testing.T) {
	s := NewStore[testComponent](2)

	_, ok := s.Get(10)
	assert.False(t, ok)
	assert.False(t, s.Has(10))
	s.Remove(10)

	// Set grows past the initial capacity
	s.Set(10, testComponent{Value: 3})
	assert.True(t, s.Has(10))
}

func TestStore_AllIsCopy(t *testing.T) {
	s := NewStore[testComponent](4)
	s.Set(0, testComponent{})
	s.Set(1, testComponent{})

	all := s.All()
	all[0] = 99
	assert.ElementsMatch(t, []core.Entity{0, 1}, s.All())
}

func TestStore_Clear(t *testing.T) {
	s := NewStore[testComponent](4)
	s.Set(0, testComponent{})
	s.Set(3, testComponent{})

	s.Clear()
	assert.Zero(t, s.Count())
	assert.False(t, s.Has(0))
	assert.False(t, s.Has(3))

	s.Set(3, testComponent{Value: 4})
	assert.Equal(t, 1, s.Count())
}
