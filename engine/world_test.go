package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pyramid-smash/component"
	"github.com/lixenwraith/pyramid-smash/core"
	"github.com/lixenwraith/pyramid-smash/vmath"
)

func TestWorld_CreateReusesReleasedIds(t *testing.T) {
	w := NewWorld(4)

	a, err := w.CreateEntity()
	require.NoError(t, err)
	b, err := w.CreateEntity()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	require.True(t, w.DestroyEntity(a))
	c, err := w.CreateEntity()
	require.NoError(t, err)

	assert.Equal(t, a, c)
	assert.Equal(t, uint32(1), w.Generation(c))
	assert.Equal(t, 2, w.EntityCount())
}

func TestWorld_Full(t *testing.T) {
	w := NewWorld(2)
	_, err := w.CreateEntity()
	require.NoError(t, err)
	_, err = w.CreateEntity()
	require.NoError(t, err)

	e, err := w.CreateEntity()
	assert.ErrorIs(t, err, ErrWorldFull)
	assert.Equal(t, core.NoEntity, e)
}

func TestWorld_AttachHas(t *testing.T) {
	w := NewWorld(4)
	e, _ := w.CreateEntity()

	require.NoError(t, w.Attach(e, KindTransform))
	assert.True(t, w.Has(e, KindTransform))
	assert.False(t, w.Has(e, KindVelocity))

	// Attach keeps existing data
	w.Components.Velocity.Set(e, component.VelocityComponent{Linear: vmath.V3(1, 2, 3)})
	require.NoError(t, w.Attach(e, KindVelocity))
	v, _ := w.Components.Velocity.Get(e)
	assert.Equal(t, 2.0, v.Linear.Y())
}

func TestWorld_AttachErrors(t *testing.T) {
	w := NewWorld(4)

	err := w.Attach(3, KindBlock)
	assert.ErrorIs(t, err, ErrInvalidEntity)

	e, _ := w.CreateEntity()
	assert.Error(t, w.Attach(e, KindCount))
	assert.False(t, w.Has(e, KindCount))
}

func TestWorld_DestroyClearsAllKinds(t *testing.T) {
	w := NewWorld(4)
	e, _ := w.CreateEntity()
	for k := ComponentKind(0); k < KindCount; k++ {
		require.NoError(t, w.Attach(e, k))
	}

	assert.True(t, w.DestroyEntity(e))
	for k := ComponentKind(0); k < KindCount; k++ {
		assert.False(t, w.Has(e, k), k.String())
	}
	assert.False(t, w.IsAlive(e))
}

func TestWorld_DestroyIsIdempotent(t *testing.T) {
	w := NewWorld(4)
	e, _ := w.CreateEntity()

	assert.True(t, w.DestroyEntity(e))
	assert.False(t, w.DestroyEntity(e))
	assert.False(t, w.DestroyEntity(2))
	assert.False(t, w.DestroyEntity(core.NoEntity))
	assert.Equal(t, uint32(1), w.Generation(e))
	assert.Zero(t, w.EntityCount())
}

func TestWorld_Clear(t *testing.T) {
	w := NewWorld(4)
	a, _ := w.CreateEntity()
	b, _ := w.CreateEntity()
	require.NoError(t, w.Attach(a, KindBlock))
	require.NoError(t, w.Attach(b, KindBomb))

	w.Clear()

	assert.Zero(t, w.EntityCount())
	assert.False(t, w.IsAlive(a))
	assert.Zero(t, w.Components.Block.Count())
	assert.Zero(t, w.Components.Bomb.Count())
	assert.Equal(t, uint32(1), w.Generation(a))

	c, err := w.CreateEntity()
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestComponentKind_String(t *testing.T) {
	assert.Equal(t, "PhysicsBody", KindPhysicsBody.String())
	assert.Equal(t, "ComponentKind(42)", ComponentKind(42).String())
}
