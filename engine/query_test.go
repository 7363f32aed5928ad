package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pyramid-smash/component"
	"github.com/lixenwraith/pyramid-smash/core"
	"github.com/lixenwraith/pyramid-smash/vmath"
)

func TestQueryBuilder(t *testing.T) {
	w := NewWorld(16)

	e1, err := w.CreateEntity()
	require.NoError(t, err)
	w.Components.Transform.Set(e1, component.NewTransform(vmath.V3(1, 1, 1)))
	w.Components.Velocity.Set(e1, component.VelocityComponent{})

	e2, err := w.CreateEntity()
	require.NoError(t, err)
	w.Components.Transform.Set(e2, component.NewTransform(vmath.V3(2, 2, 2)))

	e3, err := w.CreateEntity()
	require.NoError(t, err)
	w.Components.Velocity.Set(e3, component.VelocityComponent{})

	results := w.NewQuery().
		With(w.Components.Transform).
		With(w.Components.Velocity).
		Execute()
	assert.Equal(t, []core.Entity{e1}, results)

	posResults := w.NewQuery().With(w.Components.Transform).Execute()
	assert.Len(t, posResults, 2)

	assert.Empty(t, w.NewQuery().Execute())

	q := w.NewQuery().With(w.Components.Transform)
	first := q.Execute()
	assert.Equal(t, first, q.Execute())
}

func TestQueryBuilder_Panic(t *testing.T) {
	w := NewWorld(4)
	q := w.NewQuery()
	q.Execute()

	assert.Panics(t, func() {
		q.With(w.Components.Transform)
	})
}

func TestWorld_QueryIsSnapshot(t *testing.T) {
	w := NewWorld(8)
	e, _ := w.CreateEntity()
	require.NoError(t, w.Attach(e, KindBomb))

	snapshot := w.Query(KindBomb)
	require.Len(t, snapshot, 1)

	other, _ := w.CreateEntity()
	require.NoError(t, w.Attach(other, KindBomb))
	w.DestroyEntity(e)

	assert.Equal(t, []core.Entity{e}, snapshot)
	assert.Equal(t, []core.Entity{other}, w.Query(KindBomb))
}

func TestWorld_QueryUnknownKind(t *testing.T) {
	w := NewWorld(4)
	e, _ := w.CreateEntity()
	require.NoError(t, w.Attach(e, KindBlock))

	assert.Empty(t, w.Query(KindBlock, ComponentKind(200)))
	assert.Empty(t, w.Query())
}
