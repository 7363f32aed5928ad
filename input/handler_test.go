package input

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pyramid-smash/engine"
	"github.com/lixenwraith/pyramid-smash/logger"
	"github.com/lixenwraith/pyramid-smash/vmath"
)

type fakeActions struct {
	shots    []vmath.Vec3
	resets   int
	paused   bool
	muted    bool
	shootErr error
}

func (f *fakeActions) ShootBall(dir vmath.Vec3) error {
	if f.shootErr != nil {
		return f.shootErr
	}
	f.shots = append(f.shots, dir)
	return nil
}

func (f *fakeActions) Reset() error {
	f.resets++
	return nil
}

func (f *fakeActions) TogglePause() bool {
	f.paused = !f.paused
	return f.paused
}

func (f *fakeActions) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}

func newHandler(w *engine.World, a Actions) *Handler {
	log := logger.Discard()
	return NewHandler(NewMachine(80, 24), NewDragController(w, orthoCaster{}, log), a, log)
}

func TestHandler_ClickShoots(t *testing.T) {
	a := &fakeActions{}
	h := newHandler(engine.NewWorld(8), a)

	quit, err := h.Handle(tcell.NewEventMouse(60, 6, tcell.Button1, tcell.ModNone))
	require.NoError(t, err)
	assert.False(t, quit)

	require.Len(t, a.shots, 1)
	assert.InDelta(t, 0.25, a.shots[0].X(), 1e-12)
	assert.InDelta(t, 0.25, a.shots[0].Y(), 1e-12)
	assert.InDelta(t, -1.0, a.shots[0].Z(), 1e-12)

	// Release after a plain click fires nothing more
	_, err = h.Handle(tcell.NewEventMouse(60, 6, tcell.ButtonNone, tcell.ModNone))
	require.NoError(t, err)
	assert.Len(t, a.shots, 1)
}

func TestHandler_PressOnBallDrags(t *testing.T) {
	w := engine.NewWorld(8)
	ball := spawnBall(t, w, vmath.V3(0, 0, 0))
	a := &fakeActions{}
	h := newHandler(w, a)

	_, err := h.Handle(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))
	require.NoError(t, err)
	assert.Empty(t, a.shots)
	assert.True(t, w.Has(ball, engine.KindInput))

	_, err = h.Handle(tcell.NewEventMouse(60, 12, tcell.Button1, tcell.ModNone))
	require.NoError(t, err)
	_, err = h.Handle(tcell.NewEventMouse(60, 12, tcell.ButtonNone, tcell.ModNone))
	require.NoError(t, err)

	assert.False(t, w.Has(ball, engine.KindInput))
	vel, _ := w.Components.Velocity.Get(ball)
	assert.InDelta(t, 5.0, vel.Linear.X(), 1e-9)
	assert.InDelta(t, -5.0, vel.Linear.Z(), 1e-9)
}

func TestHandler_Intents(t *testing.T) {
	a := &fakeActions{}
	h := newHandler(engine.NewWorld(8), a)

	quit, err := h.Apply(Intent{Type: IntentReset})
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, 1, a.resets)

	_, err = h.Apply(Intent{Type: IntentPause})
	require.NoError(t, err)
	assert.True(t, a.paused)

	_, err = h.Apply(Intent{Type: IntentToggleMute})
	require.NoError(t, err)
	assert.True(t, a.muted)

	quit, err = h.Apply(Intent{Type: IntentQuit})
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestHandler_ShootErrorWrapped(t *testing.T) {
	boom := errors.New("world full")
	h := newHandler(engine.NewWorld(8), &fakeActions{shootErr: boom})

	_, err := h.Apply(Intent{Type: IntentPointerDown, PointerID: MousePointerID})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "shoot")
}

func TestShootDirection(t *testing.T) {
	d := ShootDirection(1, -1)
	assert.Equal(t, vmath.V3(0.5, -0.5, -1), d)
}
