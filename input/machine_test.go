package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_KeyBindings(t *testing.T) {
	m := NewMachine(80, 24)

	cases := []struct {
		key  tcell.Key
		r    rune
		want IntentType
	}{
		{tcell.KeyEscape, 0, IntentQuit},
		{tcell.KeyCtrlC, 0, IntentQuit},
		{tcell.KeyRune, 'q', IntentQuit},
		{tcell.KeyRune, 'r', IntentReset},
		{tcell.KeyRune, 'R', IntentReset},
		{tcell.KeyRune, 'p', IntentPause},
		{tcell.KeyRune, 'm', IntentToggleMute},
	}
	for _, c := range cases {
		it := m.processKey(c.key, c.r)
		require.NotNil(t, it, "key %v rune %q", c.key, c.r)
		assert.Equal(t, c.want, it.Type, "key %v rune %q", c.key, c.r)
	}

	assert.Nil(t, m.processKey(tcell.KeyRune, 'z'))
	assert.Nil(t, m.processKey(tcell.KeyF1, 0))
}

func TestMachine_ToNDC(t *testing.T) {
	m := NewMachine(80, 24)

	x, y := m.ToNDC(0, 0)
	assert.InDelta(t, -1.0, x, 1e-12)
	assert.InDelta(t, 1.0, y, 1e-12)

	x, y = m.ToNDC(40, 12)
	assert.InDelta(t, 0.0, x, 1e-12)
	assert.InDelta(t, 0.0, y, 1e-12)

	x, y = m.ToNDC(60, 18)
	assert.InDelta(t, 0.5, x, 1e-12)
	assert.InDelta(t, -0.5, y, 1e-12)
}

func TestMachine_MouseEdges(t *testing.T) {
	m := NewMachine(80, 24)

	// Motion without a button is ignored
	assert.Nil(t, m.Process(tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone)))

	down := m.Process(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))
	require.NotNil(t, down)
	assert.Equal(t, IntentPointerDown, down.Type)
	assert.Equal(t, MousePointerID, down.PointerID)
	assert.InDelta(t, 0.0, down.X, 1e-12)
	assert.True(t, m.Pressed())

	move := m.Process(tcell.NewEventMouse(60, 12, tcell.Button1, tcell.ModNone))
	require.NotNil(t, move)
	assert.Equal(t, IntentPointerMove, move.Type)
	assert.InDelta(t, 0.5, move.X, 1e-12)

	up := m.Process(tcell.NewEventMouse(60, 6, tcell.ButtonNone, tcell.ModNone))
	require.NotNil(t, up)
	assert.Equal(t, IntentPointerUp, up.Type)
	assert.InDelta(t, 0.5, up.Y, 1e-12)
	assert.False(t, m.Pressed())
}

func TestMachine_SecondaryButtonIgnored(t *testing.T) {
	m := NewMachine(80, 24)
	assert.Nil(t, m.Process(tcell.NewEventMouse(1, 1, tcell.Button2, tcell.ModNone)))
}

func TestMachine_Resize(t *testing.T) {
	m := NewMachine(80, 24)

	it := m.Process(tcell.NewEventResize(100, 50))
	require.NotNil(t, it)
	assert.Equal(t, IntentResize, it.Type)

	w, h := m.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)

	m.SetSize(0, -3)
	w, h = m.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestIntentType_String(t *testing.T) {
	assert.Equal(t, "pointer_down", IntentPointerDown.String())
	assert.Equal(t, "unknown", IntentType(200).String())
}
