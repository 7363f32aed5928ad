package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// MousePointerID identifies the terminal mouse; a terminal has exactly one pointer
const MousePointerID = 1

// Machine is the input state machine
// Parses tcell events into semantic Intents, tracking screen size and button state
type Machine struct {
	keyTable *KeyTable

	width, height int
	pressed       bool
}

// NewMachine creates a machine for a width x height cell screen
func NewMachine(width, height int) *Machine {
	m := &Machine{keyTable: DefaultKeyTable()}
	m.SetSize(width, height)
	return m
}

// SetSize updates the screen size used for coordinate normalization
func (m *Machine) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
}

// Size returns the current screen size in cells
func (m *Machine) Size() (int, int) {
	return m.width, m.height
}

// Pressed reports whether the primary button is held
func (m *Machine) Pressed() bool {
	return m.pressed
}

// Reset forgets a held button
func (m *Machine) Reset() {
	m.pressed = false
}

// Process parses a terminal event and returns an Intent
// Returns nil for events without a binding
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		m.SetSize(w, h)
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		return m.processMouse(x, y, ev.Buttons())
	}
	return nil
}

func (m *Machine) processKey(key tcell.Key, r rune) *Intent {
	if key != tcell.KeyRune {
		if it, ok := m.keyTable.SpecialKeys[key]; ok {
			return &Intent{Type: it}
		}
		return nil
	}
	if it, ok := m.keyTable.Runes[unicode.ToLower(r)]; ok {
		return &Intent{Type: it}
	}
	return nil
}

// processMouse turns button level changes into down/move/up edges
// tcell reports button state, not transitions
func (m *Machine) processMouse(cx, cy int, buttons tcell.ButtonMask) *Intent {
	x, y := m.ToNDC(cx, cy)
	held := buttons&tcell.Button1 != 0

	var t IntentType
	switch {
	case held && !m.pressed:
		t = IntentPointerDown
	case held && m.pressed:
		t = IntentPointerMove
	case !held && m.pressed:
		t = IntentPointerUp
	default:
		return nil
	}
	m.pressed = held
	return &Intent{Type: t, X: x, Y: y, PointerID: MousePointerID}
}

// ToNDC maps a cell to normalized device coordinates: x right, y up, both in [-1, 1]
func (m *Machine) ToNDC(cx, cy int) (x, y float64) {
	x = 2*float64(cx)/float64(m.width) - 1
	y = 1 - 2*float64(cy)/float64(m.height)
	return x, y
}
