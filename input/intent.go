package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentReset      // r
	IntentPause      // p
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Pointer intents, X/Y in normalized device coordinates
	IntentPointerDown
	IntentPointerMove
	IntentPointerUp
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentReset:       "reset",
	IntentPause:       "pause",
	IntentToggleMute:  "toggle_mute",
	IntentResize:      "resize",
	IntentPointerDown: "pointer_down",
	IntentPointerMove: "pointer_move",
	IntentPointerUp:   "pointer_up",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is a parsed user action
type Intent struct {
	Type      IntentType
	X, Y      float64 // NDC, y up
	PointerID int
}
