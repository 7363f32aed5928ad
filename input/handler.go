package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pyramid-smash/parameter"
	"github.com/lixenwraith/pyramid-smash/vmath"
)

// Actions is the game surface driven by input
type Actions interface {
	ShootBall(dir vmath.Vec3) error
	Reset() error
	TogglePause() bool
	ToggleMute() bool
}

// Handler routes parsed intents to the drag controller and game actions
// Must be called from the goroutine owning the world
type Handler struct {
	machine *Machine
	drag    *DragController
	actions Actions
	log     logrus.FieldLogger
}

// NewHandler wires a machine, drag controller and action target
func NewHandler(machine *Machine, drag *DragController, actions Actions, log logrus.FieldLogger) *Handler {
	return &Handler{
		machine: machine,
		drag:    drag,
		actions: actions,
		log:     log.WithField("component", "input"),
	}
}

// Machine returns the underlying parser
func (h *Handler) Machine() *Machine {
	return h.machine
}

// Handle processes one terminal event
// Returns quit=true when the user asked to exit
func (h *Handler) Handle(ev tcell.Event) (quit bool, err error) {
	intent := h.machine.Process(ev)
	if intent == nil {
		return false, nil
	}
	return h.Apply(*intent)
}

// Apply executes a parsed intent
func (h *Handler) Apply(intent Intent) (quit bool, err error) {
	switch intent.Type {
	case IntentQuit:
		return true, nil

	case IntentReset:
		h.drag.Reset()
		h.machine.Reset()
		if err := h.actions.Reset(); err != nil {
			return false, fmt.Errorf("reset: %w", err)
		}

	case IntentPause:
		paused := h.actions.TogglePause()
		h.log.WithField("paused", paused).Info("pause toggled")

	case IntentToggleMute:
		muted := h.actions.ToggleMute()
		h.log.WithField("muted", muted).Info("audio mute toggled")

	case IntentPointerDown:
		// A press on a ball starts a drag, anywhere else fires a new ball
		if _, grabbed := h.drag.PointerDown(intent.PointerID, intent.X, intent.Y); grabbed {
			return false, nil
		}
		if err := h.actions.ShootBall(ShootDirection(intent.X, intent.Y)); err != nil {
			return false, fmt.Errorf("shoot: %w", err)
		}

	case IntentPointerMove:
		h.drag.PointerMove(intent.PointerID, intent.X, intent.Y)

	case IntentPointerUp:
		h.drag.PointerUp(intent.PointerID, intent.X, intent.Y)
	}
	return false, nil
}

// ShootDirection maps a click in NDC to an aim direction toward the pyramid
func ShootDirection(x, y float64) vmath.Vec3 {
	return vmath.V3(x*parameter.ShootAimScale, y*parameter.ShootAimScale, -1)
}
