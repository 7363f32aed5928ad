package render

import (
	"fmt"

	"github.com/lixenwraith/pyramid-smash/status"
)

// StatusHUD formats the status line from registry metrics
func StatusHUD(reg *status.Registry) func() string {
	blocks := reg.Ints.Get(status.GameBlocks)
	bombs := reg.Ints.Get(status.GameBombs)
	ticks := reg.Ints.Get(status.EngineTicks)
	bodies := reg.Ints.Get(status.PhysicsBodies)
	state := reg.Strings.Get(status.GameState)

	return func() string {
		line := fmt.Sprintf(" blocks %d  bombs %d  bodies %d  tick %d ",
			blocks.Load(), bombs.Load(), bodies.Load(), ticks.Load())
		if s := state.Load(); s != "" {
			line += "[" + s + "] "
		}
		return line + " click: shoot  drag: throw  r: reset  p: pause  q: quit "
	}
}
