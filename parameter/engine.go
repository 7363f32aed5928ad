package parameter

import "time"

// Game loop timing
const (
	// FixedTimestep is the simulated time advanced by one pipeline tick
	FixedTimestep = time.Second / 60

	// FrameInterval is the display frame interval driving the loop (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// MaxFrameDelta clamps a single frame after a stall, 0 disables
	MaxFrameDelta = 250 * time.Millisecond

	// EventChannelSize buffers terminal events between the poller and the loop
	EventChannelSize = 64
)

// ECS limits
const (
	// WorldCapacity is the maximum number of live entities
	WorldCapacity = 4096
)
