package parameter

// System execution priorities, lower runs first
const (
	PriorityInput   = 5  // Drag release writes Velocity before physics reads it
	PriorityPhysics = 10 // Push, step, read back
	PriorityAudio   = 20 // Consumes collisions from the step
	PriorityRender  = 30 // Observes post-physics transforms
)
