package status

// Metric names shared between writers and the HUD
const (
	EngineTicks       = "engine.ticks"
	EngineFrames      = "engine.frames"
	EnginePaused      = "engine.paused"
	EngineFrameMillis = "engine.frame_ms"
	PhysicsBodies     = "physics.bodies"
	PhysicsCollisions = "physics.collisions"
	RenderFrames      = "render.frames"
	GameBlocks        = "game.blocks"
	GameBombs         = "game.bombs"
	GameState         = "game.state"
)
