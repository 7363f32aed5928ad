package parameter

import "time"

// Ground slab
const (
	GroundY         = -0.5
	GroundHalfWidth = 25.0
	GroundHalfDepth = 25.0
	GroundHalfThick = 0.5
)

// Pyramid layout
const (
	PyramidLevels = 5
	BlockSize     = 1.0
	BlockSpacing  = 0.1
	BlockBaseY    = 0.5
	BlockMass     = 0.5
	PyramidBlocks = PyramidLevels * (PyramidLevels + 1) / 2
)

// Projectile
const (
	BallRadius       = 0.4
	BallMass         = 2.0
	BallSpawnHeight  = 10.0
	BallSpawnDepth   = 15.0
	BallSpawnSpread  = 5.0  // x offset per unit of aim direction
	BallLaunchSpeed  = 20.0 // along each aim axis, z launch is fixed toward the pyramid
	BallLifetime     = 10 * time.Second
	ShootAimScale    = 0.5 // screen NDC to aim direction
	DragThrowScale   = 10.0
	DragThrowForward = -5.0
	DragPickRadius   = 1.0 // max ray distance to grab a ball
)
