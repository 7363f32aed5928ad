package parameter

// Gravity along y in m/s^2
const GravityY = -9.81

// Collider material
const (
	BlockRestitution = 0.1
	BlockFriction    = 0.6
	BallRestitution  = 0.3
	BallFriction     = 0.4
	GroundFriction   = 0.8
)
