package component

import "github.com/lixenwraith/pyramid-smash/vmath"

// VelocityComponent drives a dynamic body, overwritten into the body before each step
// and read back after it
type VelocityComponent struct {
	Linear vmath.Vec3
}
