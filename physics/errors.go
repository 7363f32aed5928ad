package physics

import "errors"

var (
	// ErrInvalidBodyDesc is returned for a nil descriptor or a non-finite pose
	ErrInvalidBodyDesc = errors.New("invalid rigid body descriptor")

	// ErrInvalidCollider is returned for non-positive extents, radius or mass
	ErrInvalidCollider = errors.New("invalid collider descriptor")

	// ErrBodyRemoved is returned when attaching to a body no longer in the world
	ErrBodyRemoved = errors.New("rigid body not in world")

	// ErrColliderExists is returned when a body already carries a collider
	ErrColliderExists = errors.New("rigid body already has a collider")
)
