package engine

import "errors"

var (
	// ErrPhysicsNotInitialized is returned by physics-dependent calls made before InitPhysics
	ErrPhysicsNotInitialized = errors.New("physics not initialized")

	// ErrPhysicsBodyCreationFailed is returned when the physics world rejects a body or collider
	ErrPhysicsBodyCreationFailed = errors.New("physics body creation failed")

	// ErrInvalidEntity is returned for an id that is not live
	ErrInvalidEntity = errors.New("invalid entity reference")

	// ErrWorldFull is returned when every entity slot is in use
	ErrWorldFull = errors.New("world entity capacity exhausted")
)
