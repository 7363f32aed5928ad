package engine

// System is one stage of the per-tick pipeline
type System interface {
	// Name identifies the system in errors and logs
	Name() string

	// Priority orders systems, lower runs first
	Priority() int

	// Update runs the system once for the current tick
	Update() error
}
