package component

// InputComponent holds drag gesture state while a pointer drags a projectile
// Coordinates are normalized device coordinates in [-1, 1], y up
type InputComponent struct {
	DragStartX float64
	DragStartY float64
	DragEndX   float64
	DragEndY   float64
	PointerID  int
	Active     bool
}
