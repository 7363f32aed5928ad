package component

// BlockComponent tags pyramid blocks
type BlockComponent struct{}

// BombComponent tags projectiles
type BombComponent struct{}
