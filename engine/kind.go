package engine

import "fmt"

// ComponentKind names a component type for untyped attach/has/query
type ComponentKind uint8

const (
	KindTransform ComponentKind = iota
	KindVelocity
	KindPhysicsBody
	KindBlock
	KindBomb
	KindInput

	KindCount
)

var kindNames = [KindCount]string{
	KindTransform:   "Transform",
	KindVelocity:    "Velocity",
	KindPhysicsBody: "PhysicsBody",
	KindBlock:       "Block",
	KindBomb:        "Bomb",
	KindInput:       "Input",
}

func (k ComponentKind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("ComponentKind(%d)", uint8(k))
}

// Valid reports whether k names a registered kind
func (k ComponentKind) Valid() bool {
	return k < KindCount
}
