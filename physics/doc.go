// Package physics is a small 3D rigid-body engine.
//
// The simulation core treats it as a black box: bodies are created from
// descriptors, colliders are attached to bodies, and World.Step advances
// everything by one fixed timestep, reporting contact start/stop pairs to an
// EventQueue. Handles are never reused for the lifetime of a World.
//
// Supported shapes are axis-aligned cuboids and balls. Cuboids do not pick up
// spin from contacts; balls roll on the surface they touch.
package physics
