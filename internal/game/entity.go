package game

import (
	"github.com/pixil98/go-tileworld/internal/storage"
)

// Thing is a live entity in the world. Things are owned by the live entity
// registry; quadrants and collision routines only hold references.
type Thing struct {
	// ID is unique per live instance.
	ID string

	// Type is the concrete kind of thing (e.g. "bug-catcher"). Collision
	// routines are compiled per type.
	Type string

	// Group selects which collision rules apply.
	Group Group

	Box

	// Tolerance shrinks the box on every side when testing overlap.
	Tolerance float64

	Alive bool

	Settings storage.ExtensionState

	quadrants []*Quadrant
}

// Quadrants returns the quadrants the thing is registered in, in
// registration order.
func (t *Thing) Quadrants() []*Quadrant {
	return t.quadrants
}

// NumQuadrants is the number of quadrants the thing is registered in.
func (t *Thing) NumQuadrants() int {
	return len(t.quadrants)
}

// DetachQuadrants removes the thing from every quadrant it is registered in.
func (t *Thing) DetachQuadrants() {
	for _, q := range t.quadrants {
		q.remove(t)
	}
	// A fresh slice keeps any in-flight iteration over the old one intact.
	t.quadrants = nil
}
