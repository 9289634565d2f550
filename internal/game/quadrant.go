package game

import "slices"

// Quadrant is a rectangular bucket of the map holding, per group, the
// things currently overlapping it in insertion order.
type Quadrant struct {
	Box

	Row int
	Col int

	things [numGroups][]*Thing
}

func NewQuadrant(row, col int, box Box) *Quadrant {
	return &Quadrant{
		Box: box,
		Row: row,
		Col: col,
	}
}

// Things returns the group's things in insertion order. The slice belongs
// to the quadrant; callers that may mutate membership must copy it first.
func (q *Quadrant) Things(g Group) []*Thing {
	if !g.Valid() {
		return nil
	}
	return q.things[g]
}

// Len returns the number of things of the group in the quadrant.
func (q *Quadrant) Len(g Group) int {
	return len(q.Things(g))
}

// Add registers t in the quadrant and the quadrant on t.
func (q *Quadrant) Add(t *Thing) {
	if !t.Group.Valid() {
		return
	}
	q.things[t.Group] = append(q.things[t.Group], t)
	t.quadrants = append(t.quadrants, q)
}

// ClearQuadrants empties every given quadrant. Things found in them lose all
// of their registrations, so callers pass the full quadrant set.
func ClearQuadrants(quads []*Quadrant) {
	for _, q := range quads {
		for g := range q.things {
			for _, t := range q.things[g] {
				t.quadrants = nil
			}
			q.things[g] = nil
		}
	}
}

// remove drops t while keeping the order of the remaining things.
func (q *Quadrant) remove(t *Thing) {
	if !t.Group.Valid() {
		return
	}
	list := q.things[t.Group]
	i := slices.Index(list, t)
	if i < 0 {
		return
	}
	q.things[t.Group] = slices.Delete(slices.Clone(list), i, i+1)
}
