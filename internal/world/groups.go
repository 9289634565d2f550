package world

import (
	"slices"

	"github.com/pixil98/go-tileworld/internal/game"
)

// GroupHoldr owns the live Things, kept per group in insertion order.
// Killed things stay in their group until Flush so sweeps in progress see
// a stable sequence.
type GroupHoldr struct {
	groups map[game.Group][]*game.Thing
	byID   map[string]*game.Thing
	dead   []*game.Thing
}

func NewGroupHoldr() *GroupHoldr {
	return &GroupHoldr{
		groups: map[game.Group][]*game.Thing{},
		byID:   map[string]*game.Thing{},
	}
}

// Add registers t as live.
func (h *GroupHoldr) Add(t *game.Thing) {
	if _, ok := h.byID[t.ID]; ok {
		return
	}
	t.Alive = true
	h.groups[t.Group] = append(h.groups[t.Group], t)
	h.byID[t.ID] = t
}

// Kill marks t not alive. It is removed on the next Flush.
func (h *GroupHoldr) Kill(t *game.Thing) {
	if t == nil || !t.Alive {
		return
	}
	if _, ok := h.byID[t.ID]; !ok {
		return
	}
	t.Alive = false
	h.dead = append(h.dead, t)
}

// KillAll kills every live thing.
func (h *GroupHoldr) KillAll() {
	h.ForEach(h.Kill)
}

// Flush removes killed things from their groups and quadrants and returns
// them.
func (h *GroupHoldr) Flush() []*game.Thing {
	if len(h.dead) == 0 {
		return nil
	}

	dead := h.dead
	h.dead = nil

	for _, t := range dead {
		t.DetachQuadrants()
		delete(h.byID, t.ID)
		h.groups[t.Group] = slices.DeleteFunc(h.groups[t.Group], func(o *game.Thing) bool {
			return o == t
		})
	}
	return dead
}

// ForEach calls fn for every live thing in group order. Things added or
// killed by fn do not change which things are visited.
func (h *GroupHoldr) ForEach(fn func(*game.Thing)) {
	for _, g := range game.Groups() {
		for _, t := range slices.Clone(h.groups[g]) {
			if t.Alive {
				fn(t)
			}
		}
	}
}

// Group returns the live things of g in insertion order.
func (h *GroupHoldr) Group(g game.Group) []*game.Thing {
	var live []*game.Thing
	for _, t := range h.groups[g] {
		if t.Alive {
			live = append(live, t)
		}
	}
	return live
}

// Get returns the live thing with the given id.
func (h *GroupHoldr) Get(id string) (*game.Thing, bool) {
	t, ok := h.byID[id]
	if !ok || !t.Alive {
		return nil, false
	}
	return t, true
}

// Count returns the number of live things in g.
func (h *GroupHoldr) Count(g game.Group) int {
	n := 0
	for _, t := range h.groups[g] {
		if t.Alive {
			n++
		}
	}
	return n
}

// Len returns the number of live things.
func (h *GroupHoldr) Len() int {
	n := 0
	for _, g := range game.Groups() {
		n += h.Count(g)
	}
	return n
}
