package game

import (
	"cmp"
	"slices"

	"github.com/pixil98/go-tileworld/internal/storage"
)

// PreThing describes map content that is not yet part of the live world.
// It is flipped between spawned and unspawned as the viewport moves and
// lives as long as its area is loaded.
type PreThing struct {
	Type  string
	Group Group
	Box

	// Settings are passed to the thing factory on spawn.
	Settings storage.ExtensionState

	Spawned bool

	// Thing is the live instance while spawned.
	Thing *Thing
}

// PreThingSet holds an area's PreThings grouped by Thing group, with one
// ordering per direction of travel.
type PreThingSet struct {
	groups [numGroups][numDirections][]*PreThing
	count  int
}

// NewPreThingSet sorts prethings into per-group, per-direction sequences.
// Ties keep input order. PreThings with an invalid group are dropped.
func NewPreThingSet(prethings []*PreThing) *PreThingSet {
	s := &PreThingSet{}

	for _, pt := range prethings {
		if !pt.Group.Valid() {
			continue
		}
		for _, d := range Directions() {
			s.groups[pt.Group][d] = append(s.groups[pt.Group][d], pt)
		}
		s.count++
	}

	for g := range s.groups {
		for _, d := range Directions() {
			slices.SortStableFunc(s.groups[g][d], func(a, b *PreThing) int {
				if d.Ascending() {
					return cmp.Compare(d.Key(a.Box), d.Key(b.Box))
				}
				return cmp.Compare(d.Key(b.Box), d.Key(a.Box))
			})
		}
	}

	return s
}

// Sequence returns the group's PreThings ordered for travel in direction d.
func (s *PreThingSet) Sequence(g Group, d Direction) []*PreThing {
	if s == nil || !g.Valid() || !d.Valid() {
		return nil
	}
	return s.groups[g][d]
}

// Len is the number of PreThings in the set.
func (s *PreThingSet) Len() int {
	if s == nil {
		return 0
	}
	return s.count
}

// Spawned counts the PreThings currently spawned.
func (s *PreThingSet) Spawned() int {
	if s == nil {
		return 0
	}
	n := 0
	for g := range s.groups {
		for _, pt := range s.groups[g][DirectionXInc] {
			if pt.Spawned {
				n++
			}
		}
	}
	return n
}
