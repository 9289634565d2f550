package hittr

import (
	"github.com/pixil98/go-tileworld/internal/game"
)

// CheckHitsForThing runs every hit check of thing's type against the things
// sharing its quadrants, firing callbacks for confirmed hits. The type is
// compiled first if needed.
func (r *Registry) CheckHitsForThing(thing *game.Thing) {
	e, ok := r.entries[thing.Type]
	if !ok {
		r.CacheChecksForType(thing.Type, thing.Group)
		e = r.entries[thing.Type]
	}
	e.checkHits(thing)
}

// generateHitsCheck builds the per-type sweep. Quadrants are visited in the
// thing's registration order and candidates in insertion order. Each
// candidate list is copied before scanning so callbacks may change quadrant
// membership. A pair sharing several quadrants is visited once per shared
// quadrant.
func (r *Registry) generateHitsCheck(e *entry) func(*game.Thing) {
	return func(thing *game.Thing) {
		if e.global != nil && !e.global(thing) {
			return
		}

		var candidates []*game.Thing
		for _, q := range thing.Quadrants() {
			for _, gc := range e.checks {
				candidates = append(candidates[:0], q.Things(gc.group)...)

				for _, other := range candidates {
					// Things after this one in the list check against it on
					// their own sweep.
					if other == thing {
						break
					}

					if global := r.globalCheckFor(other); global != nil && !global(other) {
						continue
					}

					r.recorder.HitChecked(e.group)
					if !gc.check(thing, other) {
						continue
					}

					cb, ok := e.callbacks[other.Group]
					if !ok {
						continue
					}
					r.recorder.HitCallback(e.group, other.Group)
					cb(thing, other)
				}
			}
		}
	}
}
