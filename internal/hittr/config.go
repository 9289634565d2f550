package hittr

import (
	"fmt"
	"slices"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-tileworld/internal/game"
)

// GlobalCheck reports whether a thing may collide at all right now.
type GlobalCheck func(thing *game.Thing) bool

// HitCheck reports whether thing and other are touching.
type HitCheck func(thing, other *game.Thing) bool

// HitCallback reacts to a confirmed hit between thing and other.
type HitCallback func(thing, other *game.Thing)

// Generators are invoked once per concrete type, the first time the type is
// compiled. Anything they capture is private to that type.
type (
	GlobalCheckGenerator func() GlobalCheck
	HitCheckGenerator    func() HitCheck
	HitCallbackGenerator func() HitCallback
)

// Config declares which groups collide with which. Pair tables are keyed by
// owner group, then by the collidable group.
type Config struct {
	// Groups participating in collision, in dispatch order.
	Groups []game.Group

	GlobalChecks map[game.Group]GlobalCheckGenerator
	HitChecks    map[game.Group]map[game.Group]HitCheckGenerator
	HitCallbacks map[game.Group]map[game.Group]HitCallbackGenerator
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	seen := map[game.Group]bool{}
	for _, g := range c.Groups {
		if !g.Valid() {
			el.Add(fmt.Errorf("%w: %d", game.ErrUnknownGroup, int(g)))
			continue
		}
		if seen[g] {
			el.Add(fmt.Errorf("group %s listed twice", g))
		}
		seen[g] = true
	}

	for g, gen := range c.GlobalChecks {
		if !seen[g] {
			el.Add(fmt.Errorf("global check for non-participating group %s", g))
		}
		if gen == nil {
			el.Add(fmt.Errorf("global check for %s: generator is nil", g))
		}
	}

	el.Add(validatePairs("hit check", c.HitChecks, seen))
	el.Add(validatePairs("hit callback", c.HitCallbacks, seen))

	return el.Err()
}

func validatePairs[G any](kind string, table map[game.Group]map[game.Group]G, seen map[game.Group]bool) error {
	el := errors.NewErrorList()
	for owner, others := range table {
		if !seen[owner] {
			el.Add(fmt.Errorf("%s for non-participating group %s", kind, owner))
		}
		for other, gen := range others {
			if !seen[other] {
				el.Add(fmt.Errorf("%s %s -> %s: non-participating group %s", kind, owner, other, other))
			}
			if isNilFunc(gen) {
				el.Add(fmt.Errorf("%s %s -> %s: generator is nil", kind, owner, other))
			}
		}
	}
	return el.Err()
}

func isNilFunc(gen any) bool {
	switch g := gen.(type) {
	case HitCheckGenerator:
		return g == nil
	case HitCallbackGenerator:
		return g == nil
	}
	return false
}

// participates reports whether g is listed in the config.
func (c *Config) participates(g game.Group) bool {
	return slices.Contains(c.Groups, g)
}
