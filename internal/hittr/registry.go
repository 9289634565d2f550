package hittr

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"github.com/pixil98/go-tileworld/internal/game"
)

type RegistryOpt func(*Registry)

// WithRecorder reports compilations and hits to rec. A nil rec is ignored.
func WithRecorder(rec Recorder) RegistryOpt {
	return func(r *Registry) {
		if rec != nil {
			r.recorder = rec
		}
	}
}

type groupCheck struct {
	group game.Group
	check HitCheck
}

// entry is everything compiled for one concrete type.
type entry struct {
	group     game.Group
	global    GlobalCheck
	checks    []groupCheck
	callbacks map[game.Group]HitCallback
	checkHits func(*game.Thing)
}

// Registry compiles collision routines per concrete type on first sight and
// dispatches them. It is not safe for concurrent use.
type Registry struct {
	cfg      Config
	entries  map[string]*entry
	recorder Recorder
}

func NewRegistry(cfg Config, opts ...RegistryOpt) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating collision config: %w", err)
	}

	r := &Registry{
		cfg:      cfg,
		entries:  map[string]*entry{},
		recorder: nopRecorder{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// CacheChecksForType compiles the routines for typ, a type of group g.
// Calling it again for a compiled type does nothing.
func (r *Registry) CacheChecksForType(typ string, g game.Group) {
	if _, ok := r.entries[typ]; ok {
		return
	}

	e := &entry{
		group:     g,
		callbacks: map[game.Group]HitCallback{},
	}

	if gen, ok := r.cfg.GlobalChecks[g]; ok {
		e.global = gen()
	}

	for _, other := range r.cfg.Groups {
		if gen, ok := r.cfg.HitChecks[g][other]; ok {
			e.checks = append(e.checks, groupCheck{group: other, check: gen()})
		}
		if gen, ok := r.cfg.HitCallbacks[g][other]; ok {
			e.callbacks[other] = gen()
		}
	}

	e.checkHits = r.generateHitsCheck(e)
	r.entries[typ] = e
	r.recorder.TypeCompiled(g)

	slog.Debug("compiled collision rules", "type", typ, "group", g, "checks", len(e.checks), "callbacks", len(e.callbacks))
}

// Compiled reports whether typ has been compiled.
func (r *Registry) Compiled(typ string) bool {
	_, ok := r.entries[typ]
	return ok
}

// Types returns the compiled types, sorted.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.entries))
	for typ := range r.entries {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

// Participates reports whether things of group g take part in collision.
func (r *Registry) Participates(g game.Group) bool {
	return r.cfg.participates(g)
}

// CollidesWith returns the groups g has hit checks against, in dispatch
// order.
func (r *Registry) CollidesWith(g game.Group) []game.Group {
	var groups []game.Group
	for _, other := range r.cfg.Groups {
		if _, ok := r.cfg.HitChecks[g][other]; ok {
			groups = append(groups, other)
		}
	}
	return slices.Clip(groups)
}

// CheckHitForThings runs the compiled hit check of thing's type against
// other. Global checks are not consulted.
func (r *Registry) CheckHitForThings(thing, other *game.Thing) (bool, error) {
	e, ok := r.entries[thing.Type]
	if !ok {
		return false, fmt.Errorf("%w: type %q is not compiled", ErrNoHitCheck, thing.Type)
	}

	for _, gc := range e.checks {
		if gc.group == other.Group {
			r.recorder.HitChecked(e.group)
			return gc.check(thing, other), nil
		}
	}
	return false, fmt.Errorf("%w: %s -> %s", ErrNoHitCheck, thing.Type, other.Group)
}

// RunHitCallbackForThings runs the compiled hit callback of thing's type
// for other without checking for a hit first.
func (r *Registry) RunHitCallbackForThings(thing, other *game.Thing) error {
	e, ok := r.entries[thing.Type]
	if !ok {
		return fmt.Errorf("%w: type %q is not compiled", ErrNoHitCallback, thing.Type)
	}

	cb, ok := e.callbacks[other.Group]
	if !ok {
		return fmt.Errorf("%w: %s -> %s", ErrNoHitCallback, thing.Type, other.Group)
	}

	r.recorder.HitCallback(e.group, other.Group)
	cb(thing, other)
	return nil
}

// globalCheckFor returns the global check of t's type, compiling the type
// if it has not been seen yet.
func (r *Registry) globalCheckFor(t *game.Thing) GlobalCheck {
	e, ok := r.entries[t.Type]
	if !ok {
		r.CacheChecksForType(t.Type, t.Group)
		e = r.entries[t.Type]
	}
	return e.global
}
