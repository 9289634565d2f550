package spawnr

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-tileworld/internal/game"
	"github.com/pixil98/go-tileworld/internal/storage"
)

// Callback is run for a PreThing after its spawned flag flips. Returning
// false rolls the flip back.
type Callback func(pt *game.PreThing) bool

// CommandHook receives the decorative commands of an area on entry.
type CommandHook func(area *game.Area, cmd *game.Command)

// ScreenState receives area attributes on entry.
type ScreenState interface {
	SetAttribute(key string, value json.RawMessage)
}

// AreaSpawnr tracks the current map, location and area, and flips the
// area's PreThings in and out of the world along a direction of travel.
type AreaSpawnr struct {
	maps storage.Storer[*game.Map]

	screen           ScreenState
	screenAttributes []string

	onSpawn   Callback
	onUnspawn Callback
	onStretch CommandHook
	onAfter   CommandHook

	mapName      string
	current      *game.Map
	locationName string
	location     *game.Location
	area         *game.Area
	prethings    *game.PreThingSet
}

func NewAreaSpawnr(maps storage.Storer[*game.Map], opts ...AreaSpawnrOpt) *AreaSpawnr {
	s := &AreaSpawnr{
		maps: maps,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetMap selects the named map and enters location, or the map's default
// location when location is empty. On error the current map is kept.
func (s *AreaSpawnr) SetMap(name string, location string) error {
	m, ok := s.maps.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMap, name)
	}

	if location == "" {
		location = m.LocationDefault
	}
	return s.enter(name, m, location)
}

// SetLocation enters the named location of the current map. The area's
// PreThings are rebuilt unspawned, screen attributes are copied and the
// stretch and after commands are handed to their hooks.
func (s *AreaSpawnr) SetLocation(name string) error {
	if s.current == nil {
		return fmt.Errorf("%w: no map selected", ErrUnknownMap)
	}
	return s.enter(s.mapName, s.current, name)
}

func (s *AreaSpawnr) enter(mapName string, m *game.Map, name string) error {
	loc, ok := m.Locations[name]
	if !ok || loc == nil {
		return fmt.Errorf("%w: %q in map %s", ErrUnknownLocation, name, mapName)
	}

	area, ok := m.Areas[loc.Area]
	if !ok || area == nil {
		return fmt.Errorf("%w: %q references missing area %q", ErrUnknownLocation, name, loc.Area)
	}

	prethings, err := area.PreThings()
	if err != nil {
		return fmt.Errorf("building area %s: %w", loc.Area, err)
	}

	s.mapName = mapName
	s.current = m
	s.locationName = name
	s.location = loc
	s.area = area
	s.prethings = prethings

	if s.screen != nil {
		for _, attr := range s.screenAttributes {
			if raw, ok := area.Attributes.Raw(attr); ok {
				s.screen.SetAttribute(attr, raw)
			}
		}
	}

	if s.onStretch != nil {
		for _, cmd := range area.Stretches {
			s.onStretch(area, cmd)
		}
	}
	if s.onAfter != nil {
		for _, cmd := range area.Afters {
			s.onAfter(area, cmd)
		}
	}

	slog.Info("entered location", "map", mapName, "location", name, "area", loc.Area, "prethings", prethings.Len())

	return nil
}

// State is the current map, location and area selection of an AreaSpawnr.
type State struct {
	mapName      string
	current      *game.Map
	locationName string
	location     *game.Location
	area         *game.Area
	prethings    *game.PreThingSet
}

// State returns the current selection so it can be restored later.
func (s *AreaSpawnr) State() State {
	return State{
		mapName:      s.mapName,
		current:      s.current,
		locationName: s.locationName,
		location:     s.location,
		area:         s.area,
		prethings:    s.prethings,
	}
}

// Restore returns to a selection taken with State. PreThings keep the
// spawned flags they had. No hooks are run.
func (s *AreaSpawnr) Restore(st State) {
	s.mapName = st.mapName
	s.current = st.current
	s.locationName = st.locationName
	s.location = st.location
	s.area = st.area
	s.prethings = st.prethings
}

// SpawnArea spawns every unspawned PreThing in the box along d and returns
// how many were spawned.
func (s *AreaSpawnr) SpawnArea(d game.Direction, top, right, bottom, left float64) int {
	return s.applySpawnAction(s.onSpawn, true, d, game.Box{Top: top, Right: right, Bottom: bottom, Left: left})
}

// UnspawnArea unspawns every spawned PreThing in the box along d and
// returns how many were unspawned.
func (s *AreaSpawnr) UnspawnArea(d game.Direction, top, right, bottom, left float64) int {
	return s.applySpawnAction(s.onUnspawn, false, d, game.Box{Top: top, Right: right, Bottom: bottom, Left: left})
}

// applySpawnAction flips to target every PreThing of the d ordering whose
// leading edge lies between the near and far edges of box, inclusive. The
// bounds are found by linear scans so nearly sorted input still works.
func (s *AreaSpawnr) applySpawnAction(cb Callback, target bool, d game.Direction, box game.Box) int {
	if !d.Valid() {
		return 0
	}

	near, far := d.Key(box), d.Opposite().Key(box)
	flipped := 0

	for _, g := range game.Groups() {
		seq := s.prethings.Sequence(g, d)
		if len(seq) == 0 {
			continue
		}

		start := 0
		for start < len(seq) && !pastNear(d, d.Key(seq[start].Box), near) {
			start++
		}

		end := len(seq) - 1
		for end >= start && !beforeFar(d, d.Key(seq[end].Box), far) {
			end--
		}

		for i := start; i <= end; i++ {
			pt := seq[i]
			if pt.Spawned == target {
				continue
			}
			pt.Spawned = target
			if cb != nil && !cb(pt) {
				pt.Spawned = !target
				continue
			}
			flipped++
		}
	}

	return flipped
}

func pastNear(d game.Direction, key, near float64) bool {
	if d.Ascending() {
		return key >= near
	}
	return key <= near
}

func beforeFar(d game.Direction, key, far float64) bool {
	if d.Ascending() {
		return key <= far
	}
	return key >= far
}

func (s *AreaSpawnr) MapName() string {
	return s.mapName
}

func (s *AreaSpawnr) LocationName() string {
	return s.locationName
}

// Location returns the entered location, or nil before the first SetMap.
func (s *AreaSpawnr) Location() *game.Location {
	return s.location
}

// AreaName returns the name of the entered area.
func (s *AreaSpawnr) AreaName() string {
	if s.location == nil {
		return ""
	}
	return s.location.Area
}

func (s *AreaSpawnr) Area() *game.Area {
	return s.area
}

func (s *AreaSpawnr) PreThings() *game.PreThingSet {
	return s.prethings
}
