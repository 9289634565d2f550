package spawnr

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/pixil98/go-tileworld/internal/game"
	"github.com/pixil98/go-tileworld/internal/storage"
)

var (
	treeType = &game.ThingType{Group: game.GroupSolid, Width: 10, Height: 10}
	npcType  = &game.ThingType{Group: game.GroupCharacter, Width: 10, Height: 10}
)

func place(tt *game.ThingType, id string, x, y float64) *game.Command {
	return &game.Command{Thing: storage.NewResolvedSmartIdentifier(id, tt), X: x, Y: y}
}

// recordingScreen captures attributes copied on location entry.
type recordingScreen struct {
	attrs map[string]string
}

func (s *recordingScreen) SetAttribute(key string, value json.RawMessage) {
	if s.attrs == nil {
		s.attrs = map[string]string{}
	}
	s.attrs[key] = string(value)
}

// recorder collects the PreThings passed to spawn callbacks.
type recorder struct {
	spawned   []float64
	unspawned []float64
}

func (r *recorder) onSpawn(pt *game.PreThing) bool {
	r.spawned = append(r.spawned, pt.Left)
	return true
}

func (r *recorder) onUnspawn(pt *game.PreThing) bool {
	r.unspawned = append(r.unspawned, pt.Left)
	return true
}

func newTestSpawnr(t *testing.T, area *game.Area, opts ...AreaSpawnrOpt) *AreaSpawnr {
	t.Helper()

	maps, err := storage.NewMemoryStore(map[string]*game.Map{
		"route": {
			LocationDefault: "start",
			Locations: map[string]*game.Location{
				"start": {Area: "field"},
				"gate":  {Area: "field", X: 100},
			},
			Areas: map[string]*game.Area{"field": area},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := NewAreaSpawnr(maps, opts...)
	if err := s.SetMap("route", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestAreaSpawnr_SpawnAreaIncreasingX(t *testing.T) {
	rec := &recorder{}
	area := &game.Area{Creation: []*game.Command{
		place(treeType, "tree", 100, 0),
		place(treeType, "tree", 0, 0),
		place(treeType, "tree", 50, 0),
	}}
	s := newTestSpawnr(t, area, WithOnSpawn(rec.onSpawn))

	n := s.SpawnArea(game.DirectionXInc, 0, 60, 100, 0)

	testutil.AssertEqual(t, "count", n, 2)
	testutil.AssertEqual(t, "spawned", rec.spawned, []float64{0, 50})

	seq := s.PreThings().Sequence(game.GroupSolid, game.DirectionXInc)
	testutil.AssertEqual(t, "x=100 unspawned", seq[2].Spawned, false)
}

func TestAreaSpawnr_BoundaryInclusive(t *testing.T) {
	// Each PreThing's leading edge for the direction sits exactly on the
	// box's near or far edge.
	tests := map[string]struct {
		direction game.Direction
		box       game.Box
		at        [][2]float64
	}{
		"xInc near and far": {
			direction: game.DirectionXInc,
			box:       game.Box{Top: 0, Right: 60, Bottom: 100, Left: 20},
			at:        [][2]float64{{20, 0}, {60, 0}},
		},
		"xDec near and far": {
			direction: game.DirectionXDec,
			box:       game.Box{Top: 0, Right: 60, Bottom: 100, Left: 20},
			at:        [][2]float64{{50, 0}, {10, 0}},
		},
		"yInc near and far": {
			direction: game.DirectionYInc,
			box:       game.Box{Top: 20, Right: 100, Bottom: 60, Left: 0},
			at:        [][2]float64{{0, 20}, {0, 60}},
		},
		"yDec near and far": {
			direction: game.DirectionYDec,
			box:       game.Box{Top: 20, Right: 100, Bottom: 60, Left: 0},
			at:        [][2]float64{{0, 50}, {0, 10}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			area := &game.Area{}
			for _, p := range tt.at {
				area.Creation = append(area.Creation, place(treeType, "tree", p[0], p[1]))
			}
			// One PreThing just outside each edge.
			outside := []*game.Command{
				place(treeType, "tree", tt.box.Left-11, tt.box.Top-11),
				place(treeType, "tree", tt.box.Right+1, tt.box.Bottom+1),
			}
			area.Creation = append(area.Creation, outside...)

			s := newTestSpawnr(t, area)
			n := s.SpawnArea(tt.direction, tt.box.Top, tt.box.Right, tt.box.Bottom, tt.box.Left)

			testutil.AssertEqual(t, "count", n, 2)
			for _, pt := range s.PreThings().Sequence(game.GroupSolid, tt.direction) {
				inside := pt.Left >= tt.box.Left-10 && pt.Left <= tt.box.Right &&
					pt.Top >= tt.box.Top-10 && pt.Top <= tt.box.Bottom
				testutil.AssertEqual(t, "spawned", pt.Spawned, inside)
			}
		})
	}
}

func TestAreaSpawnr_Monotonic(t *testing.T) {
	rec := &recorder{}
	area := &game.Area{Creation: []*game.Command{
		place(treeType, "tree", 0, 0),
		place(treeType, "tree", 50, 0),
		place(treeType, "tree", 100, 0),
		place(npcType, "npc", 40, 0),
	}}
	s := newTestSpawnr(t, area, WithOnSpawn(rec.onSpawn), WithOnUnspawn(rec.onUnspawn))

	s.SpawnArea(game.DirectionXInc, 0, 60, 100, 0)
	s.SpawnArea(game.DirectionXInc, 0, 60, 100, 0)
	s.SpawnArea(game.DirectionXInc, 0, 120, 100, 0)

	testutil.AssertEqual(t, "spawned once each", rec.spawned, []float64{0, 50, 40, 100})
	testutil.AssertEqual(t, "none unspawned", len(rec.unspawned), 0)
	testutil.AssertEqual(t, "set count", s.PreThings().Spawned(), 4)

	s.UnspawnArea(game.DirectionXDec, 0, 30, 100, -10)
	s.UnspawnArea(game.DirectionXDec, 0, 30, 100, -10)

	testutil.AssertEqual(t, "unspawned once", rec.unspawned, []float64{0})
	testutil.AssertEqual(t, "no respawn", rec.spawned, []float64{0, 50, 40, 100})
}

func TestAreaSpawnr_EmptyBox(t *testing.T) {
	area := &game.Area{Creation: []*game.Command{place(treeType, "tree", 50, 0)}}
	s := newTestSpawnr(t, area)

	testutil.AssertEqual(t, "before", s.SpawnArea(game.DirectionXInc, 0, 40, 100, 0), 0)
	testutil.AssertEqual(t, "after", s.SpawnArea(game.DirectionXInc, 0, 200, 100, 70), 0)
	testutil.AssertEqual(t, "bad direction", s.SpawnArea(game.Direction(9), 0, 200, 100, 0), 0)
}

func TestAreaSpawnr_SetLocation(t *testing.T) {
	screen := &recordingScreen{}
	var stretched, afters []string
	area := &game.Area{
		Attributes: storage.ExtensionState{"setting": []byte(`"grass"`), "music": []byte(`"theme"`)},
		Stretches:  []*game.Command{place(treeType, "water", 0, 0)},
		Afters:     []*game.Command{place(npcType, "guide", 5, 5)},
		Creation:   []*game.Command{place(treeType, "tree", 0, 0)},
	}

	s := newTestSpawnr(t, area,
		WithScreen(screen, "setting", "absent"),
		WithOnStretch(func(_ *game.Area, cmd *game.Command) { stretched = append(stretched, cmd.Thing.Id()) }),
		WithOnAfter(func(_ *game.Area, cmd *game.Command) { afters = append(afters, cmd.Thing.Id()) }),
	)

	testutil.AssertEqual(t, "map", s.MapName(), "route")
	testutil.AssertEqual(t, "location", s.LocationName(), "start")
	testutil.AssertEqual(t, "area", s.AreaName(), "field")
	testutil.AssertEqual(t, "screen", screen.attrs, map[string]string{"setting": `"grass"`})
	testutil.AssertEqual(t, "stretches", stretched, []string{"water"})
	testutil.AssertEqual(t, "afters", afters, []string{"guide"})

	s.SpawnArea(game.DirectionXInc, 0, 100, 100, 0)
	testutil.AssertEqual(t, "spawned", s.PreThings().Spawned(), 1)

	if err := s.SetLocation("gate"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "reset", s.PreThings().Spawned(), 0)
	testutil.AssertEqual(t, "location x", s.Location().X, 100.0)
}

func TestAreaSpawnr_Errors(t *testing.T) {
	area := &game.Area{Creation: []*game.Command{place(treeType, "tree", 0, 0)}}
	s := newTestSpawnr(t, area)

	tests := map[string]struct {
		run    func() error
		expErr error
	}{
		"unknown map": {
			run:    func() error { return s.SetMap("nowhere", "") },
			expErr: ErrUnknownMap,
		},
		"unknown location": {
			run:    func() error { return s.SetLocation("nowhere") },
			expErr: ErrUnknownLocation,
		},
		"unknown location on map": {
			run:    func() error { return s.SetMap("route", "nowhere") },
			expErr: ErrUnknownLocation,
		},
		"location with missing area": {
			run: func() error {
				s.current.Locations["ghost"] = &game.Location{Area: "missing"}
				return s.SetLocation("ghost")
			},
			expErr: ErrUnknownLocation,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.run()
			if !errors.Is(err, tt.expErr) {
				t.Errorf("expected %v, got %v", tt.expErr, err)
			}
		})
	}

	empty := NewAreaSpawnr(nil)
	if err := empty.SetLocation("start"); !errors.Is(err, ErrUnknownMap) {
		t.Errorf("expected ErrUnknownMap without a map, got %v", err)
	}
}

func TestAreaSpawnr_FailedSetMapKeepsState(t *testing.T) {
	area := &game.Area{Creation: []*game.Command{place(treeType, "tree", 0, 0)}}
	s := newTestSpawnr(t, area)

	if err := s.SetMap("route", "nowhere"); !errors.Is(err, ErrUnknownLocation) {
		t.Fatalf("expected ErrUnknownLocation, got %v", err)
	}

	testutil.AssertEqual(t, "map", s.MapName(), "route")
	testutil.AssertEqual(t, "location", s.LocationName(), "start")
}

func TestAreaSpawnr_RejectedSpawnRollsBack(t *testing.T) {
	area := &game.Area{Creation: []*game.Command{
		place(treeType, "tree", 0, 0),
		place(treeType, "tree", 50, 0),
	}}
	s := newTestSpawnr(t, area, WithOnSpawn(func(pt *game.PreThing) bool {
		return pt.Left != 50
	}))

	n := s.SpawnArea(game.DirectionXInc, 0, 100, 100, 0)
	testutil.AssertEqual(t, "count", n, 1)

	seq := s.PreThings().Sequence(game.GroupSolid, game.DirectionXInc)
	testutil.AssertEqual(t, "first spawned", seq[0].Spawned, true)
	testutil.AssertEqual(t, "second spawned", seq[1].Spawned, false)
}

func TestAreaSpawnr_StateRestore(t *testing.T) {
	area := &game.Area{Creation: []*game.Command{place(treeType, "tree", 0, 0)}}
	s := newTestSpawnr(t, area)
	s.SpawnArea(game.DirectionXInc, 0, 100, 100, 0)

	saved := s.State()
	before := s.PreThings()

	if err := s.SetLocation("gate"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "moved", s.LocationName(), "gate")

	s.Restore(saved)
	testutil.AssertEqual(t, "location", s.LocationName(), "start")
	testutil.AssertEqual(t, "area", s.AreaName(), "field")
	testutil.AssertEqual(t, "same prethings", s.PreThings() == before, true)
	testutil.AssertEqual(t, "still spawned", before.Sequence(game.GroupSolid, game.DirectionXInc)[0].Spawned, true)
}
