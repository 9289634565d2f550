package world

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pixil98/go-tileworld/internal/factory"
	"github.com/pixil98/go-tileworld/internal/game"
	"github.com/pixil98/go-tileworld/internal/hittr"
	"github.com/pixil98/go-tileworld/internal/quadrants"
	"github.com/pixil98/go-tileworld/internal/spawnr"
	"github.com/pixil98/go-tileworld/internal/viewport"
)

const (
	DefaultScreenWidth  = 320
	DefaultScreenHeight = 288
)

// World ties the live things, their quadrants, the collision registry and
// the area spawner together and advances them one tick at a time.
type World struct {
	mu sync.Mutex

	registry *hittr.Registry
	keeper   *quadrants.Keeper
	holdr    *GroupHoldr
	makr     *factory.ObjectMakr
	spawnr   *spawnr.AreaSpawnr
	screen   *viewport.Screen
	viewport *viewport.Controller

	publisher game.Publisher
	recorder  Recorder

	quadrantSize     float64
	screenWidth      float64
	screenHeight     float64
	spawnMargin      float64
	screenAttributes []string
	scrollX, scrollY float64
	playerType       string
	startMap         string
	startLocation    string

	player *game.Thing

	// Commands handed over while entering a location, made once entry
	// succeeds.
	pending []*game.Command
}

func NewWorld(dict *game.Dictionary, registry *hittr.Registry, opts ...WorldOpt) *World {
	w := &World{
		registry:     registry,
		holdr:        NewGroupHoldr(),
		makr:         factory.NewObjectMakr(dict.ThingTypes),
		recorder:     nopRecorder{},
		quadrantSize: quadrants.DefaultQuadrantSize,
		screenWidth:  DefaultScreenWidth,
		screenHeight: DefaultScreenHeight,
		spawnMargin:  viewport.DefaultSpawnMargin,
	}

	for _, opt := range opts {
		opt(w)
	}

	w.keeper = quadrants.NewKeeper(w.quadrantSize)
	w.screen = viewport.NewScreen(w.screenWidth, w.screenHeight)
	w.spawnr = spawnr.NewAreaSpawnr(dict.Maps,
		spawnr.WithScreen(w.screen, w.screenAttributes...),
		spawnr.WithOnSpawn(w.spawn),
		spawnr.WithOnUnspawn(w.unspawn),
		spawnr.WithOnStretch(w.queueStretch),
		spawnr.WithOnAfter(w.queueAfter),
	)
	w.viewport = viewport.NewController(w.screen, w.spawnr, viewport.WithSpawnMargin(w.spawnMargin))

	return w
}

// SetMap enters location of the named map, or its default location when
// location is empty.
func (w *World) SetMap(name, location string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.enter(func() error { return w.spawnr.SetMap(name, location) })
}

// SetLocation enters another location of the current map.
func (w *World) SetLocation(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.enter(func() error { return w.spawnr.SetLocation(name) })
}

// enter replaces the live world with the content of a new location. The
// current world is left alone when entry fails.
func (w *World) enter(set func() error) error {
	saved := w.spawnr.State()
	savedAttrs := w.screen.Attributes()
	rollback := func() {
		w.spawnr.Restore(saved)
		w.screen.ReplaceAttributes(savedAttrs)
	}

	w.pending = nil
	err := set()
	pending := w.pending
	w.pending = nil
	if err != nil {
		rollback()
		return err
	}

	placed := make([]*game.Thing, 0, len(pending))
	for _, cmd := range pending {
		t, err := w.makr.MakeFromCommand(cmd)
		if err != nil {
			rollback()
			return fmt.Errorf("placing %s: %w", cmd.Thing.Id(), err)
		}
		placed = append(placed, t)
	}

	var player *game.Thing
	if w.playerType != "" {
		player, err = w.makr.Make(w.playerType, nil)
		if err != nil {
			rollback()
			return fmt.Errorf("placing player: %w", err)
		}
	}

	w.holdr.KillAll()
	w.holdr.Flush()
	w.player = nil

	w.keeper.Reset(w.spawnr.Area().Bounds())
	for _, t := range placed {
		w.add(t)
	}

	spawned := w.viewport.Reset(w.spawnr.Location())

	if player != nil {
		player.Shift(
			w.screen.Left+(w.screen.Width()-player.Width())/2,
			w.screen.Top+(w.screen.Height()-player.Height())/2,
		)
		w.add(player)
		w.player = player
	}

	slog.Info("world ready", "map", w.spawnr.MapName(), "location", w.spawnr.LocationName(), "spawned", spawned, "live", w.holdr.Len())

	return nil
}

// Tick advances the world: the screen scrolls, quadrants are rebuilt, every
// live thing runs its hit checks in group order and killed things are
// removed.
func (w *World) Tick(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	if w.spawnr.Area() == nil {
		if w.startMap == "" {
			return nil
		}
		err := w.enter(func() error { return w.spawnr.SetMap(w.startMap, w.startLocation) })
		if err != nil {
			return fmt.Errorf("entering start map: %w", err)
		}
	}

	start := time.Now()

	if w.scrollX != 0 || w.scrollY != 0 {
		if w.player != nil {
			w.player.Shift(w.scrollX, w.scrollY)
		}
		w.viewport.Shift(w.scrollX, w.scrollY)
	}

	w.keeper.Clear()
	w.holdr.ForEach(w.keeper.Update)

	w.holdr.ForEach(func(t *game.Thing) {
		if w.registry.Participates(t.Group) {
			w.registry.CheckHitsForThing(t)
		}
	})

	removed := w.holdr.Flush()
	if len(removed) > 0 {
		slog.Debug("removed things", "count", len(removed))
	}

	for _, g := range game.Groups() {
		w.recorder.SetLive(g, w.holdr.Count(g))
	}
	w.recorder.Ticked(time.Since(start))

	return nil
}

// Kill removes t from the world at the end of the tick.
func (w *World) Kill(t *game.Thing) {
	w.holdr.Kill(t)
}

func (w *World) Holdr() *GroupHoldr {
	return w.holdr
}

func (w *World) Keeper() *quadrants.Keeper {
	return w.keeper
}

func (w *World) Spawnr() *spawnr.AreaSpawnr {
	return w.spawnr
}

func (w *World) Screen() *viewport.Screen {
	return w.screen
}

func (w *World) Player() *game.Thing {
	return w.player
}

// add makes t live and registers it for collision.
func (w *World) add(t *game.Thing) {
	if w.registry.Participates(t.Group) {
		w.registry.CacheChecksForType(t.Type, t.Group)
	}
	w.holdr.Add(t)
	w.keeper.Update(t)
}

func (w *World) spawn(pt *game.PreThing) bool {
	t, err := w.makr.MakeFromPreThing(pt)
	if err != nil {
		slog.Warn("failed to spawn", "type", pt.Type, "error", err)
		return false
	}

	w.add(t)
	pt.Thing = t
	w.recorder.Spawned(t.Group)
	w.publish("spawn", t)
	return true
}

func (w *World) unspawn(pt *game.PreThing) bool {
	t := pt.Thing
	pt.Thing = nil
	// Things killed by a hit are already gone.
	if t == nil || !t.Alive {
		return true
	}

	w.holdr.Kill(t)
	w.recorder.Unspawned(t.Group)
	w.publish("unspawn", t)
	return true
}

func (w *World) queueStretch(area *game.Area, cmd *game.Command) {
	// Stretches span the whole area horizontally.
	bounds := area.Bounds()
	stretched := *cmd
	stretched.X = bounds.Left
	stretched.Width = bounds.Width()
	w.pending = append(w.pending, &stretched)
}

func (w *World) queueAfter(_ *game.Area, cmd *game.Command) {
	w.pending = append(w.pending, cmd)
}

func (w *World) publish(kind string, t *game.Thing) {
	if w.publisher == nil {
		return
	}

	area := w.spawnr.AreaName()
	err := w.publisher.PublishEvent(kind+"."+area, game.SpawnEvent{
		Area:  area,
		Type:  t.Type,
		Group: t.Group,
		ID:    t.ID,
		Box:   t.Box,
	})
	if err != nil {
		slog.Warn("failed to publish event", "kind", kind, "id", t.ID, "error", err)
	}
}
