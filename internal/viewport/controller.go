package viewport

import (
	"log/slog"

	"github.com/pixil98/go-tileworld/internal/game"
)

// DefaultSpawnMargin is how far beyond the screen content is kept live.
const DefaultSpawnMargin = 32

// Spawner flips map content in and out of the world along a direction.
type Spawner interface {
	SpawnArea(d game.Direction, top, right, bottom, left float64) int
	UnspawnArea(d game.Direction, top, right, bottom, left float64) int
}

type ControllerOpt func(*Controller)

// WithSpawnMargin sets how far beyond the screen content is spawned.
func WithSpawnMargin(margin float64) ControllerOpt {
	return func(c *Controller) {
		c.margin = margin
	}
}

// Controller moves the screen and keeps the live world in step with it.
type Controller struct {
	screen  *Screen
	spawner Spawner
	margin  float64
}

func NewController(screen *Screen, spawner Spawner, opts ...ControllerOpt) *Controller {
	c := &Controller{
		screen:  screen,
		spawner: spawner,
		margin:  DefaultSpawnMargin,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// View is the screen grown by the spawn margin.
func (c *Controller) View() game.Box {
	return c.screen.Expand(c.margin)
}

func (c *Controller) Screen() *Screen {
	return c.screen
}

// Reset places the screen at loc and spawns everything in view.
func (c *Controller) Reset(loc *game.Location) int {
	c.screen.MoveTo(loc.X, loc.Y)

	// Entry sweeps along xInc only: content whose left edge lies left of
	// the view is not spawned, even when it reaches into the view.
	v := c.View()
	spawned := c.spawner.SpawnArea(game.DirectionXInc, v.Top, v.Right, v.Bottom, v.Left)

	slog.Debug("viewport reset", "x", loc.X, "y", loc.Y, "spawned", spawned)

	return spawned
}

// Shift moves the screen by (dx, dy). For each axis moved, the strip that
// came into view is spawned and the strip left behind is unspawned.
func (c *Controller) Shift(dx, dy float64) (spawned, unspawned int) {
	if dx != 0 {
		s, u := c.shiftAxis(dx, 0)
		spawned, unspawned = spawned+s, unspawned+u
	}
	if dy != 0 {
		s, u := c.shiftAxis(0, dy)
		spawned, unspawned = spawned+s, unspawned+u
	}
	return spawned, unspawned
}

func (c *Controller) shiftAxis(dx, dy float64) (int, int) {
	before := c.View()
	c.screen.Shift(dx, dy)
	after := c.View()

	var entered, left game.Box
	var forward, backward game.Direction

	switch {
	case dx > 0:
		forward, backward = game.DirectionXInc, game.DirectionXDec
		entered = game.Box{Top: after.Top, Bottom: after.Bottom, Left: before.Right, Right: after.Right}
		left = game.Box{Top: after.Top, Bottom: after.Bottom, Left: before.Left, Right: after.Left}
	case dx < 0:
		forward, backward = game.DirectionXDec, game.DirectionXInc
		entered = game.Box{Top: after.Top, Bottom: after.Bottom, Left: after.Left, Right: before.Left}
		left = game.Box{Top: after.Top, Bottom: after.Bottom, Left: after.Right, Right: before.Right}
	case dy > 0:
		forward, backward = game.DirectionYInc, game.DirectionYDec
		entered = game.Box{Top: before.Bottom, Bottom: after.Bottom, Left: after.Left, Right: after.Right}
		left = game.Box{Top: before.Top, Bottom: after.Top, Left: after.Left, Right: after.Right}
	default:
		forward, backward = game.DirectionYDec, game.DirectionYInc
		entered = game.Box{Top: after.Top, Bottom: before.Top, Left: after.Left, Right: after.Right}
		left = game.Box{Top: after.Bottom, Bottom: before.Bottom, Left: after.Left, Right: after.Right}
	}

	spawned := c.spawner.SpawnArea(forward, entered.Top, entered.Right, entered.Bottom, entered.Left)
	unspawned := c.spawner.UnspawnArea(backward, left.Top, left.Right, left.Bottom, left.Left)
	return spawned, unspawned
}
