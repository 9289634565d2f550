// Package content holds the collision rules of the demo game: characters
// bump into solids and talk to anyone with something to say.
package content

import (
	"log/slog"
	"math"

	"github.com/pixil98/go-tileworld/internal/display"
	"github.com/pixil98/go-tileworld/internal/game"
	"github.com/pixil98/go-tileworld/internal/hittr"
)

// DialogSetting is the thing setting holding a dialog template.
const DialogSetting = "dialog"

type ContentOpt func(*Content)

// WithPublisher sends dialog events to p.
func WithPublisher(p game.Publisher) ContentOpt {
	return func(c *Content) {
		c.publisher = p
	}
}

// WithDialogWidth sets the column width dialog text is wrapped to.
func WithDialogWidth(width int) ContentOpt {
	return func(c *Content) {
		c.dialogWidth = width
	}
}

// Content builds the generator table for the demo game.
type Content struct {
	publisher   game.Publisher
	dialogWidth int
}

func New(opts ...ContentOpt) *Content {
	c := &Content{
		dialogWidth: display.DefaultWidth,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Config returns the collision rules.
func (c *Content) Config() hittr.Config {
	return hittr.Config{
		Groups: []game.Group{game.GroupSolid, game.GroupScenery, game.GroupCharacter},
		GlobalChecks: map[game.Group]hittr.GlobalCheckGenerator{
			game.GroupSolid:     aliveCheck,
			game.GroupScenery:   aliveCheck,
			game.GroupCharacter: aliveCheck,
		},
		HitChecks: map[game.Group]map[game.Group]hittr.HitCheckGenerator{
			game.GroupCharacter: {
				game.GroupSolid:     overlapCheck,
				game.GroupScenery:   overlapCheck,
				game.GroupCharacter: overlapCheck,
			},
		},
		HitCallbacks: map[game.Group]map[game.Group]hittr.HitCallbackGenerator{
			game.GroupCharacter: {
				game.GroupSolid:     pushOut,
				game.GroupScenery:   c.dialog,
				game.GroupCharacter: c.dialog,
			},
		},
	}
}

func aliveCheck() hittr.GlobalCheck {
	return func(t *game.Thing) bool {
		return t.Alive
	}
}

// overlapCheck shrinks the moving thing by its tolerance before testing.
func overlapCheck() hittr.HitCheck {
	return func(thing, other *game.Thing) bool {
		return thing.Overlaps(other.Box, thing.Tolerance, thing.Tolerance)
	}
}

// pushOut moves thing out of other along the axis of least penetration.
func pushOut() hittr.HitCallback {
	return func(thing, other *game.Thing) {
		right := other.Right - thing.Left
		left := thing.Right - other.Left
		down := other.Bottom - thing.Top
		up := thing.Bottom - other.Top

		switch math.Min(math.Min(right, left), math.Min(down, up)) {
		case right:
			thing.Shift(right, 0)
		case left:
			thing.Shift(-left, 0)
		case down:
			thing.Shift(0, down)
		default:
			thing.Shift(0, -up)
		}

		slog.Debug("pushed out", "thing", thing.ID, "other", other.ID, "box", thing.Box)
	}
}
