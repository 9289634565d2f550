package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-tileworld/internal/content"
	"github.com/pixil98/go-tileworld/internal/game"
	"github.com/pixil98/go-tileworld/internal/hittr"
	"github.com/pixil98/go-tileworld/internal/world"
)

type WorldConfig struct {
	Map              string   `json:"map"`
	Location         string   `json:"location"`
	QuadrantSize     float64  `json:"quadrant_size"`
	ScreenWidth      float64  `json:"screen_width"`
	ScreenHeight     float64  `json:"screen_height"`
	SpawnMargin      *float64 `json:"spawn_margin"`
	ScreenAttributes []string `json:"screen_attributes"`
	ScrollX          float64  `json:"scroll_x"`
	ScrollY          float64  `json:"scroll_y"`
	Player           string   `json:"player"`
	DialogWidth      int      `json:"dialog_width"`
}

func (c *WorldConfig) validate() error {
	el := errors.NewErrorList()

	if c.Map == "" {
		el.Add(fmt.Errorf("world: map is required"))
	}
	if c.QuadrantSize < 0 {
		el.Add(fmt.Errorf("world: quadrant_size must not be negative"))
	}
	if c.ScreenWidth < 0 || c.ScreenHeight < 0 {
		el.Add(fmt.Errorf("world: screen size must not be negative"))
	}
	if c.SpawnMargin != nil && *c.SpawnMargin < 0 {
		el.Add(fmt.Errorf("world: spawn_margin must not be negative"))
	}
	if c.DialogWidth < 0 {
		el.Add(fmt.Errorf("world: dialog_width must not be negative"))
	}

	return el.Err()
}

func (c *WorldConfig) buildContent(pub game.Publisher) *content.Content {
	opts := []content.ContentOpt{content.WithPublisher(pub)}
	if c.DialogWidth > 0 {
		opts = append(opts, content.WithDialogWidth(c.DialogWidth))
	}
	return content.New(opts...)
}

func (c *WorldConfig) buildRegistry(cnt *content.Content, rec hittr.Recorder) (*hittr.Registry, error) {
	return hittr.NewRegistry(cnt.Config(), hittr.WithRecorder(rec))
}

func (c *WorldConfig) buildWorld(dict *game.Dictionary, registry *hittr.Registry, pub game.Publisher, rec world.Recorder) (*world.World, error) {
	m, ok := dict.Maps.Get(c.Map)
	if !ok {
		return nil, fmt.Errorf("unknown map %q", c.Map)
	}
	if c.Location != "" {
		if _, ok := m.Locations[c.Location]; !ok {
			return nil, fmt.Errorf("map %q has no location %q", c.Map, c.Location)
		}
	}
	if c.Player != "" {
		if _, ok := dict.ThingTypes.Get(c.Player); !ok {
			return nil, fmt.Errorf("unknown player type %q", c.Player)
		}
	}

	opts := []world.WorldOpt{
		world.WithPublisher(pub),
		world.WithRecorder(rec),
		world.WithStartMap(c.Map, c.Location),
		world.WithScrollVelocity(c.ScrollX, c.ScrollY),
	}
	if c.QuadrantSize > 0 {
		opts = append(opts, world.WithQuadrantSize(c.QuadrantSize))
	}
	if c.ScreenWidth > 0 && c.ScreenHeight > 0 {
		opts = append(opts, world.WithScreenSize(c.ScreenWidth, c.ScreenHeight))
	}
	if c.SpawnMargin != nil {
		opts = append(opts, world.WithSpawnMargin(*c.SpawnMargin))
	}
	if len(c.ScreenAttributes) > 0 {
		opts = append(opts, world.WithScreenAttributes(c.ScreenAttributes...))
	}
	if c.Player != "" {
		opts = append(opts, world.WithPlayer(c.Player))
	}

	return world.NewWorld(dict, registry, opts...), nil
}
