package game

import (
	"fmt"
	"slices"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-tileworld/internal/storage"
)

// Map is a set of areas and the named locations that enter them.
type Map struct {
	Name            string               `json:"name"`
	LocationDefault string               `json:"location_default"`
	Locations       map[string]*Location `json:"locations"`
	Areas           map[string]*Area     `json:"areas"`
}

// Location is a named entry point into an area.
type Location struct {
	Area  string  `json:"area"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Entry string  `json:"entry,omitempty"`
}

// Area is a single scrollable region of a map.
type Area struct {
	// Width and Height bound the area. When unset the bounds cover the
	// area's creation commands.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Attributes are copied onto the screen when the area is entered.
	Attributes storage.ExtensionState `json:"attributes,omitempty"`

	// Stretches and Afters are decorative commands handed to hooks on
	// entry rather than spawned by position.
	Stretches []*Command `json:"stretches,omitempty"`
	Afters    []*Command `json:"afters,omitempty"`

	Creation []*Command `json:"creation"`
}

// Command places one thing in an area.
type Command struct {
	Thing    storage.SmartIdentifier[*ThingType] `json:"thing"`
	X        float64                             `json:"x"`
	Y        float64                             `json:"y"`
	Width    float64                             `json:"width,omitempty"`
	Height   float64                             `json:"height,omitempty"`
	Settings storage.ExtensionState              `json:"settings,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (m *Map) Validate() error {
	el := errors.NewErrorList()

	if len(m.Areas) == 0 {
		el.Add(fmt.Errorf("at least one area is required"))
	}
	if m.LocationDefault == "" {
		el.Add(fmt.Errorf("location_default is required"))
	} else if _, ok := m.Locations[m.LocationDefault]; !ok {
		el.Add(fmt.Errorf("location_default %q is not a location", m.LocationDefault))
	}

	for _, name := range sortedKeys(m.Locations) {
		loc := m.Locations[name]
		if loc == nil {
			el.Add(fmt.Errorf("location %s: definition is required", name))
			continue
		}
		if _, ok := m.Areas[loc.Area]; !ok {
			el.Add(fmt.Errorf("location %s: unknown area %q", name, loc.Area))
		}
	}

	for _, name := range sortedKeys(m.Areas) {
		area := m.Areas[name]
		if area == nil {
			el.Add(fmt.Errorf("area %s: definition is required", name))
			continue
		}
		if err := area.Validate(); err != nil {
			el.Add(fmt.Errorf("area %s: %w", name, err))
		}
	}

	return el.Err()
}

// Resolve resolves every command's thing type reference.
func (m *Map) Resolve(types storage.Storer[*ThingType]) error {
	el := errors.NewErrorList()
	for _, name := range sortedKeys(m.Areas) {
		if err := m.Areas[name].Resolve(types); err != nil {
			el.Add(fmt.Errorf("area %s: %w", name, err))
		}
	}
	return el.Err()
}

func (a *Area) Validate() error {
	el := errors.NewErrorList()

	if a.Width < 0 || a.Height < 0 {
		el.Add(fmt.Errorf("size must not be negative"))
	}
	for i, c := range a.commands() {
		if err := c.Validate(); err != nil {
			el.Add(fmt.Errorf("command %d: %w", i, err))
		}
	}

	return el.Err()
}

func (a *Area) Resolve(types storage.Storer[*ThingType]) error {
	el := errors.NewErrorList()
	for _, c := range a.commands() {
		if c == nil {
			continue
		}
		el.Add(c.Thing.Resolve(types))
	}
	return el.Err()
}

// PreThings builds the area's spawnable content. Commands must be resolved.
func (a *Area) PreThings() (*PreThingSet, error) {
	prethings := make([]*PreThing, 0, len(a.Creation))
	for i, c := range a.Creation {
		pt, err := c.PreThing()
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
		prethings = append(prethings, pt)
	}
	return NewPreThingSet(prethings), nil
}

// Bounds returns the area's extent, starting at the origin.
func (a *Area) Bounds() Box {
	bounds := NewBox(0, 0, a.Width, a.Height)
	if a.Width > 0 && a.Height > 0 {
		return bounds
	}
	for _, c := range a.Creation {
		if b, err := c.Box(); err == nil {
			bounds = bounds.Union(b)
		}
	}
	return bounds
}

func (a *Area) commands() []*Command {
	cmds := make([]*Command, 0, len(a.Creation)+len(a.Stretches)+len(a.Afters))
	cmds = append(cmds, a.Creation...)
	cmds = append(cmds, a.Stretches...)
	cmds = append(cmds, a.Afters...)
	return cmds
}

func (c *Command) Validate() error {
	if c == nil {
		return fmt.Errorf("command is empty")
	}
	return c.Thing.Validate()
}

// Box returns the placement's box, falling back to the type's size.
func (c *Command) Box() (Box, error) {
	tt := c.Thing.Get()
	if tt == nil {
		return Box{}, fmt.Errorf("thing type %q is unresolved", c.Thing.Id())
	}

	w, h := c.Width, c.Height
	if w == 0 {
		w = tt.Width
	}
	if h == 0 {
		h = tt.Height
	}
	return NewBox(c.X, c.Y, w, h), nil
}

// PreThing builds an unspawned PreThing for the placement.
func (c *Command) PreThing() (*PreThing, error) {
	box, err := c.Box()
	if err != nil {
		return nil, err
	}
	return &PreThing{
		Type:     c.Thing.Id(),
		Group:    c.Thing.Get().Group,
		Box:      box,
		Settings: c.Settings,
	}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
