package factory

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pixil98/go-tileworld/internal/game"
	"github.com/pixil98/go-tileworld/internal/storage"
)

// ObjectMakr turns thing type names into live Things.
type ObjectMakr struct {
	types storage.Storer[*game.ThingType]
}

func NewObjectMakr(types storage.Storer[*game.ThingType]) *ObjectMakr {
	return &ObjectMakr{types: types}
}

// Make creates a live Thing of the named type at the origin with the type's
// default size. settings are layered over the type's defaults.
func (m *ObjectMakr) Make(typeName string, settings storage.ExtensionState) (*game.Thing, error) {
	tt, ok := m.types.Get(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typeName)
	}

	return &game.Thing{
		ID:        uuid.New().String(),
		Type:      typeName,
		Group:     tt.Group,
		Box:       game.NewBox(0, 0, tt.Width, tt.Height),
		Tolerance: tt.Tolerance,
		Alive:     true,
		Settings:  tt.Settings.Merge(settings),
	}, nil
}

// MakeFromPreThing creates the live Thing described by pt, placed and sized
// as pt is.
func (m *ObjectMakr) MakeFromPreThing(pt *game.PreThing) (*game.Thing, error) {
	t, err := m.Make(pt.Type, pt.Settings)
	if err != nil {
		return nil, err
	}
	t.Box = pt.Box
	return t, nil
}

// MakeFromCommand creates the live Thing a map command places.
func (m *ObjectMakr) MakeFromCommand(cmd *game.Command) (*game.Thing, error) {
	box, err := cmd.Box()
	if err != nil {
		return nil, err
	}
	t, err := m.Make(cmd.Thing.Id(), cmd.Settings)
	if err != nil {
		return nil, err
	}
	t.Box = box
	return t, nil
}
