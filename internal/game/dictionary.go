package game

import (
	"fmt"
	"slices"

	"github.com/pixil98/go-tileworld/internal/storage"
)

// Dictionary holds all game definition stores. It provides a single
// reference that can be passed to resolution methods so they all
// share the same signature.
type Dictionary struct {
	Maps       storage.Storer[*Map]
	ThingTypes storage.Storer[*ThingType]
}

// Resolve resolves the thing type references of every map.
func (d *Dictionary) Resolve() error {
	maps := d.Maps.GetAll()
	ids := make([]string, 0, len(maps))
	for id := range maps {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		if err := maps[id].Resolve(d.ThingTypes); err != nil {
			return fmt.Errorf("map %s: %w", id, err)
		}
	}
	return nil
}
