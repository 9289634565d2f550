package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-tileworld/internal/game"
	"github.com/pixil98/go-tileworld/internal/storage"
)

type StorageConfig struct {
	Maps       AssetConfig[*game.Map]       `json:"maps"`
	ThingTypes AssetConfig[*game.ThingType] `json:"thing_types"`
}

func (c *StorageConfig) BuildDictionary() (*game.Dictionary, error) {
	maps, err := c.Maps.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating map store: %w", err)
	}
	types, err := c.ThingTypes.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating thing type store: %w", err)
	}

	dict := &game.Dictionary{
		Maps:       maps,
		ThingTypes: types,
	}

	if err := dict.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return dict, nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Maps.Validate("maps"))
	el.Add(c.ThingTypes.Validate("thing_types"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
