package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-tileworld/internal/storage"
)

// ThingType defines a kind of thing loaded from asset files. Any number of
// things can be made from one definition.
type ThingType struct {
	Group Group `json:"group"`

	// Width and Height are the default size of a new thing.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Tolerance float64 `json:"tolerance,omitempty"`

	// Settings are defaults merged under per-placement settings.
	Settings storage.ExtensionState `json:"settings,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (t *ThingType) Validate() error {
	el := errors.NewErrorList()

	if !t.Group.Valid() {
		el.Add(fmt.Errorf("group is invalid"))
	}
	if t.Width < 0 || t.Height < 0 {
		el.Add(fmt.Errorf("size must not be negative"))
	}
	if t.Tolerance < 0 {
		el.Add(fmt.Errorf("tolerance must not be negative"))
	}

	return el.Err()
}
