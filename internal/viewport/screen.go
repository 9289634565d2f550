package viewport

import (
	"encoding/json"
	"maps"
	"sync"

	"github.com/pixil98/go-tileworld/internal/game"
	"github.com/pixil98/go-tileworld/internal/storage"
)

// Screen is the visible window onto the current area plus the attributes
// the area set on entry (background, music, and so on).
type Screen struct {
	game.Box

	mu         sync.RWMutex
	attributes storage.ExtensionState
}

func NewScreen(width, height float64) *Screen {
	return &Screen{
		Box: game.NewBox(0, 0, width, height),
	}
}

// SetAttribute stores a raw attribute value.
func (s *Screen) SetAttribute(key string, value json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attributes == nil {
		s.attributes = storage.ExtensionState{}
	}
	s.attributes[key] = value
}

// Attribute decodes the attribute at key into out.
func (s *Screen) Attribute(key string, out any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.attributes.Get(key, out)
}

// Attributes returns a copy of all attributes.
func (s *Screen) Attributes() storage.ExtensionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.attributes)
}

// ReplaceAttributes swaps every attribute for a copy of attrs.
func (s *Screen) ReplaceAttributes(attrs storage.ExtensionState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attributes = maps.Clone(attrs)
}

// MoveTo places the screen's top-left corner at (x, y).
func (s *Screen) MoveTo(x, y float64) {
	s.Box = game.NewBox(x, y, s.Width(), s.Height())
}
