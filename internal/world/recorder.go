package world

import (
	"time"

	"github.com/pixil98/go-tileworld/internal/game"
)

// Recorder observes world activity.
type Recorder interface {
	Spawned(g game.Group)
	Unspawned(g game.Group)
	SetLive(g game.Group, n int)
	Ticked(d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) Spawned(game.Group)      {}
func (nopRecorder) Unspawned(game.Group)    {}
func (nopRecorder) SetLive(game.Group, int) {}
func (nopRecorder) Ticked(time.Duration)    {}
