package hittr

import "github.com/pixil98/go-tileworld/internal/game"

// Recorder observes registry activity.
type Recorder interface {
	TypeCompiled(group game.Group)
	HitChecked(owner game.Group)
	HitCallback(owner, other game.Group)
}

type nopRecorder struct{}

func (nopRecorder) TypeCompiled(game.Group)            {}
func (nopRecorder) HitChecked(game.Group)              {}
func (nopRecorder) HitCallback(game.Group, game.Group) {}
