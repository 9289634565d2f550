package world

import "github.com/pixil98/go-tileworld/internal/game"

type WorldOpt func(*World)

// WithQuadrantSize sets the side length of collision quadrants.
func WithQuadrantSize(size float64) WorldOpt {
	return func(w *World) {
		w.quadrantSize = size
	}
}

// WithScreenSize sets the size of the visible screen.
func WithScreenSize(width, height float64) WorldOpt {
	return func(w *World) {
		w.screenWidth = width
		w.screenHeight = height
	}
}

// WithSpawnMargin sets how far beyond the screen content is spawned.
func WithSpawnMargin(margin float64) WorldOpt {
	return func(w *World) {
		w.spawnMargin = margin
	}
}

// WithScreenAttributes names the area attributes copied onto the screen.
func WithScreenAttributes(attrs ...string) WorldOpt {
	return func(w *World) {
		w.screenAttributes = attrs
	}
}

// WithScrollVelocity moves the screen, and the player if any, by (dx, dy)
// every tick.
func WithScrollVelocity(dx, dy float64) WorldOpt {
	return func(w *World) {
		w.scrollX = dx
		w.scrollY = dy
	}
}

// WithPlayer places a thing of the given type at the centre of the screen
// on every location entry.
func WithPlayer(typeName string) WorldOpt {
	return func(w *World) {
		w.playerType = typeName
	}
}

// WithPublisher sends spawn events to p.
func WithPublisher(p game.Publisher) WorldOpt {
	return func(w *World) {
		w.publisher = p
	}
}

// WithRecorder reports world activity to rec.
func WithRecorder(rec Recorder) WorldOpt {
	return func(w *World) {
		if rec != nil {
			w.recorder = rec
		}
	}
}

// WithStartMap enters the named map and location on the first tick.
func WithStartMap(name, location string) WorldOpt {
	return func(w *World) {
		w.startMap = name
		w.startLocation = location
	}
}
