package spawnr

type AreaSpawnrOpt func(*AreaSpawnr)

// WithScreen copies the named area attributes onto screen whenever a
// location is entered.
func WithScreen(screen ScreenState, attributes ...string) AreaSpawnrOpt {
	return func(s *AreaSpawnr) {
		s.screen = screen
		s.screenAttributes = attributes
	}
}

// WithOnSpawn sets the callback run for each PreThing entering the world.
func WithOnSpawn(cb Callback) AreaSpawnrOpt {
	return func(s *AreaSpawnr) {
		s.onSpawn = cb
	}
}

// WithOnUnspawn sets the callback run for each PreThing leaving the world.
func WithOnUnspawn(cb Callback) AreaSpawnrOpt {
	return func(s *AreaSpawnr) {
		s.onUnspawn = cb
	}
}

// WithOnStretch sets the hook handed each stretch command of an entered area.
func WithOnStretch(hook CommandHook) AreaSpawnrOpt {
	return func(s *AreaSpawnr) {
		s.onStretch = hook
	}
}

// WithOnAfter sets the hook handed each after command of an entered area.
func WithOnAfter(hook CommandHook) AreaSpawnrOpt {
	return func(s *AreaSpawnr) {
		s.onAfter = hook
	}
}
