package spawnr

import "errors"

var (
	ErrUnknownMap      = errors.New("unknown map")
	ErrUnknownLocation = errors.New("unknown location")
)
