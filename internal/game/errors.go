package game

import "errors"

var (
	ErrUnknownGroup     = errors.New("unknown group")
	ErrUnknownDirection = errors.New("unknown direction")
)
