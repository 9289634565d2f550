package hittr

import "errors"

var (
	ErrNoHitCheck    = errors.New("no hit check defined")
	ErrNoHitCallback = errors.New("no hit callback defined")
)
