package factory

import "errors"

var ErrUnknownType = errors.New("unknown thing type")
