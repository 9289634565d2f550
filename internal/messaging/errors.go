package messaging

import "errors"

var ErrNotStarted = errors.New("nats server not started")
