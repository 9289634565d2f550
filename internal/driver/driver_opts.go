package driver

import "time"

type DriverOpt func(*Driver)

func WithTickLength(tickLength time.Duration) DriverOpt {
	return func(d *Driver) {
		if tickLength > 0 {
			d.tickLength = tickLength
		}
	}
}

// WithWaitFor delays the first tick until ch is closed.
func WithWaitFor(ch <-chan struct{}) DriverOpt {
	return func(d *Driver) {
		d.waitFor = append(d.waitFor, ch)
	}
}
