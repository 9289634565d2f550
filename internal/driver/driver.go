package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultTickLength = time.Second / 30
)

// Ticker is advanced once per driver tick.
type Ticker interface {
	Tick(context.Context) error
}

// Driver runs the game loop, ticking every Ticker in order on a fixed
// interval.
type Driver struct {
	tickLength time.Duration
	tickers    []Ticker
	waitFor    []<-chan struct{}
}

func NewDriver(tickers []Ticker, opts ...DriverOpt) *Driver {
	d := &Driver{
		tickLength: DefaultTickLength,
		tickers:    tickers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Driver) Start(ctx context.Context) error {
	for _, ch := range d.waitFor {
		select {
		case <-ctx.Done():
			return nil
		case <-ch:
		}
	}

	slog.InfoContext(ctx, "driver started", "tick", d.tickLength, "tickers", len(d.tickers))

	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("driver stopped")
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}

func (d *Driver) Tick(ctx context.Context) error {
	for i, t := range d.tickers {
		if err := t.Tick(ctx); err != nil {
			return fmt.Errorf("ticker %d: %w", i, err)
		}
	}
	return nil
}
