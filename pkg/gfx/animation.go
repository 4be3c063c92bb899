package gfx

import (
	"context"
	"sync"
	"time"
)

// Ticker periodically schedules Tick on the render thread.
type Ticker struct {
	Interval time.Duration
	Tick     func(w *Window)
	running  bool
}

func NewTicker(interval time.Duration, tick func(w *Window)) *Ticker {
	return &Ticker{
		Interval: interval,
		Tick:     tick,
	}
}

func (t *Ticker) Run(ctx context.Context, wg *sync.WaitGroup, updates chan<- func(), w *Window) {
	if t.running || t.Tick == nil || t.Interval <= 0 {
		return
	}
	t.running = true
	wg.Add(1)

	go func() {
		defer wg.Done()

		ticker := time.NewTicker(t.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// GL state may only be touched from the render thread
				select {
				case updates <- func() { t.Tick(w) }:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}
