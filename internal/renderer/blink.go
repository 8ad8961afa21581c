package renderer

import (
	"context"
	"sync/atomic"
	"time"
)

// DefaultBlinkInterval is the time between cursor blinks.
const DefaultBlinkInterval = 650 * time.Millisecond

// Blinker produces cursor blink ticks. Reset restarts the interval so a
// freshly drawn page keeps its cursor lit for a full interval.
type Blinker struct {
	interval atomic.Int64
	reset    chan struct{}
	ticks    chan struct{}
}

// NewBlinker creates a blinker with the given interval. A non-positive
// interval selects DefaultBlinkInterval.
func NewBlinker(interval time.Duration) *Blinker {
	b := &Blinker{
		reset: make(chan struct{}, 1),
		ticks: make(chan struct{}, 1),
	}
	b.SetInterval(interval)
	return b
}

// Ticks returns the channel that receives a value each interval.
// Ticks are dropped while the previous one is unread.
func (b *Blinker) Ticks() <-chan struct{} {
	return b.ticks
}

// Interval returns the current interval.
func (b *Blinker) Interval() time.Duration {
	return time.Duration(b.interval.Load())
}

// SetInterval changes the interval. It takes effect at the next reset or tick.
func (b *Blinker) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultBlinkInterval
	}
	b.interval.Store(int64(d))
}

// Reset restarts the interval.
func (b *Blinker) Reset() {
	select {
	case b.reset <- struct{}{}:
	default:
	}
}

// Run delivers ticks until ctx is canceled.
func (b *Blinker) Run(ctx context.Context) {
	timer := time.NewTimer(b.Interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-b.reset:
			timer.Reset(b.Interval())
		case <-timer.C:
			select {
			case b.ticks <- struct{}{}:
			default:
			}
			timer.Reset(b.Interval())
		}
	}
}
