// Package reveal paces the skeleton-loading effect of the grid.
//
// The grid starts with a small number of placeholder slots and widens once,
// a fixed delay after the catalog store starts, whether or not the feed has
// arrived by then.
package reveal

import (
	"context"
	"time"
)

// Phase is the reveal state of the grid
type Phase int

const (
	Collapsed Phase = iota // initial
	Expanded               // terminal
)

// Slot counts per phase
const (
	CollapsedSlots = 5
	ExpandedSlots  = 15
)

// DefaultDelay is the time between store start and expansion
const DefaultDelay = 2 * time.Second

// Slots returns the number of visible slots for the phase
func (p Phase) Slots() int {
	if p == Expanded {
		return ExpandedSlots
	}
	return CollapsedSlots
}

func (p Phase) String() string {
	switch p {
	case Collapsed:
		return "collapsed"
	case Expanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// Scheduler fires the single Collapsed -> Expanded transition
type Scheduler struct {
	delay time.Duration
}

// NewScheduler creates a scheduler. A non-positive delay uses DefaultDelay.
func NewScheduler(delay time.Duration) *Scheduler {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Scheduler{delay: delay}
}

// Delay returns the configured delay
func (s *Scheduler) Delay() time.Duration {
	return s.delay
}

// Run blocks until the delay elapses and then calls fire(Expanded) once.
// If ctx is cancelled first, fire is never called and Run returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context, fire func(Phase)) error {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	// Cancellation may race the timer; cancellation wins.
	if ctx.Err() != nil {
		return ctx.Err()
	}
	fire(Expanded)
	return nil
}
