package rate

import (
	"sync"
	"time"
)

// SteppingClock is a Clock for tests that never sleeps: every call to
// After moves the clock forward by d and fires immediately.
// It models a single caller waiting its turn; concurrent waiters
// would each push the clock further.
type SteppingClock struct {
	mu  sync.Mutex
	now time.Time
}

var _ Clock = &SteppingClock{}

func NewSteppingClock(start time.Time) *SteppingClock {
	return &SteppingClock{now: start}
}

func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *SteppingClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	c.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- now
	return ch
}
