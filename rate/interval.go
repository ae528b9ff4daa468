package rate

import (
	"context"
	"fmt"
	"time"

	gorate "golang.org/x/time/rate"
)

type intervalConfig struct {
	clock Clock
}

type IntervalOption func(c *intervalConfig)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(clock Clock) IntervalOption {
	return func(c *intervalConfig) {
		c.clock = clock
	}
}

// Interval admits one request per fixed interval. Over any window of
// length w it admits at most w/interval requests.
type Interval struct {
	limiter *gorate.Limiter
	every   time.Duration
	clock   Clock
}

var _ Limiter = &Interval{}

// NewDefault returns the default limiter: DefaultRequests per DefaultWindow.
func NewDefault(opts ...IntervalOption) *Interval {
	return NewInterval(DefaultRequests, DefaultWindow, opts...)
}

// NewInterval spaces requests so that no more than requests are
// admitted in any window.
func NewInterval(requests int, window time.Duration, opts ...IntervalOption) *Interval {
	if requests < 1 {
		requests = 1
	}
	return NewEvery(window/time.Duration(requests), opts...)
}

// NewEvery admits one request every interval.
func NewEvery(every time.Duration, opts ...IntervalOption) *Interval {
	cfg := intervalConfig{clock: SystemClock}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Token arithmetic is float64; the extra microsecond keeps
	// n spacings from summing to less than n*every.
	limit := gorate.Every(every + time.Microsecond)
	if every <= 0 {
		limit = gorate.Inf
	}

	return &Interval{
		limiter: gorate.NewLimiter(limit, 1),
		every:   every,
		clock:   cfg.clock,
	}
}

// Every returns the configured spacing between two dispatches.
func (l *Interval) Every() time.Duration {
	return l.every
}

func (l *Interval) Acquire(ctx context.Context) (Release, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := l.clock.Now()
	r := l.limiter.ReserveN(now, 1)
	if !r.OK() {
		return nil, fmt.Errorf("rate: interval limiter refused a reservation")
	}

	delay := r.DelayFrom(now)
	if delay <= 0 {
		return noopRelease, nil
	}

	select {
	case <-l.clock.After(delay):
		return noopRelease, nil
	case <-ctx.Done():
		// hand the slot to whoever reserves next
		r.CancelAt(l.clock.Now())
		return nil, ctx.Err()
	}
}
