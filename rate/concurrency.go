package rate

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// Concurrency bounds the number of requests in flight and keeps
// a minimum spacing between two dispatches.
type Concurrency struct {
	sem     *semaphore.Weighted
	permits int64
	spacing *Interval
}

var _ Limiter = &Concurrency{}

// NewConcurrency allows at most permits requests in flight, dispatched
// at least spacing apart. A zero spacing only bounds concurrency.
func NewConcurrency(permits int64, spacing time.Duration, opts ...IntervalOption) *Concurrency {
	if permits < 1 {
		permits = 1
	}
	l := &Concurrency{
		sem:     semaphore.NewWeighted(permits),
		permits: permits,
	}
	if spacing > 0 {
		l.spacing = NewEvery(spacing, opts...)
	}
	return l
}

func (l *Concurrency) Permits() int64 {
	return l.permits
}

func (l *Concurrency) Acquire(ctx context.Context) (Release, error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}

	if l.spacing != nil {
		if _, err := l.spacing.Acquire(ctx); err != nil {
			l.sem.Release(1)
			return nil, err
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.sem.Release(1) })
	}, nil
}
