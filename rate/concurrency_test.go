package rate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func Test_Concurrency_bounds_in_flight(t *testing.T) {
	l := NewConcurrency(3, 0)
	assert.Equal(t, int64(3), l.Permits())

	var inFlight, peak atomic.Int64
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(context.Background())
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			n := inFlight.Inc()
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			inFlight.Dec()
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int64(3))
	assert.Equal(t, int64(0), inFlight.Load())
}

func Test_Concurrency_blocks_until_release(t *testing.T) {
	l := NewConcurrency(1, 0)

	release, err := l.Acquire(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	release()
	release()

	release2, err := l.Acquire(context.Background())
	require.NoError(t, err)
	release2()

	// a double release must not have created a second permit
	assert.True(t, l.sem.TryAcquire(1))
	assert.False(t, l.sem.TryAcquire(1))
}

func Test_Concurrency_cancelled_spacing_returns_permit(t *testing.T) {
	clock := newFrozenClock()
	l := NewConcurrency(1, time.Second, WithClock(clock))

	release, err := l.Acquire(context.Background())
	require.NoError(t, err)
	release()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := l.Acquire(ctx)
		errCh <- err
	}()

	require.Eventually(t, clock.waiting(1), time.Second, time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)

	assert.True(t, l.sem.TryAcquire(1))
	l.sem.Release(1)
}
