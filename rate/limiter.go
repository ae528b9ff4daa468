package rate

import (
	"context"
	"time"
)

const (
	// DefaultRequests and DefaultWindow are the default quota: at most
	// 50 requests in any 35 second window, i.e. one request every 700ms.
	DefaultRequests = 50
	DefaultWindow   = 35 * time.Second

	// ServiceRequests and ServiceWindow are the limit the API enforces.
	// Going over it gets the caller banned for 15 minutes.
	ServiceRequests = 50
	ServiceWindow   = 30 * time.Second
)

// Limiter controls the rate at which requests are dispatched to the API.
//
// Every request acquires a permit from the Limiter before it is sent, and
// every handle cloned from the same client shares the same Limiter, so the
// quota holds for the whole process no matter how many goroutines send.
// Implementations use different strategies:
//   - Interval: a fixed spacing between dispatches (the default)
//   - Concurrency: a bounded number of requests in flight plus a spacing
//   - Redis: a spacing shared by every process using the same Redis key
//   - NoopLimiter: no limit at all
//
// Example usage:
//
//	release, err := limiter.Acquire(ctx)
//	if err != nil {
//	    return err // ctx was cancelled while waiting
//	}
//	defer release()
//	// dispatch the request
//
// Acquire blocks until the request may be dispatched. It never drops or
// skips a caller. If ctx is done first, Acquire returns ctx.Err() and the
// caller holds nothing: no permit is consumed on its behalf and it is never
// woken up later.
//
// Waiters are not guaranteed to be admitted in the order they arrived.
type Limiter interface {
	Acquire(ctx context.Context) (Release, error)
}

// Release gives a permit back once the request it guarded has been
// dispatched. Calling it more than once is safe.
type Release func()

func noopRelease() {}
