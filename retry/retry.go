package retry

import (
	"context"

	"github.com/block/nationstates-go/errors"
)

// Retry provides a standardized interface for implementing retry logic
// with different strategies. It allows operations to be retried, with configurable retry
// policies such as exponential backoff, maximum attempts, and custom delay strategies.
//
// The client never retries on its own. A retry is a new request: it needs a new
// client.Request and it waits for its own rate limit permit, so retrying
// too eagerly only delays everything else that shares the limiter.
//
// Usage Example:
//
//	r := retry.NewExponentialRetry(
//	    retry.WithInitialDuration(2*time.Second),
//	    retry.WithLogger(myLogger),
//	)
//
//	err := r.Do(ctx, 3, "get-nation", func(attempt int) (error, retry.ExitStrategy) {
//	    nation, err = nations.Get(ctx, "testlandia")
//	    if err != nil {
//	        return err, retry.ExitFor(err)
//	    }
//	    return nil, retry.StopNow
//	})
//
// The RetriableFn function receives the current attempt number (0-based) and returns
// an error and an ExitStrategy. The ExitStrategy determines whether to continue
// retrying (Continue) or stop immediately (StopNow), regardless of remaining attempts.
// Do also stops once ctx is done.
//
// NOTE: if attempts is 0, the fn is never called.
type Retry interface {
	Do(ctx context.Context, attempts int, fnName string, fn RetriableFn) error
}

type RetriableFn func(attempt int) (error, ExitStrategy)

type ExitStrategy bool

var StopNow ExitStrategy = true
var Continue ExitStrategy = false

// ExitFor keeps retrying only the errors that another attempt could fix:
// transport failures, 429 and 5xx statuses.
func ExitFor(err error) ExitStrategy {
	if errors.Retriable(err) {
		return Continue
	}
	return StopNow
}
