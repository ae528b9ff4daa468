package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/block/nationstates-go/logger"
)

type expoConfig struct {
	sleep    time.Duration
	maxSleep time.Duration
	jitter   float64
	logger   logger.Logger
	newTimer func() backoff.Timer
}

func defaultExpoConfig() expoConfig {
	return expoConfig{
		sleep:    50 * time.Millisecond,
		maxSleep: time.Minute,
		logger:   &logger.Noop{},
	}
}

type ExpoConfigOption func(c *expoConfig)

func WithLogger(log logger.Logger) ExpoConfigOption {
	return func(c *expoConfig) {
		c.logger = log
	}
}

func WithInitialDuration(d time.Duration) ExpoConfigOption {
	return func(c *expoConfig) {
		c.sleep = d
	}
}

// WithMaxDuration caps a single sleep between attempts.
func WithMaxDuration(d time.Duration) ExpoConfigOption {
	return func(c *expoConfig) {
		c.maxSleep = d
	}
}

// WithJitter randomizes each sleep by up to the given factor, 0 to 1.
func WithJitter(factor float64) ExpoConfigOption {
	return func(c *expoConfig) {
		c.jitter = factor
	}
}

func withTimer(newTimer func() backoff.Timer) ExpoConfigOption {
	return func(c *expoConfig) {
		c.newTimer = newTimer
	}
}

type expoRetry struct {
	config expoConfig
}

var _ Retry = &expoRetry{}

func NewExponentialRetry(opts ...ExpoConfigOption) Retry {
	var config = defaultExpoConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &expoRetry{config}
}

// Do runs provided function repeatedly until:
// * the RetriableFn returns no error
// * or attempts is reached
// * or RetriableFn returns StopNow
// * or ctx is done
// Examples:
// Do(ctx, 3, "my-func", func(attempt int) (error, retry.ExitStrategy) {})
// ^ will run the function 3 times, sleeping 0ms, 50ms, 100ms before each run.
//
// Do(ctx, 0, "my-func", func(attempt int) (error, retry.ExitStrategy) {})
// ^ will NOT run
func (r *expoRetry) Do(
	ctx context.Context,
	attempts int,
	fnName string,
	fn RetriableFn,
) error {
	if attempts < 1 {
		return fmt.Errorf("attempts must be > 0")
	}

	var i int
	var stopped bool
	operation := func() error {
		err, exitNow := fn(i)
		i++
		if err != nil && exitNow {
			stopped = true
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, sleep time.Duration) {
		r.config.logger.Warnf(
			"Error during retry %s; retrying. attempt=%d, maxAttempt=%d, backoff=%v, error=%v",
			fnName, i-1, attempts, sleep, err,
		)
	}

	err := backoff.RetryNotifyWithTimer(operation, r.backOff(ctx, attempts), notify, r.timer())
	if err != nil && !stopped && i == attempts && ctx.Err() == nil {
		r.config.logger.Warnf(
			"Exhausted all retry attempts for %s; giving up. attempt=%d, maxAttempt=%d, error=%v",
			fnName, i-1, attempts, err,
		)
	}
	return err
}

func (r *expoRetry) backOff(ctx context.Context, attempts int) backoff.BackOff {
	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.sleep),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(r.config.jitter),
		backoff.WithMaxInterval(r.config.maxSleep),
		backoff.WithMaxElapsedTime(0),
	)
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(attempts-1)), ctx)
}

func (r *expoRetry) timer() backoff.Timer {
	if r.config.newTimer == nil {
		return nil
	}
	return r.config.newTimer()
}
