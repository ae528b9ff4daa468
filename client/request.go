package client

import (
	"context"
	stderrors "errors"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/block/nationstates-go/backend"
	"github.com/block/nationstates-go/errors"
	"github.com/block/nationstates-go/query"
)

// MaxFanOut bounds the goroutines SendAll starts at once.
// The limiter still decides when each request is dispatched.
const MaxFanOut = 8

// Request is a single use request bound to a Client.
type Request[R any] struct {
	client    *Client[R]
	builder   backend.RequestBuilder[R]
	query     query.Query
	userAgent string
	id        string
	sent      atomic.Bool
}

// WithUserAgent overrides the client's user agent for this request only.
func (r *Request[R]) WithUserAgent(userAgent string) *Request[R] {
	r.userAgent = userAgent
	return r
}

// ID identifies the request in log lines.
func (r *Request[R]) ID() string {
	return r.id
}

// Send assembles the request, waits for a permit from the client's limiter
// and dispatches it. Waiting for the permit is the only point where Send
// blocks before the backend is called.
//
// A response is returned whatever its status; a 404 or a 500 is not an error
// here. Errors are *errors.ApiError values:
//   - errors.ErrBuild: the backend rejected the request, nothing was sent
//     and no permit was used
//   - errors.ErrThrottle: ctx ended while waiting for a permit
//   - errors.ErrSend: the backend failed to exchange the request
//   - errors.ErrRequestConsumed: Send was already called
func (r *Request[R]) Send(ctx context.Context) (*Response, error) {
	if !r.sent.CompareAndSwap(false, true) {
		return nil, &errors.ApiError{
			Stage: errors.STAGE_BEFORE_REQUEST,
			Type:  errors.TYPE_REQUEST_CONSUMED,
		}
	}

	c := r.client
	userAgent := r.userAgent
	if userAgent == "" {
		userAgent = c.userAgent
	}

	r.query.Apply(r.builder)
	r.builder.AddHeader(userAgentHeader, userAgent)
	built, err := r.builder.Build()
	if err != nil {
		c.logger.Warnf("nationstates: failed to build request %s: %v", r.id, err)
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_BUILD,
			SourceErr: err,
		}
	}

	start := time.Now()
	release, err := c.limiter.Acquire(ctx)
	if err != nil {
		c.logger.Debugf("nationstates: gave up waiting for a permit for request %s after %v: %v", r.id, time.Since(start), err)
		errType := errors.TYPE_IO
		if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
			errType = errors.TYPE_CANCELLED
		}
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_THROTTLE,
			Type:      errType,
			SourceErr: err,
		}
	}
	c.logger.Debugf("nationstates: dispatching request %s after waiting %v", r.id, time.Since(start))

	res, err := c.backend.Send(ctx, built)
	release()
	if err != nil {
		c.logger.Warnf("nationstates: request %s failed: %v", r.id, err)
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: err,
		}
	}

	c.logger.Debugf("nationstates: request %s completed with status %d", r.id, res.StatusCode())
	return &Response{res: res}, nil
}

// SendAll sends every request concurrently and returns the responses in
// the same order. All requests still go through their client's limiter.
// The first error cancels the requests still waiting for a permit; the
// responses that did complete are returned alongside the error so their
// bodies can be read or discarded.
func SendAll[R any](ctx context.Context, reqs ...*Request[R]) ([]*Response, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxFanOut)

	out := make([]*Response, len(reqs))
	for i, req := range reqs {
		g.Go(func() error {
			res, err := req.Send(ctx)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}

	return out, g.Wait()
}
