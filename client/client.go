// Package client is the rate limited request pipeline of the NationStates
// API client. It is written against the capabilities in package backend
// and works with any HTTP stack that implements them.
package client

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/block/nationstates-go/backend"
	"github.com/block/nationstates-go/errors"
	"github.com/block/nationstates-go/logger"
	"github.com/block/nationstates-go/query"
	"github.com/block/nationstates-go/rate"
)

const (
	// NSURL is the single endpoint of the API. Queries only add parameters.
	NSURL = "https://www.nationstates.net/cgi-bin/api.cgi"

	// UserAgentEnv is read when no user agent is configured explicitly.
	UserAgentEnv = "NS_USER_AGENT"

	userAgentHeader = "User-Agent"
)

// Client is a handle on the API. It owns a backend and a rate limiter.
//
// A Client is safe for concurrent use. Clones made with Clone share the
// backend and the limiter, so any number of goroutines sending through any
// number of clones stay inside one quota, which belongs to the API and not
// to a handle.
//
// Requests wait for the limiter in roughly the order their Send was called,
// but the limiter does not promise first-come first-served admission.
type Client[R any] struct {
	backend   backend.Client[R]
	limiter   rate.Limiter
	logger    logger.Logger
	userAgent string
	baseUrl   string
}

// New creates a client on top of b. It fails with errors.ErrMissingUserAgent
// when neither WithUserAgent nor the NS_USER_AGENT environment variable
// provides a user agent; the API bans anonymous callers, so this is a
// deployment error and not worth retrying.
func New[R any](b backend.Client[R], opts ...Option) (*Client[R], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if b == nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_CONFIG,
			Type:      errors.TYPE_MISSING_BACKEND,
			SourceErr: fmt.Errorf("backend must not be nil"),
		}
	}

	userAgent := strings.TrimSpace(cfg.userAgent)
	if userAgent == "" && cfg.lookupEnv != nil {
		if env, ok := cfg.lookupEnv(UserAgentEnv); ok {
			userAgent = strings.TrimSpace(env)
		}
	}
	if userAgent == "" {
		return nil, &errors.ApiError{
			Stage: errors.STAGE_CONFIG,
			Type:  errors.TYPE_MISSING_USER_AGENT,
			SourceErr: fmt.Errorf(
				"a user agent is required: set %s or use WithUserAgent", UserAgentEnv,
			),
		}
	}

	limiter := cfg.limiter
	if limiter == nil {
		limiter = rate.NewDefault()
	}
	log := cfg.logger
	if log == nil {
		log = logger.Noop{}
	}

	return &Client[R]{
		backend:   b,
		limiter:   limiter,
		logger:    log,
		userAgent: userAgent,
		baseUrl:   cfg.baseUrl,
	}, nil
}

// Clone returns a new handle sharing this client's backend and limiter.
func (c *Client[R]) Clone() *Client[R] {
	clone := *c
	return &clone
}

func (c *Client[R]) UserAgent() string {
	return c.userAgent
}

func (c *Client[R]) Limiter() rate.Limiter {
	return c.limiter
}

// Request starts a request for q. Nothing is sent and no permit is taken
// until Send is called. A nil q is the same as query.None().
func (c *Client[R]) Request(q query.Query) *Request[R] {
	if q == nil {
		q = query.None()
	}
	return &Request[R]{
		client:  c,
		builder: c.backend.Get(c.baseUrl),
		query:   q,
		id:      uuid.NewString(),
	}
}
