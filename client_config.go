package nationstates_go

import (
	"net/http"
	"time"

	"github.com/block/nationstates-go/logger"
	"github.com/block/nationstates-go/rate"
)

type config struct {
	// transport specifies the HTTP transport mechanism
	// for making requests.
	// It's useful for mocking or if customers
	// want to add extra logging, headers, etc.
	// default: http.DefaultTransport
	transport http.RoundTripper

	// timeout sets the maximum duration for HTTP requests
	// before they are cancelled. Time spent waiting for
	// a rate limit permit does not count.
	// default: 10 seconds
	timeout time.Duration

	// logger provides logging functionality for all internal
	// nationstates-go client operations
	// default: logger.Noop
	logger logger.Logger

	// limiter admits requests to the API
	// default: rate.NewDefault(), 50 requests per 35 seconds
	limiter rate.Limiter

	// userAgent identifies the caller to NationStates
	// default: the NS_USER_AGENT environment variable
	userAgent string

	// baseUrl overrides the API endpoint
	// default: client.NSURL
	baseUrl string

	lookupEnv func(key string) (string, bool)
}

func defaultConfig() *config {
	return &config{
		transport: http.DefaultTransport,
		timeout:   10 * time.Second,
		logger:    logger.Noop{},
	}
}

type ConfigOption func(c *config)

func WithTransport(transport http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}

func WithRateLimiter(limiter rate.Limiter) ConfigOption {
	return func(c *config) {
		c.limiter = limiter
	}
}

func WithUserAgent(userAgent string) ConfigOption {
	return func(c *config) {
		c.userAgent = userAgent
	}
}

func WithBaseURL(baseUrl string) ConfigOption {
	return func(c *config) {
		c.baseUrl = baseUrl
	}
}

func withLookupEnv(lookupEnv func(key string) (string, bool)) ConfigOption {
	return func(c *config) {
		c.lookupEnv = lookupEnv
	}
}
