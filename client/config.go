package client

import (
	"os"

	"github.com/block/nationstates-go/logger"
	"github.com/block/nationstates-go/rate"
)

type config struct {
	// userAgent identifies the caller to the API. Every request carries it.
	// default: the NS_USER_AGENT environment variable
	userAgent string

	// limiter admits requests to the API. It is shared by every clone
	// of the client.
	// default: rate.NewDefault(), 50 requests per 35 seconds
	limiter rate.Limiter

	// logger provides logging functionality for the request pipeline
	// default: logger.Noop
	logger logger.Logger

	// baseUrl is the API endpoint every query is appended to
	// default: NSURL
	baseUrl string

	// lookupEnv reads the environment
	// default: os.LookupEnv
	lookupEnv func(key string) (string, bool)
}

func defaultConfig() *config {
	return &config{
		logger:    logger.Noop{},
		baseUrl:   NSURL,
		lookupEnv: os.LookupEnv,
	}
}

type Option func(c *config)

func WithUserAgent(userAgent string) Option {
	return func(c *config) {
		c.userAgent = userAgent
	}
}

func WithLimiter(limiter rate.Limiter) Option {
	return func(c *config) {
		c.limiter = limiter
	}
}

func WithLogger(logger logger.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func WithBaseURL(baseUrl string) Option {
	return func(c *config) {
		c.baseUrl = baseUrl
	}
}

func WithLookupEnv(lookupEnv func(key string) (string, bool)) Option {
	return func(c *config) {
		c.lookupEnv = lookupEnv
	}
}
