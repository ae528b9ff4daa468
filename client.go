package nationstates_go

import (
	"net/http"

	"github.com/block/nationstates-go/api"
	"github.com/block/nationstates-go/backend/httpbackend"
	"github.com/block/nationstates-go/client"
	"github.com/block/nationstates-go/logger"
)

// Client is a ready to use NationStates client over net/http.
// Use the client package directly to plug in another HTTP stack.
type Client struct {
	httpClient *http.Client

	core    *client.Client[*http.Request]
	nations *api.Nations[*http.Request]
}

func NewClient(opts ...ConfigOption) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = logger.Noop{}
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout

	coreOpts := []client.Option{
		client.WithUserAgent(cfg.userAgent),
		client.WithLogger(cfg.logger),
	}
	if cfg.limiter != nil {
		coreOpts = append(coreOpts, client.WithLimiter(cfg.limiter))
	}
	if cfg.baseUrl != "" {
		coreOpts = append(coreOpts, client.WithBaseURL(cfg.baseUrl))
	}
	if cfg.lookupEnv != nil {
		coreOpts = append(coreOpts, client.WithLookupEnv(cfg.lookupEnv))
	}

	core, err := client.New[*http.Request](httpbackend.New(httpClient), coreOpts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		httpClient: httpClient,
		core:       core,
		nations:    api.NewNationsApi(core, cfg.logger),
	}, nil
}

func (c *Client) Nations() *api.Nations[*http.Request] {
	return c.nations
}

// Core exposes the request pipeline for queries the typed APIs don't cover.
func (c *Client) Core() *client.Client[*http.Request] {
	return c.core
}
