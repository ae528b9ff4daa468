package api

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/block/nationstates-go/client"
	"github.com/block/nationstates-go/errors"
	"github.com/block/nationstates-go/logger"
	"github.com/block/nationstates-go/query"
	"github.com/block/nationstates-go/types"
)

// apiClient turns raw responses of the request pipeline into typed
// results: it reads the body, treats any status but 200 as an error
// and decodes the XML document.
type apiClient[R any] struct {
	client *client.Client[R]
	logger logger.Logger
}

func newApiClient[R any](
	c *client.Client[R],
	logger logger.Logger,
) *apiClient[R] {
	return &apiClient[R]{
		client: c,
		logger: logger,
	}
}

func (c *apiClient[R]) getNation(ctx context.Context, q query.Query) (*types.Nation, *errors.ApiError) {
	res, err := c.client.Request(q).Send(ctx)
	if err != nil {
		return nil, asApiError(err)
	}
	return c.decodeNation(res)
}

func (c *apiClient[R]) getRaw(ctx context.Context, q query.Query) ([]byte, *errors.ApiError) {
	res, err := c.client.Request(q).Send(ctx)
	if err != nil {
		return nil, asApiError(err)
	}
	return c.read(res)
}

func (c *apiClient[R]) read(res *client.Response) ([]byte, *errors.ApiError) {
	body, err := res.Body()
	if err != nil {
		return body, asApiError(err)
	}

	if res.StatusCode() != http.StatusOK {
		c.logger.Debugf("nationstates: api answered with status %d", res.StatusCode())
		return body, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_HTTP_STATUS,
			Body:           body,
			HttpStatusCode: res.StatusCode(),
		}
	}
	return body, nil
}

func (c *apiClient[R]) decodeNation(res *client.Response) (*types.Nation, *errors.ApiError) {
	body, apiErr := c.read(res)
	if apiErr != nil {
		return nil, apiErr
	}

	nation, err := types.DecodeNation(body)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_XML_PARSE,
			SourceErr:      err,
			Body:           body,
			HttpStatusCode: res.StatusCode(),
		}
	}
	return nation, nil
}

func asApiError(err error) *errors.ApiError {
	var apiErr *errors.ApiError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}
	return &errors.ApiError{
		Stage:     errors.STAGE_REQUEST,
		Type:      errors.TYPE_UNKNOWN,
		SourceErr: err,
	}
}

// toNilErr converts a *errors.ApiError type to be a true nil interface.
// Internally, a Go interface has a Type and Value.
// An interface value is nil only if the V and T are both unset.
// See: https://go.dev/doc/faq#nil_error
func toNilErr[T any](r T, e *errors.ApiError) (T, error) {
	if e != nil {
		return r, e
	}
	return r, nil
}
