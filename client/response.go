package client

import (
	"go.uber.org/atomic"

	"github.com/block/nationstates-go/backend"
	"github.com/block/nationstates-go/errors"
)

// Response is a completed exchange with the API. Status and headers can be
// read any number of times; the body only once.
type Response struct {
	res      backend.Response
	consumed atomic.Bool
}

func (r *Response) StatusCode() int {
	return r.res.StatusCode()
}

func (r *Response) Header(name string) ([]byte, bool) {
	return r.res.Header(name)
}

// Body reads the raw response body. Decoding it is up to the caller.
func (r *Response) Body() ([]byte, error) {
	if !r.consumed.CompareAndSwap(false, true) {
		return nil, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_BODY_CONSUMED,
			HttpStatusCode: r.res.StatusCode(),
		}
	}

	body, err := r.res.Body()
	if err != nil {
		return body, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_IO,
			SourceErr:      err,
			Body:           body,
			HttpStatusCode: r.res.StatusCode(),
		}
	}
	return body, nil
}
