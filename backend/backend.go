package backend

import "context"

// Client is the capability a concrete HTTP stack must provide so that the
// request pipeline can run on top of it.
//
// R is the backend's built request type, e.g. *http.Request for the
// net/http adapter in backend/httpbackend. The pipeline is written once
// against this interface and never against a concrete stack.
//
// Implementations must follow these rules:
//   - Get must not perform I/O and must not fail; problems with the URL are
//     reported by the builder's Build.
//   - Send returns an error only when the request could not be exchanged
//     with the server. A 4xx or 5xx status is a successful Send.
//   - Send must be safe for concurrent use.
type Client[R any] interface {
	// Get returns a builder for a GET request to url.
	Get(url string) RequestBuilder[R]

	// Send dispatches a built request.
	Send(ctx context.Context, req R) (Response, error)
}

// RequestBuilder accumulates headers and query parameters for a single
// request. Adders never fail; invalid input is reported by Build.
//
// Build must not modify anything outside the builder, and calling it again
// on unmodified state must yield an equivalent request.
type RequestBuilder[R any] interface {
	ParamSink

	// AddHeader sets a header value pair on the request.
	AddHeader(name, value string)

	// Build produces a request ready to be passed to Client.Send.
	Build() (R, error)
}

// ParamSink is the part of a RequestBuilder that queries write into.
type ParamSink interface {
	// AddQueries appends params to the query string, in order.
	AddQueries(params ...Param)
}

// Response is an HTTP response returned by Client.Send.
type Response interface {
	// StatusCode returns the HTTP status code.
	StatusCode() int

	// Header returns the raw value of the named header, if present.
	Header(name string) ([]byte, bool)

	// Body reads the whole body and releases the response.
	// It must be called at most once.
	Body() ([]byte, error)
}

// Param is a single query string pair.
type Param struct {
	Key   string
	Value string
}

func (p Param) String() string {
	return p.Key + "=" + p.Value
}
