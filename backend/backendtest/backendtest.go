// Package backendtest provides an in-memory backend for tests.
// It records every request it builds and sends, and answers
// with a configurable canned response.
package backendtest

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/block/nationstates-go/backend"
)

type Request struct {
	Url     string
	Headers map[string]string
	Params  []backend.Param
}

func (r *Request) Query() string {
	parts := make([]string, 0, len(r.Params))
	for _, p := range r.Params {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, "&")
}

type Backend struct {
	Status   int
	Body     []byte
	Headers  map[string]string
	BuildErr error
	SendErr  error
	BodyErr  error

	// Now stamps every Send. Defaults to time.Now.
	Now func() time.Time

	// OnSend, when set, runs inside Send before the response is returned.
	// Tests use it to hold requests in flight.
	OnSend func(ctx context.Context, req *Request)

	mu        sync.Mutex
	requests  []*Request
	sendTimes []time.Time
	built     atomic.Int64
	sent      atomic.Int64
}

var _ backend.Client[*Request] = &Backend{}

func New() *Backend {
	return &Backend{Status: 200}
}

func (b *Backend) Get(url string) backend.RequestBuilder[*Request] {
	return &builder{
		backend: b,
		url:     url,
		headers: map[string]string{},
	}
}

func (b *Backend) Send(ctx context.Context, req *Request) (backend.Response, error) {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}

	b.sent.Inc()
	b.mu.Lock()
	b.requests = append(b.requests, req)
	b.sendTimes = append(b.sendTimes, now())
	b.mu.Unlock()

	if b.OnSend != nil {
		b.OnSend(ctx, req)
	}
	if b.SendErr != nil {
		return nil, b.SendErr
	}
	return &Response{
		Status:  b.Status,
		Headers: b.Headers,
		Data:    b.Body,
		Err:     b.BodyErr,
	}, nil
}

// Requests returns the sent requests in the order Send saw them.
func (b *Backend) Requests() []*Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*Request(nil), b.requests...)
}

// SendTimes returns the instants at which Send was entered.
func (b *Backend) SendTimes() []time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]time.Time(nil), b.sendTimes...)
}

func (b *Backend) Built() int64 {
	return b.built.Load()
}

func (b *Backend) Sent() int64 {
	return b.sent.Load()
}

type builder struct {
	backend *Backend
	url     string
	headers map[string]string
	params  []backend.Param
}

func (b *builder) AddHeader(name, value string) {
	b.headers[name] = value
}

func (b *builder) AddQueries(params ...backend.Param) {
	b.params = append(b.params, params...)
}

func (b *builder) Build() (*Request, error) {
	if b.backend.BuildErr != nil {
		return nil, b.backend.BuildErr
	}
	b.backend.built.Inc()

	headers := make(map[string]string, len(b.headers))
	for k, v := range b.headers {
		headers[k] = v
	}
	return &Request{
		Url:     b.url,
		Headers: headers,
		Params:  append([]backend.Param(nil), b.params...),
	}, nil
}

type Response struct {
	Status  int
	Headers map[string]string
	Data    []byte
	Err     error

	reads atomic.Int32
}

var _ backend.Response = &Response{}

func (r *Response) StatusCode() int {
	return r.Status
}

func (r *Response) Header(name string) ([]byte, bool) {
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return []byte(v), true
		}
	}
	return nil, false
}

func (r *Response) Body() ([]byte, error) {
	r.reads.Inc()
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Data, nil
}

// Reads reports how many times Body was called.
func (r *Response) Reads() int32 {
	return r.reads.Load()
}
