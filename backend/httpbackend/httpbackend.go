// Package httpbackend implements the backend capabilities on top of net/http.
package httpbackend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/block/nationstates-go/backend"
)

type Client struct {
	httpClient *http.Client
}

var _ backend.Client[*http.Request] = &Client{}

// New wraps httpClient. A nil httpClient means http.DefaultClient.
func New(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient}
}

func (c *Client) Get(rawUrl string) backend.RequestBuilder[*http.Request] {
	return &builder{
		url:    rawUrl,
		header: http.Header{},
	}
}

func (c *Client) Send(ctx context.Context, req *http.Request) (backend.Response, error) {
	res, err := c.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return &response{res: res}, nil
}

type builder struct {
	url    string
	header http.Header
	params []backend.Param
	err    error
}

func (b *builder) AddHeader(name, value string) {
	if b.err != nil {
		return
	}
	if !httpguts.ValidHeaderFieldName(name) {
		b.err = fmt.Errorf("invalid header name %q", name)
		return
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		b.err = fmt.Errorf("invalid value for header %q", name)
		return
	}
	b.header.Set(name, value)
}

func (b *builder) AddQueries(params ...backend.Param) {
	b.params = append(b.params, params...)
}

func (b *builder) Build() (*http.Request, error) {
	if b.err != nil {
		return nil, b.err
	}

	u, err := url.Parse(b.url)
	if err != nil {
		return nil, err
	}
	if q := encodeParams(b.params); q != "" {
		if u.RawQuery != "" {
			u.RawQuery += "&" + q
		} else {
			u.RawQuery = q
		}
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header = b.header.Clone()
	return req, nil
}

// encodeParams keeps the insertion order, unlike url.Values.Encode
// which sorts by key.
func encodeParams(params []backend.Param) string {
	var sb strings.Builder
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

type response struct {
	res *http.Response
}

func (r *response) StatusCode() int {
	return r.res.StatusCode
}

func (r *response) Header(name string) ([]byte, bool) {
	values, ok := r.res.Header[http.CanonicalHeaderKey(name)]
	if !ok || len(values) == 0 {
		return nil, false
	}
	return []byte(strings.Join(values, ", ")), true
}

func (r *response) Body() ([]byte, error) {
	if r.res.Body == nil {
		return nil, nil
	}
	defer func() { _ = r.res.Body.Close() }()
	return io.ReadAll(r.res.Body)
}
