package httpbackend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/block/nationstates-go/backend"
)

func Test_Build(t *testing.T) {
	testCases := []struct {
		name      string
		url       string
		headers   [][2]string
		params    []backend.Param
		expectUrl string
		expectErr bool
	}{
		{
			name:      "no params",
			url:       "https://www.nationstates.net/cgi-bin/api.cgi",
			expectUrl: "https://www.nationstates.net/cgi-bin/api.cgi",
		},
		{
			name: "params keep order",
			url:  "https://www.nationstates.net/cgi-bin/api.cgi",
			params: []backend.Param{
				{Key: "nation", Value: "testlandia"},
				{Key: "q", Value: "b"},
				{Key: "q", Value: "a"},
			},
			expectUrl: "https://www.nationstates.net/cgi-bin/api.cgi?nation=testlandia&q=b&q=a",
		},
		{
			name:      "params are escaped",
			url:       "https://example.com/api",
			params:    []backend.Param{{Key: "nation", Value: "the testlandia&co"}},
			expectUrl: "https://example.com/api?nation=the+testlandia%26co",
		},
		{
			name:      "existing raw query is kept",
			url:       "https://example.com/api?v=11",
			params:    []backend.Param{{Key: "q", Value: "flag"}},
			expectUrl: "https://example.com/api?v=11&q=flag",
		},
		{
			name:      "invalid header name",
			url:       "https://example.com/api",
			headers:   [][2]string{{"User Agent", "x"}},
			expectErr: true,
		},
		{
			name:      "invalid header value",
			url:       "https://example.com/api",
			headers:   [][2]string{{"User-Agent", "line\nbreak"}},
			expectErr: true,
		},
		{
			name:      "invalid url",
			url:       "://nope",
			expectErr: true,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := New(nil).Get(tt.url)
			for _, h := range tt.headers {
				b.AddHeader(h[0], h[1])
			}
			b.AddQueries(tt.params...)

			req, err := b.Build()
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectUrl, req.URL.String())
			assert.Equal(t, http.MethodGet, req.Method)
		})
	}
}

func Test_Build_idempotent(t *testing.T) {
	b := New(nil).Get("https://example.com/api")
	b.AddHeader("User-Agent", "test-agent")
	b.AddQueries(backend.Param{Key: "q", Value: "flag"})

	req1, err := b.Build()
	require.NoError(t, err)
	req2, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, req1.URL.String(), req2.URL.String())
	assert.Equal(t, req1.Header, req2.Header)

	req1.Header.Set("User-Agent", "changed")
	assert.Equal(t, "test-agent", req2.Header.Get("User-Agent"))
}

func Test_Send(t *testing.T) {
	var gotAgent, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotQuery = r.URL.RawQuery
		w.Header().Set("X-Ratelimit-Requests-Seen", "3")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("<NATION/>"))
	}))
	defer srv.Close()

	c := New(srv.Client())
	b := c.Get(srv.URL)
	b.AddHeader("User-Agent", "test-agent")
	b.AddQueries(backend.Param{Key: "q", Value: "flag"})
	req, err := b.Build()
	require.NoError(t, err)

	res, err := c.Send(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode())

	seen, ok := res.Header("x-ratelimit-requests-seen")
	assert.True(t, ok)
	assert.Equal(t, []byte("3"), seen)

	_, ok = res.Header("Retry-After")
	assert.False(t, ok)

	body, err := res.Body()
	require.NoError(t, err)
	assert.Equal(t, []byte("<NATION/>"), body)
	assert.Equal(t, "test-agent", gotAgent)
	assert.Equal(t, "q=flag", gotQuery)
}

func Test_Send_connection_refused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(nil)
	req, err := c.Get(url).Build()
	require.NoError(t, err)

	res, err := c.Send(context.Background(), req)
	assert.Error(t, err)
	assert.Nil(t, res)
}
