package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/block/nationstates-go/backend/backendtest"
	"github.com/block/nationstates-go/backend/httpbackend"
	"github.com/block/nationstates-go/client"
	"github.com/block/nationstates-go/errors"
	"github.com/block/nationstates-go/logger"
	"github.com/block/nationstates-go/rate"
	"github.com/block/nationstates-go/types"
)

func Test_NormalizeName(t *testing.T) {
	testCases := []struct {
		name   string
		expect string
	}{
		{name: "testlandia", expect: "testlandia"},
		{name: "The West Pacific", expect: "the_west_pacific"},
		{name: "  Padded  ", expect: "padded"},
		{name: "already_normal", expect: "already_normal"},
		{name: "   ", expect: ""},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, NormalizeName(tt.name))
		})
	}
}

func Test_Nations_Get_shards(t *testing.T) {
	b := backendtest.New()
	b.Body = testNationXml
	c, err := client.New[*backendtest.Request](
		b,
		client.WithUserAgent(testUserAgent),
		client.WithLimiter(rate.NoopLimiter{}),
		client.WithLookupEnv(func(string) (string, bool) { return "", false }),
	)
	require.NoError(t, err)

	n, err := NewNationsApi(c, logger.Noop{}).Get(context.Background(), "Testlandia", types.ShardName, types.ShardRegion)
	require.NoError(t, err)
	assert.Equal(t, "Testlandia", n.Name)
	assert.Equal(t, "Testregionia", n.Region)

	reqs := b.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, client.NSURL, reqs[0].Url)
	assert.Equal(t, "nation=testlandia&q=name&q=region&v=11", reqs[0].Query())
	assert.Equal(t, testUserAgent, reqs[0].Headers["User-Agent"])
}

func Test_Nations_Get_empty_name(t *testing.T) {
	b := backendtest.New()
	c, err := client.New[*backendtest.Request](
		b,
		client.WithUserAgent(testUserAgent),
		client.WithLookupEnv(func(string) (string, bool) { return "", false }),
	)
	require.NoError(t, err)

	_, err = NewNationsApi(c, logger.Noop{}).Get(context.Background(), " ")
	assert.ErrorIs(t, err, errors.ErrBuild)
	assert.Zero(t, b.Sent())
}

func Test_Nations_GetMany(t *testing.T) {
	srv := httptest.NewServer(nationHandler())
	defer srv.Close()

	c := newServerClient(t, srv)
	nations, err := NewNationsApi(c, logger.Noop{}).GetMany(
		context.Background(),
		[]string{"Alpha", "Beta", "Gamma"},
		types.ShardName,
	)
	require.NoError(t, err)

	require.Len(t, nations, 3)
	assert.Equal(t, "Alpha", nations[0].Name)
	assert.Equal(t, "Beta", nations[1].Name)
	assert.Equal(t, "Gamma", nations[2].Name)
}

func Test_Nations_GetMany_not_found(t *testing.T) {
	srv := httptest.NewServer(nationHandler())
	defer srv.Close()

	c := newServerClient(t, srv)
	nations, err := NewNationsApi(c, logger.Noop{}).GetMany(
		context.Background(),
		[]string{"Alpha", "missing", "Gamma"},
	)
	assert.ErrorIs(t, err, errors.ErrNotFound)
	assert.Nil(t, nations)
}

func Test_Nations_GetMany_empty_name(t *testing.T) {
	b := backendtest.New()
	c, err := client.New[*backendtest.Request](
		b,
		client.WithUserAgent(testUserAgent),
		client.WithLookupEnv(func(string) (string, bool) { return "", false }),
	)
	require.NoError(t, err)

	_, err = NewNationsApi(c, logger.Noop{}).GetMany(context.Background(), []string{"ok", ""})
	assert.ErrorIs(t, err, errors.ErrBuild)
	assert.Zero(t, b.Sent())
}

func Test_Nations_GetMany_cancelled(t *testing.T) {
	srv := httptest.NewServer(nationHandler())
	defer srv.Close()

	c := newServerClient(t, srv)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewNationsApi(c, logger.Noop{}).GetMany(ctx, []string{"Alpha", "Beta"})
	assert.ErrorIs(t, err, errors.ErrThrottle)
}

func nationHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("nation")
		if name == "missing" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = fmt.Fprintf(w, "Unknown nation: %q.", name)
			return
		}
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		_, _ = fmt.Fprintf(w, `<NATION id="%s"><NAME>%s</NAME></NATION>`, name, displayName(name))
	})
}

func displayName(normalized string) string {
	if normalized == "" {
		return ""
	}
	return string(normalized[0]-'a'+'A') + normalized[1:]
}

func newServerClient(t *testing.T, srv *httptest.Server) *client.Client[*http.Request] {
	t.Helper()
	c, err := client.New[*http.Request](
		httpbackend.New(srv.Client()),
		client.WithUserAgent(testUserAgent),
		client.WithBaseURL(srv.URL),
		client.WithLimiter(rate.NoopLimiter{}),
		client.WithLookupEnv(func(string) (string, bool) { return "", false }),
	)
	require.NoError(t, err)
	return c
}
