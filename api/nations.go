package api

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/block/nationstates-go/client"
	"github.com/block/nationstates-go/errors"
	"github.com/block/nationstates-go/logger"
	"github.com/block/nationstates-go/query"
	"github.com/block/nationstates-go/types"
)

// Nations reads the public nation endpoint.
// Any status other than 200 is returned as an *errors.ApiError; a missing
// nation matches errors.ErrNotFound.
type Nations[R any] struct {
	api *apiClient[R]
}

var errEmptyName = stderrors.New("nation name is empty")

func NewNationsApi[R any](c *client.Client[R], logger logger.Logger) *Nations[R] {
	return &Nations[R]{
		api: newApiClient(c, logger),
	}
}

// NormalizeName converts a display name to the form used in urls:
// lower case with underscores instead of spaces.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ToLower(name)
}

func nationQuery(name string, shards []query.Shard) query.Query {
	return query.All(
		query.Nation(NormalizeName(name)),
		query.Shards(shards...),
		query.Version(query.APIVersion),
	)
}

// Get fetches a single nation. Without shards the API answers with its
// default shard set.
func (n *Nations[R]) Get(ctx context.Context, name string, shards ...query.Shard) (*types.Nation, error) {
	if NormalizeName(name) == "" {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_BUILD,
			SourceErr: errEmptyName,
		}
	}
	return toNilErr(n.api.getNation(ctx, nationQuery(name, shards)))
}

// GetMany fetches several nations with the same shards. Results keep the
// order of names. The first failure cancels the requests still waiting
// for a permit and is returned.
func (n *Nations[R]) GetMany(ctx context.Context, names []string, shards ...query.Shard) ([]*types.Nation, error) {
	reqs := make([]*client.Request[R], 0, len(names))
	for _, name := range names {
		if NormalizeName(name) == "" {
			return nil, &errors.ApiError{
				Stage:     errors.STAGE_BEFORE_REQUEST,
				Type:      errors.TYPE_REQUEST_BUILD,
				SourceErr: errEmptyName,
			}
		}
		reqs = append(reqs, n.api.client.Request(nationQuery(name, shards)))
	}

	responses, err := client.SendAll(ctx, reqs...)
	if err != nil {
		for _, res := range responses {
			if res != nil {
				_, _ = res.Body()
			}
		}
		return nil, err
	}

	res := make([]*types.Nation, len(responses))
	for i, r := range responses {
		nation, apiErr := n.api.decodeNation(r)
		if apiErr != nil {
			for _, rest := range responses[i+1:] {
				_, _ = rest.Body()
			}
			return nil, apiErr
		}
		res[i] = nation
	}
	return res, nil
}

// Raw sends an arbitrary query and returns the body of a 200 response.
// Use it for shards or endpoints that have no typed model.
func (n *Nations[R]) Raw(ctx context.Context, q query.Query) ([]byte, error) {
	return toNilErr(n.api.getRaw(ctx, q))
}
