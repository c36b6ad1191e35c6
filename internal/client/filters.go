package client

import (
	"context"
	"net/http"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// FiltersClient implements citra.FiltersClient.
type FiltersClient struct {
	httpClient *internalhttp.Client
}

// NewFiltersClient creates a new filters client.
func NewFiltersClient(httpClient *internalhttp.Client) *FiltersClient {
	return &FiltersClient{
		httpClient: httpClient,
	}
}

// List implements citra.FiltersClient.List.
func (c *FiltersClient) List(ctx context.Context) ([]citra.Filter, error) {
	return getList[citra.Filter](ctx, c.httpClient, "filters", nil, "filters")
}

// Expand implements citra.FiltersClient.Expand.
func (c *FiltersClient) Expand(ctx context.Context, names []string) ([]citra.Filter, error) {
	request := &citra.FilterExpandRequest{FilterNames: names}

	expanded, err := send[citra.FilterExpandResponse](ctx, c.httpClient, http.MethodPost, "filters/expand", request, "expanding filters")
	if err != nil {
		return nil, err
	}

	return expanded.Filters, nil
}
