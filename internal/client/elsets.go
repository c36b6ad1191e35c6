package client

import (
	"context"
	"net/http"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// ElsetsClient implements citra.ElsetsClient.
type ElsetsClient struct {
	httpClient *internalhttp.Client
}

// NewElsetsClient creates a new elsets client.
func NewElsetsClient(httpClient *internalhttp.Client) *ElsetsClient {
	return &ElsetsClient{
		httpClient: httpClient,
	}
}

// Counts implements citra.ElsetsClient.Counts.
func (c *ElsetsClient) Counts(ctx context.Context) ([]citra.ElsetCount, error) {
	return getList[citra.ElsetCount](ctx, c.httpClient, "elsets/counts", nil, "elset counts")
}

// NearGeoScatter implements citra.ElsetsClient.NearGeoScatter.
func (c *ElsetsClient) NearGeoScatter(ctx context.Context) ([]citra.GeoScatterPoint, error) {
	return getList[citra.GeoScatterPoint](ctx, c.httpClient, "elsets/scatter/near-geo", nil, "near-GEO scatter")
}

// LeoScatter implements citra.ElsetsClient.LeoScatter. Nil bounds are not sent.
func (c *ElsetsClient) LeoScatter(ctx context.Context, minSemiMajorAxisKm, maxSemiMajorAxisKm *float64) ([]citra.LeoScatterPoint, error) {
	params, err := encodeQuery(&citra.LeoScatterQuery{
		MinSemiMajorAxisKm: minSemiMajorAxisKm,
		MaxSemiMajorAxisKm: maxSemiMajorAxisKm,
	})
	if err != nil {
		return nil, err
	}

	return getList[citra.LeoScatterPoint](ctx, c.httpClient, "elsets/scatter/leo", params, "LEO scatter")
}

// Create implements citra.ElsetsClient.Create.
func (c *ElsetsClient) Create(ctx context.Context, request *citra.CreateElsetRequest) (*citra.Elset, error) {
	return batchOne[citra.Elset](ctx, c.httpClient, http.MethodPost, "elsets", request, "creating elset")
}

// Get implements citra.ElsetsClient.Get.
func (c *ElsetsClient) Get(ctx context.Context, id string) (*citra.Elset, error) {
	path, err := resourcePath("elsets", id)
	if err != nil {
		return nil, err
	}

	return getOne[citra.Elset](ctx, c.httpClient, path, nil, "elset")
}
