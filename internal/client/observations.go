package client

import (
	"context"
	"net/http"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// ObservationsClient implements citra.ObservationsClient.
type ObservationsClient struct {
	httpClient *internalhttp.Client
}

// NewObservationsClient creates a new optical observations client.
func NewObservationsClient(httpClient *internalhttp.Client) *ObservationsClient {
	return &ObservationsClient{
		httpClient: httpClient,
	}
}

// List implements citra.ObservationsClient.List.
func (c *ObservationsClient) List(ctx context.Context, query *citra.ObservationQuery) ([]citra.OpticalObservation, error) {
	params, err := encodeQuery(query)
	if err != nil {
		return nil, err
	}

	return getList[citra.OpticalObservation](ctx, c.httpClient, "observations/optical", params, "optical observations")
}

// Get implements citra.ObservationsClient.Get.
func (c *ObservationsClient) Get(ctx context.Context, id string) (*citra.OpticalObservation, error) {
	path, err := resourcePath("observations", "optical", id)
	if err != nil {
		return nil, err
	}

	return getOne[citra.OpticalObservation](ctx, c.httpClient, path, nil, "optical observation")
}

// Create implements citra.ObservationsClient.Create.
func (c *ObservationsClient) Create(ctx context.Context, request *citra.CreateOpticalObservationRequest) (*citra.OpticalObservation, error) {
	return batchOne[citra.OpticalObservation](ctx, c.httpClient, http.MethodPost, "observations/optical", request, "creating optical observation")
}

// Counts implements citra.ObservationsClient.Counts.
func (c *ObservationsClient) Counts(ctx context.Context) ([]citra.ObservationCount, error) {
	return getList[citra.ObservationCount](ctx, c.httpClient, "observations/optical/counts", nil, "observation counts")
}
