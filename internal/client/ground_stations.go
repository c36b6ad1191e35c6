package client

import (
	"context"
	"net/http"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// groundStationUpdate is the wire shape of an update: the request fields plus the id.
type groundStationUpdate struct {
	ID string `json:"id"`
	*citra.GroundStationRequest
}

// GroundStationsClient implements citra.GroundStationsClient.
type GroundStationsClient struct {
	httpClient *internalhttp.Client
}

// NewGroundStationsClient creates a new ground stations client.
func NewGroundStationsClient(httpClient *internalhttp.Client) *GroundStationsClient {
	return &GroundStationsClient{
		httpClient: httpClient,
	}
}

// Get implements citra.GroundStationsClient.Get.
func (c *GroundStationsClient) Get(ctx context.Context, id string) (*citra.GroundStation, error) {
	path, err := resourcePath("ground-stations", id)
	if err != nil {
		return nil, err
	}

	return getOne[citra.GroundStation](ctx, c.httpClient, path, nil, "ground station")
}

// List implements citra.GroundStationsClient.List.
func (c *GroundStationsClient) List(ctx context.Context) ([]citra.GroundStation, error) {
	list, err := getOne[citra.GroundStationListResponse](ctx, c.httpClient, "ground-stations", nil, "ground stations")
	if err != nil {
		return nil, err
	}

	return list.GroundStations, nil
}

// ListMine implements citra.GroundStationsClient.ListMine.
func (c *GroundStationsClient) ListMine(ctx context.Context) ([]citra.GroundStation, error) {
	return getList[citra.GroundStation](ctx, c.httpClient, "my/ground-stations", nil, "my ground stations")
}

// Create implements citra.GroundStationsClient.Create.
func (c *GroundStationsClient) Create(ctx context.Context, request *citra.GroundStationRequest) (*citra.GroundStation, error) {
	return batchOne[citra.GroundStation](ctx, c.httpClient, http.MethodPost, "ground-stations", request, "creating ground station")
}

// Update implements citra.GroundStationsClient.Update.
func (c *GroundStationsClient) Update(ctx context.Context, id string, request *citra.GroundStationRequest) (*citra.GroundStation, error) {
	if id == "" {
		return nil, citra.ErrIDRequired
	}

	if request == nil {
		return nil, citra.ErrRequestRequired
	}

	update := groundStationUpdate{ID: id, GroundStationRequest: request}

	return batchOne[citra.GroundStation](ctx, c.httpClient, http.MethodPut, "ground-stations", &update, "updating ground station")
}

// Delete implements citra.GroundStationsClient.Delete.
func (c *GroundStationsClient) Delete(ctx context.Context, id string) error {
	return batchDelete(ctx, c.httpClient, "ground-stations", id, "deleting ground station")
}

// ListTelescopes implements citra.GroundStationsClient.ListTelescopes.
func (c *GroundStationsClient) ListTelescopes(ctx context.Context, id string) ([]citra.Telescope, error) {
	path, err := resourcePath("ground-stations", id, "telescopes")
	if err != nil {
		return nil, err
	}

	return getList[citra.Telescope](ctx, c.httpClient, path, nil, "ground station telescopes")
}

// ListAntennas implements citra.GroundStationsClient.ListAntennas.
func (c *GroundStationsClient) ListAntennas(ctx context.Context, id string) ([]citra.Antenna, error) {
	path, err := resourcePath("ground-stations", id, "antennas")
	if err != nil {
		return nil, err
	}

	return getList[citra.Antenna](ctx, c.httpClient, path, nil, "ground station antennas")
}
