package client

import (
	"context"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// AccessClient implements citra.AccessClient.
type AccessClient struct {
	httpClient *internalhttp.Client
}

// NewAccessClient creates a new access client.
func NewAccessClient(httpClient *internalhttp.Client) *AccessClient {
	return &AccessClient{
		httpClient: httpClient,
	}
}

// GroundStation implements citra.AccessClient.GroundStation. Windows for every
// satellite visible from the ground station are returned.
func (c *AccessClient) GroundStation(ctx context.Context, request *citra.SatelliteAccessToGroundStationRequest) ([]citra.HorizonAccess, error) {
	return postList[citra.HorizonAccess](ctx, c.httpClient, "access/ground-station", request, "solving ground station access")
}

// FOV implements citra.AccessClient.FOV.
func (c *AccessClient) FOV(ctx context.Context, request *citra.FOVAccessRequest) ([]citra.FOVAccessResponse, error) {
	return postList[citra.FOVAccessResponse](ctx, c.httpClient, "access/fov", request, "solving field of view access")
}

// Geo implements citra.AccessClient.Geo.
func (c *AccessClient) Geo(ctx context.Context, query *citra.GeoAccessQuery) ([]citra.GeoAccess, error) {
	params, err := encodeQuery(query)
	if err != nil {
		return nil, err
	}

	return getList[citra.GeoAccess](ctx, c.httpClient, "access/geo", params, "geo access")
}

// Location implements citra.AccessClient.Location.
func (c *AccessClient) Location(ctx context.Context, request *citra.LocationAccessRequest) ([]citra.LocationAccess, error) {
	return postList[citra.LocationAccess](ctx, c.httpClient, "access/location", request, "solving location access")
}
