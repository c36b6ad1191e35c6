package client

import (
	"context"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// SatellitesClient implements citra.SatellitesClient.
type SatellitesClient struct {
	httpClient *internalhttp.Client
}

// NewSatellitesClient creates a new satellites client.
func NewSatellitesClient(httpClient *internalhttp.Client) *SatellitesClient {
	return &SatellitesClient{
		httpClient: httpClient,
	}
}

// List implements citra.SatellitesClient.List.
func (c *SatellitesClient) List(ctx context.Context, query *citra.SatelliteListQuery) ([]citra.Satellite, error) {
	params, err := encodeQuery(query)
	if err != nil {
		return nil, err
	}

	page, err := getOne[citra.SatellitePageResponse](ctx, c.httpClient, "satellites", params, "satellites")
	if err != nil {
		return nil, err
	}

	return page.Items, nil
}

// Page implements citra.SatellitesClient.Page.
func (c *SatellitesClient) Page(ctx context.Context, offset, limit int) (*citra.SatellitePaginatedResponse, error) {
	params, err := encodeQuery(&citra.SatellitePageQuery{Offset: offset, Limit: limit})
	if err != nil {
		return nil, err
	}

	return getOne[citra.SatellitePaginatedResponse](ctx, c.httpClient, "satellites/page", params, "satellite page")
}

// Overview implements citra.SatellitesClient.Overview.
func (c *SatellitesClient) Overview(ctx context.Context) (*citra.SatelliteOverview, error) {
	return getOne[citra.SatelliteOverview](ctx, c.httpClient, "satellites/overview", nil, "satellite overview")
}

// Countries implements citra.SatellitesClient.Countries.
func (c *SatellitesClient) Countries(ctx context.Context) ([]citra.CountryCount, error) {
	return getList[citra.CountryCount](ctx, c.httpClient, "satellites/countries", nil, "satellite countries")
}

// Get implements citra.SatellitesClient.Get.
func (c *SatellitesClient) Get(ctx context.Context, id string) (*citra.Satellite, error) {
	path, err := resourcePath("satellites", id)
	if err != nil {
		return nil, err
	}

	return getOne[citra.Satellite](ctx, c.httpClient, path, nil, "satellite")
}

// ListGroups implements citra.SatellitesClient.ListGroups.
func (c *SatellitesClient) ListGroups(ctx context.Context, id string) ([]citra.SatelliteGroup, error) {
	path, err := resourcePath("satellites", id, "satellite-groups")
	if err != nil {
		return nil, err
	}

	return getList[citra.SatelliteGroup](ctx, c.httpClient, path, nil, "satellite groups")
}

// ListElsets implements citra.SatellitesClient.ListElsets.
func (c *SatellitesClient) ListElsets(ctx context.Context, id string) ([]citra.Elset, error) {
	path, err := resourcePath("satellites", id, "elsets")
	if err != nil {
		return nil, err
	}

	return getList[citra.Elset](ctx, c.httpClient, path, nil, "elsets")
}

// ElsetHistory implements citra.SatellitesClient.ElsetHistory.
func (c *SatellitesClient) ElsetHistory(ctx context.Context, id string, query *citra.ElsetHistoryQuery) ([]citra.Elset, error) {
	path, err := resourcePath("satellites", id, "elsets", "history")
	if err != nil {
		return nil, err
	}

	params, err := encodeQuery(query)
	if err != nil {
		return nil, err
	}

	return getList[citra.Elset](ctx, c.httpClient, path, params, "elset history")
}

// LatestElset implements citra.SatellitesClient.LatestElset.
func (c *SatellitesClient) LatestElset(ctx context.Context, id string) (*citra.Elset, error) {
	path, err := resourcePath("satellites", id, "elsets", "latest")
	if err != nil {
		return nil, err
	}

	return getOne[citra.Elset](ctx, c.httpClient, path, nil, "latest elset")
}

// CloseApproaches implements citra.SatellitesClient.CloseApproaches.
func (c *SatellitesClient) CloseApproaches(ctx context.Context, id string, query *citra.TimeRangeQuery) ([]citra.CloseApproach, error) {
	path, err := resourcePath("satellites", id, "close-approaches")
	if err != nil {
		return nil, err
	}

	params, err := encodeQuery(query)
	if err != nil {
		return nil, err
	}

	return getList[citra.CloseApproach](ctx, c.httpClient, path, params, "close approaches")
}

// RelativeState implements citra.SatellitesClient.RelativeState.
func (c *SatellitesClient) RelativeState(ctx context.Context, id, otherID string, query *citra.TimeRangeQuery) ([]citra.RelativeState, error) {
	path, err := resourcePath("satellites", id, "relative-state", otherID)
	if err != nil {
		return nil, err
	}

	params, err := encodeQuery(query)
	if err != nil {
		return nil, err
	}

	return getList[citra.RelativeState](ctx, c.httpClient, path, params, "relative state")
}

// GroundTrack implements citra.SatellitesClient.GroundTrack.
func (c *SatellitesClient) GroundTrack(ctx context.Context, id string, query *citra.TimeRangeQuery) ([]citra.GroundTrackPoint, error) {
	path, err := resourcePath("satellites", id, "ground-track")
	if err != nil {
		return nil, err
	}

	params, err := encodeQuery(query)
	if err != nil {
		return nil, err
	}

	return getList[citra.GroundTrackPoint](ctx, c.httpClient, path, params, "ground track")
}

// ObservationBounds implements citra.SatellitesClient.ObservationBounds.
func (c *SatellitesClient) ObservationBounds(ctx context.Context, id string) (*citra.ObservationBounds, error) {
	path, err := resourcePath("satellites", id, "observation-bounds")
	if err != nil {
		return nil, err
	}

	return getOne[citra.ObservationBounds](ctx, c.httpClient, path, nil, "observation bounds")
}

// Residuals implements citra.SatellitesClient.Residuals.
func (c *SatellitesClient) Residuals(ctx context.Context, id string, request *citra.ResidualsRequest) ([]citra.ResidualResult, error) {
	path, err := resourcePath("satellites", id, "residuals")
	if err != nil {
		return nil, err
	}

	return postList[citra.ResidualResult](ctx, c.httpClient, path, request, "computing residuals")
}

// OrbitalElements implements citra.SatellitesClient.OrbitalElements.
func (c *SatellitesClient) OrbitalElements(ctx context.Context, id string) (*citra.OrbitalElements, error) {
	path, err := resourcePath("satellites", id, "orbital-elements")
	if err != nil {
		return nil, err
	}

	return getOne[citra.OrbitalElements](ctx, c.httpClient, path, nil, "orbital elements")
}

// Ephemeris implements citra.SatellitesClient.Ephemeris.
func (c *SatellitesClient) Ephemeris(ctx context.Context, id string, query *citra.EphemerisQuery) ([]citra.EphemerisPoint, error) {
	path, err := resourcePath("satellites", id, "ephemeris")
	if err != nil {
		return nil, err
	}

	params, err := encodeQuery(query)
	if err != nil {
		return nil, err
	}

	return getList[citra.EphemerisPoint](ctx, c.httpClient, path, params, "ephemeris")
}

// ListRFCaptures implements citra.SatellitesClient.ListRFCaptures.
func (c *SatellitesClient) ListRFCaptures(ctx context.Context, id string) ([]citra.RFCaptureSummary, error) {
	path, err := resourcePath("satellites", id, "rf-captures")
	if err != nil {
		return nil, err
	}

	return getList[citra.RFCaptureSummary](ctx, c.httpClient, path, nil, "satellite RF captures")
}

// ListImages implements citra.SatellitesClient.ListImages.
func (c *SatellitesClient) ListImages(ctx context.Context, id string, query *citra.ImageListQuery) ([]citra.ImageStatus, error) {
	path, err := resourcePath("satellites", id, "images")
	if err != nil {
		return nil, err
	}

	params, err := encodeQuery(query)
	if err != nil {
		return nil, err
	}

	return getList[citra.ImageStatus](ctx, c.httpClient, path, params, "satellite images")
}

// ListManeuvers implements citra.SatellitesClient.ListManeuvers.
func (c *SatellitesClient) ListManeuvers(ctx context.Context, id string) ([]citra.Maneuver, error) {
	path, err := resourcePath("satellites", id, "maneuvers")
	if err != nil {
		return nil, err
	}

	return getList[citra.Maneuver](ctx, c.httpClient, path, nil, "satellite maneuvers")
}

// ListTasks implements citra.SatellitesClient.ListTasks.
func (c *SatellitesClient) ListTasks(ctx context.Context, id string) ([]citra.Task, error) {
	path, err := resourcePath("satellites", id, "tasks")
	if err != nil {
		return nil, err
	}

	return getList[citra.Task](ctx, c.httpClient, path, nil, "satellite tasks")
}
