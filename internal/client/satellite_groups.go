package client

import (
	"context"
	"net/http"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// SatelliteGroupsClient implements citra.SatelliteGroupsClient.
type SatelliteGroupsClient struct {
	httpClient *internalhttp.Client
}

// NewSatelliteGroupsClient creates a new satellite groups client.
func NewSatelliteGroupsClient(httpClient *internalhttp.Client) *SatelliteGroupsClient {
	return &SatelliteGroupsClient{
		httpClient: httpClient,
	}
}

// List implements citra.SatelliteGroupsClient.List.
func (c *SatelliteGroupsClient) List(ctx context.Context) ([]citra.SatelliteGroup, error) {
	return getList[citra.SatelliteGroup](ctx, c.httpClient, "satellite-groups", nil, "satellite groups")
}

// ListMine implements citra.SatelliteGroupsClient.ListMine.
func (c *SatelliteGroupsClient) ListMine(ctx context.Context) ([]citra.SatelliteGroup, error) {
	return getList[citra.SatelliteGroup](ctx, c.httpClient, "my/satellite-groups", nil, "my satellite groups")
}

// ListFavorites implements citra.SatelliteGroupsClient.ListFavorites.
func (c *SatelliteGroupsClient) ListFavorites(ctx context.Context) ([]citra.SatelliteGroup, error) {
	return getList[citra.SatelliteGroup](ctx, c.httpClient, "my/satellite-groups/favorites", nil, "favorite satellite groups")
}

// Get implements citra.SatelliteGroupsClient.Get.
func (c *SatelliteGroupsClient) Get(ctx context.Context, id string) (*citra.SatelliteGroup, error) {
	path, err := resourcePath("satellite-groups", id)
	if err != nil {
		return nil, err
	}

	return getOne[citra.SatelliteGroup](ctx, c.httpClient, path, nil, "satellite group")
}

// Create implements citra.SatelliteGroupsClient.Create and returns the new group's id.
func (c *SatelliteGroupsClient) Create(ctx context.Context, request *citra.CreateSatelliteGroupRequest) (string, error) {
	created, err := send[citra.CreateSatelliteGroupResponse](ctx, c.httpClient, http.MethodPost, "satellite-groups", request, "creating satellite group")
	if err != nil {
		return "", err
	}

	return created.ID, nil
}

// Update implements citra.SatelliteGroupsClient.Update. request.ID selects the group.
func (c *SatelliteGroupsClient) Update(ctx context.Context, request *citra.UpdateSatelliteGroupRequest) (*citra.SatelliteGroup, error) {
	if request == nil {
		return nil, citra.ErrRequestRequired
	}

	path, err := resourcePath("satellite-groups", request.ID)
	if err != nil {
		return nil, err
	}

	return send[citra.SatelliteGroup](ctx, c.httpClient, http.MethodPut, path, request, "updating satellite group")
}

// Delete implements citra.SatelliteGroupsClient.Delete.
func (c *SatelliteGroupsClient) Delete(ctx context.Context, id string) error {
	path, err := resourcePath("satellite-groups", id)
	if err != nil {
		return err
	}

	return sendNoContent(ctx, c.httpClient, http.MethodDelete, path, nil, "deleting satellite group")
}

// ListSatellites implements citra.SatelliteGroupsClient.ListSatellites.
func (c *SatelliteGroupsClient) ListSatellites(ctx context.Context, id string) ([]citra.Satellite, error) {
	path, err := resourcePath("satellite-groups", id, "satellites")
	if err != nil {
		return nil, err
	}

	return getList[citra.Satellite](ctx, c.httpClient, path, nil, "group satellites")
}

// AddSatellites implements citra.SatelliteGroupsClient.AddSatellites.
func (c *SatelliteGroupsClient) AddSatellites(ctx context.Context, id string, satelliteIDs []string) error {
	return c.changeMembers(ctx, http.MethodPost, id, satelliteIDs, "adding satellites to group")
}

// RemoveSatellites implements citra.SatelliteGroupsClient.RemoveSatellites.
func (c *SatelliteGroupsClient) RemoveSatellites(ctx context.Context, id string, satelliteIDs []string) error {
	return c.changeMembers(ctx, http.MethodDelete, id, satelliteIDs, "removing satellites from group")
}

func (c *SatelliteGroupsClient) changeMembers(ctx context.Context, method, id string, satelliteIDs []string, action string) error {
	if len(satelliteIDs) == 0 {
		return citra.ErrSatelliteIDsRequired
	}

	path, err := resourcePath("satellite-groups", id, "satellites")
	if err != nil {
		return err
	}

	request := &citra.SatelliteGroupMembersRequest{SatelliteIDs: satelliteIDs}

	return sendNoContent(ctx, c.httpClient, method, path, request, action)
}

// Favorite implements citra.SatelliteGroupsClient.Favorite.
func (c *SatelliteGroupsClient) Favorite(ctx context.Context, id string) error {
	path, err := resourcePath("satellite-groups", id, "favorite")
	if err != nil {
		return err
	}

	return sendNoContent(ctx, c.httpClient, http.MethodPost, path, nil, "favoriting satellite group")
}

// Unfavorite implements citra.SatelliteGroupsClient.Unfavorite.
func (c *SatelliteGroupsClient) Unfavorite(ctx context.Context, id string) error {
	path, err := resourcePath("satellite-groups", id, "favorite")
	if err != nil {
		return err
	}

	return sendNoContent(ctx, c.httpClient, http.MethodDelete, path, nil, "unfavoriting satellite group")
}
