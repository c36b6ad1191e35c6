package client

import (
	"context"
	"net/http"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// ManeuversClient implements citra.ManeuversClient.
type ManeuversClient struct {
	httpClient *internalhttp.Client
}

// NewManeuversClient creates a new maneuvers client.
func NewManeuversClient(httpClient *internalhttp.Client) *ManeuversClient {
	return &ManeuversClient{
		httpClient: httpClient,
	}
}

// List implements citra.ManeuversClient.List.
func (c *ManeuversClient) List(ctx context.Context, query *citra.ManeuverListQuery) ([]citra.Maneuver, error) {
	params, err := encodeQuery(query)
	if err != nil {
		return nil, err
	}

	return getList[citra.Maneuver](ctx, c.httpClient, "maneuvers", params, "maneuvers")
}

// Get implements citra.ManeuversClient.Get.
func (c *ManeuversClient) Get(ctx context.Context, id string) (*citra.Maneuver, error) {
	path, err := resourcePath("maneuvers", id)
	if err != nil {
		return nil, err
	}

	return getOne[citra.Maneuver](ctx, c.httpClient, path, nil, "maneuver")
}

// Create implements citra.ManeuversClient.Create.
func (c *ManeuversClient) Create(ctx context.Context, request *citra.CreateManeuverRequest) (*citra.Maneuver, error) {
	return send[citra.Maneuver](ctx, c.httpClient, http.MethodPost, "maneuvers", request, "creating maneuver")
}

// Update implements citra.ManeuversClient.Update.
func (c *ManeuversClient) Update(ctx context.Context, id string, request *citra.UpdateManeuverRequest) (*citra.Maneuver, error) {
	path, err := resourcePath("maneuvers", id)
	if err != nil {
		return nil, err
	}

	return send[citra.Maneuver](ctx, c.httpClient, http.MethodPatch, path, request, "updating maneuver")
}

// Delete implements citra.ManeuversClient.Delete.
func (c *ManeuversClient) Delete(ctx context.Context, id string) error {
	path, err := resourcePath("maneuvers", id)
	if err != nil {
		return err
	}

	return sendNoContent(ctx, c.httpClient, http.MethodDelete, path, nil, "deleting maneuver")
}
