package client

import (
	"context"
	"net/http"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// TelescopesClient implements citra.TelescopesClient.
type TelescopesClient struct {
	httpClient *internalhttp.Client
}

// NewTelescopesClient creates a new telescopes client.
func NewTelescopesClient(httpClient *internalhttp.Client) *TelescopesClient {
	return &TelescopesClient{
		httpClient: httpClient,
	}
}

// Get implements citra.TelescopesClient.Get.
func (c *TelescopesClient) Get(ctx context.Context, id string) (*citra.Telescope, error) {
	path, err := resourcePath("telescopes", id)
	if err != nil {
		return nil, err
	}

	return getOne[citra.Telescope](ctx, c.httpClient, path, nil, "telescope")
}

// List implements citra.TelescopesClient.List.
func (c *TelescopesClient) List(ctx context.Context) ([]citra.Telescope, error) {
	return getList[citra.Telescope](ctx, c.httpClient, "telescopes", nil, "telescopes")
}

// ListMine implements citra.TelescopesClient.ListMine.
func (c *TelescopesClient) ListMine(ctx context.Context) ([]citra.Telescope, error) {
	return getList[citra.Telescope](ctx, c.httpClient, "my/telescopes", nil, "my telescopes")
}

// Create implements citra.TelescopesClient.Create.
func (c *TelescopesClient) Create(ctx context.Context, request *citra.TelescopeRequest) (*citra.Telescope, error) {
	return batchOne[citra.Telescope](ctx, c.httpClient, http.MethodPost, "telescopes", request, "creating telescope")
}

// Update implements citra.TelescopesClient.Update. request.ID selects the telescope.
func (c *TelescopesClient) Update(ctx context.Context, request *citra.TelescopeRequest) (*citra.Telescope, error) {
	if request == nil {
		return nil, citra.ErrRequestRequired
	}

	if request.ID == "" {
		return nil, citra.ErrIDRequired
	}

	return batchOne[citra.Telescope](ctx, c.httpClient, http.MethodPut, "telescopes", request, "updating telescope")
}

// Delete implements citra.TelescopesClient.Delete.
func (c *TelescopesClient) Delete(ctx context.Context, id string) error {
	return batchDelete(ctx, c.httpClient, "telescopes", id, "deleting telescope")
}

// ListTasks implements citra.TelescopesClient.ListTasks.
func (c *TelescopesClient) ListTasks(ctx context.Context, id string) ([]citra.Task, error) {
	path, err := resourcePath("telescopes", id, "tasks")
	if err != nil {
		return nil, err
	}

	return getList[citra.Task](ctx, c.httpClient, path, nil, "telescope tasks")
}

// ListTasksByStatus implements citra.TelescopesClient.ListTasksByStatus.
// The statuses are sent in the order given; an empty set sends no filter.
func (c *TelescopesClient) ListTasksByStatus(ctx context.Context, id string, statuses []citra.TaskStatus) ([]citra.Task, error) {
	path, err := resourcePath("telescopes", id, "tasks")
	if err != nil {
		return nil, err
	}

	params, err := encodeQuery(&citra.TaskStatusQuery{Statuses: statuses})
	if err != nil {
		return nil, err
	}

	return getList[citra.Task](ctx, c.httpClient, path, params, "telescope tasks")
}
