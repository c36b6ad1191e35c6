package client

import (
	"context"
	"net/http"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// AntennasClient implements citra.AntennasClient.
type AntennasClient struct {
	httpClient *internalhttp.Client
}

// NewAntennasClient creates a new antennas client.
func NewAntennasClient(httpClient *internalhttp.Client) *AntennasClient {
	return &AntennasClient{
		httpClient: httpClient,
	}
}

// Get implements citra.AntennasClient.Get.
func (c *AntennasClient) Get(ctx context.Context, id string) (*citra.Antenna, error) {
	path, err := resourcePath("antennas", id)
	if err != nil {
		return nil, err
	}

	return getOne[citra.Antenna](ctx, c.httpClient, path, nil, "antenna")
}

// List implements citra.AntennasClient.List.
func (c *AntennasClient) List(ctx context.Context) ([]citra.Antenna, error) {
	return getList[citra.Antenna](ctx, c.httpClient, "antennas", nil, "antennas")
}

// ListMine implements citra.AntennasClient.ListMine.
func (c *AntennasClient) ListMine(ctx context.Context) ([]citra.Antenna, error) {
	return getList[citra.Antenna](ctx, c.httpClient, "my/antennas", nil, "my antennas")
}

// Create implements citra.AntennasClient.Create.
func (c *AntennasClient) Create(ctx context.Context, request *citra.AntennaRequest) (*citra.Antenna, error) {
	return batchOne[citra.Antenna](ctx, c.httpClient, http.MethodPost, "antennas", request, "creating antenna")
}

// Update implements citra.AntennasClient.Update. request.ID selects the antenna.
func (c *AntennasClient) Update(ctx context.Context, request *citra.AntennaRequest) (*citra.Antenna, error) {
	if request == nil {
		return nil, citra.ErrRequestRequired
	}

	if request.ID == "" {
		return nil, citra.ErrIDRequired
	}

	return batchOne[citra.Antenna](ctx, c.httpClient, http.MethodPut, "antennas", request, "updating antenna")
}

// Delete implements citra.AntennasClient.Delete.
func (c *AntennasClient) Delete(ctx context.Context, id string) error {
	return batchDelete(ctx, c.httpClient, "antennas", id, "deleting antenna")
}

// ListTasks implements citra.AntennasClient.ListTasks.
func (c *AntennasClient) ListTasks(ctx context.Context, id string) ([]citra.Task, error) {
	path, err := resourcePath("antennas", id, "tasks")
	if err != nil {
		return nil, err
	}

	return getList[citra.Task](ctx, c.httpClient, path, nil, "antenna tasks")
}

// ListTasksByStatus implements citra.AntennasClient.ListTasksByStatus.
func (c *AntennasClient) ListTasksByStatus(ctx context.Context, id string, statuses []citra.TaskStatus) ([]citra.Task, error) {
	path, err := resourcePath("antennas", id, "tasks")
	if err != nil {
		return nil, err
	}

	params, err := encodeQuery(&citra.TaskStatusQuery{Statuses: statuses})
	if err != nil {
		return nil, err
	}

	return getList[citra.Task](ctx, c.httpClient, path, params, "antenna tasks")
}

// ListRFCaptures implements citra.AntennasClient.ListRFCaptures.
func (c *AntennasClient) ListRFCaptures(ctx context.Context, id string) ([]citra.RFCaptureSummary, error) {
	path, err := resourcePath("antennas", id, "rf-captures")
	if err != nil {
		return nil, err
	}

	return getList[citra.RFCaptureSummary](ctx, c.httpClient, path, nil, "antenna RF captures")
}
