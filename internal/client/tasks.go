package client

import (
	"context"
	"net/http"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// TasksClient implements citra.TasksClient.
type TasksClient struct {
	httpClient *internalhttp.Client
}

// NewTasksClient creates a new tasks client.
func NewTasksClient(httpClient *internalhttp.Client) *TasksClient {
	return &TasksClient{
		httpClient: httpClient,
	}
}

// Get implements citra.TasksClient.Get.
func (c *TasksClient) Get(ctx context.Context, id string) (*citra.Task, error) {
	path, err := resourcePath("tasks", id)
	if err != nil {
		return nil, err
	}

	return getOne[citra.Task](ctx, c.httpClient, path, nil, "task")
}

// Create implements citra.TasksClient.Create.
func (c *TasksClient) Create(ctx context.Context, request *citra.CreateTaskRequest) (*citra.Task, error) {
	return send[citra.Task](ctx, c.httpClient, http.MethodPost, "tasks", request, "creating task")
}

// Update implements citra.TasksClient.Update. request.ID selects the task.
func (c *TasksClient) Update(ctx context.Context, request *citra.TaskUpdateRequest) (*citra.Task, error) {
	if request == nil {
		return nil, citra.ErrRequestRequired
	}

	path, err := resourcePath("tasks", request.ID)
	if err != nil {
		return nil, err
	}

	return send[citra.Task](ctx, c.httpClient, http.MethodPut, path, request, "updating task")
}

// ListMine implements citra.TasksClient.ListMine.
func (c *TasksClient) ListMine(ctx context.Context) ([]citra.Task, error) {
	return getList[citra.Task](ctx, c.httpClient, "my/tasks", nil, "my tasks")
}
