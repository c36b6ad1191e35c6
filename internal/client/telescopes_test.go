package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citra-space/citra-go/pkg/citra"
)

func testTelescope(id string) *citra.Telescope {
	return &citra.Telescope{
		ID:                  id,
		Name:                "Backyard RC8",
		UserID:              "user-1",
		CreationEpoch:       time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		AngularNoiseArcsec:  2.0,
		FieldOfViewDeg:      1.5,
		LimitingMagnitude:   14.5,
		MinElevationDeg:     15,
		MaxSlewRateDegS:     5,
		HomeAzimuthDeg:      0,
		HomeElevationDeg:    90,
		AutomatedScheduling: true,
	}
}

func testTask(id string, status citra.TaskStatus) citra.Task {
	start := time.Date(2025, 3, 2, 1, 0, 0, 0, time.UTC)

	return citra.Task{
		ID:              id,
		Type:            "Track",
		Status:          status,
		CreationEpoch:   start.Add(-time.Hour),
		UpdateEpoch:     start.Add(-time.Hour),
		TaskStart:       start,
		TaskStop:        start.Add(time.Hour),
		SatelliteID:     "sat-25544",
		TelescopeID:     "tel-1",
		GroundStationID: "gs-1",
		Priority:        5,
	}
}

func TestTelescopesClient_Get(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[citra.Telescope]{
		{
			Name:         "successful get",
			ID:           "tel-1",
			ExpectedPath: "/telescopes/tel-1",
			StatusCode:   http.StatusOK,
			Response:     testTelescope("tel-1"),
		},
		{
			Name:         "telescope not found",
			ID:           "missing",
			ExpectedPath: "/telescopes/missing",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "API error (404)",
		},
		{
			Name:       "empty id",
			ID:         "",
			WantErr:    true,
			ErrMessage: "resource id is required",
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*citra.Telescope, error) {
		return c.Telescopes().Get
	})
}

func TestTelescopesClient_List(t *testing.T) {
	t.Parallel()

	RunListTests(t, []TestListOperation{
		{
			Name:         "all telescopes",
			ExpectedPath: "/telescopes",
			StatusCode:   http.StatusOK,
			Response:     []citra.Telescope{*testTelescope("tel-1"), *testTelescope("tel-2")},
			WantLen:      2,
		},
		{
			Name:         "empty list",
			ExpectedPath: "/telescopes",
			StatusCode:   http.StatusOK,
			Response:     []citra.Telescope{},
			WantLen:      0,
		},
		{
			Name:         "unauthorized",
			ExpectedPath: "/telescopes",
			StatusCode:   http.StatusUnauthorized,
			WantErr:      true,
			ErrMessage:   "listing telescopes",
		},
	}, func(c *Client) func(context.Context) ([]citra.Telescope, error) {
		return c.Telescopes().List
	})

	RunListTests(t, []TestListOperation{
		{
			Name:         "my telescopes",
			ExpectedPath: "/my/telescopes",
			StatusCode:   http.StatusOK,
			Response:     []citra.Telescope{*testTelescope("tel-1")},
			WantLen:      1,
		},
	}, func(c *Client) func(context.Context) ([]citra.Telescope, error) {
		return c.Telescopes().ListMine
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestTelescopesClient_CreateUpdate(t *testing.T) {
	t.Parallel()

	request := &citra.TelescopeRequest{
		Name:              "Backyard RC8",
		FieldOfViewDeg:    1.5,
		LimitingMagnitude: 14.5,
	}

	RunBatchCreateTests(t, []TestBatchCreateOperation[citra.TelescopeRequest, citra.Telescope]{
		{
			Name:           "successful create",
			Request:        request,
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/telescopes",
			StatusCode:     http.StatusOK,
			Response:       []citra.Telescope{*testTelescope("tel-new")},
		},
		{
			Name:           "empty batch response",
			Request:        request,
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/telescopes",
			StatusCode:     http.StatusOK,
			Response:       []citra.Telescope{},
			WantErr:        true,
			ErrIs:          citra.ErrEmptyBatchResponse,
		},
		{
			Name:           "validation failure",
			Request:        request,
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/telescopes",
			StatusCode:     http.StatusUnprocessableEntity,
			WantErr:        true,
			ErrMessage:     "creating telescope: API error (422)",
		},
	}, func(c *Client) func(context.Context, *citra.TelescopeRequest) (*citra.Telescope, error) {
		return c.Telescopes().Create
	})

	update := *request
	update.ID = "tel-1"

	RunBatchCreateTests(t, []TestBatchCreateOperation[citra.TelescopeRequest, citra.Telescope]{
		{
			Name:           "successful update",
			Request:        &update,
			ExpectedMethod: http.MethodPut,
			ExpectedPath:   "/telescopes",
			StatusCode:     http.StatusOK,
			Response:       []citra.Telescope{*testTelescope("tel-1")},
		},
	}, func(c *Client) func(context.Context, *citra.TelescopeRequest) (*citra.Telescope, error) {
		return c.Telescopes().Update
	})

	t.Run("update without id", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, "http://127.0.0.1:0")
		_, err := client.Telescopes().Update(context.Background(), request)
		require.ErrorIs(t, err, citra.ErrIDRequired)
	})
}

func TestTelescopesClient_Delete(t *testing.T) {
	t.Parallel()

	RunDeleteTests(t, []TestDeleteOperation{
		{
			Name:         "batch delete",
			ID:           "tel-1",
			ExpectedPath: "/telescopes",
			ExpectedBody: `["tel-1"]`,
			StatusCode:   http.StatusNoContent,
		},
		{
			Name:         "forbidden",
			ID:           "tel-2",
			ExpectedPath: "/telescopes",
			ExpectedBody: `["tel-2"]`,
			StatusCode:   http.StatusForbidden,
			WantErr:      true,
			ErrMessage:   "deleting telescope",
		},
		{
			Name:    "empty id",
			ID:      "",
			WantErr: true,
			ErrIs:   citra.ErrIDRequired,
		},
	}, func(c *Client) func(context.Context, string) error {
		return c.Telescopes().Delete
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestTelescopesClient_ListTasksByStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		statuses  []citra.TaskStatus
		wantQuery string
	}{
		{
			name:      "statuses repeat in caller order",
			statuses:  []citra.TaskStatus{citra.TaskStatusScheduled, citra.TaskStatusPending},
			wantQuery: "statuses=Scheduled&statuses=Pending",
		},
		{
			name:      "single status",
			statuses:  []citra.TaskStatus{citra.TaskStatusFailed},
			wantQuery: "statuses=Failed",
		},
		{
			name:      "empty set sends no parameters",
			statuses:  nil,
			wantQuery: "",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, "/telescopes/tel-1/tasks", request.URL.Path)
				assert.Equal(t, testCase.wantQuery, request.URL.RawQuery)

				writer.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(writer).Encode([]citra.Task{testTask("task-1", citra.TaskStatusScheduled)})
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			tasks, err := client.Telescopes().ListTasksByStatus(context.Background(), "tel-1", testCase.statuses)
			require.NoError(t, err)
			require.Len(t, tasks, 1)
			assert.Equal(t, citra.TaskStatusScheduled, tasks[0].Status)
		})
	}

	RunListTests(t, []TestListOperation{
		{
			Name:          "all tasks",
			ExpectedPath:  "/telescopes/tel-1/tasks",
			ExpectedQuery: url.Values{},
			StatusCode:    http.StatusOK,
			Response:      []citra.Task{testTask("task-1", citra.TaskStatusPending), testTask("task-2", citra.TaskStatusSucceeded)},
			WantLen:       2,
		},
	}, func(c *Client) func(context.Context) ([]citra.Task, error) {
		return func(ctx context.Context) ([]citra.Task, error) {
			return c.Telescopes().ListTasks(ctx, "tel-1")
		}
	})
}

func TestTelescopesClient_UnknownTaskStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`[{"id":"task-1","status":"Exploded"}]`))
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	_, err := client.Telescopes().ListTasks(context.Background(), "tel-1")
	require.Error(t, err)
	require.ErrorIs(t, err, citra.ErrInvalidTaskStatus)
	assert.True(t, citra.IsTransportError(err))
}
