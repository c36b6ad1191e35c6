package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citra-space/citra-go/internal/constants"
	"github.com/citra-space/citra-go/pkg/citra"
)

func TestParseTaskStatuses(t *testing.T) {
	t.Parallel()

	statuses, err := parseTaskStatuses([]string{"pending", "Scheduled", " CANCELED "})
	require.NoError(t, err)
	assert.Equal(t, []citra.TaskStatus{
		citra.TaskStatusPending,
		citra.TaskStatusScheduled,
		citra.TaskStatusCanceled,
	}, statuses)

	statuses, err = parseTaskStatuses(nil)
	require.NoError(t, err)
	assert.Empty(t, statuses)

	_, err = parseTaskStatuses([]string{"Pending", "Exploded"})
	require.ErrorIs(t, err, citra.ErrInvalidTaskStatus)
}

func TestBuildTaskUpdateRequest(t *testing.T) {
	t.Parallel()

	scheduled := time.Date(2025, 1, 1, 2, 0, 0, 0, time.UTC)
	current := &citra.Task{
		ID:             "task-1",
		Status:         citra.TaskStatusScheduled,
		Priority:       3,
		ScheduledStart: &scheduled,
	}

	t.Run("priority only keeps status", func(t *testing.T) {
		t.Parallel()

		request, err := buildTaskUpdateRequest(current, false, "", true, 7)
		require.NoError(t, err)
		assert.Equal(t, "task-1", request.ID)
		assert.Equal(t, citra.TaskStatusScheduled, request.Status)
		require.NotNil(t, request.Priority)
		assert.Equal(t, int32(7), *request.Priority)
		assert.Equal(t, &scheduled, request.ScheduledStart)
	})

	t.Run("status only leaves priority unset", func(t *testing.T) {
		t.Parallel()

		request, err := buildTaskUpdateRequest(current, true, "canceled", false, 0)
		require.NoError(t, err)
		assert.Equal(t, citra.TaskStatusCanceled, request.Status)
		assert.Nil(t, request.Priority)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		t.Parallel()

		_, err := buildTaskUpdateRequest(current, true, "Paused", false, 0)
		require.ErrorIs(t, err, citra.ErrInvalidTaskStatus)
	})

	t.Run("rejects negative priority", func(t *testing.T) {
		t.Parallel()

		_, err := buildTaskUpdateRequest(current, false, "", true, -1)
		require.ErrorIs(t, err, constants.ErrInvalidPriority)
	})
}

func TestBuildCreateTaskRequest(t *testing.T) {
	t.Parallel()

	request, err := buildCreateTaskRequest("tel-1", "", "sat-1", "2025-01-01T02:00:00Z", "2025-01-01T02:10:00Z")
	require.NoError(t, err)
	require.NotNil(t, request.TelescopeID)
	assert.Equal(t, "tel-1", *request.TelescopeID)
	assert.Nil(t, request.AntennaID)
	assert.Equal(t, "sat-1", request.SatelliteID)
	assert.Equal(t, 10*time.Minute, request.TaskStop.Sub(request.TaskStart))

	request, err = buildCreateTaskRequest("", "ant-1", "sat-1", "2025-01-01T02:00:00Z", "2025-01-01T02:10:00Z")
	require.NoError(t, err)
	assert.Nil(t, request.TelescopeID)
	require.NotNil(t, request.AntennaID)
	assert.Equal(t, "ant-1", *request.AntennaID)

	_, err = buildCreateTaskRequest("tel-1", "", "sat-1", "tomorrow", "2025-01-01T02:10:00Z")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --start")
}

func TestCollectFleetTasks(t *testing.T) {
	t.Parallel()

	early := time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	client := newTestClient(t, map[string]any{
		"/my/telescopes": []citra.Telescope{{ID: "tel-1"}, {ID: "tel-2"}},
		"/telescopes/tel-1/tasks": []citra.Task{
			{ID: "task-late", Status: citra.TaskStatusPending, TelescopeID: "tel-1", TaskStart: late},
		},
		"/telescopes/tel-2/tasks": []citra.Task{
			{ID: "task-early", Status: citra.TaskStatusScheduled, TelescopeID: "tel-2", TaskStart: early},
		},
		"/my/antennas": []citra.Antenna{{ID: "ant-1"}},
		"/antennas/ant-1/tasks": []citra.Task{
			{ID: "task-middle", Status: citra.TaskStatusPending, TaskStart: early.Add(30 * time.Minute)},
		},
	})

	tasks, err := collectFleetTasks(context.Background(), client, []citra.TaskStatus{citra.TaskStatusPending})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "task-early", tasks[0].ID)
	assert.Equal(t, "task-middle", tasks[1].ID)
	assert.Equal(t, "task-late", tasks[2].ID)
}

func TestCollectFleetTasks_AntennaFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, map[string]any{
		"/my/telescopes": []citra.Telescope{},
		"/my/antennas":   []citra.Antenna{{ID: "ant-missing"}},
	})

	_, err := collectFleetTasks(context.Background(), client, nil)
	require.Error(t, err)
	assert.True(t, citra.IsNotFound(err))
	assert.Contains(t, err.Error(), "antenna ant-missing")
}

func TestCollectFleetTasks_TelescopeFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, map[string]any{
		"/my/telescopes":          []citra.Telescope{{ID: "tel-1"}, {ID: "tel-missing"}},
		"/my/antennas":            []citra.Antenna{},
		"/telescopes/tel-1/tasks": []citra.Task{},
	})

	_, err := collectFleetTasks(context.Background(), client, nil)
	require.Error(t, err)
	assert.True(t, citra.IsNotFound(err))
	assert.Contains(t, err.Error(), "tel-missing")
}

func TestSortTasks(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tasks := []citra.Task{
		{ID: "c", TaskStart: base.Add(2 * time.Hour)},
		{ID: "a", TaskStart: base},
		{ID: "b", TaskStart: base.Add(time.Hour)},
	}

	sortTasks(tasks)

	assert.Equal(t, "a", tasks[0].ID)
	assert.Equal(t, "b", tasks[1].ID)
	assert.Equal(t, "c", tasks[2].ID)
}
