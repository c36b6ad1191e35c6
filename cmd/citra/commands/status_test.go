package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citra-space/citra-go/pkg/citra"
)

func TestCollectStatus(t *testing.T) {
	t.Parallel()

	username := "observer"

	client := newTestClient(t, map[string]any{
		"/my/account": citra.UserAccount{ID: "user-1", Username: &username},
		"/satellites/overview": citra.SatelliteOverview{
			ActiveSatelliteCount:  9000,
			DecayedSatelliteCount: 25000,
		},
		"/my/telescopes":      []citra.Telescope{{ID: "tel-1"}, {ID: "tel-2"}},
		"/my/antennas":        []citra.Antenna{{ID: "ant-1"}},
		"/my/ground-stations": []citra.GroundStation{},
		"/my/tasks": []citra.Task{
			{ID: "task-1", Status: citra.TaskStatusPending},
			{ID: "task-2", Status: citra.TaskStatusScheduled},
			{ID: "task-3", Status: citra.TaskStatusSucceeded},
		},
	})

	report, err := collectStatus(context.Background(), client)
	require.NoError(t, err)

	require.NotNil(t, report.Account)
	assert.Equal(t, "user-1", report.Account.ID)
	require.NotNil(t, report.Overview)
	assert.Equal(t, int64(9000), report.Overview.ActiveSatelliteCount)
	assert.Equal(t, 2, report.Telescopes)
	assert.Equal(t, 1, report.Antennas)
	assert.Equal(t, 0, report.GroundStations)
	assert.Equal(t, 2, report.PendingTasks)
}

func TestCollectStatus_Failure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, map[string]any{
		"/satellites/overview": citra.SatelliteOverview{},
	})

	_, err := collectStatus(context.Background(), client)
	require.Error(t, err)
	assert.True(t, citra.IsNotFound(err))
}
