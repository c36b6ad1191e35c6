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

var testAccessStart = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func TestAccessClient_GroundStation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/access/ground-station", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		var body map[string]interface{}

		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "gs-1", body["groundStationId"])
		assert.Equal(t, "2025-03-01T00:00:00Z", body["start"])
		assert.InDelta(t, 10.0, body["minElevation"], 1e-9)
		assert.NotContains(t, body, "minFrequencyMhz")

		writeTestResponse(writer, http.StatusOK, []citra.HorizonAccess{
			{
				SatelliteID:     "sat-1",
				GroundStationID: "gs-1",
				Start:           citra.TrackingParameters{Epoch: testAccessStart.Add(time.Hour), AzimuthDeg: 310, ElevationDeg: 10},
				End:             citra.TrackingParameters{Epoch: testAccessStart.Add(time.Hour + 8*time.Minute), AzimuthDeg: 120, ElevationDeg: 10},
				DurationMinutes: 8,
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	windows, err := client.Access().GroundStation(context.Background(), &citra.SatelliteAccessToGroundStationRequest{
		GroundStationID:    "gs-1",
		Start:              testAccessStart,
		End:                testAccessStart.Add(24 * time.Hour),
		MinElevationDeg:    10,
		MinDurationMinutes: 2,
	})
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.InDelta(t, 8.0, windows[0].DurationMinutes, 1e-9)
}

func TestAccessClient_FOV(t *testing.T) {
	t.Parallel()

	t.Run("sends frame", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/access/fov", request.URL.Path)

			var body map[string]interface{}

			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "J2000", body["sensorFrame"])

			writeTestResponse(writer, http.StatusOK, []citra.FOVAccessResponse{
				{SatelliteID: "sat-1", RightAscensionDeg: 120.1, DeclinationDeg: 10.1},
				{SatelliteID: "sat-2", RightAscensionDeg: 119.9, DeclinationDeg: 9.8},
			})
		}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		targets, err := client.Access().FOV(context.Background(), &citra.FOVAccessRequest{
			Epoch:             testAccessStart,
			RightAscensionDeg: 120,
			DeclinationDeg:    10,
			FieldOfViewDeg:    1,
			SensorFrame:       citra.SensorFrameJ2000,
		})
		require.NoError(t, err)
		assert.Len(t, targets, 2)
	})

	t.Run("missing frame is rejected", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, "http://127.0.0.1:0")

		_, err := client.Access().FOV(context.Background(), &citra.FOVAccessRequest{Epoch: testAccessStart})
		require.ErrorIs(t, err, citra.ErrInvalidSensorFrame)
	})
}

func TestAccessClient_Geo(t *testing.T) {
	t.Parallel()

	RunListTests(t, []TestListOperation{
		{
			Name:          "longitude band",
			ExpectedPath:  "/access/geo",
			ExpectedQuery: url.Values{"minLongitude": {"-80"}, "maxLongitude": {"-70"}},
			StatusCode:    http.StatusOK,
			Response:      []citra.GeoAccess{{SatelliteID: "sat-9", LongitudeDeg: -75.2, InclinationDeg: 0.05}},
			WantLen:       1,
		},
	}, func(c *Client) func(context.Context) ([]citra.GeoAccess, error) {
		return func(ctx context.Context) ([]citra.GeoAccess, error) {
			return c.Access().Geo(ctx, &citra.GeoAccessQuery{
				MinLongitudeDeg: Float64Ptr(-80),
				MaxLongitudeDeg: Float64Ptr(-70),
			})
		}
	})
}

func TestOrbitDeterminationClient_Solve(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/orbit-determination", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		var body citra.ODRequest

		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Len(t, body.Observations, 3)

		writeTestResponse(writer, http.StatusOK, citra.ODResult{
			Epoch:           testAccessStart,
			SemiMajorAxisKm: 6790.1,
			Eccentricity:    0.0004,
			InclinationDeg:  51.6,
			PositionECIKm:   [3]float64{6790.1, 0, 0},
			VelocityECIKmS:  [3]float64{0, 7.66, 0},
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	observations := make([]citra.ODObservation, 0, 3)
	for i := range 3 {
		observations = append(observations, citra.ODObservation{
			Epoch:             testAccessStart.Add(time.Duration(i) * time.Minute),
			RightAscensionDeg: 120 + float64(i),
			DeclinationDeg:    10,
		})
	}

	result, err := client.OrbitDetermination().Solve(context.Background(), &citra.ODRequest{Observations: observations})
	require.NoError(t, err)
	assert.InDelta(t, 6790.1, result.SemiMajorAxisKm, 1e-9)
	assert.InDelta(t, 7.66, result.VelocityECIKmS[1], 1e-9)
}
