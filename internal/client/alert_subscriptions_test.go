package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citra-space/citra-go/pkg/citra"
)

func testAlertSubscription(id string) *citra.AlertSubscription {
	enabled := true

	return &citra.AlertSubscription{
		ID:          id,
		AlertType:   StringPtr("closeapproach"),
		TargetType:  StringPtr("satellite"),
		SatelliteID: StringPtr("sat-1"),
		Enabled:     &enabled,
	}
}

func TestAlertSubscriptionsClient_List(t *testing.T) {
	t.Parallel()

	RunListTests(t, []TestListOperation{
		{
			Name:         "all subscriptions",
			ExpectedPath: "/alert-subscriptions",
			StatusCode:   http.StatusOK,
			Response:     []citra.AlertSubscription{*testAlertSubscription("alert-1")},
			WantLen:      1,
		},
	}, func(c *Client) func(context.Context) ([]citra.AlertSubscription, error) {
		return c.AlertSubscriptions().List
	})

	RunGetTests(t, []TestGetOperation[citra.AlertSubscription]{
		{
			Name:         "get subscription",
			ID:           "alert-1",
			ExpectedPath: "/alert-subscriptions/alert-1",
			StatusCode:   http.StatusOK,
			Response:     testAlertSubscription("alert-1"),
		},
	}, func(c *Client) func(context.Context, string) (*citra.AlertSubscription, error) {
		return c.AlertSubscriptions().Get
	})
}

func TestAlertSubscriptionsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/alert-subscriptions", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		var body map[string]interface{}

		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "closeapproach", body["alertType"])
		assert.Equal(t, "satellite", body["targetType"])
		assert.InDelta(t, 5.0, body["thresholdValue"], 1e-9)

		writeTestResponse(writer, http.StatusCreated, testAlertSubscription("alert-new"))
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	created, err := client.AlertSubscriptions().Create(context.Background(), &citra.CreateAlertSubscriptionRequest{
		AlertType:      citra.AlertTypeCloseApproach,
		TargetType:     citra.TargetTypeSatellite,
		SatelliteID:    StringPtr("sat-1"),
		ThresholdValue: Float64Ptr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "alert-new", created.ID)
}

func TestAlertSubscriptionsClient_CreateRejectsUnknownType(t *testing.T) {
	t.Parallel()

	client := NewTestClient(t, "http://127.0.0.1:0")

	_, err := client.AlertSubscriptions().Create(context.Background(), &citra.CreateAlertSubscriptionRequest{
		AlertType:  citra.AlertType("eclipse"),
		TargetType: citra.TargetTypeSatellite,
	})
	require.ErrorIs(t, err, citra.ErrInvalidAlertType)
}

func TestAlertSubscriptionsClient_UpdateDelete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/alert-subscriptions/alert-1", request.URL.Path)

		switch request.Method {
		case http.MethodPatch:
			var body map[string]interface{}

			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, map[string]interface{}{"enabled": false}, body)

			subscription := testAlertSubscription("alert-1")
			disabled := false
			subscription.Enabled = &disabled
			writeTestResponse(writer, http.StatusOK, subscription)
		case http.MethodDelete:
			writer.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", request.Method)
		}
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)
	disabled := false

	updated, err := client.AlertSubscriptions().Update(context.Background(), "alert-1", &citra.UpdateAlertSubscriptionRequest{
		Enabled: &disabled,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Enabled)
	assert.False(t, *updated.Enabled)

	require.NoError(t, client.AlertSubscriptions().Delete(context.Background(), "alert-1"))
}
