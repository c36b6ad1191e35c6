package client

import (
	"context"
	"net/http"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// AlertSubscriptionsClient implements citra.AlertSubscriptionsClient.
type AlertSubscriptionsClient struct {
	httpClient *internalhttp.Client
}

// NewAlertSubscriptionsClient creates a new alert subscriptions client.
func NewAlertSubscriptionsClient(httpClient *internalhttp.Client) *AlertSubscriptionsClient {
	return &AlertSubscriptionsClient{
		httpClient: httpClient,
	}
}

// List implements citra.AlertSubscriptionsClient.List.
func (c *AlertSubscriptionsClient) List(ctx context.Context) ([]citra.AlertSubscription, error) {
	return getList[citra.AlertSubscription](ctx, c.httpClient, "alert-subscriptions", nil, "alert subscriptions")
}

// Get implements citra.AlertSubscriptionsClient.Get.
func (c *AlertSubscriptionsClient) Get(ctx context.Context, id string) (*citra.AlertSubscription, error) {
	path, err := resourcePath("alert-subscriptions", id)
	if err != nil {
		return nil, err
	}

	return getOne[citra.AlertSubscription](ctx, c.httpClient, path, nil, "alert subscription")
}

// Create implements citra.AlertSubscriptionsClient.Create.
func (c *AlertSubscriptionsClient) Create(ctx context.Context, request *citra.CreateAlertSubscriptionRequest) (*citra.AlertSubscription, error) {
	return send[citra.AlertSubscription](ctx, c.httpClient, http.MethodPost, "alert-subscriptions", request, "creating alert subscription")
}

// Update implements citra.AlertSubscriptionsClient.Update.
func (c *AlertSubscriptionsClient) Update(ctx context.Context, id string, request *citra.UpdateAlertSubscriptionRequest) (*citra.AlertSubscription, error) {
	path, err := resourcePath("alert-subscriptions", id)
	if err != nil {
		return nil, err
	}

	return send[citra.AlertSubscription](ctx, c.httpClient, http.MethodPatch, path, request, "updating alert subscription")
}

// Delete implements citra.AlertSubscriptionsClient.Delete.
func (c *AlertSubscriptionsClient) Delete(ctx context.Context, id string) error {
	path, err := resourcePath("alert-subscriptions", id)
	if err != nil {
		return err
	}

	return sendNoContent(ctx, c.httpClient, http.MethodDelete, path, nil, "deleting alert subscription")
}
