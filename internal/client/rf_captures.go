package client

import (
	"context"
	"net/http"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// RFCapturesClient implements citra.RFCapturesClient.
type RFCapturesClient struct {
	httpClient *internalhttp.Client
}

// NewRFCapturesClient creates a new RF captures client.
func NewRFCapturesClient(httpClient *internalhttp.Client) *RFCapturesClient {
	return &RFCapturesClient{
		httpClient: httpClient,
	}
}

// Create implements citra.RFCapturesClient.Create.
func (c *RFCapturesClient) Create(ctx context.Context, request *citra.CreateRFCaptureRequest) (*citra.RFCapture, error) {
	return send[citra.RFCapture](ctx, c.httpClient, http.MethodPost, "rf-captures", request, "creating RF capture")
}

// Get implements citra.RFCapturesClient.Get.
func (c *RFCapturesClient) Get(ctx context.Context, id string) (*citra.RFCapture, error) {
	path, err := resourcePath("rf-captures", id)
	if err != nil {
		return nil, err
	}

	return getOne[citra.RFCapture](ctx, c.httpClient, path, nil, "RF capture")
}

// Delete implements citra.RFCapturesClient.Delete.
func (c *RFCapturesClient) Delete(ctx context.Context, id string) error {
	path, err := resourcePath("rf-captures", id)
	if err != nil {
		return err
	}

	return sendNoContent(ctx, c.httpClient, http.MethodDelete, path, nil, "deleting RF capture")
}
