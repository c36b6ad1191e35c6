package client

import (
	"context"
	"net/http"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// CollectionRequestsClient implements citra.CollectionRequestsClient.
type CollectionRequestsClient struct {
	httpClient *internalhttp.Client
}

// NewCollectionRequestsClient creates a new collection requests client.
func NewCollectionRequestsClient(httpClient *internalhttp.Client) *CollectionRequestsClient {
	return &CollectionRequestsClient{
		httpClient: httpClient,
	}
}

// List implements citra.CollectionRequestsClient.List.
func (c *CollectionRequestsClient) List(ctx context.Context) ([]citra.CollectionRequest, error) {
	return getList[citra.CollectionRequest](ctx, c.httpClient, "collection-requests", nil, "collection requests")
}

// Get implements citra.CollectionRequestsClient.Get.
func (c *CollectionRequestsClient) Get(ctx context.Context, id string) (*citra.CollectionRequest, error) {
	path, err := resourcePath("collection-requests", id)
	if err != nil {
		return nil, err
	}

	return getOne[citra.CollectionRequest](ctx, c.httpClient, path, nil, "collection request")
}

// Create implements citra.CollectionRequestsClient.Create.
func (c *CollectionRequestsClient) Create(ctx context.Context, request *citra.CreateCollectionRequest) (*citra.CollectionRequest, error) {
	return send[citra.CollectionRequest](ctx, c.httpClient, http.MethodPost, "collection-requests", request, "creating collection request")
}

// Delete implements citra.CollectionRequestsClient.Delete.
func (c *CollectionRequestsClient) Delete(ctx context.Context, id string) error {
	path, err := resourcePath("collection-requests", id)
	if err != nil {
		return err
	}

	return sendNoContent(ctx, c.httpClient, http.MethodDelete, path, nil, "deleting collection request")
}
