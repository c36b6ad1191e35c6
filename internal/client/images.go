package client

import (
	"context"
	"net/http"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// ImagesClient implements citra.ImagesClient.
type ImagesClient struct {
	httpClient *internalhttp.Client
}

// NewImagesClient creates a new images client.
func NewImagesClient(httpClient *internalhttp.Client) *ImagesClient {
	return &ImagesClient{
		httpClient: httpClient,
	}
}

// Upload implements citra.ImagesClient.Upload. The returned presigned URL
// receives the image bytes directly; this client does not perform that PUT.
func (c *ImagesClient) Upload(ctx context.Context, request *citra.ImageUploadRequest) (*citra.ImageUploadResponse, error) {
	return send[citra.ImageUploadResponse](ctx, c.httpClient, http.MethodPost, "images/upload", request, "requesting image upload")
}

// Get implements citra.ImagesClient.Get.
func (c *ImagesClient) Get(ctx context.Context, uploadID string) (*citra.ImageStatus, error) {
	path, err := resourcePath("images", uploadID)
	if err != nil {
		return nil, err
	}

	return getOne[citra.ImageStatus](ctx, c.httpClient, path, nil, "image status")
}

// ListMine implements citra.ImagesClient.ListMine.
func (c *ImagesClient) ListMine(ctx context.Context, query *citra.ImageListQuery) ([]citra.ImageStatus, error) {
	params, err := encodeQuery(query)
	if err != nil {
		return nil, err
	}

	return getList[citra.ImageStatus](ctx, c.httpClient, "images", params, "images")
}

// Data implements citra.ImagesClient.Data.
func (c *ImagesClient) Data(ctx context.Context, uploadID string, request *citra.ImageDataRequest) (*citra.ImageData, error) {
	path, err := resourcePath("images", uploadID, "data")
	if err != nil {
		return nil, err
	}

	params, err := encodeQuery(request)
	if err != nil {
		return nil, err
	}

	return getOne[citra.ImageData](ctx, c.httpClient, path, params, "image data")
}

// Delete implements citra.ImagesClient.Delete.
func (c *ImagesClient) Delete(ctx context.Context, uploadID string) error {
	path, err := resourcePath("images", uploadID)
	if err != nil {
		return err
	}

	return sendNoContent(ctx, c.httpClient, http.MethodDelete, path, nil, "deleting image")
}
