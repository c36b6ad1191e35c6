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

func testImageStatus(uploadID string) *citra.ImageStatus {
	return &citra.ImageStatus{
		UploadID:      uploadID,
		Filename:      "m42.fits",
		TelescopeID:   "tel-1",
		UserID:        "user-1",
		Status:        "processed",
		Filesize:      8_388_608,
		CreationEpoch: time.Date(2025, 3, 1, 5, 0, 0, 0, time.UTC),
	}
}

func TestImagesClient_Upload(t *testing.T) {
	t.Parallel()

	expires := time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/images/upload", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		var body citra.ImageUploadRequest

		assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "m42.fits", body.Filename)
		assert.Equal(t, int64(8_388_608), body.Filesize)

		writeTestResponse(writer, http.StatusOK, citra.ImageUploadResponse{
			UploadID:     "up-1",
			PresignedURL: "https://uploads.example.com/up-1",
			ExpiresAt:    expires,
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	upload, err := client.Images().Upload(context.Background(), &citra.ImageUploadRequest{
		Filename:    "m42.fits",
		TelescopeID: "tel-1",
		Filesize:    8_388_608,
	})
	require.NoError(t, err)
	assert.Equal(t, "up-1", upload.UploadID)
	assert.True(t, expires.Equal(upload.ExpiresAt))
}

func TestImagesClient_StatusAndList(t *testing.T) {
	t.Parallel()

	RunGetTests(t, []TestGetOperation[citra.ImageStatus]{
		{
			Name:         "image status",
			ID:           "up-1",
			ExpectedPath: "/images/up-1",
			StatusCode:   http.StatusOK,
			Response:     testImageStatus("up-1"),
		},
	}, func(c *Client) func(context.Context, string) (*citra.ImageStatus, error) {
		return c.Images().Get
	})

	limit := int64(10)

	RunListTests(t, []TestListOperation{
		{
			Name:          "my processed images",
			ExpectedPath:  "/images",
			ExpectedQuery: url.Values{"limit": {"10"}, "status": {"processed"}},
			StatusCode:    http.StatusOK,
			Response:      []citra.ImageStatus{*testImageStatus("up-1"), *testImageStatus("up-2")},
			WantLen:       2,
		},
	}, func(c *Client) func(context.Context) ([]citra.ImageStatus, error) {
		return func(ctx context.Context) ([]citra.ImageStatus, error) {
			return c.Images().ListMine(ctx, &citra.ImageListQuery{Limit: &limit, Status: StringPtr("processed")})
		}
	})
}

func TestImagesClient_Data(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/images/up-1/data", request.URL.Path)
		assert.Equal(t, url.Values{"binning": {"2"}}, request.URL.Query())

		writeTestResponse(writer, http.StatusOK, citra.ImageData{
			UploadID: "up-1",
			Width:    2,
			Height:   1,
			Data:     [][]float64{{0.1, 0.9}},
			MaxValue: 0.9,
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)
	binning := int32(2)

	data, err := client.Images().Data(context.Background(), "up-1", &citra.ImageDataRequest{Binning: &binning})
	require.NoError(t, err)
	assert.Equal(t, int32(2), data.Width)
	assert.Equal(t, [][]float64{{0.1, 0.9}}, data.Data)
}

func TestImagesClient_Delete(t *testing.T) {
	t.Parallel()

	RunDeleteTests(t, []TestDeleteOperation{
		{
			Name:         "delete image",
			ID:           "up-1",
			ExpectedPath: "/images/up-1",
			StatusCode:   http.StatusNoContent,
		},
	}, func(c *Client) func(context.Context, string) error {
		return c.Images().Delete
	})
}

func TestFiltersClient(t *testing.T) {
	t.Parallel()

	filters := []citra.Filter{
		{Name: "V", Category: StringPtr("Johnson"), CenterWavelengthNm: Float64Ptr(551)},
		{Name: "R", Category: StringPtr("Johnson"), CenterWavelengthNm: Float64Ptr(658)},
	}

	RunListTests(t, []TestListOperation{
		{
			Name:         "list filters",
			ExpectedPath: "/filters",
			StatusCode:   http.StatusOK,
			Response:     filters,
			WantLen:      2,
		},
	}, func(c *Client) func(context.Context) ([]citra.Filter, error) {
		return c.Filters().List
	})

	t.Run("expand unwraps filters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/filters/expand", request.URL.Path)
			assert.Equal(t, http.MethodPost, request.Method)

			var body citra.FilterExpandRequest

			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, []string{"V", "R"}, body.FilterNames)

			writeTestResponse(writer, http.StatusOK, citra.FilterExpandResponse{Filters: filters})
		}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		expanded, err := client.Filters().Expand(context.Background(), []string{"V", "R"})
		require.NoError(t, err)
		assert.Equal(t, filters, expanded)
	})
}
