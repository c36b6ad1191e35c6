package client

import (
	"context"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// WeatherClient implements citra.WeatherClient.
type WeatherClient struct {
	httpClient *internalhttp.Client
}

// NewWeatherClient creates a new weather client.
func NewWeatherClient(httpClient *internalhttp.Client) *WeatherClient {
	return &WeatherClient{
		httpClient: httpClient,
	}
}

// Get implements citra.WeatherClient.Get.
func (c *WeatherClient) Get(ctx context.Context, query *citra.WeatherQuery) (*citra.WeatherResponse, error) {
	if query == nil {
		return nil, citra.ErrRequestRequired
	}

	params, err := encodeQuery(query)
	if err != nil {
		return nil, err
	}

	return getOne[citra.WeatherResponse](ctx, c.httpClient, "weather", params, "weather")
}
