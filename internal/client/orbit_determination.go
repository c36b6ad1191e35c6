package client

import (
	"context"
	"net/http"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// OrbitDeterminationClient implements citra.OrbitDeterminationClient.
type OrbitDeterminationClient struct {
	httpClient *internalhttp.Client
}

// NewOrbitDeterminationClient creates a new orbit determination client.
func NewOrbitDeterminationClient(httpClient *internalhttp.Client) *OrbitDeterminationClient {
	return &OrbitDeterminationClient{
		httpClient: httpClient,
	}
}

// Solve implements citra.OrbitDeterminationClient.Solve.
func (c *OrbitDeterminationClient) Solve(ctx context.Context, request *citra.ODRequest) (*citra.ODResult, error) {
	return send[citra.ODResult](ctx, c.httpClient, http.MethodPost, "orbit-determination", request, "solving orbit determination")
}
