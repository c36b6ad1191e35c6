package client

import (
	"context"
	"net/http"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

const accessTokensPath = "auth/personal-access-tokens"

// AccessTokensClient implements citra.AccessTokensClient.
type AccessTokensClient struct {
	httpClient *internalhttp.Client
}

// NewAccessTokensClient creates a new personal access tokens client.
func NewAccessTokensClient(httpClient *internalhttp.Client) *AccessTokensClient {
	return &AccessTokensClient{
		httpClient: httpClient,
	}
}

// List implements citra.AccessTokensClient.List.
func (c *AccessTokensClient) List(ctx context.Context) ([]citra.PersonalAccessToken, error) {
	list, err := getOne[citra.PersonalAccessTokenListResponse](ctx, c.httpClient, accessTokensPath, nil, "personal access tokens")
	if err != nil {
		return nil, err
	}

	return list.Tokens, nil
}

// Create implements citra.AccessTokensClient.Create.
func (c *AccessTokensClient) Create(ctx context.Context, request *citra.CreatePersonalAccessTokenRequest) (*citra.CreatePersonalAccessTokenResponse, error) {
	return send[citra.CreatePersonalAccessTokenResponse](ctx, c.httpClient, http.MethodPost, accessTokensPath, request, "creating personal access token")
}

// Revoke implements citra.AccessTokensClient.Revoke.
func (c *AccessTokensClient) Revoke(ctx context.Context, id string) error {
	path, err := resourcePath("auth", "personal-access-tokens", id)
	if err != nil {
		return err
	}

	return sendNoContent(ctx, c.httpClient, http.MethodDelete, path, nil, "revoking personal access token")
}
