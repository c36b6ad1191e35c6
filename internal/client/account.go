package client

import (
	"context"
	"net/http"

	internalhttp "github.com/citra-space/citra-go/internal/http"
	"github.com/citra-space/citra-go/pkg/citra"
)

// AccountClient implements citra.AccountClient.
type AccountClient struct {
	httpClient *internalhttp.Client
}

// NewAccountClient creates a new account client.
func NewAccountClient(httpClient *internalhttp.Client) *AccountClient {
	return &AccountClient{
		httpClient: httpClient,
	}
}

// Get implements citra.AccountClient.Get.
func (c *AccountClient) Get(ctx context.Context) (*citra.UserAccount, error) {
	return getOne[citra.UserAccount](ctx, c.httpClient, "my/account", nil, "account")
}

// Preferences implements citra.AccountClient.Preferences.
func (c *AccountClient) Preferences(ctx context.Context) (*citra.UserPreferences, error) {
	return getOne[citra.UserPreferences](ctx, c.httpClient, "my/preferences", nil, "preferences")
}

// UpdatePreferences implements citra.AccountClient.UpdatePreferences.
func (c *AccountClient) UpdatePreferences(ctx context.Context, request *citra.UpdatePreferencesRequest) (*citra.UserPreferences, error) {
	return send[citra.UserPreferences](ctx, c.httpClient, http.MethodPatch, "my/preferences", request, "updating preferences")
}

// GroupMembers implements citra.AccountClient.GroupMembers.
func (c *AccountClient) GroupMembers(ctx context.Context) ([]citra.GroupMember, error) {
	return getList[citra.GroupMember](ctx, c.httpClient, "my/group/members", nil, "group members")
}

// AddGroupMember implements citra.AccountClient.AddGroupMember.
func (c *AccountClient) AddGroupMember(ctx context.Context, request *citra.AddGroupMemberRequest) (*citra.GroupMember, error) {
	return send[citra.GroupMember](ctx, c.httpClient, http.MethodPost, "my/group/members", request, "adding group member")
}

// RemoveGroupMember implements citra.AccountClient.RemoveGroupMember.
func (c *AccountClient) RemoveGroupMember(ctx context.Context, memberID string) error {
	path, err := resourcePath("my", "group", "members", memberID)
	if err != nil {
		return err
	}

	return sendNoContent(ctx, c.httpClient, http.MethodDelete, path, nil, "removing group member")
}
