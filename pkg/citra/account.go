package citra

import "time"

// UserAccount is the authenticated user's profile.
type UserAccount struct {
	ID             string     `json:"id"                       yaml:"id"`
	Email          *string    `json:"email,omitempty"          yaml:"email,omitempty"`
	Username       *string    `json:"username,omitempty"       yaml:"username,omitempty"`
	DisplayName    *string    `json:"displayName,omitempty"    yaml:"displayName,omitempty"`
	UserGroupID    *string    `json:"userGroupId,omitempty"    yaml:"userGroupId,omitempty"`
	Role           *string    `json:"role,omitempty"           yaml:"role,omitempty"`
	Tier           *string    `json:"tier,omitempty"           yaml:"tier,omitempty"`
	CreationEpoch  *time.Time `json:"creationEpoch,omitempty"  yaml:"creationEpoch,omitempty"`
	LastLoginEpoch *time.Time `json:"lastLoginEpoch,omitempty" yaml:"lastLoginEpoch,omitempty"`
}

// UserPreferences are the authenticated user's display and notification settings.
type UserPreferences struct {
	DefaultTimezone      *string `json:"defaultTimezone,omitempty"      yaml:"defaultTimezone,omitempty"`
	DefaultUnits         *string `json:"defaultUnits,omitempty"         yaml:"defaultUnits,omitempty"`
	NotificationsEnabled *bool   `json:"notificationsEnabled,omitempty" yaml:"notificationsEnabled,omitempty"`
	EmailNotifications   *bool   `json:"emailNotifications,omitempty"   yaml:"emailNotifications,omitempty"`
}

// UpdatePreferencesRequest patches preferences. Nil fields are left unchanged.
type UpdatePreferencesRequest struct {
	DefaultTimezone      *string `json:"defaultTimezone,omitempty"`
	DefaultUnits         *string `json:"defaultUnits,omitempty"`
	NotificationsEnabled *bool   `json:"notificationsEnabled,omitempty"`
	EmailNotifications   *bool   `json:"emailNotifications,omitempty"`
}

// GroupMember is a member of the authenticated user's group.
type GroupMember struct {
	ID          string     `json:"id"                    yaml:"id"`
	Email       string     `json:"email"                 yaml:"email"`
	Username    *string    `json:"username,omitempty"    yaml:"username,omitempty"`
	DisplayName *string    `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Role        *string    `json:"role,omitempty"        yaml:"role,omitempty"`
	JoinedEpoch *time.Time `json:"joinedEpoch,omitempty" yaml:"joinedEpoch,omitempty"`
}

// AddGroupMemberRequest invites a user into the group.
type AddGroupMemberRequest struct {
	Email string  `json:"email"`
	Role  *string `json:"role,omitempty"`
}

// PersonalAccessToken is an API credential owned by a user. The secret is
// only ever returned once, at creation.
type PersonalAccessToken struct {
	ID            string     `json:"id"                      yaml:"id"`
	Name          string     `json:"name"                    yaml:"name"`
	UserID        *string    `json:"userId,omitempty"        yaml:"userId,omitempty"`
	Scopes        []string   `json:"scopes,omitempty"        yaml:"scopes,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"     yaml:"expiresAt,omitempty"`
	Created       *time.Time `json:"created,omitempty"       yaml:"created,omitempty"`
	CreationEpoch *time.Time `json:"creationEpoch,omitempty" yaml:"creationEpoch,omitempty"`
	LastUsedEpoch *time.Time `json:"lastUsedEpoch,omitempty" yaml:"lastUsedEpoch,omitempty"`
}

// PersonalAccessTokenListResponse is the envelope returned by the token list endpoint.
type PersonalAccessTokenListResponse struct {
	Tokens []PersonalAccessToken `json:"tokens"`
}

// CreatePersonalAccessTokenRequest mints a token.
type CreatePersonalAccessTokenRequest struct {
	Name          string   `json:"name"`
	Scopes        []string `json:"scopes,omitempty"`
	ExpiresInDays *int32   `json:"expiresInDays,omitempty"`
}

// CreatePersonalAccessTokenResponse carries the new token and its secret.
type CreatePersonalAccessTokenResponse struct {
	Token  PersonalAccessToken `json:"token"  yaml:"token"`
	Secret string              `json:"secret" yaml:"secret"`
}

// AlertSubscription notifies a user when an event happens to a target.
type AlertSubscription struct {
	ID               string     `json:"id"                         yaml:"id"`
	UserID           *string    `json:"userId,omitempty"           yaml:"userId,omitempty"`
	AlertType        *string    `json:"alertType,omitempty"        yaml:"alertType,omitempty"`
	TargetType       *string    `json:"targetType,omitempty"       yaml:"targetType,omitempty"`
	SatelliteID      *string    `json:"satelliteId,omitempty"      yaml:"satelliteId,omitempty"`
	SatelliteGroupID *string    `json:"satelliteGroupId,omitempty" yaml:"satelliteGroupId,omitempty"`
	Enabled          *bool      `json:"enabled,omitempty"          yaml:"enabled,omitempty"`
	EmailEnabled     *bool      `json:"emailEnabled,omitempty"     yaml:"emailEnabled,omitempty"`
	WebhookURL       *string    `json:"webhookUrl,omitempty"       yaml:"webhookUrl,omitempty"`
	ThresholdValue   *float64   `json:"thresholdValue,omitempty"   yaml:"thresholdValue,omitempty"`
	CreationEpoch    *time.Time `json:"creationEpoch,omitempty"    yaml:"creationEpoch,omitempty"`
	UpdateEpoch      *time.Time `json:"updateEpoch,omitempty"      yaml:"updateEpoch,omitempty"`
}

// CreateAlertSubscriptionRequest subscribes to an alert.
type CreateAlertSubscriptionRequest struct {
	AlertType        AlertType  `json:"alertType"`
	TargetType       TargetType `json:"targetType"`
	SatelliteID      *string    `json:"satelliteId,omitempty"`
	SatelliteGroupID *string    `json:"satelliteGroupId,omitempty"`
	Enabled          *bool      `json:"enabled,omitempty"`
	EmailEnabled     *bool      `json:"emailEnabled,omitempty"`
	WebhookURL       *string    `json:"webhookUrl,omitempty"`
	ThresholdValue   *float64   `json:"thresholdValue,omitempty"`
}

// UpdateAlertSubscriptionRequest patches a subscription. Nil fields are left unchanged.
type UpdateAlertSubscriptionRequest struct {
	Enabled        *bool    `json:"enabled,omitempty"`
	EmailEnabled   *bool    `json:"emailEnabled,omitempty"`
	WebhookURL     *string  `json:"webhookUrl,omitempty"`
	ThresholdValue *float64 `json:"thresholdValue,omitempty"`
}
