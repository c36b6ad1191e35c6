package auth

import (
	"context"
	"errors"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrEmptyToken = errors.New("token is empty")
)

// TokenManager supplies the bearer token attached to each request.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticTokenManager always returns the same token.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a token manager for a fixed API key.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: strings.TrimSpace(token)}
}

// GetToken returns the configured token.
func (m *StaticTokenManager) GetToken(_ context.Context) (string, error) {
	if m.token == "" {
		return "", ErrEmptyToken
	}

	return m.token, nil
}
