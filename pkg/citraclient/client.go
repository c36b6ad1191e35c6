// Package citraclient provides the main entry point for creating Citra API clients
package citraclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/citra-space/citra-go/internal/auth"
	"github.com/citra-space/citra-go/internal/client"
	"github.com/citra-space/citra-go/internal/constants"
	"github.com/citra-space/citra-go/pkg/citra"
)

// New creates a new Citra API client. It performs no network I/O.
func New(config *citra.Config) (citra.Client, error) {
	client, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithAPIKey creates a new client for an environment authenticated with apiKey.
func NewWithAPIKey(apiKey string, env citra.Environment) (citra.Client, error) {
	return New(&citra.Config{
		APIKey:      apiKey,
		Environment: env,
	})
}

// NewFromEnv creates a new client using the personal access token in CITRA_PAT.
func NewFromEnv(env citra.Environment) (citra.Client, error) {
	apiKey := strings.TrimSpace(os.Getenv(constants.PATEnvVar))
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set %s", citra.ErrAPIKeyRequired, constants.PATEnvVar)
	}

	return NewWithAPIKey(apiKey, env)
}

// NewWithKeyring creates a new client that reads its API key from the OS keyring
// entry stored for profile by `citra login`. The key is looked up on first use.
func NewWithKeyring(config *citra.Config, profile string) (citra.Client, error) {
	if config == nil {
		return nil, citra.ErrConfigRequired
	}

	tokenManager := auth.NewKeyringTokenManager(auth.NewKeyringStore(), profile)

	client, err := client.NewWithTokenManager(config, tokenManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}
