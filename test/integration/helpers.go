//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/citra-space/citra-go/pkg/citra"
	"github.com/citra-space/citra-go/pkg/citraclient"
)

const testTimeout = 2 * time.Minute

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIKey      string
	Environment string
	SatelliteID string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	env := os.Getenv("CITRA_TEST_ENV")
	if env == "" {
		env = string(citra.EnvironmentDevelopment)
	}

	return &TestConfig{
		APIKey:      os.Getenv("CITRA_PAT"),
		Environment: env,
		SatelliteID: os.Getenv("CITRA_TEST_SATELLITE_ID"),
		Verbose:     os.Getenv("CITRA_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test when no personal access token is configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("CITRA_PAT not set, skipping integration test")
	}
}

// SkipIfNoSatellite skips tests that need a known satellite.
func (config *TestConfig) SkipIfNoSatellite(t *testing.T) {
	t.Helper()

	if config.SatelliteID == "" {
		t.Skip("CITRA_TEST_SATELLITE_ID not set, skipping integration test")
	}
}

// NewClient builds a client for the configured environment.
func (config *TestConfig) NewClient(t *testing.T) citra.Client {
	t.Helper()

	env, err := citra.ParseEnvironment(config.Environment)
	require.NoError(t, err)

	client, err := citraclient.New(&citra.Config{
		APIKey:      config.APIKey,
		Environment: env,
		Debug:       config.Verbose,
	})
	require.NoError(t, err)

	return client
}

// TestContext returns a context bounded by the integration test timeout.
func TestContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	t.Cleanup(cancel)

	return ctx
}

// GenerateTestName creates a unique test resource name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// Cleanup runs a delete and logs instead of failing when it does not succeed.
func Cleanup(t *testing.T, resource string, deleteFn func(context.Context) error) {
	t.Helper()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()

		err := deleteFn(ctx)
		if err != nil && !citra.IsNotFound(err) {
			t.Logf("Failed to clean up %s: %v", resource, err)
		}
	})
}
