package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestStaticTokenManager(t *testing.T) {
	t.Parallel()

	t.Run("returns trimmed token", func(t *testing.T) {
		t.Parallel()

		manager := NewStaticTokenManager("  secret-key \n")
		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "secret-key", token)
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()

		manager := NewStaticTokenManager("")
		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, ErrEmptyToken)
	})
}

// Keyring tests share the global mock provider and so do not run in parallel.
func TestKeyringStore(t *testing.T) {
	keyring.MockInit()

	store := NewKeyringStore()

	_, err := store.Load("default")
	require.ErrorIs(t, err, ErrNoStoredKey)

	require.NoError(t, store.Save("default", "pat-123"))

	apiKey, err := store.Load("default")
	require.NoError(t, err)
	assert.Equal(t, "pat-123", apiKey)

	require.NoError(t, store.Delete("default"))
	require.NoError(t, store.Delete("default"))

	_, err = store.Load("default")
	require.ErrorIs(t, err, ErrNoStoredKey)
}

func TestKeyringTokenManager(t *testing.T) {
	keyring.MockInit()

	store := NewKeyringStore()
	manager := NewKeyringTokenManager(store, "dev")

	_, err := manager.GetToken(context.Background())
	require.ErrorIs(t, err, ErrNoStoredKey)

	require.NoError(t, store.Save("dev", "pat-dev"))

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pat-dev", token)

	// cached after the first successful read
	require.NoError(t, store.Delete("dev"))

	token, err = manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pat-dev", token)
}
