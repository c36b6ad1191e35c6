package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/zalando/go-keyring"
)

// KeyringService is the service name API keys are stored under.
const KeyringService = "citra-cli"

// Static errors for err113 compliance.
var (
	ErrNoStoredKey = errors.New("no API key stored, run 'citra login' first")
)

// KeyringStore persists API keys in the operating system keyring, one per profile.
type KeyringStore struct {
	service string
}

// NewKeyringStore creates a store under the default service name.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{service: KeyringService}
}

// Save stores the API key for a profile, replacing any previous key.
func (s *KeyringStore) Save(profile, apiKey string) error {
	err := keyring.Set(s.service, profile, apiKey)
	if err != nil {
		return fmt.Errorf("storing API key in keyring: %w", err)
	}

	return nil
}

// Load returns the API key stored for a profile.
func (s *KeyringStore) Load(profile string) (string, error) {
	apiKey, err := keyring.Get(s.service, profile)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoStoredKey
	}

	if err != nil {
		return "", fmt.Errorf("reading API key from keyring: %w", err)
	}

	return apiKey, nil
}

// Delete removes the API key stored for a profile. Deleting a missing key is not an error.
func (s *KeyringStore) Delete(profile string) error {
	err := keyring.Delete(s.service, profile)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("removing API key from keyring: %w", err)
	}

	return nil
}

// KeyringTokenManager reads the API key from the keyring on first use and caches it.
type KeyringTokenManager struct {
	store   *KeyringStore
	profile string

	mutex sync.RWMutex
	token string
}

// NewKeyringTokenManager creates a token manager backed by a keyring profile.
func NewKeyringTokenManager(store *KeyringStore, profile string) *KeyringTokenManager {
	return &KeyringTokenManager{
		store:   store,
		profile: profile,
	}
}

// GetToken returns the stored API key.
func (m *KeyringTokenManager) GetToken(_ context.Context) (string, error) {
	m.mutex.RLock()
	token := m.token
	m.mutex.RUnlock()

	if token != "" {
		return token, nil
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.token != "" {
		return m.token, nil
	}

	token, err := m.store.Load(m.profile)
	if err != nil {
		return "", err
	}

	m.token = token

	return token, nil
}
