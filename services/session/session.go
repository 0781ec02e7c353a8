// Package session owns the authenticated session's lifecycle: credential
// exchange, persistence through the storage port, restore on start and
// teardown on logout or fatal auth failure.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"fixnow/models"
	"fixnow/storage"
	"fixnow/utils"

	"go.uber.org/zap"
)

// Storage keys for the persisted session.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
	UserKey         = "user_data"
)

// LoginClient is the backend call the manager makes on Login.
type LoginClient interface {
	Login(ctx context.Context, email, password, role string) (*models.LoginResponse, error)
}

// Manager is the single source of truth for the current session. It is the
// only component that writes the session keys; the request decorator merely
// reads the token (and triggers Clear on a fatal 401).
type Manager struct {
	store  storage.Store
	client LoginClient
}

func NewManager(store storage.Store, client LoginClient) *Manager {
	return &Manager{store: store, client: client}
}

// Login exchanges credentials with the backend. Errors propagate unchanged;
// the caller decides whether to Persist the result.
func (m *Manager) Login(ctx context.Context, email, password, role string) (*models.LoginResponse, error) {
	if !models.IsValidRole(role) {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	return m.client.Login(ctx, email, password, role)
}

// Persist writes the token pair and the serialized user record. Token shape
// is not validated; the backend is trusted on what it issued.
func (m *Manager) Persist(resp *models.LoginResponse) error {
	raw, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("failed to serialize user record: %w", err)
	}
	if err := m.store.Set(AccessTokenKey, resp.AccessToken); err != nil {
		return fmt.Errorf("failed to persist access token: %w", err)
	}
	if err := m.store.Set(RefreshTokenKey, resp.RefreshToken); err != nil {
		return fmt.Errorf("failed to persist refresh token: %w", err)
	}
	if err := m.store.Set(UserKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist user record: %w", err)
	}
	return nil
}

// Restore reads the session back from storage. A missing or corrupt user
// record degrades to "not authenticated"; Restore never fails.
func (m *Manager) Restore() models.AuthState {
	state := models.AuthState{}
	state.AccessToken, _ = m.store.Get(AccessTokenKey)
	state.RefreshToken, _ = m.store.Get(RefreshTokenKey)

	if raw, ok := m.store.Get(UserKey); ok {
		var user models.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			utils.GetLogger().Warn("stored user record is unreadable, treating session as absent", zap.Error(err))
		} else {
			state.User = &user
		}
	}

	state.IsAuthenticated = state.AccessToken != "" && state.User != nil
	return state
}

// Clear deletes the whole session. Clearing an absent session is a no-op.
func (m *Manager) Clear() error {
	var firstErr error
	for _, key := range []string{AccessTokenKey, RefreshTokenKey, UserKey} {
		if err := m.store.Delete(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// CurrentAccessToken is a raw read of the stored access token, consulted by
// the request decorator on every outbound call.
func (m *Manager) CurrentAccessToken() string {
	token, _ := m.store.Get(AccessTokenKey)
	return token
}

// IsAuthenticated reports whether a token and a parseable user are present.
func (m *Manager) IsAuthenticated() bool {
	return m.Restore().IsAuthenticated
}
