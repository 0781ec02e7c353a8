package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fixnow/models"
	"fixnow/services/session"
	"fixnow/storage"

	"github.com/golang-jwt/jwt"
)

// fakeLoginClient returns a canned response or error.
type fakeLoginClient struct {
	resp *models.LoginResponse
	err  error

	lastEmail, lastPassword, lastRole string
}

func (f *fakeLoginClient) Login(ctx context.Context, email, password, role string) (*models.LoginResponse, error) {
	f.lastEmail, f.lastPassword, f.lastRole = email, password, role
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func providerLogin() *models.LoginResponse {
	return &models.LoginResponse{
		AccessToken:  "access-abc",
		RefreshToken: "refresh-def",
		User: models.User{
			ID:    "prov-1",
			Email: "a@b.com",
			Name:  "Ada",
			Role:  models.RoleServiceProviders,
		},
	}
}

func TestManager_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("passes credentials through and persists nothing", func(t *testing.T) {
		store := storage.NewMemoryStore()
		client := &fakeLoginClient{resp: providerLogin()}
		m := session.NewManager(store, client)

		resp, err := m.Login(ctx, "a@b.com", "secret", models.RoleServiceProviders)
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if resp.User.Role != models.RoleServiceProviders {
			t.Errorf("unexpected role %q", resp.User.Role)
		}
		if client.lastRole != models.RoleServiceProviders {
			t.Errorf("role not forwarded, got %q", client.lastRole)
		}
		if m.IsAuthenticated() {
			t.Error("Login alone must not persist a session")
		}
	})

	t.Run("backend errors propagate unchanged", func(t *testing.T) {
		wantErr := errors.New("invalid email or password")
		m := session.NewManager(storage.NewMemoryStore(), &fakeLoginClient{err: wantErr})
		if _, err := m.Login(ctx, "a@b.com", "wrong", models.RoleServiceSeeker); !errors.Is(err, wantErr) {
			t.Errorf("expected the backend error, got %v", err)
		}
	})

	t.Run("unknown role is rejected locally", func(t *testing.T) {
		client := &fakeLoginClient{resp: providerLogin()}
		m := session.NewManager(storage.NewMemoryStore(), client)
		if _, err := m.Login(ctx, "a@b.com", "secret", "admin"); err == nil {
			t.Error("expected an error for an unknown role")
		}
		if client.lastRole != "" {
			t.Error("backend must not be called for an unknown role")
		}
	})
}

func TestManager_PersistRestore(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		store := storage.NewMemoryStore()
		m := session.NewManager(store, nil)
		if err := m.Persist(providerLogin()); err != nil {
			t.Fatalf("Persist failed: %v", err)
		}

		state := m.Restore()
		if !state.IsAuthenticated {
			t.Fatal("expected an authenticated state after persist")
		}
		if state.AccessToken != "access-abc" || state.RefreshToken != "refresh-def" {
			t.Errorf("tokens did not round-trip: %q / %q", state.AccessToken, state.RefreshToken)
		}
		if state.User == nil || state.User.Role != models.RoleServiceProviders {
			t.Errorf("user did not round-trip: %+v", state.User)
		}
		if got := m.CurrentAccessToken(); got != "access-abc" {
			t.Errorf("CurrentAccessToken = %q", got)
		}
	})

	t.Run("empty store restores to logged out", func(t *testing.T) {
		m := session.NewManager(storage.NewMemoryStore(), nil)
		if state := m.Restore(); state.IsAuthenticated {
			t.Error("expected not authenticated on an empty store")
		}
	})

	t.Run("corrupt user record degrades to logged out", func(t *testing.T) {
		store := storage.NewMemoryStore()
		m := session.NewManager(store, nil)
		if err := m.Persist(providerLogin()); err != nil {
			t.Fatalf("Persist failed: %v", err)
		}
		if err := store.Set(session.UserKey, "{not json"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		state := m.Restore()
		if state.IsAuthenticated {
			t.Error("corrupt user record must not authenticate")
		}
		if state.User != nil {
			t.Error("corrupt user record must parse to nil")
		}
	})

	t.Run("token without user does not authenticate", func(t *testing.T) {
		store := storage.NewMemoryStore()
		if err := store.Set(session.AccessTokenKey, "orphan-token"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		m := session.NewManager(store, nil)
		if m.IsAuthenticated() {
			t.Error("a token without a user record must not authenticate")
		}
	})
}

func TestManager_Clear(t *testing.T) {
	store := storage.NewMemoryStore()
	m := session.NewManager(store, nil)
	if err := m.Persist(providerLogin()); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	if err := m.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if m.Restore().IsAuthenticated {
		t.Error("expected not authenticated after Clear")
	}
	// Clearing an absent session is a no-op.
	if err := m.Clear(); err != nil {
		t.Errorf("second Clear failed: %v", err)
	}
	if m.Restore().IsAuthenticated {
		t.Error("expected not authenticated after repeated Clear")
	}
}

func TestManager_TokenClaims(t *testing.T) {
	t.Run("decodes subject, email and expiry", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Truncate(time.Second)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":   "prov-1",
			"email": "a@b.com",
			"exp":   exp.Unix(),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("failed to sign test token: %v", err)
		}

		store := storage.NewMemoryStore()
		resp := providerLogin()
		resp.AccessToken = signed
		m := session.NewManager(store, nil)
		if err := m.Persist(resp); err != nil {
			t.Fatalf("Persist failed: %v", err)
		}

		claims, err := m.TokenClaims()
		if err != nil {
			t.Fatalf("TokenClaims failed: %v", err)
		}
		if claims.Subject != "prov-1" || claims.Email != "a@b.com" {
			t.Errorf("unexpected claims: %+v", claims)
		}
		if !claims.ExpiresAt.Equal(exp) {
			t.Errorf("expected expiry %v, got %v", exp, claims.ExpiresAt)
		}
	})

	t.Run("opaque token yields an error", func(t *testing.T) {
		store := storage.NewMemoryStore()
		resp := providerLogin()
		resp.AccessToken = "opaque-token"
		m := session.NewManager(store, nil)
		if err := m.Persist(resp); err != nil {
			t.Fatalf("Persist failed: %v", err)
		}
		if _, err := m.TokenClaims(); err == nil {
			t.Error("expected an error for an opaque token")
		}
	})

	t.Run("missing token yields an error", func(t *testing.T) {
		m := session.NewManager(storage.NewMemoryStore(), nil)
		if _, err := m.TokenClaims(); err == nil {
			t.Error("expected an error with no stored token")
		}
	})
}
