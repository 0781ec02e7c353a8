package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fixnow/api"
	"fixnow/models"
	"fixnow/services/session"
	"fixnow/storage"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newSession(t *testing.T) (*session.Manager, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	m := session.NewManager(store, nil)
	if err := m.Persist(&models.LoginResponse{
		AccessToken:  "tok-123",
		RefreshToken: "refresh-123",
		User:         models.User{ID: "u1", Email: "a@b.com", Name: "Ada", Role: models.RoleServiceProviders},
	}); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}
	return m, store
}

func TestAuthTransport_AttachesCredentials(t *testing.T) {
	sessions, _ := newSession(t)

	var gotAuth, gotDevice string
	router := gin.New()
	router.GET("/providers/", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		gotDevice = c.GetHeader("X-Device-ID")
		c.JSON(http.StatusOK, []models.ServiceProvider{})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	client := api.NewClient(srv.URL, &api.AuthTransport{
		Session:  sessions,
		DeviceID: "device-42",
	}, time.Second)

	if _, err := client.GetAllProviders(context.Background()); err != nil {
		t.Fatalf("GetAllProviders failed: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotDevice != "device-42" {
		t.Errorf("X-Device-ID = %q", gotDevice)
	}
}

func TestAuthTransport_NoTokenSendsUnmodified(t *testing.T) {
	m := session.NewManager(storage.NewMemoryStore(), nil)

	var gotAuth string
	var hasAuth bool
	router := gin.New()
	router.GET("/providers/", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		_, hasAuth = c.Request.Header["Authorization"]
		c.JSON(http.StatusOK, []models.ServiceProvider{})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	client := api.NewClient(srv.URL, &api.AuthTransport{Session: m}, time.Second)
	if _, err := client.GetAllProviders(context.Background()); err != nil {
		t.Fatalf("GetAllProviders failed: %v", err)
	}
	if hasAuth {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestAuthTransport_FatalUnauthorized(t *testing.T) {
	t.Run("401 clears the session and redirects", func(t *testing.T) {
		sessions, _ := newSession(t)

		router := gin.New()
		router.GET("/providers/", func(c *gin.Context) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
		})
		srv := httptest.NewServer(router)
		defer srv.Close()

		redirected := false
		client := api.NewClient(srv.URL, &api.AuthTransport{
			Session:  sessions,
			Redirect: func() { redirected = true },
		}, time.Second)

		_, err := client.GetAllProviders(context.Background())
		apiErr, ok := err.(*api.Error)
		if !ok || apiErr.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected a 401 api.Error, got %v", err)
		}
		if !redirected {
			t.Error("expected the redirect hook to fire")
		}
		if sessions.Restore().IsAuthenticated {
			t.Error("expected the session cleared after a fatal 401")
		}
	})

	t.Run("retried requests pass through untouched", func(t *testing.T) {
		sessions, _ := newSession(t)

		router := gin.New()
		router.GET("/providers/", func(c *gin.Context) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "still expired"})
		})
		srv := httptest.NewServer(router)
		defer srv.Close()

		redirected := false
		client := api.NewClient(srv.URL, &api.AuthTransport{
			Session:  sessions,
			Redirect: func() { redirected = true },
		}, time.Second)

		_, err := client.GetAllProviders(api.MarkRetried(context.Background()))
		if err == nil {
			t.Fatal("expected the 401 to propagate")
		}
		if redirected {
			t.Error("retried request must not redirect")
		}
		if !sessions.Restore().IsAuthenticated {
			t.Error("retried request must not clear the session")
		}
	})

	t.Run("401 without a stored token passes through", func(t *testing.T) {
		sessions := session.NewManager(storage.NewMemoryStore(), nil)

		router := gin.New()
		router.POST("/auth/login", func(c *gin.Context) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		})
		srv := httptest.NewServer(router)
		defer srv.Close()

		redirected := false
		client := api.NewClient(srv.URL, &api.AuthTransport{
			Session:  sessions,
			Redirect: func() { redirected = true },
		}, time.Second)

		_, err := client.Login(context.Background(), "a@b.com", "wrong", models.RoleServiceSeeker)
		if err == nil || err.Error() != "invalid credentials" {
			t.Fatalf("expected the backend message, got %v", err)
		}
		if redirected {
			t.Error("a rejected login must not redirect")
		}
	})

	t.Run("other failures leave the session alone", func(t *testing.T) {
		sessions, _ := newSession(t)

		router := gin.New()
		router.GET("/providers/", func(c *gin.Context) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "boom"})
		})
		srv := httptest.NewServer(router)
		defer srv.Close()

		client := api.NewClient(srv.URL, &api.AuthTransport{Session: sessions}, time.Second)
		_, err := client.GetAllProviders(context.Background())
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected the backend message, got %v", err)
		}
		if !sessions.Restore().IsAuthenticated {
			t.Error("a 500 must not clear the session")
		}
	})
}

func TestDeviceID(t *testing.T) {
	store := storage.NewMemoryStore()
	first := api.DeviceID(store)
	if first == "" {
		t.Fatal("expected a generated device id")
	}
	if second := api.DeviceID(store); second != first {
		t.Errorf("device id should be stable, got %q then %q", first, second)
	}
}
