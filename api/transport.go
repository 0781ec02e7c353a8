package api

import (
	"context"
	"net/http"

	"fixnow/storage"
	"fixnow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is the slice of the session manager the transport consults. The
// transport only reads the token; Clear is invoked solely on a fatal 401.
type Session interface {
	CurrentAccessToken() string
	Clear() error
}

type retriedKey struct{}

// MarkRetried flags the request context as already retried. A 401 on a
// retried request passes through without clearing the session again.
func MarkRetried(ctx context.Context) context.Context {
	return context.WithValue(ctx, retriedKey{}, true)
}

func isRetried(ctx context.Context) bool {
	v, _ := ctx.Value(retriedKey{}).(bool)
	return v
}

// AuthTransport decorates every outbound request with the current bearer
// token and the persistent device identifier. Token refresh is not
// implemented: a 401 on a request that carried a token ends the session
// and invokes the redirect hook.
type AuthTransport struct {
	Base     http.RoundTripper
	Session  Session
	DeviceID string
	// Redirect is called after the session is cleared on a fatal 401,
	// typically to route the client back to the entry point.
	Redirect func()
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	var token string
	if t.Session != nil {
		if token = t.Session.CurrentAccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if t.DeviceID != "" {
		req.Header.Set("X-Device-ID", t.DeviceID)
	}

	resp, err := t.base().RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// Only a 401 against an authenticated request means the session died.
	// Unauthenticated calls (a failed login, say) carry their own meaning
	// and must not tear anything down.
	if resp.StatusCode == http.StatusUnauthorized && token != "" && !isRetried(req.Context()) {
		// No refresh endpoint exists yet, so an unauthorized response is
		// unrecoverable: drop the session and send the caller home.
		if cerr := t.Session.Clear(); cerr != nil {
			utils.GetLogger().Warn("failed to clear session after 401", zap.Error(cerr))
		}
		if t.Redirect != nil {
			t.Redirect()
		}
	}
	return resp, nil
}

const deviceIDKey = "device_id"

// DeviceID returns the stable per-installation identifier, generating and
// persisting one on first use.
func DeviceID(store storage.Store) string {
	if id, ok := store.Get(deviceIDKey); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	if err := store.Set(deviceIDKey, id); err != nil {
		utils.GetLogger().Warn("failed to persist device id", zap.Error(err))
	}
	return id
}
