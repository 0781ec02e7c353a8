package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// Claims is the displayable subset of the access token's payload.
type Claims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// TokenClaims decodes the stored access token without verifying its
// signature; the client holds no signing key and only uses the claims for
// display. An absent or opaque token returns an error and callers skip the
// readout.
func (m *Manager) TokenClaims() (*Claims, error) {
	token := m.CurrentAccessToken()
	if token == "" {
		return nil, errors.New("no access token stored")
	}

	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}

	out := &Claims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return out, nil
}
