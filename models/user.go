// models/user.go
package models

// Roles accepted by the backend.
const (
	RoleServiceSeeker    = "service_seeker"
	RoleServiceProviders = "service_providers"
)

// IsValidRole reports whether role is one the backend recognises.
func IsValidRole(role string) bool {
	return role == RoleServiceSeeker || role == RoleServiceProviders
}

// User is the authenticated identity returned by the login endpoint.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResponse is the payload of a successful credential exchange.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// AuthState is the session view reconstructed from durable storage.
// IsAuthenticated holds only when both an access token and a parsed user
// record are present.
type AuthState struct {
	User            *User
	AccessToken     string
	RefreshToken    string
	IsAuthenticated bool
}
