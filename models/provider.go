// models/provider.go
package models

// ProviderForm is the draft of a provider registration accumulated across
// the three wizard steps. The zero value is a fully constructible empty
// draft: every field defaults to an empty string, zero, false or nil.
type ProviderForm struct {
	// Personal information (step 1).
	FullName        string `json:"fullName"`
	PhoneNumber     string `json:"phoneNumber"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`

	// Service information (step 2).
	ServiceTypes []ServiceType `json:"serviceTypes"`
	BusinessName string        `json:"businessName"`
	HourlyRate   float64       `json:"hourlyRate"`
	Description  string        `json:"description"`
	Experience   string        `json:"experience"`

	// Location & availability (step 3).
	Address          string  `json:"address"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	AvailableHours   string  `json:"availableHours"`
	EmergencySupport bool    `json:"emergencySupport"`
}

// ProviderRegistrationRequest is the payload sent to the registration
// endpoint: the full draft tagged with a role discriminator.
type ProviderRegistrationRequest struct {
	ProviderForm
	Role string `json:"role"`
}

// ServiceProvider is a provider listing entry as returned by the backend.
// Distance is backend-supplied; the client never computes proximity.
type ServiceProvider struct {
	ID               string        `json:"id"`
	FullName         string        `json:"fullName"`
	PhoneNumber      string        `json:"phoneNumber"`
	ServiceTypes     []ServiceType `json:"serviceTypes"`
	BusinessName     string        `json:"businessName,omitempty"`
	Address          string        `json:"address"`
	Latitude         float64       `json:"latitude"`
	Longitude        float64       `json:"longitude"`
	AvailableHours   string        `json:"availableHours"`
	EmergencySupport bool          `json:"emergencySupport"`
	HourlyRate       float64       `json:"hourlyRate"`
	Rating           float64       `json:"rating"`
	ReviewCount      int           `json:"reviewCount"`
	ProfilePicture   string        `json:"profilePicture,omitempty"`
	IsAvailable      bool          `json:"isAvailable"`
	Distance         float64       `json:"distance,omitempty"`
}
