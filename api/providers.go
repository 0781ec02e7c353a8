package api

import (
	"context"

	"fixnow/models"
)

// CreateProvider submits a completed registration draft tagged with the
// given role discriminator.
func (c *Client) CreateProvider(ctx context.Context, form models.ProviderForm, role string) error {
	req := models.ProviderRegistrationRequest{
		ProviderForm: form,
		Role:         role,
	}
	return c.doJSON(ctx, "POST", "/providers/", req, nil)
}

// GetAllProviders lists every provider known to the backend.
func (c *Client) GetAllProviders(ctx context.Context) ([]models.ServiceProvider, error) {
	var providers []models.ServiceProvider
	if err := c.doJSON(ctx, "GET", "/providers/", nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}
