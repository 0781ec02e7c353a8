// Package search implements the seeker flow: list providers and narrow them
// to the requested service types and emergency requirement. Distance and
// radius are carried through from the backend, never computed here.
package search

import (
	"context"

	"fixnow/models"
)

// ProviderLister is the backend call the search service depends on.
type ProviderLister interface {
	GetAllProviders(ctx context.Context) ([]models.ServiceProvider, error)
}

type Service struct {
	Client ProviderLister
}

func NewService(client ProviderLister) *Service {
	return &Service{Client: client}
}

// Search fetches all providers and filters locally. An empty service-type
// set matches every provider; IsEmergency restricts results to providers
// with emergency support. Backend ordering is preserved.
func (s *Service) Search(ctx context.Context, req models.ServiceRequest) ([]models.ServiceProvider, error) {
	providers, err := s.Client.GetAllProviders(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]models.ServiceProvider, 0, len(providers))
	for _, p := range providers {
		if !matchesTypes(p, req.ServiceTypes) {
			continue
		}
		if req.IsEmergency && !p.EmergencySupport {
			continue
		}
		results = append(results, p)
	}
	return results, nil
}

func matchesTypes(p models.ServiceProvider, wanted []models.ServiceType) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		for _, offered := range p.ServiceTypes {
			if w == offered {
				return true
			}
		}
	}
	return false
}
