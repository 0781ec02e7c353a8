// Package location resolves the client's current position through an
// IP-geolocation lookup, with an optional reverse-geocoded address.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fixnow/api"
	"fixnow/utils"

	"go.uber.org/zap"
)

// Position is the client's best-effort current coordinates.
type Position struct {
	Latitude  float64
	Longitude float64
	City      string
	Country   string
}

// ipLocation mirrors the ip-api.com response shape.
type ipLocation struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Country string  `json:"country"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Service performs bounded-timeout position lookups. Lookups fail
// explicitly after the timeout; there is no retry.
type Service struct {
	LookupURL  string
	Geocoder   *api.Geocoder
	HTTPClient *http.Client
}

func NewService(lookupURL string, timeout time.Duration, geocoder *api.Geocoder) *Service {
	return &Service{
		LookupURL:  lookupURL,
		Geocoder:   geocoder,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// CurrentPosition queries the geolocation endpoint for the caller's own IP.
func (s *Service) CurrentPosition(ctx context.Context) (*Position, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.LookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geolocation request: %w", err)
	}
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to lookup current position: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation lookup returned status %d", resp.StatusCode)
	}

	var loc ipLocation
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return nil, fmt.Errorf("failed to decode geolocation response: %w", err)
	}
	if loc.Status != "success" {
		return nil, fmt.Errorf("geolocation lookup error: %s", loc.Message)
	}

	return &Position{
		Latitude:  loc.Lat,
		Longitude: loc.Lon,
		City:      loc.City,
		Country:   loc.Country,
	}, nil
}

// CurrentPositionWithAddress resolves the position and reverse-geocodes it.
// The address is best-effort and falls back to a coordinate string, so a
// successful position lookup always yields an address.
func (s *Service) CurrentPositionWithAddress(ctx context.Context) (*Position, string, error) {
	pos, err := s.CurrentPosition(ctx)
	if err != nil {
		return nil, "", err
	}
	address := s.Geocoder.ReverseGeocode(ctx, pos.Latitude, pos.Longitude)
	utils.GetLogger().Debug("resolved current position",
		zap.Float64("lat", pos.Latitude),
		zap.Float64("lng", pos.Longitude),
		zap.String("address", address),
	)
	return pos, address, nil
}
