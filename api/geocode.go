package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fixnow/utils"

	"go.uber.org/zap"
)

// Geocoder resolves coordinates against a nominatim-style reverse geocoding
// endpoint. It is intentionally separate from Client: the geocoding service
// is a third party and must never see the bearer token.
type Geocoder struct {
	URL        string
	HTTPClient *http.Client
}

// NewGeocoder builds a Geocoder with a bounded request timeout.
func NewGeocoder(rawURL string, timeout time.Duration) *Geocoder {
	return &Geocoder{
		URL:        rawURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// ReverseGeocode returns a best-effort human-readable address for the given
// coordinates. Every failure mode (no endpoint configured, network error,
// non-200 response, missing field) degrades to a fixed-precision "lat, lng"
// string, so this call always succeeds.
func (g *Geocoder) ReverseGeocode(ctx context.Context, lat, lng float64) string {
	fallback := fmt.Sprintf("%.6f, %.6f", lat, lng)
	if g == nil || g.URL == "" {
		return fallback
	}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lng))
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, "GET", g.URL+"?"+q.Encode(), nil)
	if err != nil {
		return fallback
	}
	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		utils.GetLogger().Warn("reverse geocode request failed", zap.Error(err))
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.GetLogger().Warn("reverse geocode returned non-OK status", zap.Int("status", resp.StatusCode))
		return fallback
	}

	var payload struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		utils.GetLogger().Warn("failed to decode reverse geocode response", zap.Error(err))
		return fallback
	}
	if payload.DisplayName == "" {
		return fallback
	}
	return payload.DisplayName
}
