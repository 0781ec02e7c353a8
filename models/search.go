// models/search.go
package models

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ServiceRequest is a seeker's search query. Radius is carried for the
// backend's benefit; the client does not filter by distance.
type ServiceRequest struct {
	ServiceTypes []ServiceType `json:"serviceTypes"`
	Radius       int           `json:"radius"` // km
	IsEmergency  bool          `json:"isEmergency"`
	Location     GeoPoint      `json:"location"`
}
