package domain

import "context"

// GeocodingResult is a resolved place returned by a geocoding provider.
type GeocodingResult struct {
	Lat         float64
	Lng         float64
	DisplayName string
	Confidence  float64 // 0.0–1.0 provider confidence score
}

// Geocoder resolves area names to coordinates.
type Geocoder interface {
	// ForwardGeocode converts an area name to a coordinate. A zero-value
	// result with a nil error means the provider found nothing.
	ForwardGeocode(ctx context.Context, name string) (GeocodingResult, error)
}
