package domain

import (
	"context"
	"log/slog"
	"strings"
)

// Area is one entry of the static area fallback table.
type Area struct {
	Name string
	Coordinate
}

// delhiAreas is the static fallback table used when no remote geocoder is
// configured or the provider comes up empty.
var delhiAreas = []Area{
	{Name: "Connaught Place", Coordinate: Coordinate{Lat: 28.6315, Lng: 77.2167}},
	{Name: "Karol Bagh", Coordinate: Coordinate{Lat: 28.6519, Lng: 77.1900}},
	{Name: "Saket", Coordinate: Coordinate{Lat: 28.5244, Lng: 77.2066}},
	{Name: "Dwarka", Coordinate: Coordinate{Lat: 28.5921, Lng: 77.0460}},
	{Name: "Rohini", Coordinate: Coordinate{Lat: 28.7496, Lng: 77.0669}},
	{Name: "Sarojini Nagar", Coordinate: Coordinate{Lat: 28.5753, Lng: 77.1953}},
}

// ResolveArea turns an area name into a coordinate. It tries the remote
// geocoder first (when one is configured), then the static area table, then
// the configured fallback coordinate. Geocoder failures degrade to the
// table lookup, never to an error (graceful degradation).
func ResolveArea(ctx context.Context, name string, geocoder Geocoder, fallback Coordinate, logger *slog.Logger) Coordinate {
	if strings.TrimSpace(name) == "" {
		return fallback
	}

	if geocoder != nil {
		result, err := geocoder.ForwardGeocode(ctx, name)
		switch {
		case err != nil:
			logger.Warn("forward geocoding failed", "area", name, "error", err)
		case result.Lat != 0 || result.Lng != 0:
			return Coordinate{Lat: result.Lat, Lng: result.Lng}
		}
	}

	if coord, ok := LookupArea(name); ok {
		return coord
	}
	return fallback
}

// LookupArea matches an area name against the static table. The match is
// case-insensitive and bidirectional: either string may contain the other,
// so "cp connaught place" and "Saket" both resolve.
func LookupArea(name string) (Coordinate, bool) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	if lowered == "" {
		return Coordinate{}, false
	}
	for _, area := range delhiAreas {
		areaLower := strings.ToLower(area.Name)
		if strings.Contains(lowered, areaLower) || strings.Contains(areaLower, lowered) {
			return area.Coordinate, true
		}
	}
	return Coordinate{}, false
}
