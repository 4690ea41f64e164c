package domain

import "math"

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000

// Haversine returns the great-circle distance between two coordinates in
// meters. Symmetric in its arguments; zero for identical points.
func Haversine(from, to Coordinate) float64 {
	phi1 := radians(from.Lat)
	phi2 := radians(to.Lat)
	deltaPhi := radians(to.Lat - from.Lat)
	deltaLambda := radians(to.Lng - from.Lng)

	sinPhi := math.Sin(deltaPhi / 2)
	sinLambda := math.Sin(deltaLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// round2 rounds to two decimal places, round1 to one. Dataset scores and
// distances are reported at fixed precision throughout the API.
func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
