package util

import "math"

const (
	earthRadiusMeters = 6371000.0

	// DefaultGeofenceRadiusMeters is the site-proximity tolerance applied
	// when an objective does not define its own radius.
	DefaultGeofenceRadiusMeters = 150.0
)

// HaversineDistance returns the great-circle distance in meters between two
// WGS84 coordinates.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// IsInGeofence reports whether the employee position is within radiusMeters
// of the site. A non-positive radius falls back to the default tolerance.
func IsInGeofence(empLat, empLon, siteLat, siteLon, radiusMeters float64) bool {
	if radiusMeters <= 0 {
		radiusMeters = DefaultGeofenceRadiusMeters
	}
	return HaversineDistance(empLat, empLon, siteLat, siteLon) <= radiusMeters
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
