package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// Same point.
	assert.Zero(t, HaversineDistance(-34.6037, -58.3816, -34.6037, -58.3816))

	// One degree of latitude is about 111.19 km.
	d := HaversineDistance(0, 0, 1, 0)
	assert.InDelta(t, 111194, d, 100)

	// Obelisco to Casa Rosada, Buenos Aires: about 1.05 km.
	d = HaversineDistance(-34.603722, -58.381592, -34.608056, -58.370278)
	assert.InDelta(t, 1130, d, 100)
}

func TestIsInGeofence(t *testing.T) {
	siteLat, siteLon := -34.603722, -58.381592

	// ~55 m north of the site: inside the default tolerance.
	assert.True(t, IsInGeofence(siteLat+0.0005, siteLon, siteLat, siteLon, 0))

	// ~1.1 km north: outside the default, inside a 2 km site radius.
	assert.False(t, IsInGeofence(siteLat+0.01, siteLon, siteLat, siteLon, 0))
	assert.True(t, IsInGeofence(siteLat+0.01, siteLon, siteLat, siteLon, 2000))
}
