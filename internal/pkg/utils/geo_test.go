package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forest-management-gis/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	// Jakarta -> Bandung ~ 115-120 km
	d := utils.HaversineDistance(-6.2, 106.816, -6.9175, 107.6191)
	assert.Greater(t, d, 100.0)
	assert.Less(t, d, 140.0)
}

func TestVincentyDistance_Meridian(t *testing.T) {
	// 0.01° по меридиану на широте 35° ~ 1109.4 м на WGS-84
	d, ok := utils.VincentyDistance(35.0, 139.0, 35.01, 139.0)
	assert.True(t, ok)
	assert.InDelta(t, 1109.4, d, 0.5)
}

func TestVincentyDistance_SamePoint(t *testing.T) {
	d, ok := utils.VincentyDistance(35.6762, 139.6503, 35.6762, 139.6503)
	assert.True(t, ok)
	assert.Zero(t, d)
}

func TestVincentyDistance_Equator(t *testing.T) {
	// 1° по экватору = a * pi / 180
	d, ok := utils.VincentyDistance(0, 0, 0, 1)
	assert.True(t, ok)
	assert.InDelta(t, 111319.49, d, 0.05)
}

func TestVincentyDistance_CloseToHaversine(t *testing.T) {
	v, ok := utils.VincentyDistance(35.6762, 139.6503, 34.6937, 135.5023)
	assert.True(t, ok)
	h := utils.HaversineDistance(35.6762, 139.6503, 34.6937, 135.5023) * 1000

	// сфера и эллипсоид расходятся меньше чем на 0.5%
	assert.InEpsilon(t, h, v, 0.005)
}

func TestGeodesicDistance_AntipodalFallsBack(t *testing.T) {
	d := utils.GeodesicDistance(utils.LatLng{Lat: 0, Lng: 0}, utils.LatLng{Lat: 0.5, Lng: 179.7})
	assert.Greater(t, d, 19_000_000.0)
}

func TestPathLength(t *testing.T) {
	tests := []struct {
		name   string
		points []utils.LatLng
		min    float64
		max    float64
	}{
		{"empty", nil, 0, 0},
		{"single point", []utils.LatLng{{Lat: 35, Lng: 139}}, 0, 0},
		{"two points", []utils.LatLng{{Lat: 35, Lng: 139}, {Lat: 35.01, Lng: 139}}, 1108.9, 1109.9},
		{"there and back", []utils.LatLng{{Lat: 35, Lng: 139}, {Lat: 35.01, Lng: 139}, {Lat: 35, Lng: 139}}, 2217.8, 2219.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.PathLength(tt.points)
			assert.GreaterOrEqual(t, got, tt.min)
			assert.LessOrEqual(t, got, tt.max)
		})
	}
}
