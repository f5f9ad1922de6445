package geo

import (
	"math"
	"testing"
)

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg  float64
		want float64
	}{
		{0, 0},
		{180, math.Pi},
		{90, math.Pi / 2},
		{-45, -math.Pi / 4},
	}
	for _, tt := range tests {
		if got := DegToRad(tt.deg); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("DegToRad(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestGreatCircleDistanceKm(t *testing.T) {
	tests := []struct {
		name string
		lat1 float64
		lon1 float64
		lat2 float64
		lon2 float64
		want float64 // km
		tol  float64 // fraction of want
	}{
		{
			name: "Approx 1 degree latitude (111.19 km)",
			lat1: 0, lon1: 0,
			lat2: 1, lon2: 0,
			want: 111.19,
			tol:  0.01,
		},
		{
			name: "Approx 1 degree longitude at equator",
			lat1: 0, lon1: 10,
			lat2: 0, lon2: 11,
			want: 111.19,
			tol:  0.01,
		},
		{
			name: "SF to LA (approx 559 km)",
			lat1: 37.7749, lon1: -122.4194,
			lat2: 34.0522, lon2: -118.2437,
			want: 559.1,
			tol:  0.01,
		},
		{
			name: "London to Paris (approx 344 km)",
			lat1: 51.5074, lon1: -0.1278,
			lat2: 48.8566, lon2: 2.3522,
			want: 343.5,
			tol:  0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GreatCircleDistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if diff := math.Abs(got - tt.want); diff > tt.want*tt.tol {
				t.Errorf("GreatCircleDistanceKm() = %v, want %v (diff %v)", got, tt.want, diff)
			}
		})
	}
}

func TestGreatCircleDistanceKm_Properties(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{37.7749, -122.4194},
		{-33.8688, 151.2093},
		{89.9, 45},
		{-89.9, -135},
		{51.5074, -0.1278},
		{0, 179.99},
		{0, -179.99},
	}

	for _, a := range points {
		if d := GreatCircleDistanceKm(a[0], a[1], a[0], a[1]); d != 0 {
			t.Errorf("distance from %v to itself = %v, want 0", a, d)
		}
		for _, b := range points {
			ab := GreatCircleDistanceKm(a[0], a[1], b[0], b[1])
			ba := GreatCircleDistanceKm(b[0], b[1], a[0], a[1])
			if ab < 0 {
				t.Errorf("negative distance %v between %v and %v", ab, a, b)
			}
			if math.Abs(ab-ba) > 1e-9 {
				t.Errorf("asymmetric distance between %v and %v: %v vs %v", a, b, ab, ba)
			}
		}
	}
}

func TestGreatCircleDistanceKm_AntimeridianIsShort(t *testing.T) {
	d := GreatCircleDistanceKm(0, 179.99, 0, -179.99)
	if d > 3 {
		t.Errorf("expected ~2.2 km across the antimeridian, got %v", d)
	}
}

func TestGreatCircleDistanceKm_NaNPropagates(t *testing.T) {
	if d := GreatCircleDistanceKm(math.NaN(), 0, 0, 0); !math.IsNaN(d) {
		t.Errorf("expected NaN, got %v", d)
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		in     float64
		places int
		want   float64
	}{
		{1.24, 1, 1.2},
		{1.25, 1, 1.3},
		{0.04, 1, 0},
		{12.346, 2, 12.35},
		{7, 1, 7},
	}
	for _, tt := range tests {
		if got := RoundTo(tt.in, tt.places); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RoundTo(%v, %d) = %v, want %v", tt.in, tt.places, got, tt.want)
		}
	}
}
