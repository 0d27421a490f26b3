package geo

import (
	"math"
	"testing"
)

func TestDistanceIdenticalPointsIsZero(t *testing.T) {
	p := Coordinates{Lat: 42.3662, Lon: -71.0621}
	if d := Distance(p, p); d != 0 {
		t.Fatalf("expected 0 for identical points, got %f", d)
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	bos := Coordinates{Lat: 42.3662, Lon: -71.0621}
	lak := Coordinates{Lat: 34.0430, Lon: -118.2673}

	ab := Distance(bos, lak)
	ba := Distance(lak, bos)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("expected symmetric distance, got %f vs %f", ab, ba)
	}
}

func TestDistanceBostonToLosAngeles(t *testing.T) {
	bos := Coordinates{Lat: 42.3662, Lon: -71.0621}
	lak := Coordinates{Lat: 34.0430, Lon: -118.2673}

	d := Distance(bos, lak)
	// TD Garden to Crypto.com Arena is roughly 2,600 miles great-circle.
	if d < 2500 || d > 2700 {
		t.Fatalf("expected ~2600 miles, got %f", d)
	}
}

func TestDistanceShortHop(t *testing.T) {
	msg := Coordinates{Lat: 40.7505, Lon: -73.9934}
	ubs := Coordinates{Lat: 40.7172, Lon: -73.7246}

	d := Distance(msg, ubs)
	if d <= 0 || d > 25 {
		t.Fatalf("MSG to UBS Arena should be a short positive hop, got %f", d)
	}
}
