package geo

import (
	"math"
	"testing"
)

func f(v float64) *float64 {
	return &v
}

func TestDistanceKMOneDegreeLongitudeAtEquator(t *testing.T) {
	got := DistanceKM(f(0), f(0), f(0), f(1))
	if math.Abs(got-111.19) > 0.01 {
		t.Fatalf("expected ~111.19, got %v", got)
	}
}

func TestDistanceKMSamePoint(t *testing.T) {
	if got := DistanceKM(f(31.23), f(121.47), f(31.23), f(121.47)); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestDistanceKMMissingCoordinate(t *testing.T) {
	if got := DistanceKM(nil, f(0), f(0), f(1)); got != 0 {
		t.Fatalf("expected 0 for missing lat, got %v", got)
	}
	if got := DistanceKM(f(0), f(0), f(0), nil); got != 0 {
		t.Fatalf("expected 0 for missing lng, got %v", got)
	}
}

func TestDistanceKMNonFiniteCoordinate(t *testing.T) {
	if got := DistanceKM(f(math.NaN()), f(0), f(0), f(1)); got != 0 {
		t.Fatalf("expected 0 for NaN, got %v", got)
	}
	if got := DistanceKM(f(0), f(math.Inf(1)), f(0), f(1)); got != 0 {
		t.Fatalf("expected 0 for Inf, got %v", got)
	}
}

func TestDistanceKMRoundsToTwoDecimals(t *testing.T) {
	got := DistanceKM(f(31.2304), f(121.4737), f(31.2243), f(121.4812))
	if got != math.Round(got*100)/100 {
		t.Fatalf("expected 2-decimal rounding, got %v", got)
	}
	if got <= 0 {
		t.Fatalf("expected positive distance, got %v", got)
	}
}
