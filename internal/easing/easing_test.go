package easing

import (
	"math"
	"testing"
)

func TestCurveEndpoints(t *testing.T) {
	for _, name := range Names() {
		fn := Curve(name)
		if got := fn(0); math.Abs(got) > 1e-9 {
			t.Fatalf("%s(0)=%f want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-9 {
			t.Fatalf("%s(1)=%f want 1", name, got)
		}
	}
}

func TestCurveUnknownFallsBackToLinear(t *testing.T) {
	fn := Curve("definitely-not-a-curve")
	if got := fn(0.37); got != 0.37 {
		t.Fatalf("fallback curve is not identity: got %f", got)
	}
}

func TestOutBackOvershoots(t *testing.T) {
	peak := 0.0
	for i := 0; i <= 100; i++ {
		if v := OutBack(float64(i) / 100); v > peak {
			peak = v
		}
	}
	if peak <= 1.0 {
		t.Fatalf("expected OutBack to overshoot 1.0, peak=%f", peak)
	}
}
