package environment

import (
	"math"
	"testing"
)

func TestLerpEndpoints(t *testing.T) {
	if Lerp(2, 8, 0) != 2 {
		t.Error("Lerp at t=0 should return a")
	}
	if Lerp(2, 8, 1) != 8 {
		t.Error("Lerp at t=1 should return b")
	}
	if Lerp(2, 8, 0.5) != 5 {
		t.Error("Lerp at t=0.5 should return midpoint")
	}
}

func TestSmoothstepEdges(t *testing.T) {
	if Smoothstep(0, 1, -1) != 0 {
		t.Error("below edge0 should yield 0")
	}
	if Smoothstep(0, 1, 2) != 1 {
		t.Error("above edge1 should yield 1")
	}
	mid := Smoothstep(0, 1, 0.5)
	if math.Abs(float64(mid)-0.5) > 1e-6 {
		t.Errorf("midpoint should be 0.5, got %v", mid)
	}
	// Easing: quarter-point is below linear, three-quarter above.
	if Smoothstep(0, 1, 0.25) >= 0.25 {
		t.Error("smoothstep should ease in below linear")
	}
	if Smoothstep(0, 1, 0.75) <= 0.75 {
		t.Error("smoothstep should ease out above linear")
	}
}

func TestSmoothTowardsConverges(t *testing.T) {
	v := float32(0)
	for i := 0; i < 600; i++ {
		v = SmoothTowards(v, 1, 3, 1.0/60.0)
	}
	if v < 0.999 {
		t.Errorf("filter should converge to target, got %v", v)
	}
}

func TestSmoothTowardsFrameRateIndependent(t *testing.T) {
	// One 33ms step must land where two 16.5ms steps do.
	one := SmoothTowards(0, 1, 2.2, 0.033)
	two := SmoothTowards(0, 1, 2.2, 0.0165)
	two = SmoothTowards(two, 1, 2.2, 0.0165)

	if math.Abs(float64(one-two)) > 1e-5 {
		t.Errorf("filter should be frame-rate independent: one step %v vs two steps %v", one, two)
	}
}

func TestSmoothTowardsZeroDt(t *testing.T) {
	if SmoothTowards(0.3, 1, 5, 0) != 0.3 {
		t.Error("zero dt should not move the value")
	}
}

func TestClampRange(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp should limit to [lo, hi]")
	}
}
