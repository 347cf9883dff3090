package environment

import (
	"testing"
)

func TestKelvinToRGBNeutralWhite(t *testing.T) {
	c := KelvinToRGB(6500)

	if c[0] < 0.9 || c[1] < 0.9 || c[2] < 0.9 {
		t.Errorf("6500K should be near white, got %v", c)
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			diff := c[i] - c[j]
			if diff < 0 {
				diff = -diff
			}
			if diff > 0.1 {
				t.Errorf("6500K channels should be approximately equal, got %v", c)
			}
		}
	}
}

func TestKelvinToRGBWarm(t *testing.T) {
	c := KelvinToRGB(2000)

	if !(c[0] > c[1] && c[1] > c[2]) {
		t.Errorf("2000K should order R > G > B, got %v", c)
	}
	if c[0] < 0.99 {
		t.Errorf("2000K red channel should saturate, got %v", c[0])
	}
}

func TestKelvinToRGBBlueMonotonicBelowDaylight(t *testing.T) {
	prev := KelvinToRGB(6600)[2]
	for k := float32(6400); k >= 1000; k -= 200 {
		b := KelvinToRGB(k)[2]
		if b > prev+1e-6 {
			t.Fatalf("blue channel should not increase as Kelvin decreases: %v at %vK > %v", b, k, prev)
		}
		prev = b
	}
}

func TestKelvinToRGBClampsInput(t *testing.T) {
	if KelvinToRGB(200) != KelvinToRGB(KelvinMin) {
		t.Error("below-range input should clamp to KelvinMin")
	}
	if KelvinToRGB(90000) != KelvinToRGB(KelvinMax) {
		t.Error("above-range input should clamp to KelvinMax")
	}
}

func TestKelvinToRGBChannelsNormalized(t *testing.T) {
	for k := float32(1000); k <= 40000; k += 1500 {
		c := KelvinToRGB(k)
		for i := 0; i < 3; i++ {
			if c[i] < 0 || c[i] > 1 {
				t.Fatalf("channel %d out of [0,1] at %vK: %v", i, k, c)
			}
		}
	}
}

func TestHSLToRGBPrimaries(t *testing.T) {
	red := HSLToRGB(0, 1, 0.5)
	if red[0] < 0.99 || red[1] > 0.01 || red[2] > 0.01 {
		t.Errorf("hue 0 should be pure red, got %v", red)
	}

	green := HSLToRGB(1.0/3.0, 1, 0.5)
	if green[1] < 0.99 {
		t.Errorf("hue 1/3 should be pure green, got %v", green)
	}

	gray := HSLToRGB(0.7, 0, 0.5)
	if gray[0] != gray[1] || gray[1] != gray[2] {
		t.Errorf("zero saturation should be gray, got %v", gray)
	}
}
