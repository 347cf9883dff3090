package environment

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// KelvinMin and KelvinMax bracket the range where the empirical fit is valid.
	KelvinMin float32 = 1000
	KelvinMax float32 = 40000
)

// KelvinToRGB converts a color temperature to a normalized RGB color using
// the two-piece power/log fit popularized by Tanner Helland. Input is clamped
// to [KelvinMin, KelvinMax]; every channel is clamped to [0,255] before
// normalizing to [0,1]. 6500K comes out near-white, 1900K strongly red-orange.
func KelvinToRGB(kelvin float32) mgl32.Vec3 {
	k := float64(Clamp(kelvin, KelvinMin, KelvinMax)) / 100.0

	var r, g, b float64
	if k <= 66 {
		r = 255
		g = 99.4708025861*math.Log(k) - 161.1195681661
		if k <= 19 {
			b = 0
		} else {
			b = 138.5177312231*math.Log(k-10) - 305.0447927307
		}
	} else {
		r = 329.698727446 * math.Pow(k-60, -0.1332047592)
		g = 288.1221695283 * math.Pow(k-60, -0.0755148492)
		b = 255
	}

	return mgl32.Vec3{channel255(r), channel255(g), channel255(b)}
}

func channel255(v float64) float32 {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return float32(v / 255.0)
}

// HSLToRGB converts hue/saturation/lightness (all in [0,1]) to RGB.
// Used by the yacht searchlight's continuous hue cycle.
func HSLToRGB(h, s, l float32) mgl32.Vec3 {
	if s == 0 {
		return mgl32.Vec3{l, l, l}
	}
	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return mgl32.Vec3{
		hueChannel(p, q, h+1.0/3.0),
		hueChannel(p, q, h),
		hueChannel(p, q, h-1.0/3.0),
	}
}

func hueChannel(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}
