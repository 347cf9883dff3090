package environment

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Lerp returns the linear blend of a and b at parameter t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// LerpVec3 blends two colors/vectors per channel.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		Lerp(a[0], b[0], t),
		Lerp(a[1], b[1], t),
		Lerp(a[2], b[2], t),
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Smoothstep is the cubic easing t*t*(3-2*t) of v remapped between edge0 and edge1.
// Returns 0 below edge0 and 1 above edge1.
func Smoothstep(edge0, edge1, v float32) float32 {
	if edge0 == edge1 {
		if v < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp((v-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// SmoothTowards moves cur toward target with a first-order low-pass filter.
// The step is 1-exp(-rate*dt), so the filter converges at the same speed
// regardless of frame rate. rate is in 1/seconds.
func SmoothTowards(cur, target, rate float32, dt float64) float32 {
	if dt <= 0 {
		return cur
	}
	k := 1 - float32(math.Exp(-float64(rate)*dt))
	return cur + (target-cur)*k
}

// SmoothTowardsVec3 is SmoothTowards applied per channel.
func SmoothTowardsVec3(cur, target mgl32.Vec3, rate float32, dt float64) mgl32.Vec3 {
	return mgl32.Vec3{
		SmoothTowards(cur[0], target[0], rate, dt),
		SmoothTowards(cur[1], target[1], rate, dt),
		SmoothTowards(cur[2], target[2], rate, dt),
	}
}
