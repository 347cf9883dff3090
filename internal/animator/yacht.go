package animator

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/fumi-217/acg-tokyo-tower/internal/environment"
	"github.com/fumi-217/acg-tokyo-tower/internal/scene"
)

const (
	// yachtSweepSpeed is the searchlight's fixed rotation, degrees per second.
	yachtSweepSpeed = 40.0
	// yachtHuePeriod is one full trip around the hue wheel, in seconds.
	yachtHuePeriod = 10.0
	// yachtSpotPeak is the searchlight intensity at full night.
	yachtSpotPeak = 6.0
	// yachtMixRate matches a 0.1-per-frame filter at 60Hz.
	yachtMixRate = 6.0
	// yachtBeamDip tilts the beam slightly toward the water.
	yachtBeamDip = -0.15
)

// UpdateYacht sweeps the party boat's searchlight at a constant rate, cycles
// its color around the hue wheel and gates it on a smoothed night blend. The
// on/off decision is binary against the night weight; the smoothing turns it
// into a fade.
func UpdateYacht(y *scene.Yacht, ctx Context) {
	if y == nil {
		return
	}

	y.HeadingDeg += yachtSweepSpeed * float32(ctx.Dt)
	if y.HeadingDeg >= 360 {
		y.HeadingDeg -= 360
	}

	if y.Pivot != nil {
		y.Pivot.Rotate(0, yachtSweepSpeed*float32(ctx.Dt), 0)
	}

	nightTarget := float32(0)
	if ctx.Weights.Night > 0.5 {
		nightTarget = 1
	}
	y.NightMix = environment.SmoothTowards(y.NightMix, nightTarget, yachtMixRate, ctx.Dt)

	if y.Spot == nil {
		return
	}

	hue := float32(math.Mod(ctx.Clock/yachtHuePeriod, 1))
	y.Spot.Color = environment.HSLToRGB(hue, 1, 0.5)
	y.Spot.Intensity = y.NightMix * yachtSpotPeak

	heading := float64(mgl32.DegToRad(y.HeadingDeg))
	y.Spot.Direction = mgl32.Vec3{
		float32(math.Sin(heading)),
		yachtBeamDip,
		float32(math.Cos(heading)),
	}.Normalize()

	if y.Pivot != nil {
		y.Spot.Position = y.Pivot.Position
	}
}
