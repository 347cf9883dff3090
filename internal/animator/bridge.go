package animator

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/fumi-217/acg-tokyo-tower/internal/environment"
	"github.com/fumi-217/acg-tokyo-tower/internal/scene"
)

const (
	// bridgeBasePeak is the full-on lamp intensity at deep night.
	bridgeBasePeak = 3.0
	// bridgeSmoothRate matches a 0.2-per-frame filter at 60Hz.
	bridgeSmoothRate = 13.0
	// bridgeGlitchChance is the per-frame probability band of a dropout.
	bridgeGlitchChance = 0.96
)

// lampNoise supplies the slow amplitude drift shared by all lamps. Each lamp
// samples it at an offset derived from its seed.
var lampNoise = perlin.NewPerlin(2, 2, 3, 1337)

// lampTarget computes one lamp's raw intensity target for this frame:
// base level from the blend weights, a gentle sine flicker, a slow noise
// pulse and an occasional hard dropout.
func lampTarget(weights environment.Weights, clock, seed float64) float32 {
	base := (weights.Sunset*0.2 + weights.Night) * bridgeBasePeak
	if base <= 0 {
		return 0
	}

	flicker := 0.85 + 0.15*float32(math.Sin(clock*3.1+seed*2*math.Pi))
	pulse := 0.75 + 0.5*float32(lampNoise.Noise1D(clock*0.4+seed*13.7))

	if glitchHash(clock, seed) > bridgeGlitchChance {
		return 0
	}
	return environment.Clamp(base*flicker*pulse, 0, bridgeBasePeak*1.2)
}

// glitchHash is a cheap per-lamp chaos source; values above the glitch
// threshold black the lamp out for the frame.
func glitchHash(clock, seed float64) float64 {
	v := math.Sin(math.Floor(clock*6)*12.9898+seed*78.233) * 43758.5453123
	return v - math.Floor(v)
}

// UpdateBridge eases every lamp toward its flickering target. The smoothing
// turns the hard dropouts into a short decay tail instead of a one-frame pop.
func UpdateBridge(b *scene.Bridge, ctx Context) {
	if b == nil {
		return
	}
	for i := range b.Lamps {
		lamp := &b.Lamps[i]
		if lamp.Light == nil {
			continue
		}
		target := lampTarget(ctx.Weights, ctx.Clock, lamp.Seed)
		lamp.Light.Intensity = environment.SmoothTowards(lamp.Light.Intensity, target, bridgeSmoothRate, ctx.Dt)
	}
}
