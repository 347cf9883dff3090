package animator

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/fumi-217/acg-tokyo-tower/internal/environment"
	"github.com/fumi-217/acg-tokyo-tower/internal/scene"
)

const (
	// towerGate is the weight level below which a drive term drops out.
	towerGate = 0.1
	// towerLightPeak is the full-on intensity of one tier light.
	towerLightPeak = 2.4
	// towerLightRate eases each tier light toward its wave target. Matches
	// the feel of a 0.1-per-frame filter at 60Hz.
	towerLightRate = 6.3
	// towerGlowRate low-passes the beacon drive so day/night flips ease in.
	towerGlowRate = 2.2
	// towerGlowGamma shapes the eased drive into the visible glow curve.
	towerGlowGamma = 2.1

	towerBodyEmissivePeak = 1.3
	towerGlowOpacityPeak  = 0.9
)

var (
	towerSunsetColor = mgl32.Vec3{1.0, 0.42, 0.12}
	towerNightColor  = mgl32.Vec3{1.0, 0.1, 0.06}
)

// towerWave is the upward-travelling pulse: each tier lags the one below it.
func towerWave(clock float64, level int) float32 {
	return 0.7 + 0.3*float32(math.Sin(clock*2.0-float64(level)*0.8))
}

// towerDrive is the aggregate tier-light intensity. The sunset term is a
// fixed fraction of the weight; the night term breathes on a slow sine
// between 0.8 and 1.8. A term only contributes once its weight clears the
// gate, so the lights stay fully dark through daytime weight noise.
func towerDrive(weights environment.Weights, clock float64) float32 {
	var drive float32
	if weights.Sunset > towerGate {
		drive += weights.Sunset * 0.6
	}
	if weights.Night > towerGate {
		drive += weights.Night * (0.8 + 0.5*(1+float32(math.Sin(2*clock))))
	}
	return drive
}

// UpdateTower pulses the tower's tier lights, its emissive trusswork and the
// beacon glow sprite. Each light eases toward its own phase-shifted wave
// target, and the shared color slides from sunset orange to night red.
func UpdateTower(t *scene.Tower, ctx Context) {
	if t == nil {
		return
	}

	drive := towerDrive(ctx.Weights, ctx.Clock)
	color := environment.LerpVec3(towerSunsetColor, towerNightColor, ctx.Weights.Night)

	for level, lights := range t.Levels {
		target := drive * towerWave(ctx.Clock, level) * towerLightPeak
		for _, light := range lights {
			if light == nil {
				continue
			}
			light.Intensity = environment.SmoothTowards(light.Intensity, target, towerLightRate, ctx.Dt)
			light.Color = color
		}
	}

	glowTarget := environment.Clamp(ctx.Weights.Sunset*0.6+ctx.Weights.Night, 0, 1)
	t.GlowState = environment.SmoothTowards(t.GlowState, glowTarget, towerGlowRate, ctx.Dt)
	glow := float32(math.Pow(float64(t.GlowState), towerGlowGamma))

	if t.Body != nil && t.Body.Material != nil {
		t.Body.Material.EmissiveIntensity = glow * towerBodyEmissivePeak
	}
	if t.Glow != nil {
		t.Glow.Opacity = glow * towerGlowOpacityPeak
	}
}
