// Package atmosphere maps the live environment snapshot onto renderer state:
// sun light, hemisphere fill, fog, sky dome scattering and the sun glow
// sprite. Binding is a pure write of the targets from the snapshot; binding
// the same snapshot twice leaves the targets unchanged.
package atmosphere

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/fumi-217/acg-tokyo-tower/internal/environment"
	"github.com/fumi-217/acg-tokyo-tower/internal/renderer"
)

// Binder owns references to the renderer-side targets it rewrites each frame.
// Nil targets are skipped, so a scene without a sun sprite still binds.
type Binder struct {
	Lighting *renderer.Lighting
	Sky      *renderer.SkyDome
	SunGlow  *renderer.Sprite

	// SunDistance places the glow sprite along the sun direction from the
	// camera. Far enough to sit behind the harbor, inside the far plane.
	SunDistance float32
	SunGlowSize float32
}

func NewBinder(lighting *renderer.Lighting, sky *renderer.SkyDome) *Binder {
	return &Binder{
		Lighting:    lighting,
		Sky:         sky,
		SunDistance: 9500,
		SunGlowSize: 900,
	}
}

// SunDirection converts spherical sun coordinates to a unit vector pointing
// toward the sun. Elevation is degrees above the horizon, azimuth degrees
// clockwise looking down the +Y axis.
func SunDirection(elevationDeg, azimuthDeg float32) mgl32.Vec3 {
	phi := float64(mgl32.DegToRad(90 - elevationDeg))
	theta := float64(mgl32.DegToRad(azimuthDeg))
	return mgl32.Vec3{
		float32(math.Sin(phi) * math.Sin(theta)),
		float32(math.Cos(phi)),
		float32(math.Sin(phi) * math.Cos(theta)),
	}
}

// warmTint is the horizon scatter color sun light leans toward at low
// elevation.
var warmTint = mgl32.Vec3{1.0, 0.5, 0.25}

// SunLightColor derives the sun's RGB from the snapshot: the blackbody color
// for the horizon-biased temperature, pulled toward the warm scatter tint by
// the horizon weight.
func SunLightColor(snap environment.Snapshot, cfg environment.WeightConfig) mgl32.Vec3 {
	weights := cfg.Evaluate(snap.Elevation)
	base := environment.KelvinToRGB(cfg.BiasedKelvin(snap.SunKelvin, snap.Elevation))
	return environment.LerpVec3(base, warmTint, weights.Horizon*0.35)
}

// Bind rewrites every target from the environment engine's live state.
func (b *Binder) Bind(env *environment.Engine, cameraPos mgl32.Vec3) {
	snap := env.Current()
	toSun := SunDirection(snap.Elevation, snap.Azimuth)
	sunColor := SunLightColor(snap, env.Config())

	if b.Lighting != nil {
		b.Lighting.Exposure = snap.Exposure
		b.Lighting.Ambient = snap.Ambient
		b.Lighting.Sun.Kind = renderer.DIRECTIONAL_LIGHT
		b.Lighting.Sun.Direction = toSun.Mul(-1)
		b.Lighting.Sun.Color = sunColor
		b.Lighting.Sun.Intensity = snap.SunIntensity
		b.Lighting.Hemisphere.SkyColor = snap.HemiSky
		b.Lighting.Hemisphere.GroundColor = snap.HemiGround
		b.Lighting.Hemisphere.Intensity = snap.HemiIntensity
		b.Lighting.Fog.Enabled = snap.FogDensity > 0
		b.Lighting.Fog.Density = snap.FogDensity
		b.Lighting.Fog.Color = snap.FogColor
	}

	if b.Sky != nil {
		b.Sky.Turbidity = snap.Turbidity
		b.Sky.Rayleigh = snap.Rayleigh
		b.Sky.MieCoefficient = snap.MieCoefficient
		b.Sky.MieDirectionalG = snap.MieDirectionalG
		b.Sky.SunPosition = toSun
		b.Sky.Exposure = snap.Exposure
	}

	if b.SunGlow != nil {
		b.SunGlow.Position = cameraPos.Add(toSun.Mul(b.SunDistance))
		b.SunGlow.Color = sunColor
		b.SunGlow.Size = b.SunGlowSize
		// The glow fades out as the sun drops below the horizon.
		b.SunGlow.Opacity = environment.Smoothstep(-3, 4, snap.Elevation)
	}
}
