package environment

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Snapshot is a fully specified environmental state: every renderer-facing
// parameter for one instant of the day/night cycle. The live, continuously
// interpolated snapshot is the only signal the render bindings consume.
type Snapshot struct {
	// Tone mapping and base lighting
	Exposure     float32 `json:"exposure"`
	Ambient      float32 `json:"ambient"`
	SunIntensity float32 `json:"sunIntensity"`
	SunKelvin    float32 `json:"sunKelvin"` // color temperature, clamped to [1000, 40000]

	// Atmospheric scattering
	Turbidity       float32 `json:"turbidity"`
	Rayleigh        float32 `json:"rayleigh"`
	MieCoefficient  float32 `json:"mieCoefficient"`
	MieDirectionalG float32 `json:"mieDirectionalG"`

	// Sun placement, degrees
	Elevation float32 `json:"elevation"`
	Azimuth   float32 `json:"azimuth"`

	// Star field target opacity [0,1]
	StarOpacity float32 `json:"starOpacity"`

	// Hemisphere light
	HemiIntensity float32    `json:"hemiIntensity"`
	HemiSky       mgl32.Vec3 `json:"hemiSky"`
	HemiGround    mgl32.Vec3 `json:"hemiGround"`

	// Exponential fog
	FogDensity float32    `json:"fogDensity"`
	FogColor   mgl32.Vec3 `json:"fogColor"`
}

// lerpSnapshot blends every scalar field and every color channel. Both inputs
// are legal art-directed snapshots, so a weighted average never leaves the
// semantic range of any field.
func lerpSnapshot(a, b Snapshot, t float32) Snapshot {
	return Snapshot{
		Exposure:        Lerp(a.Exposure, b.Exposure, t),
		Ambient:         Lerp(a.Ambient, b.Ambient, t),
		SunIntensity:    Lerp(a.SunIntensity, b.SunIntensity, t),
		SunKelvin:       Lerp(a.SunKelvin, b.SunKelvin, t),
		Turbidity:       Lerp(a.Turbidity, b.Turbidity, t),
		Rayleigh:        Lerp(a.Rayleigh, b.Rayleigh, t),
		MieCoefficient:  Lerp(a.MieCoefficient, b.MieCoefficient, t),
		MieDirectionalG: Lerp(a.MieDirectionalG, b.MieDirectionalG, t),
		Elevation:       Lerp(a.Elevation, b.Elevation, t),
		Azimuth:         Lerp(a.Azimuth, b.Azimuth, t),
		StarOpacity:     Lerp(a.StarOpacity, b.StarOpacity, t),
		HemiIntensity:   Lerp(a.HemiIntensity, b.HemiIntensity, t),
		HemiSky:         LerpVec3(a.HemiSky, b.HemiSky, t),
		HemiGround:      LerpVec3(a.HemiGround, b.HemiGround, t),
		FogDensity:      Lerp(a.FogDensity, b.FogDensity, t),
		FogColor:        LerpVec3(a.FogColor, b.FogColor, t),
	}
}
