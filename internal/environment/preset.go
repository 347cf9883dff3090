package environment

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Preset is a partial environmental target. Nil fields are filled from the
// live snapshot at the moment a transition starts, so a caller can retarget
// just the parameters it cares about without snapping the rest.
type Preset struct {
	Exposure        *float32
	Ambient         *float32
	SunIntensity    *float32
	SunKelvin       *float32
	Turbidity       *float32
	Rayleigh        *float32
	MieCoefficient  *float32
	MieDirectionalG *float32
	Elevation       *float32
	Azimuth         *float32
	StarOpacity     *float32
	HemiIntensity   *float32
	HemiSky         *mgl32.Vec3
	HemiGround      *mgl32.Vec3
	FogDensity      *float32
	FogColor        *mgl32.Vec3
}

// Resolve fills every unset field from live and returns the resulting
// fully specified snapshot.
func (p Preset) Resolve(live Snapshot) Snapshot {
	out := live
	setF := func(dst *float32, src *float32) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&out.Exposure, p.Exposure)
	setF(&out.Ambient, p.Ambient)
	setF(&out.SunIntensity, p.SunIntensity)
	setF(&out.SunKelvin, p.SunKelvin)
	setF(&out.Turbidity, p.Turbidity)
	setF(&out.Rayleigh, p.Rayleigh)
	setF(&out.MieCoefficient, p.MieCoefficient)
	setF(&out.MieDirectionalG, p.MieDirectionalG)
	setF(&out.Elevation, p.Elevation)
	setF(&out.Azimuth, p.Azimuth)
	setF(&out.StarOpacity, p.StarOpacity)
	setF(&out.HemiIntensity, p.HemiIntensity)
	setF(&out.FogDensity, p.FogDensity)
	if p.HemiSky != nil {
		out.HemiSky = *p.HemiSky
	}
	if p.HemiGround != nil {
		out.HemiGround = *p.HemiGround
	}
	if p.FogColor != nil {
		out.FogColor = *p.FogColor
	}
	out.SunKelvin = Clamp(out.SunKelvin, KelvinMin, KelvinMax)
	return out
}

// FromSnapshot builds a fully specified preset from a snapshot.
func FromSnapshot(s Snapshot) Preset {
	return Preset{
		Exposure:        &s.Exposure,
		Ambient:         &s.Ambient,
		SunIntensity:    &s.SunIntensity,
		SunKelvin:       &s.SunKelvin,
		Turbidity:       &s.Turbidity,
		Rayleigh:        &s.Rayleigh,
		MieCoefficient:  &s.MieCoefficient,
		MieDirectionalG: &s.MieDirectionalG,
		Elevation:       &s.Elevation,
		Azimuth:         &s.Azimuth,
		StarOpacity:     &s.StarOpacity,
		HemiIntensity:   &s.HemiIntensity,
		HemiSky:         &s.HemiSky,
		HemiGround:      &s.HemiGround,
		FogDensity:      &s.FogDensity,
		FogColor:        &s.FogColor,
	}
}

// The three art-directed snapshots for the harbor scene. Immutable; built once.
var (
	daySnapshot = Snapshot{
		Exposure:        0.68,
		Ambient:         0.45,
		SunIntensity:    3.2,
		SunKelvin:       6200,
		Turbidity:       8,
		Rayleigh:        1.2,
		MieCoefficient:  0.005,
		MieDirectionalG: 0.8,
		Elevation:       55,
		Azimuth:         160,
		StarOpacity:     0,
		HemiIntensity:   0.55,
		HemiSky:         mgl32.Vec3{0.55, 0.70, 1.00},
		HemiGround:      mgl32.Vec3{0.35, 0.30, 0.25},
		FogDensity:      0.00008,
		FogColor:        mgl32.Vec3{0.75, 0.85, 1.00},
	}

	sunsetSnapshot = Snapshot{
		Exposure:        0.55,
		Ambient:         0.28,
		SunIntensity:    2.2,
		SunKelvin:       3500,
		Turbidity:       6,
		Rayleigh:        2.8,
		MieCoefficient:  0.012,
		MieDirectionalG: 0.85,
		Elevation:       4,
		Azimuth:         250,
		StarOpacity:     0.12,
		HemiIntensity:   0.35,
		HemiSky:         mgl32.Vec3{1.00, 0.55, 0.30},
		HemiGround:      mgl32.Vec3{0.25, 0.18, 0.20},
		FogDensity:      0.00016,
		FogColor:        mgl32.Vec3{0.90, 0.55, 0.40},
	}

	nightSnapshot = Snapshot{
		Exposure:        0.40,
		Ambient:         0.12,
		SunIntensity:    0.25,
		SunKelvin:       11000,
		Turbidity:       2.5,
		Rayleigh:        0.4,
		MieCoefficient:  0.003,
		MieDirectionalG: 0.78,
		Elevation:       -25,
		Azimuth:         200,
		StarOpacity:     1.0,
		HemiIntensity:   0.18,
		HemiSky:         mgl32.Vec3{0.10, 0.15, 0.35},
		HemiGround:      mgl32.Vec3{0.05, 0.05, 0.10},
		FogDensity:      0.00025,
		FogColor:        mgl32.Vec3{0.04, 0.06, 0.12},
	}
)

// DaySnapshot returns the fully specified day state; it doubles as the initial
// live snapshot at startup.
func DaySnapshot() Snapshot { return daySnapshot }

// SunsetSnapshot returns the fully specified sunset state.
func SunsetSnapshot() Snapshot { return sunsetSnapshot }

// NightSnapshot returns the fully specified night state.
func NightSnapshot() Snapshot { return nightSnapshot }

// Mode is one of the discrete time-of-day commands.
type Mode int

const (
	ModeDay Mode = iota
	ModeSunset
	ModeNight
)

func (m Mode) String() string {
	switch m {
	case ModeDay:
		return "day"
	case ModeSunset:
		return "sunset"
	case ModeNight:
		return "night"
	}
	return "unknown"
}

// Preset returns the fixed preset bound to the mode command.
func (m Mode) Preset() Preset {
	switch m {
	case ModeSunset:
		return FromSnapshot(sunsetSnapshot)
	case ModeNight:
		return FromSnapshot(nightSnapshot)
	default:
		return FromSnapshot(daySnapshot)
	}
}

// Duration returns the fixed transition length for the mode command, seconds.
func (m Mode) Duration() float64 {
	switch m {
	case ModeSunset:
		return 2.5
	case ModeNight:
		return 3.0
	default:
		return 2.0
	}
}
