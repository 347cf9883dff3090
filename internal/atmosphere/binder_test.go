package atmosphere

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/fumi-217/acg-tokyo-tower/internal/environment"
	"github.com/fumi-217/acg-tokyo-tower/internal/renderer"
)

func approxVec(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() < eps
}

func TestSunDirectionZenith(t *testing.T) {
	dir := SunDirection(90, 0)
	if !approxVec(dir, mgl32.Vec3{0, 1, 0}, 1e-5) {
		t.Errorf("zenith sun direction = %v", dir)
	}
}

func TestSunDirectionHorizon(t *testing.T) {
	// Elevation 0, azimuth 0 lies on the horizon along +Z
	dir := SunDirection(0, 0)
	if !approxVec(dir, mgl32.Vec3{0, 0, 1}, 1e-5) {
		t.Errorf("horizon sun direction = %v", dir)
	}
	// Azimuth 90 swings it to +X
	dir = SunDirection(0, 90)
	if !approxVec(dir, mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("east sun direction = %v", dir)
	}
}

func TestSunDirectionBelowHorizon(t *testing.T) {
	dir := SunDirection(-25, 200)
	if dir.Y() >= 0 {
		t.Errorf("sun below horizon should have negative Y, got %f", dir.Y())
	}
	if d := dir.Len(); math.Abs(float64(d-1)) > 1e-5 {
		t.Errorf("direction not unit length: %f", d)
	}
}

func TestBindWritesLightingFromSnapshot(t *testing.T) {
	env := environment.NewEngine(environment.NightSnapshot(), environment.DefaultWeightConfig())
	lighting := renderer.NewLighting()
	sky := renderer.NewSkyDome()
	b := NewBinder(lighting, sky)

	b.Bind(env, mgl32.Vec3{0, 120, 620})

	snap := environment.NightSnapshot()
	if lighting.Exposure != snap.Exposure {
		t.Errorf("exposure = %f, want %f", lighting.Exposure, snap.Exposure)
	}
	if lighting.Ambient != snap.Ambient {
		t.Errorf("ambient = %f, want %f", lighting.Ambient, snap.Ambient)
	}
	if lighting.Sun.Intensity != snap.SunIntensity {
		t.Errorf("sun intensity = %f", lighting.Sun.Intensity)
	}
	if !lighting.Fog.Enabled || lighting.Fog.Density != snap.FogDensity {
		t.Errorf("fog = %+v", lighting.Fog)
	}
	// Night sun is below the horizon: shader direction points upward
	if lighting.Sun.Direction.Y() <= 0 {
		t.Errorf("sun-to-scene direction should point up at night, got %v", lighting.Sun.Direction)
	}
	if sky.SunPosition.Y() >= 0 {
		t.Errorf("sky sun position should be below horizon at night, got %v", sky.SunPosition)
	}
}

func TestBindIsIdempotent(t *testing.T) {
	env := environment.NewEngine(environment.SunsetSnapshot(), environment.DefaultWeightConfig())
	lighting := renderer.NewLighting()
	sky := renderer.NewSkyDome()
	b := NewBinder(lighting, sky)
	b.SunGlow = renderer.NewSprite(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, 1)

	camera := mgl32.Vec3{10, 50, 300}
	b.Bind(env, camera)
	firstSun := lighting.Sun
	firstHemi := lighting.Hemisphere
	firstFog := lighting.Fog
	firstExposure := lighting.Exposure
	firstSky := *sky
	firstGlow := *b.SunGlow

	b.Bind(env, camera)
	if lighting.Sun != firstSun || lighting.Hemisphere != firstHemi ||
		lighting.Fog != firstFog || lighting.Exposure != firstExposure {
		t.Error("rebinding the same snapshot changed lighting state")
	}
	if *sky != firstSky {
		t.Error("rebinding the same snapshot changed sky state")
	}
	if *b.SunGlow != firstGlow {
		t.Error("rebinding the same snapshot changed the sun glow sprite")
	}
}

func TestSunLightColorWarmsAtHorizon(t *testing.T) {
	cfg := environment.DefaultWeightConfig()
	day := environment.DaySnapshot()
	sunset := environment.SunsetSnapshot()

	dayColor := SunLightColor(day, cfg)
	sunsetColor := SunLightColor(sunset, cfg)

	dayRatio := dayColor.X() / dayColor.Z()
	sunsetRatio := sunsetColor.X() / sunsetColor.Z()
	if sunsetRatio <= dayRatio {
		t.Errorf("sunset sun should be redder: day R/B %f, sunset R/B %f", dayRatio, sunsetRatio)
	}
}

func TestSunGlowFadesBelowHorizon(t *testing.T) {
	cfg := environment.DefaultWeightConfig()
	lighting := renderer.NewLighting()
	b := NewBinder(lighting, nil)
	b.SunGlow = renderer.NewSprite(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, 1)

	night := environment.NewEngine(environment.NightSnapshot(), cfg)
	b.Bind(night, mgl32.Vec3{})
	if b.SunGlow.Opacity != 0 {
		t.Errorf("glow opacity at night = %f", b.SunGlow.Opacity)
	}

	day := environment.NewEngine(environment.DaySnapshot(), cfg)
	b.Bind(day, mgl32.Vec3{})
	if b.SunGlow.Opacity != 1 {
		t.Errorf("glow opacity at high day = %f", b.SunGlow.Opacity)
	}
}

func TestBindWithNilTargets(t *testing.T) {
	env := environment.NewEngine(environment.DaySnapshot(), environment.DefaultWeightConfig())
	b := &Binder{}
	// Must not panic with every target nil
	b.Bind(env, mgl32.Vec3{})
}
