package engine

import (
	"testing"

	"github.com/fumi-217/acg-tokyo-tower/internal/environment"
)

func TestNewStartsAtDay(t *testing.T) {
	e := New(1280, 720, "test")

	day := environment.DaySnapshot()
	if e.Env.Current() != day {
		t.Error("engine should boot on the day preset")
	}
	if e.Env.Active() {
		t.Error("no transition should be active at boot")
	}
}

func TestSetModeStartsTransition(t *testing.T) {
	e := New(1280, 720, "test")
	e.Step(0, 0)

	e.SetMode(environment.ModeNight)
	if !e.Env.Active() {
		t.Fatal("SetMode should start a transition")
	}

	// Drive past the night duration; the transition pins and clears
	clock := 0.0
	for i := 0; i < 300; i++ {
		clock += 1.0 / 60
		e.Step(clock, 1.0/60)
	}
	if e.Env.Active() {
		t.Error("transition should have completed")
	}
	night := environment.NightSnapshot()
	if e.Env.Current() != night {
		t.Errorf("live state should pin to the night preset")
	}
}

func TestStepBindsAtmosphereAndStars(t *testing.T) {
	e := New(1280, 720, "test")
	e.SetMode(environment.ModeNight)

	clock := 0.0
	for i := 0; i < 600; i++ {
		clock += 1.0 / 60
		e.Step(clock, 1.0/60)
	}

	night := environment.NightSnapshot()
	if e.Lighting.Exposure != night.Exposure {
		t.Errorf("lighting exposure = %f, want %f", e.Lighting.Exposure, night.Exposure)
	}
	if e.Stars.Opacity != night.StarOpacity {
		t.Errorf("star opacity = %f, want %f", e.Stars.Opacity, night.StarOpacity)
	}
	if e.Windows.Intensity < 1.0 {
		t.Errorf("window grid should be near full at night, got %f", e.Windows.Intensity)
	}
	if e.SunGlow.Opacity != 0 {
		t.Errorf("sun glow should be hidden at night, got %f", e.SunGlow.Opacity)
	}
}

func TestSetModeMidTransitionRestartsFromLiveState(t *testing.T) {
	e := New(1280, 720, "test")
	e.Step(0, 0)
	e.SetMode(environment.ModeNight)

	e.Step(1.0, 1.0) // partway into the 3s night fade
	mid := e.Env.Current()

	e.SetMode(environment.ModeDay)
	e.Step(1.0, 0)
	if e.Env.Current() != mid {
		t.Error("retargeting must resume from the live interpolated state")
	}
}
