package emissive

import (
	"math"
	"strings"
	"testing"

	"github.com/fumi-217/acg-tokyo-tower/internal/environment"
)

func TestCellHashDeterministic(t *testing.T) {
	a := CellHash(12, -7)
	b := CellHash(12, -7)
	if a != b {
		t.Error("same cell must hash to the same value across frames")
	}
	if CellHash(12, -7) == CellHash(13, -7) {
		t.Error("neighboring cells should hash differently")
	}
	if a < 0 || a >= 1 {
		t.Errorf("hash should be in [0,1), got %v", a)
	}
}

func TestCellLitStableButFlickerVaries(t *testing.T) {
	w := NewWindowGrid(DefaultConfig())

	lit := w.CellLit(3, 9)
	for i := 0; i < 10; i++ {
		if w.CellLit(3, 9) != lit {
			t.Fatal("lit/unlit decision must not vary between frames")
		}
	}

	h := CellHash(3, 9)
	f0 := Flicker(0.0, h)
	f1 := Flicker(0.6, h)
	if f0 == f1 {
		t.Error("flicker should vary with time")
	}
	for _, f := range []float32{f0, f1} {
		if f < 0.5 || f > 1.0 {
			t.Errorf("flicker should stay in [0.5, 1.0], got %v", f)
		}
	}
}

func TestIntensityTargetBlends(t *testing.T) {
	w := NewWindowGrid(DefaultConfig())

	night := w.IntensityTarget(environment.Weights{Night: 1})
	if night != 1.5 {
		t.Errorf("full night target should be 1.5, got %v", night)
	}
	sunset := w.IntensityTarget(environment.Weights{Sunset: 1})
	if sunset != 0.5 {
		t.Errorf("full sunset target should be 0.5, got %v", sunset)
	}
	if w.IntensityTarget(environment.Weights{HighDay: 1}) != 0 {
		t.Error("daytime target should be zero")
	}
}

func TestUpdateConvergesToTarget(t *testing.T) {
	w := NewWindowGrid(DefaultConfig())
	weights := environment.Weights{Night: 1}

	clock := 0.0
	for i := 0; i < 600; i++ {
		clock += 1.0 / 60.0
		w.Update(weights, 1.0/60.0, clock)
	}
	if math.Abs(float64(w.Intensity)-1.5) > 1e-3 {
		t.Errorf("intensity should converge to 1.5, got %v", w.Intensity)
	}
	if w.Time != float32(clock) {
		t.Error("Update should publish the clock")
	}
}

func TestTintSnapsOnSunsetWeight(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWindowGrid(cfg)

	w.Update(environment.Weights{Sunset: 0.8}, 0.016, 1)
	if w.Tint != cfg.SunsetTint {
		t.Errorf("sunset weight above 0.5 should snap to the sunset tint, got %v", w.Tint)
	}
	w.Update(environment.Weights{Sunset: 0.2, Night: 0.8}, 0.016, 2)
	if w.Tint != cfg.NightTint {
		t.Errorf("sunset weight below 0.5 should snap to the night tint, got %v", w.Tint)
	}
}

func TestShaderChunkUsesDeclaredUniforms(t *testing.T) {
	for _, name := range []string{
		UniformEnabled, UniformTime, UniformIntensity,
		UniformTint, UniformCellSize, UniformLitRatio, UniformMargin,
	} {
		if !strings.Contains(ShaderChunk, name) {
			t.Errorf("shader chunk should reference uniform %q", name)
		}
	}
}
