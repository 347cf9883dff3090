// Package emissive drives the procedural lit-window pattern painted onto
// building surfaces. A single WindowGrid context object carries the shared
// uniforms (time, global intensity, tint); the renderer references it at
// construction and the frame driver is its only writer.
package emissive

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/fumi-217/acg-tokyo-tower/internal/environment"
)

// Config holds the window grid's art parameters.
type Config struct {
	CellSize   float32 `json:"cellSize"`   // world units per grid cell
	LitRatio   float32 `json:"litRatio"`   // fraction of cells whose window is on
	Margin     float32 `json:"margin"`     // inset fraction framing the window inside its cell
	SmoothRate float32 `json:"smoothRate"` // 1/s, low-pass rate for the global intensity

	SunsetIntensity float32 `json:"sunsetIntensity"` // intensity target weight at sunset
	NightIntensity  float32 `json:"nightIntensity"`  // intensity target weight at night

	SunsetTint mgl32.Vec3 `json:"sunsetTint"` // warm sunset window color (#ff9e4f)
	NightTint  mgl32.Vec3 `json:"nightTint"`  // warm night window color (#ffc773)
}

// DefaultConfig returns the harbor scene's window grid parameters. The 3.0/s
// smoothing rate reproduces the look of a 0.05-per-frame filter at 60Hz while
// staying frame-rate independent.
func DefaultConfig() Config {
	return Config{
		CellSize:        4.0,
		LitRatio:        0.55,
		Margin:          0.18,
		SmoothRate:      3.0,
		SunsetIntensity: 0.5,
		NightIntensity:  1.5,
		SunsetTint:      mgl32.Vec3{1.0, 0.62, 0.31},
		NightTint:       mgl32.Vec3{1.0, 0.78, 0.45},
	}
}

// WindowGrid is the shared uniform block consumed by every building surface.
type WindowGrid struct {
	cfg Config

	// Live uniform values, read by the renderer each frame.
	Time      float32
	Intensity float32
	Tint      mgl32.Vec3
}

func NewWindowGrid(cfg Config) *WindowGrid {
	return &WindowGrid{cfg: cfg, Tint: cfg.NightTint}
}

// Config returns the grid's art parameters.
func (w *WindowGrid) Config() Config { return w.cfg }

// Update recomputes the shared uniforms for this frame. The global intensity
// eases toward isSunset*sunsetIntensity + isNight*nightIntensity; the tint
// snaps discretely between the sunset and night constants.
func (w *WindowGrid) Update(weights environment.Weights, dt, clock float64) {
	target := weights.Sunset*w.cfg.SunsetIntensity + weights.Night*w.cfg.NightIntensity
	w.Intensity = environment.SmoothTowards(w.Intensity, target, w.cfg.SmoothRate, dt)
	if weights.Sunset > 0.5 {
		w.Tint = w.cfg.SunsetTint
	} else {
		w.Tint = w.cfg.NightTint
	}
	w.Time = float32(clock)
}

// IntensityTarget exposes the raw (unsmoothed) intensity target.
func (w *WindowGrid) IntensityTarget(weights environment.Weights) float32 {
	return weights.Sunset*w.cfg.SunsetIntensity + weights.Night*w.cfg.NightIntensity
}

// CellHash mirrors the shader's per-cell hash: fract(sin(dot(cell, k))*43758.5453).
// Same cell coordinates always hash to the same value, so lit/unlit decisions
// are stable across frames while the flicker phase varies per cell.
func CellHash(ix, iy float32) float32 {
	s := math.Sin(float64(ix)*127.1 + float64(iy)*311.7)
	v := s * 43758.5453123
	return float32(v - math.Floor(v))
}

// CellLit reports whether the window in the given grid cell is switched on.
func (w *WindowGrid) CellLit(ix, iy float32) bool {
	return CellHash(ix, iy) <= w.cfg.LitRatio
}

// Flicker is the CPU reference of the shader's soft per-cell flicker:
// a sine of global time offset by the cell's hash phase.
func Flicker(clock float64, hash float32) float32 {
	return 0.75 + 0.25*float32(math.Sin(clock*1.5+float64(hash)*2*math.Pi))
}
