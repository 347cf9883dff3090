package environment

import (
	"github.com/go-gl/mathgl/mgl32"
)

// transition is a single in-flight interpolation between two snapshots over
// wall-clock time. At most one exists system-wide.
type transition struct {
	from       Snapshot
	to         Snapshot
	start      float64 // seconds, same clock as Advance's now
	durationMs float64
}

// Engine owns the live snapshot and the (at most one) active transition.
// It is mutated only by the frame driver and by explicit mode commands, from
// a single goroutine; no locking discipline is required.
type Engine struct {
	current Snapshot
	active  *transition
	cfg     WeightConfig
}

// NewEngine starts with initial as the live snapshot and no active transition.
func NewEngine(initial Snapshot, cfg WeightConfig) *Engine {
	return &Engine{current: initial, cfg: cfg}
}

// Start begins a transition toward p over the given duration in seconds.
// The from-side is a clone of the live snapshot at call time, and unset preset
// fields inherit the live value, so retargeting mid-flight never produces a
// visible discontinuity.
func (e *Engine) Start(p Preset, seconds float64, now float64) {
	e.active = &transition{
		from:       e.current,
		to:         p.Resolve(e.current),
		start:      now,
		durationMs: seconds * 1000,
	}
}

// Advance moves the live snapshot along the active transition. Time is eased
// with cubic smoothstep before the per-field linear blend. Once elapsed time
// reaches the duration the live snapshot is pinned exactly to the target and
// the transition is cleared.
func (e *Engine) Advance(now float64) {
	tr := e.active
	if tr == nil {
		return
	}
	var t float64
	if tr.durationMs <= 0 {
		t = 1
	} else {
		t = (now - tr.start) * 1000 / tr.durationMs
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
	}
	if t >= 1 {
		e.current = tr.to
		e.active = nil
		return
	}
	eased := float32(t * t * (3 - 2*t))
	e.current = lerpSnapshot(tr.from, tr.to, eased)
}

// Current returns a copy of the live snapshot.
func (e *Engine) Current() Snapshot { return e.current }

// Active reports whether a transition is in flight.
func (e *Engine) Active() bool { return e.active != nil }

// Config returns the weight configuration in use.
func (e *Engine) Config() WeightConfig { return e.cfg }

// BlendWeights evaluates the night/sunset/day weights at the live elevation.
func (e *Engine) BlendWeights() Weights {
	return e.cfg.Evaluate(e.current.Elevation)
}

// SunColor derives the directional light color from the live snapshot:
// the interpolated Kelvin value warmed by the horizon-proximity bias.
func (e *Engine) SunColor() mgl32.Vec3 {
	return KelvinToRGB(e.cfg.BiasedKelvin(e.current.SunKelvin, e.current.Elevation))
}
