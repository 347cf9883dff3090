// Package animator holds the per-role light update functions. Each role has
// one pure-ish Update function taking the role object and the frame context;
// the System composes them in a fixed order for the frame driver.
package animator

import (
	"github.com/fumi-217/acg-tokyo-tower/internal/environment"
	"github.com/fumi-217/acg-tokyo-tower/internal/renderer"
	"github.com/fumi-217/acg-tokyo-tower/internal/scene"
)

// Context carries the shared per-frame inputs.
type Context struct {
	Weights environment.Weights
	Clock   float64 // seconds since the scene started
	Dt      float64 // seconds since the previous frame
}

// System runs every animator against the registry once per frame.
type System struct {
	Registry *scene.Registry
	Stars    *renderer.StarField
}

func NewSystem(registry *scene.Registry, stars *renderer.StarField) *System {
	return &System{Registry: registry, Stars: stars}
}

// Update advances all animated objects. Order is fixed: tower, bridges,
// yachts, stars.
func (s *System) Update(env *environment.Engine, clock, dt float64) {
	ctx := Context{Weights: env.BlendWeights(), Clock: clock, Dt: dt}

	UpdateTower(s.Registry.Tower(), ctx)
	for _, bridge := range s.Registry.Bridges() {
		UpdateBridge(bridge, ctx)
	}
	for _, yacht := range s.Registry.Yachts() {
		UpdateYacht(yacht, ctx)
	}
	UpdateStars(s.Stars, env.Current(), clock)
}
