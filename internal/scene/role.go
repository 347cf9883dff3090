// Package scene tags renderable objects with animation roles and keeps them
// in an explicit registry. Animators iterate the registry's typed slices;
// nothing ever walks a scene graph looking for names.
package scene

import (
	"github.com/fumi-217/acg-tokyo-tower/internal/renderer"
)

// Role is the closed set of animated object kinds. The unexported method
// keeps the set sealed to this package's variants.
type Role interface {
	roleName() string
}

// Tower is the landmark tower: a body mesh with pulsing emissive trusswork,
// tiers of point lights and a beacon glow sprite at the antenna tip.
type Tower struct {
	Body   *renderer.Model
	Levels [][]*renderer.Light // tier lights, index 0 at the base
	Glow   *renderer.Sprite

	// GlowState is the low-passed glow drive. Owned by the tower animator.
	GlowState float32
}

func (*Tower) roleName() string { return "tower" }

// Lamp is one bridge lamp. Seed decorrelates its flicker from its neighbors.
type Lamp struct {
	Light *renderer.Light
	Seed  float64
}

// Bridge carries a string of lamps along the deck.
type Bridge struct {
	Deck  *renderer.Model
	Lamps []Lamp
}

func (*Bridge) roleName() string { return "bridge" }

// Building is a window-grid surface. It has no per-frame animator; the
// shared emissive context drives every building at once.
type Building struct {
	Body *renderer.Model
}

func (*Building) roleName() string { return "building" }

// Yacht is the party boat: a hull, a rotating searchlight pivot and the
// spot light aimed along the pivot's heading.
type Yacht struct {
	Hull  *renderer.Model
	Pivot *renderer.Model
	Spot  *renderer.Light

	// Animator state: current heading in degrees and the low-passed
	// night blend that gates the searchlight.
	HeadingDeg float32
	NightMix   float32
}

func (*Yacht) roleName() string { return "yacht" }
