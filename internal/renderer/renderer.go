package renderer

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/fumi-217/acg-tokyo-tower/internal/emissive"
)

var Debug bool = false
var FaceCullingEnabled bool = false
var DepthTestEnabled bool = true

// MaxPointLights bounds the point light uniform arrays in the scene shader.
// Tower levels (5x4) plus bridge lamps fit well inside it.
const MaxPointLights = 64

type LightKind int

const (
	DIRECTIONAL_LIGHT LightKind = iota
	POINT_LIGHT
	SPOT_LIGHT
)

// Light is one renderer-owned light. Animators mutate Intensity and Color
// in place every frame; the renderer only reads.
type Light struct {
	Kind      LightKind
	Position  mgl32.Vec3
	Direction mgl32.Vec3 // directional and spot lights
	Color     mgl32.Vec3
	Intensity float32
	Range     float32 // point and spot falloff distance
	CutoffDeg float32 // spot cone half-angle, degrees
}

// CreateDirectionalLight creates a sun-style light.
func CreateDirectionalLight(direction mgl32.Vec3, color mgl32.Vec3, intensity float32) *Light {
	return &Light{
		Kind:      DIRECTIONAL_LIGHT,
		Direction: direction.Normalize(),
		Color:     color,
		Intensity: intensity,
	}
}

// CreatePointLight creates a point light with a falloff range.
func CreatePointLight(position mgl32.Vec3, color mgl32.Vec3, intensity float32, lightRange float32) *Light {
	return &Light{
		Kind:      POINT_LIGHT,
		Position:  position,
		Color:     color,
		Intensity: intensity,
		Range:     lightRange,
	}
}

// CreateSpotLight creates a cone light aimed along direction.
func CreateSpotLight(position, direction mgl32.Vec3, color mgl32.Vec3, intensity, lightRange, cutoffDeg float32) *Light {
	return &Light{
		Kind:      SPOT_LIGHT,
		Position:  position,
		Direction: direction.Normalize(),
		Color:     color,
		Intensity: intensity,
		Range:     lightRange,
		CutoffDeg: cutoffDeg,
	}
}

// HemisphereLight is a two-color gradient fill light: sky tint from above,
// ground tint from below.
type HemisphereLight struct {
	SkyColor    mgl32.Vec3
	GroundColor mgl32.Vec3
	Intensity   float32
}

// Fog is exponential distance fog. Enabled follows density > 0.
type Fog struct {
	Enabled bool
	Density float32
	Color   mgl32.Vec3
}

// Lighting aggregates everything the scene shader needs for one frame.
// The atmosphere binder rewrites it from the live snapshot; rebinding twice
// with the same snapshot produces identical renderer state.
type Lighting struct {
	Exposure   float32
	Ambient    float32
	Sun        Light
	Hemisphere HemisphereLight
	Fog        Fog
	Points     []*Light
	Spots      []*Light
}

// NewLighting returns a neutral lighting block.
func NewLighting() *Lighting {
	return &Lighting{
		Exposure: 1.0,
		Ambient:  0.1,
		Sun:      *CreateDirectionalLight(mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 1, 1}, 1.0),
		Hemisphere: HemisphereLight{
			SkyColor:    mgl32.Vec3{0.6, 0.7, 1.0},
			GroundColor: mgl32.Vec3{0.3, 0.3, 0.3},
			Intensity:   0.5,
		},
	}
}

type Render interface {
	Init(width, height int32, window *glfw.Window)
	Render(camera Camera, lighting *Lighting)
	AddModel(model *Model)
	RemoveModel(model *Model)
	AddSprite(sprite *Sprite)
	SetSkyDome(dome *SkyDome)
	SetStarField(stars *StarField)
	SetWindowGrid(windows *emissive.WindowGrid)
	UpdateViewport(width, height int32)
	Cleanup()
}
