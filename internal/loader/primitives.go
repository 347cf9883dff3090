package loader

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/fumi-217/acg-tokyo-tower/internal/renderer"
)

// NewBox builds an axis-aligned box centered on the origin with its base at
// y=0, using per-face normals so the window grid reads clean wall planes.
func NewBox(width, height, depth float32) *renderer.Model {
	hw, hd := width/2, depth/2

	type quad struct {
		corners [4]mgl32.Vec3
		normal  mgl32.Vec3
	}
	quads := []quad{
		{ // +Z
			[4]mgl32.Vec3{{-hw, 0, hd}, {hw, 0, hd}, {hw, height, hd}, {-hw, height, hd}},
			mgl32.Vec3{0, 0, 1},
		},
		{ // -Z
			[4]mgl32.Vec3{{hw, 0, -hd}, {-hw, 0, -hd}, {-hw, height, -hd}, {hw, height, -hd}},
			mgl32.Vec3{0, 0, -1},
		},
		{ // +X
			[4]mgl32.Vec3{{hw, 0, hd}, {hw, 0, -hd}, {hw, height, -hd}, {hw, height, hd}},
			mgl32.Vec3{1, 0, 0},
		},
		{ // -X
			[4]mgl32.Vec3{{-hw, 0, -hd}, {-hw, 0, hd}, {-hw, height, hd}, {-hw, height, -hd}},
			mgl32.Vec3{-1, 0, 0},
		},
		{ // top
			[4]mgl32.Vec3{{-hw, height, hd}, {hw, height, hd}, {hw, height, -hd}, {-hw, height, -hd}},
			mgl32.Vec3{0, 1, 0},
		},
		{ // bottom
			[4]mgl32.Vec3{{-hw, 0, -hd}, {hw, 0, -hd}, {hw, 0, hd}, {-hw, 0, hd}},
			mgl32.Vec3{0, -1, 0},
		},
	}

	var positions, normals []mgl32.Vec3
	var indices []int32
	for _, q := range quads {
		base := int32(len(positions))
		for _, c := range q.corners {
			positions = append(positions, c)
			normals = append(normals, q.normal)
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return renderer.CreateModel(positions, normals, indices)
}

// LoadPlane builds a flat grid centered on (centerX, 0, centerZ). The harbor
// uses it for the water surface.
func LoadPlane(size float32, centerX, centerZ float32, resolution int) (*renderer.Model, error) {
	if resolution < 2 {
		return nil, errors.New("resolution must be at least 2")
	}

	positions := make([]mgl32.Vec3, 0, resolution*resolution)
	normals := make([]mgl32.Vec3, 0, resolution*resolution)
	indices := make([]int32, 0, (resolution-1)*(resolution-1)*6)

	step := size / float32(resolution-1)
	startX := centerX - size*0.5
	startZ := centerZ - size*0.5

	for x := 0; x < resolution; x++ {
		for z := 0; z < resolution; z++ {
			positions = append(positions, mgl32.Vec3{
				startX + float32(x)*step,
				0,
				startZ + float32(z)*step,
			})
			normals = append(normals, mgl32.Vec3{0, 1, 0})
		}
	}

	for x := 0; x < resolution-1; x++ {
		for z := 0; z < resolution-1; z++ {
			topLeft := int32(x*resolution + z)
			topRight := topLeft + 1
			bottomLeft := int32((x+1)*resolution + z)
			bottomRight := bottomLeft + 1

			indices = append(indices, topLeft, bottomLeft, bottomRight, topLeft, bottomRight, topRight)
		}
	}

	return renderer.CreateModel(positions, normals, indices), nil
}

// NewPylon builds a tapering four-sided tower body: a stack of box frustum
// segments narrowing toward the top. Good enough for the landmark silhouette
// when the OBJ asset is unavailable.
func NewPylon(baseWidth, topWidth, height float32, segments int) *renderer.Model {
	if segments < 1 {
		segments = 1
	}

	var positions, normals []mgl32.Vec3
	var indices []int32

	for s := 0; s < segments; s++ {
		t0 := float32(s) / float32(segments)
		t1 := float32(s+1) / float32(segments)
		w0 := (baseWidth + (topWidth-baseWidth)*t0) / 2
		w1 := (baseWidth + (topWidth-baseWidth)*t1) / 2
		y0 := height * t0
		y1 := height * t1

		sides := [][2]mgl32.Vec3{
			{{0, 0, 1}, {1, 0, 0}},   // +Z face: normal, tangent
			{{0, 0, -1}, {-1, 0, 0}}, // -Z
			{{1, 0, 0}, {0, 0, -1}},  // +X
			{{-1, 0, 0}, {0, 0, 1}},  // -X
		}
		for _, side := range sides {
			n, tan := side[0], side[1]
			base := int32(len(positions))
			corners := []mgl32.Vec3{
				n.Mul(w0).Sub(tan.Mul(w0)).Add(mgl32.Vec3{0, y0, 0}),
				n.Mul(w0).Add(tan.Mul(w0)).Add(mgl32.Vec3{0, y0, 0}),
				n.Mul(w1).Add(tan.Mul(w1)).Add(mgl32.Vec3{0, y1, 0}),
				n.Mul(w1).Sub(tan.Mul(w1)).Add(mgl32.Vec3{0, y1, 0}),
			}
			for _, c := range corners {
				positions = append(positions, c)
				normals = append(normals, n)
			}
			indices = append(indices, base, base+1, base+2, base, base+2, base+3)
		}
	}
	return renderer.CreateModel(positions, normals, indices)
}
