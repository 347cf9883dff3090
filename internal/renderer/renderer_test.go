package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCreateLightKinds(t *testing.T) {
	sun := CreateDirectionalLight(mgl32.Vec3{0, -2, 0}, mgl32.Vec3{1, 1, 1}, 3.2)
	if sun.Kind != DIRECTIONAL_LIGHT {
		t.Errorf("expected directional light, got %v", sun.Kind)
	}
	if d := sun.Direction.Len(); d < 0.999 || d > 1.001 {
		t.Errorf("direction should be normalized, length %f", d)
	}

	point := CreatePointLight(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 0, 0}, 2.0, 50)
	if point.Kind != POINT_LIGHT || point.Range != 50 {
		t.Errorf("point light misconfigured: %+v", point)
	}

	spot := CreateSpotLight(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{3, 0, 0}, mgl32.Vec3{1, 1, 1}, 5, 200, 12)
	if spot.Kind != SPOT_LIGHT || spot.CutoffDeg != 12 {
		t.Errorf("spot light misconfigured: %+v", spot)
	}
	if d := spot.Direction.Len(); d < 0.999 || d > 1.001 {
		t.Errorf("spot direction should be normalized, length %f", d)
	}
}

func TestCreateModelInterleaving(t *testing.T) {
	positions := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	normals := []mgl32.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}}
	model := CreateModel(positions, normals, []int32{0, 1, 2})

	if len(model.InterleavedData) != 3*8 {
		t.Fatalf("expected 24 floats, got %d", len(model.InterleavedData))
	}
	// Second vertex: position at offset 8, normal at offset 8+5
	if model.InterleavedData[8] != 1 {
		t.Errorf("position x of vertex 1 = %f", model.InterleavedData[8])
	}
	if model.InterleavedData[8+7] != 1 {
		t.Errorf("normal z of vertex 1 = %f", model.InterleavedData[8+7])
	}
}

func TestModelTransformOrder(t *testing.T) {
	model := CreateModel([]mgl32.Vec3{{0, 0, 0}}, nil, []int32{0})
	model.SetScale(2, 2, 2)
	model.SetPosition(10, 0, 0)

	// TRS: scaling must not scale the translation
	origin := model.ModelMatrix.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if origin.X() != 10 {
		t.Errorf("translation scaled, origin at %v", origin)
	}
	unitX := model.ModelMatrix.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if unitX.X() != 12 {
		t.Errorf("scale lost, unit x at %v", unitX)
	}
}

func TestSetEmissiveDoesNotMutateDefaultMaterial(t *testing.T) {
	model := CreateModel([]mgl32.Vec3{{0, 0, 0}}, nil, []int32{0})
	model.Material = DefaultMaterial
	model.SetEmissive(mgl32.Vec3{1, 0, 0}, 2.5)

	if DefaultMaterial.EmissiveIntensity != 0 {
		t.Fatal("shared default material mutated")
	}
	if model.Material.EmissiveIntensity != 2.5 {
		t.Errorf("emissive intensity = %f", model.Material.EmissiveIntensity)
	}
}

func TestSetInstanceTransform(t *testing.T) {
	model := CreateModel([]mgl32.Vec3{{0, 0, 0}}, nil, []int32{0})
	model.SetInstanceCount(4)

	if !model.IsInstanced || len(model.InstanceModelMatrices) != 4 {
		t.Fatalf("instancing misconfigured: count=%d", len(model.InstanceModelMatrices))
	}
	model.SetInstanceTransform(2, mgl32.Vec3{5, 0, -3}, mgl32.Vec3{1, 2, 1})
	pos := model.InstanceModelMatrices[2].Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if pos.X() != 5 || pos.Z() != -3 {
		t.Errorf("instance placed at %v", pos)
	}
	if !model.InstanceMatricesUpdated {
		t.Error("instance update flag not set")
	}

	// Out-of-range indices are ignored
	model.SetInstanceTransform(99, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
}

func TestBuildDomeMeshIndicesInRange(t *testing.T) {
	positions, indices := BuildDomeMesh(4000, 16)
	if len(positions) == 0 || len(indices) == 0 {
		t.Fatal("empty dome mesh")
	}
	if len(indices)%3 != 0 {
		t.Errorf("index count %d not a triangle multiple", len(indices))
	}
	for _, idx := range indices {
		if int(idx) >= len(positions) {
			t.Fatalf("index %d out of range (%d vertices)", idx, len(positions))
		}
	}
	for _, p := range positions {
		r := p.Len()
		if r < 3999 || r > 4001 {
			t.Errorf("dome vertex off the sphere, radius %f", r)
		}
	}
}

func TestStarFieldVerticesDeterministic(t *testing.T) {
	a := NewStarField(256, 9000)
	b := NewStarField(256, 9000)
	va, vb := a.Vertices(), b.Vertices()

	if len(va) != 256*5 {
		t.Fatalf("expected %d floats, got %d", 256*5, len(va))
	}
	for i := range va {
		if va[i] != vb[i] {
			t.Fatalf("star generation not deterministic at %d", i)
		}
	}
	// All stars on the upper hemisphere sphere
	for i := 0; i < len(va); i += 5 {
		p := mgl32.Vec3{va[i], va[i+1], va[i+2]}
		r := p.Len()
		if r < 8999 || r > 9001 {
			t.Errorf("star %d off the sphere, radius %f", i/5, r)
		}
	}
}

func TestUniformCacheIndexedName(t *testing.T) {
	uc := NewUniformCache(0)
	if got := uc.IndexedName("pointColors", 3); got != "pointColors[3]" {
		t.Errorf("IndexedName = %q", got)
	}
	// Cached lookups return the same string
	first := uc.IndexedName("pointRanges", 0)
	second := uc.IndexedName("pointRanges", 0)
	if first != second || first != "pointRanges[0]" {
		t.Errorf("cached indexed name mismatch: %q vs %q", first, second)
	}
}

func TestUnwindRunsInReverse(t *testing.T) {
	var order []int
	var u Unwind
	u.Add(func() { order = append(order, 1) })
	u.Add(func() { order = append(order, 2) })
	u.Unwind()

	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Errorf("cleanup order %v", order)
	}
	u.Unwind() // drained, should be a no-op
	if len(order) != 2 {
		t.Error("unwind ran cleanups twice")
	}
}
