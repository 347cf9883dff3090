package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fumi-217/acg-tokyo-tower/internal/logger"
)

func init() {
	logger.Init()
}

const cubeOBJ = `# minimal cube slice
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadModelQuadTriangulation(t *testing.T) {
	path := writeTemp(t, "quad.obj", cubeOBJ)
	model, err := LoadModel(path, false)
	if err != nil {
		t.Fatal(err)
	}

	// One quad becomes two triangles over four unified vertices
	if len(model.Faces) != 6 {
		t.Errorf("face indices = %d, want 6", len(model.Faces))
	}
	if got := len(model.InterleavedData) / 8; got != 4 {
		t.Errorf("unified vertices = %d, want 4", got)
	}
	for _, idx := range model.Faces {
		if int(idx) >= len(model.InterleavedData)/8 {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestLoadModelSharedVerticesUnified(t *testing.T) {
	obj := `v 0 0 0
v 1 0 0
v 0 1 0
v 1 1 0
f 1 2 3
f 2 4 3
`
	path := writeTemp(t, "tris.obj", obj)
	model, err := LoadModel(path, true)
	if err != nil {
		t.Fatal(err)
	}
	// Shared triplets collapse; 6 face slots, 4 vertices
	if got := len(model.InterleavedData) / 8; got != 4 {
		t.Errorf("unified vertices = %d, want 4", got)
	}
	// Recalculated normals on a flat patch point up +Z... the winding here
	// gives -Z; either way they must be unit length
	for i := 0; i < len(model.InterleavedData)/8; i++ {
		nx := model.InterleavedData[i*8+5]
		ny := model.InterleavedData[i*8+6]
		nz := model.InterleavedData[i*8+7]
		lenSq := nx*nx + ny*ny + nz*nz
		if lenSq < 0.99 || lenSq > 1.01 {
			t.Errorf("vertex %d normal not unit length: %f", i, lenSq)
		}
	}
}

func TestLoadModelMissingFile(t *testing.T) {
	if _, err := LoadModel(filepath.Join(t.TempDir(), "missing.obj"), false); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadModelEmpty(t *testing.T) {
	path := writeTemp(t, "empty.obj", "# nothing here\n")
	if _, err := LoadModel(path, false); err == nil {
		t.Error("expected error for OBJ without faces")
	}
}

func TestLoadMaterialsEmissive(t *testing.T) {
	mtl := `newmtl glass
Kd 0.2 0.3 0.4
Ks 1 1 1
Ns 96
Ke 1.0 0.6 0.3
d 0.8
`
	path := writeTemp(t, "scene.mtl", mtl)
	materials := LoadMaterials(path)

	glass, ok := materials["glass"]
	if !ok {
		t.Fatal("material glass not parsed")
	}
	if glass.DiffuseColor != [3]float32{0.2, 0.3, 0.4} {
		t.Errorf("diffuse = %v", glass.DiffuseColor)
	}
	if glass.EmissiveIntensity != 1 {
		t.Errorf("emissive intensity = %f", glass.EmissiveIntensity)
	}
	if glass.Alpha != 0.8 {
		t.Errorf("alpha = %f", glass.Alpha)
	}
}

func TestLoadMaterialsMissingFileFallsBack(t *testing.T) {
	materials := LoadMaterials(filepath.Join(t.TempDir(), "nope.mtl"))
	if _, ok := materials["default"]; !ok {
		t.Error("missing mtl file should still yield the default material")
	}
}

func TestNewBoxGeometry(t *testing.T) {
	box := NewBox(10, 40, 6)

	if got := len(box.InterleavedData) / 8; got != 24 {
		t.Errorf("box vertices = %d, want 24", got)
	}
	if len(box.Faces) != 36 {
		t.Errorf("box indices = %d, want 36", len(box.Faces))
	}
	// Base sits at y=0, top at the full height
	minY, maxY := float32(0), float32(0)
	for i := 0; i < len(box.InterleavedData); i += 8 {
		y := box.InterleavedData[i+1]
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	if minY != 0 || maxY != 40 {
		t.Errorf("box spans y [%f, %f], want [0, 40]", minY, maxY)
	}
}

func TestLoadPlaneCentered(t *testing.T) {
	plane, err := LoadPlane(1000, 50, -30, 16)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(plane.InterleavedData) / 8; got != 16*16 {
		t.Errorf("plane vertices = %d", got)
	}

	var minX, maxX float32 = 1e9, -1e9
	for i := 0; i < len(plane.InterleavedData); i += 8 {
		x := plane.InterleavedData[i]
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}
	if minX != 50-500 || maxX != 50+500 {
		t.Errorf("plane spans x [%f, %f]", minX, maxX)
	}

	if _, err := LoadPlane(100, 0, 0, 1); err == nil {
		t.Error("resolution below 2 should error")
	}
}

func TestNewPylonTapers(t *testing.T) {
	pylon := NewPylon(80, 10, 300, 5)

	if len(pylon.Faces)%3 != 0 {
		t.Errorf("pylon indices %d not triangles", len(pylon.Faces))
	}
	// Horizontal extent shrinks with height
	var baseMax, topMax float32
	for i := 0; i < len(pylon.InterleavedData); i += 8 {
		x, y, z := pylon.InterleavedData[i], pylon.InterleavedData[i+1], pylon.InterleavedData[i+2]
		r := x*x + z*z
		if y == 0 && r > baseMax {
			baseMax = r
		}
		if y == 300 && r > topMax {
			topMax = r
		}
	}
	if topMax >= baseMax {
		t.Errorf("pylon does not taper: base %f top %f", baseMax, topMax)
	}
}
