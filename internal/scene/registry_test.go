package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/fumi-217/acg-tokyo-tower/internal/logger"
	"github.com/fumi-217/acg-tokyo-tower/internal/renderer"
)

func init() {
	logger.Init()
}

func TestRegistryGroupsByRole(t *testing.T) {
	r := NewRegistry()

	tower := &Tower{}
	r.Add(tower)
	r.Add(&Bridge{Lamps: []Lamp{{Light: renderer.CreatePointLight(
		mgl32.Vec3{0, 10, 0}, mgl32.Vec3{1, 0.8, 0.5}, 1, 40)}}})
	r.Add(&Building{})
	r.Add(&Building{})
	r.Add(&Yacht{})

	if r.Tower() != tower {
		t.Error("tower accessor should return the registered tower")
	}
	if len(r.Bridges()) != 1 {
		t.Errorf("bridges = %d", len(r.Bridges()))
	}
	if len(r.Buildings()) != 2 {
		t.Errorf("buildings = %d", len(r.Buildings()))
	}
	if len(r.Yachts()) != 1 {
		t.Errorf("yachts = %d", len(r.Yachts()))
	}
	if r.Len() != 5 {
		t.Errorf("registry length = %d", r.Len())
	}
}

func TestRegistrySecondTowerReplaces(t *testing.T) {
	r := NewRegistry()
	first := &Tower{}
	second := &Tower{}
	r.Add(first)
	r.Add(second)

	if r.Tower() != second {
		t.Error("second tower should replace the first")
	}
	if r.Len() != 1 {
		t.Errorf("registry length = %d, want 1", r.Len())
	}
}

func TestEmptyRegistry(t *testing.T) {
	r := NewRegistry()
	if r.Tower() != nil {
		t.Error("empty registry should have no tower")
	}
	if r.Len() != 0 {
		t.Errorf("registry length = %d", r.Len())
	}
}
