package main

import (
	"math"
	"os"
	"path/filepath"

	mgl "github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/fumi-217/acg-tokyo-tower/internal/engine"
	"github.com/fumi-217/acg-tokyo-tower/internal/environment"
	"github.com/fumi-217/acg-tokyo-tower/internal/loader"
	"github.com/fumi-217/acg-tokyo-tower/internal/logger"
	"github.com/fumi-217/acg-tokyo-tower/internal/renderer"
	"github.com/fumi-217/acg-tokyo-tower/internal/scene"
)

func main() {
	e := engine.New(1280, 720, "harbor at dusk")
	if err := e.Init(); err != nil {
		logger.Log.Fatal("engine init failed", zap.Error(err))
	}

	buildScene(e)
	e.SetMode(environment.ModeDay)
	e.Run()
}

func buildScene(e *engine.Engine) {
	rend := e.Renderer()

	addWater(rend)
	addBuildings(e)
	addTower(e)
	addBridge(e)
	addYacht(e)

	logger.Log.Info("scene built", zap.Int("roles", e.Registry.Len()))
}

func addWater(rend renderer.Render) {
	water, err := loader.LoadPlane(16000, 0, 0, 64)
	if err != nil {
		logger.Log.Error("water plane failed", zap.Error(err))
		return
	}
	water.SetPosition(0, 0, 0)
	water.SetDiffuseColor(0.02, 0.05, 0.09)
	water.SetSpecularColor(0.9, 0.95, 1.0)
	water.SetMaterialPBR(0.1, 0.15)
	rend.AddModel(water)
}

// addBuildings places the skyline: one instanced box with per-instance
// height, every face carrying the window grid.
func addBuildings(e *engine.Engine) {
	body := findModel("buildings.obj")
	if body == nil {
		body = loader.NewBox(42, 1, 42) // unit height, scaled per instance
	}
	body.SetDiffuseColor(0.05, 0.06, 0.08)
	body.SetSpecularColor(0.2, 0.2, 0.25)
	body.EnableWindowGrid()

	const count = 28
	body.SetInstanceCount(count)
	for i := 0; i < count; i++ {
		// Two rows along the waterfront, deterministic pseudo-random heights
		row := i % 2
		col := i / 2
		h := 90 + 140*hash(float64(i)*7.13)
		x := -420 + float32(col)*65 + 18*hash(float64(i)*3.7)
		z := -520 - float32(row)*130 - 40*hash(float64(i)*11.3)
		body.SetInstanceTransform(i, mgl.Vec3{x, 0, z}, mgl.Vec3{1, h, 1})
	}
	e.Renderer().AddModel(body)
	e.Registry.Add(&scene.Building{Body: body})
}

// addTower builds the landmark tower: body, five tiers of point lights and
// the beacon glow at the tip.
func addTower(e *engine.Engine) {
	const (
		towerHeight = 333.0
		tiers       = 5
	)

	body := findModel("tower.obj")
	if body == nil {
		body = loader.NewPylon(95, 14, towerHeight, 6)
	}
	body.SetPosition(120, 0, -260)
	body.SetDiffuseColor(0.55, 0.12, 0.06)
	body.SetEmissive(mgl.Vec3{1.0, 0.45, 0.15}, 0)
	e.Renderer().AddModel(body)

	tower := &scene.Tower{Body: body}
	for tier := 0; tier < tiers; tier++ {
		y := towerHeight * (0.15 + 0.17*float32(tier))
		spread := 50 * (1 - 0.16*float32(tier))
		var lights []*renderer.Light
		for k := 0; k < 4; k++ {
			angle := float64(k) * math.Pi / 2
			pos := mgl.Vec3{
				body.X() + spread*float32(math.Cos(angle)),
				y,
				body.Z() + spread*float32(math.Sin(angle)),
			}
			light := renderer.CreatePointLight(pos, mgl.Vec3{1.0, 0.42, 0.12}, 0, 120)
			lights = append(lights, light)
			e.Lighting.Points = append(e.Lighting.Points, light)
		}
		tower.Levels = append(tower.Levels, lights)
	}

	glow := renderer.NewSprite(
		mgl.Vec3{body.X(), towerHeight + 12, body.Z()},
		mgl.Vec3{1.0, 0.5, 0.2}, 70)
	glow.Opacity = 0
	e.Renderer().AddSprite(glow)
	tower.Glow = glow

	e.Registry.Add(tower)
}

// addBridge spans the harbor with a lamp string. Lamps stay padded away from
// the deck ends.
func addBridge(e *engine.Engine) {
	const (
		deckLength = 900.0
		deckY      = 40.0
		lampCount  = 10
	)

	deck := loader.NewBox(deckLength, 10, 24)
	deck.SetPosition(-180, deckY, 90)
	deck.SetDiffuseColor(0.12, 0.12, 0.14)
	e.Renderer().AddModel(deck)

	bridge := &scene.Bridge{Deck: deck}
	// Even spacing with half a step of padding at both ends
	step := deckLength / float32(lampCount)
	for i := 0; i < lampCount; i++ {
		x := deck.X() - deckLength/2 + step*(float32(i)+0.5)
		light := renderer.CreatePointLight(
			mgl.Vec3{x, deckY + 18, deck.Z()},
			mgl.Vec3{1.0, 0.75, 0.4}, 0, 60)
		e.Lighting.Points = append(e.Lighting.Points, light)
		bridge.Lamps = append(bridge.Lamps, scene.Lamp{
			Light: light,
			Seed:  float64(i) * 0.618,
		})
	}
	e.Registry.Add(bridge)
}

// addYacht anchors the party boat with its rotating searchlight.
func addYacht(e *engine.Engine) {
	hull := findModel("yacht.obj")
	if hull == nil {
		hull = loader.NewBox(60, 14, 22)
	}
	hull.SetPosition(320, 0, 60)
	hull.SetDiffuseColor(0.85, 0.86, 0.9)
	e.Renderer().AddModel(hull)

	pivot := loader.NewBox(6, 8, 6)
	pivot.SetPosition(hull.X(), 16, hull.Z())
	pivot.SetDiffuseColor(0.3, 0.3, 0.32)
	e.Renderer().AddModel(pivot)

	spot := renderer.CreateSpotLight(
		pivot.Position, mgl.Vec3{0, -0.15, 1},
		mgl.Vec3{1, 1, 1}, 0, 500, 14)
	e.Lighting.Spots = append(e.Lighting.Spots, spot)

	e.Registry.Add(&scene.Yacht{
		Hull:  hull,
		Pivot: pivot,
		Spot:  spot,
	})
}

// findModel looks for an OBJ asset next to the binary and under assets/;
// a miss falls back to the procedural stand-in.
func findModel(name string) *renderer.Model {
	for _, dir := range []string{"assets", "."} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		model, err := loader.LoadModel(path, false)
		if err != nil {
			logger.Log.Warn("asset unreadable, using procedural fallback",
				zap.String("file", path), zap.Error(err))
			return nil
		}
		return model
	}
	logger.Log.Info("asset not found, using procedural fallback", zap.String("file", name))
	return nil
}

// hash maps a seed to a stable value in [0, 1).
func hash(p float64) float32 {
	v := math.Sin(p*12.9898) * 43758.5453123
	return float32(v - math.Floor(v))
}
