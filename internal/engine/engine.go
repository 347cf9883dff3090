// Package engine owns the window, the frame loop and the fixed per-frame
// update order: advance the environment, bind the atmosphere, update the
// window grid, run the animators, then render.
package engine

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/fumi-217/acg-tokyo-tower/internal/animator"
	"github.com/fumi-217/acg-tokyo-tower/internal/atmosphere"
	"github.com/fumi-217/acg-tokyo-tower/internal/emissive"
	"github.com/fumi-217/acg-tokyo-tower/internal/environment"
	"github.com/fumi-217/acg-tokyo-tower/internal/logger"
	"github.com/fumi-217/acg-tokyo-tower/internal/renderer"
	"github.com/fumi-217/acg-tokyo-tower/internal/scene"
)

func init() {
	// GLFW event handling and GL calls must stay on the main OS thread
	runtime.LockOSThread()
}

type Engine struct {
	width  int32
	height int32
	title  string

	window   *glfw.Window
	renderer renderer.Render

	Camera   *renderer.Camera
	Env      *environment.Engine
	Registry *scene.Registry
	Lighting *renderer.Lighting
	Sky      *renderer.SkyDome
	Stars    *renderer.StarField
	Windows  *emissive.WindowGrid
	Binder   *atmosphere.Binder
	SunGlow  *renderer.Sprite

	animators *animator.System

	clock     float64
	lastFrame float64

	mouseHeld  bool
	lastMouseX float64
	lastMouseY float64
}

// New assembles the full scene machinery. No window or GL state is touched
// until Init, so construction is safe in tests.
func New(width, height int, title string) *Engine {
	logger.Init()

	env := environment.NewEngine(environment.DaySnapshot(), environment.DefaultWeightConfig())
	registry := scene.NewRegistry()
	stars := renderer.NewStarField(1600, 9000)
	lighting := renderer.NewLighting()
	sky := renderer.NewSkyDome()
	sunGlow := renderer.NewSprite(mgl32.Vec3{}, mgl32.Vec3{1, 0.95, 0.85}, 900)

	binder := atmosphere.NewBinder(lighting, sky)
	binder.SunGlow = sunGlow

	e := &Engine{
		width:     int32(width),
		height:    int32(height),
		title:     title,
		renderer:  &renderer.OpenGLRenderer{},
		Env:       env,
		Registry:  registry,
		Lighting:  lighting,
		Sky:       sky,
		Stars:     stars,
		Windows:   emissive.NewWindowGrid(emissive.DefaultConfig()),
		Binder:    binder,
		SunGlow:   sunGlow,
		animators: animator.NewSystem(registry, stars),
	}
	return e
}

// Init creates the window and GL context. Call from the main goroutine.
func (e *Engine) Init() error {
	if err := glfw.Init(); err != nil {
		logger.Log.Error("GLFW initialization failed", zap.Error(err))
		return err
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(int(e.width), int(e.height), e.title, nil, nil)
	if err != nil {
		logger.Log.Error("window creation failed", zap.Error(err))
		return err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	e.window = window

	e.renderer.Init(e.width, e.height, window)
	e.renderer.SetSkyDome(e.Sky)
	e.renderer.SetStarField(e.Stars)
	e.renderer.SetWindowGrid(e.Windows)
	e.renderer.AddSprite(e.SunGlow)

	e.Camera = renderer.NewDefaultCamera(e.width, e.height)

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if height == 0 {
			return
		}
		e.renderer.UpdateViewport(int32(width), int32(height))
		e.Camera.SetAspectRatio(float32(width) / float32(height))
	})
	window.SetKeyCallback(e.onKey)
	window.SetMouseButtonCallback(e.onMouseButton)
	window.SetCursorPosCallback(e.onCursorPos)

	logger.Log.Info("engine initialized", zap.String("title", e.title))
	return nil
}

// Renderer exposes the render backend for scene construction.
func (e *Engine) Renderer() renderer.Render { return e.renderer }

// SetMode starts the transition to the given time-of-day preset using its
// art-directed duration. Safe to call mid-transition; the blend restarts
// from the current interpolated state with no visual pop.
func (e *Engine) SetMode(mode environment.Mode) {
	e.Env.Start(mode.Preset(), mode.Duration(), e.clock)
	logger.Log.Info("time of day transition",
		zap.String("mode", mode.String()),
		zap.Float64("seconds", mode.Duration()))
}

func (e *Engine) onKey(window *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.Key1:
		e.SetMode(environment.ModeDay)
	case glfw.Key2:
		e.SetMode(environment.ModeSunset)
	case glfw.Key3:
		e.SetMode(environment.ModeNight)
	case glfw.KeyEscape:
		window.SetShouldClose(true)
	}
}

func (e *Engine) onMouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonRight {
		return
	}
	e.mouseHeld = action == glfw.Press
	if e.mouseHeld {
		e.lastMouseX, e.lastMouseY = e.window.GetCursorPos()
	}
}

func (e *Engine) onCursorPos(_ *glfw.Window, xpos, ypos float64) {
	if !e.mouseHeld {
		return
	}
	dx := float32(xpos - e.lastMouseX)
	dy := float32(e.lastMouseY - ypos)
	e.lastMouseX, e.lastMouseY = xpos, ypos
	e.Camera.ProcessMouseMovement(dx, dy, true)
}

// Step runs one simulation tick without rendering. Exposed so the update
// order stays testable without a GL context.
func (e *Engine) Step(now, dt float64) {
	e.clock = now

	e.Env.Advance(now)
	cameraPos := mgl32.Vec3{}
	if e.Camera != nil {
		cameraPos = e.Camera.Position
	}
	e.Binder.Bind(e.Env, cameraPos)
	e.Windows.Update(e.Env.BlendWeights(), dt, now)
	e.animators.Update(e.Env, now, dt)
}

// Run drives the frame loop until the window closes.
func (e *Engine) Run() {
	e.lastFrame = glfw.GetTime()
	for !e.window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - e.lastFrame
		e.lastFrame = now

		e.Camera.ProcessKeyboard(e.window, float32(dt))
		e.Step(now, dt)
		e.renderer.Render(*e.Camera, e.Lighting)

		e.window.SwapBuffers()
		glfw.PollEvents()
	}
	e.Cleanup()
}

func (e *Engine) Cleanup() {
	e.renderer.Cleanup()
	glfw.Terminate()
	logger.Log.Info("engine shut down")
}
