// Package viewer runs the interactive gym scene window.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/gym-scene/internal/assets"
	"github.com/Faultbox/gym-scene/internal/config"
	"github.com/Faultbox/gym-scene/internal/engine/bridge"
	"github.com/Faultbox/gym-scene/internal/engine/camera"
	"github.com/Faultbox/gym-scene/internal/engine/debug"
	"github.com/Faultbox/gym-scene/internal/engine/input"
	"github.com/Faultbox/gym-scene/internal/engine/mesh"
	"github.com/Faultbox/gym-scene/internal/engine/renderer"
	"github.com/Faultbox/gym-scene/internal/engine/scene"
	"github.com/Faultbox/gym-scene/internal/engine/shader"
	"github.com/Faultbox/gym-scene/internal/engine/shader/shaders"
	"github.com/Faultbox/gym-scene/internal/engine/texture"
	"github.com/Faultbox/gym-scene/internal/engine/window"
	"github.com/Faultbox/gym-scene/internal/logger"
	"github.com/Faultbox/gym-scene/pkg/math"
)

const title = "Gym Scene"

// Viewer owns the window, the GL resources and the scene.
type Viewer struct {
	config *config.Config
	log    *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	program  *shader.Program
	assets   *assets.Manager
	bridge   *bridge.Bridge
	director *scene.Director
	camera   *camera.OrbitCamera
	shots    *debug.ScreenshotCapture

	running        bool
	wantScreenshot bool
}

// New opens the window and prepares the scene.
func New(cfg *config.Config, def *scene.Definition) (*Viewer, error) {
	v := &Viewer{
		config: cfg,
		log:    logger.Named("viewer"),
	}
	v.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window just created
	w, h := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		ClearColor: [4]float32{0.05, 0.05, 0.07, 1},
	})
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.program, err = shader.NewProgram(shaders.SceneVertex, shaders.SceneFragment)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("scene shader: %w", err)
	}
	v.program.Use()

	v.assets = assets.NewDirManager(cfg.Scene.TextureDirs...)
	if len(v.assets.Roots()) == 0 {
		v.log.Warn("no texture directory found, objects draw in solid colors",
			zap.Strings("texture_dirs", cfg.Scene.TextureDirs))
	}

	var opts []bridge.Option
	if cfg.Scene.DirtyTracking {
		opts = append(opts, bridge.WithDirtyTracking())
	}
	v.bridge = bridge.New(v.program, opts...)

	textures := texture.NewRegistry(v.assets, texture.GLDevice{}, texture.Config{
		FlipVertically: cfg.Scene.FlipVertically,
	})
	v.director = scene.NewDirector(def, textures, v.bridge, mesh.NewGLProvider())
	if err := v.director.Prepare(); err != nil {
		v.Close()
		return nil, fmt.Errorf("preparing scene: %w", err)
	}

	v.camera = newCamera(cfg.Camera)
	v.input = input.New()
	v.shots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "gym")

	v.log.Info("viewer initialized")
	return v, nil
}

func newCamera(cfg config.CameraConfig) *camera.OrbitCamera {
	c := camera.NewOrbitCamera()
	c.Distance = cfg.Distance
	c.Pitch = math.Radians(cfg.Pitch)
	c.Yaw = math.Radians(cfg.Yaw)
	c.FOV = math.Radians(cfg.FOV)
	c.Near = cfg.Near
	c.Far = cfg.Far
	c.Center = math.Vec3{Y: 5}
	if cfg.Orthographic {
		c.SetProjection(camera.Orthographic)
	}
	return c
}

// Run runs the frame loop until the window closes or ESC is pressed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	var minFrame time.Duration
	if v.config.Graphics.FPSLimit > 0 && !v.config.Graphics.VSync {
		minFrame = time.Second / time.Duration(v.config.Graphics.FPSLimit)
	}

	v.log.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			break
		}
		v.handleEvents()
		v.handleHeldKeys(dt)

		if err := v.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Stringer("projection", v.camera.Projection),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if minFrame > 0 {
			if spent := time.Since(now); spent < minFrame {
				time.Sleep(minFrame - spent)
			}
		}
	}

	return nil
}

func (v *Viewer) handleEvents() {
	for _, ev := range v.input.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			w, h := v.window.DrawableSize()
			v.renderer.Resize(w, h)
		case input.EventKeyDown:
			switch ev.Key {
			case sdl.SCANCODE_ESCAPE:
				v.running = false
			case sdl.SCANCODE_P:
				v.camera.SetProjection(camera.Perspective)
			case sdl.SCANCODE_O:
				v.camera.SetProjection(camera.Orthographic)
			case sdl.SCANCODE_F12:
				v.wantScreenshot = true
			}
		case input.EventMouseMove:
			if v.input.IsButtonDown(sdl.BUTTON_LEFT) {
				v.camera.HandleDrag(float32(ev.DeltaX), float32(ev.DeltaY))
			}
		case input.EventMouseWheel:
			v.camera.HandleZoom(float32(ev.DeltaY))
		}
	}
}

// handleHeldKeys pans with WASD and raises or lowers with QE, at a rate
// independent of frame time.
func (v *Viewer) handleHeldKeys(dt float32) {
	var forward, right, up float32
	if v.input.IsKeyDown(sdl.SCANCODE_W) {
		forward++
	}
	if v.input.IsKeyDown(sdl.SCANCODE_S) {
		forward--
	}
	if v.input.IsKeyDown(sdl.SCANCODE_D) {
		right++
	}
	if v.input.IsKeyDown(sdl.SCANCODE_A) {
		right--
	}
	if v.input.IsKeyDown(sdl.SCANCODE_E) {
		up++
	}
	if v.input.IsKeyDown(sdl.SCANCODE_Q) {
		up--
	}
	if forward != 0 || right != 0 || up != 0 {
		scale := dt * 60
		v.camera.HandleMovement(forward*scale, right*scale, up*scale)
	}
}

func (v *Viewer) render() error {
	v.renderer.Begin()

	v.program.Use()
	v.bridge.SetViewProjection(
		v.camera.ViewMatrix(),
		v.camera.ProjectionMatrix(v.renderer.Aspect()),
		v.camera.Position(),
	)
	if err := v.director.Render(); err != nil {
		return err
	}

	if v.wantScreenshot {
		v.wantScreenshot = false
		pixels, w, h := v.renderer.ReadPixels()
		if name, err := v.shots.CaptureFromPixels(pixels, w, h); err != nil {
			v.log.Error("screenshot failed", zap.Error(err))
		} else {
			v.log.Info("screenshot saved", zap.String("file", name))
		}
	}

	v.renderer.End()
	return nil
}

// Close releases the scene and closes the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.director != nil {
		v.director.Close()
	}
	if v.program != nil {
		v.program.Delete()
	}
	if v.assets != nil {
		v.assets.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
