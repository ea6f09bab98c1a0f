package engine

import (
	"fmt"
	"runtime"

	"GopherLook/internal/config"
	"GopherLook/internal/controls"
	"GopherLook/internal/logger"
	"GopherLook/internal/platform"
	"GopherLook/internal/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Viewer owns the window, the camera and the mouse-look controls, and
// drives the frame loop.
type Viewer struct {
	Width    int32
	Height   int32
	Camera   *renderer.Camera
	Controls *controls.PointerLockControls

	cfg      config.Config
	window   *glfw.Window
	surface  *platform.WindowSurface
	onUpdate func(deltaTime float64) // Called once per frame before drawing
	onReady  func()                  // Called once Camera and Controls exist
}

func NewViewer(cfg config.Config) *Viewer {
	logger.Init()
	if cfg.Debug {
		logger.Log.Info("GopherLook initializing", zap.Any("config", cfg))
	} else {
		logger.Log.Info("GopherLook initializing...")
	}
	return &Viewer{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		cfg:    cfg,
	}
}

// SetOnUpdateCallback sets a callback run every frame with the elapsed time.
func (v *Viewer) SetOnUpdateCallback(callback func(deltaTime float64)) {
	v.onUpdate = callback
}

// SetOnReadyCallback sets a callback run once after Camera and Controls are
// created and before the first frame, so hosts can subscribe to Controls.
func (v *Viewer) SetOnReadyCallback(callback func()) {
	v.onReady = callback
}

// GetWindow returns the GLFW window, nil before Run.
func (v *Viewer) GetWindow() *glfw.Window {
	return v.window
}

func (v *Viewer) IsKeyDown(key glfw.Key) bool {
	return v.window != nil && v.window.GetKey(key) == glfw.Press
}

// Run opens the window at x, y and blocks until it is closed.
func (v *Viewer) Run(x, y int) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(v.Width), int(v.Height), v.cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("could not create glfw window: %w", err)
	}
	v.window = window
	defer v.window.Destroy()

	v.window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("could not initialize OpenGL: %w", err)
	}
	glfw.SwapInterval(1)
	if x >= 0 && y >= 0 {
		v.window.SetPos(x, y)
	}

	v.surface = platform.NewWindowSurface(v.window)
	v.setup(v.surface)
	defer v.Controls.Dispose()

	// Capture needs a user gesture, same as in a browser
	v.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button == glfw.MouseButtonLeft && action == glfw.Press && !v.Controls.IsLocked() {
			v.Controls.Lock()
		}
	})
	v.Controls.AddEventListener(controls.EventLock, func() {
		v.window.SetTitle(v.cfg.Window.Title + " (Esc to release)")
		logger.Log.Debug("Pointer locked")
	})
	v.Controls.AddEventListener(controls.EventUnlock, func() {
		v.window.SetTitle(v.cfg.Window.Title + " (click to look)")
		logger.Log.Debug("Pointer unlocked")
	})
	v.window.SetTitle(v.cfg.Window.Title + " (click to look)")

	if v.onReady != nil {
		v.onReady()
	}

	v.renderLoop()
	logger.Sync()
	return nil
}

// setup builds the camera and the controls bound to surface.
func (v *Viewer) setup(surface platform.Element) {
	v.Camera = renderer.NewDefaultCamera(v.Height, v.Width)
	v.Controls = controls.NewPointerLockControls(v.Camera, surface)
	v.applyControlsConfig()

	if v.cfg.Debug {
		v.Controls.AddEventListener(controls.EventUnlock, v.logView)
	}
}

// logView reports the view matrix in the Vulkan/linmath layout shaders see.
func (v *Viewer) logView() {
	logger.Log.Debug("Camera view on release",
		zap.Any("position", v.Camera.Position),
		zap.Any("view", v.Camera.GetViewMatrixVulkan()))
}

func (v *Viewer) applyControlsConfig() {
	ctl := v.cfg.Controls
	v.Controls.PointerSpeed = ctl.PointerSpeed
	v.Controls.MinPolarAngle = ctl.MinPolarAngle
	v.Controls.MaxPolarAngle = ctl.MaxPolarAngle
}

func (v *Viewer) renderLoop() {
	lastTime := glfw.GetTime()
	lastWidth, lastHeight := v.Width, v.Height
	bg := v.cfg.Window

	for !v.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		width, height := v.window.GetFramebufferSize()
		v.Width, v.Height = int32(width), int32(height)
		if v.Width != lastWidth || v.Height != lastHeight {
			gl.Viewport(0, 0, v.Width, v.Height)
			v.Camera.Resize(v.Width, v.Height)
			lastWidth, lastHeight = v.Width, v.Height
		}

		if v.onUpdate != nil {
			v.onUpdate(deltaTime)
		}

		gl.ClearColor(bg.ClearColorR, bg.ClearColorG, bg.ClearColorB, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		v.window.SwapBuffers()
		v.surface.Poll()
	}
}
