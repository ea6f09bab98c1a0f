package engine

import (
	"testing"

	"GopherLook/internal/config"
	"GopherLook/internal/controls"
	"GopherLook/internal/logger"
	"GopherLook/internal/platform"
	"GopherLook/internal/renderer"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubSurface struct {
	doc *platform.Document
}

func (s *stubSurface) RequestPointerLock() { s.doc.GrantPointerLock(s) }

func (s *stubSurface) OwnerDocument() *platform.Document { return s.doc }

func TestNewViewer(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Width = 640
	cfg.Window.Height = 480

	v := NewViewer(cfg)

	if v.Width != 640 || v.Height != 480 {
		t.Errorf("Expected 640x480, got %dx%d", v.Width, v.Height)
	}
	if v.GetWindow() != nil {
		t.Error("Window should not exist before Run")
	}
	if v.IsKeyDown(0) {
		t.Error("No keys can be down without a window")
	}
}

func TestApplyControlsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Controls.PointerSpeed = 0.5
	cfg.Controls.MinPolarAngle = 0.2
	cfg.Controls.MaxPolarAngle = 2.9

	v := NewViewer(cfg)
	cam := renderer.NewDefaultCamera(cfg.Window.Height, cfg.Window.Width)
	v.Controls = controls.NewPointerLockControls(cam, &stubSurface{doc: platform.NewDocument()})
	v.applyControlsConfig()

	if v.Controls.PointerSpeed != 0.5 {
		t.Errorf("Expected pointer speed 0.5, got %f", v.Controls.PointerSpeed)
	}
	if v.Controls.MinPolarAngle != 0.2 || v.Controls.MaxPolarAngle != 2.9 {
		t.Errorf("Unexpected polar limits [%f, %f]", v.Controls.MinPolarAngle, v.Controls.MaxPolarAngle)
	}
}

func TestSetupBuildsControlsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Controls.PointerSpeed = 3

	v := NewViewer(cfg)
	v.setup(&stubSurface{doc: platform.NewDocument()})

	if v.Camera == nil || v.Controls == nil {
		t.Fatal("setup should create camera and controls")
	}
	if v.Controls.GetObject() != v.Camera {
		t.Error("Controls should drive the viewer camera")
	}
	if v.Controls.PointerSpeed != 3 {
		t.Errorf("Expected pointer speed 3, got %f", v.Controls.PointerSpeed)
	}
}

func TestDebugLogsViewOnUnlock(t *testing.T) {
	cfg := config.Default()
	cfg.Debug = true
	v := NewViewer(cfg)

	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.SetLogger(zap.New(core))
	defer logger.SetLogger(prev)

	surface := &stubSurface{doc: platform.NewDocument()}
	v.setup(surface)
	v.Controls.Lock()
	surface.doc.Flush()
	v.Controls.Unlock()
	surface.doc.Flush()

	if logs.FilterMessage("Camera view on release").Len() != 1 {
		t.Errorf("Expected one view log entry, got %v", logs.All())
	}
}
