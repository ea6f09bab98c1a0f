package main

import (
	"flag"
	"fmt"
	"os"

	"GopherLook/internal/config"
	"GopherLook/internal/controls"
	"GopherLook/internal/engine"
	"GopherLook/internal/logger"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "lookdemo.json", "path to the viewer config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Using defaults: %v\n", err)
	}

	viewer := engine.NewViewer(cfg)
	viewer.SetOnReadyCallback(func() {
		hookNotifications(viewer)
	})
	viewer.SetOnUpdateCallback(func(deltaTime float64) {
		walk(viewer, cfg.Controls, float32(deltaTime))
	})

	if err := viewer.Run(-1, -1); err != nil {
		logger.Log.Error("Viewer stopped", zap.Error(err))
		os.Exit(1)
	}
}

func hookNotifications(viewer *engine.Viewer) {
	c := viewer.Controls
	c.AddEventListener(controls.EventLock, func() {
		logger.Log.Info("Mouse look enabled")
	})
	c.AddEventListener(controls.EventUnlock, func() {
		var dir mgl32.Vec3
		c.GetDirection(&dir)
		pos := c.GetObject().Position
		logger.Log.Info("Mouse look released",
			zap.Float32("x", pos.X()), zap.Float32("y", pos.Y()), zap.Float32("z", pos.Z()),
			zap.String("facing", fmt.Sprintf("%.2f", dir)))
	})
}

// walk applies WASD movement. Shift sprints.
func walk(viewer *engine.Viewer, ctl config.ControlsConfig, deltaTime float32) {
	c := viewer.Controls
	if !c.IsLocked() {
		return
	}

	velocity := ctl.MoveSpeed * deltaTime
	if viewer.IsKeyDown(glfw.KeyLeftShift) || viewer.IsKeyDown(glfw.KeyRightShift) {
		velocity *= ctl.SprintFactor
	}

	if viewer.IsKeyDown(glfw.KeyW) {
		c.MoveForward(velocity)
	}
	if viewer.IsKeyDown(glfw.KeyS) {
		c.MoveForward(-velocity)
	}
	if viewer.IsKeyDown(glfw.KeyD) {
		c.MoveRight(velocity)
	}
	if viewer.IsKeyDown(glfw.KeyA) {
		c.MoveRight(-velocity)
	}
}
