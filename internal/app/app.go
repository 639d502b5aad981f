// Package app implements the main viewer loop: input, clock, render, present.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/voxfell/hyperspin/internal/engine/canvas"
	"github.com/voxfell/hyperspin/internal/engine/debug"
	"github.com/voxfell/hyperspin/internal/engine/input"
	"github.com/voxfell/hyperspin/internal/engine/window"
	"github.com/voxfell/hyperspin/internal/render"
)

// Config holds viewer configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// App is the main viewer instance. It owns the window, the software canvas
// and the scene, and runs the per-frame loop.
type App struct {
	config   Config
	running  bool
	window   *window.Window
	canvas   *canvas.Canvas
	input    *input.Input
	scene    *render.Scene
	renderer *render.Renderer
	shots    *debug.ScreenshotCapture

	// saveDimension persists the last-selected dimension between sessions.
	saveDimension func(dim int) error
}

// New creates the viewer. saveDimension is called with the new dimension
// whenever the user switches; a nil callback disables persistence.
func New(cfg Config, scene *render.Scene, saveDimension func(int) error) (*App, error) {
	slog.Info("initializing viewer",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
		"dimension", scene.Dimension(),
	)

	a := &App{
		config:        cfg,
		scene:         scene,
		renderer:      render.New(),
		saveDimension: saveDimension,
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.canvas = canvas.New(cfg.Width, cfg.Height, canvas.DefaultStyle())
	a.input = input.New()
	a.shots = debug.NewScreenshotCapture("", "hyperspin")

	slog.Info("viewer initialized")
	return a, nil
}

// Run starts the main loop and blocks until quit.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	slog.Info("starting render loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds() * 1000
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}
		if !a.running {
			break
		}

		// 2. Advance the animation clock
		a.scene.Advance(dt)

		// 3. Render into the software canvas
		a.renderer.Frame(a.scene, a.canvas)

		// 4. Present
		pixels, pitch := a.canvas.Pixels()
		w, h := a.canvas.Size()
		if err := a.window.Present(pixels, pitch, w, h); err != nil {
			return fmt.Errorf("present error: %w", err)
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			slog.Debug("fps", "count", frameCount, "dt", fmt.Sprintf("%.2fms", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvent dispatches one input event.
func (a *App) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventQuit:
		a.running = false

	case input.EventWindowResize:
		slog.Debug("resize", "width", event.Width, "height", event.Height)
		a.canvas.Resize(event.Width, event.Height)

	case input.EventDimensionSelect:
		if event.Dimension == a.scene.Dimension() {
			return
		}
		if err := a.scene.SetDimension(event.Dimension); err != nil {
			slog.Warn("dimension change rejected", "error", err)
			return
		}
		slog.Info("dimension changed", "dimension", event.Dimension)
		if a.saveDimension != nil {
			if err := a.saveDimension(event.Dimension); err != nil {
				slog.Warn("failed to persist dimension", "error", err)
			}
		}

	case input.EventToggleShading:
		a.scene.EdgeShading = !a.scene.EdgeShading
		slog.Info("edge shading", "enabled", a.scene.EdgeShading)

	case input.EventToggleFaces:
		a.scene.FaceFill = !a.scene.FaceFill
		slog.Info("face fill", "enabled", a.scene.FaceFill)

	case input.EventScreenshot:
		path, err := a.shots.Capture(a.canvas.Image())
		if err != nil {
			slog.Warn("screenshot failed", "error", err)
			return
		}
		slog.Info("screenshot saved", "path", path)

	case input.EventKeyDown:
		if event.Key == sdl.SCANCODE_ESCAPE {
			a.running = false
		}
	}
}

// Close cleans up viewer resources.
func (a *App) Close() {
	slog.Info("closing viewer")

	if a.canvas != nil {
		_ = a.canvas.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
