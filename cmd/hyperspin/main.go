// Package main is the entry point for the hyperspin viewer.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/voxfell/hyperspin/internal/app"
	"github.com/voxfell/hyperspin/internal/config"
	"github.com/voxfell/hyperspin/internal/engine/canvas"
	"github.com/voxfell/hyperspin/internal/logger"
	"github.com/voxfell/hyperspin/internal/render"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== hyperspin ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	seed := cfg.Scene.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	scene, err := render.NewScene(cfg.Scene.Dimension, seed)
	if err != nil {
		logger.Error("failed to create scene", zap.Error(err))
		os.Exit(1)
	}
	scene.EdgeShading = cfg.Scene.EdgeShading
	scene.FaceFill = cfg.Scene.FaceFill

	// Headless export renders without a window and exits.
	if export := config.ExportRequest(); export.Path != "" {
		surf := canvas.New(cfg.Display.Width, cfg.Display.Height, canvas.DefaultStyle())
		defer surf.Close()

		logger.Info("rendering GIF",
			zap.String("path", export.Path),
			zap.Int("frames", export.Frames),
			zap.Int("fps", export.FPS),
		)
		opts := render.ExportOptions{Path: export.Path, Frames: export.Frames, FPS: export.FPS}
		if err := render.ExportGIF(scene, surf, opts); err != nil {
			logger.Error("export failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("export finished", zap.String("path", export.Path))
		return
	}

	// Persist the last-selected dimension across sessions.
	saveDimension := func(dim int) error {
		cfg.Scene.Dimension = dim
		return cfg.Save()
	}

	a, err := app.New(app.Config{
		Title:      "hyperspin",
		Width:      cfg.Display.Width,
		Height:     cfg.Display.Height,
		Fullscreen: cfg.Display.Fullscreen,
		VSync:      cfg.Display.VSync,
	}, scene, saveDimension)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
