package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagDimension  = flag.Int("dim", 0, "Hypercube dimension (2-4)")
	flagShading    = flag.Bool("shading", false, "Force edge depth shading on")
	flagFaces      = flag.Bool("faces", false, "Force face fill on")
	flagSeed       = flag.Int64("seed", 0, "Rotation velocity seed (0 = random)")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")

	flagGIF    = flag.String("gif", "", "Render an animated GIF to this path and exit")
	flagFrames = flag.Int("frames", 300, "Frame count for -gif")
	flagFPS    = flag.Int("fps", 25, "Frame rate for -gif")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// Export describes the headless GIF export requested on the command line.
// Path is empty when no export was requested.
type Export struct {
	Path   string
	Frames int
	FPS    int
}

// ExportRequest returns the -gif flags.
func ExportRequest() Export {
	return Export{Path: *flagGIF, Frames: *flagFrames, FPS: *flagFPS}
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagDimension > 0 {
		cfg.Scene.Dimension = *flagDimension
	}
	if *flagShading {
		cfg.Scene.EdgeShading = true
	}
	if *flagFaces {
		cfg.Scene.FaceFill = true
	}
	if *flagSeed != 0 {
		cfg.Scene.Seed = *flagSeed
	}
	if *flagWindowed {
		cfg.Display.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Display.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Display.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Display.Height = *flagHeight
	}
}
