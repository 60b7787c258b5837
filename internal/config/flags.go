package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagScene      = flag.String("scene", "", "Path to scene file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and overlay")
	flagBounces    = flag.Int("bounces", 0, "Max bounce count")
	flagRays       = flag.Int("rays", 0, "Rays per pixel")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagSave       = flag.Bool("save-config", false, "Write the effective config to the user config dir")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagScene != "" {
		cfg.Scene.Path = *flagScene
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.DrawOverlay = true
	}
	if *flagBounces > 0 {
		cfg.Render.MaxBounceCount = *flagBounces
	}
	if *flagRays > 0 {
		cfg.Render.NumRaysPerPixel = *flagRays
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
