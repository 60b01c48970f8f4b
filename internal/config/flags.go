package config

import "flag"

var (
	flagConfig        = flag.String("config", "", "Path to config file")
	flagDebug         = flag.Bool("debug", false, "Enable debug logging")
	flagOrtho         = flag.Bool("ortho", false, "Use an orthographic observer projection")
	flagWidth         = flag.Int("width", 0, "Window width")
	flagHeight        = flag.Int("height", 0, "Window height")
	flagFrames        = flag.Uint64("frames", 0, "Stop after this many frames (0 = run until closed)")
	flagScreenshotDir = flag.String("screenshot-dir", "", "Directory for F12 screenshots")
	flagWriteConfig   = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the path given via --write-config, if any.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOrtho {
		cfg.Projection.Mode = "ortho"
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagFrames > 0 {
		cfg.Run.MaxFrames = *flagFrames
	}
	if *flagScreenshotDir != "" {
		cfg.Screenshots.Dir = *flagScreenshotDir
	}
}
