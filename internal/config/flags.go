package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagWidth     = flag.Int("width", 0, "Framebuffer width")
	flagHeight    = flag.Int("height", 0, "Framebuffer height")
	flagMode      = flag.String("mode", "", "Output: terminal, window or png")
	flagOut       = flag.String("out", "", "PNG output directory")
	flagFrames    = flag.Int("frames", -1, "Stop after this many frames (0 runs until quit)")
	flagModel     = flag.String("model", "", "Model: cube or a .gltf/.glb path")
	flagTexture   = flag.String("texture", "", "Texture: checker or an image path")
	flagWireframe = flag.Bool("wireframe", false, "Draw polygon outlines only")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagMode != "" {
		cfg.Output.Mode = *flagMode
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagFrames >= 0 {
		cfg.Output.Frames = *flagFrames
	}
	if *flagModel != "" {
		cfg.Scene.Model = *flagModel
	}
	if *flagTexture != "" {
		cfg.Pipeline.Texture = *flagTexture
	}
	if *flagWireframe {
		cfg.Pipeline.Wireframe = true
	}
}
