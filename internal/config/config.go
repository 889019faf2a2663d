// Package config handles scene and run configuration.
package config

// Config holds all run settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Viewing  ViewingConfig  `yaml:"viewing"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Scene    SceneConfig    `yaml:"scene"`
	Lights   []Light        `yaml:"lights"`
	Material MaterialConfig `yaml:"material"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds the framebuffer size and display settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	Scale  int    `yaml:"scale"` // Display pixels per framebuffer pixel
	FPS    int    `yaml:"fps"`
}

// ViewingConfig holds the camera and projection.
type ViewingConfig struct {
	Eye        [3]float64 `yaml:"eye"`
	Target     [3]float64 `yaml:"target"`
	Up         [3]float64 `yaml:"up"`
	Projection string     `yaml:"projection"` // "perspective" or "ortho"
	FOV        float64    `yaml:"fov"`        // Vertical, degrees
	Aspect     float64    `yaml:"aspect"`     // 0 uses width/height
	Near       float64    `yaml:"near"`
	Far        float64    `yaml:"far"`
	// Ortho bounds: left, right, bottom, top
	Ortho [4]float64 `yaml:"ortho"`
}

// PipelineConfig holds the render state switches.
type PipelineConfig struct {
	Culling        bool   `yaml:"culling"`
	Clipping       bool   `yaml:"clipping"`
	ZBuffer        bool   `yaml:"zbuffer"`
	Wireframe      bool   `yaml:"wireframe"`
	WireframeColor string `yaml:"wireframe_color"` // #RRGGBB
	Texture        string `yaml:"texture"`         // "", "checker" or an image path
	TextureMode    string `yaml:"texture_mode"`    // "modulate" or "decal"
}

// SceneConfig selects what is drawn.
type SceneConfig struct {
	Model      string  `yaml:"model"`      // "cube" or a .gltf/.glb path
	Size       float64 `yaml:"size"`       // Half extent the model is scaled to
	Spin       float64 `yaml:"spin"`       // Target spin speed, degrees per second
	Background string  `yaml:"background"` // #RRGGBB
}

// MaterialConfig holds the gray reflectances of the default material.
type MaterialConfig struct {
	Ambient   float64 `yaml:"ambient"`
	Diffuse   float64 `yaml:"diffuse"`
	Specular  float64 `yaml:"specular"`
	Shininess float64 `yaml:"shininess"`
}

// OutputConfig selects the presenter.
type OutputConfig struct {
	Mode   string `yaml:"mode"`   // "terminal", "window" or "png"
	Dir    string `yaml:"dir"`    // PNG output directory
	Frames int    `yaml:"frames"` // Stop after this many frames; 0 runs until quit
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the demo scene: a cube seen from (400,300,500) under one
// white directional light.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 400,
			Title:  "scanline",
			Scale:  1,
			FPS:    30,
		},
		Viewing: ViewingConfig{
			Eye:        [3]float64{400, 300, 500},
			Target:     [3]float64{0, 0, 0},
			Up:         [3]float64{0, 1, 0},
			Projection: "perspective",
			FOV:        45,
			Aspect:     2,
			Near:       200,
			Far:        1000,
		},
		Pipeline: PipelineConfig{
			Culling:        true,
			Clipping:       true,
			ZBuffer:        true,
			WireframeColor: "#FFFFFF",
			TextureMode:    "modulate",
		},
		Scene: SceneConfig{
			Model:      "cube",
			Size:       100,
			Spin:       45,
			Background: "#000000",
		},
		Lights: []Light{{
			Kind:      "directional",
			Direction: [3]float64{0, 0, -1},
			Diffuse:   [4]float64{1, 1, 1, 1},
			Specular:  [4]float64{1, 1, 1, 1},
		}},
		Material: MaterialConfig{
			Ambient:   0,
			Diffuse:   0.4,
			Specular:  0.6,
			Shininess: 0,
		},
		Output: OutputConfig{
			Mode: "terminal",
			Dir:  "frames",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
