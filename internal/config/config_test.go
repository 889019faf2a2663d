package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/render"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 400 {
		t.Errorf("expected 800x400, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Viewing.Eye != [3]float64{400, 300, 500} {
		t.Errorf("unexpected eye %v", cfg.Viewing.Eye)
	}
	if cfg.Viewing.FOV != 45 || cfg.Viewing.Near != 200 || cfg.Viewing.Far != 1000 {
		t.Errorf("unexpected projection %+v", cfg.Viewing)
	}
	if !cfg.Pipeline.Clipping || !cfg.Pipeline.ZBuffer {
		t.Error("expected clipping and z-buffer on by default")
	}
	if len(cfg.Lights) != 1 || cfg.Lights[0].Kind != "directional" {
		t.Errorf("expected one directional light, got %+v", cfg.Lights)
	}
	if cfg.Material != (MaterialConfig{Ambient: 0, Diffuse: 0.4, Specular: 0.6, Shininess: 0}) {
		t.Errorf("unexpected material %+v", cfg.Material)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "scanline.yaml")

	yamlContent := `
window:
  width: 320
  height: 240
viewing:
  projection: ortho
  ortho: [-10, 10, -5, 5]
  near: 1
  far: 20
pipeline:
  culling: false
  texture: checker
  texture_mode: decal
lights:
  - kind: point
    position: [0, 10, 0]
    diffuse: [1, 0.5, 0, 1]
    attenuation: [1, 0.1, 0]
  - kind: spot
    position: [0, 0, 10]
    direction: [0, 0, -1]
    cutoff: 30
output:
  mode: png
  frames: 5
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 320 || cfg.Window.Height != 240 {
		t.Errorf("expected 320x240, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "scanline" {
		t.Errorf("unset field lost its default: title %q", cfg.Window.Title)
	}
	if cfg.Viewing.Projection != "ortho" || cfg.Viewing.Ortho != [4]float64{-10, 10, -5, 5} {
		t.Errorf("unexpected viewing %+v", cfg.Viewing)
	}
	if cfg.Pipeline.Culling || cfg.Pipeline.TextureMode != "decal" {
		t.Errorf("unexpected pipeline %+v", cfg.Pipeline)
	}
	if len(cfg.Lights) != 2 {
		t.Fatalf("expected file lights to replace defaults, got %d", len(cfg.Lights))
	}
	if cfg.Output.Mode != "png" || cfg.Output.Frames != 5 {
		t.Errorf("unexpected output %+v", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config invalid: %v", err)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"zero fps", func(c *Config) { c.Window.FPS = 0 }, "fps 0"},
		{"negative fps", func(c *Config) { c.Window.FPS = -30 }, "fps -30"},
		{"zero scale", func(c *Config) { c.Window.Scale = 0 }, "scale 0"},
		{"near behind far", func(c *Config) { c.Viewing.Near = 2000 }, "depth range"},
		{"bad mode", func(c *Config) { c.Output.Mode = "fax" }, "output mode"},
		{"bad light", func(c *Config) { c.Lights[0].Kind = "laser" }, "unknown light kind"},
		{"bad background", func(c *Config) { c.Scene.Background = "black" }, "background"},
		{"too many lights", func(c *Config) {
			c.Lights = make([]Light, render.MaxLights+1)
			for i := range c.Lights {
				c.Lights[i].Kind = "point"
			}
		}, "exceed the limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestLightSource(t *testing.T) {
	tests := []struct {
		name    string
		light   Light
		want    render.Light
		wantErr bool
	}{
		{
			name:  "point without attenuation",
			light: Light{Kind: "point", Position: [3]float64{1, 2, 3}},
			want:  render.PointLight{Position: math3d.Point(1, 2, 3), Attenuation: render.NoAttenuation},
		},
		{
			name:  "point with attenuation",
			light: Light{Kind: "point", Attenuation: [3]float64{1, 0.5, 0.25}},
			want: render.PointLight{
				Position:    math3d.Point(0, 0, 0),
				Attenuation: render.Attenuation{Constant: 1, Linear: 0.5, Quadratic: 0.25},
			},
		},
		{
			name:  "directional",
			light: Light{Kind: "directional", Direction: [3]float64{0, 0, -1}, Diffuse: [4]float64{1, 1, 1, 1}},
			want: render.DirectionalLight{
				Direction: math3d.Dir(0, 0, -1),
				Colors:    render.LightColors{Diffuse: render.Gray(1, 1)},
			},
		},
		{
			name:  "spot",
			light: Light{Kind: "spot", Direction: [3]float64{0, -1, 0}, Cutoff: 20},
			want: render.SpotLight{
				Position:    math3d.Point(0, 0, 0),
				Direction:   math3d.Dir(0, -1, 0),
				Attenuation: render.NoAttenuation,
				Cutoff:      20,
			},
		},
		{name: "directional without direction", light: Light{Kind: "directional"}, wantErr: true},
		{name: "unknown", light: Light{Kind: "area"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.light.Source()
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Source() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"#FF0000", render.ColorRed, false},
		{"#000000", render.ColorBlack, false},
		{"#00ff00", render.ColorGreen, false},
		{"FF0000", 0, true},
		{"#FFF", 0, true},
		{"#GG0000", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %#08x, want %#08x", tt.in, got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	cfg := Default()
	cfg.Pipeline.Wireframe = true
	rc := render.NewContext(cfg.Window.Width, cfg.Window.Height)

	if err := cfg.Apply(rc); err != nil {
		t.Fatal(err)
	}
	want := math3d.Perspective(45, 2, 200, 1000)
	if !rc.Projection().ApproxEqual(want, 1e-12) {
		t.Errorf("projection = %v, want %v", rc.Projection(), want)
	}

	if err := cfg.Viewing.View(rc); err != nil {
		t.Fatal(err)
	}
	wantView := math3d.LookAt(math3d.Point(400, 300, 500), math3d.Point(0, 0, 0), math3d.Dir(0, 1, 0))
	if !rc.ModelView().ApproxEqual(wantView, 1e-12) {
		t.Errorf("model-view = %v, want %v", rc.ModelView(), wantView)
	}

	// Applying twice does not stack projections.
	if err := cfg.Apply(rc); err != nil {
		t.Fatal(err)
	}
	if !rc.Projection().ApproxEqual(want, 1e-12) {
		t.Error("projection accumulated across Apply calls")
	}

	cfg.Pipeline.TextureMode = "sepia"
	if err := cfg.Apply(rc); err == nil {
		t.Error("expected error for unknown texture mode")
	}
}

func TestPipelineLoadTexture(t *testing.T) {
	tex, err := PipelineConfig{}.LoadTexture()
	if err != nil || tex != nil {
		t.Errorf("no texture: got %v, %v", tex, err)
	}

	tex, err = PipelineConfig{Texture: "checker"}.LoadTexture()
	if err != nil {
		t.Fatal(err)
	}
	if tex.Width != 256 || tex.Height != 256 {
		t.Errorf("checker size %dx%d", tex.Width, tex.Height)
	}

	if _, err := (PipelineConfig{Texture: "/nonexistent.png"}).LoadTexture(); err == nil {
		t.Error("expected error for missing texture file")
	}
}

func TestApplyFlags(t *testing.T) {
	*flagWidth = 640
	*flagMode = "png"
	*flagFrames = 0
	*flagWireframe = true
	defer func() {
		*flagWidth = 0
		*flagMode = ""
		*flagFrames = -1
		*flagWireframe = false
	}()

	cfg := Default()
	cfg.Output.Frames = 10
	applyFlags(cfg)

	if cfg.Window.Width != 640 || cfg.Window.Height != 400 {
		t.Errorf("expected 640x400, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Output.Mode != "png" {
		t.Errorf("expected png mode, got %s", cfg.Output.Mode)
	}
	if cfg.Output.Frames != 0 {
		t.Errorf("explicit -frames 0 not applied, got %d", cfg.Output.Frames)
	}
	if !cfg.Pipeline.Wireframe {
		t.Error("expected wireframe")
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "scanline.yaml")
	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scanline.yaml")
	cfg := Default()
	cfg.Scene.Model = "teapot.glb"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}
	loaded := &Config{}
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, loaded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}
