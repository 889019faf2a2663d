package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/taigrr/scanline/internal/config"
	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/models"
	"github.com/taigrr/scanline/pkg/render"
)

// scene is everything one frame draws. Input handlers change it only
// through commands run at the start of a frame.
type scene struct {
	cfg      *config.Config
	log      *zap.Logger
	mesh     *models.Mesh
	material *render.Material
	lights   []render.Light
	texture  *render.Texture
	bg       uint32
	spin     *spinner

	textureOn bool
	commands  chan func(*scene, *render.Context)
}

func newScene(cfg *config.Config, log *zap.Logger) (*scene, error) {
	mesh, err := loadModel(cfg)
	if err != nil {
		return nil, err
	}

	texture, err := cfg.Pipeline.LoadTexture()
	if err != nil {
		return nil, fmt.Errorf("load texture: %w", err)
	}
	if texture == nil && mesh.Texture != nil {
		texture = mesh.Texture
		log.Info("using embedded texture", zap.Int("width", texture.Width), zap.Int("height", texture.Height))
	}

	lights, err := cfg.Sources()
	if err != nil {
		return nil, err
	}
	bg, err := config.ParseColor(cfg.Scene.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	log.Info("scene loaded",
		zap.String("model", mesh.Name),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("faces", mesh.FaceCount()),
		zap.Int("lights", len(lights)),
	)

	return &scene{
		cfg:       cfg,
		log:       log,
		mesh:      mesh,
		material:  cfg.Material.Material(),
		lights:    lights,
		texture:   texture,
		bg:        bg,
		spin:      newSpinner(cfg.Window.FPS, cfg.Scene.Spin),
		textureOn: texture != nil,
		commands:  make(chan func(*scene, *render.Context), 16),
	}, nil
}

// loadModel builds the configured mesh, centered on the origin and scaled
// so its bounding sphere has radius Scene.Size.
func loadModel(cfg *config.Config) (*models.Mesh, error) {
	if cfg.Scene.Model == "cube" {
		return models.NewCube(cfg.Scene.Size, *cfg.Material.Material()), nil
	}

	switch ext := strings.ToLower(filepath.Ext(cfg.Scene.Model)); ext {
	case ".glb", ".gltf":
	default:
		return nil, fmt.Errorf("unsupported format: %s (use cube, .gltf or .glb)", ext)
	}
	mesh, err := models.LoadGLB(cfg.Scene.Model)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	if r := mesh.Radius(); r > 0 {
		s := cfg.Scene.Size / r
		c := mesh.Center()
		if err := mesh.Transform(math3d.Scale(s, s, s).Mul(math3d.Translate(-c.X, -c.Y, -c.Z))); err != nil {
			return nil, err
		}
	}
	return mesh, nil
}

// send queues a change for the next frame. It drops the change when the
// queue is full.
func (s *scene) send(cmd func(*scene, *render.Context)) {
	select {
	case s.commands <- cmd:
	default:
	}
}

// frame implements render.FrameFunc.
func (s *scene) frame(rc *render.Context) error {
	for len(s.commands) > 0 {
		(<-s.commands)(s, rc)
	}

	rc.Clear(s.bg)
	rc.ClearDepth(1)

	// Lights are placed in world space under the camera transform, before
	// the model turns.
	if err := s.cfg.Viewing.View(rc); err != nil {
		return err
	}
	for _, l := range s.lights {
		if _, err := rc.EnableLight(l); err != nil {
			return err
		}
	}

	if s.textureOn && s.texture != nil {
		rc.EnableTexture(s.texture)
	} else {
		rc.DisableTexture()
	}

	s.spin.Update()
	if err := rc.Rotate(s.spin.Angle, 0, 1, 0); err != nil {
		return err
	}
	return s.mesh.Render(rc, s.material)
}

// Commands bound to keys.

func toggleWireframe(s *scene, rc *render.Context) {
	s.cfg.Pipeline.Wireframe = !s.cfg.Pipeline.Wireframe
	if s.cfg.Pipeline.Wireframe {
		rc.PolygonRenderWireframe()
	} else {
		rc.PolygonRenderFill()
	}
}

func toggleCulling(s *scene, rc *render.Context) {
	s.cfg.Pipeline.Culling = !s.cfg.Pipeline.Culling
	if s.cfg.Pipeline.Culling {
		rc.EnableCulling()
	} else {
		rc.DisableCulling()
	}
}

func toggleTexture(s *scene, _ *render.Context) {
	s.textureOn = !s.textureOn
}

func kick(s *scene, _ *render.Context) {
	s.spin.Impulse(360)
}

func resetSpin(s *scene, _ *render.Context) {
	s.spin.Reset()
}
