package models

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/render"
)

// ErrNoGeometry is returned when a file contains no triangle primitives.
var ErrNoGeometry = errors.New("models: no triangle geometry")

// ErrIndexOutOfRange is returned when a primitive references a vertex it
// does not have.
var ErrIndexOutOfRange = errors.New("models: vertex index out of range")

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// Options
	CalculateNormals bool // Compute smooth normals when the file has none
	LoadTexture      bool // Decode the first base color texture
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		CalculateNormals: true,
		LoadTexture:      true,
	}
}

// LoadGLB loads a GLTF or binary GLTF (.glb) file with default options.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns a Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))
	for _, mat := range doc.Materials {
		mesh.Materials = append(mesh.Materials, convertMaterial(mat))
	}

	hasNormals := true
	for _, m := range doc.Meshes {
		ok, err := l.processMesh(doc, m, mesh)
		if err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
		hasNormals = hasNormals && ok
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoGeometry)
	}

	if l.CalculateNormals && !hasNormals {
		mesh.CalculateSmoothNormals()
	}

	if l.LoadTexture {
		tex, err := baseColorTexture(doc, filepath.Dir(path))
		if err != nil {
			return nil, fmt.Errorf("load texture: %w", err)
		}
		mesh.Texture = tex
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// processMesh appends the triangles of every primitive to mesh. It reports
// whether all primitives carried normals.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) (bool, error) {
	hasNormals := true
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return false, fmt.Errorf("read positions: %w", err)
		}

		var normals [][3]float32
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			if err != nil {
				return false, fmt.Errorf("read normals: %w", err)
			}
		} else {
			hasNormals = false
		}

		var uvs [][2]float32
		if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
			uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
			if err != nil {
				return false, fmt.Errorf("read uvs: %w", err)
			}
		}

		baseVertex := len(mesh.Vertices)
		for i, p := range positions {
			v := render.Vertex{
				Position: math3d.Point(float64(p[0]), float64(p[1]), float64(p[2])),
			}
			if i < len(normals) {
				n := normals[i]
				v.Normal = math3d.Dir(float64(n[0]), float64(n[1]), float64(n[2]))
			}
			if i < len(uvs) {
				// Both use a top-left origin with v growing downward
				v.TexCoord = math3d.V2(float64(uvs[i][0]), float64(uvs[i][1]))
			}
			mesh.Vertices = append(mesh.Vertices, v)
		}

		material := -1
		if prim.Material != nil {
			material = *prim.Material
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return false, fmt.Errorf("read indices: %w", err)
			}
		} else {
			// No indices, assume sequential triangles
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i, idx := range indices {
			if int(idx) >= len(positions) {
				return false, fmt.Errorf("index %d at %d: %w", idx, i, ErrIndexOutOfRange)
			}
		}

		// GLTF front faces are counter-clockwise, as in the pipeline
		for i := 0; i+2 < len(indices); i += 3 {
			mesh.Faces = append(mesh.Faces, Face{
				V: []int{
					baseVertex + int(indices[i]),
					baseVertex + int(indices[i+1]),
					baseVertex + int(indices[i+2]),
				},
				Material: material,
			})
		}
	}

	return hasNormals, nil
}

// convertMaterial approximates a metallic-roughness material with
// Blinn-Phong reflectances. Metals lose their diffuse term and tint their
// highlight; rough surfaces get dim, wide highlights.
func convertMaterial(m *gltf.Material) render.Material {
	base := [4]float64{1, 1, 1, 1}
	metallic, roughness := 1.0, 1.0
	if pbr := m.PBRMetallicRoughness; pbr != nil {
		if pbr.BaseColorFactor != nil {
			base = *pbr.BaseColorFactor
		}
		if pbr.MetallicFactor != nil {
			metallic = *pbr.MetallicFactor
		}
		if pbr.RoughnessFactor != nil {
			roughness = *pbr.RoughnessFactor
		}
	}

	baseColor := render.MaterialColor{R: base[0], G: base[1], B: base[2], A: base[3]}
	dielectric := render.Gray(0.04, base[3])
	gloss := 1 - roughness

	return render.Material{
		Ambient:   baseColor.Scale(0.1),
		Diffuse:   baseColor.Scale(1 - metallic),
		Specular:  dielectric.Scale(1 - metallic).Add(baseColor.Scale(metallic)).Scale(gloss),
		Shininess: math.Max(1, 128*gloss*gloss),
	}
}

// baseColorTexture decodes the image behind the first material that has a
// base color texture. It returns nil without a texture.
func baseColorTexture(doc *gltf.Document, dir string) (*render.Texture, error) {
	for _, m := range doc.Materials {
		pbr := m.PBRMetallicRoughness
		if pbr == nil || pbr.BaseColorTexture == nil {
			continue
		}
		idx := pbr.BaseColorTexture.Index
		if idx < 0 || idx >= len(doc.Textures) || doc.Textures[idx].Source == nil {
			continue
		}

		data, err := imageData(doc, *doc.Textures[idx].Source, dir)
		if err != nil {
			return nil, err
		}
		return render.DecodeTexture(bytes.NewReader(data))
	}
	return nil, nil
}

// imageData returns the encoded bytes of an image stored in a buffer view,
// a data URI or a file next to the document.
func imageData(doc *gltf.Document, idx int, dir string) ([]byte, error) {
	if idx < 0 || idx >= len(doc.Images) {
		return nil, fmt.Errorf("image %d out of range", idx)
	}
	img := doc.Images[idx]

	switch {
	case img.BufferView != nil:
		bv := doc.BufferViews[*img.BufferView]
		buf := doc.Buffers[bv.Buffer]
		end := bv.ByteOffset + bv.ByteLength
		if end > len(buf.Data) {
			return nil, fmt.Errorf("image %d: buffer view exceeds buffer", idx)
		}
		return buf.Data[bv.ByteOffset:end], nil
	case img.IsEmbeddedResource():
		return img.MarshalData()
	case img.URI != "":
		return os.ReadFile(filepath.Join(dir, img.URI))
	default:
		return nil, fmt.Errorf("image %d has no data", idx)
	}
}
