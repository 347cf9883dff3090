// Package loader builds models from OBJ files and from procedural
// primitives. The harbor scene prefers OBJ assets and falls back to the
// procedural builders when a file is missing.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/fumi-217/acg-tokyo-tower/internal/logger"
	"github.com/fumi-217/acg-tokyo-tower/internal/renderer"
)

type faceVertex struct {
	vertexIdx   int32
	texCoordIdx int32
	normalIdx   int32
}

// LoadModel parses a Wavefront OBJ file into a model with a unified vertex
// buffer. OBJ faces index positions, texcoords and normals separately; the
// unification step deduplicates each (v, vt, vn) triplet into one vertex.
func LoadModel(filename string, recalculateNormals bool) (*renderer.Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var positions []float32
	var texCoords []float32
	var normals []float32
	var triplets []faceVertex
	var materials map[string]*renderer.Material

	model := &renderer.Model{
		Name:     filepath.Base(filename),
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
	unique := *renderer.DefaultMaterial
	model.Material = &unique

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "v":
			vals, err := parseFloats(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("vertex: %w", err)
			}
			positions = append(positions, vals...)
		case "vn":
			vals, err := parseFloats(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("normal: %w", err)
			}
			normals = append(normals, vals...)
		case "vt":
			vals, err := parseFloats(parts[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("texcoord: %w", err)
			}
			texCoords = append(texCoords, vals[0], vals[1])
		case "f":
			face, err := parseFace(parts[1:])
			if err != nil {
				return nil, err
			}
			triplets = append(triplets, face...)
		case "mtllib":
			if len(parts) >= 2 {
				materials = LoadMaterials(filepath.Join(filepath.Dir(filename), parts[1]))
			}
		case "usemtl":
			if len(parts) >= 2 {
				if material, ok := materials[parts[1]]; ok {
					model.Material = material
				} else {
					logger.Log.Debug("material not found", zap.String("material", parts[1]))
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(triplets) == 0 {
		return nil, errors.New("no faces in OBJ file")
	}

	unifyVertices(model, positions, texCoords, normals, triplets)

	if recalculateNormals || len(normals) == 0 {
		recalcNormals(model)
	}

	logger.Log.Info("model loaded",
		zap.String("file", filename),
		zap.Int("vertices", len(model.InterleavedData)/8),
		zap.Int("triangles", len(model.Faces)/3))
	return model, nil
}

// unifyVertices deduplicates (v, vt, vn) triplets into a single interleaved
// stream and rewrites the index buffer against it.
func unifyVertices(model *renderer.Model, positions, texCoords, normals []float32, triplets []faceVertex) {
	seen := make(map[faceVertex]int32, len(triplets))
	interleaved := make([]float32, 0, len(triplets)*8)
	indices := make([]int32, 0, len(triplets))

	for _, fv := range triplets {
		if idx, ok := seen[fv]; ok {
			indices = append(indices, idx)
			continue
		}
		idx := int32(len(interleaved) / 8)
		seen[fv] = idx

		if p := fv.vertexIdx * 3; p >= 0 && int(p+2) < len(positions) {
			interleaved = append(interleaved, positions[p], positions[p+1], positions[p+2])
		} else {
			interleaved = append(interleaved, 0, 0, 0)
		}
		if t := fv.texCoordIdx * 2; fv.texCoordIdx >= 0 && int(t+1) < len(texCoords) {
			interleaved = append(interleaved, texCoords[t], texCoords[t+1])
		} else {
			interleaved = append(interleaved, 0, 0)
		}
		if n := fv.normalIdx * 3; fv.normalIdx >= 0 && int(n+2) < len(normals) {
			interleaved = append(interleaved, normals[n], normals[n+1], normals[n+2])
		} else {
			interleaved = append(interleaved, 0, 1, 0)
		}
		indices = append(indices, idx)
	}

	model.InterleavedData = interleaved
	model.Faces = indices
}

// recalcNormals rebuilds per-vertex normals in place from face geometry.
// Some exported models carry broken normals; this gives a clean smooth shade.
func recalcNormals(model *renderer.Model) {
	data := model.InterleavedData
	vertexCount := len(data) / 8

	accum := make([]mgl32.Vec3, vertexCount)
	pos := func(i int32) mgl32.Vec3 {
		return mgl32.Vec3{data[i*8], data[i*8+1], data[i*8+2]}
	}
	for i := 0; i+2 < len(model.Faces); i += 3 {
		a, b, c := model.Faces[i], model.Faces[i+1], model.Faces[i+2]
		if int(a) >= vertexCount || int(b) >= vertexCount || int(c) >= vertexCount {
			continue
		}
		edge1 := pos(b).Sub(pos(a))
		edge2 := pos(c).Sub(pos(a))
		cross := edge1.Cross(edge2)
		if cross.Len() == 0 {
			continue
		}
		n := cross.Normalize()
		accum[a] = accum[a].Add(n)
		accum[b] = accum[b].Add(n)
		accum[c] = accum[c].Add(n)
	}
	for i := 0; i < vertexCount; i++ {
		n := accum[i]
		if n.Len() == 0 {
			n = mgl32.Vec3{0, 1, 0}
		} else {
			n = n.Normalize()
		}
		data[i*8+5], data[i*8+6], data[i*8+7] = n.X(), n.Y(), n.Z()
	}
}

// LoadMaterials loads material properties from a .mtl file. A missing or
// unreadable file yields just the default material.
func LoadMaterials(filename string) map[string]*renderer.Material {
	materials := map[string]*renderer.Material{"default": renderer.DefaultMaterial}

	file, err := os.Open(filename)
	if err != nil {
		logger.Log.Warn("material file unreadable", zap.String("file", filename), zap.Error(err))
		return materials
	}
	defer file.Close()

	var current *renderer.Material
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "newmtl":
			if len(fields) < 2 {
				continue
			}
			current = &renderer.Material{
				Name:      fields[1],
				Alpha:     1.0,
				Roughness: 0.5,
				Shininess: 32,
			}
			materials[fields[1]] = current
		case "Kd":
			if current != nil && len(fields) == 4 {
				current.DiffuseColor = parseColor(fields[1:])
			}
		case "Ks":
			if current != nil && len(fields) == 4 {
				current.SpecularColor = parseColor(fields[1:])
			}
		case "Ke": // emissive color, picked up by the window grid buildings
			if current != nil && len(fields) == 4 {
				c := parseColor(fields[1:])
				current.EmissiveColor = mgl32.Vec3{c[0], c[1], c[2]}
				if c[0]+c[1]+c[2] > 0 {
					current.EmissiveIntensity = 1
				}
			}
		case "Ns":
			if current != nil && len(fields) == 2 {
				current.Shininess = parseFloat(fields[1])
			}
		case "d":
			if current != nil && len(fields) == 2 {
				current.Alpha = parseFloat(fields[1])
			}
		}
	}
	return materials
}

func parseColor(fields []string) [3]float32 {
	var color [3]float32
	for i, field := range fields {
		if i >= 3 {
			break
		}
		if val, err := strconv.ParseFloat(field, 32); err == nil {
			color[i] = float32(val)
		}
	}
	return color
}

func parseFloat(s string) float32 {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		logger.Log.Error("bad float in material file", zap.String("value", s), zap.Error(err))
		return 0
	}
	return float32(f)
}

func parseFloats(parts []string, want int) ([]float32, error) {
	if len(parts) < want {
		return nil, fmt.Errorf("expected %d values, got %d", want, len(parts))
	}
	vals := make([]float32, 0, want)
	for _, part := range parts[:want] {
		v, err := strconv.ParseFloat(part, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", part, err)
		}
		vals = append(vals, float32(v))
	}
	return vals, nil
}

func parseFace(parts []string) ([]faceVertex, error) {
	var face []faceVertex
	for _, part := range parts {
		vals := strings.Split(part, "/")
		vertexIdx, err := strconv.ParseInt(vals[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid vertex index %q: %w", vals[0], err)
		}
		fv := faceVertex{
			vertexIdx:   int32(vertexIdx - 1), // OBJ indices start at 1
			texCoordIdx: -1,
			normalIdx:   -1,
		}
		if len(vals) > 1 && vals[1] != "" {
			idx, err := strconv.ParseInt(vals[1], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid texcoord index %q: %w", vals[1], err)
			}
			fv.texCoordIdx = int32(idx - 1)
		}
		if len(vals) > 2 && vals[2] != "" {
			idx, err := strconv.ParseInt(vals[2], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid normal index %q: %w", vals[2], err)
			}
			fv.normalIdx = int32(idx - 1)
		}
		face = append(face, fv)
	}

	switch {
	case len(face) == 3:
		return face, nil
	case len(face) == 4:
		return []faceVertex{face[0], face[1], face[2], face[0], face[2], face[3]}, nil
	case len(face) > 4:
		// Fan triangulation from the first vertex
		var out []faceVertex
		for i := 1; i < len(face)-1; i++ {
			out = append(out, face[0], face[i], face[i+1])
		}
		return out, nil
	default:
		return nil, fmt.Errorf("face with %d vertices", len(face))
	}
}
