package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMaterial provides a basic material to fall back on
var DefaultMaterial = &Material{
	Name:          "default",
	DiffuseColor:  [3]float32{1.0, 1.0, 1.0},
	SpecularColor: [3]float32{1.0, 1.0, 1.0},
	Shininess:     32.0,
	Metallic:      0.0,
	Roughness:     0.5,
	Alpha:         1.0,
}

type Model struct {
	// HOT DATA - Accessed every frame in render loop (keep in first cache lines)
	ModelMatrix             mgl32.Mat4 // Transformation matrix - used every frame
	Position                mgl32.Vec3 // Position in world space
	Scale                   mgl32.Vec3 // Scale factors
	Rotation                mgl32.Quat // Rotation quaternion
	Material                *Material  // Material properties pointer
	VAO                     uint32     // Vertex Array Object
	VBO                     uint32     // Vertex Buffer Object
	EBO                     uint32     // Element Buffer Object
	InstanceVBO             uint32     // Instance matrix buffer (instanced rendering)
	InstanceCount           int        // Number of instances
	IsDirty                 bool       // Needs matrix recalculation
	IsInstanced             bool       // Instanced rendering flag
	InstanceMatricesUpdated bool       // Instance matrices need GPU upload

	// MEDIUM DATA - Conditional/periodic access
	InstanceModelMatrices []mgl32.Mat4 // Instance model matrices (bulk data)

	// COLD DATA - Initialization only or rarely accessed
	Id              int
	Name            string
	Vertices        []float32 // Vertex position data
	Normals         []float32 // Normal vectors
	Faces           []int32   // Face indices
	TextureCoords   []float32 // Texture coordinates
	InterleavedData []float32 // Combined vertex data
}

type Material struct {
	// HOT DATA - Accessed every render call for shading calculations
	DiffuseColor      [3]float32 // Base color for lighting
	SpecularColor     [3]float32 // Specular highlight color
	Shininess         float32    // Specular exponent
	Metallic          float32    // 0.0 = dielectric, 1.0 = metallic
	Roughness         float32    // 0.0 = mirror, 1.0 = completely rough
	Alpha             float32    // Transparency (0.0 = transparent, 1.0 = opaque)
	EmissiveColor     mgl32.Vec3 // Self-illumination color
	EmissiveIntensity float32    // Self-illumination strength
	WindowGrid        bool       // Surface receives the procedural window pattern

	// COLD DATA
	Name string
}

func (m *Model) X() float32 { return m.Position[0] }
func (m *Model) Y() float32 { return m.Position[1] }
func (m *Model) Z() float32 { return m.Position[2] }

func (m *Model) Rotate(angleX, angleY, angleZ float32) {
	if m.Rotation == (mgl32.Quat{}) {
		m.Rotation = mgl32.QuatIdent()
	}
	rotationX := mgl32.QuatRotate(mgl32.DegToRad(angleX), mgl32.Vec3{1, 0, 0})
	rotationY := mgl32.QuatRotate(mgl32.DegToRad(angleY), mgl32.Vec3{0, 1, 0})
	rotationZ := mgl32.QuatRotate(mgl32.DegToRad(angleZ), mgl32.Vec3{0, 0, 1})
	m.Rotation = m.Rotation.Mul(rotationX).Mul(rotationY).Mul(rotationZ)
	m.updateModelMatrix()
	m.IsDirty = true
}

func (m *Model) SetPosition(x, y, z float32) {
	m.Position = mgl32.Vec3{x, y, z}
	m.updateModelMatrix()
	m.IsDirty = true
}

func (m *Model) SetScale(x, y, z float32) {
	m.Scale = mgl32.Vec3{x, y, z}
	m.updateModelMatrix()
	m.IsDirty = true
}

func (m *Model) updateModelMatrix() {
	// ModelMatrix = translation * rotation * scale (TRS order)
	scaleMatrix := mgl32.Scale3D(m.Scale[0], m.Scale[1], m.Scale[2])
	rotationMatrix := m.Rotation.Mat4()
	translationMatrix := mgl32.Translate3D(m.Position[0], m.Position[1], m.Position[2])
	m.ModelMatrix = translationMatrix.Mul4(rotationMatrix).Mul4(scaleMatrix)
}

// ensureMaterial creates a unique material instance if one doesn't exist or
// if the model still points at the shared default.
func (m *Model) ensureMaterial() {
	if m.Material == nil || m.Material == DefaultMaterial {
		copy := *DefaultMaterial
		m.Material = &copy
	}
}

func (m *Model) SetDiffuseColor(r, g, b float32) {
	m.ensureMaterial()
	m.Material.DiffuseColor = [3]float32{r, g, b}
}

func (m *Model) SetSpecularColor(r, g, b float32) {
	m.ensureMaterial()
	m.Material.SpecularColor = [3]float32{r, g, b}
}

func (m *Model) SetMaterialPBR(metallic, roughness float32) {
	m.ensureMaterial()
	m.Material.Metallic = metallic
	m.Material.Roughness = roughness
}

func (m *Model) SetAlpha(alpha float32) {
	m.ensureMaterial()
	m.Material.Alpha = alpha
}

// SetEmissive configures the material's self-illumination. The tower body
// animator drives intensity through this every frame.
func (m *Model) SetEmissive(color mgl32.Vec3, intensity float32) {
	m.ensureMaterial()
	m.Material.EmissiveColor = color
	m.Material.EmissiveIntensity = intensity
}

// EnableWindowGrid marks the surface for the procedural window augmentation.
func (m *Model) EnableWindowGrid() {
	m.ensureMaterial()
	m.Material.WindowGrid = true
}

func (m *Model) SetInstanceCount(count int) {
	m.IsInstanced = true
	m.InstanceCount = count
	m.InstanceModelMatrices = make([]mgl32.Mat4, count)
	for i := range m.InstanceModelMatrices {
		m.InstanceModelMatrices[i] = mgl32.Ident4()
	}
}

// SetInstanceTransform places one instance with its own translation and scale.
func (m *Model) SetInstanceTransform(index int, position mgl32.Vec3, scale mgl32.Vec3) {
	if index < 0 || index >= len(m.InstanceModelMatrices) {
		return
	}
	scaleMatrix := mgl32.Scale3D(scale[0], scale[1], scale[2])
	translationMatrix := mgl32.Translate3D(position[0], position[1], position[2])
	m.InstanceModelMatrices[index] = translationMatrix.Mul4(scaleMatrix)
	m.InstanceMatricesUpdated = true
}

// CreateModel builds a model from raw positions, normals and indices,
// interleaving the vertex stream the way the scene shader expects
// (position, uv, normal).
func CreateModel(positions []mgl32.Vec3, normals []mgl32.Vec3, indices []int32) *Model {
	interleaved := make([]float32, 0, len(positions)*8)
	flatPos := make([]float32, 0, len(positions)*3)
	flatNorm := make([]float32, 0, len(positions)*3)

	for i, p := range positions {
		n := mgl32.Vec3{0, 1, 0}
		if i < len(normals) {
			n = normals[i]
		}
		interleaved = append(interleaved, p.X(), p.Y(), p.Z(), 0, 0, n.X(), n.Y(), n.Z())
		flatPos = append(flatPos, p.X(), p.Y(), p.Z())
		flatNorm = append(flatNorm, n.X(), n.Y(), n.Z())
	}

	return &Model{
		Position:        mgl32.Vec3{0, 0, 0},
		Rotation:        mgl32.QuatIdent(),
		Scale:           mgl32.Vec3{1, 1, 1},
		ModelMatrix:     mgl32.Ident4(),
		Vertices:        flatPos,
		Normals:         flatNorm,
		Faces:           indices,
		InterleavedData: interleaved,
	}
}
