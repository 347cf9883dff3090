package renderer

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/fumi-217/acg-tokyo-tower/internal/emissive"
	"github.com/fumi-217/acg-tokyo-tower/internal/logger"
)

type OpenGLRenderer struct {
	sceneShader  Shader
	skyShader    Shader
	starShader   Shader
	spriteShader Shader

	sceneUniforms  *UniformCache
	skyUniforms    *UniformCache
	starUniforms   *UniformCache
	spriteUniforms *UniformCache

	Models  []*Model
	sprites []*Sprite
	skyDome *SkyDome
	stars   *StarField
	windows *emissive.WindowGrid

	currentShaderProgram uint32 // Track currently bound shader to avoid unnecessary switches

	skyVAO, skyVBO, skyEBO uint32
	skyIndexCount          int32
	spriteVAO, spriteVBO   uint32

	cleanup Unwind
}

func (rend *OpenGLRenderer) Init(width, height int32, _ *glfw.Window) {
	if err := gl.Init(); err != nil {
		logger.Log.Error("OpenGL initialization failed", zap.Error(err))
		return
	}

	if Debug {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Viewport(0, 0, width, height)
	rend.initShaders()
	logger.Log.Info("OpenGL render initialized",
		zap.Int32("width", width), zap.Int32("height", height))
}

func (rend *OpenGLRenderer) initShaders() {
	rend.sceneShader = InitSceneShader(emissive.ShaderChunk)
	rend.sceneShader.Compile()
	rend.sceneUniforms = NewUniformCache(rend.sceneShader.program)

	rend.skyShader = InitSkyShader()
	rend.skyShader.Compile()
	rend.skyUniforms = NewUniformCache(rend.skyShader.program)

	rend.starShader = InitStarShader()
	rend.starShader.Compile()
	rend.starUniforms = NewUniformCache(rend.starShader.program)

	rend.spriteShader = InitSpriteShader()
	rend.spriteShader.Compile()
	rend.spriteUniforms = NewUniformCache(rend.spriteShader.program)

	for _, program := range []uint32{
		rend.sceneShader.program,
		rend.skyShader.program,
		rend.starShader.program,
		rend.spriteShader.program,
	} {
		p := program
		rend.cleanup.Add(func() { gl.DeleteProgram(p) })
	}
}

func (rend *OpenGLRenderer) AddModel(model *Model) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(model.InterleavedData)*4, gl.Ptr(model.InterleavedData), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(model.Faces)*4, gl.Ptr(model.Faces), gl.STATIC_DRAW)

	stride := int32((8) * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)

	if model.IsInstanced && len(model.InstanceModelMatrices) > 0 {
		var instanceVBO uint32
		gl.GenBuffers(1, &instanceVBO)
		gl.BindBuffer(gl.ARRAY_BUFFER, instanceVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(model.InstanceModelMatrices)*int(unsafe.Sizeof(mgl32.Mat4{})), gl.Ptr(model.InstanceModelMatrices), gl.DYNAMIC_DRAW)

		for i := 0; i < 4; i++ {
			gl.EnableVertexAttribArray(3 + uint32(i))
			gl.VertexAttribPointer(3+uint32(i), 4, gl.FLOAT, false, int32(unsafe.Sizeof(mgl32.Mat4{})), unsafe.Pointer(uintptr(i*16)))
			gl.VertexAttribDivisor(3+uint32(i), 1)
		}
		model.InstanceVBO = instanceVBO
	}

	model.VAO = vao
	model.VBO = vbo
	model.EBO = ebo

	model.updateModelMatrix()

	rend.Models = append(rend.Models, model)
}

func (rend *OpenGLRenderer) RemoveModel(model *Model) {
	for i, m := range rend.Models {
		if m == model {
			rend.Models = append(rend.Models[:i], rend.Models[i+1:]...)
			break
		}
	}
}

func (rend *OpenGLRenderer) AddSprite(sprite *Sprite) {
	rend.sprites = append(rend.sprites, sprite)
}

func (rend *OpenGLRenderer) SetSkyDome(dome *SkyDome) {
	rend.skyDome = dome
}

func (rend *OpenGLRenderer) SetStarField(stars *StarField) {
	rend.stars = stars
}

func (rend *OpenGLRenderer) SetWindowGrid(windows *emissive.WindowGrid) {
	rend.windows = windows
}

func (rend *OpenGLRenderer) Render(camera Camera, lighting *Lighting) {
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if DepthTestEnabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthMask(true)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	// Culling : https://learnopengl.com/Advanced-OpenGL/Face-culling
	if FaceCullingEnabled {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	}

	viewProjection := camera.GetViewProjection()

	rend.renderModels(viewProjection, camera, lighting)
	rend.renderSkyDome(viewProjection, camera, lighting)
	rend.renderStars(viewProjection, camera)
	rend.renderSprites(viewProjection, camera)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
}

func (rend *OpenGLRenderer) renderModels(viewProjection mgl32.Mat4, camera Camera, lighting *Lighting) {
	rend.useProgram(&rend.sceneShader)
	uc := rend.sceneUniforms

	uc.SetMat4("viewProjection", viewProjection)
	uc.SetVec3("viewPos", camera.Position.X(), camera.Position.Y(), camera.Position.Z())
	rend.setLightingUniforms(uc, lighting)
	rend.setWindowGridUniforms(uc)

	modLen := len(rend.Models)
	for i := 0; i < modLen; i++ {
		model := rend.Models[i]

		if model.IsDirty {
			model.updateModelMatrix()
			model.IsDirty = false
		}

		uc.SetMat4("model", model.ModelMatrix)
		rend.setMaterialUniforms(uc, model)

		gl.BindVertexArray(model.VAO)
		if model.IsInstanced && len(model.InstanceModelMatrices) > 0 {
			uc.SetBool("isInstanced", true)
			rend.UpdateInstanceMatrices(model)
			gl.DrawElementsInstanced(gl.TRIANGLES, int32(len(model.Faces)), gl.UNSIGNED_INT, nil, int32(model.InstanceCount))
		} else {
			uc.SetBool("isInstanced", false)
			gl.DrawElements(gl.TRIANGLES, int32(len(model.Faces)), gl.UNSIGNED_INT, nil)
		}
		gl.BindVertexArray(0)
	}
}

// setLightingUniforms uploads the per-frame lighting aggregate: exposure,
// ambient, sun, hemisphere fill, fog and the point/spot light arrays.
func (rend *OpenGLRenderer) setLightingUniforms(uc *UniformCache, lighting *Lighting) {
	if lighting == nil {
		return
	}

	uc.SetFloat("exposure", lighting.Exposure)
	uc.SetFloat("ambientStrength", lighting.Ambient)

	sun := lighting.Sun
	uc.SetVec3("sunDirection", sun.Direction.X(), sun.Direction.Y(), sun.Direction.Z())
	uc.SetVec3("sunColor", sun.Color.X(), sun.Color.Y(), sun.Color.Z())
	uc.SetFloat("sunIntensity", sun.Intensity)

	hemi := lighting.Hemisphere
	uc.SetVec3("hemiSky", hemi.SkyColor.X(), hemi.SkyColor.Y(), hemi.SkyColor.Z())
	uc.SetVec3("hemiGround", hemi.GroundColor.X(), hemi.GroundColor.Y(), hemi.GroundColor.Z())
	uc.SetFloat("hemiIntensity", hemi.Intensity)

	uc.SetBool("fogEnabled", lighting.Fog.Enabled)
	uc.SetFloat("fogDensity", lighting.Fog.Density)
	uc.SetVec3("fogColor", lighting.Fog.Color.X(), lighting.Fog.Color.Y(), lighting.Fog.Color.Z())

	count := len(lighting.Points)
	if count > MaxPointLights {
		count = MaxPointLights
	}
	uc.SetInt("pointLightCount", int32(count))
	for i := 0; i < count; i++ {
		p := lighting.Points[i]
		uc.SetVec3(uc.IndexedName("pointPositions", i), p.Position.X(), p.Position.Y(), p.Position.Z())
		uc.SetVec3(uc.IndexedName("pointColors", i), p.Color.X(), p.Color.Y(), p.Color.Z())
		uc.SetFloat(uc.IndexedName("pointIntensities", i), p.Intensity)
		uc.SetFloat(uc.IndexedName("pointRanges", i), p.Range)
	}

	// The scene shader carries a single spot slot; the searchlight owns it.
	if len(lighting.Spots) > 0 {
		s := lighting.Spots[0]
		uc.SetFloat("spotIntensity", s.Intensity)
		uc.SetVec3("spotPosition", s.Position.X(), s.Position.Y(), s.Position.Z())
		uc.SetVec3("spotDirection", s.Direction.X(), s.Direction.Y(), s.Direction.Z())
		uc.SetVec3("spotColor", s.Color.X(), s.Color.Y(), s.Color.Z())
		uc.SetFloat("spotRange", s.Range)
		uc.SetFloat("spotCutoffCos", cosDeg(s.CutoffDeg))
	} else {
		uc.SetFloat("spotIntensity", 0)
	}
}

// setWindowGridUniforms uploads the shared window grid context once per frame.
// Whether a given surface uses it is a material flag set in setMaterialUniforms.
func (rend *OpenGLRenderer) setWindowGridUniforms(uc *UniformCache) {
	if rend.windows == nil {
		return
	}
	cfg := rend.windows.Config()
	uc.SetFloat(emissive.UniformTime, rend.windows.Time)
	uc.SetFloat(emissive.UniformIntensity, rend.windows.Intensity)
	uc.SetVec3(emissive.UniformTint, rend.windows.Tint.X(), rend.windows.Tint.Y(), rend.windows.Tint.Z())
	uc.SetFloat(emissive.UniformCellSize, cfg.CellSize)
	uc.SetFloat(emissive.UniformLitRatio, cfg.LitRatio)
	uc.SetFloat(emissive.UniformMargin, cfg.Margin)
}

func (rend *OpenGLRenderer) setMaterialUniforms(uc *UniformCache, model *Model) {
	material := model.Material
	if material == nil {
		material = DefaultMaterial
	}

	uc.SetVec3("diffuseColor", material.DiffuseColor[0], material.DiffuseColor[1], material.DiffuseColor[2])
	uc.SetVec3("specularColor", material.SpecularColor[0], material.SpecularColor[1], material.SpecularColor[2])
	uc.SetFloat("shininess", material.Shininess)
	uc.SetFloat("metallic", material.Metallic)
	uc.SetFloat("roughness", material.Roughness)
	uc.SetFloat("alpha", material.Alpha)
	uc.SetVec3("emissiveColor", material.EmissiveColor.X(), material.EmissiveColor.Y(), material.EmissiveColor.Z())
	uc.SetFloat("emissiveIntensity", material.EmissiveIntensity)
	uc.SetBool(emissive.UniformEnabled, material.WindowGrid && rend.windows != nil)
}

func (rend *OpenGLRenderer) renderSkyDome(viewProjection mgl32.Mat4, camera Camera, lighting *Lighting) {
	if rend.skyDome == nil {
		return
	}
	if rend.skyVAO == 0 {
		rend.uploadSkyMesh()
	}

	// Drawn after the opaque pass; gl_Position.xyww pins the dome to the far
	// plane so LEQUAL lets it through only where nothing else was drawn.
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	rend.useProgram(&rend.skyShader)
	uc := rend.skyUniforms
	uc.SetMat4("viewProjection", viewProjection)
	uc.SetVec3("cameraPos", camera.Position.X(), camera.Position.Y(), camera.Position.Z())
	dome := rend.skyDome
	uc.SetVec3("sunPosition", dome.SunPosition.X(), dome.SunPosition.Y(), dome.SunPosition.Z())
	uc.SetFloat("turbidity", dome.Turbidity)
	uc.SetFloat("rayleigh", dome.Rayleigh)
	uc.SetFloat("mieCoefficient", dome.MieCoefficient)
	uc.SetFloat("mieDirectionalG", dome.MieDirectionalG)
	exposure := dome.Exposure
	if lighting != nil {
		exposure = lighting.Exposure
	}
	uc.SetFloat("exposure", exposure)

	gl.BindVertexArray(rend.skyVAO)
	gl.DrawElements(gl.TRIANGLES, rend.skyIndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

func (rend *OpenGLRenderer) uploadSkyMesh() {
	positions, indices := BuildDomeMesh(1.0, 32)
	flat := make([]float32, 0, len(positions)*3)
	for _, p := range positions {
		flat = append(flat, p.X(), p.Y(), p.Z())
	}

	gl.GenVertexArrays(1, &rend.skyVAO)
	gl.BindVertexArray(rend.skyVAO)

	gl.GenBuffers(1, &rend.skyVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, rend.skyVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(flat)*4, gl.Ptr(flat), gl.STATIC_DRAW)

	gl.GenBuffers(1, &rend.skyEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, rend.skyEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	rend.skyIndexCount = int32(len(indices))
}

func (rend *OpenGLRenderer) renderStars(viewProjection mgl32.Mat4, camera Camera) {
	stars := rend.stars
	if stars == nil || stars.Opacity <= 0.001 {
		return
	}
	if !stars.uploaded {
		rend.uploadStars(stars)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	rend.useProgram(&rend.starShader)
	uc := rend.starUniforms
	uc.SetMat4("viewProjection", viewProjection)
	uc.SetVec3("cameraPos", camera.Position.X(), camera.Position.Y(), camera.Position.Z())
	uc.SetFloat("starTime", stars.Time)
	uc.SetFloat("starOpacity", stars.Opacity)

	gl.BindVertexArray(stars.vao)
	gl.DrawArrays(gl.POINTS, 0, int32(stars.Count))
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.BLEND)
}

func (rend *OpenGLRenderer) uploadStars(stars *StarField) {
	verts := stars.Vertices()

	gl.GenVertexArrays(1, &stars.vao)
	gl.BindVertexArray(stars.vao)

	gl.GenBuffers(1, &stars.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, stars.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	stride := int32(5 * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 1, gl.FLOAT, false, stride, gl.PtrOffset(4*4))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	stars.uploaded = true
}

func (rend *OpenGLRenderer) renderSprites(viewProjection mgl32.Mat4, camera Camera) {
	if len(rend.sprites) == 0 {
		return
	}
	if rend.spriteVAO == 0 {
		rend.uploadSpriteQuad()
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)

	rend.useProgram(&rend.spriteShader)
	uc := rend.spriteUniforms
	uc.SetMat4("viewProjection", viewProjection)
	uc.SetVec3("cameraRight", camera.Right.X(), camera.Right.Y(), camera.Right.Z())
	uc.SetVec3("cameraUp", camera.Up.X(), camera.Up.Y(), camera.Up.Z())

	gl.BindVertexArray(rend.spriteVAO)
	for _, sprite := range rend.sprites {
		if sprite.Opacity <= 0.001 {
			continue
		}
		uc.SetVec3("spritePos", sprite.Position.X(), sprite.Position.Y(), sprite.Position.Z())
		uc.SetFloat("spriteSize", sprite.Size)
		uc.SetVec3("spriteColor", sprite.Color.X(), sprite.Color.Y(), sprite.Color.Z())
		uc.SetFloat("spriteOpacity", sprite.Opacity)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

func (rend *OpenGLRenderer) uploadSpriteQuad() {
	gl.GenVertexArrays(1, &rend.spriteVAO)
	gl.BindVertexArray(rend.spriteVAO)

	gl.GenBuffers(1, &rend.spriteVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, rend.spriteVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(spriteQuad)*4, gl.Ptr(spriteQuad), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
}

func (rend *OpenGLRenderer) useProgram(shader *Shader) {
	if rend.currentShaderProgram != shader.program {
		shader.Use()
		rend.currentShaderProgram = shader.program
	}
}

func (rend *OpenGLRenderer) UpdateInstanceMatrices(model *Model) {
	if model.InstanceMatricesUpdated && len(model.InstanceModelMatrices) > 0 {
		gl.BindBuffer(gl.ARRAY_BUFFER, model.InstanceVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(model.InstanceModelMatrices)*int(unsafe.Sizeof(mgl32.Mat4{})), gl.Ptr(model.InstanceModelMatrices), gl.DYNAMIC_DRAW)
		model.InstanceMatricesUpdated = false
	}
}

// UpdateViewport updates the OpenGL viewport to match the current window size
func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (rend *OpenGLRenderer) Cleanup() {
	for _, model := range rend.Models {
		gl.DeleteVertexArrays(1, &model.VAO)
		gl.DeleteBuffers(1, &model.VBO)
		gl.DeleteBuffers(1, &model.EBO)
		if model.InstanceVBO != 0 {
			gl.DeleteBuffers(1, &model.InstanceVBO)
		}
	}
	if rend.skyVAO != 0 {
		gl.DeleteVertexArrays(1, &rend.skyVAO)
		gl.DeleteBuffers(1, &rend.skyVBO)
		gl.DeleteBuffers(1, &rend.skyEBO)
	}
	if rend.spriteVAO != 0 {
		gl.DeleteVertexArrays(1, &rend.spriteVAO)
		gl.DeleteBuffers(1, &rend.spriteVBO)
	}
	if rend.stars != nil && rend.stars.uploaded {
		gl.DeleteVertexArrays(1, &rend.stars.vao)
		gl.DeleteBuffers(1, &rend.stars.vbo)
	}
	rend.cleanup.Unwind()
}

func GenShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to compile", zap.Uint32("shader type:", shaderType), zap.String("log", log))
	}

	return shader
}

func GenShaderProgram(vertexShader, fragmentShader uint32) uint32 {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to link program", zap.String("log", log))
	}
	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)
	return program
}
