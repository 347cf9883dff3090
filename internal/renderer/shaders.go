package renderer

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
	isCompiled     bool
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) IsValid() bool {
	return shader.vertexSource != "" && shader.fragmentSource != ""
}

func (shader *Shader) Program() uint32 {
	return shader.program
}

// Compile builds and links the program. Must be called with a current GL context.
func (shader *Shader) Compile() {
	if shader.isCompiled {
		return
	}
	vertex := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	fragment := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	shader.program = GenShaderProgram(vertex, fragment)
	shader.isCompiled = true
}

func (shader *Shader) SetVec3(name string, value mgl32.Vec3) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform3f(location, value.X(), value.Y(), value.Z())
}

func (shader *Shader) SetFloat(name string, value float32) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform1f(location, value)
}

func (shader *Shader) SetInt(name string, value int32) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform1i(location, value)
}

func (shader *Shader) SetBool(name string, value bool) {
	v := int32(0)
	if value {
		v = 1
	}
	shader.SetInt(name, v)
}

func (shader *Shader) SetMat4(name string, value mgl32.Mat4) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.UniformMatrix4fv(location, 1, false, &value[0])
}

var sceneVertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition; // Vertex position
layout(location = 1) in vec2 inTexCoord; // Texture Coordinate
layout(location = 2) in vec3 inNormal;   // Vertex normal
layout(location = 3) in mat4 instanceModel; // Instanced model matrix

uniform bool isInstanced; // Flag to differentiate instanced vs non-instanced rendering
uniform mat4 model;       // Regular model matrix
uniform mat4 viewProjection;

out vec2 fragTexCoord;
out vec3 Normal;          // World-space normal
out vec3 FragPos;         // World-space position

void main() {
    mat4 modelMatrix = isInstanced ? model * instanceModel : model;

    FragPos = vec3(modelMatrix * vec4(inPosition, 1.0));
    Normal = mat3(modelMatrix) * inNormal; // OK while the model matrix has no non-uniform scaling
    fragTexCoord = inTexCoord;

    gl_Position = viewProjection * vec4(FragPos, 1.0);
}
` + "\x00"

var sceneFragmentShaderSource = `#version 330 core
in vec2 fragTexCoord;
in vec3 Normal;
in vec3 FragPos;

#define MAX_POINT_LIGHTS 64

uniform vec3 viewPos;
uniform float exposure;
uniform float ambientStrength;

// Directional sun
uniform vec3 sunDirection; // points from the sun toward the scene
uniform vec3 sunColor;
uniform float sunIntensity;

// Hemisphere fill
uniform vec3 hemiSky;
uniform vec3 hemiGround;
uniform float hemiIntensity;

// Exponential fog
uniform bool fogEnabled;
uniform float fogDensity;
uniform vec3 fogColor;

// Point lights
uniform int pointLightCount;
uniform vec3 pointPositions[MAX_POINT_LIGHTS];
uniform vec3 pointColors[MAX_POINT_LIGHTS];
uniform float pointIntensities[MAX_POINT_LIGHTS];
uniform float pointRanges[MAX_POINT_LIGHTS];

// Spot light (searchlight)
uniform float spotIntensity;
uniform vec3 spotPosition;
uniform vec3 spotDirection;
uniform vec3 spotColor;
uniform float spotRange;
uniform float spotCutoffCos;

// Material
uniform vec3 diffuseColor;
uniform vec3 specularColor;
uniform float shininess;
uniform float metallic;
uniform float roughness;
uniform float alpha;
uniform vec3 emissiveColor;
uniform float emissiveIntensity;

// Procedural window grid
uniform bool windowGridEnabled;
uniform float windowTime;
uniform float windowIntensity;
uniform vec3 windowTint;
uniform float windowCellSize;
uniform float windowLitRatio;
uniform float windowMargin;

out vec4 FragColor;

void main() {
    vec3 norm = normalize(Normal);
    vec3 viewDir = normalize(viewPos - FragPos);
    vec3 base = mix(diffuseColor, diffuseColor * 0.4, metallic);

    // Flat ambient plus hemisphere gradient fill
    vec3 color = base * ambientStrength;
    float hemiMix = norm.y * 0.5 + 0.5;
    color += base * mix(hemiGround, hemiSky, hemiMix) * hemiIntensity;

    // Directional sun, Blinn-Phong
    vec3 sunDir = normalize(-sunDirection);
    float sunDiff = max(dot(norm, sunDir), 0.0);
    vec3 halfway = normalize(sunDir + viewDir);
    float sunSpec = pow(max(dot(norm, halfway), 0.0), shininess) * (1.0 - roughness);
    color += (base * sunDiff + specularColor * sunSpec) * sunColor * sunIntensity;

    // Point lights with smooth range falloff
    for (int i = 0; i < pointLightCount; i++) {
        vec3 toLight = pointPositions[i] - FragPos;
        float dist = length(toLight);
        float atten = clamp(1.0 - dist / pointRanges[i], 0.0, 1.0);
        atten *= atten;
        float diff = max(dot(norm, toLight / max(dist, 0.0001)), 0.0);
        color += base * diff * pointColors[i] * pointIntensities[i] * atten;
    }

    // Spot cone
    if (spotIntensity > 0.0) {
        vec3 toFrag = FragPos - spotPosition;
        float dist = length(toFrag);
        float theta = dot(toFrag / max(dist, 0.0001), normalize(spotDirection));
        if (theta > spotCutoffCos) {
            float cone = (theta - spotCutoffCos) / (1.0 - spotCutoffCos);
            float atten = clamp(1.0 - dist / spotRange, 0.0, 1.0);
            color += base * spotColor * spotIntensity * cone * atten;
        }
    }

    // Self illumination, optionally augmented by the window grid below
    vec3 emissive = emissiveColor * emissiveIntensity;
    // <window-grid>
    color += emissive;

    // Exponential squared fog
    if (fogEnabled) {
        float fogDepth = length(viewPos - FragPos);
        float fogFactor = 1.0 - exp(-fogDensity * fogDensity * fogDepth * fogDepth);
        color = mix(color, fogColor, clamp(fogFactor, 0.0, 1.0));
    }

    // Exposure tone map and gamma
    vec3 mapped = vec3(1.0) - exp(-color * exposure);
    mapped = pow(mapped, vec3(1.0 / 2.2));
    FragColor = vec4(mapped, alpha);
}
` + "\x00"

// windowGridMarker is where the emissive augmentation chunk is spliced in.
const windowGridMarker = "// <window-grid>"

// BuildSceneFragmentSource splices the window-grid chunk into the base
// physically based fragment shader at the emissive injection point. The base
// lighting response is untouched; only the emissive term is extended.
func BuildSceneFragmentSource(windowChunk string) string {
	return strings.Replace(sceneFragmentShaderSource, windowGridMarker, windowChunk, 1)
}

// InitSceneShader returns the scene shader with the given window-grid chunk
// injected. Compile must be called once a GL context is current.
func InitSceneShader(windowChunk string) Shader {
	return Shader{
		vertexSource:   sceneVertexShaderSource,
		fragmentSource: BuildSceneFragmentSource(windowChunk),
	}
}
