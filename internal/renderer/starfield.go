package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// StarField is a sphere of point sprites. Opacity is driven by the star
// animator each frame (0 by day, 1 at full night); the per-star twinkle
// phase lives in the vertex stream so the GPU handles the shimmer.
type StarField struct {
	Opacity float32
	Time    float32
	Count   int
	Radius  float32

	vao, vbo uint32
	uploaded bool
}

func NewStarField(count int, radius float32) *StarField {
	return &StarField{Count: count, Radius: radius}
}

// Vertices builds the interleaved star stream: position (3), phase (1),
// size (1). Generation is hash based and deterministic for a given count.
func (s *StarField) Vertices() []float32 {
	verts := make([]float32, 0, s.Count*5)
	for i := 0; i < s.Count; i++ {
		seed := float64(i)
		u := hash11(seed * 12.9898)
		v := hash11(seed * 78.233)
		// Uniform on the upper hemisphere, biased away from the horizon
		theta := u * 2 * math.Pi
		phi := math.Acos(1 - v*0.95)
		dir := mgl32.Vec3{
			float32(math.Sin(phi) * math.Cos(theta)),
			float32(math.Cos(phi)),
			float32(math.Sin(phi) * math.Sin(theta)),
		}
		pos := dir.Mul(s.Radius)
		phase := float32(hash11(seed*37.719) * 2 * math.Pi)
		size := float32(1.0 + hash11(seed*91.17)*2.5)
		verts = append(verts, pos.X(), pos.Y(), pos.Z(), phase, size)
	}
	return verts
}

func hash11(p float64) float64 {
	_, frac := math.Modf(math.Sin(p) * 43758.5453123)
	return math.Abs(frac)
}

var starVertexShaderSource = `#version 330 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in float inPhase;
layout(location = 2) in float inSize;

uniform mat4 viewProjection;
uniform vec3 cameraPos;
uniform float starTime;

out float brightness;

void main() {
    // Twinkle: each star shimmers on its own phase
    brightness = 0.7 + 0.3 * sin(starTime * 2.3 + inPhase);
    vec4 pos = viewProjection * vec4(inPosition + cameraPos, 1.0);
    gl_Position = pos.xyww;
    gl_PointSize = inSize;
}
` + "\x00"

var starFragmentShaderSource = `#version 330 core
in float brightness;

uniform float starOpacity;

out vec4 FragColor;

void main() {
    vec2 d = gl_PointCoord - vec2(0.5);
    float falloff = 1.0 - smoothstep(0.0, 0.5, length(d));
    float a = brightness * starOpacity * falloff;
    if (a < 0.01) {
        discard;
    }
    FragColor = vec4(vec3(1.0, 0.97, 0.92), a);
}
` + "\x00"

func InitStarShader() Shader {
	return Shader{
		vertexSource:   starVertexShaderSource,
		fragmentSource: starFragmentShaderSource,
	}
}
