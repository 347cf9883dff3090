package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Sprite is a camera-facing soft glow quad. Used for the tower beacon halo
// and the visible sun disc glow; animators only touch the public fields.
type Sprite struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Size     float32
	Opacity  float32
}

func NewSprite(position mgl32.Vec3, color mgl32.Vec3, size float32) *Sprite {
	return &Sprite{Position: position, Color: color, Size: size, Opacity: 1}
}

var spriteVertexShaderSource = `#version 330 core
layout(location = 0) in vec2 inCorner; // unit quad corners in [-0.5, 0.5]

uniform mat4 viewProjection;
uniform vec3 spritePos;
uniform float spriteSize;
uniform vec3 cameraRight;
uniform vec3 cameraUp;

out vec2 quadUV;

void main() {
    quadUV = inCorner + vec2(0.5);
    vec3 world = spritePos
        + cameraRight * (inCorner.x * spriteSize)
        + cameraUp * (inCorner.y * spriteSize);
    gl_Position = viewProjection * vec4(world, 1.0);
}
` + "\x00"

var spriteFragmentShaderSource = `#version 330 core
in vec2 quadUV;

uniform vec3 spriteColor;
uniform float spriteOpacity;

out vec4 FragColor;

void main() {
    float d = length(quadUV - vec2(0.5)) * 2.0;
    // Soft radial falloff with a hot core
    float glow = pow(clamp(1.0 - d, 0.0, 1.0), 2.2);
    float a = glow * spriteOpacity;
    if (a < 0.005) {
        discard;
    }
    FragColor = vec4(spriteColor, a);
}
` + "\x00"

// spriteQuad is the shared unit quad, two triangles.
var spriteQuad = []float32{
	-0.5, -0.5,
	0.5, -0.5,
	0.5, 0.5,
	-0.5, -0.5,
	0.5, 0.5,
	-0.5, 0.5,
}

func InitSpriteShader() Shader {
	return Shader{
		vertexSource:   spriteVertexShaderSource,
		fragmentSource: spriteFragmentShaderSource,
	}
}
