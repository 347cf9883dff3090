package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SkyDome holds the analytic scattering parameters uploaded to the sky
// shader each frame. The atmosphere binder rewrites these from the current
// environment state; the renderer only uploads them.
type SkyDome struct {
	Turbidity       float32
	Rayleigh        float32
	MieCoefficient  float32
	MieDirectionalG float32
	SunPosition     mgl32.Vec3 // unit vector toward the sun
	Exposure        float32
}

func NewSkyDome() *SkyDome {
	return &SkyDome{
		Turbidity:       10,
		Rayleigh:        2,
		MieCoefficient:  0.005,
		MieDirectionalG: 0.8,
		SunPosition:     mgl32.Vec3{0, 1, 0},
		Exposure:        0.68,
	}
}

// BuildDomeMesh generates a UV sphere rendered from the inside. Index
// winding is reversed so back-face culling keeps the interior visible.
func BuildDomeMesh(radius float32, segments int) (positions []mgl32.Vec3, indices []int32) {
	rings := segments / 2
	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) / float64(rings) * math.Pi
		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) / float64(segments) * 2 * math.Pi
			x := float32(math.Sin(phi)*math.Cos(theta)) * radius
			y := float32(math.Cos(phi)) * radius
			z := float32(math.Sin(phi)*math.Sin(theta)) * radius
			positions = append(positions, mgl32.Vec3{x, y, z})
		}
	}
	stride := int32(segments + 1)
	for ring := int32(0); ring < int32(rings); ring++ {
		for seg := int32(0); seg < int32(segments); seg++ {
			a := ring*stride + seg
			b := a + stride
			indices = append(indices, a, a+1, b, a+1, b+1, b)
		}
	}
	return positions, indices
}

var skyVertexShaderSource = `#version 330 core
layout(location = 0) in vec3 inPosition;

uniform mat4 viewProjection;
uniform vec3 cameraPos;

out vec3 worldDir;

void main() {
    worldDir = inPosition;
    // Pin the dome to the camera so it reads as infinitely far away.
    vec4 pos = viewProjection * vec4(inPosition + cameraPos, 1.0);
    gl_Position = pos.xyww; // force depth to the far plane
}
` + "\x00"

// Compact Preetham-style sky. Rayleigh and Mie extinction with analytic
// phase functions; good enough for a dome that is mostly read at a glance.
var skyFragmentShaderSource = `#version 330 core
in vec3 worldDir;

uniform vec3 sunPosition;
uniform float turbidity;
uniform float rayleigh;
uniform float mieCoefficient;
uniform float mieDirectionalG;
uniform float exposure;

out vec4 FragColor;

const vec3 up = vec3(0.0, 1.0, 0.0);
const float e = 2.71828182845904523536;
const float pi = 3.141592653589793238462;

const vec3 lambda = vec3(680e-9, 550e-9, 450e-9);
const vec3 totalRayleigh = vec3(5.804542996261093e-6, 1.3562911419845635e-5, 3.0265902468824876e-5);
const float v = 4.0;
const vec3 K = vec3(0.686, 0.678, 0.666);
const vec3 MieConst = vec3(1.8399918514433978e14, 2.7798023919660528e14, 4.0790479543861094e14);

const float cutoffAngle = 1.6110731556870734; // pi / 1.95
const float steepness = 1.5;
const float EE = 1000.0;

float sunAttenuation(float zenithAngleCos) {
    zenithAngleCos = clamp(zenithAngleCos, -1.0, 1.0);
    return EE * max(0.0, 1.0 - pow(e, -((cutoffAngle - acos(zenithAngleCos)) / steepness)));
}

vec3 totalMie(float T) {
    float c = (0.2 * T) * 10e-18;
    return 0.434 * c * MieConst;
}

float rayleighPhase(float cosTheta) {
    return (3.0 / (16.0 * pi)) * (1.0 + cosTheta * cosTheta);
}

float hgPhase(float cosTheta, float g) {
    float g2 = g * g;
    float inv = 1.0 / pow(1.0 - 2.0 * g * cosTheta + g2, 1.5);
    return (1.0 / (4.0 * pi)) * ((1.0 - g2) * inv);
}

void main() {
    vec3 direction = normalize(worldDir);
    vec3 sunDir = normalize(sunPosition);

    float sunE = sunAttenuation(dot(sunDir, up));
    float sunfade = 1.0 - clamp(1.0 - exp(sunDir.y), 0.0, 1.0);

    float rayleighCoefficient = rayleigh - (1.0 * (1.0 - sunfade));
    vec3 betaR = totalRayleigh * rayleighCoefficient;
    vec3 betaM = totalMie(turbidity) * mieCoefficient;

    // Optical length along the view ray
    float zenithAngle = acos(max(0.0, dot(up, direction)));
    float denom = cos(zenithAngle) + 0.15 * pow(93.885 - degrees(zenithAngle), -1.253);
    float sR = 8.4e3 / denom;
    float sM = 1.25e3 / denom;

    vec3 Fex = exp(-(betaR * sR + betaM * sM));

    float cosTheta = dot(direction, sunDir);
    vec3 betaRTheta = betaR * rayleighPhase(cosTheta * 0.5 + 0.5);
    vec3 betaMTheta = betaM * hgPhase(cosTheta, mieDirectionalG);

    vec3 Lin = pow(sunE * ((betaRTheta + betaMTheta) / (betaR + betaM)) * (1.0 - Fex), vec3(1.5));
    Lin *= mix(vec3(1.0),
        pow(sunE * ((betaRTheta + betaMTheta) / (betaR + betaM)) * Fex, vec3(0.5)),
        clamp(pow(1.0 - dot(up, sunDir), 5.0), 0.0, 1.0));

    // Night side base glow so the dome never goes fully black
    vec3 L0 = vec3(0.1) * Fex;

    // Sun disc
    float sundisk = smoothstep(0.9999566769, 0.9999766769, cosTheta);
    L0 += sunE * 19000.0 * Fex * sundisk;

    vec3 texColor = (Lin + L0) * 0.04 + vec3(0.0, 0.0003, 0.00075);
    vec3 mapped = vec3(1.0) - exp(-texColor * exposure * 50.0);
    mapped = pow(mapped, vec3(1.0 / (1.2 + 1.2 * sunfade)));

    FragColor = vec4(mapped, 1.0);
}
` + "\x00"

func InitSkyShader() Shader {
	return Shader{
		vertexSource:   skyVertexShaderSource,
		fragmentSource: skyFragmentShaderSource,
	}
}
