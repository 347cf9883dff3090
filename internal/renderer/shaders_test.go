package renderer

import (
	"strings"
	"testing"

	"github.com/fumi-217/acg-tokyo-tower/internal/emissive"
)

func TestBuildSceneFragmentSourceInjectsChunk(t *testing.T) {
	source := BuildSceneFragmentSource(emissive.ShaderChunk)

	if strings.Contains(source, windowGridMarker) {
		t.Error("injection marker should be consumed by the chunk splice")
	}
	if !strings.Contains(source, "43758.5453123") {
		t.Error("window grid hash not present in spliced shader")
	}
	// The splice must not disturb the surrounding emissive handling
	if !strings.Contains(source, "color += emissive;") {
		t.Error("base emissive accumulation lost during splice")
	}
}

func TestSceneFragmentDeclaresChunkUniforms(t *testing.T) {
	uniforms := []string{
		emissive.UniformEnabled,
		emissive.UniformTime,
		emissive.UniformIntensity,
		emissive.UniformTint,
		emissive.UniformCellSize,
		emissive.UniformLitRatio,
		emissive.UniformMargin,
	}
	for _, name := range uniforms {
		if !strings.Contains(sceneFragmentShaderSource, name+";") {
			t.Errorf("scene fragment shader missing uniform %q", name)
		}
	}
}

func TestBuildSceneFragmentSourceWithoutChunk(t *testing.T) {
	source := BuildSceneFragmentSource("")
	if strings.Contains(source, "windowGridEnabled)") && strings.Contains(source, "an.x >= an.z") {
		t.Error("empty chunk should leave no window grid logic behind")
	}
	if !strings.Contains(source, "FragColor") {
		t.Error("shader body damaged by empty splice")
	}
}

func TestShaderIsValid(t *testing.T) {
	var empty Shader
	if empty.IsValid() {
		t.Error("zero value shader should not be valid")
	}
	s := InitSceneShader(emissive.ShaderChunk)
	if !s.IsValid() {
		t.Error("scene shader should carry both stages")
	}
	for _, shader := range []Shader{InitSkyShader(), InitStarShader(), InitSpriteShader()} {
		if !shader.IsValid() {
			t.Error("auxiliary shader missing a stage")
		}
	}
}

func TestShaderSourcesNullTerminated(t *testing.T) {
	sources := []string{
		sceneVertexShaderSource, sceneFragmentShaderSource,
		skyVertexShaderSource, skyFragmentShaderSource,
		starVertexShaderSource, starFragmentShaderSource,
		spriteVertexShaderSource, spriteFragmentShaderSource,
	}
	for i, src := range sources {
		if !strings.HasSuffix(src, "\x00") {
			t.Errorf("shader source %d not null terminated", i)
		}
	}
}
