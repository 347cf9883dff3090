package emissive

// InjectionMarker is the line in the base fragment shader that gets replaced
// by ShaderChunk. Keeping the patch at the shading stage preserves the base
// material's lighting response; only the emissive term is extended.
const InjectionMarker = "// <window-grid>"

// ShaderChunk is the GLSL fragment spliced into the physically based surface
// shader for building-tagged materials. It derives a world-space grid cell
// from the fragment position (picking the Z/Y or X/Y plane from the dominant
// horizontal normal axis), hashes the cell into a stable lit/unlit decision,
// masks a rectangular window inside the cell and modulates it with a soft
// time-driven flicker. CellHash and Flicker in this package are the CPU
// mirrors of the hash and flicker below.
const ShaderChunk = `
    if (windowGridEnabled) {
        vec3 an = abs(normalize(Normal));
        // Only near-vertical faces get windows; roofs and the ground do not.
        if (max(an.x, an.z) > 0.35) {
            vec2 plane = (an.x >= an.z) ? FragPos.zy : FragPos.xy;
            vec2 cell = floor(plane / windowCellSize);
            float h = fract(sin(cell.x * 127.1 + cell.y * 311.7) * 43758.5453123);
            float lit = step(h, windowLitRatio);
            vec2 f = fract(plane / windowCellSize);
            vec2 inset = step(vec2(windowMargin), f) * step(f, vec2(1.0 - windowMargin));
            float mask = inset.x * inset.y;
            float flicker = 0.75 + 0.25 * sin(windowTime * 1.5 + h * 6.28318530718);
            emissive += windowTint * (mask * lit * flicker * windowIntensity);
        }
    }
`

// Uniform names shared between the chunk above and the renderer's per-frame
// uniform writes.
const (
	UniformEnabled   = "windowGridEnabled"
	UniformTime      = "windowTime"
	UniformIntensity = "windowIntensity"
	UniformTint      = "windowTint"
	UniformCellSize  = "windowCellSize"
	UniformLitRatio  = "windowLitRatio"
	UniformMargin    = "windowMargin"
)
