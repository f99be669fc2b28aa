package avatarforge

import "encoding/json"

// MaterialKind selects the shader parameterization of the avatar surface.
type MaterialKind string

const (
	MaterialMetallic MaterialKind = "metallic"
	MaterialGlass    MaterialKind = "glass"
	MaterialEmissive MaterialKind = "emissive"
	// MaterialDefault is the plain diffuse-like surface and the explicit
	// fallback for any unrecognized kind.
	MaterialDefault MaterialKind = "default"
)

// Resolve maps unrecognized kinds to MaterialDefault. The fallback is policy,
// not an error.
func (k MaterialKind) Resolve() MaterialKind {
	switch k {
	case MaterialMetallic, MaterialGlass, MaterialEmissive:
		return k
	}
	return MaterialDefault
}

// GeometryKind names a base primitive.
type GeometryKind string

const (
	GeometryIcosahedron GeometryKind = "icosahedron"
	GeometryTorus       GeometryKind = "torus"
	GeometryCube        GeometryKind = "cube"
	GeometrySphere      GeometryKind = "sphere"
	// GeometryPlane is not a valid avatar primitive; the environment builder
	// uses it for the particle emitter surface.
	GeometryPlane GeometryKind = "plane"
	// GeometryNone is the explicit fallback for unrecognized avatar kinds: no
	// avatar body gets built.
	GeometryNone GeometryKind = ""
)

// Resolve maps anything outside the four avatar primitives to GeometryNone.
func (k GeometryKind) Resolve() GeometryKind {
	switch k {
	case GeometryIcosahedron, GeometryTorus, GeometryCube, GeometrySphere:
		return k
	}
	return GeometryNone
}

// AvatarParams is the parsed input document. All four sections are required;
// a missing section is a fatal configuration error.
type AvatarParams struct {
	Material    *MaterialParams    `json:"material"`
	Geometry    *GeometryParams    `json:"geometry"`
	Transform   *TransformParams   `json:"transform"`
	Environment *EnvironmentParams `json:"environment"`
}

type MaterialParams struct {
	Color     [4]float32   `json:"color"` // RGBA, 0..1
	Roughness float32      `json:"roughness"`
	Type      MaterialKind `json:"type"`
}

type GeometryParams struct {
	Type         GeometryKind `json:"type"`
	Subdivisions int          `json:"subdivisions"` // icosahedron and cube only
	Wireframe    bool         `json:"wireframe"`
}

type TransformParams struct {
	Rotation [3]float32 `json:"rotation"` // degrees per axis
	Scale    float32    `json:"scale"`    // uniform
}

type EnvironmentParams struct {
	ParticleCount int        `json:"particleCount"`
	ParticleColor [3]float32 `json:"particleColor"` // RGB, 0..1
}

// ParseAvatarParams decodes and validates a parameter document. Malformed
// JSON and missing sections come back as *ConfigError; out-of-range numerics
// are clamped, not rejected.
func ParseAvatarParams(data []byte) (*AvatarParams, error) {
	var params AvatarParams
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, configWrap(err, "invalid parameter JSON")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	params.normalize()
	return &params, nil
}

// Validate checks that every required section is present.
func (p *AvatarParams) Validate() error {
	switch {
	case p.Material == nil:
		return configErrorf("parameter document is missing %q", "material")
	case p.Geometry == nil:
		return configErrorf("parameter document is missing %q", "geometry")
	case p.Transform == nil:
		return configErrorf("parameter document is missing %q", "transform")
	case p.Environment == nil:
		return configErrorf("parameter document is missing %q", "environment")
	}
	return nil
}

// normalize clamps numeric inputs into their documented ranges. Bad values
// degrade; they never abort.
func (p *AvatarParams) normalize() {
	for i, c := range p.Material.Color {
		p.Material.Color[i] = clamp01(c)
	}
	p.Material.Roughness = clamp01(p.Material.Roughness)
	if p.Geometry.Subdivisions < 0 {
		p.Geometry.Subdivisions = 0
	}
	if p.Environment.ParticleCount < 0 {
		p.Environment.ParticleCount = 0
	}
	for i, c := range p.Environment.ParticleColor {
		p.Environment.ParticleColor[i] = clamp01(c)
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
