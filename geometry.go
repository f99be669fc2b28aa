package avatarforge

// ModifierKind is a non-destructive mesh modifier the engine can stack on a
// primitive.
type ModifierKind string

const (
	ModifierSubsurf   ModifierKind = "subsurf"
	ModifierWireframe ModifierKind = "wireframe"
)

// wireframeThickness is fixed for every wireframe modifier.
const wireframeThickness float32 = 0.02

// ModifierDef describes one entry of a modifier stack. Levels applies to
// subsurf, Thickness to wireframe.
type ModifierDef struct {
	Kind      ModifierKind `json:"kind"`
	Levels    int          `json:"levels,omitempty"`
	Thickness float32      `json:"thickness,omitempty"`
}

// GeometryDef describes a mesh object: base primitive, modifier stack,
// optional material, transform. Subdivisions is the icosahedron's direct
// subdivision level; cube smoothing goes through a subsurf modifier instead.
// Radius and Size parameterize the environment's icosphere prototype and
// emitter plane; zero means the engine default.
type GeometryDef struct {
	Name         string          `json:"name"`
	Primitive    GeometryKind    `json:"primitive"`
	Subdivisions int             `json:"subdivisions,omitempty"`
	Radius       float32         `json:"radius,omitempty"`
	Size         float32         `json:"size,omitempty"`
	Modifiers    []ModifierDef   `json:"modifiers,omitempty"`
	Material     *ShaderGraphDef `json:"material,omitempty"`
	Transform    TransformDef    `json:"transform"`
	HideRender   bool            `json:"hide_render,omitempty"`
}

// BuildGeometry selects the avatar base primitive and assembles its modifier
// stack. An unrecognized kind yields nil: no avatar body, and the rest of the
// scene is still built. The material is attached only when an object was
// created.
func BuildGeometry(params GeometryParams, material *ShaderGraphDef) *GeometryDef {
	kind := params.Type.Resolve()
	if kind == GeometryNone {
		return nil
	}

	obj := &GeometryDef{
		Name:      "Avatar",
		Primitive: kind,
		Transform: IdentityTransform(),
	}

	switch kind {
	case GeometryIcosahedron:
		obj.Subdivisions = params.Subdivisions
	case GeometryCube:
		obj.Modifiers = append(obj.Modifiers, ModifierDef{
			Kind:   ModifierSubsurf,
			Levels: params.Subdivisions,
		})
	}
	// Torus and sphere keep their default parameterization; subdivisions are
	// ignored for them.

	if params.Wireframe {
		obj.Modifiers = append(obj.Modifiers, ModifierDef{
			Kind:      ModifierWireframe,
			Thickness: wireframeThickness,
		})
	}

	obj.Material = material
	return obj
}
