package avatarforge

import "github.com/go-gl/mathgl/mgl32"

// TransformDef carries position, XYZ euler rotation in radians, and per-axis
// scale. Radians are the engine's native angular unit.
type TransformDef struct {
	Position mgl32.Vec3 `json:"position"`
	Rotation mgl32.Vec3 `json:"rotation"`
	Scale    mgl32.Vec3 `json:"scale"`
}

func IdentityTransform() TransformDef {
	return TransformDef{Scale: mgl32.Vec3{1, 1, 1}}
}

// ApplyTransform writes rotation and scale from the input parameters onto the
// avatar body. Rotation arrives in degrees and is converted per axis; the
// single scale factor applies to all three axes. No-op when there is no body.
func ApplyTransform(obj *GeometryDef, params TransformParams) {
	if obj == nil {
		return
	}
	obj.Transform.Rotation = mgl32.Vec3{
		mgl32.DegToRad(params.Rotation[0]),
		mgl32.DegToRad(params.Rotation[1]),
		mgl32.DegToRad(params.Rotation[2]),
	}
	obj.Transform.Scale = mgl32.Vec3{params.Scale, params.Scale, params.Scale}
}
