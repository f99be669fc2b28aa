package avatarforge

import "github.com/go-gl/mathgl/mgl32"

type LightKind string

const (
	LightArea  LightKind = "area"
	LightPoint LightKind = "point"
	LightSpot  LightKind = "spot"
)

type LightDef struct {
	Name     string     `json:"name"`
	Kind     LightKind  `json:"kind"`
	Position mgl32.Vec3 `json:"position"`
	Rotation mgl32.Vec3 `json:"rotation"`
	Color    [3]float32 `json:"color"`
	Energy   float32    `json:"energy"`
}

// LightRig is the fixed three-point setup every avatar scene gets: a white
// area key, a blue point fill, and a strong white spot rim aimed back down
// at the subject.
type LightRig struct {
	Key  LightDef
	Fill LightDef
	Rim  LightDef
}

// All returns the rig lights in composition order: key, fill, rim.
func (r LightRig) All() [3]LightDef {
	return [3]LightDef{r.Key, r.Fill, r.Rim}
}

func BuildLightRig() LightRig {
	return LightRig{
		Key: LightDef{
			Name:     "KeyLight",
			Kind:     LightArea,
			Position: mgl32.Vec3{5, 5, 5},
			Color:    [3]float32{1, 1, 1},
			Energy:   500,
		},
		Fill: LightDef{
			Name:     "FillLight",
			Kind:     LightPoint,
			Position: mgl32.Vec3{-5, -5, 2},
			Color:    [3]float32{0, 0.5, 1},
			Energy:   200,
		},
		Rim: LightDef{
			Name:     "RimLight",
			Kind:     LightSpot,
			Position: mgl32.Vec3{0, 5, -5},
			Rotation: mgl32.Vec3{mgl32.DegToRad(135), 0, 0},
			Color:    [3]float32{1, 1, 1},
			Energy:   1000,
		},
	}
}
