package avatarforge

import "github.com/go-gl/mathgl/mgl32"

type CameraDef struct {
	Name     string     `json:"name"`
	Position mgl32.Vec3 `json:"position"`
	Rotation mgl32.Vec3 `json:"rotation"`
}

// BuildCamera places the scene camera south of the subject, raised and
// pitched down so the avatar fills the frame.
func BuildCamera() CameraDef {
	return CameraDef{
		Name:     "Camera",
		Position: mgl32.Vec3{0, -8, 4},
		Rotation: mgl32.Vec3{mgl32.DegToRad(60), 0, 0},
	}
}
