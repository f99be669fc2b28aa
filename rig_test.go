package avatarforge

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestBuildLightRig(t *testing.T) {
	rig := BuildLightRig()

	assert.Equal(t, "KeyLight", rig.Key.Name)
	assert.Equal(t, LightArea, rig.Key.Kind)
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, rig.Key.Position)
	assert.Equal(t, [3]float32{1, 1, 1}, rig.Key.Color)
	assert.Equal(t, float32(500), rig.Key.Energy)

	assert.Equal(t, "FillLight", rig.Fill.Name)
	assert.Equal(t, LightPoint, rig.Fill.Kind)
	assert.Equal(t, mgl32.Vec3{-5, -5, 2}, rig.Fill.Position)
	assert.Equal(t, [3]float32{0, 0.5, 1}, rig.Fill.Color, "fill is the blue accent")
	assert.Equal(t, float32(200), rig.Fill.Energy)

	assert.Equal(t, "RimLight", rig.Rim.Name)
	assert.Equal(t, LightSpot, rig.Rim.Kind)
	assert.Equal(t, mgl32.Vec3{0, 5, -5}, rig.Rim.Position)
	assert.InDelta(t, mgl32.DegToRad(135), rig.Rim.Rotation.X(), 1e-6, "rim pitched back at the subject")
	assert.Equal(t, [3]float32{1, 1, 1}, rig.Rim.Color)
	assert.Equal(t, float32(1000), rig.Rim.Energy)
}

func TestLightRig_All(t *testing.T) {
	lights := BuildLightRig().All()

	// Composition order is key, fill, rim.
	if lights[0].Kind != LightArea || lights[1].Kind != LightPoint || lights[2].Kind != LightSpot {
		t.Errorf("Expected area/point/spot order, got %q/%q/%q",
			lights[0].Kind, lights[1].Kind, lights[2].Kind)
	}
}

func TestBuildLightRig_Stable(t *testing.T) {
	if BuildLightRig() != BuildLightRig() {
		t.Error("Expected the rig to be identical on every build")
	}
}

func TestBuildCamera(t *testing.T) {
	camera := BuildCamera()

	assert.Equal(t, "Camera", camera.Name)
	assert.Equal(t, mgl32.Vec3{0, -8, 4}, camera.Position)
	assert.InDelta(t, mgl32.DegToRad(60), camera.Rotation.X(), 1e-6, "pitched down at the avatar")
	assert.Equal(t, float32(0), camera.Rotation.Y())
	assert.Equal(t, float32(0), camera.Rotation.Z())
}
