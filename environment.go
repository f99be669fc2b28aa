package avatarforge

type ParticlePhysicsKind string

type ParticleRenderKind string

const (
	ParticlePhysicsNone  ParticlePhysicsKind = "none"
	ParticleRenderObject ParticleRenderKind  = "object"
)

const (
	emitterSize     float32 = 10
	prototypeRadius float32 = 0.1
	particleFrame           = 1
	particleLifetime        = 100

	// ParticleEmissionStrength is the emission strength of the particle
	// prototype material, brighter than the avatar's AvatarEmissionStrength.
	ParticleEmissionStrength float32 = 10.0
)

// ParticleSystemDef describes a burst of particles emitted on the first
// frame: no physics, every particle a rendered instance of the prototype
// object.
type ParticleSystemDef struct {
	Name       string              `json:"name"`
	Count      int                 `json:"count"`
	FrameStart int                 `json:"frame_start"`
	FrameEnd   int                 `json:"frame_end"`
	Lifetime   int                 `json:"lifetime"`
	Physics    ParticlePhysicsKind `json:"physics"`
	Render     ParticleRenderKind  `json:"render"`
}

// ParticleEnvironmentDef bundles the three pieces a particle environment
// needs: the hidden emitter plane, the system settings, and the hidden
// prototype sphere the particles instance.
type ParticleEnvironmentDef struct {
	Emitter   GeometryDef
	System    ParticleSystemDef
	Prototype GeometryDef
}

func BuildEnvironment(params EnvironmentParams) ParticleEnvironmentDef {
	material := EmissionGraph("ParticleMat", params.ParticleColor, ParticleEmissionStrength)
	return ParticleEnvironmentDef{
		Emitter: GeometryDef{
			Name:       "ParticleEmitter",
			Primitive:  GeometryPlane,
			Size:       emitterSize,
			Transform:  IdentityTransform(),
			HideRender: true,
		},
		System: ParticleSystemDef{
			Name:       "Particles",
			Count:      params.ParticleCount,
			FrameStart: particleFrame,
			FrameEnd:   particleFrame,
			Lifetime:   particleLifetime,
			Physics:    ParticlePhysicsNone,
			Render:     ParticleRenderObject,
		},
		Prototype: GeometryDef{
			Name:       "ParticleProto",
			Primitive:  GeometryIcosahedron,
			Radius:     prototypeRadius,
			Material:   &material,
			Transform:  IdentityTransform(),
			HideRender: true,
		},
	}
}
