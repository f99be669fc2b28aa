package avatarforge

// ObjectId identifies an object created in a host engine. Ids are opaque to
// callers; the engine decides how they are minted.
type ObjectId string

type RenderEngineKind string

const RenderEngineCycles RenderEngineKind = "cycles"

type RenderDef struct {
	Engine          RenderEngineKind `json:"engine"`
	Samples         int              `json:"samples"`
	ResolutionX     int              `json:"resolution_x"`
	ResolutionY     int              `json:"resolution_y"`
	FilmTransparent bool             `json:"film_transparent"`
}

// DefaultRender is the preview-grade configuration every composed scene
// ships with: path tracing at a low sample count on a square transparent
// frame.
func DefaultRender() RenderDef {
	return RenderDef{
		Engine:          RenderEngineCycles,
		Samples:         32,
		ResolutionX:     1024,
		ResolutionY:     1024,
		FilmTransparent: true,
	}
}

// HostEngine is the target a Composer drives. Creation operations accept
// fully built defs and return handles; they never fail. Only Save touches
// the outside world, and only Save returns an error.
type HostEngine interface {
	// Reset drops all previously created objects and settings.
	Reset()

	AddMesh(def GeometryDef) ObjectId
	AddLight(def LightDef) ObjectId
	AddCamera(def CameraDef) ObjectId

	// SetActiveCamera marks the camera the scene renders through.
	SetActiveCamera(id ObjectId)

	// AddParticleSystem attaches a particle system to the emitter mesh,
	// instancing the prototype mesh for every particle.
	AddParticleSystem(emitter ObjectId, def ParticleSystemDef, prototype ObjectId)

	SetRender(def RenderDef)

	// Save persists the assembled scene to path.
	Save(path string) error
}
