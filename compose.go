package avatarforge

// Composer assembles full avatar scenes into a host engine from parsed
// parameter documents.
type Composer struct {
	engine HostEngine
	log    Logger
}

func NewComposer(engine HostEngine, log Logger) *Composer {
	if log == nil {
		log = NewNopLogger()
	}
	return &Composer{engine: engine, log: log}
}

// Compose resets the engine, builds the avatar body, lighting rig, camera
// and particle environment from params, and saves the result to outputPath.
// The engine is left holding the composed scene whether or not the save
// succeeds.
func (c *Composer) Compose(params *AvatarParams, outputPath string) error {
	if params == nil {
		return configErrorf("nil avatar parameters")
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if outputPath == "" {
		return configErrorf("empty output path")
	}

	c.engine.Reset()

	shader := SynthesizeMaterial(*params.Material)
	c.log.Debugf("synthesized %s material as %q", params.Material.Type.Resolve(), shader.Name)

	body := BuildGeometry(*params.Geometry, &shader)
	if body == nil {
		c.log.Warnf("unrecognized geometry kind %q, composing without an avatar body", params.Geometry.Type)
	} else {
		ApplyTransform(body, *params.Transform)
		id := c.engine.AddMesh(*body)
		c.log.Debugf("added %s avatar body as %s", body.Primitive, id)
	}

	for _, light := range BuildLightRig().All() {
		c.engine.AddLight(light)
	}

	camera := c.engine.AddCamera(BuildCamera())
	c.engine.SetActiveCamera(camera)

	env := BuildEnvironment(*params.Environment)
	emitter := c.engine.AddMesh(env.Emitter)
	prototype := c.engine.AddMesh(env.Prototype)
	c.engine.AddParticleSystem(emitter, env.System, prototype)
	c.log.Debugf("added particle system with %d particles", env.System.Count)

	c.engine.SetRender(DefaultRender())

	if err := c.engine.Save(outputPath); err != nil {
		return err
	}
	c.log.Infof("scene saved to %s", outputPath)
	return nil
}
