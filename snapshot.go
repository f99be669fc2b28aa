package avatarforge

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

const (
	SnapshotFormat  = "avatarforge.scene"
	SnapshotVersion = 1
)

// SceneSnapshot is the persisted form of a composed scene: every def the
// composer created, each under the id the engine minted for it.
type SceneSnapshot struct {
	Format       string           `json:"format"`
	Version      int              `json:"version"`
	Meshes       []MeshRecord     `json:"meshes"`
	Lights       []LightRecord    `json:"lights"`
	Cameras      []CameraRecord   `json:"cameras"`
	ActiveCamera ObjectId         `json:"active_camera,omitempty"`
	Particles    []ParticleRecord `json:"particle_systems,omitempty"`
	Render       RenderDef        `json:"render"`
}

type MeshRecord struct {
	Id ObjectId `json:"id"`
	GeometryDef
}

type LightRecord struct {
	Id ObjectId `json:"id"`
	LightDef
}

type CameraRecord struct {
	Id ObjectId `json:"id"`
	CameraDef
}

type ParticleRecord struct {
	Id        ObjectId `json:"id"`
	Emitter   ObjectId `json:"emitter"`
	Prototype ObjectId `json:"prototype"`
	ParticleSystemDef
}

// SnapshotEngine is a HostEngine that records every def into a SceneSnapshot
// instead of driving a live renderer. Ids are derived from object names, so
// composing the same parameters twice yields byte-identical snapshots.
type SnapshotEngine struct {
	scene SceneSnapshot
	names map[string]int
}

func NewSnapshotEngine() *SnapshotEngine {
	e := &SnapshotEngine{}
	e.Reset()
	return e
}

func (e *SnapshotEngine) Reset() {
	e.scene = SceneSnapshot{
		Format:  SnapshotFormat,
		Version: SnapshotVersion,
	}
	e.names = make(map[string]int)
}

// makeObjectId mints a stable id for name. Repeated names get a numeric
// suffix before hashing so each object still receives a distinct id.
func (e *SnapshotEngine) makeObjectId(name string) ObjectId {
	n := e.names[name]
	e.names[name] = n + 1
	if n > 0 {
		name = fmt.Sprintf("%s.%03d", name, n)
	}
	return ObjectId(uuid.NewSHA1(uuid.NameSpaceOID, []byte("avatarforge/"+name)).String())
}

func (e *SnapshotEngine) AddMesh(def GeometryDef) ObjectId {
	id := e.makeObjectId(def.Name)
	e.scene.Meshes = append(e.scene.Meshes, MeshRecord{Id: id, GeometryDef: def})
	return id
}

func (e *SnapshotEngine) AddLight(def LightDef) ObjectId {
	id := e.makeObjectId(def.Name)
	e.scene.Lights = append(e.scene.Lights, LightRecord{Id: id, LightDef: def})
	return id
}

func (e *SnapshotEngine) AddCamera(def CameraDef) ObjectId {
	id := e.makeObjectId(def.Name)
	e.scene.Cameras = append(e.scene.Cameras, CameraRecord{Id: id, CameraDef: def})
	return id
}

func (e *SnapshotEngine) SetActiveCamera(id ObjectId) {
	e.scene.ActiveCamera = id
}

func (e *SnapshotEngine) AddParticleSystem(emitter ObjectId, def ParticleSystemDef, prototype ObjectId) {
	e.scene.Particles = append(e.scene.Particles, ParticleRecord{
		Id:                e.makeObjectId(def.Name),
		Emitter:           emitter,
		Prototype:         prototype,
		ParticleSystemDef: def,
	})
}

func (e *SnapshotEngine) SetRender(def RenderDef) {
	e.scene.Render = def
}

// Scene exposes the snapshot assembled so far.
func (e *SnapshotEngine) Scene() *SceneSnapshot {
	return &e.scene
}

func (e *SnapshotEngine) Save(path string) error {
	data, err := json.MarshalIndent(&e.scene, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot back from disk, rejecting files that are not
// avatarforge scenes or that carry a version this build does not understand.
func LoadSnapshot(path string) (*SceneSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var scene SceneSnapshot
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("unmarshal scene: %w", err)
	}
	if scene.Format != SnapshotFormat {
		return nil, fmt.Errorf("not an avatarforge scene: format %q", scene.Format)
	}
	if scene.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported scene version %d", scene.Version)
	}
	return &scene, nil
}
