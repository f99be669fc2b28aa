package avatarforge

// ShaderNodeKind identifies a node the host engine can instantiate.
type ShaderNodeKind string

const (
	ShaderNodeOutput     ShaderNodeKind = "output"
	ShaderNodePrincipled ShaderNodeKind = "principled"
	ShaderNodeEmission   ShaderNodeKind = "emission"
)

// AvatarEmissionStrength is the emission strength of an emissive avatar
// surface.
const AvatarEmissionStrength float32 = 5.0

// ShaderGraphDef describes one material as a node graph. The engine contract
// is descriptive only: nodes and links, no live objects.
type ShaderGraphDef struct {
	Name  string          `json:"name"`
	Nodes []ShaderNodeDef `json:"nodes"`
	Links []ShaderLinkDef `json:"links"`
}

// ShaderNodeDef is one node of the graph. The input block matching Kind is
// set; an output node carries none.
type ShaderNodeDef struct {
	Kind       ShaderNodeKind    `json:"kind"`
	Principled *PrincipledInputs `json:"principled,omitempty"`
	Emission   *EmissionInputs   `json:"emission,omitempty"`
}

// ShaderLinkDef connects an output socket to an input socket, nodes named by
// index into ShaderGraphDef.Nodes.
type ShaderLinkDef struct {
	FromNode   int    `json:"from_node"`
	FromSocket string `json:"from_socket"`
	ToNode     int    `json:"to_node"`
	ToSocket   string `json:"to_socket"`
}

// PrincipledInputs are the inputs set on a principled BSDF node. Zero values
// mean the engine default: non-metallic, opaque, no emission.
type PrincipledInputs struct {
	BaseColor        [4]float32 `json:"base_color"`
	Roughness        float32    `json:"roughness"`
	Metallic         float32    `json:"metallic"`
	Transmission     float32    `json:"transmission"`
	EmissionColor    [4]float32 `json:"emission_color"`
	EmissionStrength float32    `json:"emission_strength"`
}

// EmissionInputs are the inputs of a bare emission node.
type EmissionInputs struct {
	Color    [4]float32 `json:"color"`
	Strength float32    `json:"strength"`
}

// SynthesizeMaterial maps material parameters to the avatar's shader graph:
// one principled node feeding one output node.
//
// Kind branches:
//   - metallic: fully metallic, opaque.
//   - glass: transmission 1 and roughness forced to 0, whatever the input
//     roughness was.
//   - emissive: emission color = base color at AvatarEmissionStrength,
//     layered onto the principled node.
//   - anything else, "default" included: plain surface, no extra inputs.
//
// Unrecognized kinds take the default branch silently.
func SynthesizeMaterial(params MaterialParams) ShaderGraphDef {
	principled := PrincipledInputs{
		BaseColor: params.Color,
		Roughness: params.Roughness,
	}

	switch params.Type.Resolve() {
	case MaterialMetallic:
		principled.Metallic = 1.0
	case MaterialGlass:
		principled.Transmission = 1.0
		principled.Roughness = 0.0
	case MaterialEmissive:
		principled.EmissionColor = params.Color
		principled.EmissionStrength = AvatarEmissionStrength
	}

	return ShaderGraphDef{
		Name: "AvatarMaterial",
		Nodes: []ShaderNodeDef{
			{Kind: ShaderNodeOutput},
			{Kind: ShaderNodePrincipled, Principled: &principled},
		},
		Links: []ShaderLinkDef{
			{FromNode: 1, FromSocket: "bsdf", ToNode: 0, ToSocket: "surface"},
		},
	}
}

// EmissionGraph builds an emission-only graph: one emission node feeding one
// output node. Alpha is pinned to 1.
func EmissionGraph(name string, color [3]float32, strength float32) ShaderGraphDef {
	emission := EmissionInputs{
		Color:    [4]float32{color[0], color[1], color[2], 1.0},
		Strength: strength,
	}
	return ShaderGraphDef{
		Name: name,
		Nodes: []ShaderNodeDef{
			{Kind: ShaderNodeOutput},
			{Kind: ShaderNodeEmission, Emission: &emission},
		},
		Links: []ShaderLinkDef{
			{FromNode: 1, FromSocket: "emission", ToNode: 0, ToSocket: "surface"},
		},
	}
}
