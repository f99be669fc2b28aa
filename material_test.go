package avatarforge

import "testing"

func principledOf(t *testing.T, graph ShaderGraphDef) *PrincipledInputs {
	t.Helper()
	for _, node := range graph.Nodes {
		if node.Kind == ShaderNodePrincipled {
			if node.Principled == nil {
				t.Fatal("Principled node is missing its inputs")
			}
			return node.Principled
		}
	}
	t.Fatal("Graph has no principled node")
	return nil
}

func TestSynthesizeMaterial_Metallic(t *testing.T) {
	graph := SynthesizeMaterial(MaterialParams{
		Color:     [4]float32{1, 0, 0, 1},
		Roughness: 0.5,
		Type:      MaterialMetallic,
	})

	principled := principledOf(t, graph)
	if principled.Metallic != 1.0 {
		t.Errorf("Expected metallic 1.0, got %v", principled.Metallic)
	}
	if principled.BaseColor != [4]float32{1, 0, 0, 1} {
		t.Errorf("Expected base color to pass through, got %v", principled.BaseColor)
	}
	if principled.Roughness != 0.5 {
		t.Errorf("Expected roughness 0.5, got %v", principled.Roughness)
	}
	if principled.Transmission != 0 {
		t.Errorf("Expected no transmission on a metallic surface, got %v", principled.Transmission)
	}
	if principled.EmissionStrength != 0 {
		t.Errorf("Expected no emission on a metallic surface, got %v", principled.EmissionStrength)
	}
}

func TestSynthesizeMaterial_GlassForcesZeroRoughness(t *testing.T) {
	graph := SynthesizeMaterial(MaterialParams{
		Color:     [4]float32{0.5, 0.5, 1, 1},
		Roughness: 0.8,
		Type:      MaterialGlass,
	})

	principled := principledOf(t, graph)
	if principled.Transmission != 1.0 {
		t.Errorf("Expected transmission 1.0, got %v", principled.Transmission)
	}
	if principled.Roughness != 0 {
		t.Errorf("Glass must override roughness to 0, got %v", principled.Roughness)
	}
}

func TestSynthesizeMaterial_Emissive(t *testing.T) {
	color := [4]float32{0, 1, 0, 1}
	graph := SynthesizeMaterial(MaterialParams{
		Color:     color,
		Roughness: 0.2,
		Type:      MaterialEmissive,
	})

	principled := principledOf(t, graph)
	if principled.EmissionColor != color {
		t.Errorf("Expected emission color %v, got %v", color, principled.EmissionColor)
	}
	if principled.EmissionStrength != AvatarEmissionStrength {
		t.Errorf("Expected emission strength %v, got %v", AvatarEmissionStrength, principled.EmissionStrength)
	}
	// Emission layers onto the surface, it does not replace it.
	if principled.BaseColor != color {
		t.Errorf("Expected base color %v alongside emission, got %v", color, principled.BaseColor)
	}
}

func TestSynthesizeMaterial_UnknownFallsBackToDefault(t *testing.T) {
	for _, kind := range []MaterialKind{MaterialDefault, "chrome", ""} {
		graph := SynthesizeMaterial(MaterialParams{
			Color:     [4]float32{0.3, 0.3, 0.3, 1},
			Roughness: 0.4,
			Type:      kind,
		})

		principled := principledOf(t, graph)
		if principled.Metallic != 0 || principled.Transmission != 0 || principled.EmissionStrength != 0 {
			t.Errorf("Kind %q: expected a plain surface, got %+v", kind, principled)
		}
		if principled.Roughness != 0.4 {
			t.Errorf("Kind %q: expected roughness 0.4, got %v", kind, principled.Roughness)
		}
	}
}

func TestSynthesizeMaterial_GraphShape(t *testing.T) {
	graph := SynthesizeMaterial(MaterialParams{Type: MaterialMetallic})

	if graph.Name != "AvatarMaterial" {
		t.Errorf("Expected graph name AvatarMaterial, got %q", graph.Name)
	}
	if len(graph.Nodes) != 2 {
		t.Fatalf("Expected 2 nodes, got %d", len(graph.Nodes))
	}
	if graph.Nodes[0].Kind != ShaderNodeOutput {
		t.Errorf("Expected node 0 to be the output, got %q", graph.Nodes[0].Kind)
	}
	if graph.Nodes[1].Kind != ShaderNodePrincipled {
		t.Errorf("Expected node 1 to be the principled BSDF, got %q", graph.Nodes[1].Kind)
	}
	if len(graph.Links) != 1 {
		t.Fatalf("Expected 1 link, got %d", len(graph.Links))
	}
	link := graph.Links[0]
	if link.FromNode != 1 || link.FromSocket != "bsdf" || link.ToNode != 0 || link.ToSocket != "surface" {
		t.Errorf("Expected bsdf->surface link, got %+v", link)
	}
}

func TestEmissionGraph(t *testing.T) {
	graph := EmissionGraph("ParticleMat", [3]float32{0, 1, 1}, 10)

	if graph.Name != "ParticleMat" {
		t.Errorf("Expected graph name ParticleMat, got %q", graph.Name)
	}
	if len(graph.Nodes) != 2 {
		t.Fatalf("Expected 2 nodes, got %d", len(graph.Nodes))
	}
	emission := graph.Nodes[1].Emission
	if emission == nil {
		t.Fatal("Emission node is missing its inputs")
	}
	if emission.Color != [4]float32{0, 1, 1, 1} {
		t.Errorf("Expected alpha pinned to 1, got %v", emission.Color)
	}
	if emission.Strength != 10 {
		t.Errorf("Expected strength 10, got %v", emission.Strength)
	}
	link := graph.Links[0]
	if link.FromSocket != "emission" || link.ToSocket != "surface" {
		t.Errorf("Expected emission->surface link, got %+v", link)
	}
}
