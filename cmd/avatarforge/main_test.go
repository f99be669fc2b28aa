package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/avatarforge"
)

const demoParams = `{
  "material": {"color": [1.0, 0.0, 0.0, 1.0], "roughness": 0.5, "type": "metallic"},
  "geometry": {"type": "sphere", "subdivisions": 0, "wireframe": false},
  "transform": {"rotation": [0, 0, 0], "scale": 2.0},
  "environment": {"particleCount": 50, "particleColor": [0.0, 1.0, 1.0]}
}`

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	paramsPath := filepath.Join(dir, "params.json")
	require.NoError(t, os.WriteFile(paramsPath, []byte(demoParams), 0644))
	scenePath := filepath.Join(dir, "avatar.json")

	err := run(context.Background(), []string{
		"avatarforge", "generate",
		"--params-file", paramsPath,
		"--output", scenePath,
	})
	require.NoError(t, err)

	scene, err := avatarforge.LoadSnapshot(scenePath)
	require.NoError(t, err)
	assert.Len(t, scene.Meshes, 3)
	assert.Len(t, scene.Lights, 3)
	assert.NotEmpty(t, scene.ActiveCamera)
}

func TestGenerate_InlineParamsWithPreview(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "avatar.json")
	previewPath := filepath.Join(dir, "avatar.png")

	err := run(context.Background(), []string{
		"avatarforge", "generate",
		"--params", demoParams,
		"--output", scenePath,
		"--preview", previewPath,
	})
	require.NoError(t, err)

	_, err = os.Stat(scenePath)
	require.NoError(t, err)
	_, err = os.Stat(previewPath)
	require.NoError(t, err, "the preview PNG must be written")
}

func TestGenerate_MalformedParams(t *testing.T) {
	scenePath := filepath.Join(t.TempDir(), "avatar.json")

	err := run(context.Background(), []string{
		"avatarforge", "generate",
		"--params", `{"material": `,
		"--output", scenePath,
	})
	require.Error(t, err)

	_, statErr := os.Stat(scenePath)
	assert.True(t, os.IsNotExist(statErr), "no scene may be written for bad input")
}

func TestGenerate_ParamsSource(t *testing.T) {
	scenePath := filepath.Join(t.TempDir(), "avatar.json")

	err := run(context.Background(), []string{
		"avatarforge", "generate", "--output", scenePath,
	})
	require.Error(t, err, "one parameter source is required")

	err = run(context.Background(), []string{
		"avatarforge", "generate",
		"--params", demoParams,
		"--params-file", "params.json",
		"--output", scenePath,
	})
	require.Error(t, err, "two parameter sources are one too many")
}

func TestValidate(t *testing.T) {
	err := run(context.Background(), []string{
		"avatarforge", "validate", "--params", demoParams,
	})
	require.NoError(t, err)

	err = run(context.Background(), []string{
		"avatarforge", "validate", "--params", `{"material": {}}`,
	})
	require.Error(t, err, "missing sections fail validation")
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "avatar.json")
	require.NoError(t, run(context.Background(), []string{
		"avatarforge", "generate", "--params", demoParams, "--output", scenePath,
	}))

	err := run(context.Background(), []string{
		"avatarforge", "inspect", "--input", scenePath,
	})
	require.NoError(t, err)

	err = run(context.Background(), []string{
		"avatarforge", "inspect", "--input", filepath.Join(dir, "absent.json"),
	})
	require.Error(t, err)
}

func TestPreviewCommand(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "avatar.json")
	require.NoError(t, run(context.Background(), []string{
		"avatarforge", "generate", "--params", demoParams, "--output", scenePath,
	}))

	previewPath := filepath.Join(dir, "plot.png")
	err := run(context.Background(), []string{
		"avatarforge", "preview",
		"--input", scenePath,
		"--output", previewPath,
		"--size", "128",
	})
	require.NoError(t, err)

	_, err = os.Stat(previewPath)
	require.NoError(t, err)
}
