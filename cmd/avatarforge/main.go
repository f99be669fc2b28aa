package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/gekko3d/avatarforge"
	"github.com/gekko3d/avatarforge/preview"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}
	if err := run(context.Background(), args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string) error {
	root := &cli.Command{
		Name:  "avatarforge",
		Usage: "Compose procedural avatar scenes from JSON parameter documents",
		Commands: []*cli.Command{
			generateCommand(),
			validateCommand(),
			inspectCommand(),
			previewCommand(),
		},
	}
	return root.Run(ctx, args)
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Compose a scene from avatar parameters and save it",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Required: true, Usage: "scene file to write"},
			&cli.StringFlag{Name: "params", Usage: "avatar parameters as inline JSON"},
			&cli.StringFlag{Name: "params-file", Usage: "avatar parameters file"},
			&cli.StringFlag{Name: "preview", Usage: "also plot the scene to this PNG"},
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			payload, err := paramsPayload(c)
			if err != nil {
				return err
			}
			params, err := avatarforge.ParseAvatarParams(payload)
			if err != nil {
				return err
			}

			logger := avatarforge.NewDefaultLogger("avatarforge", c.Bool("debug"))
			engine := avatarforge.NewSnapshotEngine()
			if err := avatarforge.NewComposer(engine, logger).Compose(params, c.String("output")); err != nil {
				return err
			}

			if path := c.String("preview"); path != "" {
				if err := preview.Save(engine.Scene(), path, preview.DefaultSize); err != nil {
					return err
				}
				logger.Infof("preview saved to %s", path)
			}
			return nil
		},
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check a parameter document without composing a scene",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "params", Usage: "avatar parameters as inline JSON"},
			&cli.StringFlag{Name: "params-file", Usage: "avatar parameters file"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			payload, err := paramsPayload(c)
			if err != nil {
				return err
			}
			params, err := avatarforge.ParseAvatarParams(payload)
			if err != nil {
				return err
			}
			fmt.Printf("ok: %s %s avatar, %d particles\n",
				params.Material.Type.Resolve(),
				geometryLabel(params.Geometry.Type),
				params.Environment.ParticleCount)
			return nil
		},
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Summarize a saved scene file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Required: true, Usage: "scene file to read"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			scene, err := avatarforge.LoadSnapshot(c.String("input"))
			if err != nil {
				return err
			}
			fmt.Printf("%s v%d\n", scene.Format, scene.Version)
			for _, mesh := range scene.Meshes {
				hidden := ""
				if mesh.HideRender {
					hidden = " (hidden)"
				}
				fmt.Printf("mesh    %-16s %s%s\n", mesh.Name, mesh.Primitive, hidden)
			}
			for _, light := range scene.Lights {
				fmt.Printf("light   %-16s %s %.0fW\n", light.Name, light.Kind, light.Energy)
			}
			for _, camera := range scene.Cameras {
				active := ""
				if camera.Id == scene.ActiveCamera {
					active = " (active)"
				}
				fmt.Printf("camera  %-16s%s\n", camera.Name, active)
			}
			for _, particles := range scene.Particles {
				fmt.Printf("particles %d x %s\n", particles.Count, particles.Name)
			}
			fmt.Printf("render  %s, %d samples, %dx%d\n",
				scene.Render.Engine, scene.Render.Samples,
				scene.Render.ResolutionX, scene.Render.ResolutionY)
			return nil
		},
	}
}

func previewCommand() *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "Plot a saved scene file as a schematic PNG",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Required: true, Usage: "scene file to read"},
			&cli.StringFlag{Name: "output", Required: true, Usage: "PNG file to write"},
			&cli.IntFlag{Name: "size", Value: preview.DefaultSize, Usage: "image edge length in pixels"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			scene, err := avatarforge.LoadSnapshot(c.String("input"))
			if err != nil {
				return err
			}
			return preview.Save(scene, c.String("output"), c.Int("size"))
		},
	}
}

// paramsPayload resolves the parameter document from --params or --params-file.
func paramsPayload(c *cli.Command) ([]byte, error) {
	inline := c.String("params")
	file := c.String("params-file")
	switch {
	case inline != "" && file != "":
		return nil, fmt.Errorf("use either --params or --params-file, not both")
	case inline != "":
		return []byte(inline), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read params file: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("one of --params or --params-file is required")
}

func geometryLabel(kind avatarforge.GeometryKind) string {
	if resolved := kind.Resolve(); resolved != avatarforge.GeometryNone {
		return string(resolved)
	}
	return "bodiless"
}
