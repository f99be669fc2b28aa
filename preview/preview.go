// Package preview plots a composed scene snapshot from above: mesh
// footprints on the XY plane, light and camera markers, and a legend with
// the render settings. It is a diagnostic aid for inspecting scene files,
// not a render.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gekko3d/avatarforge"
)

// DefaultSize is the edge length of the square preview image in pixels.
const DefaultSize = 512

// worldExtent is the half-width of the plotted region in world units; the
// light rig and camera all sit within 10 units of the origin.
const worldExtent float32 = 10

var (
	backgroundColor = color.RGBA{20, 20, 24, 255}
	axisColor       = color.RGBA{55, 55, 64, 255}
	cameraColor     = color.RGBA{220, 220, 220, 255}
	defaultMarker   = color.RGBA{160, 160, 160, 255}
	textColor       = color.RGBA{200, 200, 200, 255}
)

// Render plots scene onto a fresh size-by-size image. A size of zero or less
// falls back to DefaultSize.
func Render(scene *avatarforge.SceneSnapshot, size int) *image.RGBA {
	if size <= 0 {
		size = DefaultSize
	}
	p := &plot{
		img:   image.NewRGBA(image.Rect(0, 0, size, size)),
		size:  size,
		scale: float32(size) / (2 * worldExtent),
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p.img.SetRGBA(x, y, backgroundColor)
		}
	}
	p.axes()

	for _, mesh := range scene.Meshes {
		p.mesh(mesh)
	}
	for _, light := range scene.Lights {
		p.disc(light.Position.X(), light.Position.Y(), 4, rgb(light.Color))
		px, py := p.at(light.Position.X(), light.Position.Y())
		p.label(px+8, py+4, light.Name, textColor)
	}
	for _, camera := range scene.Cameras {
		p.box(camera.Position.X(), camera.Position.Y(), 3, cameraColor)
		px, py := p.at(camera.Position.X(), camera.Position.Y())
		p.label(px+8, py+4, camera.Name, cameraColor)
	}
	p.legend(scene)

	return p.img
}

// Save renders scene and writes it to path as a PNG.
func Save(scene *avatarforge.SceneSnapshot, path string, size int) error {
	img := Render(scene, size)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}

type plot struct {
	img   *image.RGBA
	size  int
	scale float32
}

// at maps world XY to pixel coordinates, origin centered, world Y up.
func (p *plot) at(x, y float32) (int, int) {
	px := int(math32.Round(float32(p.size)/2 + x*p.scale))
	py := int(math32.Round(float32(p.size)/2 - y*p.scale))
	return px, py
}

func (p *plot) set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= p.size || y >= p.size {
		return
	}
	p.img.SetRGBA(x, y, c)
}

func (p *plot) axes() {
	mid := p.size / 2
	for i := 0; i < p.size; i++ {
		p.set(i, mid, axisColor)
		p.set(mid, i, axisColor)
	}
}

func (p *plot) mesh(m avatarforge.MeshRecord) {
	c := graphColor(m.Material)
	if m.Primitive == avatarforge.GeometryPlane {
		// The emitter plane is render-hidden; outline its footprint anyway.
		p.square(m.Transform.Position.X(), m.Transform.Position.Y(), m.Size/2, c)
		return
	}
	if m.HideRender {
		return
	}

	r := int(m.Transform.Scale.X() * p.scale)
	if r < 3 {
		r = 3
	}
	p.disc(m.Transform.Position.X(), m.Transform.Position.Y(), r, c)
	px, py := p.at(m.Transform.Position.X(), m.Transform.Position.Y())
	p.label(px+r+4, py+4, m.Name, textColor)
}

func (p *plot) disc(cx, cy float32, r int, c color.RGBA) {
	px, py := p.at(cx, cy)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if math32.Hypot(float32(dx), float32(dy)) <= float32(r) {
				p.set(px+dx, py+dy, c)
			}
		}
	}
}

// square outlines an axis-aligned square centered at world (cx, cy).
func (p *plot) square(cx, cy, half float32, c color.RGBA) {
	x0, y0 := p.at(cx-half, cy+half)
	x1, y1 := p.at(cx+half, cy-half)
	for x := x0; x <= x1; x++ {
		p.set(x, y0, c)
		p.set(x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		p.set(x0, y, c)
		p.set(x1, y, c)
	}
}

// box fills a small square of pixel half-width half centered at world (cx, cy).
func (p *plot) box(cx, cy float32, half int, c color.RGBA) {
	px, py := p.at(cx, cy)
	for y := py - half; y <= py+half; y++ {
		for x := px - half; x <= px+half; x++ {
			p.set(x, y, c)
		}
	}
}

func (p *plot) label(x, y int, text string, c color.RGBA) {
	d := font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func (p *plot) legend(scene *avatarforge.SceneSnapshot) {
	render := fmt.Sprintf("%s %d spp %dx%d",
		scene.Render.Engine, scene.Render.Samples,
		scene.Render.ResolutionX, scene.Render.ResolutionY)
	p.label(8, p.size-24, render, textColor)

	y := p.size - 10
	for _, particles := range scene.Particles {
		c := textColor
		for _, m := range scene.Meshes {
			if m.Id == particles.Prototype {
				c = graphColor(m.Material)
				break
			}
		}
		p.label(8, y, fmt.Sprintf("%s x%d", particles.Name, particles.Count), c)
		y -= 14
	}
}

// graphColor picks a display color for a shader graph: the principled base
// color or the emission color, whichever the graph carries.
func graphColor(g *avatarforge.ShaderGraphDef) color.RGBA {
	if g == nil {
		return defaultMarker
	}
	for _, node := range g.Nodes {
		switch {
		case node.Principled != nil:
			return rgba(node.Principled.BaseColor)
		case node.Emission != nil:
			return rgba(node.Emission.Color)
		}
	}
	return defaultMarker
}

func rgba(c [4]float32) color.RGBA {
	return color.RGBA{
		R: uint8(math32.Round(c[0] * 255)),
		G: uint8(math32.Round(c[1] * 255)),
		B: uint8(math32.Round(c[2] * 255)),
		A: 255,
	}
}

func rgb(c [3]float32) color.RGBA {
	return rgba([4]float32{c[0], c[1], c[2], 1})
}
