// pkg/render/ebiten_canvas.go
package render

import (
	"bytes"
	"image/color"
	"log"
	"math"

	"go-decryptviz/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const glowTextureSize = 64

// Resources are the GPU-side helpers shared by every EbitenCanvas of a host:
// the 1x1 white source image for triangles, the radial glow sprite and the
// HUD font. They are created once, after the ebiten loop has started.
type Resources struct {
	whiteImg *ebiten.Image
	glowImg  *ebiten.Image
	font     *text.GoTextFaceSource
}

// NewResources builds the shared drawing resources.
func NewResources() *Resources {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("[render] failed to load HUD font: %v", err)
	}

	return &Resources{
		whiteImg: white,
		glowImg:  newGlowTexture(glowTextureSize),
		font:     src,
	}
}

// newGlowTexture renders a white radial falloff used to fake a shadow blur.
func newGlowTexture(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	pixels := make([]byte, size*size*4)
	center := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-center, float64(y)+0.5-center
			d := math.Sqrt(dx*dx+dy*dy) / center
			if d >= 1 {
				continue
			}
			// smooth quadratic falloff, premultiplied white
			v := uint8((1 - d) * (1 - d) * 255)
			i := (y*size + x) * 4
			pixels[i], pixels[i+1], pixels[i+2], pixels[i+3] = v, v, v, v
		}
	}
	img.WritePixels(pixels)
	return img
}

// EbitenCanvas draws onto an *ebiten.Image.
type EbitenCanvas struct {
	dst      *ebiten.Image
	res      *Resources
	vs       []ebiten.Vertex
	is       []uint16
	glowOpts ebiten.DrawImageOptions
}

var _ Canvas = (*EbitenCanvas)(nil)

// NewEbitenCanvas wraps dst.
func NewEbitenCanvas(dst *ebiten.Image, res *Resources) *EbitenCanvas {
	return &EbitenCanvas{
		dst: dst,
		res: res,
		vs:  make([]ebiten.Vertex, 0, 64),
		is:  make([]uint16, 0, 96),
	}
}

// Image returns the target image.
func (c *EbitenCanvas) Image() *ebiten.Image {
	return c.dst
}

func (c *EbitenCanvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c *EbitenCanvas) Clear() {
	c.dst.Clear()
}

func (c *EbitenCanvas) StrokePolygon(pts []geom.Point, width float64, clr color.RGBA) {
	if len(pts) < 2 || clr.A == 0 {
		return
	}
	path := pathThrough(pts)
	path.Close()
	c.strokePath(&path, &vector.StrokeOptions{Width: float32(width)}, clr)
}

func (c *EbitenCanvas) StrokePolyline(pts []geom.Point, width float64, clr color.RGBA, glow float64) {
	if len(pts) < 2 || clr.A == 0 {
		return
	}
	path := pathThrough(pts)
	if glow > 0 {
		// two translucent wider passes stand in for a blur
		for _, pass := range []struct{ grow, alpha float64 }{{0.6, 0.12}, {0.3, 0.25}} {
			halo := WithAlpha(clr, Alpha(clr)*pass.alpha)
			c.strokePath(&path, roundStroke(width+glow*pass.grow), halo)
		}
	}
	c.strokePath(&path, roundStroke(width), clr)
}

func (c *EbitenCanvas) StrokeLine(a, b geom.Point, width float64, clr color.RGBA) {
	if clr.A == 0 {
		return
	}
	vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), nrgba(clr), true)
}

func (c *EbitenCanvas) FillCircle(p geom.Point, radius float64, clr color.RGBA, glow float64) {
	if radius <= 0 || clr.A == 0 {
		return
	}
	if glow > 0 {
		c.drawGlow(p, radius+glow, clr)
	}
	vector.DrawFilledCircle(c.dst, float32(p.X), float32(p.Y), float32(radius), nrgba(clr), true)
}

func (c *EbitenCanvas) StrokeCircle(p geom.Point, radius, width float64, clr color.RGBA) {
	if radius <= 0 || clr.A == 0 {
		return
	}
	vector.StrokeCircle(c.dst, float32(p.X), float32(p.Y), float32(radius), float32(width), nrgba(clr), true)
}

func (c *EbitenCanvas) FillBand(y, halfHeight float64, clr color.RGBA) {
	if halfHeight <= 0 || clr.A == 0 {
		return
	}
	w, _ := c.Size()
	r, g, b := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255
	peak := float32(clr.A) / 255
	rows := []struct {
		y float64
		a float32
	}{{y - halfHeight, 0}, {y, peak}, {y + halfHeight, 0}}

	c.vs, c.is = c.vs[:0], c.is[:0]
	for _, row := range rows {
		for _, x := range []float64{0, float64(w)} {
			c.vs = append(c.vs, ebiten.Vertex{
				DstX: float32(x), DstY: float32(row.y),
				SrcX: 0, SrcY: 0,
				ColorR: r, ColorG: g, ColorB: b, ColorA: row.a,
			})
		}
	}
	// two quads: rows 0-1 and rows 1-2
	c.is = append(c.is, 0, 1, 2, 1, 3, 2, 2, 3, 4, 3, 5, 4)
	c.dst.DrawTriangles(c.vs, c.is, c.res.whiteImg, &ebiten.DrawTrianglesOptions{})
}

func (c *EbitenCanvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	if w <= 0 || h <= 0 || clr.A == 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), nrgba(clr), false)
}

func (c *EbitenCanvas) Text(s string, x, y, size float64, clr color.RGBA) {
	if c.res.font == nil || s == "" {
		return
	}
	face := &text.GoTextFace{Source: c.res.font, Size: size}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(nrgba(clr))
	text.Draw(c.dst, s, face, op)
}

// MeasureText returns the width of s at the given size.
func (c *EbitenCanvas) MeasureText(s string, size float64) float64 {
	if c.res.font == nil {
		return 0
	}
	w, _ := text.Measure(s, &text.GoTextFace{Source: c.res.font, Size: size}, 0)
	return w
}

func (c *EbitenCanvas) drawGlow(p geom.Point, radius float64, clr color.RGBA) {
	op := &c.glowOpts
	op.GeoM.Reset()
	op.GeoM.Translate(-glowTextureSize/2, -glowTextureSize/2)
	scale := radius * 2 / glowTextureSize
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(p.X, p.Y)
	op.ColorScale.Reset()
	r, g, b, a := premultiply(WithAlpha(clr, Alpha(clr)*0.6))
	op.ColorScale.Scale(r, g, b, a)
	op.Blend = ebiten.BlendLighter
	c.dst.DrawImage(c.res.glowImg, op)
}

func (c *EbitenCanvas) strokePath(path *vector.Path, opts *vector.StrokeOptions, clr color.RGBA) {
	c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], opts)
	for i := range c.vs {
		c.vs[i].SrcX, c.vs[i].SrcY = 0, 0
		c.vs[i].ColorR = float32(clr.R) / 255
		c.vs[i].ColorG = float32(clr.G) / 255
		c.vs[i].ColorB = float32(clr.B) / 255
		c.vs[i].ColorA = float32(clr.A) / 255
	}
	c.dst.DrawTriangles(c.vs, c.is, c.res.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func pathThrough(pts []geom.Point) vector.Path {
	path := vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	return path
}

func roundStroke(width float64) *vector.StrokeOptions {
	return &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
}

// nrgba reinterprets a straight-alpha colour for APIs taking color.Color.
func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
