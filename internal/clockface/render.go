package clockface

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498307936

// Render draws the clock at time t into a new size×size premultiplied
// RGBA bitmap. The background outside the face is transparent. Render
// does not modify cfg and returns identical pixels for identical input.
func Render(cfg Config, t Time) *image.RGBA {
	if cfg.Size <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	dst := image.NewRGBA(image.Rect(0, 0, cfg.Size, cfg.Size))
	p := &painter{dst: dst, z: vector.NewRasterizer(cfg.Size, cfg.Size)}
	for _, s := range Plan(cfg, t) {
		p.shape(s)
	}
	return dst
}

type painter struct {
	dst *image.RGBA
	z   *vector.Rasterizer
}

func (p *painter) shape(s Shape) {
	size := p.dst.Bounds().Size()
	p.z.Reset(size.X, size.Y)

	switch s.Kind {
	case FaceShape, DotShape:
		if s.R <= 0 {
			return
		}
		p.circle(s.CX, s.CY, s.R, false)
	case FrameShape:
		if s.R <= 0 || s.Width <= 0 {
			return
		}
		p.circle(s.CX, s.CY, s.R+s.Width/2, false)
		if inner := s.R - s.Width/2; inner > 0 {
			p.circle(s.CX, s.CY, inner, true)
		}
	case MarkShape, HandShape:
		if !p.line(s) {
			return
		}
	}

	p.z.DrawOp = draw.Over
	p.z.Draw(p.dst, p.dst.Bounds(), image.NewUniform(s.Color.NRGBA()), image.Point{})
}

// line outlines a stroked segment and reports whether there is anything
// to fill.
func (p *painter) line(s Shape) bool {
	hw := s.Width / 2
	if hw <= 0 {
		return false
	}
	dx, dy := s.X1-s.X0, s.Y1-s.Y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		if s.Cap != CapRound {
			return false
		}
		p.circle(s.X0, s.Y0, hw, false)
		return true
	}

	// u runs along the segment and n across it, both half a line width long.
	ux, uy := dx/l*hw, dy/l*hw
	nx, ny := -uy, ux

	p.moveTo(s.X0+nx, s.Y0+ny)
	p.lineTo(s.X1+nx, s.Y1+ny)
	if s.Cap == CapRound {
		p.arc(s.X1, s.Y1, nx, ny, ux, uy)
		p.arc(s.X1, s.Y1, ux, uy, -nx, -ny)
	} else {
		p.lineTo(s.X1-nx, s.Y1-ny)
	}
	p.lineTo(s.X0-nx, s.Y0-ny)
	if s.Cap == CapRound {
		p.arc(s.X0, s.Y0, -nx, -ny, -ux, -uy)
		p.arc(s.X0, s.Y0, -ux, -uy, nx, ny)
	}
	p.z.ClosePath()
	return true
}

// circle adds a closed circle. Reversed circles wind the other way and
// cut a hole when combined with a larger forward one.
func (p *painter) circle(cx, cy, r float64, reverse bool) {
	s := 1.0
	if reverse {
		s = -1
	}
	p.moveTo(cx+r, cy)
	p.arc(cx, cy, r, 0, 0, s*r)
	p.arc(cx, cy, 0, s*r, -r, 0)
	p.arc(cx, cy, -r, 0, 0, -s*r)
	p.arc(cx, cy, 0, -s*r, r, 0)
	p.z.ClosePath()
}

// arc adds a quarter circle around (cx, cy) from offset (ux, uy) to the
// perpendicular offset (vx, vy). The pen must already be at the start.
func (p *painter) arc(cx, cy, ux, uy, vx, vy float64) {
	ax, ay := cx+ux, cy+uy
	bx, by := cx+vx, cy+vy
	p.z.CubeTo(
		float32(ax+kappa*vx), float32(ay+kappa*vy),
		float32(bx+kappa*ux), float32(by+kappa*uy),
		float32(bx), float32(by),
	)
}

func (p *painter) moveTo(x, y float64) { p.z.MoveTo(float32(x), float32(y)) }
func (p *painter) lineTo(x, y float64) { p.z.LineTo(float32(x), float32(y)) }

// ARGB32 packs premultiplied pixels into 0xAARRGGBB words, row by row.
func ARGB32(img *image.RGBA) []uint32 {
	b := img.Bounds()
	out := make([]uint32, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			px := row[x*4 : x*4+4]
			out = append(out, uint32(px[3])<<24|uint32(px[0])<<16|uint32(px[1])<<8|uint32(px[2]))
		}
	}
	return out
}

func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
