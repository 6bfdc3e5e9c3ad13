package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// circleSegments is how many line segments approximate a full circle.
const circleSegments = 96

// StrokeCircle outlines a circle centered at (cx, cy). The stroke is centered
// on the radius, so it covers r-width/2 to r+width/2.
func (s *Surface) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	if r <= 0 || width <= 0 {
		return
	}
	z := s.rasterizer()
	outer := r + width/2
	inner := r - width/2
	circlePath(z, cx, cy, outer, false)
	if inner > 0 {
		// Opposite winding punches the hole.
		circlePath(z, cx, cy, inner, true)
	}
	s.fillMask(z, Solid(c))
}

// StrokeRect outlines a rectangle with the stroke centered on its edges.
func (s *Surface) StrokeRect(x, y, w, h, width float64, c color.Color) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	if width <= 0 || (w == 0 && h == 0) {
		return
	}
	z := s.rasterizer()
	half := width / 2
	rectPath(z, x-half, y-half, w+width, h+width, false)
	if w > width && h > width {
		rectPath(z, x+half, y+half, w-width, h-width, true)
	}
	s.fillMask(z, Solid(c))
}

func (s *Surface) rasterizer() *vector.Rasterizer {
	return vector.NewRasterizer(s.Width(), s.Height())
}

// fillMask composites p through the coverage accumulated in z.
func (s *Surface) fillMask(z *vector.Rasterizer, p Paint) {
	mask := image.NewAlpha(image.Rect(0, 0, s.Width(), s.Height()))
	z.DrawOp = draw.Src
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	b := s.img.Rect
	for y := 0; y < mask.Rect.Dy(); y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+mask.Rect.Dx()]
		for x, a := range row {
			if a == 0 {
				continue
			}
			src := p.premulAt(float64(x)+0.5, float64(y)+0.5)
			s.blend(b.Min.X+x, b.Min.Y+y, src.scale(float64(a)/255))
		}
	}
	s.version++
}

func circlePath(z *vector.Rasterizer, cx, cy, r float64, reverse bool) {
	step := 2 * math.Pi / circleSegments
	if reverse {
		step = -step
	}
	z.MoveTo(float32(cx+r), float32(cy))
	for i := 1; i < circleSegments; i++ {
		a := float64(i) * step
		z.LineTo(float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a)))
	}
	z.ClosePath()
}

func rectPath(z *vector.Rasterizer, x, y, w, h float64, reverse bool) {
	pts := [4][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	if reverse {
		pts[1], pts[3] = pts[3], pts[1]
	}
	z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		z.LineTo(float32(p[0]), float32(p[1]))
	}
	z.ClosePath()
}
