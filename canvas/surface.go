// Package canvas is a small raster surface with the operations the picker
// widgets draw with: rectangle fills from solid or gradient paints, ring and
// box strokes, and single pixel readback. Compositing is source-over on a
// premultiplied 8-bit store, the same model a browser 2D canvas uses.
package canvas

import (
	"image"
	"image/color"
	"math"
)

// Surface is an RGBA bitmap plus a redraw counter.
type Surface struct {
	img     *image.RGBA
	version uint64
}

// New returns a transparent surface. Dimensions below one pixel are raised
// to one.
func New(w, h int) *Surface {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (s *Surface) Width() int  { return s.img.Rect.Dx() }
func (s *Surface) Height() int { return s.img.Rect.Dy() }

// Image returns the backing store. Callers must not keep it across draws if
// they need a stable snapshot; use Snapshot for that.
func (s *Surface) Image() *image.RGBA { return s.img }

// Snapshot returns a copy of the current bitmap.
func (s *Surface) Snapshot() *image.RGBA {
	cp := image.NewRGBA(s.img.Rect)
	copy(cp.Pix, s.img.Pix)
	return cp
}

// Version increases on every drawing call that touches pixels.
func (s *Surface) Version() uint64 { return s.version }

// Clear resets every pixel to transparent black.
func (s *Surface) Clear() {
	clear(s.img.Pix)
	s.version++
}

// FillRect composites paint over the rectangle. Negative sizes extend the
// rectangle left or up; an empty rectangle draws nothing. Partially covered
// edge pixels receive fractional coverage.
func (s *Surface) FillRect(x, y, w, h float64, p Paint) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	if w == 0 || h == 0 || p == nil {
		return
	}
	b := s.img.Rect
	x0 := max(int(math.Floor(x)), b.Min.X)
	y0 := max(int(math.Floor(y)), b.Min.Y)
	x1 := min(int(math.Ceil(x+w)), b.Max.X)
	y1 := min(int(math.Ceil(y+h)), b.Max.Y)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for py := y0; py < y1; py++ {
		cy := span(float64(py), y, y+h)
		for px := x0; px < x1; px++ {
			cov := cy * span(float64(px), x, x+w)
			if cov <= 0 {
				continue
			}
			src := p.premulAt(float64(px)+0.5, float64(py)+0.5)
			s.blend(px, py, src.scale(cov))
		}
	}
	s.version++
}

// span is the length of [p, p+1) that lies inside [lo, hi).
func span(p, lo, hi float64) float64 {
	v := min(p+1, hi) - max(p, lo)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// blend composites a premultiplied source over the pixel at (x, y).
func (s *Surface) blend(x, y int, src premul) {
	if src.a <= 0 {
		return
	}
	i := s.img.PixOffset(x, y)
	px := s.img.Pix[i : i+4 : i+4]
	inv := 1 - src.a
	px[0] = to8(src.r + float64(px[0])/255*inv)
	px[1] = to8(src.g + float64(px[1])/255*inv)
	px[2] = to8(src.b + float64(px[2])/255*inv)
	px[3] = to8(src.a + float64(px[3])/255*inv)
}

// PixelAt reads back one pixel, un-premultiplied. Positions outside the
// surface read as transparent black.
func (s *Surface) PixelAt(x, y int) color.NRGBA {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return color.NRGBA{}
	}
	i := s.img.PixOffset(x, y)
	px := s.img.Pix[i : i+4 : i+4]
	a := px[3]
	if a == 0 {
		return color.NRGBA{}
	}
	if a == 255 {
		return color.NRGBA{R: px[0], G: px[1], B: px[2], A: 255}
	}
	un := func(v uint8) uint8 {
		return uint8(min(255, (uint32(v)*255+uint32(a)/2)/uint32(a)))
	}
	return color.NRGBA{R: un(px[0]), G: un(px[1]), B: un(px[2]), A: a}
}

// Clamp pulls (x, y) onto the nearest pixel of the surface.
func (s *Surface) Clamp(x, y int) (int, int) {
	b := s.img.Rect
	x = min(max(x, b.Min.X), b.Max.X-1)
	y = min(max(y, b.Min.Y), b.Max.Y-1)
	return x, y
}
