package canvas

import (
	"image/color"
	"sort"
)

// premul is a premultiplied color with channels in [0,1].
type premul struct {
	r, g, b, a float64
}

func premulOf(c color.Color) premul {
	if c == nil {
		return premul{}
	}
	r, g, b, a := c.RGBA()
	return premul{
		r: float64(r) / 0xffff,
		g: float64(g) / 0xffff,
		b: float64(b) / 0xffff,
		a: float64(a) / 0xffff,
	}
}

func (p premul) scale(f float64) premul {
	return premul{p.r * f, p.g * f, p.b * f, p.a * f}
}

func (p premul) lerp(q premul, t float64) premul {
	return premul{
		r: p.r + (q.r-p.r)*t,
		g: p.g + (q.g-p.g)*t,
		b: p.b + (q.b-p.b)*t,
		a: p.a + (q.a-p.a)*t,
	}
}

func (p premul) nrgba() color.NRGBA {
	if p.a <= 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: to8(p.r / p.a),
		G: to8(p.g / p.a),
		B: to8(p.b / p.a),
		A: to8(p.a),
	}
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Paint is a fill source evaluated per pixel center.
type Paint interface {
	premulAt(x, y float64) premul
}

type solid struct {
	c premul
}

func (s solid) premulAt(_, _ float64) premul { return s.c }

// Solid returns a paint that fills with a single color.
func Solid(c color.Color) Paint {
	return solid{c: premulOf(c)}
}

// ColorStop places a color at an offset along a gradient.
type ColorStop struct {
	Offset float64
	Color  color.Color
}

// LinearGradient interpolates color stops along the line from (X0,Y0) to
// (X1,Y1). Points before the first stop take its color; points past the last
// stop take the last color.
type LinearGradient struct {
	X0, Y0, X1, Y1 float64

	stops []gradientStop
}

type gradientStop struct {
	offset float64
	c      premul
}

// NewLinearGradient starts a gradient along the given line with no stops.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop adds a stop. Offsets are clamped to [0,1]; stops at the same
// offset keep insertion order so the later one wins past that offset.
func (g *LinearGradient) AddColorStop(offset float64, c color.Color) *LinearGradient {
	if offset < 0 {
		offset = 0
	} else if offset > 1 {
		offset = 1
	}
	i := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].offset > offset })
	g.stops = append(g.stops, gradientStop{})
	copy(g.stops[i+1:], g.stops[i:])
	g.stops[i] = gradientStop{offset: offset, c: premulOf(c)}
	return g
}

// Stops returns the gradient's stops in offset order.
func (g *LinearGradient) Stops() []ColorStop {
	out := make([]ColorStop, len(g.stops))
	for i, s := range g.stops {
		out[i] = ColorStop{Offset: s.offset, Color: s.c.nrgba()}
	}
	return out
}

// ColorAt returns the gradient color at (x, y).
func (g *LinearGradient) ColorAt(x, y float64) color.NRGBA {
	return g.premulAt(x, y).nrgba()
}

// Offset projects (x, y) onto the gradient line; 0 is the start, 1 the end.
func (g *LinearGradient) Offset(x, y float64) float64 {
	dx := g.X1 - g.X0
	dy := g.Y1 - g.Y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0
	}
	return ((x-g.X0)*dx + (y-g.Y0)*dy) / l2
}

func (g *LinearGradient) premulAt(x, y float64) premul {
	n := len(g.stops)
	if n == 0 {
		return premul{}
	}
	dx := g.X1 - g.X0
	dy := g.Y1 - g.Y0
	if dx == 0 && dy == 0 {
		// A degenerate gradient paints nothing.
		return premul{}
	}
	t := g.Offset(x, y)
	if t <= g.stops[0].offset {
		return g.stops[0].c
	}
	if t >= g.stops[n-1].offset {
		return g.stops[n-1].c
	}
	for i := 1; i < n; i++ {
		b := g.stops[i]
		if t >= b.offset {
			continue
		}
		a := g.stops[i-1]
		span := b.offset - a.offset
		if span <= 0 {
			return b.c
		}
		return a.c.lerp(b.c, (t-a.offset)/span)
	}
	return g.stops[n-1].c
}
