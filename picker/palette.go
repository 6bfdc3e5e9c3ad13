package picker

import (
	"image/color"

	"huepick/canvas"
	"huepick/eui"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultPaletteSize = 250

	ringRadius = 10
	ringWidth  = 5
)

var (
	opaqueWhite = color.NRGBA{255, 255, 255, 255}
	clearWhite  = color.NRGBA{255, 255, 255, 0}
	opaqueBlack = color.NRGBA{0, 0, 0, 255}
	clearBlack  = color.NRGBA{0, 0, 0, 0}
)

// Palette is the saturation/brightness field for one base hue. White fades
// out from left to right and black fades in from top to bottom.
type Palette struct {
	// OnChange receives the resolved color as "rgba(R, G, B, 1)".
	OnChange func(string)
	// Resolve picks bitmap sampling or analytic resolution.
	Resolve Resolve

	w, h    int
	surface *canvas.Surface

	hue  string
	base eui.Color

	selX, selY int
	selected   bool
	pressed    bool
	color      string
	cancel     func()
}

// NewPalette returns an unmounted palette. An empty hue selects DefaultHue;
// a nil onChange is a no-op.
func NewPalette(w, h int, hue string, onChange func(string)) *Palette {
	if w <= 0 {
		w = DefaultPaletteSize
	}
	if h <= 0 {
		h = DefaultPaletteSize
	}
	if hue == "" {
		hue = DefaultHue
	}
	p := &Palette{OnChange: onChange, w: w, h: h}
	p.hue = hue
	p.base = parseHue(hue)
	return p
}

// parseHue falls back to opaque black, the initial fill of a fresh canvas,
// when h is not a color.
func parseHue(h string) eui.Color {
	c, err := eui.ParseColor(h)
	if err != nil {
		logger.Printf("hue %q: %v; filling with black", h, err)
		return eui.NewColor(0, 0, 0, 255)
	}
	return c
}

// Surface returns the palette's drawing surface, creating it on first use.
func (p *Palette) Surface() *canvas.Surface {
	if p.surface == nil {
		p.surface = canvas.New(p.w, p.h)
	}
	return p.surface
}

func (p *Palette) Size() (int, int) { return p.w, p.h }

// Mount draws the palette and subscribes to window releases.
func (p *Palette) Mount(src ReleaseSource) {
	p.Unmount()
	if src != nil {
		p.cancel = src.OnRelease(p.Release)
	}
	p.refresh()
}

// Unmount drops the release subscription.
func (p *Palette) Unmount() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// Hue returns the base hue string as given.
func (p *Palette) Hue() string { return p.hue }

// SetHue changes the base hue. The field is redrawn and, with a selection
// in place, the color under it is re-emitted.
func (p *Palette) SetHue(h string) {
	if h == "" {
		h = DefaultHue
	}
	if h == p.hue {
		return
	}
	p.hue = h
	p.base = parseHue(h)
	p.refresh()
}

// Press starts a drag and emits the color at (x, y).
func (p *Palette) Press(x, y int) {
	p.pressed = true
	p.selectAt(x, y)
}

// Move follows the pointer while pressed and is ignored otherwise.
func (p *Palette) Move(x, y int) {
	if !p.pressed {
		return
	}
	p.selectAt(x, y)
}

// Release ends the drag.
func (p *Palette) Release() { p.pressed = false }

func (p *Palette) Pressed() bool { return p.pressed }

// Selection returns the selected position, if any.
func (p *Palette) Selection() (x, y int, ok bool) { return p.selX, p.selY, p.selected }

// Color returns the last emitted color, or "" before the first selection.
func (p *Palette) Color() string { return p.color }

func (p *Palette) selectAt(x, y int) {
	p.selX, p.selY = p.Surface().Clamp(x, y)
	p.selected = true
	p.refresh()
}

// refresh redraws and, if a selection exists, resolves and emits its color.
func (p *Palette) refresh() {
	p.draw()
	if !p.selected {
		return
	}
	p.color = p.resolve()
	if p.OnChange != nil {
		p.OnChange(p.color)
	}
}

func (p *Palette) draw() {
	sf := p.Surface()
	w, h := float64(sf.Width()), float64(sf.Height())
	sf.Clear()
	sf.FillRect(0, 0, w, h, canvas.Solid(p.base))
	sf.FillRect(0, 0, w, h, canvas.NewLinearGradient(0, 0, w, 0).
		AddColorStop(0, opaqueWhite).
		AddColorStop(1, clearWhite))
	sf.FillRect(0, 0, w, h, canvas.NewLinearGradient(0, 0, 0, h).
		AddColorStop(0, clearBlack).
		AddColorStop(1, opaqueBlack))
	if p.selected {
		sf.StrokeCircle(float64(p.selX), float64(p.selY), ringRadius, ringWidth, eui.CurrentTheme().Marker)
	}
}

func (p *Palette) resolve() string {
	if p.Resolve == ResolveAnalytic {
		return p.analytic()
	}
	return opaqueCSS(p.Surface().PixelAt(p.selX, p.selY))
}

// analytic composites the three layers at the selected pixel center in
// premultiplied form. go-colorful's BlendRgb is a plain lerp, which is
// exactly source-over for a premultiplied source of one solid color.
func (p *Palette) analytic() string {
	fx := (float64(p.selX) + 0.5) / float64(p.w)
	fy := (float64(p.selY) + 0.5) / float64(p.h)
	whiteA := 1 - fx
	blackA := fy

	n := p.base.NRGBA()
	a := float64(n.A) / 255
	c := colorful.Color{R: float64(n.R) / 255 * a, G: float64(n.G) / 255 * a, B: float64(n.B) / 255 * a}

	c = c.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, whiteA)
	a = whiteA + a*(1-whiteA)
	c = c.BlendRgb(colorful.Color{}, blackA)
	a = blackA + a*(1-blackA)

	if a <= 0 {
		return opaqueCSS(color.NRGBA{})
	}
	c = colorful.Color{R: c.R / a, G: c.G / a, B: c.B / a}.Clamped()
	r, g, b := c.RGB255()
	return opaqueCSS(color.NRGBA{R: r, G: g, B: b, A: 255})
}
