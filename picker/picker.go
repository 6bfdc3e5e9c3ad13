// Package picker implements the color picker widgets: a hue strip, a
// saturation/brightness palette tinted by the selected hue, and the Picker
// container that wires one into the other and owns the resolved color.
//
// Widgets are driven explicitly. The host calls Press and Move with
// element-relative coordinates, and a window-level ReleaseSource ends drags
// wherever the pointer is released. Every call redraws synchronously and any
// change callback runs before the call returns.
package picker

import (
	"io"
	"log"

	"huepick/eui"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultHue is the base hue before anything has been picked.
const DefaultHue = "rgba(255, 255, 255, 1)"

// ReleaseSource delivers pointer releases that happen anywhere in the window.
type ReleaseSource interface {
	OnRelease(fn func()) (cancel func())
}

// Resolve selects how the palette turns a position into a color.
type Resolve int

const (
	// ResolveSample reads the pixel back from the rendered bitmap.
	ResolveSample Resolve = iota
	// ResolveAnalytic computes the composite from the selection fractions
	// and the base hue without touching the bitmap.
	ResolveAnalytic
)

func (r Resolve) String() string {
	if r == ResolveAnalytic {
		return "analytic"
	}
	return "sample"
}

// ParseResolve maps a settings value to a mode. Unknown values select
// ResolveSample.
func ParseResolve(s string) Resolve {
	if s == "analytic" {
		return ResolveAnalytic
	}
	return ResolveSample
}

var logger = log.New(io.Discard, "picker: ", log.LstdFlags)

// SetLogger routes widget diagnostics to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

// Config sizes the widgets and seeds the initial hue.
type Config struct {
	PaletteWidth, PaletteHeight int
	StripWidth, StripHeight     int
	Hue                         string
	Resolve                     Resolve
}

func (c Config) withDefaults() Config {
	if c.PaletteWidth <= 0 {
		c.PaletteWidth = DefaultPaletteSize
	}
	if c.PaletteHeight <= 0 {
		c.PaletteHeight = DefaultPaletteSize
	}
	if c.StripWidth <= 0 {
		c.StripWidth = DefaultStripWidth
	}
	if c.StripHeight <= 0 {
		c.StripHeight = DefaultStripHeight
	}
	if c.Hue == "" {
		c.Hue = DefaultHue
	}
	return c
}

// Picker is the root container. It owns the current hue and the resolved
// color, feeds hue changes from the strip into the palette, and records
// what the palette resolves.
type Picker struct {
	Strip   *HueStrip
	Palette *Palette

	hue   string
	color string

	nextID    int
	observers map[int]func(string)
	order     []int
}

// New builds the strip and palette and wires them together.
func New(cfg Config) *Picker {
	cfg = cfg.withDefaults()
	p := &Picker{hue: cfg.Hue, observers: map[int]func(string){}}
	p.Palette = NewPalette(cfg.PaletteWidth, cfg.PaletteHeight, cfg.Hue, p.setColor)
	p.Palette.Resolve = cfg.Resolve
	p.Strip = NewHueStrip(cfg.StripWidth, cfg.StripHeight, p.SetHue)
	return p
}

// Mount draws both widgets and subscribes them to window releases.
func (p *Picker) Mount(src ReleaseSource) {
	p.Palette.Mount(src)
	p.Strip.Mount(src)
}

// Unmount drops both release subscriptions.
func (p *Picker) Unmount() {
	p.Palette.Unmount()
	p.Strip.Unmount()
}

// Hue returns the current base hue string.
func (p *Picker) Hue() string { return p.hue }

// SetHue stores h and hands it to the palette, which re-emits its color if a
// selection exists.
func (p *Picker) SetHue(h string) {
	p.hue = h
	p.Palette.SetHue(h)
}

// Color returns the resolved color, or "" before the first resolution.
func (p *Picker) Color() string { return p.color }

func (p *Picker) setColor(c string) {
	p.color = c
	ids := append([]int(nil), p.order...)
	for _, id := range ids {
		if fn, ok := p.observers[id]; ok {
			fn(c)
		}
	}
}

// OnColor registers fn to run after every resolved color change.
func (p *Picker) OnColor(fn func(string)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	id := p.nextID
	p.nextID++
	p.observers[id] = fn
	p.order = append(p.order, id)
	return func() {
		if _, ok := p.observers[id]; !ok {
			return
		}
		delete(p.observers, id)
		for i, v := range p.order {
			if v == id {
				p.order = append(p.order[:i], p.order[i+1:]...)
				break
			}
		}
	}
}

// SwatchColor is the color the swatch shows: the resolved color, or white
// when nothing has been resolved yet.
func (p *Picker) SwatchColor() eui.Color {
	if p.color != "" {
		if c, err := eui.ParseColor(p.color); err == nil {
			return c
		}
	}
	return eui.NewColor(255, 255, 255, 255)
}

// Hex returns the resolved color as "#rrggbb", or "" before the first
// resolution.
func (p *Picker) Hex() string {
	c, ok := p.resolved()
	if !ok {
		return ""
	}
	return c.Hex()
}

// HSV returns the resolved color's hue in degrees and its saturation and
// value in [0,1].
func (p *Picker) HSV() (h, s, v float64, ok bool) {
	c, ok := p.resolved()
	if !ok {
		return 0, 0, 0, false
	}
	h, s, v = c.Hsv()
	return h, s, v, true
}

func (p *Picker) resolved() (colorful.Color, bool) {
	if p.color == "" {
		return colorful.Color{}, false
	}
	c, err := eui.ParseColor(p.color)
	if err != nil {
		return colorful.Color{}, false
	}
	cf, _ := colorful.MakeColor(c.NRGBA())
	return cf, true
}
