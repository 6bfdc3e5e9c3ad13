package picker

import (
	"image/color"

	"huepick/canvas"
	"huepick/eui"
)

const (
	DefaultStripWidth  = 50
	DefaultStripHeight = 250

	// stripSampleX is the column colors are read from, independent of where
	// the pointer is horizontally.
	stripSampleX = 10
	// The selection outline is a box 2*stripMarkerHalf tall spanning the
	// strip's width.
	stripMarkerHalf  = 5
	stripMarkerWidth = 3
)

// hueStops run red through yellow, green, cyan, blue and magenta back to red.
var hueStops = []canvas.ColorStop{
	{Offset: 0, Color: color.NRGBA{255, 0, 0, 255}},
	{Offset: 0.17, Color: color.NRGBA{255, 255, 0, 255}},
	{Offset: 0.34, Color: color.NRGBA{0, 255, 0, 255}},
	{Offset: 0.51, Color: color.NRGBA{0, 255, 255, 255}},
	{Offset: 0.68, Color: color.NRGBA{0, 0, 255, 255}},
	{Offset: 0.85, Color: color.NRGBA{255, 0, 255, 255}},
	{Offset: 1, Color: color.NRGBA{255, 0, 0, 255}},
}

// HueStrip is a vertical rainbow the user drags along to choose a hue.
type HueStrip struct {
	// OnChange receives the sampled hue as "rgba(R, G, B, 1)".
	OnChange func(string)

	w, h    int
	surface *canvas.Surface

	selY     int
	selected bool
	pressed  bool
	hue      string
	cancel   func()
}

// NewHueStrip returns an unmounted strip of the given size.
func NewHueStrip(w, h int, onChange func(string)) *HueStrip {
	if w <= 0 {
		w = DefaultStripWidth
	}
	if h <= 0 {
		h = DefaultStripHeight
	}
	return &HueStrip{OnChange: onChange, w: w, h: h}
}

// Surface returns the strip's drawing surface, creating it on first use.
func (s *HueStrip) Surface() *canvas.Surface {
	if s.surface == nil {
		s.surface = canvas.New(s.w, s.h)
	}
	return s.surface
}

func (s *HueStrip) Size() (int, int) { return s.w, s.h }

// Mount draws the strip and subscribes to window releases. Mounting again
// replaces the previous subscription.
func (s *HueStrip) Mount(src ReleaseSource) {
	s.Unmount()
	if src != nil {
		s.cancel = src.OnRelease(s.Release)
	}
	s.draw()
}

// Unmount drops the release subscription.
func (s *HueStrip) Unmount() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Press starts a drag at (x, y) and emits the hue under y.
func (s *HueStrip) Press(x, y int) {
	s.pressed = true
	s.selectAt(y)
}

// Move follows the pointer while pressed and is ignored otherwise.
func (s *HueStrip) Move(x, y int) {
	if !s.pressed {
		return
	}
	s.selectAt(y)
}

// Release ends the drag. The last sampled hue stays current.
func (s *HueStrip) Release() { s.pressed = false }

func (s *HueStrip) Pressed() bool { return s.pressed }

// Selection returns the selected row, if any.
func (s *HueStrip) Selection() (int, bool) { return s.selY, s.selected }

// Hue returns the last emitted hue, or "" before the first press.
func (s *HueStrip) Hue() string { return s.hue }

func (s *HueStrip) selectAt(y int) {
	_, y = s.Surface().Clamp(0, y)
	s.selY = y
	s.selected = true
	s.draw()
	s.hue = s.sample()
	if s.OnChange != nil {
		s.OnChange(s.hue)
	}
}

func (s *HueStrip) draw() {
	sf := s.Surface()
	w, h := float64(sf.Width()), float64(sf.Height())
	sf.Clear()
	g := canvas.NewLinearGradient(0, 0, 0, h)
	for _, st := range hueStops {
		g.AddColorStop(st.Offset, st.Color)
	}
	sf.FillRect(0, 0, w, h, g)
	if s.selected {
		sf.StrokeRect(0, float64(s.selY-stripMarkerHalf), w, 2*stripMarkerHalf, stripMarkerWidth, eui.CurrentTheme().Marker)
	}
}

func (s *HueStrip) sample() string {
	sf := s.Surface()
	x, y := sf.Clamp(stripSampleX, s.selY)
	return opaqueCSS(sf.PixelAt(x, y))
}

// opaqueCSS formats a sampled pixel, always reporting full opacity.
func opaqueCSS(c color.NRGBA) string {
	c.A = 255
	return eui.FromNRGBA(c).CSS()
}
