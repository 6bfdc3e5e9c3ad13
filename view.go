package main

import (
	"fmt"
	"path/filepath"

	"huepick/eui"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	viewPad     = 20
	swatchSize  = 40
	labelSize   = 14
	statusSize  = 11
	borderWidth = 1
)

// layout positions the widgets in logical screen pixels.
type layout struct {
	width, height int

	palette eui.Rect
	strip   eui.Rect
	swatch  eui.Rect
	status  eui.Rect  // panel behind the swatch and its text
	label   eui.Point // where the color text starts
}

// newLayout puts the palette and strip side by side with the swatch and its
// label underneath.
func newLayout(pw, ph, sw, sh int) layout {
	var l layout
	l.palette = eui.NewRect(viewPad, viewPad, float32(pw), float32(ph))
	l.strip = eui.NewRect(l.palette.X1+viewPad, viewPad, float32(sw), float32(sh))
	top := max(l.palette.Y1, l.strip.Y1) + viewPad
	l.swatch = eui.NewRect(viewPad, top, swatchSize, swatchSize)
	l.label = eui.Point{X: l.swatch.X1 + 12, Y: top}

	all := eui.Union(l.palette, l.strip)
	all = eui.Union(all, l.swatch)
	l.width = int(all.X1) + viewPad
	l.height = int(all.Y1) + viewPad
	l.status = eui.NewRect(viewPad, top, float32(l.width-2*viewPad), swatchSize).Inset(-viewPad / 2)
	return l
}

func (g *Game) Draw(screen *ebiten.Image) {
	th := eui.CurrentTheme()
	screen.Fill(th.Background)
	l := g.layout

	pal := g.picker.Palette.Surface()
	g.paletteTex.Sync(pal.Image(), pal.Version())
	g.paletteTex.Draw(screen, l.palette)
	eui.OutlineRect(screen, l.palette.Inset(-1), borderWidth, th.Border)

	strip := g.picker.Strip.Surface()
	g.stripTex.Sync(strip.Image(), strip.Version())
	g.stripTex.Draw(screen, l.strip)
	eui.OutlineRect(screen, l.strip.Inset(-1), borderWidth, th.Border)

	eui.FillRect(screen, l.status, th.Panel)
	eui.FillRect(screen, l.swatch, g.picker.SwatchColor())
	eui.OutlineRect(screen, l.swatch, borderWidth, th.Border)

	for i, line := range g.statusLines() {
		size := float32(labelSize)
		if i > 0 {
			size = statusSize
		}
		eui.DrawText(screen, line, size, l.label.X, l.label.Y+float32(i)*18, th.Text)
	}
}

// statusLines returns the text shown next to the swatch.
func (g *Game) statusLines() []string {
	c := g.picker.Color()
	if c == "" {
		return []string{"Pick a color", "C copy  E export  T theme"}
	}
	lines := []string{c}
	if h, s, v, ok := g.picker.HSV(); ok {
		lines = append(lines, fmt.Sprintf("%s  hsv(%.0f, %.0f%%, %.0f%%)", g.picker.Hex(), h, s*100, v*100))
	}
	switch {
	case g.exporting:
		lines = append(lines, "Exporting...")
	case g.lastExport != "":
		lines = append(lines, "Saved "+filepath.Base(g.lastExport))
	}
	return lines
}
