package main

import (
	"context"
	"errors"

	"huepick/eui"
	"huepick/picker"

	"github.com/hajimehoshi/ebiten/v2"
	dark "github.com/thiagokokada/dark-mode-go"
)

// drag records which widget a press started on.
type drag int

const (
	dragNone drag = iota
	dragPalette
	dragStrip
)

// Game hosts the picker in an Ebiten window.
type Game struct {
	ctx context.Context

	picker  *picker.Picker
	tracker *eui.PointerTracker
	events  *eui.EventHandler
	layout  layout
	opts    options

	dragging drag

	paletteTex eui.Texture
	stripTex   eui.Texture

	// lastExport is the most recent export path, shown in the status line.
	lastExport string
	exporting  bool

	cancels []func()
}

// newGame builds and mounts the picker. It makes no Ebiten calls so it can
// be driven from tests.
func newGame(ctx context.Context, opts options) *Game {
	g := &Game{
		ctx:     ctx,
		tracker: eui.NewPointerTracker(),
		events:  eui.NewHandler(),
		opts:    opts,
	}
	g.picker = picker.New(picker.Config{
		PaletteWidth:  gs.PaletteSize,
		PaletteHeight: gs.PaletteSize,
		StripWidth:    gs.StripWidth,
		StripHeight:   gs.StripHeight,
		Hue:           opts.hue,
		Resolve:       opts.resolve,
	})
	pw, ph := g.picker.Palette.Size()
	sw, sh := g.picker.Strip.Size()
	g.layout = newLayout(pw, ph, sw, sh)

	// Report hue changes before the palette re-resolves.
	g.picker.Strip.OnChange = func(h string) {
		if c, err := eui.ParseColor(h); err == nil {
			g.events.Emit(eui.UIEvent{Type: eui.EventHueChanged, Color: c, Text: h})
		}
		g.picker.SetHue(h)
	}
	g.cancels = append(g.cancels, g.picker.OnColor(func(c string) {
		g.events.Emit(eui.UIEvent{Type: eui.EventColorChanged, Color: g.picker.SwatchColor(), Text: c})
	}))

	g.picker.Mount(g.tracker)
	// Subscribed after the widgets so their drags have ended when this runs.
	g.cancels = append(g.cancels, g.tracker.OnRelease(g.released))
	return g
}

func (g *Game) close() {
	g.picker.Unmount()
	for _, c := range g.cancels {
		c()
	}
	g.cancels = nil
}

func (g *Game) Update() error {
	if g.ctx != nil && g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.handlePointer(g.tracker.Poll())
	g.handleHotkeys()
	g.drainEvents()
	return nil
}

// handlePointer routes one pointer frame to the widgets. Presses and moves
// are delivered only inside a widget; releases reach every widget through
// the tracker, wherever they happen.
func (g *Game) handlePointer(f eui.PointerFrame) {
	l := g.layout
	switch {
	case f.JustPressed:
		switch {
		case l.palette.Contains(f.X, f.Y):
			g.dragging = dragPalette
			g.picker.Palette.Press(l.palette.Local(f.X, f.Y))
		case l.strip.Contains(f.X, f.Y):
			g.dragging = dragStrip
			g.picker.Strip.Press(l.strip.Local(f.X, f.Y))
		}
	case f.Down && f.Moved:
		if l.palette.Contains(f.X, f.Y) {
			g.picker.Palette.Move(l.palette.Local(f.X, f.Y))
		}
		if l.strip.Contains(f.X, f.Y) {
			g.picker.Strip.Move(l.strip.Local(f.X, f.Y))
		}
	}
}

// released ends a drag and copies the color when copy-on-release is on.
func (g *Game) released() {
	d := g.dragging
	g.dragging = dragNone
	if d == dragNone || !g.opts.copyOnRelease {
		return
	}
	g.copyColor()
}

func (g *Game) drainEvents() {
	for {
		select {
		case ev := <-g.events.Events:
			g.handleEvent(ev)
		default:
			return
		}
	}
}

func (g *Game) handleEvent(ev eui.UIEvent) {
	switch ev.Type {
	case eui.EventHueChanged:
		logDebug("hue %s", ev.Text)
	case eui.EventColorChanged:
		logDebug("color %s", ev.Text)
	case eui.EventCopied:
		notifyCopied(ev.Text)
	case eui.EventExported:
		g.exporting = false
		if ev.Text == "" {
			return
		}
		g.lastExport = ev.Text
		if gs.OpenAfterExport {
			go openExport(ev.Text)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth >= 200 && outsideHeight >= 200 {
		if gs.WindowWidth != outsideWidth || gs.WindowHeight != outsideHeight {
			gs.WindowWidth = outsideWidth
			gs.WindowHeight = outsideHeight
			settingsDirty = true
		}
	}
	return g.layout.width, g.layout.height
}

func runGame(ctx context.Context, opts options) {
	ebiten.SetWindowTitle("huepick")
	ebiten.SetWindowSize(gs.WindowWidth, gs.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(true)
	eui.SetPotatoMode(false)

	initTheme()
	g := newGame(ctx, opts)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logError("ebiten: %v", err)
	}
	g.close()
	if settingsDirty || !settingsLoaded {
		saveSettings()
	}
}

// initTheme loads the configured theme, following the desktop when none is
// set.
func initTheme() {
	theme := gs.Theme
	if theme == "" {
		darkMode, err := dark.IsDarkMode()
		if err == nil {
			if darkMode {
				theme = "dark"
			} else {
				theme = "light"
			}
		} else {
			logDebug("dark mode detection: %v", err)
			theme = "dark"
		}
	}
	if err := eui.LoadTheme(theme); err != nil {
		logWarn("%v", err)
		if theme != "dark" {
			if err := eui.LoadTheme("dark"); err != nil {
				logError("%v", err)
			}
		}
	}
}

// cycleTheme switches to the next available theme and remembers it.
func cycleTheme() {
	names, err := eui.ListThemes()
	if err != nil || len(names) == 0 {
		logWarn("list themes: %v", err)
		return
	}
	next := names[0]
	for i, n := range names {
		if n == eui.CurrentThemeName() {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if err := eui.LoadTheme(next); err != nil {
		logWarn("%v", err)
		return
	}
	gs.Theme = next
	settingsDirty = true
}
