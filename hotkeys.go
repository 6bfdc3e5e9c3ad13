package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hotkey binds a key to an action.
type hotkey struct {
	key  ebiten.Key
	name string
	run  func(g *Game)
}

var hotkeys = []hotkey{
	{ebiten.KeyC, "copy", func(g *Game) { g.copyColor() }},
	{ebiten.KeyE, "export", func(g *Game) { g.startExport() }},
	{ebiten.KeyT, "theme", func(*Game) { cycleTheme() }},
}

func (g *Game) handleHotkeys() {
	for _, hk := range hotkeys {
		if inpututil.IsKeyJustPressed(hk.key) {
			logDebug("hotkey %s", hk.name)
			hk.run(g)
		}
	}
}
