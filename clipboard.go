package main

import (
	"huepick/eui"

	clipboard "golang.design/x/clipboard"
)

// clipboardWrite puts text on the system clipboard.
var clipboardWrite = func(b []byte) {
	clipboard.Write(clipboard.FmtText, b)
}

// copyColor copies the resolved color string. Nothing is copied before the
// first pick.
func (g *Game) copyColor() bool {
	c := g.picker.Color()
	if c == "" {
		logDebug("copy: no color picked yet")
		return false
	}
	if !clipboardReady {
		logWarn("copy: clipboard unavailable")
		return false
	}
	clipboardWrite([]byte(c))
	logDebug("copied %s", c)
	g.events.Emit(eui.UIEvent{Type: eui.EventCopied, Color: g.picker.SwatchColor(), Text: c})
	return true
}
