package eui

// namedColors holds CSS basic names plus whatever the loaded theme defines.
var namedColors = baseNamedColors()

func baseNamedColors() map[string]Color {
	return map[string]Color{
		"white":       NewColor(255, 255, 255, 255),
		"black":       NewColor(0, 0, 0, 255),
		"red":         NewColor(255, 0, 0, 255),
		"lime":        NewColor(0, 255, 0, 255),
		"green":       NewColor(0, 128, 0, 255),
		"blue":        NewColor(0, 0, 255, 255),
		"yellow":      NewColor(255, 255, 0, 255),
		"cyan":        NewColor(0, 255, 255, 255),
		"aqua":        NewColor(0, 255, 255, 255),
		"magenta":     NewColor(255, 0, 255, 255),
		"fuchsia":     NewColor(255, 0, 255, 255),
		"gray":        NewColor(128, 128, 128, 255),
		"grey":        NewColor(128, 128, 128, 255),
		"transparent": NewColor(0, 0, 0, 0),
	}
}
