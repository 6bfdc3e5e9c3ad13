package eui

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed themes/palettes/*.json
var embeddedThemes embed.FS

// Theme holds the colors the picker shell draws with.
type Theme struct {
	Background Color
	Panel      Color
	Text       Color
	Border     Color
	// Marker is the selection ring and outline color.
	Marker Color
}

type themeFile struct {
	Comment string            `json:"Comment"`
	Colors  map[string]string `json:"Colors"`
}

var (
	currentTheme     = defaultTheme()
	currentThemeName = "dark"
)

func defaultTheme() *Theme {
	return &Theme{
		Background: NewColor(32, 32, 36, 255),
		Panel:      NewColor(44, 44, 50, 255),
		Text:       NewColor(230, 230, 230, 255),
		Border:     NewColor(90, 90, 100, 255),
		Marker:     NewColor(255, 255, 255, 255),
	}
}

// resolveColor recursively resolves string references to colors after the
// theme JSON has been parsed. Color strings may reference other named colors
// from the same file.
func resolveColor(s string, colors map[string]string, seen map[string]bool) (Color, error) {
	s = strings.TrimSpace(s)
	key := strings.ToLower(s)
	if c, ok := namedColors[key]; ok {
		return c, nil
	}
	if val, ok := colors[key]; ok {
		if seen[key] {
			return Color{}, fmt.Errorf("color reference cycle for %s", key)
		}
		seen[key] = true
		c, err := resolveColor(val, colors, seen)
		if err != nil {
			return Color{}, err
		}
		namedColors[key] = c
		return c, nil
	}
	return ParseColor(s)
}

// LoadTheme reads a palette from themes/palettes on disk, falling back to
// the embedded copies, and makes it current.
func LoadTheme(name string) error {
	file := filepath.Join("themes", "palettes", name+".json")
	data, err := os.ReadFile(file)
	if err != nil {
		// Embed paths must use forward slashes.
		data, err = embeddedThemes.ReadFile(path.Join("themes", "palettes", name+".json"))
		if err != nil {
			return fmt.Errorf("theme %s: %w", name, err)
		}
	}

	var tf themeFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return fmt.Errorf("theme %s: %w", name, err)
	}
	namedColors = baseNamedColors()
	lower := make(map[string]string, len(tf.Colors))
	for n, v := range tf.Colors {
		lower[strings.ToLower(n)] = v
	}
	for n, v := range lower {
		c, err := resolveColor(v, lower, map[string]bool{n: true})
		if err != nil {
			return fmt.Errorf("theme %s: %s: %w", name, n, err)
		}
		namedColors[n] = c
	}

	th := *defaultTheme()
	pick := func(key string, dst *Color) {
		if c, ok := namedColors[key]; ok {
			*dst = c
		}
	}
	pick("background", &th.Background)
	pick("panel", &th.Panel)
	pick("text", &th.Text)
	pick("border", &th.Border)
	pick("marker", &th.Marker)
	currentTheme = &th
	currentThemeName = name
	return nil
}

// CurrentTheme returns the active theme.
func CurrentTheme() *Theme { return currentTheme }

// CurrentThemeName returns the name passed to the last successful LoadTheme.
func CurrentThemeName() string { return currentThemeName }

// ListThemes returns the available theme names.
func ListThemes() ([]string, error) {
	entries, err := fs.ReadDir(embeddedThemes, "themes/palettes")
	if err != nil {
		entries, err = os.ReadDir("themes/palettes")
		if err != nil {
			return nil, err
		}
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	sort.Strings(names)
	return names, nil
}
