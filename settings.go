package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"huepick/eui"
	"huepick/picker"
)

const SETTINGS_VERSION = 1

var gs settings = gsdef

// settingsLoaded reports whether settings were successfully loaded from disk.
var settingsLoaded bool

// settingsDirty is set when a runtime change should be persisted on exit.
var settingsDirty bool

var gsdef settings = settings{
	Version: SETTINGS_VERSION,

	WindowWidth:  420,
	WindowHeight: 360,
	PaletteSize:  picker.DefaultPaletteSize,
	StripWidth:   picker.DefaultStripWidth,
	StripHeight:  picker.DefaultStripHeight,
	Resolve:      picker.ResolveSample.String(),
	InitialHue:   picker.DefaultHue,
}

type settings struct {
	Version int

	WindowWidth  int
	WindowHeight int

	PaletteSize int
	StripWidth  int
	StripHeight int

	// Theme is "dark", "light" or empty to follow the desktop.
	Theme   string
	Resolve string

	CopyOnRelease   bool
	NotifyOnCopy    bool
	OpenAfterExport bool

	InitialHue string
}

const settingsFile = "settings.json"

// settingsPath is where settings are read from and written to. -settings
// overrides it.
var settingsPath = filepath.Join(dataDirPath, settingsFile)

func loadSettings() bool {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logWarn("load settings: %v", err)
		}
		gs = gsdef
		settingsLoaded = false
		return false
	}

	tmp := gsdef
	if err := json.Unmarshal(data, &tmp); err != nil {
		logWarn("load settings: %v", fmt.Errorf("parse %s: %w", settingsPath, err))
		gs = gsdef
		settingsLoaded = false
		return false
	}

	if tmp.Version != SETTINGS_VERSION {
		logDebug("settings version %d, want %d; using defaults", tmp.Version, SETTINGS_VERSION)
		gs = gsdef
		settingsLoaded = false
		return false
	}
	gs = tmp
	clampSettings()
	settingsLoaded = true
	return true
}

// clampSettings replaces out-of-range values with their defaults.
func clampSettings() {
	if gs.WindowWidth < 200 || gs.WindowWidth > 8192 {
		gs.WindowWidth = gsdef.WindowWidth
	}
	if gs.WindowHeight < 200 || gs.WindowHeight > 8192 {
		gs.WindowHeight = gsdef.WindowHeight
	}
	if gs.PaletteSize < 16 || gs.PaletteSize > 2048 {
		gs.PaletteSize = gsdef.PaletteSize
	}
	if gs.StripWidth < 8 || gs.StripWidth > 512 {
		gs.StripWidth = gsdef.StripWidth
	}
	if gs.StripHeight < 16 || gs.StripHeight > 2048 {
		gs.StripHeight = gsdef.StripHeight
	}
	if gs.Resolve != picker.ResolveAnalytic.String() {
		gs.Resolve = picker.ResolveSample.String()
	}
	if _, err := eui.ParseColor(gs.InitialHue); err != nil {
		gs.InitialHue = gsdef.InitialHue
	}
}

func saveSettings() {
	gs.Version = SETTINGS_VERSION
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		logError("save settings: %v", err)
		return
	}
	if dir := filepath.Dir(settingsPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logError("save settings: %v", err)
			return
		}
	}
	if err := os.WriteFile(settingsPath+".tmp", data, 0644); err != nil {
		logError("save settings: %v", err)
		return
	}
	if err := os.Rename(settingsPath+".tmp", settingsPath); err != nil {
		logError("save settings: %v", err)
		return
	}
	settingsDirty = false
}
