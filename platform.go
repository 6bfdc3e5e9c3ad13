package main

import (
	"os"
	"path/filepath"
	"runtime"
)

// isWASM is true when running in a WebAssembly (browser) environment.
var isWASM = (runtime.GOOS == "js" || runtime.GOARCH == "wasm")

// dataDirPath holds the directory settings are stored in. On macOS it lives
// under Application Support; elsewhere it sits next to the executable so a
// portable copy keeps its settings with it.
var dataDirPath = func() string {
	if runtime.GOOS == "darwin" {
		if home, err := os.UserHomeDir(); err == nil {
			dir := filepath.Join(home, "Library", "Application Support", "huepick")
			_ = os.MkdirAll(dir, 0o755)
			return dir
		}
	}
	if exe, err := os.Executable(); err == nil {
		if dir, err := filepath.Abs(filepath.Dir(exe)); err == nil {
			return filepath.Join(dir, "data")
		}
	}
	// Fallback to relative path.
	return "data"
}()

// headless reports whether there is no display to talk to. Desktop
// notifications and native dialogs are skipped in that case.
func headless() bool {
	if isWASM {
		return true
	}
	return runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == ""
}
