package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"huepick/canvas"
)

func TestComposeExport(t *testing.T) {
	pal := canvas.New(250, 250)
	pal.FillRect(0, 0, 250, 250, canvas.Solid(color.NRGBA{255, 0, 0, 255}))
	strip := canvas.New(50, 250)
	strip.FillRect(0, 0, 50, 250, canvas.Solid(color.NRGBA{0, 0, 255, 255}))
	swatch := color.RGBA{0, 200, 0, 255}

	img := composeExport(pal.Snapshot(), strip.Snapshot(), swatch)
	if b := img.Bounds(); b.Dx() != 330 || b.Dy() != 320 {
		t.Fatalf("bounds = %v, want 330x320", b)
	}
	if c := img.RGBAAt(10, 10); c != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("palette pixel = %v", c)
	}
	if c := img.RGBAAt(270, 10); c != (color.RGBA{0, 0, 255, 255}) {
		t.Fatalf("strip pixel = %v", c)
	}
	if c := img.RGBAAt(20, 280); c != swatch {
		t.Fatalf("swatch pixel = %v", c)
	}
}

func TestEncodePNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(1, 1, color.RGBA{10, 20, 30, 255})
	data, err := encodePNG(src)
	if err != nil {
		t.Fatalf("encodePNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Fatalf("pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestExportName(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 5, 3, 0, time.UTC)
	if got := exportName(now); got != "20261019-080503.png" {
		t.Fatalf("exportName = %q", got)
	}
}

func TestWriteExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "a.png")
	if err := writeExport(path, []byte("png")); err != nil {
		t.Fatalf("writeExport: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "png" {
		t.Fatalf("read back %q, %v", data, err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temporary file left behind")
	}
}

func TestExportImageFallback(t *testing.T) {
	if !headless() {
		t.Skip("would open a save dialog")
	}
	t.Chdir(t.TempDir())
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	path, err := exportImage(image.NewRGBA(image.Rect(0, 0, 4, 4)), now)
	if err != nil {
		t.Fatalf("exportImage: %v", err)
	}
	if want := filepath.Join(exportDir, "20260102-030405.png"); path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
}
