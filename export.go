package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"huepick/eui"

	"github.com/dustin/go-humanize"
	open "github.com/skratchdot/open-golang/open"
	"golang.org/x/image/draw"
)

const (
	exportDir    = "exports"
	exportPad    = 10
	exportSwatch = 40
)

// composeExport lays the palette and strip out side by side with a swatch
// band of the resolved color underneath.
func composeExport(pal, strip *image.RGBA, swatch color.Color) *image.RGBA {
	pb, sb := pal.Bounds(), strip.Bounds()
	w := exportPad + pb.Dx() + exportPad + sb.Dx() + exportPad
	top := exportPad + max(pb.Dy(), sb.Dy()) + exportPad
	h := top + exportSwatch + exportPad

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(eui.CurrentTheme().Background), image.Point{}, draw.Src)

	at := image.Pt(exportPad, exportPad)
	draw.Draw(dst, pb.Sub(pb.Min).Add(at), pal, pb.Min, draw.Over)
	at = image.Pt(exportPad+pb.Dx()+exportPad, exportPad)
	draw.Draw(dst, sb.Sub(sb.Min).Add(at), strip, sb.Min, draw.Over)

	band := image.Rect(exportPad, top, w-exportPad, top+exportSwatch)
	draw.Draw(dst, band, image.NewUniform(swatch), image.Point{}, draw.Src)
	return dst
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func exportName(now time.Time) string {
	return now.Format("20060102-150405") + ".png"
}

// writeExport writes data to path through a temporary file.
func writeExport(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export dir: %w", err)
	}
	if err := os.WriteFile(path+".tmp", data, 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	if err := os.Rename(path+".tmp", path); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// exportImage asks where to save img and writes it there. Without a dialog,
// or when the dialog is cancelled, it writes to exports/ under a timestamped
// name.
func exportImage(img image.Image, now time.Time) (string, error) {
	data, err := encodePNG(img)
	if err != nil {
		return "", err
	}
	name := exportName(now)
	path := ""
	if !headless() {
		p, err := pickExportPath(name)
		switch {
		case err == nil:
			path = p
		case err == errExportDialogCancelled:
			logDebug("export dialog cancelled")
		default:
			logWarn("export dialog: %v", err)
		}
	}
	if path == "" {
		path = filepath.Join(exportDir, name)
	}
	if err := writeExport(path, data); err != nil {
		return "", err
	}
	logDebug("exported %s (%s)", path, humanize.Bytes(uint64(len(data))))
	return path, nil
}

// startExport snapshots the widgets on the UI thread and writes the image in
// the background. The result comes back as an EventExported.
func (g *Game) startExport() {
	img := composeExport(
		g.picker.Palette.Surface().Snapshot(),
		g.picker.Strip.Surface().Snapshot(),
		g.picker.SwatchColor(),
	)
	g.exporting = true
	go func() {
		path, err := exportImage(img, time.Now())
		if err != nil {
			logError("export: %v", err)
		}
		g.events.Emit(eui.UIEvent{Type: eui.EventExported, Text: path})
	}()
}

func openExport(path string) {
	if err := open.Run(path); err != nil {
		logWarn("open %s: %v", path, err)
	}
}
