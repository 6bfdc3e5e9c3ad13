package eui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var potatoMode bool

// SetPotatoMode toggles creation of unmanaged ebiten images.
func SetPotatoMode(v bool) { potatoMode = v }

func newImage(w, h int) *ebiten.Image {
	if potatoMode {
		return ebiten.NewImageWithOptions(image.Rect(0, 0, w, h), &ebiten.NewImageOptions{Unmanaged: true})
	}
	return ebiten.NewImage(w, h)
}

func pixelOffset(width float32) float32 {
	if int(math.Round(float64(width)))%2 == 0 {
		return 0
	}
	return 0.5
}

func strokeRect(dst *ebiten.Image, x, y, w, h, width float32, col color.Color, aa bool) {
	width = float32(math.Round(float64(width)))
	off := pixelOffset(width)
	x = float32(math.Round(float64(x))) + off
	y = float32(math.Round(float64(y))) + off
	w = float32(math.Round(float64(w)))
	h = float32(math.Round(float64(h)))
	vector.StrokeRect(dst, x, y, w, h, width, col, aa)
}

func drawFilledRect(dst *ebiten.Image, x, y, w, h float32, col color.Color, aa bool) {
	x = float32(math.Round(float64(x)))
	y = float32(math.Round(float64(y)))
	w = float32(math.Round(float64(w)))
	h = float32(math.Round(float64(h)))
	vector.DrawFilledRect(dst, x, y, w, h, col, aa)
}

// FillRect paints r with col.
func FillRect(dst *ebiten.Image, r Rect, col color.Color) {
	drawFilledRect(dst, r.X0, r.Y0, r.Width(), r.Height(), col, false)
}

// OutlineRect strokes r with a line of the given width.
func OutlineRect(dst *ebiten.Image, r Rect, width float32, col color.Color) {
	strokeRect(dst, r.X0, r.Y0, r.Width(), r.Height(), width, col, true)
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, s string, size, x, y float32, col color.Color) {
	dop := ebiten.DrawImageOptions{Filter: ebiten.FilterNearest, DisableMipmaps: true}
	dop.GeoM.Translate(float64(x), float64(y))
	top := &text.DrawOptions{DrawImageOptions: dop}
	top.ColorScale.ScaleWithColor(col)
	text.Draw(dst, s, textFace(size), top)
}

// Texture mirrors a raster image on the GPU and re-uploads it only when the
// caller's version counter moves.
type Texture struct {
	img     *ebiten.Image
	version uint64
	valid   bool
}

// Sync uploads src when version differs from the last upload.
func (t *Texture) Sync(src *image.RGBA, version uint64) *ebiten.Image {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	if t.img == nil || t.img.Bounds().Dx() != w || t.img.Bounds().Dy() != h {
		if t.img != nil {
			t.img.Deallocate()
		}
		t.img = newImage(w, h)
		t.valid = false
	}
	if !t.valid || t.version != version {
		t.img.WritePixels(src.Pix)
		t.version = version
		t.valid = true
	}
	return t.img
}

// Draw blits the texture with its top-left corner at r's origin.
func (t *Texture) Draw(dst *ebiten.Image, r Rect) {
	if t.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest, DisableMipmaps: true}
	op.GeoM.Translate(float64(r.X0), float64(r.Y0))
	dst.DrawImage(t.img, op)
}
