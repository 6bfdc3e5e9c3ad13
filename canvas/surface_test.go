package canvas

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white      = color.NRGBA{255, 255, 255, 255}
	clearWhite = color.NRGBA{255, 255, 255, 0}
	black      = color.NRGBA{0, 0, 0, 255}
	clearBlack = color.NRGBA{0, 0, 0, 0}
	red        = color.NRGBA{255, 0, 0, 255}
)

func near(t *testing.T, want, got color.NRGBA, tol int) {
	t.Helper()
	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			return -d
		}
		return d
	}
	if diff(want.R, got.R) > tol || diff(want.G, got.G) > tol ||
		diff(want.B, got.B) > tol || diff(want.A, got.A) > tol {
		t.Fatalf("color %v not within %d of %v", got, tol, want)
	}
}

func TestNewClampsSize(t *testing.T) {
	s := New(0, -3)
	assert.Equal(t, 1, s.Width())
	assert.Equal(t, 1, s.Height())
	assert.Equal(t, color.NRGBA{}, s.PixelAt(0, 0))
}

func TestFillRectSolid(t *testing.T) {
	s := New(10, 10)
	s.FillRect(0, 0, 10, 10, Solid(red))
	assert.Equal(t, red, s.PixelAt(0, 0))
	assert.Equal(t, red, s.PixelAt(9, 9))
	assert.Equal(t, color.NRGBA{}, s.PixelAt(10, 0), "outside reads transparent")
}

func TestFillRectNegativeSize(t *testing.T) {
	s := New(10, 10)
	s.FillRect(10, 10, -5, -5, Solid(red))
	assert.Equal(t, color.NRGBA{}, s.PixelAt(4, 4))
	assert.Equal(t, red, s.PixelAt(5, 5))
}

func TestFillRectEmptyIsNoop(t *testing.T) {
	s := New(4, 4)
	v := s.Version()
	s.FillRect(0, 0, 0, 4, Solid(red))
	s.FillRect(0, 0, 4, 4, nil)
	assert.Equal(t, v, s.Version())
}

func TestFillRectPartialCoverage(t *testing.T) {
	s := New(4, 1)
	s.FillRect(0.5, 0, 1, 1, Solid(black))
	near(t, color.NRGBA{0, 0, 0, 128}, s.PixelAt(0, 0), 1)
	near(t, color.NRGBA{0, 0, 0, 128}, s.PixelAt(1, 0), 1)
	assert.Equal(t, color.NRGBA{}, s.PixelAt(2, 0))
}

func TestSourceOverHalfBlack(t *testing.T) {
	s := New(1, 1)
	s.FillRect(0, 0, 1, 1, Solid(white))
	s.FillRect(0, 0, 1, 1, Solid(color.NRGBA{0, 0, 0, 128}))
	near(t, color.NRGBA{127, 127, 127, 255}, s.PixelAt(0, 0), 1)
}

func TestClearResets(t *testing.T) {
	s := New(2, 2)
	s.FillRect(0, 0, 2, 2, Solid(red))
	s.Clear()
	assert.Equal(t, color.NRGBA{}, s.PixelAt(1, 1))
}

func TestSnapshotIsCopy(t *testing.T) {
	s := New(2, 2)
	s.FillRect(0, 0, 2, 2, Solid(red))
	snap := s.Snapshot()
	s.Clear()
	assert.Equal(t, uint8(255), snap.Pix[0])
	assert.Equal(t, uint8(0), s.Image().Pix[0])
}

func TestClamp(t *testing.T) {
	s := New(50, 250)
	tests := []struct{ x, y, wx, wy int }{
		{-4, -1, 0, 0},
		{10, 100, 10, 100},
		{60, 300, 49, 249},
	}
	for _, tt := range tests {
		x, y := s.Clamp(tt.x, tt.y)
		assert.Equal(t, tt.wx, x)
		assert.Equal(t, tt.wy, y)
	}
}

func TestStrokeCircleLeavesCenter(t *testing.T) {
	s := New(60, 60)
	s.FillRect(0, 0, 60, 60, Solid(red))
	s.StrokeCircle(30, 30, 10, 5, white)

	assert.Equal(t, red, s.PixelAt(30, 30), "ring must not cover its center")
	near(t, white, s.PixelAt(40, 30), 2)
	near(t, white, s.PixelAt(30, 20), 2)
	assert.Equal(t, red, s.PixelAt(30, 50))
}

func TestStrokeRectOutline(t *testing.T) {
	s := New(50, 40)
	s.FillRect(0, 0, 50, 40, Solid(red))
	s.StrokeRect(0, 15, 50, 10, 3, white)

	near(t, white, s.PixelAt(10, 15), 2)
	near(t, white, s.PixelAt(10, 24), 2)
	assert.Equal(t, red, s.PixelAt(10, 20), "interior untouched")
	assert.Equal(t, red, s.PixelAt(10, 5))
}

func TestStrokeDegenerate(t *testing.T) {
	s := New(8, 8)
	v := s.Version()
	s.StrokeCircle(4, 4, 0, 2, white)
	s.StrokeRect(0, 0, 4, 4, 0, white)
	require.Equal(t, v, s.Version())
}
