package picker

import (
	"strings"
	"testing"

	"huepick/eui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rgb parses an emitted color string back into channels.
func rgb(t *testing.T, s string) (r, g, b int) {
	t.Helper()
	c, err := eui.ParseColor(s)
	require.NoError(t, err, "emitted %q", s)
	n := c.NRGBA()
	return int(n.R), int(n.G), int(n.B)
}

func assertNear(t *testing.T, s string, wr, wg, wb, tol int) {
	t.Helper()
	r, g, b := rgb(t, s)
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	if abs(r-wr) > tol || abs(g-wg) > tol || abs(b-wb) > tol {
		t.Fatalf("%s not within %d of (%d,%d,%d)", s, tol, wr, wg, wb)
	}
}

func TestHueStripScenario(t *testing.T) {
	var got []string
	s := NewHueStrip(50, 250, func(c string) { got = append(got, c) })
	s.Mount(nil)

	s.Press(20, 0)
	require.Len(t, got, 1)
	assertNear(t, got[0], 255, 0, 0, 4)
	assert.True(t, strings.HasSuffix(got[0], ", 1)"))

	s.Press(20, 212)
	require.Len(t, got, 2)
	assertNear(t, got[1], 255, 0, 255, 4)
}

func TestHueStripStops(t *testing.T) {
	s := NewHueStrip(50, 250, nil)
	tests := []struct {
		name      string
		y         int
		r, g, b   int
		tolerance int
	}{
		{"start", 0, 255, 0, 0, 4},
		{"end", 249, 255, 0, 0, 5},
		{"green", 84, 0, 255, 0, 4},
		{"cyan", 127, 0, 255, 255, 4},
		{"blue", 170, 0, 0, 255, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Press(0, tt.y)
			s.Release()
			assertNear(t, s.Hue(), tt.r, tt.g, tt.b, tt.tolerance)
		})
	}
}

func TestHueStripSamplesFixedColumn(t *testing.T) {
	s := NewHueStrip(50, 250, nil)
	s.Press(0, 100)
	a := s.Hue()
	s.Press(49, 100)
	assert.Equal(t, a, s.Hue(), "horizontal position must not matter")
}

func TestHueStripMoveRequiresPress(t *testing.T) {
	calls := 0
	s := NewHueStrip(50, 250, func(string) { calls++ })
	s.Move(10, 50)
	assert.Equal(t, 0, calls)
	_, ok := s.Selection()
	assert.False(t, ok)

	s.Press(10, 50)
	s.Move(10, 60)
	assert.Equal(t, 2, calls)
	y, _ := s.Selection()
	assert.Equal(t, 60, y)
}

func TestHueStripReleaseAnywhereStopsTracking(t *testing.T) {
	tr := eui.NewPointerTracker()
	calls := 0
	s := NewHueStrip(50, 250, func(string) { calls++ })
	s.Mount(tr)
	require.Equal(t, 1, tr.Subscribers())

	tr.Step(true, 10, 10)
	s.Press(10, 10)
	// Released well outside the strip.
	tr.Step(false, 400, 400)
	assert.False(t, s.Pressed())

	s.Move(10, 30)
	assert.Equal(t, 1, calls, "no updates after release")
	h := s.Hue()
	assert.NotEmpty(t, h, "last hue stays current")

	s.Unmount()
	assert.Equal(t, 0, tr.Subscribers())
}

func TestHueStripClampsOutOfRange(t *testing.T) {
	s := NewHueStrip(50, 250, nil)
	s.Press(10, 900)
	y, _ := s.Selection()
	assert.Equal(t, 249, y)
	s.Press(10, -20)
	y, _ = s.Selection()
	assert.Equal(t, 0, y)
}

func TestHueStripRedrawOnSelection(t *testing.T) {
	s := NewHueStrip(50, 250, nil)
	s.Mount(nil)
	v := s.Surface().Version()
	s.Press(10, 40)
	assert.Greater(t, s.Surface().Version(), v)

	// The outline sits five rows above and below the selection.
	px := s.Surface().PixelAt(20, 35)
	assert.Equal(t, uint8(255), px.R)
	assert.Equal(t, uint8(255), px.G)
	assert.Equal(t, uint8(255), px.B)
}
