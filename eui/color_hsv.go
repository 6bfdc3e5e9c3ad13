package eui

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

type Color color.RGBA

func (c Color) RGBA() (r, g, b, a uint32) {
	cc := color.RGBA(c)
	return cc.RGBA()
}

func NewColor(r, g, b, a uint8) Color {
	return Color(color.RGBA{R: r, G: g, B: b, A: a})
}

// FromNRGBA converts a straight-alpha color, as read back from a canvas.
func FromNRGBA(c color.NRGBA) Color {
	r, g, b, a := c.RGBA()
	return NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// NRGBA returns the color with straight alpha.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBAModel.Convert(color.RGBA(c)).(color.NRGBA)
}

// CSS formats the color the way a 2D canvas reports it: straight RGB channels
// and an alpha in [0,1], e.g. "rgba(255, 0, 0, 1)".
func (c Color) CSS() string {
	n := c.NRGBA()
	a := strconv.FormatFloat(math.Round(float64(n.A)/255*1000)/1000, 'f', -1, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", n.R, n.G, n.B, a)
}

// hsvaToRGBA converts HSV values (h in degrees [0,360), s and v in [0,1])
// and alpha in [0,1] to color.RGBA.
func hsvaToRGBA(h, s, v, a float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	r += m
	g += m
	b += m
	return color.RGBA{
		R: uint8(math.Round(clamp(r*255, 0, 255))),
		G: uint8(math.Round(clamp(g*255, 0, 255))),
		B: uint8(math.Round(clamp(b*255, 0, 255))),
		A: uint8(math.Round(clamp(a*255, 0, 255))),
	}
}

func rgbaToHSVA(c color.RGBA) (h, s, v, a float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	d := max - min
	switch {
	case d == 0:
		h = 0
	case max == r:
		h = math.Mod((g-b)/d, 6) * 60
	case max == g:
		h = ((b-r)/d + 2) * 60
	default:
		h = ((r-g)/d + 4) * 60
	}
	if h < 0 {
		h += 360
	}
	if max == 0 {
		s = 0
	} else {
		s = d / max
	}
	v = max
	a = float64(c.A) / 255
	return
}

// HSVA exposes the HSV components of c.
func (c Color) HSVA() (h, s, v, a float64) { return rgbaToHSVA(color.RGBA(c)) }

// ColorFromHSVA builds a color from HSV components.
func ColorFromHSVA(h, s, v, a float64) Color { return Color(hsvaToRGBA(h, s, v, a)) }

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ParseColor accepts CSS functional notation ("rgb(...)", "rgba(...)"),
// hex values like "#RGB", "#RRGGBB" or "#RRGGBBAA", named colors, and
// comma-separated HSV components "h,s,v[,a]". Alpha in functional notation is
// in [0,1] and may be written as a percentage.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}
	lower := strings.ToLower(s)
	if nc, ok := namedColors[lower]; ok {
		return nc, nil
	}
	switch {
	case strings.HasPrefix(lower, "rgba(") || strings.HasPrefix(lower, "rgb("):
		return parseFunctional(lower)
	case strings.HasPrefix(lower, "#"):
		return parseHex(lower[1:])
	}
	if parts := strings.Split(s, ","); len(parts) >= 3 {
		h, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hue in %q: %w", s, err)
		}
		sv := func(i int) float64 {
			if i >= len(parts) {
				return 1
			}
			v, _ := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
			return v
		}
		sat := sv(1)
		val := sv(2)
		alp := sv(3)
		if alp == 0 && len(parts) < 4 {
			alp = 1
		}
		return Color(hsvaToRGBA(h, sat, val, alp)), nil
	}
	return Color{}, fmt.Errorf("invalid color format: %s", s)
}

func parseFunctional(s string) (Color, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") || open < 0 {
		return Color{}, fmt.Errorf("invalid color format: %s", s)
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("invalid color format: %s", s)
	}
	var ch [3]uint8
	for i := range 3 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return Color{}, fmt.Errorf("invalid channel %q in %s: %w", parts[i], s, err)
		}
		ch[i] = uint8(math.Round(clamp(v, 0, 255)))
	}
	alpha := 1.0
	if len(parts) == 4 {
		as := strings.TrimSpace(parts[3])
		pct := strings.HasSuffix(as, "%")
		v, err := strconv.ParseFloat(strings.TrimSuffix(as, "%"), 64)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha %q in %s: %w", as, s, err)
		}
		if pct {
			v /= 100
		}
		alpha = clamp(v, 0, 1)
	}
	n := color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: uint8(math.Round(alpha * 255))}
	return FromNRGBA(n), nil
}

func parseHex(hex string) (Color, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid hex color: #%s", hex)
	}
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: #%s: %w", hex, err)
	}
	if len(hex) == 6 {
		val = val<<8 | 0xff
	}
	n := color.NRGBA{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}
	return FromNRGBA(n), nil
}

// MarshalJSON implements json.Marshaler using the CSS representation.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.CSS())
}

// UnmarshalJSON accepts HSV or RGBA objects, or any string ParseColor accepts.
func (c *Color) UnmarshalJSON(data []byte) error {
	var hstruct struct {
		HSV [4]float64 `json:"HSV"`
	}
	if err := json.Unmarshal(data, &hstruct); err == nil && hstruct.HSV != [4]float64{} {
		*c = Color(hsvaToRGBA(hstruct.HSV[0], hstruct.HSV[1], hstruct.HSV[2], hstruct.HSV[3]))
		return nil
	}
	var rgba struct{ R, G, B, A uint8 }
	if err := json.Unmarshal(data, &rgba); err == nil {
		*c = NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid color format: %s", string(data))
	}
	nc, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = nc
	return nil
}
