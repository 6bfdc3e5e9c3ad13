package eui

import (
	"encoding/json"
	"testing"
)

func TestParseColorFormats(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"rgba(255, 0, 0, 1)", NewColor(255, 0, 0, 255)},
		{"rgb(0,255,0)", NewColor(0, 255, 0, 255)},
		{"  RGBA(0, 0, 255, 100%) ", NewColor(0, 0, 255, 255)},
		{"rgba(255, 255, 255, 0)", NewColor(0, 0, 0, 0)},
		{"#ff00ff", NewColor(255, 0, 255, 255)},
		{"#0f0", NewColor(0, 255, 0, 255)},
		{"white", NewColor(255, 255, 255, 255)},
		{"0,1,1", NewColor(255, 0, 0, 255)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, in := range []string{"", "rgba(1,2)", "rgba(a, b, c, 1)", "#12345", "notacolor", "rgb(1,2,3"} {
		if _, err := ParseColor(in); err == nil {
			t.Fatalf("ParseColor(%q) succeeded, want error", in)
		}
	}
}

func TestCSSRoundTrip(t *testing.T) {
	c := NewColor(12, 200, 99, 255)
	if got := c.CSS(); got != "rgba(12, 200, 99, 1)" {
		t.Fatalf("CSS() = %q", got)
	}
	back, err := ParseColor(c.CSS())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if back != c {
		t.Fatalf("round trip %v != %v", back, c)
	}
}

func TestCSSHalfAlpha(t *testing.T) {
	c, err := ParseColor("rgba(255, 255, 255, 0.5)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := c.CSS(); got != "rgba(255, 255, 255, 0.502)" {
		t.Fatalf("CSS() = %q", got)
	}
}

func TestHSVConversions(t *testing.T) {
	h, s, v, a := NewColor(0, 0, 255, 255).HSVA()
	if h != 240 || s != 1 || v != 1 || a != 1 {
		t.Fatalf("blue hsva = %v %v %v %v", h, s, v, a)
	}
	if got := ColorFromHSVA(300, 1, 1, 1); got != NewColor(255, 0, 255, 255) {
		t.Fatalf("magenta = %v", got)
	}
	if got := ColorFromHSVA(-60, 1, 1, 1); got != NewColor(255, 0, 255, 255) {
		t.Fatalf("negative hue wraps, got %v", got)
	}
}

func TestColorJSON(t *testing.T) {
	data, err := json.Marshal(NewColor(1, 2, 3, 255))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"rgba(1, 2, 3, 1)"` {
		t.Fatalf("marshal = %s", data)
	}
	var c Color
	if err := json.Unmarshal([]byte(`{"HSV":[120,1,1,1]}`), &c); err != nil {
		t.Fatalf("unmarshal hsv: %v", err)
	}
	if c != NewColor(0, 255, 0, 255) {
		t.Fatalf("hsv object = %v", c)
	}
	if err := json.Unmarshal([]byte(`"#000000"`), &c); err != nil {
		t.Fatalf("unmarshal hex: %v", err)
	}
	if c != NewColor(0, 0, 0, 255) {
		t.Fatalf("hex = %v", c)
	}
	if err := json.Unmarshal([]byte(`"bogus"`), &c); err == nil {
		t.Fatalf("expected error")
	}
}
