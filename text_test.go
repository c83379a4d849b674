package overlay

import (
	"math"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestLabelSize(t *testing.T) {
	tests := []struct {
		label string
		w     float64
		want  float64
	}{
		{"A", 100, 40},
		{"Up", 100, 40},
		{"Esc", 100, 40},
		{"Enter", 100, 30},
		{"Backspace", 10, 6},
	}
	for _, tt := range tests {
		if got := labelSize(tt.label, tt.w); !nearlyEqual(got, tt.want) {
			t.Errorf("labelSize(%q, %v) = %v, want %v", tt.label, tt.w, got, tt.want)
		}
	}
}

func TestLoadFont(t *testing.T) {
	f, err := LoadFont(gomono.TTF, 16)
	if err != nil {
		t.Fatal(err)
	}
	if f.LineHeight() <= 0 {
		t.Errorf("line height = %v", f.LineHeight())
	}
	w1, _ := f.MeasureString("A")
	w4, _ := f.MeasureString("AAAA")
	if w1 <= 0 || math.Abs(w4-4*w1) > 0.5 {
		t.Errorf("monospace widths %v and %v", w1, w4)
	}
	if _, err := LoadFont([]byte("nope"), 16); err == nil {
		t.Error("garbage font data should fail")
	}
}

func nearlyEqual(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}
