package overlay

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// Font wraps Ebitengine's text/v2 face used for control labels.
type Font struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("overlay: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 { return f.lh }

// sized returns a face of the same source at size.
func (f *Font) sized(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.face.Source, Size: size}
}

var (
	labelFontOnce sync.Once
	labelFont     *Font
)

// defaultFont returns the Go Mono label font, or nil if it cannot be parsed.
func defaultFont() *Font {
	labelFontOnce.Do(func() {
		f, err := LoadFont(gomono.TTF, 16)
		if err != nil {
			Logger().Error("load label font", "err", err)
			return
		}
		labelFont = f
	})
	return labelFont
}

// labelSize picks a font size that fits label into a box of width w.
func labelSize(label string, w float64) float64 {
	size := w * 0.4
	if n := len([]rune(label)); n > 2 {
		size = w * 0.9 / (float64(n) * 0.6)
	}
	return max(6, min(size, w*0.4))
}

// drawLabel draws label centered on (cx, cy) in a box of width w.
func drawLabel(dst *ebiten.Image, f *Font, label string, cx, cy, w float64, clr Color) {
	if f == nil || label == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr.toRGBA())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, label, f.sized(labelSize(label, w)), op)
}
