package overlay

import (
	"fmt"
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Icon names. A button whose symbol is an icon name draws the icon instead
// of the label.
const (
	iconKeyboard   = "keyboard"
	iconSave       = "save"
	iconFullscreen = "fullscreen"
	iconOptions    = "options"
	iconClose      = "close"
)

// icons are 24x24 white line drawings.
var icons = map[string]string{
	iconKeyboard: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
<rect x="2" y="6" width="20" height="12" rx="2" fill="none" stroke="#fff" stroke-width="2"/>
<path d="M6 10h2M10 10h2M14 10h2M18 10h0M7 14h10" stroke="#fff" stroke-width="2" fill="none"/>
</svg>`,
	iconSave: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
<path d="M4 4h13l3 3v13H4z" fill="none" stroke="#fff" stroke-width="2"/>
<rect x="8" y="4" width="7" height="5" fill="#fff"/>
<rect x="7" y="13" width="10" height="6" fill="none" stroke="#fff" stroke-width="2"/>
</svg>`,
	iconFullscreen: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
<path d="M3 9V3h6M15 3h6v6M21 15v6h-6M9 21H3v-6" fill="none" stroke="#fff" stroke-width="2"/>
</svg>`,
	iconOptions: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
<path d="M4 6h16M4 12h16M4 18h16" fill="none" stroke="#fff" stroke-width="2"/>
</svg>`,
	iconClose: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
<path d="M5 5l14 14M19 5L5 19" fill="none" stroke="#fff" stroke-width="2"/>
</svg>`,
}

func hasIcon(name string) bool {
	_, ok := icons[name]
	return ok
}

// rasterizeIcon renders the SVG source into a size x size image.
func rasterizeIcon(src string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("overlay: icon size %d", size)
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("overlay: parse icon: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return img, nil
}

type iconKey struct {
	name string
	size int
}

// iconCache holds rasterized icons per name and pixel size.
type iconCache map[iconKey]*ebiten.Image

// get returns the icon image, rasterizing it on first use. Unknown names
// and broken sources return nil.
func (c iconCache) get(name string, size int) *ebiten.Image {
	key := iconKey{name, size}
	if img, ok := c[key]; ok {
		return img
	}
	src, ok := icons[name]
	if !ok {
		return nil
	}
	rgba, err := rasterizeIcon(src, size)
	if err != nil {
		Logger().Error("rasterize icon", "icon", name, "err", err)
		c[key] = nil
		return nil
	}
	img := ebiten.NewImageFromImage(rgba)
	c[key] = img
	return img
}
