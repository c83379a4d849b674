package overlay

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds optional settings for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the initial window size. Zero means 640x400.
	Width, Height int
	// Background is drawn under the overlay each frame when set.
	Background func(screen *ebiten.Image)
}

// gameShell wraps a Scene as an ebiten.Game. The layout size follows the
// window, so the overlay is resized whenever the window is.
type gameShell struct {
	scene *Scene
	cfg   RunConfig
}

func (g *gameShell) Update() error {
	g.scene.Update()
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	if g.cfg.Background != nil {
		g.cfg.Background(screen)
	}
	g.scene.Draw(screen)
}

func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and runs the scene until it is closed.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 400
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	scene.Resize(float64(cfg.Width), float64(cfg.Height))
	if err := ebiten.RunGame(&gameShell{scene: scene, cfg: cfg}); err != nil {
		return fmt.Errorf("overlay: run: %w", err)
	}
	return nil
}
