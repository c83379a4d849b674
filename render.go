package overlay

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Element colors. Class colors replace the node color while the class is
// set; the node alpha still applies.
var (
	buttonColor    = Color{0.15, 0.15, 0.15, 0.55}
	stickColor     = Color{0.15, 0.15, 0.15, 0.35}
	panelColor     = Color{0, 0, 0, 0.4}
	pressedColor   = Color{0.45, 0.45, 0.45, 0.75}
	highlightColor = Color{0.2, 0.45, 0.8, 0.7}
	borderColor    = Color{1, 1, 1, 0.5}
	knobColor      = Color{1, 1, 1, 0.6}
	labelColor     = Color{1, 1, 1, 0.9}
)

// drawCommand is one element resolved to screen space.
type drawCommand struct {
	kind   NodeType
	bounds Rect
	fill   Color
	alpha  float64
	label  string
	icon   string
	knob   Vec2
}

// emitCommands walks the visible tree in ZIndex order and appends one
// command per drawable element. World transforms must be current.
func emitCommands(n *Node, cmds []drawCommand) []drawCommand {
	if !n.Visible || n.disposed || n.worldAlpha <= 0 {
		return cmds
	}
	if n.Type != NodeTypeContainer {
		cmds = append(cmds, commandFor(n))
	}
	for _, child := range n.sorted() {
		cmds = emitCommands(child, cmds)
	}
	return cmds
}

func commandFor(n *Node) drawCommand {
	cmd := drawCommand{
		kind:   n.Type,
		bounds: n.WorldBounds(),
		fill:   n.Color,
		alpha:  n.worldAlpha,
		label:  n.Label,
		icon:   n.Icon,
	}
	switch {
	case n.HasClass(classPressed):
		cmd.fill = pressedColor
	case n.HasClass(classHighlight):
		cmd.fill = highlightColor
	}
	if n.HasClass(classCloseIcon) {
		cmd.icon = iconClose
	}
	if cmd.icon != "" {
		cmd.label = ""
	}
	if n.Type == NodeTypeStick && n.Width > 0 {
		s := cmd.bounds.Width / n.Width
		cmd.knob = Vec2{n.Knob.X * s, n.Knob.Y * s}
	}
	return cmd
}

// Draw renders the overlay onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.commands = emitCommands(s.root, s.commands[:0])
	if s.icons == nil {
		s.icons = iconCache{}
	}
	font := defaultFont()
	for _, cmd := range s.commands {
		s.drawCommand(screen, font, cmd)
	}
}

func (s *Scene) drawCommand(dst *ebiten.Image, font *Font, cmd drawCommand) {
	b := cmd.bounds
	c := b.Center()
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height)
	fill := cmd.fill.Scale(cmd.alpha).toRGBA()
	border := borderColor.Scale(cmd.alpha).toRGBA()

	switch cmd.kind {
	case NodeTypeButton:
		vector.DrawFilledRect(dst, x, y, w, h, fill, true)
		vector.StrokeRect(dst, x, y, w, h, 1.5, border, true)
	case NodeTypeStick:
		r := float32(math.Min(b.Width, b.Height) / 2)
		cx, cy := float32(c.X), float32(c.Y)
		vector.DrawFilledCircle(dst, cx, cy, r, fill, true)
		vector.StrokeCircle(dst, cx, cy, r, 1.5, border, true)
		vector.DrawFilledCircle(dst, cx+float32(cmd.knob.X), cy+float32(cmd.knob.Y), r/2,
			knobColor.Scale(cmd.alpha).toRGBA(), true)
	case NodeTypePanel:
		vector.DrawFilledRect(dst, x, y, w, h, fill, true)
		return
	}

	if cmd.icon != "" {
		size := int(math.Round(math.Min(b.Width, b.Height) * 0.6))
		if img := s.icons.get(cmd.icon, size); img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(c.X-float64(size)/2, c.Y-float64(size)/2)
			op.ColorScale.ScaleAlpha(float32(cmd.alpha))
			dst.DrawImage(img, op)
			return
		}
	}
	drawLabel(dst, font, cmd.label, c.X, c.Y, b.Width, labelColor.Scale(cmd.alpha))
}
