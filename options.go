package overlay

// Names of the entries the options panel can offer.
const (
	optionKeyboard   = "keyboard"
	optionSave       = "save"
	optionFullscreen = "fullscreen"
	optionOptions    = "options"
)

// DefaultOptions is the options panel content used when BindOptions
// leaves it unset.
var DefaultOptions = []string{optionKeyboard, optionSave, optionFullscreen}

// optionsPanel is a toggle button with a column of option buttons that
// are only shown while the panel is open.
type optionsPanel struct {
	ctx      *layerContext
	root     *Node
	backdrop *Node
	toggle   *button
	entries  []*button
	layerBtn *button
	keyboard *button
	sub      CallbackHandle
	visible  bool
	size     float64
	layer    int
}

// newOptionsPanel builds the panel with its toggle centered on anchor and
// adds it to the overlay.
func newOptionsPanel(ctx *layerContext, anchor Vec2, size float64) *optionsPanel {
	host := ctx.host
	p := &optionsPanel{ctx: ctx, root: NewContainer("options"), size: size}
	p.root.Interactable = true
	p.backdrop = NewPanel("options-backdrop", 0, 0)
	p.root.AddChild(p.backdrop)
	for i, name := range ctx.layers {
		if name == ctx.layer {
			p.layer = i
		}
	}

	if len(ctx.layers) > 1 {
		p.layerBtn = p.entry("layer", buttonHandlers{onClick: p.nextLayer})
		p.layerBtn.node.Label = p.layerLabel()
	}
	for _, name := range ctx.options {
		switch name {
		case optionKeyboard:
			p.keyboard = p.entry(name, buttonHandlers{onClick: func() {
				host.ToggleKeyboard()
				if p.visible && !host.KeyboardVisible() {
					p.setVisible(false)
				}
			}})
		case optionSave:
			p.entry(name, buttonHandlers{onClick: func() {
				host.Save()
				p.setVisible(false)
			}})
		case optionFullscreen:
			p.entry(name, buttonHandlers{onClick: func() {
				host.ToggleFullscreen()
				p.setVisible(false)
			}})
		default:
			Logger().Warn("unknown option", "option", name)
		}
	}
	if p.keyboard != nil {
		p.keyboard.node.SetClass(classCloseIcon, host.KeyboardVisible())
		p.sub = host.OnKeyboardChanged(func(visible bool) {
			p.keyboard.node.SetClass(classCloseIcon, visible)
		})
	}

	p.toggle = createButton(host, optionOptions, buttonHandlers{onClick: p.toggleOptions}, size)
	p.toggle.node.Label = localize(ctx.localizer, optionOptions, nil)
	p.root.AddChild(p.toggle.node)

	p.layout(anchor)
	p.updateVisibility(false)
	host.Overlay().AddChild(p.root)
	return p
}

// entry adds a hidden option button.
func (p *optionsPanel) entry(name string, h buttonHandlers) *button {
	b := createButton(p.ctx.host, name, h, p.size)
	b.node.Label = localize(p.ctx.localizer, name, nil)
	b.node.AddClass("option")
	p.entries = append(p.entries, b)
	p.root.AddChild(b.node)
	return b
}

// layout centers the toggle on anchor and stacks the entries away from
// the nearer vertical edge.
func (p *optionsPanel) layout(anchor Vec2) {
	gap := p.size / 4
	dir := 1.0
	if anchor.Y > p.ctx.host.Height()/2 {
		dir = -1
	}
	p.toggle.place(anchor.X, anchor.Y)
	for i, b := range p.entries {
		b.place(anchor.X, anchor.Y+dir*float64(i+1)*(p.size+gap))
	}

	// The backdrop spans the entry column with half a gap around it.
	step := p.size + gap
	n := float64(len(p.entries))
	top := min(anchor.Y+dir*step, anchor.Y+dir*n*step) - step/2
	p.backdrop.SetPosition(anchor.X-step/2, top)
	p.backdrop.SetSize(step, n*step)
}

func (p *optionsPanel) layerLabel() string {
	return localize(p.ctx.localizer, "layer", map[string]any{"Name": p.ctx.layers[p.layer]})
}

func (p *optionsPanel) nextLayer() {
	p.layer = (p.layer + 1) % len(p.ctx.layers)
	name := p.ctx.layers[p.layer]
	p.setVisible(false)
	p.ctx.switchLayer(name)
	if !p.root.IsDisposed() {
		p.layerBtn.node.Label = p.layerLabel()
	}
}

func (p *optionsPanel) toggleOptions() {
	p.setVisible(!p.visible)
}

// setVisible shows or hides the entries. Hiding the panel also hides the
// software keyboard.
func (p *optionsPanel) setVisible(visible bool) {
	if p.visible == visible {
		return
	}
	p.visible = visible
	if !visible && p.ctx.host.KeyboardVisible() {
		p.ctx.host.ToggleKeyboard()
	}
	p.updateVisibility(true)
}

func (p *optionsPanel) updateVisibility(animate bool) {
	p.toggle.node.SetClass(classHighlight, p.visible)
	p.backdrop.Visible = p.visible && len(p.entries) > 0
	if p.backdrop.Visible && animate {
		p.backdrop.SetAlpha(0)
		p.ctx.host.Animate(fadeTween(p.backdrop, true))
	}
	for _, b := range p.entries {
		b.node.Visible = p.visible
		if p.visible && animate {
			b.node.SetAlpha(0)
			p.ctx.host.Animate(fadeTween(b.node, true))
		}
	}
}

// Visible reports whether the entries are shown.
func (p *optionsPanel) Visible() bool { return p.visible }

func (p *optionsPanel) dispose() {
	p.sub.Remove()
	p.root.Dispose()
}
