package overlay

// Style classes read by the renderer.
const (
	classPressed   = "pressed"
	classHighlight = "highlight"
	classCloseIcon = "close-icon"
)

// buttonHandlers are the actions of a button. Any of them may be nil.
// onClick runs on release, after onUp.
type buttonHandlers struct {
	onDown  func()
	onUp    func()
	onClick func()
}

// button is an overlay element with press and release semantics. A press
// that starts on the button stays with it until the pointer is released.
type button struct {
	node     *Node
	host     Host
	handlers buttonHandlers
	pressed  bool
	pointer  int
}

// createButton builds a square button of the given size labeled with
// symbol. Symbols naming a known icon are drawn as that icon.
func createButton(host Host, symbol string, h buttonHandlers, size float64) *button {
	b := &button{node: NewButton("button-"+symbol, size), host: host, handlers: h, pointer: -1}
	b.node.Label = symbol
	if hasIcon(symbol) {
		b.node.Icon = symbol
	}
	b.node.OnPointerDown = func(ctx PointerContext) {
		if b.pressed {
			return
		}
		b.pointer = ctx.PointerID
		b.press()
	}
	b.node.OnPointerUp = func(ctx PointerContext) {
		if ctx.PointerID != b.pointer {
			return
		}
		b.pointer = -1
		if b.release() && b.handlers.onClick != nil {
			b.handlers.onClick()
		}
	}
	return b
}

// place centers the button on (x, y) in overlay coordinates.
func (b *button) place(x, y float64) {
	b.node.SetPosition(x, y)
}

// press runs onDown unless the button is already pressed.
func (b *button) press() {
	if b.pressed || b.node.IsDisposed() {
		return
	}
	b.pressed = true
	b.node.AddClass(classPressed)
	b.host.Animate(pressTween(b.node, true))
	if b.handlers.onDown != nil {
		b.handlers.onDown()
	}
}

// release runs onUp if the button is pressed and reports whether it was.
func (b *button) release() bool {
	if !b.pressed {
		return false
	}
	b.pressed = false
	if !b.node.IsDisposed() {
		b.node.RemoveClass(classPressed)
		b.host.Animate(pressTween(b.node, false))
	}
	if b.handlers.onUp != nil {
		b.handlers.onUp()
	}
	return true
}

// sensor exposes the button's press and release as a grid sensor.
func (b *button) sensor() Sensor {
	return Sensor{Activate: b.press, Deactivate: func() { b.release() }}
}

// dispose releases a held button and removes it from the overlay.
func (b *button) dispose() {
	b.release()
	b.node.Dispose()
}
