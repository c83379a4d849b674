package overlay

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// CommandInterface is the emulator side of the overlay. Mouse coordinates
// are normalized to 0..1; Width and Height report the native frame size.
type CommandInterface interface {
	SendKeyEvent(code int, pressed bool)
	SendMouseMotion(x, y float64)
	SendMouseButton(button int, pressed bool)
	SendMouseSync()
	Width() int
	Height() int
}

// layerContext is what the factories may use besides the control itself.
type layerContext struct {
	host        Host
	mouse       *MouseProps
	options     []string
	layers      []string
	layer       string
	switchLayer func(name string)
	localizer   *i18n.Localizer
}

// controlHandle is a built control: its element, if any, and the teardown
// that detaches it. Teardown is safe to call more than once.
type controlHandle struct {
	node     *Node
	teardown func()
}

func (h controlHandle) Teardown() {
	if h.teardown != nil {
		h.teardown()
	}
}

// once wraps fn so that only the first call runs it.
func once(fn func()) func() {
	done := false
	return func() {
		if done {
			return
		}
		done = true
		fn()
	}
}

// screenMoveTargets maps a compass direction to the normalized mouse
// position a ScreenMove control sends on press.
var screenMoveTargets = map[Direction][2]float64{
	DirectionUp:        {0.5, 0},
	DirectionDown:      {0.5, 1},
	DirectionLeft:      {0, 0.5},
	DirectionRight:     {1, 0.5},
	DirectionUpLeft:    {0, 0},
	DirectionUpRight:   {1, 0},
	DirectionDownLeft:  {0, 1},
	DirectionDownRight: {1, 1},
}

// createControl builds the element for one control and attaches it to the
// overlay. Sensors are registered for the controls that support indirect
// activation.
func createControl(control LayerControl, ctx *layerContext, grid GridConfiguration,
	sensors *ControlSensors, ci CommandInterface) (controlHandle, error) {
	b := control.Base()
	cell, err := grid.Cell(b.Row, b.Column)
	if err != nil {
		return controlHandle{}, err
	}
	size := grid.ColumnWidth

	// attach places btn on the cell and registers its sensor if asked to.
	attach := func(btn *button, sensor *Sensor) controlHandle {
		btn.place(cell.CenterX, cell.CenterY)
		ctx.host.Overlay().AddChild(btn.node)
		if sensor != nil {
			sensors.Register(b.Row, b.Column, *sensor)
		}
		return controlHandle{node: btn.node, teardown: once(btn.dispose)}
	}
	withSensor := func(btn *button) controlHandle {
		s := btn.sensor()
		return attach(btn, &s)
	}

	switch c := control.(type) {
	case KeyControl:
		btn := createButton(ctx.host, c.Symbol, buttonHandlers{
			onDown: func() { ci.SendKeyEvent(c.MapTo, true) },
			onUp:   func() { ci.SendKeyEvent(c.MapTo, false) },
		}, size)
		return withSensor(btn), nil

	case OptionsControl:
		switch {
		case len(ctx.options) == 0:
			return controlHandle{}, nil
		case len(ctx.options) == 1 && ctx.options[0] == optionKeyboard:
			return keyboardControl(ctx, c.Symbol, cell, size), nil
		}
		p := newOptionsPanel(ctx, Vec2{cell.CenterX, cell.CenterY}, size)
		return controlHandle{node: p.root, teardown: once(p.dispose)}, nil

	case KeyboardControl:
		return keyboardControl(ctx, c.Symbol, cell, size), nil

	case SwitchControl:
		btn := createButton(ctx.host, c.Symbol, buttonHandlers{
			onClick: func() { ctx.switchLayer(c.LayerName) },
		}, size)
		return attach(btn, nil), nil

	case ScreenMoveControl:
		target, ok := screenMoveTargets[c.Direction]
		if !ok {
			return controlHandle{}, fmt.Errorf("overlay: screen move direction %q: %w", c.Direction, ErrInvalidConfig)
		}
		btn := createButton(ctx.host, c.Symbol, buttonHandlers{
			onDown: func() { ci.SendMouseMotion(target[0], target[1]) },
			onUp:   func() { ci.SendMouseMotion(0.5, 0.5) },
		}, size)
		return withSensor(btn), nil

	case PointerButtonControl:
		var h buttonHandlers
		if c.Click {
			h.onDown = func() { ci.SendMouseButton(c.Button, true) }
			h.onUp = func() { ci.SendMouseButton(c.Button, false) }
		} else {
			h.onDown = func() { ctx.mouse.PointerButton.Store(int32(c.Button)) }
			h.onUp = func() { ctx.mouse.PointerButton.Store(0) }
		}
		return withSensor(createButton(ctx.host, c.Symbol, h, size)), nil

	case PointerMoveControl:
		move := func() { ci.SendMouseMotion(c.X, c.Y) }
		btn := createButton(ctx.host, c.Symbol, buttonHandlers{onDown: move, onUp: move}, size)
		return withSensor(btn), nil

	case PointerResetControl:
		resync := func() { ci.SendMouseSync() }
		btn := createButton(ctx.host, c.Symbol, buttonHandlers{onDown: resync}, size)
		return attach(btn, &Sensor{Activate: resync, Deactivate: func() {}}), nil

	case PointerToggleControl:
		var btn *button
		toggle := func() {
			disabled := !ctx.mouse.PointerDisabled.Toggle()
			btn.node.SetClass(classHighlight, disabled)
		}
		btn = createButton(ctx.host, c.Symbol, buttonHandlers{onDown: toggle}, size)
		btn.node.SetClass(classHighlight, ctx.mouse.PointerDisabled.Load())
		return attach(btn, &Sensor{Activate: toggle, Deactivate: func() {}}), nil

	case NippleActivatorControl:
		return nippleActivator(ctx, c, cell, size, sensors), nil

	case UnknownControl:
		return controlHandle{}, fmt.Errorf("overlay: control %q: %w", c.Type, ErrUnknownControl)
	}
	return controlHandle{}, fmt.Errorf("overlay: control %T: %w", control, ErrUnknownControl)
}

// keyboardControl toggles the software keyboard and highlights itself
// while the keyboard is shown.
func keyboardControl(ctx *layerContext, symbol string, cell Cell, size float64) controlHandle {
	host := ctx.host
	btn := createButton(host, symbol, buttonHandlers{
		onClick: func() { host.ToggleKeyboard() },
	}, size)
	if symbol == "" {
		btn.node.Icon = iconKeyboard
	}
	btn.node.SetClass(classHighlight, host.KeyboardVisible())
	sub := host.OnKeyboardChanged(func(visible bool) {
		btn.node.SetClass(classHighlight, visible)
	})
	btn.place(cell.CenterX, cell.CenterY)
	host.Overlay().AddChild(btn.node)
	return controlHandle{node: btn.node, teardown: once(func() {
		sub.Remove()
		btn.dispose()
	})}
}

// nippleActivator anchors a joystick on its cell. Dragging from the cell
// activates the sensors of the neighboring cells.
func nippleActivator(ctx *layerContext, c NippleActivatorControl, cell Cell, size float64,
	sensors *ControlSensors) controlHandle {
	host := ctx.host
	stick := NewStick("nipple-"+c.Symbol, size)
	stick.Label = c.Symbol
	stick.SetPosition(cell.CenterX, cell.CenterY)
	joy := NewJoystick(sensors, c.Row, c.Column, size/4)
	active := -1

	feed := func(pc PointerContext) {
		dx, dy := pc.GlobalX-cell.CenterX, pc.GlobalY-cell.CenterY
		angle, dist := polar(dx, dy)
		joy.Move(angle, dist)
		if r := size / 2; dist > r {
			dx, dy = dx*r/dist, dy*r/dist
		}
		stick.Knob = Vec2{dx, dy}
	}
	end := func() {
		if active < 0 {
			return
		}
		host.ReleasePointer(active)
		active = -1
		joy.End()
		stick.Knob = Vec2{}
	}
	stick.OnPointerDown = func(pc PointerContext) {
		if active >= 0 {
			return
		}
		active = pc.PointerID
		host.CapturePointer(pc.PointerID, stick)
		feed(pc)
	}
	stick.OnPointerMove = func(pc PointerContext) {
		if pc.PointerID == active {
			feed(pc)
		}
	}
	stick.OnPointerUp = func(pc PointerContext) {
		if pc.PointerID == active {
			end()
		}
	}
	host.Overlay().AddChild(stick)
	return controlHandle{node: stick, teardown: once(func() {
		end()
		joy.Destroy()
		stick.Dispose()
	})}
}
