package overlay

import "go.uber.org/atomic"

// insensitivePadding snaps normalized coordinates this close to an edge onto
// the edge.
const insensitivePadding = 1.0 / 100

// MouseProps is the pointer state shared by the base mouse binding and the
// pointer controls of a layer. The layer orchestrator owns it. Fields may be
// read from other goroutines.
type MouseProps struct {
	// PointerButton is the emulated button used when the native pointer
	// carries none: 0 primary, 1 secondary.
	PointerButton atomic.Int32
	// PointerDisabled suppresses the base mouse binding.
	PointerDisabled atomic.Bool
}

// mapXY maps a point in a container of size (cw, ch) to normalized frame
// coordinates. The frame keeps its aspect ratio and is centered in the
// container.
func mapXY(x, y, cw, ch float64, frameWidth, frameHeight int) (float64, float64) {
	if frameWidth <= 0 || frameHeight <= 0 || cw <= 0 || ch <= 0 {
		return 0.5, 0.5
	}
	aspect := float64(frameWidth) / float64(frameHeight)

	width := cw
	height := cw / aspect
	if height > ch {
		height = ch
		width = ch * aspect
	}
	top := (ch - height) / 2
	left := (cw - width) / 2

	nx := snapEdge(clamp01((x - left) / width))
	ny := snapEdge(clamp01((y - top) / height))
	return nx, ny
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}

func snapEdge(v float64) float64 {
	switch {
	case v <= insensitivePadding:
		return 0
	case v >= 1-insensitivePadding:
		return 1
	}
	return v
}

// bindMouse forwards pointer input that lands on the overlay itself, not on
// a control, as emulated mouse input. It returns the unbind function.
func bindMouse(host Host, ci CommandInterface, props *MouseProps) func() {
	el := host.Overlay()
	groups := host.Groups()
	// pressed is the emulated button held by pointer, -1 when none is.
	pressed, pointer := -1, -1

	motion := func(ctx PointerContext) {
		st := GetPointerState(ctx, el)
		ci.SendMouseMotion(mapXY(st.X, st.Y, host.Width(), host.Height(), ci.Width(), ci.Height()))
	}
	onStart := func(ctx PointerContext) {
		if ctx.Node != el || props.PointerDisabled.Load() || pressed >= 0 {
			return
		}
		st := GetPointerState(ctx, el)
		button := int(props.PointerButton.Load())
		if st.HasButton && st.Button != 0 {
			button = st.Button
		}
		motion(ctx)
		pressed, pointer = button, ctx.PointerID
		ci.SendMouseButton(button, true)
	}
	onChange := func(ctx PointerContext) {
		if ctx.Node != el || props.PointerDisabled.Load() {
			return
		}
		if pressed >= 0 && ctx.PointerID != pointer {
			return
		}
		motion(ctx)
	}
	onEnd := func(ctx PointerContext) {
		if pressed < 0 || ctx.PointerID != pointer {
			return
		}
		ci.SendMouseButton(pressed, false)
		pressed, pointer = -1, -1
	}

	var handles []CallbackHandle
	subscribe := func(events []EventType, fn func(PointerContext)) {
		for _, evt := range events {
			handles = append(handles, host.On(evt, fn))
		}
	}
	subscribe(groups.Starters, onStart)
	subscribe(groups.Changers, onChange)
	subscribe(groups.Enders, onEnd)
	subscribe(groups.Leavers, onChange)

	return func() {
		for _, h := range handles {
			h.Remove()
		}
		handles = nil
		if pressed >= 0 {
			ci.SendMouseButton(pressed, false)
			pressed, pointer = -1, -1
		}
	}
}
