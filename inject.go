package overlay

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates. Touch events use pointer slots 1-9; mouse events slot 0.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
	touch   int // 0 for the mouse, otherwise the touch slot
}

// InjectPress queues a mouse press (left button) at the given screen
// coordinates. The event is consumed on the next frame's input pass.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectTouch queues a touch contact on slot (1-9). pressed=false lifts it.
func (s *Scene) InjectTouch(slot int, x, y float64, pressed bool) {
	if slot < 1 || slot >= maxPointers {
		return
	}
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: pressed, touch: slot})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real mouse
// input is skipped for that frame).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	src := SourceMouse
	if evt.touch > 0 {
		src = SourceTouch
	}
	s.processPointer(evt.touch, evt.x, evt.y, evt.pressed, evt.button, src)
	return true
}
