package overlay

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Constants ---

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Input source ---

// inputSource is the device state polled once per frame.
type inputSource interface {
	CursorPosition() (int, int)
	MouseButtons() (left, right, middle bool)
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key
}

// ebitenInput reads the live Ebitengine input state.
type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenInput) MouseButtons() (bool, bool, bool) {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
}

func (ebitenInput) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenInput) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }

func (ebitenInput) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (ebitenInput) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

// --- Per-pointer state ---

type pointerState struct {
	down      bool
	lastX     float64
	lastY     float64
	hitNode   *Node
	hoverNode *Node       // last node the pointer was hovering over (for enter/leave)
	button    MouseButton // button captured at press time
	seen      bool
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type keyHandler struct {
	id uint32
	fn func(code int)
}

type resizeHandler struct {
	id uint32
	fn func(width, height float64)
}

type boolHandler struct {
	id uint32
	fn func(bool)
}

const numPointerEvents = int(EventPointerLeave) + 1

type handlerKind uint8

const (
	handlerPointer handlerKind = iota
	handlerClick
	handlerKey
	handlerResize
	handlerKeyboard
)

type handlerRegistry struct {
	pointer  [numPointerEvents][]pointerHandler
	click    []clickHandler
	key      [3][]keyHandler
	resize   []resizeHandler
	keyboard []boolHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered scene-level callback.
// The zero value is valid and Remove on it is a no-op.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	kind  handlerKind
	event uint8
}

// Remove unregisters this callback so it no longer fires. Removing an
// already removed callback is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case handlerPointer:
		h.reg.pointer[h.event] = removeHandler(h.reg.pointer[h.event], h.id, func(p pointerHandler) uint32 { return p.id })
	case handlerClick:
		h.reg.click = removeHandler(h.reg.click, h.id, func(c clickHandler) uint32 { return c.id })
	case handlerKey:
		h.reg.key[h.event] = removeHandler(h.reg.key[h.event], h.id, func(k keyHandler) uint32 { return k.id })
	case handlerResize:
		h.reg.resize = removeHandler(h.reg.resize, h.id, func(r resizeHandler) uint32 { return r.id })
	case handlerKeyboard:
		h.reg.keyboard = removeHandler(h.reg.keyboard, h.id, func(b boolHandler) uint32 { return b.id })
	}
}

func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			var zero T
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) next() uint32 {
	r.nextID++
	return r.nextID
}

// --- Scene-level event registration ---

// On registers a scene-level callback for a pointer event type. Scene-level
// callbacks see every event, whatever node it targets.
func (s *Scene) On(evt EventType, fn func(PointerContext)) CallbackHandle {
	if evt == EventClick {
		panic("overlay: use OnClick for click events")
	}
	id := s.handlers.next()
	s.handlers.pointer[evt] = append(s.handlers.pointer[evt], pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: handlerPointer, event: uint8(evt)}
}

// OnClick registers a scene-level callback for click events.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.click = append(s.handlers.click, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: handlerClick}
}

// OnKey registers a callback for emulator key codes of the given event type.
func (s *Scene) OnKey(evt KeyEventType, fn func(code int)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.key[evt] = append(s.handlers.key[evt], keyHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: handlerKey, event: uint8(evt)}
}

// CapturePointer routes all events for pointerID to the given node.
func (s *Scene) CapturePointer(pointerID int, node *Node) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = node
	}
}

// ReleasePointer stops routing events for pointerID to a captured node.
func (s *Scene) ReleasePointer(pointerID int) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = nil
	}
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the node's Width x Height box.
// Containers with no HitShape are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Type == NodeTypeContainer || (n.Width == 0 && n.Height == 0) {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending interactable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type != NodeTypeContainer {
		buf = append(buf, n)
	}
	for _, child := range n.sorted() {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Reverse painter order: topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Update to handle keys, mouse and touches.
func (s *Scene) processInput() {
	s.processKeys()
	if !s.processInjectedInput() && !s.groups.Prevented(SourceMouse) {
		s.processMousePointer()
	}
	if !s.groups.Prevented(SourceTouch) {
		s.processTouchPointers()
	}
}

// processKeys translates physical key transitions into emulator key codes.
func (s *Scene) processKeys() {
	s.keyBuf = s.input.AppendJustPressedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		if code := KeyCode(k); code != KBDNone {
			s.fireKey(KeyDown, code)
		}
	}
	s.keyBuf = s.input.AppendJustReleasedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		if code := KeyCode(k); code != KBDNone {
			s.fireKey(KeyUp, code)
		}
	}
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := s.input.CursorPosition()
	left, right, middle := s.input.MouseButtons()

	var pressed bool
	var button MouseButton
	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = MouseButtonLeft
		case right:
			button = MouseButtonRight
		default:
			button = MouseButtonMiddle
		}
	}
	s.processPointer(0, float64(mx), float64(my), pressed, button, SourceMouse)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := s.input.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := s.input.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft, SourceTouch)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft, SourceTouch)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer.
// Up and move events of a pressed pointer are delivered to the node that
// received the press, the way touch events stay with their start target.
func (s *Scene) processPointer(pointerID int, wx, wy float64, pressed bool, button MouseButton, src PointerSource) {
	ps := &s.pointers[pointerID]

	var target *Node
	if s.captured[pointerID] != nil && !s.captured[pointerID].disposed {
		target = s.captured[pointerID]
	} else {
		target = s.hitTest(wx, wy)
	}

	if target != ps.hoverNode {
		if ps.hoverNode != nil {
			s.firePointer(EventPointerLeave, ps.hoverNode, pointerID, wx, wy, button, src)
		}
		if target != nil {
			s.firePointer(EventPointerEnter, target, pointerID, wx, wy, button, src)
		}
		ps.hoverNode = target
	}

	moved := !ps.seen || wx != ps.lastX || wy != ps.lastY
	ps.seen = true

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.lastX = wx
		ps.lastY = wy
		ps.hitNode = target
		s.firePointer(EventPointerDown, target, pointerID, wx, wy, ps.button, src)
	case !pressed && ps.down:
		hit := ps.hitNode
		if hit != nil && hit == target {
			s.fireClick(target, pointerID, wx, wy, ps.button)
		}
		s.firePointer(EventPointerUp, hit, pointerID, wx, wy, ps.button, src)

		// Auto-release capture.
		s.captured[pointerID] = nil
		ps.down = false
		ps.hitNode = nil
		ps.lastX = wx
		ps.lastY = wy
	case pressed && ps.down:
		if moved {
			s.firePointer(EventPointerMove, ps.hitNode, pointerID, wx, wy, ps.button, src)
		}
		ps.lastX = wx
		ps.lastY = wy
	default:
		if moved {
			s.firePointer(EventPointerMove, target, pointerID, wx, wy, button, src)
			ps.lastX = wx
			ps.lastY = wy
		}
	}
}

// --- Event dispatch ---

func nodeCallback(n *Node, evt EventType) func(PointerContext) {
	switch evt {
	case EventPointerDown:
		return n.OnPointerDown
	case EventPointerUp:
		return n.OnPointerUp
	case EventPointerMove:
		return n.OnPointerMove
	case EventPointerEnter:
		return n.OnPointerEnter
	case EventPointerLeave:
		return n.OnPointerLeave
	}
	return nil
}

func (s *Scene) firePointer(evt EventType, node *Node, pointerID int, wx, wy float64, button MouseButton, src PointerSource) {
	var lx, ly float64
	var userData any
	if node != nil {
		lx, ly = node.WorldToLocal(wx, wy)
		userData = node.UserData
	}
	ctx := PointerContext{
		Node: node, UserData: userData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, PointerID: pointerID, Source: src,
	}
	// Scene-level handlers first. Handlers may unsubscribe while firing.
	handlers := append([]pointerHandler(nil), s.handlers.pointer[evt]...)
	for _, h := range handlers {
		h.fn(ctx)
	}
	if node != nil {
		if fn := nodeCallback(node, evt); fn != nil {
			fn(ctx)
		}
	}
}

func (s *Scene) fireClick(node *Node, pointerID int, wx, wy float64, button MouseButton) {
	lx, ly := node.WorldToLocal(wx, wy)
	ctx := ClickContext{
		Node: node, UserData: node.UserData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, PointerID: pointerID,
	}
	handlers := append([]clickHandler(nil), s.handlers.click...)
	for _, h := range handlers {
		h.fn(ctx)
	}
	if node.OnClick != nil {
		node.OnClick(ctx)
	}
}

func (s *Scene) fireKey(evt KeyEventType, code int) {
	handlers := append([]keyHandler(nil), s.handlers.key[evt]...)
	for _, h := range handlers {
		h.fn(code)
	}
}
