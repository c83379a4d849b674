package overlay

import (
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the element tree, the overlay
// element controls are attached to, input state and host subscriptions.
// It implements Host.
type Scene struct {
	root    *Node
	overlay *Node

	width, height float64

	// Input state
	input        inputSource
	mode         InputMode
	groups       EventGroups
	handlers     handlerRegistry
	captured     [maxPointers]*Node
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	keyBuf       []ebiten.Key
	injectQueue  []syntheticPointerEvent
	testRunner   *TestRunner

	keyboardVisible bool
	tweens          []*TweenGroup
	commands        []drawCommand
	icons           iconCache

	// OnSave is invoked by the options panel "save" entry.
	OnSave func()
	// SetFullscreen switches fullscreen mode. Defaults to ebiten.SetFullscreen.
	SetFullscreen func(on bool)
	// IsFullscreen reports fullscreen mode. Defaults to ebiten.IsFullscreen.
	IsFullscreen func() bool
}

// NewScene creates a new scene with a root container and the mouse overlay
// element. The input mode is detected from the running platform.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	ov := NewContainer("mouse-overlay")
	ov.Interactable = true
	ov.HitShape = HitRect{}
	root.AddChild(ov)

	mode := DetectInputMode(runtime.GOOS)
	return &Scene{
		root:          root,
		overlay:       ov,
		input:         ebitenInput{},
		mode:          mode,
		groups:        mode.Groups(),
		SetFullscreen: ebiten.SetFullscreen,
		IsFullscreen:  ebiten.IsFullscreen,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Overlay returns the element that receives pointer input not claimed by a
// control and that controls are attached to.
func (s *Scene) Overlay() *Node {
	return s.overlay
}

// Width returns the current width of the sizing container.
func (s *Scene) Width() float64 { return s.width }

// Height returns the current height of the sizing container.
func (s *Scene) Height() float64 { return s.height }

// InputMode returns the detected input mode.
func (s *Scene) InputMode() InputMode { return s.mode }

// SetInputMode overrides the detected input mode.
func (s *Scene) SetInputMode(m InputMode) {
	s.mode = m
	s.groups = m.Groups()
}

// Groups returns the canonical event groups for the current input mode.
func (s *Scene) Groups() EventGroups { return s.groups }

// Resize updates the sizing container. Resize handlers run synchronously and
// only when the size actually changed.
func (s *Scene) Resize(width, height float64) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.overlay.SetSize(width, height)
	s.overlay.HitShape = HitRect{Width: width, Height: height}
	s.fireResize()
}

func (s *Scene) fireResize() {
	handlers := append([]resizeHandler(nil), s.handlers.resize...)
	for _, h := range handlers {
		h.fn(s.width, s.height)
	}
}

// AddOnResize registers fn to run after every size change.
func (s *Scene) AddOnResize(fn func(width, height float64)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.resize = append(s.handlers.resize, resizeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: handlerResize}
}

// --- Software keyboard ---

// ToggleKeyboard flips the software keyboard visibility and returns the new
// state. Visibility listeners are notified.
func (s *Scene) ToggleKeyboard() bool {
	s.keyboardVisible = !s.keyboardVisible
	handlers := append([]boolHandler(nil), s.handlers.keyboard...)
	for _, h := range handlers {
		h.fn(s.keyboardVisible)
	}
	return s.keyboardVisible
}

// KeyboardVisible reports whether the software keyboard is shown.
func (s *Scene) KeyboardVisible() bool { return s.keyboardVisible }

// OnKeyboardChanged registers a software keyboard visibility listener.
func (s *Scene) OnKeyboardChanged(fn func(visible bool)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.keyboard = append(s.handlers.keyboard, boolHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: handlerKeyboard}
}

// FireKeyPress delivers a software keyboard tap for an emulator key code.
func (s *Scene) FireKeyPress(code int) {
	s.fireKey(KeyPress, code)
}

// Save runs the OnSave hook, if any.
func (s *Scene) Save() {
	if s.OnSave != nil {
		s.OnSave()
	}
}

// ToggleFullscreen flips fullscreen mode.
func (s *Scene) ToggleFullscreen() {
	if s.SetFullscreen == nil || s.IsFullscreen == nil {
		return
	}
	s.SetFullscreen(!s.IsFullscreen())
}

// --- Frame ---

// Update runs scripted input, processes input and advances tweens.
func (s *Scene) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.update(dt)
}

func (s *Scene) update(dt float32) {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.processInput()
	s.advanceTweens(dt)
}

// Animate registers a tween group that advances every frame until done.
func (s *Scene) Animate(g *TweenGroup) {
	if g == nil {
		return
	}
	s.tweens = append(s.tweens, g)
}

func (s *Scene) advanceTweens(dt float32) {
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}

// Host is the layout and input collaborator the controls are built against.
// *Scene implements it.
type Host interface {
	Width() float64
	Height() float64
	Overlay() *Node
	Groups() EventGroups
	AddOnResize(fn func(width, height float64)) CallbackHandle
	On(evt EventType, fn func(PointerContext)) CallbackHandle
	OnKey(evt KeyEventType, fn func(code int)) CallbackHandle
	ToggleKeyboard() bool
	KeyboardVisible() bool
	OnKeyboardChanged(fn func(visible bool)) CallbackHandle
	CapturePointer(pointerID int, node *Node)
	ReleasePointer(pointerID int)
	Animate(g *TweenGroup)
	Save()
	ToggleFullscreen()
}

var _ Host = (*Scene)(nil)
