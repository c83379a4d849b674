package overlay

import (
	"strconv"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		x, y float64
		want bool
	}{
		{50, 40, true},
		{10, 20, true},
		{110, 70, true},
		{9, 20, false},
		{111, 70, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}
	tests := []struct {
		x, y float64
		want bool
	}{
		{50, 50, true},
		{75, 50, true},
		{76, 50, false},
		{70, 70, false},
	}
	for _, tt := range tests {
		if got := c.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNodeContainsLocal_ContainerNoHitShape(t *testing.T) {
	n := NewContainer("c")
	n.SetSize(100, 100)
	if nodeContainsLocal(n, 50, 50) {
		t.Error("container without HitShape should not be hit-testable")
	}
}

// --- Hit test traversal ---

func TestHitTest_ControlAboveOverlay(t *testing.T) {
	s, _ := newTestScene(400, 300)
	b := NewButton("b", 40)
	b.SetPosition(100, 100)
	s.Overlay().AddChild(b)

	if got := s.hitTest(100, 100); got != b {
		t.Errorf("hitTest(100, 100) = %v, want button", got)
	}
	if got := s.hitTest(300, 200); got != s.Overlay() {
		t.Errorf("hitTest(300, 200) = %v, want overlay", got)
	}
	if got := s.hitTest(500, 500); got != nil {
		t.Errorf("hitTest outside = %v, want nil", got)
	}
}

func TestHitTest_SkipsInvisibleAndNonInteractable(t *testing.T) {
	s, _ := newTestScene(400, 300)
	a := NewButton("a", 40)
	a.SetPosition(100, 100)
	b := NewButton("b", 40)
	b.SetPosition(100, 100)
	b.Visible = false
	c := NewButton("c", 40)
	c.SetPosition(100, 100)
	c.Interactable = false
	s.Overlay().AddChild(a)
	s.Overlay().AddChild(b)
	s.Overlay().AddChild(c)

	if got := s.hitTest(100, 100); got != a {
		t.Errorf("hitTest = %v, want a", got)
	}
}

func TestHitTest_RespectsZIndex(t *testing.T) {
	s, _ := newTestScene(400, 300)
	a := NewButton("a", 40)
	a.SetPosition(100, 100)
	b := NewButton("b", 40)
	b.SetPosition(100, 100)
	s.Overlay().AddChild(a)
	s.Overlay().AddChild(b)
	a.SetZIndex(10)

	if got := s.hitTest(100, 100); got != a {
		t.Errorf("hitTest = %v, want a (higher ZIndex)", got)
	}
}

// --- Dispatch ---

func TestCallbackOrder_SceneThenNode(t *testing.T) {
	s, _ := newTestScene(400, 300)
	b := NewButton("b", 40)
	b.SetPosition(100, 100)
	s.Overlay().AddChild(b)

	var order []string
	s.On(EventPointerDown, func(PointerContext) { order = append(order, "scene") })
	b.OnPointerDown = func(PointerContext) { order = append(order, "node") }

	s.processPointer(0, 100, 100, true, MouseButtonLeft, SourceMouse)
	if !equalStrings(order, []string{"scene", "node"}) {
		t.Errorf("order = %v, want [scene node]", order)
	}
}

func TestCallbackHandle_Remove(t *testing.T) {
	s, _ := newTestScene(400, 300)
	count := 0
	h := s.On(EventPointerDown, func(PointerContext) { count++ })

	s.processPointer(0, 10, 10, true, MouseButtonLeft, SourceMouse)
	s.processPointer(0, 10, 10, false, MouseButtonLeft, SourceMouse)
	h.Remove()
	h.Remove()
	s.processPointer(0, 10, 10, true, MouseButtonLeft, SourceMouse)

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	var zero CallbackHandle
	zero.Remove()
}

func TestRemoveDuringDispatch(t *testing.T) {
	s, _ := newTestScene(400, 300)
	var calls []string
	var h CallbackHandle
	h = s.On(EventPointerDown, func(PointerContext) {
		calls = append(calls, "first")
		h.Remove()
	})
	s.On(EventPointerDown, func(PointerContext) { calls = append(calls, "second") })

	s.processPointer(0, 10, 10, true, MouseButtonLeft, SourceMouse)
	if !equalStrings(calls, []string{"first", "second"}) {
		t.Errorf("calls = %v, want [first second]", calls)
	}
}

// --- Pointer routing ---

func TestPressTargetKeepsPointer(t *testing.T) {
	s, _ := newTestScene(400, 300)
	b := NewButton("b", 40)
	b.SetPosition(100, 100)
	s.Overlay().AddChild(b)

	var moves, ups []*Node
	s.On(EventPointerMove, func(ctx PointerContext) { moves = append(moves, ctx.Node) })
	s.On(EventPointerUp, func(ctx PointerContext) { ups = append(ups, ctx.Node) })

	s.processPointer(0, 100, 100, true, MouseButtonLeft, SourceMouse)
	s.processPointer(0, 300, 200, true, MouseButtonLeft, SourceMouse)
	s.processPointer(0, 300, 200, false, MouseButtonLeft, SourceMouse)

	if len(moves) != 1 || moves[0] != b {
		t.Errorf("moves = %v, want [button]", moves)
	}
	if len(ups) != 1 || ups[0] != b {
		t.Errorf("ups = %v, want [button]", ups)
	}
}

func TestPointerCapture(t *testing.T) {
	s, _ := newTestScene(400, 300)
	a := NewButton("a", 40)
	a.SetPosition(50, 50)
	b := NewButton("b", 40)
	b.SetPosition(250, 50)
	s.Overlay().AddChild(a)
	s.Overlay().AddChild(b)

	s.CapturePointer(0, b)
	var got *Node
	s.On(EventPointerDown, func(ctx PointerContext) { got = ctx.Node })
	s.processPointer(0, 50, 50, true, MouseButtonLeft, SourceMouse)
	if got != b {
		t.Errorf("pointer down target = %v, want captured b", got)
	}

	// Release of the pressed pointer drops the capture.
	s.processPointer(0, 50, 50, false, MouseButtonLeft, SourceMouse)
	if s.captured[0] != nil {
		t.Error("capture should be released with the pointer")
	}
}

func TestClickRequiresSameNode(t *testing.T) {
	s, _ := newTestScene(400, 300)
	b := NewButton("b", 40)
	b.SetPosition(100, 100)
	s.Overlay().AddChild(b)
	clicks := 0
	b.OnClick = func(ClickContext) { clicks++ }

	s.processPointer(0, 100, 100, true, MouseButtonLeft, SourceMouse)
	s.processPointer(0, 100, 100, false, MouseButtonLeft, SourceMouse)
	s.processPointer(0, 100, 100, true, MouseButtonLeft, SourceMouse)
	s.processPointer(0, 300, 200, false, MouseButtonLeft, SourceMouse)

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestEnterLeave(t *testing.T) {
	s, _ := newTestScene(400, 300)
	b := NewButton("b", 40)
	b.SetPosition(100, 100)
	s.Overlay().AddChild(b)
	var events []string
	b.OnPointerEnter = func(PointerContext) { events = append(events, "enter") }
	b.OnPointerLeave = func(PointerContext) { events = append(events, "leave") }

	s.processPointer(0, 100, 100, false, MouseButtonLeft, SourceMouse)
	s.processPointer(0, 300, 200, false, MouseButtonLeft, SourceMouse)

	if !equalStrings(events, []string{"enter", "leave"}) {
		t.Errorf("events = %v, want [enter leave]", events)
	}
}

// --- Keys ---

func TestProcessKeysMapsCodes(t *testing.T) {
	s, in := newTestScene(400, 300)
	var got []string
	s.OnKey(KeyDown, func(code int) { got = append(got, "down "+strconv.Itoa(code)) })
	s.OnKey(KeyUp, func(code int) { got = append(got, "up "+strconv.Itoa(code)) })

	in.pressed = []ebiten.Key{ebiten.KeyA}
	in.released = []ebiten.Key{ebiten.KeyEnter}
	frame(s)

	want := []string{"down " + strconv.Itoa(KBDA), "up " + strconv.Itoa(KBDEnter)}
	if !equalStrings(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

// --- Input modes ---

func TestDetectInputMode(t *testing.T) {
	tests := []struct {
		goos string
		want InputMode
	}{
		{"linux", InputModeMouse},
		{"windows", InputModeMouse},
		{"js", InputModeTouch},
		{"android", InputModePointer},
		{"ios", InputModePointer},
	}
	for _, tt := range tests {
		if got := DetectInputMode(tt.goos); got != tt.want {
			t.Errorf("DetectInputMode(%q) = %v, want %v", tt.goos, got, tt.want)
		}
	}
}

func TestPointerModePreventsMouse(t *testing.T) {
	g := InputModePointer.Groups()
	if !g.Prevented(SourceMouse) || g.Prevented(SourceTouch) {
		t.Errorf("pointer mode prevents = %v, want mouse only", g.Prevents)
	}
	if len(InputModeMouse.Groups().Leavers) == 0 {
		t.Error("mouse mode should listen to leave events")
	}
}

func TestGetPointerState(t *testing.T) {
	s, _ := newTestScene(400, 300)
	el := s.Overlay()
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	st := GetPointerState(PointerContext{GlobalX: 10, GlobalY: 20, Button: MouseButtonRight, Source: SourceMouse}, el)
	if st.X != 10 || st.Y != 20 || !st.HasButton || st.Button != 1 {
		t.Errorf("mouse state = %+v, want (10, 20) button 1", st)
	}
	st = GetPointerState(PointerContext{GlobalX: 5, GlobalY: 6, Source: SourceTouch}, el)
	if st.HasButton {
		t.Errorf("touch state = %+v, want no button", st)
	}
}
