package overlay

import "testing"

// --- Constructor defaults ---

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if !n.transformDirty {
		t.Error("transformDirty should be true")
	}
}

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
}

func TestNewButtonDefaults(t *testing.T) {
	n := NewButton("btn", 40)
	assertNodeDefaults(t, n, "btn", NodeTypeButton)
	if !n.Interactable {
		t.Error("button should be interactable")
	}
	if n.Width != 40 || n.Height != 40 {
		t.Errorf("size = %vx%v, want 40x40", n.Width, n.Height)
	}
	if n.PivotX != 20 || n.PivotY != 20 {
		t.Errorf("pivot = (%v, %v), want (20, 20)", n.PivotX, n.PivotY)
	}
	if n.Color != buttonColor {
		t.Errorf("Color = %v, want %v", n.Color, buttonColor)
	}
}

func TestNewStickHitCircle(t *testing.T) {
	n := NewStick("stick", 40)
	assertNodeDefaults(t, n, "stick", NodeTypeStick)
	// The corners of the box are outside the circle.
	if nodeContainsLocal(n, 1, 1) {
		t.Error("corner should miss the stick")
	}
	if !nodeContainsLocal(n, 20, 20) {
		t.Error("center should hit the stick")
	}
}

func TestNewPanelNotInteractable(t *testing.T) {
	n := NewPanel("panel", 10, 10)
	assertNodeDefaults(t, n, "panel", NodeTypePanel)
	if n.Interactable {
		t.Error("panel should not be interactable")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewButton("c", 1)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- Classes ---

func TestClasses(t *testing.T) {
	n := NewButton("b", 10)
	n.AddClass(classPressed)
	n.AddClass(classPressed)
	if !n.HasClass(classPressed) {
		t.Fatal("HasClass(pressed) = false, want true")
	}
	n.SetClass(classHighlight, true)
	if len(n.classes) != 2 {
		t.Errorf("classes = %v, want 2 entries", n.classes)
	}
	n.RemoveClass(classPressed)
	n.SetClass(classHighlight, false)
	if n.HasClass(classPressed) || n.HasClass(classHighlight) {
		t.Errorf("classes = %v, want none", n.classes)
	}
	n.RemoveClass("missing")
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 || child.Parent != p2 {
		t.Error("child should belong to p2")
	}
}

func TestAddChildPanics(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)
	disposed := NewContainer("disposed")
	disposed.Dispose()

	tests := []struct {
		name string
		fn   func()
	}{
		{"cycle", func() { grandchild.AddChild(parent) }},
		{"self", func() { parent.AddChild(parent) }},
		{"nil", func() { parent.AddChild(nil) }},
		{"disposed", func() { parent.AddChild(disposed) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("expected panic, got none")
				}
			}()
			tt.fn()
		})
	}
}

// --- Removal ---

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	parent.RemoveChild(child)

	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if child.Parent != nil {
		t.Error("child.Parent should be nil")
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")
	p1.AddChild(child)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for wrong parent, got none")
		}
	}()
	p2.RemoveChild(child)
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewContainer("orphan")
	n.RemoveFromParent()
	if n.Parent != nil {
		t.Error("Parent should remain nil")
	}
}

func TestRemoveChildren(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.RemoveChildren()

	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if a.Parent != nil || b.Parent != nil {
		t.Error("detached children should have nil Parent")
	}
}

// --- ZIndex ---

func TestSortedByZIndex(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)
	a.SetZIndex(2)

	got := parent.sorted()
	want := []*Node{b, c, a}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted()[%d] = %s, want %s", i, got[i].Name, want[i].Name)
		}
	}
	if parent.ChildAt(0) != a {
		t.Error("sorting must not reorder Children()")
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	root := NewContainer("root")
	parent := NewContainer("parent")
	child := NewButton("child", 10)
	root.AddChild(parent)
	parent.AddChild(child)
	child.OnPointerDown = func(PointerContext) {}

	parent.Dispose()

	if !parent.IsDisposed() || !child.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if parent.ID != 0 || child.ID != 0 {
		t.Error("disposed nodes should have ID = 0")
	}
	if child.OnPointerDown != nil {
		t.Error("callbacks should be cleared")
	}
	if root.NumChildren() != 0 {
		t.Error("root should have 0 children after dispose")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewContainer("n")
	n.Dispose()
	n.Dispose()
	if !n.IsDisposed() {
		t.Error("should still be disposed")
	}
}

func TestDirtyPropagationOnAddChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	child.AddChild(grandchild)
	child.transformDirty = false
	grandchild.transformDirty = false

	parent.AddChild(child)

	if !child.transformDirty || !grandchild.transformDirty {
		t.Error("subtree should be dirty after AddChild")
	}
}
