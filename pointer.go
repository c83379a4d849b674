package overlay

// PointerSource identifies the device a pointer event came from.
type PointerSource uint8

const (
	SourceMouse PointerSource = iota // the mouse cursor (pointer 0)
	SourceTouch                      // a touch contact (pointers 1-9)
)

// InputMode is the platform's pointer capability, detected once at startup.
type InputMode uint8

const (
	// InputModeMouse is a desktop with a mouse only.
	InputModeMouse InputMode = iota
	// InputModeTouch is a platform with touches and an emulated mouse that
	// must both be listened to.
	InputModeTouch
	// InputModePointer is a touch platform with unified pointer events;
	// the emulated mouse is suppressed.
	InputModePointer
)

func (m InputMode) String() string {
	switch m {
	case InputModeTouch:
		return "touch"
	case InputModePointer:
		return "pointer"
	default:
		return "mouse"
	}
}

// DetectInputMode maps a GOOS value to the platform input mode. Mobile
// targets deliver unified pointer events; the browser target may see both
// touches and a mouse.
func DetectInputMode(goos string) InputMode {
	switch goos {
	case "android", "ios":
		return InputModePointer
	case "js":
		return InputModeTouch
	default:
		return InputModeMouse
	}
}

// EventGroups are the canonical event sets a binding listens to.
type EventGroups struct {
	Starters []EventType
	Changers []EventType
	Enders   []EventType
	Leavers  []EventType
	// Prevents lists pointer sources whose events are swallowed before
	// dispatch.
	Prevents []PointerSource
}

// Groups returns the canonical event groups for the mode.
func (m InputMode) Groups() EventGroups {
	switch m {
	case InputModePointer:
		return EventGroups{
			Starters: []EventType{EventPointerDown},
			Changers: []EventType{EventPointerMove},
			Enders:   []EventType{EventPointerUp},
			Prevents: []PointerSource{SourceMouse},
		}
	case InputModeTouch:
		return EventGroups{
			Starters: []EventType{EventPointerDown},
			Changers: []EventType{EventPointerMove},
			Enders:   []EventType{EventPointerUp},
		}
	default:
		return EventGroups{
			Starters: []EventType{EventPointerDown},
			Changers: []EventType{EventPointerMove},
			Enders:   []EventType{EventPointerUp},
			Leavers:  []EventType{EventPointerLeave},
		}
	}
}

// Prevented reports whether events from src are swallowed.
func (g EventGroups) Prevented(src PointerSource) bool {
	for _, p := range g.Prevents {
		if p == src {
			return true
		}
	}
	return false
}

// PointerState is a pointer event reduced to element-local coordinates.
type PointerState struct {
	X, Y float64
	// Button is the logical button: 0 for the primary mouse button, 1 for
	// any other. Only meaningful when HasButton is set (mouse events).
	Button    int
	HasButton bool
}

// GetPointerState maps a pointer event of any source to coordinates local to
// el. Touch events carry no button.
func GetPointerState(ctx PointerContext, el *Node) PointerState {
	x, y := ctx.GlobalX, ctx.GlobalY
	if el != nil {
		x, y = el.WorldToLocal(x, y)
	}
	st := PointerState{X: x, Y: y}
	if ctx.Source == SourceMouse {
		st.HasButton = true
		if ctx.Button != MouseButtonLeft {
			st.Button = 1
		}
	}
	return st
}
