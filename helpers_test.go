package overlay

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakeInput is an inputSource with no device activity.
type fakeInput struct {
	x, y     int
	left     bool
	pressed  []ebiten.Key
	released []ebiten.Key
}

func (f *fakeInput) CursorPosition() (int, int)              { return f.x, f.y }
func (f *fakeInput) MouseButtons() (bool, bool, bool)        { return f.left, false, false }
func (f *fakeInput) TouchPosition(ebiten.TouchID) (int, int) { return 0, 0 }

func (f *fakeInput) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID { return ids }

func (f *fakeInput) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	keys = append(keys, f.pressed...)
	f.pressed = nil
	return keys
}

func (f *fakeInput) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	keys = append(keys, f.released...)
	f.released = nil
	return keys
}

// newTestScene returns a mouse-mode scene of the given size driven by a
// fakeInput.
func newTestScene(w, h float64) (*Scene, *fakeInput) {
	s := NewScene()
	in := &fakeInput{}
	s.input = in
	s.SetInputMode(InputModeMouse)
	s.SetFullscreen = nil
	s.IsFullscreen = nil
	s.Resize(w, h)
	return s, in
}

// frame runs one update with a fixed step.
func frame(s *Scene) {
	s.update(1.0 / 60)
}

// drain runs frames until the inject queue is empty.
func drain(s *Scene) {
	for i := 0; i < 100 && len(s.injectQueue) > 0; i++ {
		frame(s)
	}
}

// recordingCI is a CommandInterface that records every call.
type recordingCI struct {
	w, h  int
	calls []string
}

func newRecordingCI() *recordingCI { return &recordingCI{w: 320, h: 200} }

func (r *recordingCI) SendKeyEvent(code int, pressed bool) {
	r.calls = append(r.calls, fmt.Sprintf("key %d %t", code, pressed))
}

func (r *recordingCI) SendMouseMotion(x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("motion %.2f %.2f", x, y))
}

func (r *recordingCI) SendMouseButton(button int, pressed bool) {
	r.calls = append(r.calls, fmt.Sprintf("button %d %t", button, pressed))
}

func (r *recordingCI) SendMouseSync() { r.calls = append(r.calls, "sync") }
func (r *recordingCI) Width() int     { return r.w }
func (r *recordingCI) Height() int    { return r.h }

func (r *recordingCI) reset() { r.calls = nil }

// filter returns the recorded calls that start with prefix.
func (r *recordingCI) filter(prefix string) []string {
	var out []string
	for _, c := range r.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			out = append(out, c)
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
