package overlay

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	pressedScale  = 0.9
	pressDuration = 0.08
	fadeDuration  = 0.15
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Hand it to Host.Animate, which advances it every frame until Done. If the
// target node is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenScale animates node.ScaleX and node.ScaleY to the given values.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(node.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &node.ScaleX
	g.fields[1] = &node.ScaleY
	return g
}

// TweenAlpha animates node.Alpha to the target value.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Alpha), float32(to), duration, fn)
	g.fields[0] = &node.Alpha
	return g
}

// pressTween shrinks a pressed button slightly, or restores it on release.
func pressTween(node *Node, pressed bool) *TweenGroup {
	to := 1.0
	if pressed {
		to = pressedScale
	}
	return TweenScale(node, to, to, pressDuration, ease.OutQuad)
}

// fadeTween fades a node in or out.
func fadeTween(node *Node, visible bool) *TweenGroup {
	to := 0.0
	if visible {
		to = 1
	}
	return TweenAlpha(node, to, fadeDuration, ease.Linear)
}
