package overlay

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenScaleReachesTarget(t *testing.T) {
	node := NewContainer("scale")

	g := TweenScale(node, 2.0, 3.0, 0.5, ease.Linear)

	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.ScaleX-2.0) > 0.01 {
		t.Errorf("ScaleX = %f, want ~2.0", node.ScaleX)
	}
	if math.Abs(node.ScaleY-3.0) > 0.01 {
		t.Errorf("ScaleY = %f, want ~3.0", node.ScaleY)
	}
}

func TestTweenAlphaInterpolates(t *testing.T) {
	node := NewContainer("alpha")
	node.Alpha = 1.0

	tw := TweenAlpha(node, 0.0, 1.0, ease.Linear)

	// Halfway through.
	tw.Update(0.5)
	if tw.Done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(node.Alpha-0.5) > 0.05 {
		t.Errorf("Alpha = %f, want ~0.5 at halfway", node.Alpha)
	}

	// Finish.
	tw.Update(0.5)
	if !tw.Done {
		t.Fatal("should be done after full duration")
	}
	if math.Abs(node.Alpha-0.0) > 0.01 {
		t.Errorf("Alpha = %f, want ~0.0", node.Alpha)
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	node := NewContainer("done")
	g := TweenScale(node, 2, 2, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}

	// Partway through, not done.
	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}

	// Complete.
	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done is a no-op.
	g.Update(0.1)
	if !g.Done {
		t.Fatal("should remain Done")
	}
}

func TestTweenGroupMarksDirty(t *testing.T) {
	node := NewContainer("dirty")

	// Clear the dirty flag first.
	node.transformDirty = false

	g := TweenScale(node, 2, 2, 1.0, ease.Linear)
	g.Update(0.1)

	if !node.transformDirty {
		t.Fatal("expected node to be marked dirty after TweenGroup update")
	}
}

func TestTweenGroupDisposedNode(t *testing.T) {
	node := NewContainer("disposed")
	node.Alpha = 0.5

	g := TweenAlpha(node, 1, 1.0, ease.Linear)

	// Dispose the node before tweening.
	node.Dispose()

	g.Update(0.1)

	if !g.Done {
		t.Fatal("expected Done after disposed node detected")
	}
	if node.Alpha != 0.5 {
		t.Errorf("Alpha changed to %f on disposed node", node.Alpha)
	}
}

func TestTweenGroupDisposedMidAnimation(t *testing.T) {
	node := NewContainer("mid-dispose")

	g := TweenScale(node, 0.5, 0.5, 1.0, ease.Linear)

	// Run a few frames.
	g.Update(0.1)
	g.Update(0.1)
	if g.Done {
		t.Fatal("should not be Done yet")
	}

	// Dispose mid-animation.
	node.Dispose()
	savedX := node.ScaleX
	savedY := node.ScaleY

	g.Update(0.1)
	if !g.Done {
		t.Fatal("expected Done after node disposed mid-animation")
	}
	if node.ScaleX != savedX || node.ScaleY != savedY {
		t.Error("node fields should not change after disposal")
	}
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	// Spot-check: linear vs OutCubic at the midpoint should differ.
	nodeL := NewContainer("linear")
	nodeC := NewContainer("cubic")

	gL := TweenScale(nodeL, 100, 0, 1.0, ease.Linear)
	gC := TweenScale(nodeC, 100, 0, 1.0, ease.OutCubic)

	// Advance to midpoint.
	gL.Update(0.5)
	gC.Update(0.5)

	// OutCubic should be ahead of linear at midpoint.
	if math.Abs(nodeL.ScaleX-nodeC.ScaleX) < 1.0 {
		t.Errorf("easing curves should produce different values at midpoint: linear=%f cubic=%f", nodeL.ScaleX, nodeC.ScaleX)
	}
}

func TestTweenGroupUpdateZeroAlloc(t *testing.T) {
	node := NewContainer("alloc")
	g := TweenScale(node, 2, 2, 1.0, ease.Linear)

	// Warm up; the first call might differ.
	g.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("TweenGroup.Update allocated %f times per run, want 0", result)
	}
}

func TestPressTweenRoundTrip(t *testing.T) {
	btn := NewButton("key", 40)

	down := pressTween(btn, true)
	down.Update(pressDuration)
	if !down.Done {
		t.Fatal("press tween should finish within its duration")
	}
	if math.Abs(btn.ScaleX-pressedScale) > 0.01 {
		t.Errorf("ScaleX = %f, want ~%f", btn.ScaleX, pressedScale)
	}

	up := pressTween(btn, false)
	up.Update(pressDuration)
	if math.Abs(btn.ScaleX-1) > 0.01 {
		t.Errorf("ScaleX = %f, want ~1 after release", btn.ScaleX)
	}
}

func TestSceneAnimateDropsFinishedGroups(t *testing.T) {
	s := NewScene()
	node := NewContainer("fade")
	s.Root().AddChild(node)

	s.Animate(fadeTween(node, false))
	s.Animate(nil)
	if len(s.tweens) != 1 {
		t.Fatalf("tweens = %d, want 1", len(s.tweens))
	}

	s.advanceTweens(fadeDuration)
	if len(s.tweens) != 0 {
		t.Errorf("tweens = %d after completion, want 0", len(s.tweens))
	}
	if node.Alpha > 0.01 {
		t.Errorf("Alpha = %f, want ~0", node.Alpha)
	}
}
