package eui

import "testing"

func TestPointerTrackerEdges(t *testing.T) {
	tr := NewPointerTracker()

	f := tr.Step(false, 5, 5)
	if f.JustPressed || f.JustReleased || f.Moved {
		t.Fatalf("first idle frame has edges: %+v", f)
	}
	f = tr.Step(true, 5, 5)
	if !f.JustPressed || !f.Down || f.Moved {
		t.Fatalf("press frame wrong: %+v", f)
	}
	f = tr.Step(true, 7, 5)
	if f.JustPressed || !f.Moved || !f.Down {
		t.Fatalf("drag frame wrong: %+v", f)
	}
	f = tr.Step(false, 7, 5)
	if !f.JustReleased || f.Down {
		t.Fatalf("release frame wrong: %+v", f)
	}
	f = tr.Step(false, 7, 5)
	if f.JustReleased {
		t.Fatalf("release reported twice")
	}
}

func TestPointerTrackerReleaseAnywhere(t *testing.T) {
	tr := NewPointerTracker()
	calls := 0
	cancel := tr.OnRelease(func() { calls++ })

	tr.Step(true, 10, 10)
	// The release happens far outside any widget.
	tr.Step(false, -500, 9000)
	if calls != 1 {
		t.Fatalf("expected 1 release callback, got %d", calls)
	}

	cancel()
	cancel()
	if tr.Subscribers() != 0 {
		t.Fatalf("subscriber not removed")
	}
	tr.Step(true, 0, 0)
	tr.Step(false, 0, 0)
	if calls != 1 {
		t.Fatalf("cancelled listener still called")
	}
}

func TestPointerTrackerSelfCancel(t *testing.T) {
	tr := NewPointerTracker()
	var order []string
	var cancelA func()
	cancelA = tr.OnRelease(func() {
		order = append(order, "a")
		cancelA()
	})
	tr.OnRelease(func() { order = append(order, "b") })

	tr.Step(true, 0, 0)
	tr.Step(false, 0, 0)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order %v", order)
	}
	if tr.Subscribers() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", tr.Subscribers())
	}
}

func TestPointerTrackerNilListener(t *testing.T) {
	var tr PointerTracker
	cancel := tr.OnRelease(nil)
	cancel()
	if tr.Subscribers() != 0 {
		t.Fatalf("nil listener registered")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 50, 250)
	if !r.Contains(10, 20) || !r.Contains(59, 269) {
		t.Fatalf("edges should be inside")
	}
	if r.Contains(60, 100) || r.Contains(30, 270) || r.Contains(9, 30) {
		t.Fatalf("outside points reported inside")
	}
	x, y := r.Local(15, 232)
	if x != 5 || y != 212 {
		t.Fatalf("local = %d,%d", x, y)
	}
}
