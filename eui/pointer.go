package eui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerPosition returns the current pointer position in screen pixels.
// If a touch is active, the first touch is used; otherwise the mouse cursor
// position is returned.
func PointerPosition() (int, int) {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 0 {
		return ebiten.TouchPosition(ids[0])
	}
	return ebiten.CursorPosition()
}

// pointerJustPressed reports whether the primary pointer was just pressed.
func pointerJustPressed() bool {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 1 {
		return false
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0)
}

// pointerPressed reports whether the primary pointer is currently pressed.
func pointerPressed() bool {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 1 {
		return false
	}
	if len(ids) == 1 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButton0)
}

// PointerFrame is one tick of pointer state.
type PointerFrame struct {
	X, Y         int
	Down         bool
	JustPressed  bool
	JustReleased bool
	// Moved is set when the position differs from the previous frame.
	Moved bool
}

// PointerTracker turns polled pointer state into press/move/release edges and
// fans window-level releases out to subscribers. A release is reported no
// matter where the pointer is, so a drag that leaves a widget still ends.
type PointerTracker struct {
	down     bool
	last     point
	started  bool
	nextID   int
	releases map[int]func()
	order    []int
}

// NewPointerTracker returns a tracker with no subscribers.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{releases: map[int]func(){}}
}

// OnRelease registers fn to run on every pointer release. The returned cancel
// func removes it; calling cancel more than once is harmless.
func (t *PointerTracker) OnRelease(fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	if t.releases == nil {
		t.releases = map[int]func(){}
	}
	id := t.nextID
	t.nextID++
	t.releases[id] = fn
	t.order = append(t.order, id)
	return func() {
		if _, ok := t.releases[id]; !ok {
			return
		}
		delete(t.releases, id)
		for i, v := range t.order {
			if v == id {
				t.order = append(t.order[:i], t.order[i+1:]...)
				break
			}
		}
	}
}

// Subscribers reports how many release listeners are registered.
func (t *PointerTracker) Subscribers() int { return len(t.releases) }

// Poll reads the Ebiten pointer state for this tick.
func (t *PointerTracker) Poll() PointerFrame {
	x, y := PointerPosition()
	pressed := pointerPressed()
	if pointerJustPressed() && t.down {
		// A press and release landed between two ticks.
		t.Step(false, x, y)
	}
	return t.Step(pressed, x, y)
}

// Step advances the tracker with an observed pointer state. Release
// listeners run before Step returns.
func (t *PointerTracker) Step(pressed bool, x, y int) PointerFrame {
	pos := point{X: float32(x), Y: float32(y)}
	f := PointerFrame{X: x, Y: y, Down: pressed}
	if t.started {
		d := pointSub(pos, t.last)
		f.Moved = d.X != 0 || d.Y != 0
	}
	f.JustPressed = pressed && !t.down
	f.JustReleased = !pressed && t.down
	t.down = pressed
	t.last = pos
	t.started = true

	if f.JustReleased {
		// Listeners may cancel themselves; walk a copy.
		ids := append([]int(nil), t.order...)
		for _, id := range ids {
			if fn, ok := t.releases[id]; ok {
				fn()
			}
		}
	}
	return f
}
