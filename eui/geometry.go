package eui

import "math"

type rect struct {
	X0, Y0, X1, Y1 float32
}

type point struct {
	X, Y float32
}

type Rect = rect

type Point = point

// NewRect builds a rect from a position and size.
func NewRect(x, y, w, h float32) Rect {
	return rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

func (r rect) Width() float32  { return r.X1 - r.X0 }
func (r rect) Height() float32 { return r.Y1 - r.Y0 }

// containsPoint checks whether the given point lies within the rectangle.
// The right and bottom edges are exclusive so adjacent rects never share a
// pixel.
func (r rect) containsPoint(p point) bool {
	return p.X >= r.X0 && p.Y >= r.Y0 && p.X < r.X1 && p.Y < r.Y1
}

// Contains reports whether (x, y) lies inside r.
func (r rect) Contains(x, y int) bool {
	return r.containsPoint(point{X: float32(x), Y: float32(y)})
}

// Local converts screen coordinates to coordinates relative to r's origin.
func (r rect) Local(x, y int) (int, int) {
	return x - int(math.Floor(float64(r.X0))), y - int(math.Floor(float64(r.Y0)))
}

func pointAdd(a, b point) point { return point{X: a.X + b.X, Y: a.Y + b.Y} }
func pointSub(a, b point) point { return point{X: a.X - b.X, Y: a.Y - b.Y} }

// unionRect expands a to encompass b and returns the result.
func unionRect(a, b rect) rect {
	if b.X0 < a.X0 {
		a.X0 = b.X0
	}
	if b.Y0 < a.Y0 {
		a.Y0 = b.Y0
	}
	if b.X1 > a.X1 {
		a.X1 = b.X1
	}
	if b.Y1 > a.Y1 {
		a.Y1 = b.Y1
	}
	return a
}

// Union is the exported form of unionRect.
func Union(a, b Rect) Rect { return unionRect(a, b) }

// Inset shrinks r by d on every side. A negative d grows it.
func (r rect) Inset(d float32) Rect {
	lo := pointAdd(point{X: r.X0, Y: r.Y0}, point{X: d, Y: d})
	hi := pointSub(point{X: r.X1, Y: r.Y1}, point{X: d, Y: d})
	return rect{X0: lo.X, Y0: lo.Y, X1: hi.X, Y1: hi.Y}
}
