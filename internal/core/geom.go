// Package core provides fundamental types and utilities shared by the engine
// and the platform layer. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Point is an integer cell coordinate. X grows rightward, Y grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Extent is a width/height pair in cells, describing a grid or a bounding box.
type Extent struct {
	Width, Height int
}

// Ext is shorthand for Extent{Width: w, Height: h}.
func Ext(w, h int) Extent {
	return Extent{Width: w, Height: h}
}

// Contains reports whether p lies inside an extent anchored at the origin.
func (e Extent) Contains(p Point) bool {
	return p.X >= 0 && p.X < e.Width && p.Y >= 0 && p.Y < e.Height
}

// Area returns the number of cells covered by the extent.
func (e Extent) Area() int {
	if e.Width <= 0 || e.Height <= 0 {
		return 0
	}
	return e.Width * e.Height
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt builds a rectangle from an origin point and an extent.
func RectAt(origin Point, size Extent) Rect {
	return Rect{X: origin.X, Y: origin.Y, W: size.Width, H: size.Height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
