package world

import "math"

// Point addresses a tile by column and row.
type Point struct {
	Col int
	Row int
}

// Add returns the point offset by the given column and row deltas
func (p Point) Add(dCol, dRow int) Point {
	return Point{Col: p.Col + dCol, Row: p.Row + dRow}
}

// Step returns the adjacent point in the given direction
func (p Point) Step(dir Direction) Point {
	dCol, dRow := dir.Delta()
	return p.Add(dCol, dRow)
}

// ManhattanDistance returns |dCol| + |dRow| between two points.
func ManhattanDistance(a, b Point) int {
	return absInt(a.Col-b.Col) + absInt(a.Row-b.Row)
}

// ChebyshevDistance returns the chessboard distance max(|dCol|, |dRow|).
func ChebyshevDistance(a, b Point) int {
	dc := absInt(a.Col - b.Col)
	dr := absInt(a.Row - b.Row)
	if dc > dr {
		return dc
	}
	return dr
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Vec2 is a position in continuous world units.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns the component-wise sum
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
