package mosaic

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Point is a canvas position in pixels.
type Point struct {
	X, Y float64
}

func lerpPoint(a, b Point, t float64) Point {
	return Point{X: lerp(a.X, b.X, t), Y: lerp(a.Y, b.Y, t)}
}

// Shape is one filled polygon of a frame. Cell is the index of the grid
// cell it was drawn for.
type Shape struct {
	Cell   int
	Fill   colorful.Color
	Points []Point
}

// Area returns the absolute polygon area (shoelace formula).
func (s Shape) Area() float64 {
	var sum float64
	for i, p := range s.Points {
		q := s.Points[(i+1)%len(s.Points)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

// Frame is everything a renderer needs to draw one tick.
type Frame struct {
	Width, Height float64
	Background    colorful.Color
	// Progress is the raw transition progress and Eased the blend factor
	// that produced the shapes.
	Progress, Eased float64
	Shapes          []Shape
}

// Background is the colour frames are cleared to (grey 20).
var Background = colorful.Color{R: 20.0 / 255, G: 20.0 / 255, B: 20.0 / 255}

// cellGeometry returns the corner positions (in [Corner] order) and centre
// of the cell whose top-left corner is at origin.
func cellGeometry(origin Point, size float64) (corners [NumCorners]Point, center Point) {
	x, y := origin.X, origin.Y
	corners = [NumCorners]Point{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x + size, Y: y + size},
		{X: x, Y: y + size},
	}
	center = Point{X: x + size/2, Y: y + size/2}
	return corners, center
}

// CellOrigin returns the top-left corner of the cell at index i in a grid
// with the given column count.
func CellOrigin(i, cols int, size float64) Point {
	return Point{X: float64(i%cols) * size, Y: float64(i/cols) * size}
}

// CellCenter returns the centre of the cell at index i.
func CellCenter(i, cols int, size float64) Point {
	o := CellOrigin(i, cols, size)
	return Point{X: o.X + size/2, Y: o.Y + size/2}
}

// StaticShape returns the polygon of a cell that is not morphing: four
// corners for a square, three for a triangle.
func StaticShape(state CellState, origin Point, size float64) []Point {
	corners, _ := cellGeometry(origin, size)
	if state.IsSquare {
		return corners[:]
	}
	pts := make([]Point, 0, NumCorners-1)
	for i, c := range corners {
		if Corner(i) != state.SkipCorner {
			pts = append(pts, c)
		}
	}
	return pts
}
