package sink

import (
	"bytes"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

// SVGOption configures SVG rendering.
type SVGOption func(*SVG)

// WithStroke outlines every polygon with the given colour and width.
func WithStroke(c colorful.Color, width float64) SVGOption {
	return func(s *SVG) { s.stroke, s.strokeWidth = c.Hex(), width }
}

// WithShapeIDs tags each polygon with id="cell-<n>".
func WithShapeIDs() SVGOption { return func(s *SVG) { s.ids = true } }

// SVG is a [mosaic.Renderer] that accumulates an SVG document.
type SVG struct {
	width, height float64
	stroke        string
	strokeWidth   float64
	ids           bool

	body   bytes.Buffer
	fill   string
	points []mosaic.Point
	count  int
}

// NewSVG returns an empty SVG canvas.
func NewSVG(width, height float64, opts ...SVGOption) *SVG {
	s := &SVG{width: width, height: height}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Clear discards everything drawn so far and paints the background.
func (s *SVG) Clear(c colorful.Color) {
	s.body.Reset()
	s.count = 0
	fmt.Fprintf(&s.body, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", c.Clamped().Hex())
}

// SetFillColor sets the fill of subsequent polygons.
func (s *SVG) SetFillColor(c colorful.Color) { s.fill = c.Clamped().Hex() }

// BeginPolygon starts a new polygon.
func (s *SVG) BeginPolygon() { s.points = s.points[:0] }

// Vertex appends a vertex to the current polygon.
func (s *SVG) Vertex(x, y float64) { s.points = append(s.points, mosaic.Point{X: x, Y: y}) }

// EndPolygon emits the current polygon; open paths become polylines.
func (s *SVG) EndPolygon(closed bool) {
	if len(s.points) == 0 {
		return
	}
	tag := "polygon"
	if !closed {
		tag = "polyline"
	}
	s.body.WriteString("  <" + tag)
	if s.ids {
		fmt.Fprintf(&s.body, ` id="cell-%d"`, s.count)
	}
	s.body.WriteString(` points="`)
	for i, p := range s.points {
		if i > 0 {
			s.body.WriteByte(' ')
		}
		fmt.Fprintf(&s.body, "%.2f,%.2f", p.X, p.Y)
	}
	fmt.Fprintf(&s.body, `" fill="%s"`, s.fill)
	if s.stroke != "" {
		fmt.Fprintf(&s.body, ` stroke="%s" stroke-width="%.2f"`, s.stroke, s.strokeWidth)
	}
	s.body.WriteString("/>\n")
	s.count++
}

// Bytes returns the complete SVG document.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.width, s.height, s.width, s.height)
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// RenderSVG renders one frame as an SVG document.
func RenderSVG(f mosaic.Frame, opts ...SVGOption) []byte {
	s := NewSVG(f.Width, f.Height, opts...)
	mosaic.DrawFrame(s, f)
	return s.Bytes()
}

var _ mosaic.Renderer = (*SVG)(nil)
