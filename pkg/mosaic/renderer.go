package mosaic

import "github.com/lucasb-eyer/go-colorful"

// Renderer is the drawing surface a frame is replayed onto.
type Renderer interface {
	Clear(c colorful.Color)
	SetFillColor(c colorful.Color)
	BeginPolygon()
	Vertex(x, y float64)
	EndPolygon(closed bool)
}

// DrawFrame clears r and draws every shape of f as a closed polygon.
func DrawFrame(r Renderer, f Frame) {
	r.Clear(f.Background)
	for _, s := range f.Shapes {
		r.SetFillColor(s.Fill)
		r.BeginPolygon()
		for _, p := range s.Points {
			r.Vertex(p.X, p.Y)
		}
		r.EndPolygon(true)
	}
}

// ResizeNotifier is a source of canvas size changes an [Engine] can
// subscribe to.
type ResizeNotifier interface {
	OnResize(fn func(width, height float64))
}
