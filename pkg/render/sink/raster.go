package sink

import (
	"bytes"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

// Raster is a [mosaic.Renderer] backed by a gg drawing context.
type Raster struct {
	dc *gg.Context
}

// NewRaster returns a width x height pixel canvas. Frame coordinates are
// scaled by scale before drawing.
func NewRaster(width, height int, scale float64) *Raster {
	dc := gg.NewContext(width, height)
	if scale != 1 {
		dc.Scale(scale, scale)
	}
	return &Raster{dc: dc}
}

// Clear fills the whole canvas with c.
func (r *Raster) Clear(c colorful.Color) {
	r.dc.SetColor(c.Clamped())
	r.dc.Clear()
}

// SetFillColor sets the fill of subsequent polygons.
func (r *Raster) SetFillColor(c colorful.Color) { r.dc.SetColor(c.Clamped()) }

// BeginPolygon discards any previous path. The first Vertex then starts
// the new one.
func (r *Raster) BeginPolygon() { r.dc.ClearPath() }

// Vertex extends the current path.
func (r *Raster) Vertex(x, y float64) { r.dc.LineTo(x, y) }

// EndPolygon fills the path; open paths are stroked instead.
func (r *Raster) EndPolygon(closed bool) {
	if closed {
		r.dc.ClosePath()
		r.dc.Fill()
		return
	}
	r.dc.Stroke()
}

// Image returns the rendered image.
func (r *Raster) Image() image.Image { return r.dc.Image() }

var _ mosaic.Renderer = (*Raster)(nil)

// RenderImage rasterises f at its own pixel size times scale.
func RenderImage(f mosaic.Frame, scale float64) image.Image {
	w := max(1, int(math.Ceil(f.Width*scale)))
	h := max(1, int(math.Ceil(f.Height*scale)))
	r := NewRaster(w, h, scale)
	mosaic.DrawFrame(r, f)
	return r.Image()
}

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
	width int
}

// WithScale sets the PNG scale factor (default 1).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithWidth resamples the output to the given pixel width, keeping the
// aspect ratio. It takes precedence over [WithScale].
func WithWidth(w int) PNGOption {
	return func(r *pngRenderer) { r.width = w }
}

// RenderPNG renders f as PNG.
func RenderPNG(f mosaic.Frame, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 1
	}

	var img image.Image
	switch {
	case r.width > 0:
		img = RenderImage(f, 1)
		if r.width != img.Bounds().Dx() {
			img = imaging.Resize(img, r.width, 0, imaging.Lanczos)
		}
	default:
		img = RenderImage(f, r.scale)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
