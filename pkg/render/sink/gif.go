package sink

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

// GIFOption configures animated GIF rendering.
type GIFOption func(*gifRenderer)

type gifRenderer struct {
	fps    float64
	width  int
	dither bool
}

// WithFPS sets the playback rate (default 25).
func WithFPS(fps float64) GIFOption { return func(r *gifRenderer) { r.fps = fps } }

// WithGIFWidth resamples every frame to the given pixel width.
func WithGIFWidth(w int) GIFOption { return func(r *gifRenderer) { r.width = w } }

// WithDither enables Floyd-Steinberg dithering when quantising frames.
func WithDither() GIFOption { return func(r *gifRenderer) { r.dither = true } }

// RenderGIF encodes frames as a looping animated GIF.
func RenderGIF(frames []mosaic.Frame, opts ...GIFOption) ([]byte, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("gif: no frames")
	}
	r := gifRenderer{fps: 25}
	for _, opt := range opts {
		opt(&r)
	}
	if r.fps <= 0 {
		r.fps = 25
	}
	delay := max(2, int(math.Round(100/r.fps)))

	pal := framePalette(frames)
	anim := &gif.GIF{LoopCount: 0}
	for _, f := range frames {
		img := RenderImage(f, 1)
		if r.width > 0 && r.width != img.Bounds().Dx() {
			img = imaging.Resize(img, r.width, 0, imaging.Lanczos)
		}
		anim.Image = append(anim.Image, quantize(img, pal, r.dither))
		anim.Delay = append(anim.Delay, delay)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		return nil, fmt.Errorf("gif: %w", err)
	}
	return buf.Bytes(), nil
}

// framePalette collects the distinct fills of the first and last frames
// (the two generations being blended) and pads with the web-safe palette
// for intermediate colours.
func framePalette(frames []mosaic.Frame) color.Palette {
	seen := make(map[color.RGBA]bool)
	var pal color.Palette
	add := func(c color.Color) {
		r, g, b, _ := c.RGBA()
		k := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff}
		if !seen[k] && len(pal) < 256 {
			seen[k] = true
			pal = append(pal, k)
		}
	}
	for _, f := range []mosaic.Frame{frames[0], frames[len(frames)-1]} {
		add(f.Background.Clamped())
		for _, s := range f.Shapes {
			add(s.Fill.Clamped())
		}
	}
	for _, c := range palette.WebSafe {
		add(c)
	}
	return pal
}

func quantize(img image.Image, pal color.Palette, dither bool) *image.Paletted {
	b := img.Bounds()
	dst := image.NewPaletted(b, pal)
	if dither {
		draw.FloydSteinberg.Draw(dst, b, img, b.Min)
	} else {
		draw.Draw(dst, b, img, b.Min, draw.Src)
	}
	return dst
}
