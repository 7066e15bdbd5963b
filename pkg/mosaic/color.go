package mosaic

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/mosaic/pkg/palette"
)

// AssignColors paints every region of p. Regions with more than threshold
// members get a uniform pick from accent; the rest get a uniform pick from
// neutral. Both palettes must be non-empty.
func AssignColors(p *Partition, accent, neutral palette.Palette, threshold int, rng *rand.Rand) {
	for i := range p.Regions {
		r := &p.Regions[i]
		if r.Size() > threshold {
			r.Color = accent.Pick(rng)
			r.Accent = true
		} else {
			r.Color = neutral.Pick(rng)
			r.Accent = false
		}
	}
}

// lerpColor blends a and b per RGB channel. It returns a exactly at t=0 and
// b exactly at t=1.
func lerpColor(a, b colorful.Color, t float64) colorful.Color {
	return colorful.Color{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
