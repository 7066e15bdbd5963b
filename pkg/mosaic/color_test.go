package mosaic

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/mosaic/pkg/palette"
)

func TestAssignColorsThreshold(t *testing.T) {
	for seed := range uint64(10) {
		rng := NewRand(seed)
		g := BuildGrid(20, 20, rng)
		p := Cluster(g, 12, 0.7, rng)
		AssignColors(p, palette.DesertNight, palette.Marble, 4, rng)

		for _, r := range p.Regions {
			if r.Size() > 4 {
				if !r.Accent || !palette.DesertNight.Contains(r.Color) {
					t.Fatalf("region of size %d should be accent, got %s", r.Size(), r.Color.Hex())
				}
			} else if r.Accent || !palette.Marble.Contains(r.Color) {
				t.Fatalf("region of size %d should be neutral, got %s", r.Size(), r.Color.Hex())
			}
		}
	}
}

func TestLerpColorEndpoints(t *testing.T) {
	a := colorful.Color{R: 0.1, G: 0.7, B: 0.3}
	b := colorful.Color{R: 0.9, G: 0.2, B: 0.55}

	if got := lerpColor(a, b, 0); got != a {
		t.Errorf("lerpColor(t=0) = %v, want %v", got, a)
	}
	if got := lerpColor(a, b, 1); got != b {
		t.Errorf("lerpColor(t=1) = %v, want %v", got, b)
	}
	mid := lerpColor(a, b, 0.5)
	if math.Abs(mid.R-0.5) > 1e-12 {
		t.Errorf("mid.R = %v, want 0.5", mid.R)
	}
}

func TestLerpColorLandsOnTarget(t *testing.T) {
	for i := range 50 {
		for j := range 50 {
			a := colorful.Color{R: float64(i) / 49, G: 0.1 * float64(j%10), B: 1 / float64(i+3)}
			b := colorful.Color{R: float64(j) / 49, G: 0.7, B: 1 / float64(j+7)}
			if got := lerpColor(a, b, 1); got != b {
				t.Fatalf("lerpColor(%v, %v, 1) = %v", a, b, got)
			}
		}
	}
}
