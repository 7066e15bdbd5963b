package palette

import (
	"math/rand/v2"

	"github.com/matzehuels/mosaic/pkg/errors"
)

// Rotation policy names accepted by [NewRotator].
const (
	RotationSequential = "sequential"
	RotationRandom     = "random"
)

// Rotator owns the "current accent palette" and decides which palette comes
// next when the engine asks for a change. Rotators draw randomness only from
// the rng they are handed so generation stays reproducible.
type Rotator interface {
	// Current returns the active accent palette.
	Current() Palette
	// Advance selects a new active palette and returns it.
	Advance(rng *rand.Rand) Palette
}

// NewRotator builds a rotator for the named policy. The palettes slice must
// be non-empty and every palette must validate.
func NewRotator(policy string, palettes []Palette, rng *rand.Rand) (Rotator, error) {
	if len(palettes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidPalette, "no accent palettes configured")
	}
	for _, p := range palettes {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	switch policy {
	case RotationSequential, "":
		return &Sequential{palettes: palettes}, nil
	case RotationRandom:
		return &Random{palettes: palettes, current: rng.IntN(len(palettes))}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidPalette,
			"invalid rotation: %q (must be one of: sequential, random)", policy)
	}
}

// Sequential cycles through palettes in order, wrapping at the end.
type Sequential struct {
	palettes []Palette
	index    int
}

// Current implements [Rotator].
func (s *Sequential) Current() Palette { return s.palettes[s.index] }

// Advance implements [Rotator]. The rng is unused.
func (s *Sequential) Advance(*rand.Rand) Palette {
	s.index = (s.index + 1) % len(s.palettes)
	return s.palettes[s.index]
}

// Random picks palettes uniformly, possibly repeating the current one.
type Random struct {
	palettes []Palette
	current  int
}

// Current implements [Rotator].
func (r *Random) Current() Palette { return r.palettes[r.current] }

// Advance implements [Rotator].
func (r *Random) Advance(rng *rand.Rand) Palette {
	r.current = rng.IntN(len(r.palettes))
	return r.palettes[r.current]
}

// Fixed never changes palette. Useful for tests and single-palette renders.
type Fixed struct{ Palette Palette }

// Current implements [Rotator].
func (f Fixed) Current() Palette { return f.Palette }

// Advance implements [Rotator].
func (f Fixed) Advance(*rand.Rand) Palette { return f.Palette }
