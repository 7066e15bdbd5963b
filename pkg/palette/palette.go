// Package palette provides the colour palettes used to paint mosaic regions.
//
// A [Palette] is an ordered list of named colours. Two roles exist:
//
//   - accent palettes colour large regions and are rotated between
//     generations by a [Rotator]
//   - the neutral palette ([Neutral]) colours small regions and never changes
//
// Colours are [colorful.Color] values so callers can blend them in RGB space
// without converting back and forth from hex strings.
package palette

import (
	"math/rand/v2"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/mosaic/pkg/errors"
)

// Entry is a named colour in a palette.
type Entry struct {
	Name  string
	Color colorful.Color
}

// Palette is an ordered, named set of colours.
type Palette struct {
	Name    string
	Entries []Entry
}

// Parse builds a palette from (name, hex) pairs. Hex values may omit the
// leading '#'. Order is preserved.
func Parse(name string, pairs [][2]string) (Palette, error) {
	if err := errors.ValidatePaletteName(name); err != nil {
		return Palette{}, err
	}
	if len(pairs) == 0 {
		return Palette{}, errors.New(errors.ErrCodeInvalidPalette, "palette %q has no colours", name)
	}

	p := Palette{Name: name, Entries: make([]Entry, 0, len(pairs))}
	for _, pair := range pairs {
		c, err := ParseHex(pair[1])
		if err != nil {
			return Palette{}, errors.Wrap(errors.ErrCodeInvalidPalette, err, "palette %q colour %q", name, pair[0])
		}
		p.Entries = append(p.Entries, Entry{Name: pair[0], Color: c})
	}
	return p, nil
}

// MustParse is like [Parse] but panics on error. It is intended for
// package-level palette literals.
func MustParse(name string, pairs ...[2]string) Palette {
	p, err := Parse(name, pairs)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseHex parses "a40e4c" or "#a40e4c" into a colour.
func ParseHex(s string) (colorful.Color, error) {
	if err := errors.ValidateHexColor(s); err != nil {
		return colorful.Color{}, err
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return colorful.Hex(strings.ToLower(s))
}

// Len returns the number of colours.
func (p Palette) Len() int { return len(p.Entries) }

// Colors returns the palette colours in order.
func (p Palette) Colors() []colorful.Color {
	out := make([]colorful.Color, len(p.Entries))
	for i, e := range p.Entries {
		out[i] = e.Color
	}
	return out
}

// Hex returns the palette colours as "#rrggbb" strings in order.
func (p Palette) Hex() []string {
	out := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		out[i] = e.Color.Hex()
	}
	return out
}

// Pick returns a colour chosen uniformly at random. The palette must not be empty.
func (p Palette) Pick(rng *rand.Rand) colorful.Color {
	return p.Entries[rng.IntN(len(p.Entries))].Color
}

// Contains reports whether c is one of the palette colours.
func (p Palette) Contains(c colorful.Color) bool {
	for _, e := range p.Entries {
		if e.Color == c {
			return true
		}
	}
	return false
}

// Validate checks that the palette has a valid name and at least one colour.
func (p Palette) Validate() error {
	if err := errors.ValidatePaletteName(p.Name); err != nil {
		return err
	}
	if len(p.Entries) == 0 {
		return errors.New(errors.ErrCodeInvalidPalette, "palette %q has no colours", p.Name)
	}
	return nil
}
