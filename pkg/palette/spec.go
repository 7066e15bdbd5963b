package palette

// Spec is the TOML representation of a custom palette:
//
//	[[palette]]
//	name = "forest"
//	colors = [
//	  { name = "Moss", hex = "4a5d23" },
//	  { name = "Fern", hex = "6b8e23" },
//	]
type Spec struct {
	Name   string      `toml:"name" json:"name"`
	Colors []ColorSpec `toml:"colors" json:"colors"`
}

// ColorSpec is one named colour in a [Spec].
type ColorSpec struct {
	Name string `toml:"name" json:"name"`
	Hex  string `toml:"hex" json:"hex"`
}

// FromSpec converts a spec into a validated palette.
func FromSpec(s Spec) (Palette, error) {
	pairs := make([][2]string, len(s.Colors))
	for i, c := range s.Colors {
		pairs[i] = [2]string{c.Name, c.Hex}
	}
	return Parse(s.Name, pairs)
}

// ToSpec converts a palette back into its TOML/JSON form.
func ToSpec(p Palette) Spec {
	s := Spec{Name: p.Name, Colors: make([]ColorSpec, len(p.Entries))}
	for i, e := range p.Entries {
		s.Colors[i] = ColorSpec{Name: e.Name, Hex: e.Color.Hex()}
	}
	return s
}
