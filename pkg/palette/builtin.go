package palette

import "slices"

// Built-in palettes.
var (
	Earthy = MustParse("earthy",
		[2]string{"Coffee Bean", "230903"},
		[2]string{"Ebony", "656256"},
		[2]string{"Muted Teal", "9ebc9f"},
		[2]string{"Tan", "d3b88c"},
		[2]string{"White Smoke", "f4f2f3"},
	)

	Sunset = MustParse("sunset",
		[2]string{"Cherry Rose", "a40e4c"},
		[2]string{"Space Indigo", "2c2c54"},
		[2]string{"Ash Grey", "acc3a6"},
		[2]string{"Soft Apricot", "f5d6ba"},
		[2]string{"Tangerine Dream", "f49d6e"},
	)

	DesertNight = MustParse("desertNight",
		[2]string{"Sandy Clay", "e1b07e"},
		[2]string{"Desert Sand", "e5be9e"},
		[2]string{"Pale Oak", "cbc0ad"},
		[2]string{"Muted Teal", "86a397"},
		[2]string{"Midnight Violet", "361d2e"},
	)

	Marble = MustParse("marble",
		[2]string{"Dust Grey", "e2dadb"},
		[2]string{"Alabaster Grey", "dae2df"},
		[2]string{"Ash Grey", "a2a7a5"},
		[2]string{"Dim Grey", "6d696a"},
		[2]string{"White", "ffffff"},
	)
)

// Accents returns the default accent rotation.
func Accents() []Palette {
	return []Palette{Earthy, Sunset, DesertNight}
}

// Neutral returns the fixed palette used for small regions.
func Neutral() Palette {
	return Marble
}

// Builtins returns every built-in palette, accents first.
func Builtins() []Palette {
	return append(Accents(), Marble)
}

// Lookup finds a palette by name among the built-ins and extra.
// Entries in extra shadow built-ins with the same name.
func Lookup(name string, extra ...Palette) (Palette, bool) {
	for _, p := range extra {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range Builtins() {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// Names returns the sorted names of the built-ins and extra.
func Names(extra ...Palette) []string {
	var names []string
	for _, p := range append(Builtins(), extra...) {
		if !slices.Contains(names, p.Name) {
			names = append(names, p.Name)
		}
	}
	slices.Sort(names)
	return names
}
