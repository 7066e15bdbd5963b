package palette

import (
	"math/rand/v2"
	"testing"
)

func TestSequentialRotatorWraps(t *testing.T) {
	r, err := NewRotator(RotationSequential, Accents(), nil)
	if err != nil {
		t.Fatalf("NewRotator: %v", err)
	}
	if r.Current().Name != "earthy" {
		t.Errorf("Current() = %s, want earthy", r.Current().Name)
	}

	want := []string{"sunset", "desertNight", "earthy"}
	for _, name := range want {
		if got := r.Advance(nil).Name; got != name {
			t.Errorf("Advance() = %s, want %s", got, name)
		}
	}
}

func TestRandomRotatorIsReproducible(t *testing.T) {
	seq := func() []string {
		rng := rand.New(rand.NewPCG(7, 7))
		r, err := NewRotator(RotationRandom, Accents(), rng)
		if err != nil {
			t.Fatalf("NewRotator: %v", err)
		}
		names := []string{r.Current().Name}
		for range 10 {
			names = append(names, r.Advance(rng).Name)
		}
		return names
	}

	a, b := seq(), seq()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("random rotation differs at %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestNewRotatorErrors(t *testing.T) {
	if _, err := NewRotator(RotationSequential, nil, nil); err == nil {
		t.Error("empty palettes should fail")
	}
	if _, err := NewRotator("bogus", Accents(), nil); err == nil {
		t.Error("unknown policy should fail")
	}
	if _, err := NewRotator(RotationSequential, []Palette{{Name: "empty"}}, nil); err == nil {
		t.Error("palette without colours should fail")
	}
}

func TestFixedRotator(t *testing.T) {
	f := Fixed{Palette: Sunset}
	if f.Advance(nil).Name != "sunset" || f.Current().Name != "sunset" {
		t.Error("Fixed should never change")
	}
}
