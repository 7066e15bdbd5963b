package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/mosaic"
)

func TestLoadMissingFile(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Mosaic != mosaic.DefaultConfig() {
		t.Errorf("Mosaic = %+v, want defaults", f.Mosaic)
	}
	if f.Server.Addr != DefaultServerAddr {
		t.Errorf("Server.Addr = %q, want %q", f.Server.Addr, DefaultServerAddr)
	}
}

func TestParse(t *testing.T) {
	doc := `
[mosaic]
cell_size = 24
easing = "linear"
seed = 7

[[palette]]
name = "forest"
colors = [
  { name = "Moss", hex = "4a5d23" },
  { name = "Fern", hex = "#6b8e23" },
]

[cache]
redis_addr = "localhost:6379"

[server]
addr = ":9000"
`
	f, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Mosaic.CellSize != 24 || f.Mosaic.Easing != mosaic.EasingLinear || f.Mosaic.Seed != 7 {
		t.Errorf("Mosaic = %+v", f.Mosaic)
	}
	if f.Mosaic.TransitionFrames != mosaic.DefaultTransitionFrames {
		t.Errorf("TransitionFrames = %d, want default %d", f.Mosaic.TransitionFrames, mosaic.DefaultTransitionFrames)
	}
	if f.Cache.RedisAddr != "localhost:6379" || f.Cache.RedisPrefix != DefaultRedisPrefix {
		t.Errorf("Cache = %+v", f.Cache)
	}
	if f.Server.Addr != ":9000" {
		t.Errorf("Server.Addr = %q", f.Server.Addr)
	}

	pals, err := f.AccentPalettes()
	if err != nil {
		t.Fatalf("AccentPalettes: %v", err)
	}
	if len(pals) != 1 || pals[0].Name != "forest" || pals[0].Len() != 2 {
		t.Fatalf("palettes = %+v", pals)
	}
	if got := pals[0].Hex()[1]; got != "#6b8e23" {
		t.Errorf("second colour = %s, want #6b8e23", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.Code
	}{
		{"syntax", "[mosaic\n", errors.ErrCodeInvalidConfig},
		{"unknown key", "[mosaic]\ncellsize = 3\n", errors.ErrCodeInvalidConfig},
		{"unknown section", "[window]\nwidth = 3\n", errors.ErrCodeInvalidConfig},
		{"bad cell size", "[mosaic]\ncell_size = 0\n", errors.ErrCodeInvalidConfig},
		{"bad easing", "[mosaic]\neasing = \"bounce\"\n", errors.ErrCodeInvalidEasing},
		{"empty palette", "[[palette]]\nname = \"void\"\ncolors = []\n", errors.ErrCodeInvalidPalette},
		{"bad hex", "[[palette]]\nname = \"p\"\ncolors = [{ name = \"x\", hex = \"zzzzzz\" }]\n", errors.ErrCodeInvalidPalette},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %s, want %s (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", fileName)

	want := Default()
	want.Mosaic.CellSize = 12
	want.Gallery.MongoURI = "mongodb://localhost:27017"
	if err := want.Write(path, false); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Mosaic != want.Mosaic {
		t.Errorf("Mosaic = %+v, want %+v", got.Mosaic, want.Mosaic)
	}
	if got.Gallery != want.Gallery {
		t.Errorf("Gallery = %+v, want %+v", got.Gallery, want.Gallery)
	}

	err = want.Write(path, false)
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("second Write = %v, want INVALID_PATH", err)
	}
	if err := want.Write(path, true); err != nil {
		t.Errorf("overwrite: %v", err)
	}
}

func TestEncodeDefaults(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Encode(&buf); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[mosaic]", "cell_size = 16.0", `easing = "easeInOutCubic"`, "[server]"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("encoded config missing %q:\n%s", want, buf.String())
		}
	}
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "mosaic", "config.toml"); got != want {
		t.Errorf("DefaultPath = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Dir(got)); !os.IsNotExist(err) {
		t.Errorf("DefaultPath should not create directories")
	}
}
