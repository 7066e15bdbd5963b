package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mosaic/pkg/cache"
)

func TestCacheDirXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	dir, err := newTestCLI(t).cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(xdg, appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirPlatformDefault(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	base, err := os.UserCacheDir()
	if err != nil {
		t.Skipf("no platform cache dir: %v", err)
	}
	dir, err := newTestCLI(t).cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(base, appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheLocation(t *testing.T) {
	c := newTestCLI(t)
	c.Config.Cache.RedisAddr = "localhost:6379"
	c.Config.Cache.RedisDB = 2
	c.Config.Cache.RedisPrefix = "mosaic:"

	loc, err := c.cacheLocation()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(loc, "redis://localhost:6379/2") {
		t.Errorf("cacheLocation() = %q", loc)
	}
}

func TestCacheClearCommand(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	_ = fc.Set(ctx, "a", []byte("1"), 0)
	_ = fc.Set(ctx, "b", []byte("2"), 0)

	cfg := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfg, []byte("[cache]\ndir = \""+filepath.ToSlash(dir)+"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := execute(t, newTestCLI(t), "--config", cfg, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if _, hit, _ := fc.Get(ctx, "a"); hit {
		t.Error("entry survived cache clear")
	}
}

func TestCacheDirFromConfig(t *testing.T) {
	c := newTestCLI(t)
	c.Config.Cache.Dir = "/srv/mosaic-cache"

	dir, err := c.cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/srv/mosaic-cache" {
		t.Errorf("cacheDir() = %q, want configured dir", dir)
	}
}

func TestNewCache(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		noCache bool
		setup   func(c *CLI)
		want    string
	}{
		{"file", false, func(c *CLI) { c.Config.Cache.Dir = t.TempDir() }, "file"},
		{"no-cache flag", true, func(c *CLI) {}, "null"},
		{"disabled in config", false, func(c *CLI) { c.Config.Cache.Disabled = true }, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCLI(t)
			tt.setup(c)
			cc, err := c.newCache(ctx, tt.noCache)
			if err != nil {
				t.Fatal(err)
			}
			defer cc.Close()

			var got string
			switch cc.(type) {
			case *cache.FileCache:
				got = "file"
			case *cache.NullCache:
				got = "null"
			}
			if got != tt.want {
				t.Errorf("cache = %T, want %s", cc, tt.want)
			}
		})
	}
}
