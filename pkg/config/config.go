// Package config loads the mosaic configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/mosaic/config.toml by
// default. Every section is optional; missing keys keep their defaults and
// unknown keys are rejected so typos surface immediately.
//
//	[mosaic]
//	cell_size = 24
//	easing = "linear"
//
//	[[palette]]
//	name = "forest"
//	colors = [{ name = "moss", hex = "#4a5d23" }]
//
//	[cache]
//	redis_addr = "localhost:6379"
//
//	[gallery]
//	mongo_uri = "mongodb://localhost:27017"
//
//	[server]
//	addr = ":8080"
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/palette"
)

const (
	appName  = "mosaic"
	fileName = "config.toml"

	DefaultServerAddr  = ":8080"
	DefaultRedisPrefix = "mosaic:"
	DefaultDatabase    = "mosaic"
	DefaultCollection  = "gallery"
)

// File is the decoded configuration file.
type File struct {
	Mosaic   mosaic.Config  `toml:"mosaic"`
	Palettes []palette.Spec `toml:"palette"`
	Cache    Cache          `toml:"cache"`
	Gallery  Gallery        `toml:"gallery"`
	Server   Server         `toml:"server"`
}

// Cache configures the artifact cache. A RedisAddr selects Redis; otherwise
// artifacts are cached on disk under Dir.
type Cache struct {
	Disabled      bool   `toml:"disabled"`
	Dir           string `toml:"dir,omitempty"`
	RedisAddr     string `toml:"redis_addr,omitempty"`
	RedisPassword string `toml:"redis_password,omitempty"`
	RedisDB       int    `toml:"redis_db"`
	RedisPrefix   string `toml:"redis_prefix"`
}

// Gallery configures where rendered generations are recorded. An empty
// MongoURI keeps records in memory for the lifetime of the process.
type Gallery struct {
	MongoURI   string `toml:"mongo_uri,omitempty"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Server configures the HTTP service.
type Server struct {
	Addr string  `toml:"addr"`
	FPS  float64 `toml:"fps"`
}

// Default returns the configuration used when no file exists.
func Default() File {
	return File{
		Mosaic: mosaic.DefaultConfig(),
		Cache: Cache{
			RedisPrefix: DefaultRedisPrefix,
		},
		Gallery: Gallery{
			Database:   DefaultDatabase,
			Collection: DefaultCollection,
		},
		Server: Server{
			Addr: DefaultServerAddr,
			FPS:  25,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/mosaic/config.toml, falling back to
// the platform config directory.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "locate config directory")
		}
	}
	return filepath.Join(dir, appName, fileName), nil
}

// Load reads path on top of [Default]. A missing file is not an error.
func Load(path string) (File, error) {
	f := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return f, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := decode(data, &f); err != nil {
		return f, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return f, f.Validate()
}

// Parse decodes a configuration document on top of [Default].
func Parse(r io.Reader) (File, error) {
	f := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return f, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}
	if err := decode(data, &f); err != nil {
		return f, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	return f, f.Validate()
}

func decode(data []byte, f *File) error {
	md, err := toml.Decode(string(data), f)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks the engine section and every custom palette.
func (f File) Validate() error {
	if err := f.Mosaic.Validate(); err != nil {
		return err
	}
	_, err := f.AccentPalettes()
	return err
}

// AccentPalettes converts the custom palette specs.
func (f File) AccentPalettes() ([]palette.Palette, error) {
	out := make([]palette.Palette, 0, len(f.Palettes))
	for _, s := range f.Palettes {
		p, err := palette.FromSpec(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Encode writes f as TOML.
func (f File) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return nil
}

// Write saves f to path, creating parent directories. An existing file is
// only replaced when overwrite is set.
func (f File) Write(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return errors.New(errors.ErrCodeInvalidPath, "%s already exists", path)
	}
	var buf bytes.Buffer
	if err := f.Encode(&buf); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create config directory")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
