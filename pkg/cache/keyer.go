package cache

import "time"

// Cache lifetimes. Rendering is deterministic, so artifacts only expire to
// bound disk and memory use.
const (
	TTLArtifact = 7 * 24 * time.Hour
	TTLRecord   = 24 * time.Hour
)

// Artifact kinds.
const (
	KindStill     = "still"
	KindAnimation = "animation"
	KindInspect   = "inspect"
)

// ArtifactKeyOpts identifies one rendered artifact.
type ArtifactKeyOpts struct {
	Kind   string // KindStill, KindAnimation or KindInspect
	Format string // svg, png, json, gif, dot
	Params any    // JSON-serialisable render parameters
}

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey returns the key of a rendered artifact.
	ArtifactKey(opts ArtifactKeyOpts) string
	// RecordKey returns the key of a cached gallery record.
	RecordKey(id string) string
}

// DefaultKeyer hashes artifact parameters with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<kind>:<format>:<sha256(params)>".
func (DefaultKeyer) ArtifactKey(opts ArtifactKeyOpts) string {
	return "artifact:" + opts.Kind + ":" + opts.Format + ":" + digest(opts.Params)
}

// RecordKey returns "record:<id>".
func (DefaultKeyer) RecordKey(id string) string {
	return "record:" + id
}

var _ Keyer = DefaultKeyer{}
