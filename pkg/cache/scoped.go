package cache

// ScopedKeyer wraps a Keyer with a prefix. The pipeline scopes keys by
// build version so that artifacts rendered by an older binary are never
// served after an upgrade.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(opts)
}

// RecordKey generates a prefixed record key.
func (k *ScopedKeyer) RecordKey(id string) string {
	return k.prefix + k.inner.RecordKey(id)
}
