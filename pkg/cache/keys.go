package cache

import "fmt"

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey returns the key of one rendered format of a board.
	ArtifactKey(boardHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render inputs that change an artifact.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	ConfigHash string  `json:"config_hash,omitempty"`
	Scale      float64 `json:"scale,omitempty"`
}

// DefaultKeyer builds keys of the form "artifact:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey hashes the board hash together with opts.
func (DefaultKeyer) ArtifactKey(boardHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", boardHash, opts)
}

// ArtifactVersion is bumped whenever a renderer changes its output, so that
// stale entries are not served.
const ArtifactVersion = 1

// VersionedKeyer prefixes keys with [ArtifactVersion].
func VersionedKeyer(inner Keyer) Keyer {
	return NewScopedKeyer(inner, fmt.Sprintf("v%d:", ArtifactVersion))
}
