package config

import (
	"fmt"
	"path/filepath"

	"patchpack/internal/overlay"
)

type Config struct {
	Overlay Overlay
	Runtime Runtime
}

type Overlay struct {
	// RepoRoot is the root of the checked-out LoM repository (see --repo).
	// It is resolved to an absolute path by Validate but never read: the
	// printed instructions are the same for every root.
	RepoRoot string

	// ArchiveName is the configured overlay archive name (see --out).
	// Any string is accepted. The printed command uses the canonical
	// literal unless SubstituteOut is set.
	ArchiveName string

	// SubstituteOut makes the printed zip command name ArchiveName instead
	// of the canonical literal (see --substitute-out).
	SubstituteOut bool
}

type Runtime struct {
	// Verbose enables debug diagnostics on stderr (see --verbose).
	Verbose bool
}

func New() *Config {
	return &Config{
		Overlay: Overlay{
			RepoRoot:    ".",
			ArchiveName: overlay.DefaultArchiveName,
		},
	}
}

// Validate normalizes the configuration in place. The repository root is
// resolved to an absolute path; it need not exist, since nothing reads it.
// The archive name is deliberately not validated.
func (c *Config) Validate() error {
	if c.Overlay.RepoRoot == "" {
		c.Overlay.RepoRoot = "."
	}
	abs, err := filepath.Abs(c.Overlay.RepoRoot)
	if err != nil {
		return fmt.Errorf("invalid --repo value: %w", err)
	}
	c.Overlay.RepoRoot = abs
	return nil
}
