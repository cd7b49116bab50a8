// Package patch provides the anchor and file-write primitives a fully
// automated patcher would build on. The current patchpack flow is manual
// (see internal/overlay), so nothing in the command path calls these yet.
package patch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MustFind checks that needle occurs in haystack. It returns an error naming
// the label and the missing anchor text when it does not, so a failed
// application points at the exact baseline divergence.
func MustFind(haystack, needle, label string) error {
	if !strings.Contains(haystack, needle) {
		return fmt.Errorf("[%s] anchor not found:\n%s", label, needle)
	}
	return nil
}

// WriteFile writes content to path, creating any missing parent directories
// and overwriting prior content.
func WriteFile(path string, content string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create parent directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
