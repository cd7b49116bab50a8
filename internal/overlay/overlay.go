// Package overlay holds the touched-file manifest for the v0.2.7.1
// correctness patch and renders the instruction block a maintainer follows
// to package those files into an overlay zip.
//
// The manifest and archive name are literals certified against the baseline
// LoM layout. They do not vary with the configured repository root: the
// patchpack documents one specific edit set.
package overlay

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// DefaultArchiveName is the canonical overlay archive name for this patch.
const DefaultArchiveName = "devB_patch_v0.2.7.1_correctness_overlay.zip"

// manifest lists the files touched by the patch, in the order they appear in
// the printed zip command. DEV_NOTES.md is always last.
var manifest = []string{
	"src/sim/turn.ts",
	"src/sim/types.ts",
	"src/sim/peopleFirst.ts",
	"src/sim/court.ts",
	"src/App.tsx",
	"tests/v0271_hotfix_p0_correctness.test.ts",
	"DEV_NOTES.md",
}

// Manifest returns the touched-file paths in printed order.
// The returned slice is a copy; callers may not reorder the manifest.
func Manifest() []string {
	out := make([]string, len(manifest))
	copy(out, manifest)
	return out
}

// ZipCommand formats the multi-line example command that archives the
// manifest into archiveName. An empty archiveName falls back to
// DefaultArchiveName.
func ZipCommand(archiveName string) string {
	if archiveName == "" {
		archiveName = DefaultArchiveName
	}
	var b strings.Builder
	fmt.Fprintf(&b, "zip -r %s \\\n", archiveName)
	for i, path := range manifest {
		if i < len(manifest)-1 {
			fmt.Fprintf(&b, "  %s \\\n", path)
		} else {
			fmt.Fprintf(&b, "  %s\n", path)
		}
	}
	return b.String()
}

// WriteInstructions writes the full instruction block to w: the announcement
// that PATCH_INSTRUCTIONS.md exists, the prompt to run the archive command,
// and the command itself followed by a trailing blank line.
//
// This helper is intentionally lightweight: it does not materialize edits
// automatically, because baseline anchors can vary slightly between certified
// builds. The maintainer copies the PATCH_INSTRUCTIONS.md blocks by hand and
// uses the printed command to zip the touched files.
func WriteInstructions(w io.Writer, archiveName string) error {
	bold := color.New(color.Bold)
	if _, err := bold.Fprintln(w, "This patchpack includes PATCH_INSTRUCTIONS.md for applying edits."); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "After applying, run this command from repo root to produce the overlay zip:"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ZipCommand(archiveName)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
