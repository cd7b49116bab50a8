package cli

import (
	"bytes"
	"strings"
	"testing"

	"patchpack/internal/config"
	"patchpack/internal/overlay"

	"github.com/fatih/color"
)

func runRoot(t *testing.T, mutate func(c *config.Config)) string {
	t.Helper()
	color.NoColor = true

	prev := cfg
	cfg = config.New()
	defer func() { cfg = prev }()
	if mutate != nil {
		mutate(cfg)
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	if err := rootCmd.RunE(rootCmd, nil); err != nil {
		t.Fatalf("RunE() error = %v", err)
	}
	return buf.String()
}

func TestRoot_InstructionBlockContract(t *testing.T) {
	out := runRoot(t, nil)

	lines := strings.Split(out, "\n")
	if lines[0] != "This patchpack includes PATCH_INSTRUCTIONS.md for applying edits." {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if !strings.HasSuffix(out, "  DEV_NOTES.md\n\n") {
		t.Fatalf("expected trailing blank line after the command block; output=%q", out)
	}

	// The seven touched files must appear in manifest order.
	pos := -1
	for _, path := range overlay.Manifest() {
		idx := strings.Index(out, path)
		if idx < 0 {
			t.Fatalf("expected output to name %q; output=%s", path, out)
		}
		if idx < pos {
			t.Fatalf("file %q out of order; output=%s", path, out)
		}
		pos = idx
	}
}

func TestRoot_RepoDoesNotChangeOutput(t *testing.T) {
	baseline := runRoot(t, nil)
	withRepo := runRoot(t, func(c *config.Config) {
		c.Overlay.RepoRoot = "/some/path"
	})

	// Regression lock: the configured root is resolved but never printed.
	if baseline != withRepo {
		t.Fatalf("expected --repo to leave output unchanged;\nbaseline=%q\nwithRepo=%q", baseline, withRepo)
	}
}

func TestRoot_OutIgnoredWithoutSubstitute(t *testing.T) {
	baseline := runRoot(t, nil)
	withOut := runRoot(t, func(c *config.Config) {
		c.Overlay.ArchiveName = "custom.zip"
	})

	// Regression lock: the canonical literal wins unless --substitute-out.
	if baseline != withOut {
		t.Fatalf("expected --out alone to leave output unchanged;\nbaseline=%q\nwithOut=%q", baseline, withOut)
	}
	if !strings.Contains(baseline, overlay.DefaultArchiveName) {
		t.Fatalf("expected canonical archive name; output=%s", baseline)
	}
}

func TestRoot_SubstituteOutReplacesOnlyArchiveName(t *testing.T) {
	baseline := runRoot(t, nil)
	substituted := runRoot(t, func(c *config.Config) {
		c.Overlay.ArchiveName = "custom.zip"
		c.Overlay.SubstituteOut = true
	})

	if !strings.Contains(substituted, "zip -r custom.zip \\") {
		t.Fatalf("expected substituted archive name; output=%s", substituted)
	}
	if strings.Contains(substituted, overlay.DefaultArchiveName) {
		t.Fatalf("expected canonical name to be absent; output=%s", substituted)
	}
	want := strings.Replace(baseline, overlay.DefaultArchiveName, "custom.zip", 1)
	if substituted != want {
		t.Fatalf("expected only the archive-name token to change;\nwant=%q\ngot=%q", want, substituted)
	}
}

func TestPrintManifest(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name           string
		quiet          bool
		expectedOutput []string
		notExpected    []string
	}{
		{
			name:  "Numbered Output",
			quiet: false,
			expectedOutput: []string{
				"Touched files (7):",
				"1. src/sim/turn.ts",
				"7. DEV_NOTES.md",
			},
		},
		{
			name:  "Quiet Output",
			quiet: true,
			expectedOutput: []string{
				"src/sim/turn.ts\n",
				"DEV_NOTES.md\n",
			},
			notExpected: []string{
				"Touched files",
				"1.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			printManifest(buf, tt.quiet)
			output := buf.String()

			for _, exp := range tt.expectedOutput {
				if !strings.Contains(output, exp) {
					t.Errorf("Expected output to contain %q, but it didn't.\nOutput:\n%s", exp, output)
				}
			}
			for _, notExp := range tt.notExpected {
				if strings.Contains(output, notExp) {
					t.Errorf("Expected output NOT to contain %q, but it did.\nOutput:\n%s", notExp, output)
				}
			}
		})
	}
}
