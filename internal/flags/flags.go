package flags

// Package flags defines canonical CLI flag names shared across the CLI.
// Keeping these as constants helps avoid drift between Cobra flag wiring and
// other code paths that need to reference flags (e.g. tests that exercise the
// compiled binary).
// IMPORTANT: These are flag *names* without leading dashes.
// Example usage:
//
//	cmd.Flags().StringVar(&cfg.Overlay.RepoRoot, flags.FlagRepo, ".", "...")
//	arg := "--" + flags.FlagRepo
const (
	// Overlay
	FlagRepo          = "repo"
	FlagOut           = "out"
	FlagSubstituteOut = "substitute-out"

	// Runtime
	FlagVerbose = "verbose"

	// files subcommand
	FlagQuiet = "quiet"
)
