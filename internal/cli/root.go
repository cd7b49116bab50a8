package cli

import (
	"fmt"
	"os"

	"patchpack/internal/config"
	"patchpack/internal/flags"
	"patchpack/internal/overlay"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var cfg = config.New()

var rootCmd = &cobra.Command{
	Use:   "patchpack",
	Short: "Print instructions for packaging the v0.2.7.1 correctness overlay",
	Long: `Patchpack prints the instructions for packaging the files touched by the
v0.2.7.1 correctness patch into an overlay zip.

Patchpack is print-only: it tells you what to archive, does not apply edits,
and does not touch the repository. The edits themselves are applied by hand
from the companion PATCH_INSTRUCTIONS.md document.

Examples:
	# Print the instruction block
	patchpack

	# Same output; the root is resolved but never read
	patchpack --repo ~/src/lom

	# Print the command with a custom archive name
	patchpack --out hotfix.zip --substitute-out

	# List the touched files
	patchpack files

Output:
	A fixed instruction block on stdout. Diagnostics (with --verbose) go to
	stderr and never change stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if err := cfg.Validate(); err != nil {
			return err
		}

		logger := newLogger(cfg.Runtime.Verbose)
		defer func() { _ = logger.Sync() }()

		archiveName := overlay.DefaultArchiveName
		if cfg.Overlay.SubstituteOut {
			archiveName = cfg.Overlay.ArchiveName
		}
		logger.Debug("printing overlay instructions",
			zap.String("repo", cfg.Overlay.RepoRoot),
			zap.String("archive", archiveName))

		return overlay.WriteInstructions(cmd.OutOrStdout(), archiveName)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, flags.FlagVerbose, false, "Enable verbose diagnostics on stderr")

	rootCmd.Flags().StringVar(&cfg.Overlay.RepoRoot, flags.FlagRepo, ".", "Repo root (resolved to an absolute path; never read)")
	rootCmd.Flags().StringVar(&cfg.Overlay.ArchiveName, flags.FlagOut, overlay.DefaultArchiveName, "Output zip name")
	rootCmd.Flags().BoolVar(&cfg.Overlay.SubstituteOut, flags.FlagSubstituteOut, false, "Print the configured --out name in the archive command instead of the canonical literal")
}

// newLogger builds the stderr diagnostics logger. Non-verbose runs stay
// silent below warn so normal output is exactly the instruction block.
func newLogger(verbose bool) *zap.Logger {
	loggerConfig := zap.NewDevelopmentConfig()
	loggerConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !verbose {
		loggerConfig.Level.SetLevel(zapcore.WarnLevel)
		loggerConfig.DisableCaller = true
		loggerConfig.DisableStacktrace = true
	}
	log, _ := loggerConfig.Build()
	return log
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
