package cli

import (
	"fmt"
	"io"

	"patchpack/internal/flags"
	"patchpack/internal/overlay"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var filesQuiet bool

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the files touched by the patch",
	Long: `List the files the overlay zip must contain, in archive order.

The list is fixed for this patchpack; it does not depend on --repo or --out.

Examples:
  # Numbered list
  patchpack files

  # Paths only (e.g. for piping into another tool)
  patchpack files -q
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printManifest(cmd.OutOrStdout(), filesQuiet)
		return nil
	},
}

func printManifest(w io.Writer, quiet bool) {
	paths := overlay.Manifest()
	if quiet {
		for _, p := range paths {
			fmt.Fprintln(w, p)
		}
		return
	}
	bold := color.New(color.Bold)
	bold.Fprintf(w, "Touched files (%d):\n", len(paths))
	for i, p := range paths {
		fmt.Fprintf(w, "%d. %s\n", i+1, p)
	}
}

func init() {
	rootCmd.AddCommand(filesCmd)
	filesCmd.Flags().BoolVarP(&filesQuiet, flags.FlagQuiet, "q", false, "Only print file paths")
}
