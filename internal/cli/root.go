// Package cli provides the Cobra command structure for livemark.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/livemark/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root livemark command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "livemark",
		Short: "Structural analysis engine for live markdown editors",
		Long: `livemark parses extended-markdown documents into a prioritized,
non-overlapping set of render instructions: the same pipeline a live
editor runs after every keystroke to hide syntax markers, replace spans
with formatted widgets, and style lines in place.

The CLI runs that pipeline over files so the output can be inspected:
which elements are recognized, how conflicts resolve, and what the
render host would be told to draw.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newDecorateCommand())
	rootCmd.AddCommand(newElementsCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
