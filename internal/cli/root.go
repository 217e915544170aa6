// Package cli provides the Cobra command structure for md2docx.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/md2docx/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root md2docx command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "md2docx",
		Short: "Convert Markdown files to Word documents",
		Long: `md2docx converts Markdown files into Word (.docx) documents.

It maps a practical subset of Markdown onto rich-text constructs: ATX
headings (levels 1-4), fenced code blocks, bulleted and numbered lists,
inline code spans, and plain paragraphs. Everything else is flattened to
plain text; use --strict to fail instead when the input relies on
constructs the converter does not render.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flag parse failures are usage errors, not conversion errors.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Join(ErrUsage, err)
	})

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
