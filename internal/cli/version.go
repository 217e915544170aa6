package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/md2docx/internal/logging"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of md2docx.`,
		Run: func(_ *cobra.Command, _ []string) {
			logger := logging.NewInteractive()

			logger.Info("md2docx",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
			)
		},
	}

	return cmd
}
