package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/md2docx/internal/logging"
	"github.com/yaklabco/md2docx/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new md2docx configuration file",
		Long: `Create a new .md2docx.yml configuration file in the current directory
with documented defaults. The file can be customized to change document
fonts, enable strict mode, and control language detection.

Examples:
  md2docx init                     Create .md2docx.yml
  md2docx init --output custom.yml Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .md2docx.yml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".md2docx.yml"
	}

	if _, err := os.Stat(outputPath); err == nil && !flags.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", outputPath)
	}

	if err := os.WriteFile(outputPath, []byte(config.Template), configFilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	logger.Info("created configuration file", logging.FieldConfig, outputPath)
	return nil
}
