package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/md2docx/internal/configloader"
	"github.com/yaklabco/md2docx/internal/logging"
	"github.com/yaklabco/md2docx/internal/ui/pretty"
	"github.com/yaklabco/md2docx/pkg/config"
	"github.com/yaklabco/md2docx/pkg/convert"
	"github.com/yaklabco/md2docx/pkg/docx"
	"github.com/yaklabco/md2docx/pkg/fsutil"
	"github.com/yaklabco/md2docx/pkg/preflight"
)

// DefaultInputPath is the input used when convert is called with no arguments.
const DefaultInputPath = "README.md"

type convertFlags struct {
	output   string
	font     string
	fontSize int
	codeFont string
	strict   bool
	noDetect bool
}

func newConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert a Markdown file to a Word document",
		Long:  convertLongDescription,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(2)(cmd, args); err != nil {
				return errors.Join(ErrUsage, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output .docx path (default: input with .docx extension)")
	cmd.Flags().StringVar(&flags.font, "font", "", "body font family (default: Calibri)")
	cmd.Flags().IntVar(&flags.fontSize, "font-size", 0, "body font size in points (default: 11)")
	cmd.Flags().StringVar(&flags.codeFont, "code-font", "", "monospace font for code (default: Courier New)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail when the input uses unsupported markdown constructs")
	cmd.Flags().BoolVar(&flags.noDetect, "no-detect-languages", false, "disable code fence language detection")

	return cmd
}

const convertLongDescription = `Convert a Markdown file to a Word (.docx) document.

With no arguments, converts ` + DefaultInputPath + ` in the current directory.
With one argument, the output path is the input with a .docx extension.
Any existing file at the output path is overwritten.

Examples:
  md2docx convert                       # README.md -> README.docx
  md2docx convert notes.md              # notes.md -> notes.docx
  md2docx convert notes.md out.docx     # explicit output path
  md2docx convert --font Georgia notes.md
  md2docx convert --strict notes.md     # fail on tables, links, emphasis, ...`

func runConvert(cmd *cobra.Command, args []string, flags *convertFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Map CLI flags to a config overlay. Only explicitly provided values
	// should shadow the config file.
	cliCfg := &config.Config{
		Document: config.DocumentConfig{
			FontFamily:     flags.font,
			FontSizePoints: flags.fontSize,
			CodeFontFamily: flags.codeFont,
		},
		Strict: flags.strict,
	}
	if flags.noDetect {
		detect := false
		cliCfg.DetectLanguages = &detect
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(ErrConfig, err)
	}
	cfg := loadResult.Config

	if loadResult.LoadedFrom != "" {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.LoadedFrom)
	}

	inputPath, outputPath := resolvePaths(args, flags.output)

	// Input existence is checked up front so the failure mode is a clean
	// diagnostic rather than a mid-pipeline error.
	if !fsutil.Exists(inputPath) {
		return fmt.Errorf("%w: %s", fsutil.ErrNotFound, inputPath)
	}

	logger.Debug("starting conversion",
		logging.FieldInput, inputPath,
		logging.FieldOutput, outputPath,
	)

	result, err := convert.Run(ctx, convert.Options{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Document: docx.Options{
			FontFamily:     cfg.Document.FontFamily,
			FontSizePoints: cfg.Document.FontSizePoints,
			CodeFontFamily: cfg.Document.CodeFontFamily,
		},
		DetectLanguages: cfg.DetectLanguagesEnabled(),
		Strict:          cfg.Strict,
	})
	if err != nil {
		return err
	}

	// Get color mode from persistent flag.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	if warning := styles.FormatFindingsWarning(preflight.Summarize(result.Findings), pretty.TerminalWidth(out)); warning != "" {
		fmt.Fprint(out, warning)
	}
	fmt.Fprint(out, styles.FormatConversionSummary(result))

	return nil
}

// resolvePaths determines input and output paths from positional args and the
// --output flag. Positional output wins over the flag.
func resolvePaths(args []string, outputFlag string) (string, string) {
	inputPath := DefaultInputPath
	if len(args) >= 1 {
		inputPath = args[0]
	}

	switch {
	case len(args) >= 2:
		return inputPath, args[1]
	case outputFlag != "":
		return inputPath, outputFlag
	default:
		return inputPath, deriveOutputPath(inputPath)
	}
}

// deriveOutputPath swaps the input extension for .docx.
func deriveOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".docx"
}
