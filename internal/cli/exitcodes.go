package cli

import (
	"errors"

	"github.com/yaklabco/md2docx/pkg/convert"
	"github.com/yaklabco/md2docx/pkg/fsutil"
)

// Exit codes for md2docx, following BSD sysexits where one applies.
const (
	// ExitSuccess indicates a successful conversion.
	ExitSuccess = 0

	// ExitConversionError indicates the conversion failed.
	ExitConversionError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitMissingInput indicates the input file does not exist.
	ExitMissingInput = 66

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrConfig marks configuration loading failures for exit code mapping.
var ErrConfig = errors.New("configuration error")

// ErrUsage marks command-line usage errors for exit code mapping.
var ErrUsage = errors.New("invalid usage")

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, fsutil.ErrNotFound):
		return ExitMissingInput
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrPermissionDenied), errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	case errors.Is(err, convert.ErrUnsupportedConstructs):
		return ExitConversionError
	default:
		return ExitConversionError
	}
}
