package pretty

import (
	"io"

	"golang.org/x/term"
)

// defaultTermWidth is assumed when the output is not a terminal.
const defaultTermWidth = 100

// TerminalWidth returns the column width of the terminal backing w,
// falling back to defaultTermWidth for pipes and files.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
