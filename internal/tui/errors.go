package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// PrintError writes "Error: <err>" to w. The prefix is styled only when w is
// a terminal.
func PrintError(w io.Writer, err error) {
	prefix := "Error:"
	if isTerminal(w) {
		prefix = lipgloss.NewRenderer(w).NewStyle().
			Foreground(ColorError).
			Bold(true).
			Render(prefix)
	}
	fmt.Fprintf(w, "%s %v\n", prefix, err)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
