package common

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	dotStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true) // Green
	dashStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))           // Orange
	wordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))           // Gray
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// StyleSymbols colors a symbol stream for display. Characters other than
// dots, dashes and word separators are left as they are.
func StyleSymbols(symbols string) string {
	var sb strings.Builder
	for _, r := range symbols {
		switch r {
		case '.':
			sb.WriteString(dotStyle.Render("."))
		case '-':
			sb.WriteString(dashStyle.Render("-"))
		case '/':
			sb.WriteString(wordStyle.Render("/"))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// PrintSymbols writes symbols and a newline to w, styled when w is a
// terminal.
func PrintSymbols(w io.Writer, symbols string) error {
	if IsTerminal(w) {
		symbols = StyleSymbols(symbols)
	}
	_, err := io.WriteString(w, symbols+"\n")
	return err
}
