package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Output destinations, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	commentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// styled renders s with style unless colors are disabled.
func styled(style lipgloss.Style, s string) string {
	if globalNoColor {
		return s
	}
	return style.Render(s)
}

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", styled(successStyle, "✓"), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", styled(warningStyle, "⚠"), msg)
}

// printErrorMsg prints an error message. It is never silenced by --quiet.
func printErrorMsg(msg string) {
	fmt.Fprintf(stderr, "%s %s\n", styled(errorStyle, "✗"), msg)
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", styled(progressStyle, "→"), msg)
}

// comment highlights an interpolated value inside a message.
func comment(s string) string {
	return styled(commentStyle, s)
}

// highlight marks a value the user supplied.
func highlight(s string) string {
	return styled(infoStyle, s)
}
