package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

// styles used by the progress and status lines.
var styles = struct {
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Progress lipgloss.Style
}{
	Success:  lipgloss.NewStyle().Foreground(colorSuccess),
	Warning:  lipgloss.NewStyle().Foreground(colorWarning),
	Error:    lipgloss.NewStyle().Foreground(colorError),
	Muted:    lipgloss.NewStyle().Foreground(colorMuted),
	Progress: lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
}

func printSuccess(text string) {
	fmt.Fprintln(os.Stdout, styles.Success.Render("✓ "+text))
}

func printWarning(text string) {
	fmt.Fprintln(os.Stdout, styles.Warning.Render("⚠ "+text))
}

func printError(text string) {
	fmt.Fprintln(os.Stderr, styles.Error.Render("✗ "+text))
}

// printProgress rewrites a single status line in place.
func printProgress(collapsed, total int) {
	pct := 100 * collapsed / total
	line := fmt.Sprintf("collapsing %d/%d cells (%d%%)", collapsed, total, pct)
	fmt.Fprintf(os.Stdout, "\r%s", styles.Progress.Render(line))
}

// endProgress terminates the in-place progress line.
func endProgress() {
	fmt.Fprintln(os.Stdout)
}
