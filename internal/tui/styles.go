// Package tui provides terminal output styling for taskdeck.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Styles holds lipgloss styles for task list rendering.
type Styles struct {
	Header lipgloss.Style
	Done   lipgloss.Style
	Open   lipgloss.Style
	Dim    lipgloss.Style
}

// NewStyles creates the styles used by the task table.
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}),
		Done: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}).
			Strikethrough(true),
		Open: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}),
	}
}

// CheckNoColor disables colored output when the terminal does not
// support it.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or
// TERM=dumb, following the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

// RenderTaskTable renders tasks as a styled table with a header row.
// The caller filters; every task passed in is printed in order.
func RenderTaskTable(tasks []domain.Task) string {
	styles := NewStyles()

	const (
		idWidth      = 4
		markWidth    = 4
		createdWidth = 20
	)

	var sb strings.Builder

	header := fmt.Sprintf("%*s  %-*s %-*s %s",
		idWidth, "ID",
		markWidth, "DONE",
		createdWidth, "CREATED",
		"TITLE",
	)
	sb.WriteString(styles.Header.Render(header))
	sb.WriteString("\n")

	for _, t := range tasks {
		mark := "·"
		rowStyle := styles.Open
		if t.Done {
			mark = "✓"
			rowStyle = styles.Done
		}

		row := fmt.Sprintf("%*d  %-*s %-*s %s",
			idWidth, t.ID,
			markWidth, mark,
			createdWidth, t.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			t.Title,
		)
		sb.WriteString(rowStyle.Render(row))
		sb.WriteString("\n")
	}

	return sb.String()
}
