package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestHasColorSupport(t *testing.T) {
	t.Run("NO_COLOR disables color even when empty", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.False(t, HasColorSupport())
	})

	t.Run("dumb terminal disables color", func(t *testing.T) {
		t.Setenv("TERM", "dumb")
		assert.False(t, HasColorSupport())
	})
}

func TestRenderTaskTable(t *testing.T) {
	// Plain output so assertions see no escape sequences.
	lipgloss.SetColorProfile(termenv.Ascii)

	created := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	completed := created.Add(time.Hour)

	tasks := []domain.Task{
		{ID: 1, Title: "Buy milk", CreatedAt: created},
		{ID: 2, Title: "Read notes", CreatedAt: created, Done: true, CompletedAt: &completed},
	}

	out := RenderTaskTable(tasks)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "Read notes")
	assert.Contains(t, out, "2026-08-26 10:00:00")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "·")
}

func TestRenderTaskTable_Empty(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderTaskTable(nil)

	// Header only.
	assert.Contains(t, out, "ID")
	assert.NotContains(t, out, "✓")
}
