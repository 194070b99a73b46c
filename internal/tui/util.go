package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/table"
)

func clamp(value, lo, hi int) int {
	return min(max(value, lo), hi)
}

func lineCount(value string) int {
	if value == "" {
		return 0
	}
	return strings.Count(value, "\n") + 1
}

// singleLine flattens a log entry onto one row of the given display width.
func singleLine(value string, width int) string {
	return truncateWidth(strings.Join(strings.Fields(value), " "), width)
}

func sameColumns(a, b []table.Column) bool {
	return slices.Equal(a, b)
}

func sameRows(a, b []table.Row) bool {
	return slices.EqualFunc(a, b, func(x, y table.Row) bool {
		return slices.Equal(x, y)
	})
}
