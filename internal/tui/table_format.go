package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const shortSHALength = 12

func formatShortSHA(sha string) string {
	sha = strings.TrimSpace(sha)
	if sha == "" {
		return "-"
	}
	if len(sha) > shortSHALength {
		return sha[:shortSHALength]
	}
	return sha
}

func firstTag(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return tags[0]
}

func firstNonEmpty(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

// truncateWidth shortens value to fit width terminal cells, marking the cut with "...".
func truncateWidth(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
