// Package textutil fits kiosk text into terminal columns.
package textutil

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Fit returns s in exactly width terminal columns: cut with a trailing
// ellipsis when too wide, padded with spaces otherwise.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ellipsis), width)
}

// FormatSeconds renders a countdown as MM:SS. Minutes are not capped at 59
// and negative values render as 00:00.
func FormatSeconds(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}
