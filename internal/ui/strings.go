package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// truncate shortens a string to the given display width, adding an
// ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	if ansi.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return ansi.Truncate(value, limit, "")
	}
	return ansi.Truncate(value, limit, "...")
}

// marqueeFrame returns a window of width cells over text scrolled by offset.
func marqueeFrame(text string, width, offset int) string {
	if width <= 0 {
		return ""
	}
	text = strings.ReplaceAll(text, "\n", " ")
	loop := []rune(text + strings.Repeat(" ", 8))
	if len(loop) == 0 {
		return strings.Repeat(" ", width)
	}
	start := offset % len(loop)
	var b strings.Builder
	w := 0
	for i := 0; w < width; i++ {
		r := loop[(start+i)%len(loop)]
		rw := ansi.StringWidth(string(r))
		if w+rw > width {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	if w < width {
		b.WriteString(strings.Repeat(" ", width-w))
	}
	return b.String()
}

// padRight pads a string with spaces to the given display width.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if width <= 0 || w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// shortDate trims the century from a "2024. 10. 21." style date.
func shortDate(date string) string {
	if len(date) > 2 {
		return date[2:]
	}
	return date
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
