package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// fitCell forces s to exactly width columns (ANSI-aware): long content is cut with an
// ellipsis, short content is right-padded.
func fitCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")
	// Bound very long raw strings before measuring them.
	if len(s) > 8192 {
		s = xansi.Cut(s, 0, width+1)
	}
	w := xansi.StringWidth(s)
	if w > width {
		if width == 1 {
			s = xansi.Cut(s, 0, 1)
		} else {
			s = xansi.Cut(s, 0, width-1) + "…"
		}
		w = xansi.StringWidth(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// normalizePane forces s to be exactly width columns wide and height lines tall, so the
// frame never scrolls the terminal.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	for i := range lines {
		lines[i] = fitCell(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
