package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine renders a text input as exactly one visual line of width w.
func renderInputLine(w int, label, inputView string) string {
	if w < 10 {
		w = 10
	}

	// A newline in the view would make the terminal wrap mid-frame.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		w,
		lipgloss.Left,
		label+" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > w {
		// Terminate styling so the cut doesn't bleed into the next line.
		line = xansi.Cut(line, 0, w) + "\x1b[0m"
	}
	return line
}
