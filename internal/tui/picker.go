package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"paperboard/internal/board"
	"paperboard/internal/model"
)

// optionItem is one dropdown choice. An empty value means "all".
type optionItem struct {
	label string
	value string
}

func (i optionItem) Title() string       { return i.label }
func (i optionItem) Description() string { return "" }
func (i optionItem) FilterValue() string { return strings.TrimSpace(i.label) }

type compactItemDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	current  string
}

func newCompactItemDelegate(current string) compactItemDelegate {
	return compactItemDelegate{
		normal:   lipgloss.NewStyle(),
		selected: styleSelected().Bold(true),
		current:  current,
	}
}

func (d compactItemDelegate) Height() int                             { return 1 }
func (d compactItemDelegate) Spacing() int                            { return 0 }
func (d compactItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d compactItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		return
	}
	opt, ok := item.(optionItem)
	if !ok {
		return
	}

	style := d.normal
	if index == m.Index() {
		style = d.selected
	}
	mark := "  "
	if opt.value == d.current {
		mark = glyphBullet() + " "
	}
	line := mark + opt.label
	if lw := xansi.StringWidth(line); lw < contentW {
		line += strings.Repeat(" ", contentW-lw)
	} else if lw > contentW {
		line = xansi.Cut(line, 0, contentW)
	}
	fmt.Fprint(w, style.Render(line))
}

// newPicker builds the dropdown list for kind from the loaded options; current is the
// selected value.
func newPicker(kind board.DropdownKind, opts board.Options, current string) list.Model {
	items := []list.Item{optionItem{label: "All", value: ""}}
	title := "Tag"
	switch kind {
	case board.DropdownCollection:
		for _, c := range opts.Collections {
			items = append(items, optionItem{label: model.FormatTopicName(c), value: c})
		}
	case board.DropdownYear:
		title = "Year"
		for _, y := range opts.Years {
			items = append(items, optionItem{label: y, value: y})
		}
	}

	l := list.New(items, newCompactItemDelegate(current), 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("option", "options")
	// Esc cancels the picker instead of quitting the list.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.CursorUp.SetKeys(append(l.KeyMap.CursorUp.Keys(), "ctrl+p")...)
	l.KeyMap.CursorDown.SetKeys(append(l.KeyMap.CursorDown.Keys(), "ctrl+n")...)

	for i, it := range items {
		if it.(optionItem).value == current {
			l.Select(i)
			break
		}
	}
	return l
}
