package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"paperboard/internal/board"
	"paperboard/internal/model"
	"paperboard/internal/publish"
)

type view int

const (
	viewLoading view = iota
	viewFailed
	viewTable
	viewSearch
	viewPicker
	viewDetail
)

// Screen rows of the table view.
const (
	rowTitle = iota
	rowSearch
	rowBadges
	rowHeader
	rowRule
	rowBody
)

type papersLoadedMsg struct{ records []*model.Paper }

type papersFailedMsg struct{ err error }

type appModel struct {
	ctx    context.Context
	cancel context.CancelFunc
	opts   Options

	width  int
	height int

	view    view
	spinner spinner.Model
	loadErr error

	session *board.Session
	table   *tableView

	search     textinput.Model
	picker     list.Model
	pickerKind board.DropdownKind

	cursor int
	offset int

	detail string

	keys keyMap
	help help.Model
}

func newAppModel(ctx context.Context, opts Options) appModel {
	ctx, cancel := context.WithCancel(ctx)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	in := textinput.New()
	in.Placeholder = "title or authors"
	in.Prompt = ""
	in.CharLimit = 200

	return appModel{
		ctx:     ctx,
		cancel:  cancel,
		opts:    opts,
		view:    viewLoading,
		spinner: sp,
		search:  in,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadPapers(m.ctx, m.opts))
}

func loadPapers(ctx context.Context, opts Options) tea.Cmd {
	return func() tea.Msg {
		records, err := opts.loader()(ctx, opts.Source)
		if err != nil {
			return papersFailedMsg{err: err}
		}
		return papersLoadedMsg{records: records}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.view == viewPicker {
			m.picker.SetSize(msg.Width, m.bodyHeight())
		}
		m.ensureVisible()
		return m, nil

	case papersLoadedMsg:
		if m.ctx.Err() != nil {
			return m, nil
		}
		m.table = newTableView(m.opts.Settings.Location)
		m.session = board.NewSession(board.NewState(msg.records, m.opts.Settings), m.table)
		m.view = viewTable
		slog.Debug("papers ready", "records", len(msg.records))
		return m, nil

	case papersFailedMsg:
		if m.ctx.Err() != nil {
			return m, nil
		}
		m.loadErr = msg.err
		m.view = viewFailed
		slog.Error("load failed", "source", m.opts.Source, "err", msg.err)
		return m, nil

	case spinner.TickMsg:
		if m.view != viewLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.updateMouse(msg), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		switch m.view {
		case viewLoading, viewFailed:
			if key.Matches(msg, m.keys.Quit, m.keys.Back) {
				return m.quit()
			}
			return m, nil
		case viewSearch:
			return m.updateSearch(msg)
		case viewPicker:
			return m.updatePicker(msg)
		case viewDetail:
			if key.Matches(msg, m.keys.Quit) {
				return m.quit()
			}
			if key.Matches(msg, m.keys.Detail, m.keys.Back) {
				m.view = viewTable
				m.detail = ""
			}
			return m, nil
		default:
			return m.updateTable(msg)
		}
	}
	return m, nil
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}

func (m appModel) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m.quit()
	case key.Matches(msg, k.Up):
		m.moveCursor(-1)
	case key.Matches(msg, k.Down):
		m.moveCursor(1)
	case key.Matches(msg, k.PageUp):
		m.moveCursor(-m.bodyHeight())
	case key.Matches(msg, k.PageDown):
		m.moveCursor(m.bodyHeight())
	case key.Matches(msg, k.Top):
		m.cursor = 0
		m.ensureVisible()
	case key.Matches(msg, k.Bottom):
		m.cursor = m.session.State().VisibleLen() - 1
		m.ensureVisible()
	case key.Matches(msg, k.Search):
		m.endDrag()
		m.view = viewSearch
		return m, m.search.Focus()
	case key.Matches(msg, k.Collection):
		m.openPicker(board.DropdownCollection)
	case key.Matches(msg, k.Year):
		m.openPicker(board.DropdownYear)
	case key.Matches(msg, k.Sort):
		m.dispatch(board.HeaderClicked{Index: int(msg.Runes[0] - '1')})
	case key.Matches(msg, k.PinVenue):
		if p := m.selected(); p != nil && p.HasVenue() {
			m.dispatch(board.TagClicked{Kind: board.PinVenue, Value: p.Venue.Name})
		}
	case key.Matches(msg, k.PinTag):
		if p := m.selected(); p != nil && len(p.Collections) > 0 {
			m.dispatch(board.TagClicked{Kind: board.PinCollection, Value: p.Collections[0].Name})
		}
	case key.Matches(msg, k.RemoveBadge):
		if b := m.session.State().Badges(); len(b) > 0 {
			m.dispatch(board.BadgeRemoved{Kind: b[len(b)-1].Kind})
		}
	case key.Matches(msg, k.Detail):
		if p := m.selected(); p != nil {
			m.endDrag()
			m.detail = renderMarkdown(publish.RenderPaperMarkdown(p, m.session.State().Location()), m.width-4)
			m.view = viewDetail
		}
	}
	return m, nil
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.search.Blur()
		m.view = viewTable
		return m, nil
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != before {
		m.dispatch(board.SearchChanged{Text: v})
	}
	return m, cmd
}

func (m *appModel) openPicker(kind board.DropdownKind) {
	c := m.session.State().Criteria()
	current := c.DropdownCollection
	if kind == board.DropdownYear {
		current = c.DropdownYear
	}
	m.endDrag()
	m.picker = newPicker(kind, m.session.State().Options(), current)
	m.picker.SetSize(m.width, m.bodyHeight())
	m.pickerKind = kind
	m.view = viewPicker
}

func (m appModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker.FilterState() != list.Filtering {
		switch msg.Type {
		case tea.KeyEnter:
			if it, ok := m.picker.SelectedItem().(optionItem); ok {
				m.dispatch(board.DropdownChanged{Kind: m.pickerKind, Value: it.value})
			}
			m.view = viewTable
			return m, nil
		case tea.KeyEsc:
			if m.picker.FilterState() == list.Unfiltered {
				m.view = viewTable
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// updateMouse routes pointer input. While a resize gesture is active every motion and
// the release go to the gesture, wherever the pointer is.
func (m appModel) updateMouse(msg tea.MouseMsg) appModel {
	if m.session == nil {
		return m
	}
	if _, dragging := m.session.State().Dragging(); dragging {
		switch msg.Action {
		case tea.MouseActionMotion:
			m.dispatch(board.DragMoved{X: msg.X})
			return m
		case tea.MouseActionRelease:
			m.dispatch(board.DragEnded{})
			return m
		}
	}
	if m.view != viewTable && m.view != viewSearch {
		return m
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-3)
		return m
	case tea.MouseButtonWheelDown:
		m.moveCursor(3)
		return m
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}

	switch {
	case msg.Y == rowHeader:
		col, onSep := m.table.hitColumn(msg.X)
		if onSep {
			m.dispatch(board.DragStarted{Index: col, X: msg.X})
		} else if col >= 0 {
			m.dispatch(board.HeaderClicked{Index: col})
		}
	case msg.Y == rowBadges:
		if kind, ok := m.table.hitBadgeRemove(msg.X); ok {
			m.dispatch(board.BadgeRemoved{Kind: kind})
		}
	case msg.Y >= rowBody && msg.Y < rowBody+m.bodyHeight():
		i := m.offset + msg.Y - rowBody
		if i >= m.session.State().VisibleLen() {
			return m
		}
		m.cursor = i
		if ev, ok := m.table.hitTag(i, msg.X); ok {
			m.dispatch(ev)
		}
	}
	return m
}

// endDrag drops any resize gesture before the table loses the pointer.
func (m *appModel) endDrag() {
	if _, dragging := m.session.State().Dragging(); dragging {
		m.dispatch(board.DragEnded{})
	}
}

func (m *appModel) dispatch(ev board.Event) {
	ch := m.session.Dispatch(ev)
	if ch.Has(board.ChangeRows) {
		m.ensureVisible()
	}
}

func (m *appModel) selected() *model.Paper {
	if m.session == nil {
		return nil
	}
	return m.session.State().VisibleAt(m.cursor)
}

func (m *appModel) moveCursor(delta int) {
	m.cursor += delta
	m.ensureVisible()
}

// ensureVisible clamps the cursor to the visible rows and scrolls it into view.
func (m *appModel) ensureVisible() {
	if m.session == nil {
		return
	}
	n := m.session.State().VisibleLen()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	h := m.bodyHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset > n-h {
		m.offset = n - h
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// bodyHeight is the number of data rows that fit between the rule and the footer.
func (m appModel) bodyHeight() int {
	h := m.height - rowBody - 1
	if h < 1 {
		return 1
	}
	return h
}

func (m appModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	var out string
	switch m.view {
	case viewLoading:
		out = m.spinner.View() + " Loading papers from " + m.opts.Source + "..."
	case viewFailed:
		out = m.failedView()
	case viewPicker:
		out = strings.Join([]string{m.titleLine(), m.searchLine(), m.table.badgeLine, m.picker.View()}, "\n")
	case viewDetail:
		out = m.titleLine() + "\n\n" + m.detail
	default:
		out = m.tableView()
	}
	return normalizePane(out, m.width, m.height)
}

func (m appModel) failedView() string {
	errStyle := lipgloss.NewStyle().Foreground(colorErrorFg).Bold(true)
	return strings.Join([]string{
		errStyle.Render("Could not load papers"),
		"",
		fmt.Sprint(m.loadErr),
		"",
		styleMuted().Render("press q to quit"),
	}, "\n")
}

func (m appModel) titleLine() string {
	title := styleAccent().Render(" paperboard ")
	return title + "  " + m.table.statsLine()
}

func (m appModel) searchLine() string {
	c := m.session.State().Criteria()
	filters := styleMuted().Render("  tag: " + orAll(model.FormatTopicName(c.DropdownCollection)) + "  year: " + orAll(c.DropdownYear))
	inputW := m.width - lipgloss.Width(filters)
	return renderInputLine(inputW, "Search:", m.search.View()) + filters
}

func orAll(s string) string {
	if s == "" {
		return "all"
	}
	return s
}

func (m appModel) tableView() string {
	lines := make([]string, 0, m.height)
	lines = append(lines, m.titleLine(), m.searchLine(), m.table.badgeLine, m.table.header)
	lines = append(lines, styleMuted().Render(strings.Repeat(glyphHRule(), m.width)))

	n := m.session.State().VisibleLen()
	if n == 0 {
		lines = append(lines, styleMuted().Render("  No papers match the current filters."))
	}
	for i := m.offset; i < n && i < m.offset+m.bodyHeight(); i++ {
		if i == m.cursor {
			lines = append(lines, styleSelected().Render(m.table.plain[i]))
		} else {
			lines = append(lines, m.table.lines[i])
		}
	}
	for len(lines) < m.height-1 {
		lines = append(lines, "")
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}
