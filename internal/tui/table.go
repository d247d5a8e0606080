package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"paperboard/internal/board"
	"paperboard/internal/model"
)

var columnTitles = [board.ColumnCount]string{"Name", "Venue", "Tag", "Year", "Link"}

// tagSpan is a clickable collection chip inside the Tag cell, in cells relative to the
// column start.
type tagSpan struct {
	start, end int
	name       string
}

type badgeSpan struct {
	start, end int
	kind       board.PinKind
}

// tableView is the terminal render target of a board.Session. It keeps the last pushed
// outputs and the rendered lines derived from them; each Render call rebuilds only what
// depends on its output.
type tableView struct {
	loc *time.Location

	rows   []*model.Paper
	stats  board.Stats
	badges []board.Badge
	sort   board.SortSpec
	widths board.Widths

	header     string
	badgeLine  string
	badgeSpans []badgeSpan
	lines      []string
	plain      []string
	tagSpans   [][]tagSpan
}

func newTableView(loc *time.Location) *tableView {
	return &tableView{loc: loc}
}

func (t *tableView) RenderRows(rows []*model.Paper) {
	t.rows = rows
	t.rebuildRows()
}

func (t *tableView) RenderStats(s board.Stats) { t.stats = s }

func (t *tableView) RenderBadges(b []board.Badge) {
	t.badges = b
	t.rebuildBadges()
}

func (t *tableView) RenderSortIndicators(s board.SortSpec) {
	t.sort = s
	t.rebuildHeader()
}

func (t *tableView) RenderWidths(w board.Widths) {
	t.widths = w
	t.rebuildHeader()
	t.rebuildRows()
}

// colStart is the screen x of the first cell of column i.
func (t *tableView) colStart(i int) int {
	x := 0
	for j := 0; j < i && j < board.ColumnCount; j++ {
		x += t.widths[j] + 1
	}
	return x
}

// hitColumn maps a screen x to a column. onSep is true for the separator to the right
// of the returned column; the last column has none.
func (t *tableView) hitColumn(x int) (col int, onSep bool) {
	if x < 0 {
		return -1, false
	}
	start := 0
	for i := 0; i < board.ColumnCount; i++ {
		end := start + t.widths[i]
		if x < end {
			return i, false
		}
		if x == end && i < board.ColumnCount-1 {
			return i, true
		}
		start = end + 1
	}
	return -1, false
}

// hitTag resolves a click inside a data row to the pin it requests, if any.
func (t *tableView) hitTag(row, x int) (board.TagClicked, bool) {
	if row < 0 || row >= len(t.rows) {
		return board.TagClicked{}, false
	}
	col, sep := t.hitColumn(x)
	if sep {
		return board.TagClicked{}, false
	}
	p := t.rows[row]
	switch col {
	case board.ColumnVenue.Index():
		if p.HasVenue() {
			return board.TagClicked{Kind: board.PinVenue, Value: p.Venue.Name}, true
		}
	case board.ColumnTag.Index():
		rel := x - t.colStart(col)
		for _, sp := range t.tagSpans[row] {
			if rel >= sp.start && rel < sp.end {
				return board.TagClicked{Kind: board.PinCollection, Value: sp.name}, true
			}
		}
	}
	return board.TagClicked{}, false
}

// hitBadgeRemove reports which badge's remove button sits at x on the badge line.
func (t *tableView) hitBadgeRemove(x int) (board.PinKind, bool) {
	for _, sp := range t.badgeSpans {
		if x >= sp.start && x < sp.end {
			return sp.kind, true
		}
	}
	return 0, false
}

func (t *tableView) statsLine() string {
	bold := lipgloss.NewStyle().Bold(true)
	return bold.Render(model.FormatCount(t.stats.Count)) + " papers " + glyphBullet() + " " +
		bold.Render(model.FormatCount(t.stats.DistinctCollections)) + " tags"
}

func (t *tableView) rebuildHeader() {
	sep := styleMuted().Render(glyphColumnSep())
	cells := make([]string, board.ColumnCount)
	for i, title := range columnTitles {
		w := t.widths[i]
		col, _ := board.ColumnAt(i)
		glyph := glyphSortAsc()
		glyphStyle := faintIfDark(lipgloss.NewStyle().Foreground(colorMuted).Background(colorControlBg))
		if t.sort.Active(col) {
			if t.sort.Direction == board.Descending {
				glyph = glyphSortDesc()
			}
			glyphStyle = lipgloss.NewStyle().Foreground(colorAccent).Background(colorControlBg).Bold(true)
		}
		cells[i] = styleHeader().Render(fitCell(title, w-1)) + glyphStyle.Render(glyph)
	}
	t.header = strings.Join(cells, sep)
}

func (t *tableView) rebuildBadges() {
	t.badgeSpans = t.badgeSpans[:0]
	if len(t.badges) == 0 {
		t.badgeLine = ""
		return
	}
	var b strings.Builder
	x := 0
	for i, bd := range t.badges {
		if i > 0 {
			b.WriteString(" ")
			x++
		}
		text := bd.Label + " " + model.FormatTopicName(bd.Value) + " "
		chip := styleAccent().Render(" " + text)
		remove := styleAccent().Render(glyphRemove() + " ")
		b.WriteString(chip + remove)
		rmX := x + 1 + xansi.StringWidth(text)
		t.badgeSpans = append(t.badgeSpans, badgeSpan{start: rmX - 1, end: rmX + 2, kind: bd.Kind})
		x = rmX + 2
	}
	t.badgeLine = b.String()
}

func (t *tableView) rebuildRows() {
	t.lines = make([]string, len(t.rows))
	t.plain = make([]string, len(t.rows))
	t.tagSpans = make([][]tagSpan, len(t.rows))
	for i, p := range t.rows {
		t.lines[i], t.plain[i], t.tagSpans[i] = t.renderRow(p)
	}
}

func (t *tableView) renderRow(p *model.Paper) (styled, plain string, spans []tagSpan) {
	w := t.widths
	bullet := " " + glyphBullet() + " "
	metrics := model.FormatCount(p.TotalLikes) + " likes" + bullet +
		model.FormatCount(p.TotalRead) + " reads" + bullet + p.RelevanceLabel()
	name := p.Title + bullet + model.FormatAuthors(p.Authors) + bullet + metrics
	nameStyled := lipgloss.NewStyle().Bold(true).Render(p.Title) +
		styleMuted().Render(bullet+model.FormatAuthors(p.Authors)+bullet+metrics)

	venue, venueStyled := model.UncategorizedVenueLabel, styleMuted().Render(model.UncategorizedVenueLabel)
	if p.HasVenue() {
		venue = " " + model.FormatTopicName(p.Venue.Name) + " "
		venueStyled = styleChip(p.Venue.Color).Render(model.FormatTopicName(p.Venue.Name))
	}

	tags, tagsStyled := model.PreprintCollectionLabel, styleMuted().Render(model.PreprintCollectionLabel)
	if len(p.Collections) > 0 {
		var pb, sb strings.Builder
		x := 0
		for i, c := range p.Collections {
			if i > 0 {
				pb.WriteString(" ")
				sb.WriteString(" ")
				x++
			}
			label := model.FormatTopicName(c.Name)
			cw := xansi.StringWidth(label) + 2
			if x < w[board.ColumnTag.Index()] {
				spans = append(spans, tagSpan{start: x, end: x + cw, name: c.Name})
			}
			pb.WriteString(" " + label + " ")
			sb.WriteString(styleChip(c.Color).Render(label))
			x += cw
		}
		tags, tagsStyled = pb.String(), sb.String()
	}

	date := p.DateLabel(t.loc)
	dateStyled := styleChip(p.YearColor()).Render(date)
	date = " " + date + " "

	link := ""
	if l := p.Link(); l != model.MissingLinkTarget {
		link = l
	}
	linkStyled := lipgloss.NewStyle().Foreground(colorAccent).Underline(true).Render(link)

	sep := styleMuted().Render(glyphColumnSep())
	styled = strings.Join([]string{
		fitCell(nameStyled, w[0]),
		fitCell(venueStyled, w[1]),
		fitCell(tagsStyled, w[2]),
		fitCell(dateStyled, w[3]),
		fitCell(linkStyled, w[4]),
	}, sep)
	plain = strings.Join([]string{
		fitCell(name, w[0]),
		fitCell(venue, w[1]),
		fitCell(tags, w[2]),
		fitCell(date, w[3]),
		fitCell(link, w[4]),
	}, glyphColumnSep())
	return styled, plain, spans
}
