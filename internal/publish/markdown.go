package publish

import (
	"bytes"
	"strings"
	"time"

	"paperboard/internal/board"
	"paperboard/internal/model"
)

var headerTitles = [board.ColumnCount]string{"Name", "Venue", "Tag", "Year", "Link"}

// RenderTableMarkdown renders the visible rows as a GitHub-flavored markdown table.
func RenderTableMarkdown(snap *Snapshot, title string) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	if t := strings.TrimSpace(title); t != "" {
		writeLn("# " + t)
		writeLn("")
	}
	writeLn(statsLine(snap.Stats))
	if len(snap.Badges) > 0 {
		parts := make([]string, 0, len(snap.Badges))
		for _, b := range snap.Badges {
			parts = append(parts, b.Label+" "+b.Value)
		}
		writeLn("")
		writeLn("Filters: " + strings.Join(parts, ", "))
	}
	writeLn("")

	if len(snap.Rows) == 0 {
		writeLn("_No papers match the current filters._")
		return buf.String()
	}

	head := make([]string, board.ColumnCount)
	for i, h := range headerTitles {
		col, _ := board.ColumnAt(i)
		head[i] = h + sortMark(snap.Sort, col)
	}
	writeLn("| " + strings.Join(head, " | ") + " |")
	writeLn("|" + strings.Repeat(" --- |", board.ColumnCount))

	for _, p := range snap.Rows {
		cells := []string{
			mdCell("**" + p.Title + "**<br>" + p.Authors),
			mdCell(venueLabel(p)),
			mdCell(collectionsLabel(p)),
			mdCell(p.DateLabel(snap.Location)),
			mdLink(p),
		}
		writeLn("| " + strings.Join(cells, " | ") + " |")
	}
	return buf.String()
}

// RenderPaperMarkdown renders a single record as a markdown document.
func RenderPaperMarkdown(p *model.Paper, loc *time.Location) string {
	if p == nil {
		return ""
	}
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# " + strings.TrimSpace(p.Title))
	writeLn("")
	if a := strings.TrimSpace(p.Authors); a != "" {
		writeLn("_" + a + "_")
		writeLn("")
	}

	writeLn("## Meta")
	writeLn("")
	writeLn("- Venue: " + venueLabel(p))
	writeLn("- Tags: " + collectionsLabel(p))
	writeLn("- Published: " + p.DateLabel(loc))
	writeLn("- Likes: " + model.FormatCount(p.TotalLikes))
	writeLn("- Reads: " + model.FormatCount(p.TotalRead))
	writeLn("- Relevance: " + p.RelevanceLabel())
	if id := p.ArxivIDOrEmpty(); id != "" {
		writeLn("- arXiv: " + id)
	}
	if link := p.Link(); link != model.MissingLinkTarget {
		writeLn("")
		writeLn("[Open paper](" + link + ")")
	}
	return buf.String()
}

func statsLine(s board.Stats) string {
	return model.FormatCount(s.Count) + " papers, " + model.FormatCount(s.DistinctCollections) + " tags"
}

func sortMark(s board.SortSpec, c board.Column) string {
	if !s.Active(c) {
		return ""
	}
	if s.Direction == board.Descending {
		return " ▼"
	}
	return " ▲"
}

func venueLabel(p *model.Paper) string {
	if !p.HasVenue() {
		return model.UncategorizedVenueLabel
	}
	return model.FormatTopicName(p.Venue.Name)
}

func collectionsLabel(p *model.Paper) string {
	if len(p.Collections) == 0 {
		return model.PreprintCollectionLabel
	}
	names := make([]string, 0, len(p.Collections))
	for _, c := range p.Collections {
		names = append(names, model.FormatTopicName(c.Name))
	}
	return strings.Join(names, ", ")
}

func mdLink(p *model.Paper) string {
	link := p.Link()
	if link == model.MissingLinkTarget {
		return ""
	}
	return "[link](" + link + ")"
}

func mdCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
