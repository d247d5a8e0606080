package publish

import (
	"embed"
	"html/template"
	"io"
	"regexp"
	"strings"

	"paperboard/internal/board"
	"paperboard/internal/model"
)

//go:embed templates/table.html.tmpl
var templateFS embed.FS

var tableTemplate = template.Must(template.New("table.html.tmpl").Funcs(template.FuncMap{
	"topic":       model.FormatTopicName,
	"count":       model.FormatCount,
	"color":       safeColor,
	"hasLink":     func(p *model.Paper) bool { return p.Link() != model.MissingLinkTarget },
	"collections": func(p *model.Paper) []model.Tag { return p.Collections },
}).ParseFS(templateFS, "templates/table.html.tmpl"))

type htmlHeader struct {
	Title  string
	Width  int
	Active bool
	Glyph  string
}

type htmlRow struct {
	Paper      *model.Paper
	VenueName  string
	VenueColor string
	Date       string
	YearColor  string
	Link       string
	Relevance  string
}

type htmlPage struct {
	Title         string
	Uncategorized string
	Preprint      string
	Stats         board.Stats
	Badges        []board.Badge
	Headers       []htmlHeader
	Rows          []htmlRow
}

// RenderHTML renders the snapshot as a self-contained HTML page.
func RenderHTML(w io.Writer, snap *Snapshot, title string) error {
	page := htmlPage{
		Title:         strings.TrimSpace(title),
		Uncategorized: model.UncategorizedVenueLabel,
		Preprint:      model.PreprintCollectionLabel,
		Stats:         snap.Stats,
		Badges:        snap.Badges,
	}
	if page.Title == "" {
		page.Title = "Papers"
	}
	for i, h := range headerTitles {
		col, _ := board.ColumnAt(i)
		hd := htmlHeader{Title: h, Width: snap.Widths[i], Active: snap.Sort.Active(col), Glyph: "▲"}
		if hd.Active && snap.Sort.Direction == board.Descending {
			hd.Glyph = "▼"
		}
		page.Headers = append(page.Headers, hd)
	}
	for _, p := range snap.Rows {
		row := htmlRow{
			Paper:     p,
			Date:      p.DateLabel(snap.Location),
			YearColor: p.YearColor(),
			Link:      p.Link(),
			Relevance: p.RelevanceLabel(),
		}
		if p.HasVenue() {
			row.VenueName = p.Venue.Name
			row.VenueColor = p.Venue.Color
		}
		page.Rows = append(page.Rows, row)
	}
	return tableTemplate.Execute(w, page)
}

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]{3,20})$`)

// safeColor passes through hex and named colors and drops anything else.
func safeColor(s string) template.CSS {
	s = strings.TrimSpace(s)
	if !colorPattern.MatchString(s) {
		return ""
	}
	return template.CSS(s)
}
