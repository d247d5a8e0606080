package board

import (
	"time"

	"paperboard/internal/model"
)

type paperOpt func(*model.Paper)

func newPaper(title string, opts ...paperOpt) *model.Paper {
	p := &model.Paper{Title: title}
	for _, o := range opts {
		o(p)
	}
	return p
}

func published(raw string) paperOpt {
	return func(p *model.Paper) {
		t, _ := model.ParseDate(raw)
		p.PublishedDate = &model.Date{Time: t, Raw: raw}
	}
}

func byAuthors(a string) paperOpt {
	return func(p *model.Paper) { p.Authors = a }
}

func inVenue(name string) paperOpt {
	return func(p *model.Paper) { p.Venue = &model.Tag{Name: name, Color: "#ccc"} }
}

func inCollections(names ...string) paperOpt {
	return func(p *model.Paper) {
		for _, n := range names {
			p.Collections = append(p.Collections, model.Tag{Name: n})
		}
	}
}

func withArxiv(id string) paperOpt {
	return func(p *model.Paper) { p.ArxivID = &id }
}

func titlesOf(ps []*model.Paper) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}

func testSettings() Settings {
	return Settings{
		Location:  time.UTC,
		Widths:    Widths{48, 16, 24, 13, 34},
		MinWidths: Widths{30, 12, 14, 13, 11},
	}
}

// scenarioStore is the two-record store used across the table scenarios.
func scenarioStore() []*model.Paper {
	return []*model.Paper{
		newPaper("Alpha", published("2023-01-01")),
		newPaper("Beta", published("2024-01-01")),
	}
}
