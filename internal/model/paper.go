package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Display and sort fallbacks for optional fields. Consumers use these names instead of
// inline defaults so every missing-field path is explicit.
const (
	UncategorizedVenueLabel = "Uncategorized"
	PreprintCollectionLabel = "Preprint"
	MissingDateLabel        = "N/A"
	DefaultYearColor        = "#ddebf4"
	MissingLinkTarget       = "#"
	EmptySortKey            = ""
)

const arxivAbsURL = "https://arxiv.org/abs/"

// Tag is a colored categorical label (a venue or a collection).
type Tag struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// YearBadge carries the optional color of the rendered date badge.
type YearBadge struct {
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Paper is one loaded record. It is never mutated after load; identity is the pointer.
type Paper struct {
	Title         string     `json:"title" yaml:"title"`
	Authors       string     `json:"authors" yaml:"authors"`
	PublishedDate *Date      `json:"published_date,omitempty" yaml:"published_date,omitempty"`
	Venue         *Tag       `json:"venue,omitempty" yaml:"venue,omitempty"`
	Collections   []Tag      `json:"collections,omitempty" yaml:"collections,omitempty"`
	TotalLikes    int        `json:"total_likes" yaml:"total_likes"`
	TotalRead     int        `json:"total_read" yaml:"total_read"`
	Relevance     float64    `json:"relevance" yaml:"relevance"`
	ArxivID       *string    `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`
	URL           *string    `json:"url,omitempty" yaml:"url,omitempty"`
	Year          *YearBadge `json:"year,omitempty" yaml:"year,omitempty"`
}

// VenueName returns the venue name or EmptySortKey.
func (p *Paper) VenueName() string {
	if p.Venue == nil {
		return EmptySortKey
	}
	return p.Venue.Name
}

// HasVenue reports whether the record carries a venue with a non-empty name.
func (p *Paper) HasVenue() bool {
	return p.Venue != nil && p.Venue.Name != ""
}

// FirstCollectionName returns the name of the first collection or EmptySortKey.
func (p *Paper) FirstCollectionName() string {
	if len(p.Collections) == 0 {
		return EmptySortKey
	}
	return p.Collections[0].Name
}

// InCollection reports whether any collection has exactly the given name.
func (p *Paper) InCollection(name string) bool {
	for _, c := range p.Collections {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (p *Paper) ArxivIDOrEmpty() string {
	if p.ArxivID == nil {
		return EmptySortKey
	}
	return *p.ArxivID
}

// Link resolves the external link: arXiv abstract page, then url, then MissingLinkTarget.
func (p *Paper) Link() string {
	if id := strings.TrimSpace(p.ArxivIDOrEmpty()); id != "" {
		return arxivAbsURL + id
	}
	if p.URL != nil && strings.TrimSpace(*p.URL) != "" {
		return *p.URL
	}
	return MissingLinkTarget
}

// Published returns the publication instant, if known.
func (p *Paper) Published() (time.Time, bool) {
	if p.PublishedDate == nil || p.PublishedDate.IsZero() {
		return time.Time{}, false
	}
	return p.PublishedDate.Time, true
}

// PublishedYear is the calendar year of the publication date in loc, as a decimal string.
func (p *Paper) PublishedYear(loc *time.Location) (string, bool) {
	t, ok := p.Published()
	if !ok {
		return "", false
	}
	if loc == nil {
		loc = time.Local
	}
	return fmt.Sprintf("%d", t.In(loc).Year()), true
}

// DateLabel formats the publication date as YYYY-MM-DD in loc, or MissingDateLabel.
func (p *Paper) DateLabel(loc *time.Location) string {
	t, ok := p.Published()
	if !ok {
		return MissingDateLabel
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("2006-01-02")
}

func (p *Paper) YearColor() string {
	if p.Year == nil || strings.TrimSpace(p.Year.Color) == "" {
		return DefaultYearColor
	}
	return p.Year.Color
}

// RelevanceLabel renders relevance as a percentage with one decimal.
func (p *Paper) RelevanceLabel() string {
	return fmt.Sprintf("%.1f%%", p.Relevance*100)
}

// Date is a publication date as it appears on the wire. Values that do not parse are
// treated as absent rather than failing the whole load.
type Date struct {
	time.Time
	Raw string
}

var dateLayouts = []struct {
	layout string
	local  bool
}{
	{time.RFC3339Nano, false},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02", false},
}

// ParseDate follows browser Date parsing for the shapes the data file uses: date-only
// values are UTC midnight, date-time values without an offset are local time.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, l := range dateLayouts {
		loc := time.UTC
		if l.local {
			loc = time.Local
		}
		if t, err := time.ParseInLocation(l.layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// Numbers and objects are kept verbatim and never parsed.
		d.Raw = string(b)
		return nil
	}
	d.Raw = s
	if t, ok := ParseDate(s); ok {
		d.Time = t
	}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Raw != "" {
		return json.Marshal(d.Raw)
	}
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(time.RFC3339))
}

func (d Date) MarshalYAML() (any, error) {
	if d.Raw != "" {
		return d.Raw, nil
	}
	if d.IsZero() {
		return nil, nil
	}
	return d.Format(time.RFC3339), nil
}
