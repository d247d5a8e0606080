package model

import (
	"encoding/json"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestPaper_Fallbacks(t *testing.T) {
	t.Parallel()

	p := &Paper{Title: "Bare"}
	if got := p.VenueName(); got != EmptySortKey {
		t.Fatalf("VenueName: got %q", got)
	}
	if got := p.FirstCollectionName(); got != EmptySortKey {
		t.Fatalf("FirstCollectionName: got %q", got)
	}
	if got := p.Link(); got != MissingLinkTarget {
		t.Fatalf("Link: got %q want %q", got, MissingLinkTarget)
	}
	if got := p.DateLabel(time.UTC); got != MissingDateLabel {
		t.Fatalf("DateLabel: got %q want %q", got, MissingDateLabel)
	}
	if _, ok := p.PublishedYear(time.UTC); ok {
		t.Fatalf("PublishedYear: expected absent")
	}
	if got := p.YearColor(); got != DefaultYearColor {
		t.Fatalf("YearColor: got %q", got)
	}
}

func TestPaper_Link(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		paper Paper
		want  string
	}{
		{"arxiv wins", Paper{ArxivID: strPtr("2401.00001"), URL: strPtr("https://x.test")}, "https://arxiv.org/abs/2401.00001"},
		{"url fallback", Paper{URL: strPtr("https://x.test/p")}, "https://x.test/p"},
		{"blank arxiv falls through", Paper{ArxivID: strPtr(" "), URL: strPtr("https://x.test/p")}, "https://x.test/p"},
		{"nothing", Paper{}, "#"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.paper.Link(); got != tt.want {
				t.Fatalf("Link: got %q want %q", got, tt.want)
			}
		})
	}
}

func TestPaper_UnmarshalWireShape(t *testing.T) {
	t.Parallel()

	raw := `{
		"title": "Alpha",
		"authors": "Ada Lovelace and Alan Turing",
		"published_date": "2023-01-01",
		"venue": {"name": "NeurIPS", "color": "#fff"},
		"collections": [{"name": "agents", "color": "#eee"}],
		"total_likes": 3,
		"total_read": 7,
		"relevance": 0.125,
		"arxiv_id": "2301.00001"
	}`
	var p Paper
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p.VenueName() != "NeurIPS" || p.FirstCollectionName() != "agents" {
		t.Fatalf("tags: %#v %#v", p.Venue, p.Collections)
	}
	if y, ok := p.PublishedYear(time.UTC); !ok || y != "2023" {
		t.Fatalf("PublishedYear: got %q ok=%v", y, ok)
	}
	if got := p.RelevanceLabel(); got != "12.5%" {
		t.Fatalf("RelevanceLabel: got %q", got)
	}
	if p.URL != nil {
		t.Fatalf("absent url must stay absent")
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	if got, ok := ParseDate("2024-03-05"); !ok || !got.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date-only: got %v ok=%v", got, ok)
	}
	if got, ok := ParseDate("2024-03-05T10:00:00Z"); !ok || got.Hour() != 10 {
		t.Fatalf("rfc3339: got %v ok=%v", got, ok)
	}
	if _, ok := ParseDate("soon"); ok {
		t.Fatalf("garbage must not parse")
	}

	var p Paper
	if err := json.Unmarshal([]byte(`{"title":"x","published_date":"soon"}`), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := p.Published(); ok {
		t.Fatalf("unparseable date must be treated as absent")
	}
}
