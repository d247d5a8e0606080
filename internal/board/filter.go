package board

import (
	"strings"
	"time"

	"paperboard/internal/model"
)

// Criteria is everything that selects the visible subset. PinnedVenue and PinnedCollection
// are mutually exclusive; a pinned collection is expressed through DropdownCollection.
type Criteria struct {
	SearchText         string
	DropdownCollection string
	DropdownYear       string
	PinnedVenue        string
	PinnedCollection   string
}

// Matches reports whether p passes every active predicate.
func (c Criteria) Matches(p *model.Paper, loc *time.Location) bool {
	if c.SearchText != "" {
		q := strings.ToLower(c.SearchText)
		if !strings.Contains(strings.ToLower(p.Title), q) && !strings.Contains(strings.ToLower(p.Authors), q) {
			return false
		}
	}

	switch {
	case c.PinnedVenue != "":
		if !p.HasVenue() || p.VenueName() != c.PinnedVenue {
			return false
		}
	case c.DropdownCollection != "":
		if !p.InCollection(c.DropdownCollection) {
			return false
		}
	}

	if c.DropdownYear != "" {
		year, ok := p.PublishedYear(loc)
		if !ok || year != c.DropdownYear {
			return false
		}
	}
	return true
}

// Filter returns the records that match c, in store order. It never modifies records.
func Filter(records []*model.Paper, c Criteria, loc *time.Location) []*model.Paper {
	out := make([]*model.Paper, 0, len(records))
	for _, p := range records {
		if c.Matches(p, loc) {
			out = append(out, p)
		}
	}
	return out
}
