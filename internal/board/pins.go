package board

import "strings"

// PinKind names a quick-filter activated by clicking a rendered tag.
type PinKind int

const (
	PinVenue PinKind = iota
	PinCollection
)

func (k PinKind) String() string {
	if k == PinCollection {
		return "collection"
	}
	return "venue"
}

func ParsePinKind(s string) (PinKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "venue":
		return PinVenue, true
	case "collection", "tag":
		return PinCollection, true
	}
	return PinVenue, false
}

// SetVenue pins a venue. Any collection pin, and the collection dropdown it drives, is
// cleared.
func (c Criteria) SetVenue(name string) Criteria {
	c.PinnedCollection = ""
	c.DropdownCollection = ""
	c.PinnedVenue = name
	return c
}

// SetCollection pins a collection and drives the collection dropdown to the same value.
func (c Criteria) SetCollection(name string) Criteria {
	c.PinnedVenue = ""
	c.PinnedCollection = name
	c.DropdownCollection = name
	return c
}

// Clear removes exactly the named pin. Clearing the collection pin also resets the dropdown.
func (c Criteria) Clear(kind PinKind) Criteria {
	switch kind {
	case PinVenue:
		c.PinnedVenue = ""
	case PinCollection:
		c.PinnedCollection = ""
		c.DropdownCollection = ""
	}
	return c
}

// Badge describes one active pin for display.
type Badge struct {
	Kind  PinKind `json:"-" yaml:"-"`
	Label string  `json:"label" yaml:"label"`
	Value string  `json:"value" yaml:"value"`
}

// Badges lists the active pins, venue first. Pins are exclusive, so at most one is returned
// in practice.
func (c Criteria) Badges() []Badge {
	var out []Badge
	if c.PinnedVenue != "" {
		out = append(out, Badge{Kind: PinVenue, Label: "Venue:", Value: c.PinnedVenue})
	}
	if c.PinnedCollection != "" {
		out = append(out, Badge{Kind: PinCollection, Label: "Tag:", Value: c.PinnedCollection})
	}
	return out
}
