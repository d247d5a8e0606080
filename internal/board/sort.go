package board

import (
	"slices"
	"strings"

	"paperboard/internal/model"
)

// Column identifies a sortable table column. Header indices 0..4 map to name, venue, tag,
// year and link.
type Column int

const (
	ColumnNone Column = iota
	ColumnName
	ColumnVenue
	ColumnTag
	ColumnYear
	ColumnLink
)

// ColumnCount is the number of table columns.
const ColumnCount = 5

var headerColumns = [ColumnCount]Column{ColumnName, ColumnVenue, ColumnTag, ColumnYear, ColumnLink}

var columnNames = map[Column]string{
	ColumnNone:  "none",
	ColumnName:  "name",
	ColumnVenue: "venue",
	ColumnTag:   "tag",
	ColumnYear:  "year",
	ColumnLink:  "link",
}

// ColumnAt maps a header index to its column.
func ColumnAt(index int) (Column, bool) {
	if index < 0 || index >= ColumnCount {
		return ColumnNone, false
	}
	return headerColumns[index], true
}

// Index is the header index of c, or -1 for ColumnNone.
func (c Column) Index() int {
	for i, hc := range headerColumns {
		if hc == c {
			return i
		}
	}
	return -1
}

func (c Column) String() string {
	if s, ok := columnNames[c]; ok {
		return s
	}
	return "none"
}

// ParseColumn maps a column name such as "year" to its Column, ignoring case.
func ParseColumn(s string) (Column, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range columnNames {
		if name == s {
			return c, true
		}
	}
	return ColumnNone, false
}

// Direction is the sort order of the active column.
type Direction int

const (
	DirectionNone Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "none"
	}
}

// ParseDirection accepts asc, desc and none; an empty string means none.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Ascending, true
	case "desc":
		return Descending, true
	case "none", "":
		return DirectionNone, true
	}
	return DirectionNone, false
}

// SortSpec is the column and direction governing display order. Column is ColumnNone
// exactly when Direction is DirectionNone.
type SortSpec struct {
	Column    Column
	Direction Direction
}

// DefaultSort shows the newest papers first.
var DefaultSort = SortSpec{Column: ColumnYear, Direction: Descending}

// Activate advances the tri-state cycle for a header activation: none -> asc -> desc ->
// none (column cleared). A different column always enters at asc.
func (s SortSpec) Activate(c Column) SortSpec {
	if c == ColumnNone {
		return s
	}
	if s.Column != c {
		return SortSpec{Column: c, Direction: Ascending}
	}
	switch s.Direction {
	case DirectionNone:
		return SortSpec{Column: c, Direction: Ascending}
	case Ascending:
		return SortSpec{Column: c, Direction: Descending}
	default:
		return SortSpec{}
	}
}

// Active reports whether c is the column currently driving the order.
func (s SortSpec) Active(c Column) bool {
	return s.Direction != DirectionNone && s.Column == c
}

func (s SortSpec) String() string {
	if s.Direction == DirectionNone {
		return "none"
	}
	return s.Column.String() + ":" + s.Direction.String()
}

// Sort returns a new, stably ordered slice. With no direction the input order is kept.
func Sort(records []*model.Paper, spec SortSpec) []*model.Paper {
	out := slices.Clone(records)
	if spec.Direction == DirectionNone || spec.Column == ColumnNone {
		return out
	}
	cmp := comparator(spec.Column)
	slices.SortStableFunc(out, func(a, b *model.Paper) int {
		c := cmp(a, b)
		if spec.Direction == Descending {
			return -c
		}
		return c
	})
	return out
}

func comparator(c Column) func(a, b *model.Paper) int {
	switch c {
	case ColumnName:
		return byKey(func(p *model.Paper) string { return strings.ToLower(p.Title) })
	case ColumnVenue:
		return byKey(func(p *model.Paper) string { return strings.ToLower(p.VenueName()) })
	case ColumnTag:
		return byKey(func(p *model.Paper) string { return strings.ToLower(p.FirstCollectionName()) })
	case ColumnLink:
		return byKey((*model.Paper).ArxivIDOrEmpty)
	case ColumnYear:
		return compareDates
	default:
		return func(a, b *model.Paper) int { return 0 }
	}
}

func byKey(key func(*model.Paper) string) func(a, b *model.Paper) int {
	return func(a, b *model.Paper) int { return strings.Compare(key(a), key(b)) }
}

// compareDates orders by publication instant; a missing date sorts before any real date.
func compareDates(a, b *model.Paper) int {
	ta, aok := a.Published()
	tb, bok := b.Published()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}
	return ta.Compare(tb)
}
