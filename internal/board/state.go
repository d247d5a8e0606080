// Package board is the paper table's view-state engine: filtering, sorting, quick-filter
// pins and column resizing, driven by a closed set of user events.
package board

import (
	"slices"
	"time"

	"paperboard/internal/model"
)

// Settings seed a new State.
type Settings struct {
	// Location decides which calendar year a publication date falls in. Nil means local.
	Location  *time.Location
	Widths    Widths
	MinWidths Widths
	// Sort overrides DefaultSort when non-nil.
	Sort *SortSpec
}

// State is the whole view state. Values are never shared mutably: every transition
// builds new derived slices, and records are only read.
type State struct {
	records  []*model.Paper
	loc      *time.Location
	criteria Criteria
	sort     SortSpec
	filtered []*model.Paper
	visible  []*model.Paper
	stats    Stats
	resizer  Resizer
}

// NewState runs the initial pass: no filters, default sort.
func NewState(records []*model.Paper, s Settings) State {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	st := State{
		records: slices.Clone(records),
		loc:     loc,
		sort:    DefaultSort,
		resizer: NewResizer(s.Widths, s.MinWidths),
	}
	if s.Sort != nil {
		st.sort = *s.Sort
	}
	st = st.refilter()
	return st
}

func (s State) Criteria() Criteria { return s.criteria }
func (s State) Sort() SortSpec { return s.sort }
func (s State) Stats() Stats { return s.stats }
func (s State) Badges() []Badge { return s.criteria.Badges() }
func (s State) Widths() Widths { return s.resizer.Widths() }
func (s State) Resizer() Resizer { return s.resizer }
func (s State) Location() *time.Location { return s.loc }
func (s State) Records() []*model.Paper { return slices.Clone(s.records) }
func (s State) Filtered() []*model.Paper { return slices.Clone(s.filtered) }
func (s State) Visible() []*model.Paper { return slices.Clone(s.visible) }
func (s State) Options() Options { return FilterOptions(s.records, s.loc) }
func (s State) Dragging() (int, bool) { return s.resizer.Dragging() }
func (s State) VisibleLen() int { return len(s.visible) }

// VisibleAt returns the i-th visible record, or nil.
func (s State) VisibleAt(i int) *model.Paper {
	if i < 0 || i >= len(s.visible) {
		return nil
	}
	return s.visible[i]
}

// refilter recomputes the filtered subset, its statistics, and the sorted view.
func (s State) refilter() State {
	s.filtered = Filter(s.records, s.criteria, s.loc)
	s.stats = ComputeStats(s.filtered)
	s.visible = Sort(s.filtered, s.sort)
	return s
}

// Reduce applies one event and reports which outputs need redrawing.
func Reduce(s State, ev Event) (State, Change) {
	switch ev := ev.(type) {
	case SearchChanged:
		s.criteria.SearchText = ev.Text
		return s.refilter(), ChangeRows | ChangeStats

	case DropdownChanged:
		switch ev.Kind {
		case DropdownYear:
			s.criteria.DropdownYear = ev.Value
			return s.refilter(), ChangeRows | ChangeStats
		default:
			if ev.Value != "" {
				s.criteria = s.criteria.SetCollection(ev.Value)
			} else {
				s.criteria = s.criteria.Clear(PinCollection)
			}
			return s.refilter(), ChangeRows | ChangeStats | ChangeBadges
		}

	case TagClicked:
		if ev.Kind == PinCollection {
			s.criteria = s.criteria.SetCollection(ev.Value)
		} else {
			s.criteria = s.criteria.SetVenue(ev.Value)
		}
		return s.refilter(), ChangeRows | ChangeStats | ChangeBadges

	case BadgeRemoved:
		s.criteria = s.criteria.Clear(ev.Kind)
		return s.refilter(), ChangeRows | ChangeStats | ChangeBadges

	case HeaderClicked:
		col, ok := ColumnAt(ev.Index)
		if !ok {
			return s, ChangeNone
		}
		s.sort = s.sort.Activate(col)
		s.visible = Sort(s.filtered, s.sort)
		return s, ChangeRows | ChangeSortIndicators

	case DragStarted:
		// A new press always replaces a gesture that never saw its release.
		s.resizer, _ = s.resizer.EndDrag()
		s.resizer, _ = s.resizer.BeginDrag(ev.Index, ev.X)
		return s, ChangeNone

	case DragMoved:
		var changed bool
		s.resizer, changed = s.resizer.OnDrag(ev.X)
		if changed {
			return s, ChangeWidths
		}
		return s, ChangeNone

	case DragEnded:
		s.resizer, _ = s.resizer.EndDrag()
		return s, ChangeNone
	}
	return s, ChangeNone
}
