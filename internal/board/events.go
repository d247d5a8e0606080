package board

// Event is a user intent. The set is closed: only the types in this file implement it.
type Event interface {
	isEvent()
}

type DropdownKind int

const (
	DropdownCollection DropdownKind = iota
	DropdownYear
)

func (k DropdownKind) String() string {
	if k == DropdownYear {
		return "year"
	}
	return "collection"
}

// SearchChanged fires on every keystroke in the search field.
type SearchChanged struct{ Text string }

// DropdownChanged selects a value ("" = all) in the collection or year dropdown.
type DropdownChanged struct {
	Kind  DropdownKind
	Value string
}

// TagClicked pins the venue or collection of a rendered tag.
type TagClicked struct {
	Kind  PinKind
	Value string
}

// BadgeRemoved clears one active pin.
type BadgeRemoved struct{ Kind PinKind }

// HeaderClicked activates the sort cycle of a header by index.
type HeaderClicked struct{ Index int }

type DragStarted struct{ Index, X int }

type DragMoved struct{ X int }

type DragEnded struct{}

func (SearchChanged) isEvent()   {}
func (DropdownChanged) isEvent() {}
func (TagClicked) isEvent()      {}
func (BadgeRemoved) isEvent()    {}
func (HeaderClicked) isEvent()   {}
func (DragStarted) isEvent()     {}
func (DragMoved) isEvent()       {}
func (DragEnded) isEvent()       {}

// Change flags the outputs a transition invalidated.
type Change uint8

const (
	ChangeRows Change = 1 << iota
	ChangeStats
	ChangeBadges
	ChangeSortIndicators
	ChangeWidths

	ChangeNone Change = 0
	ChangeAll         = ChangeRows | ChangeStats | ChangeBadges | ChangeSortIndicators | ChangeWidths
)

func (c Change) Has(f Change) bool { return c&f != 0 }
