package board

// Widths holds one width per column, in the render adapter's unit (terminal cells).
type Widths [ColumnCount]int

// fallbackMinWidth applies to a column without a configured minimum.
const fallbackMinWidth = 5

type gesture struct {
	active         bool
	index          int
	startX         int
	startWidth     int
	nextStartWidth int
}

// Resizer couples a column with its right neighbour during a drag: whatever one gains the
// other loses, and a frame that would push either below its minimum is dropped.
type Resizer struct {
	widths Widths
	mins   Widths
	drag   gesture
}

// NewResizer starts from widths, raising any width that is below its minimum.
func NewResizer(widths, mins Widths) Resizer {
	r := Resizer{widths: widths, mins: mins}
	for i := range r.widths {
		if m := r.Min(i); r.widths[i] < m {
			r.widths[i] = m
		}
	}
	return r
}

// Widths returns the current column widths.
func (r Resizer) Widths() Widths { return r.widths }

// Min is the minimum width of column index, falling back when unset.
func (r Resizer) Min(index int) int {
	if index < 0 || index >= ColumnCount || r.mins[index] <= 0 {
		return fallbackMinWidth
	}
	return r.mins[index]
}

// Dragging reports the left column of the active gesture.
func (r Resizer) Dragging() (int, bool) {
	return r.drag.index, r.drag.active
}

// BeginDrag captures the starting widths of index and index+1. The last column has no
// right neighbour and cannot start a gesture.
func (r Resizer) BeginDrag(index, x int) (Resizer, bool) {
	if index < 0 || index >= ColumnCount-1 {
		return r, false
	}
	r.drag = gesture{
		active:         true,
		index:          index,
		startX:         x,
		startWidth:     r.widths[index],
		nextStartWidth: r.widths[index+1],
	}
	return r, true
}

// OnDrag applies the pointer position to the pair. It reports whether widths changed.
func (r Resizer) OnDrag(x int) (Resizer, bool) {
	if !r.drag.active {
		return r, false
	}
	delta := x - r.drag.startX
	i := r.drag.index
	newWidth := r.drag.startWidth + delta
	newNext := r.drag.nextStartWidth - delta
	if newWidth < r.Min(i) || newNext < r.Min(i+1) {
		return r, false
	}
	if r.widths[i] == newWidth && r.widths[i+1] == newNext {
		return r, false
	}
	r.widths[i] = newWidth
	r.widths[i+1] = newNext
	return r, true
}

// EndDrag releases the gesture. It reports whether a gesture was active.
func (r Resizer) EndDrag() (Resizer, bool) {
	was := r.drag.active
	r.drag = gesture{}
	return r, was
}
