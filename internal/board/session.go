package board

import (
	"fmt"
	"log/slog"

	"paperboard/internal/model"
)

// Renderer is the presentation side of the table. The core only hands it plain data.
type Renderer interface {
	RenderRows(rows []*model.Paper)
	RenderStats(stats Stats)
	RenderBadges(badges []Badge)
	RenderSortIndicators(spec SortSpec)
	RenderWidths(widths Widths)
}

// Session couples a State with a Renderer: each dispatched event runs one transition and
// pushes exactly the outputs it changed.
type Session struct {
	state    State
	renderer Renderer
}

// NewSession renders every output once for the initial state.
func NewSession(state State, r Renderer) *Session {
	s := &Session{state: state, renderer: r}
	s.render(ChangeAll)
	return s
}

func (s *Session) State() State { return s.state }

func (s *Session) Dispatch(ev Event) Change {
	var ch Change
	s.state, ch = Reduce(s.state, ev)
	if ch != ChangeNone {
		slog.Debug("board event",
			"event", fmt.Sprintf("%T", ev),
			"visible", s.state.VisibleLen(),
			"sort", s.state.Sort().String(),
		)
	}
	s.render(ch)
	return ch
}

func (s *Session) render(ch Change) {
	if s.renderer == nil {
		return
	}
	if ch.Has(ChangeRows) {
		s.renderer.RenderRows(s.state.Visible())
	}
	if ch.Has(ChangeStats) {
		s.renderer.RenderStats(s.state.Stats())
	}
	if ch.Has(ChangeBadges) {
		s.renderer.RenderBadges(s.state.Badges())
	}
	if ch.Has(ChangeSortIndicators) {
		s.renderer.RenderSortIndicators(s.state.Sort())
	}
	if ch.Has(ChangeWidths) {
		s.renderer.RenderWidths(s.state.Widths())
	}
}
