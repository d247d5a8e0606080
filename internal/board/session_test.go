package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paperboard/internal/model"
)

type recordingRenderer struct {
	calls  []string
	rows   []*model.Paper
	stats  Stats
	badges []Badge
	sort   SortSpec
	widths Widths
}

func (r *recordingRenderer) RenderRows(rows []*model.Paper) {
	r.calls = append(r.calls, "rows")
	r.rows = rows
}

func (r *recordingRenderer) RenderStats(s Stats) {
	r.calls = append(r.calls, "stats")
	r.stats = s
}

func (r *recordingRenderer) RenderBadges(b []Badge) {
	r.calls = append(r.calls, "badges")
	r.badges = b
}

func (r *recordingRenderer) RenderSortIndicators(s SortSpec) {
	r.calls = append(r.calls, "sort")
	r.sort = s
}

func (r *recordingRenderer) RenderWidths(w Widths) {
	r.calls = append(r.calls, "widths")
	r.widths = w
}

func TestSession_InitialRenderPushesEverything(t *testing.T) {
	r := &recordingRenderer{}
	NewSession(NewState(scenarioStore(), testSettings()), r)
	assert.Equal(t, []string{"rows", "stats", "badges", "sort", "widths"}, r.calls)
	assert.Equal(t, []string{"Beta", "Alpha"}, titlesOf(r.rows))
	assert.Equal(t, DefaultSort, r.sort)
}

func TestSession_PushesOnlyChangedOutputs(t *testing.T) {
	r := &recordingRenderer{}
	s := NewSession(NewState(scenarioStore(), testSettings()), r)

	r.calls = nil
	s.Dispatch(HeaderClicked{Index: 1})
	assert.Equal(t, []string{"rows", "sort"}, r.calls)

	r.calls = nil
	s.Dispatch(TagClicked{Kind: PinVenue, Value: "NeurIPS"})
	assert.Equal(t, []string{"rows", "stats", "badges"}, r.calls)
	assert.Empty(t, r.rows)
	assert.Equal(t, 0, r.stats.Count)

	r.calls = nil
	s.Dispatch(DragStarted{Index: 3, X: 0})
	s.Dispatch(DragMoved{X: 1})
	s.Dispatch(DragEnded{})
	assert.Equal(t, []string{"widths"}, r.calls)
	assert.Equal(t, Widths{48, 16, 24, 14, 33}, r.widths)
}

func TestSession_NilRenderer(t *testing.T) {
	s := NewSession(NewState(scenarioStore(), testSettings()), nil)
	ch := s.Dispatch(SearchChanged{Text: "zzz"})
	assert.True(t, ch.Has(ChangeRows))
	assert.Equal(t, 0, s.State().VisibleLen())
}
