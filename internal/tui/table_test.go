package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperboard/internal/board"
)

func newTestTable(t *testing.T) *tableView {
	t.Helper()
	setGlyphs(glyphSetUnicode)
	tv := newTableView(time.UTC)
	board.NewSession(board.NewState(testPapers(), testSettings()), tv)
	return tv
}

func TestTableView_HitColumn(t *testing.T) {
	tv := newTestTable(t)

	tests := []struct {
		x     int
		col   int
		onSep bool
	}{
		{0, 0, false},
		{47, 0, false},
		{48, 0, true},
		{49, 1, false},
		{65, 1, true},
		{66, 2, false},
		{90, 2, true},
		{104, 3, true},
		{105, 4, false},
		{138, 4, false},
		{139, -1, false},
		{-1, -1, false},
	}
	for _, tt := range tests {
		col, onSep := tv.hitColumn(tt.x)
		assert.Equalf(t, tt.col, col, "col at x=%d", tt.x)
		assert.Equalf(t, tt.onSep, onSep, "separator at x=%d", tt.x)
	}
}

func TestTableView_RowsFitWidths(t *testing.T) {
	tv := newTestTable(t)
	require.Len(t, tv.plain, 3)

	// Five cells plus four separators.
	want := 48 + 16 + 24 + 13 + 34 + 4
	for i, ln := range tv.plain {
		assert.Equalf(t, want, len([]rune(ln)), "row %d: %q", i, ln)
	}
	assert.Contains(t, tv.plain[0], "Toolformer · Schick · 1,200 likes · 3,400 reads…")
	assert.Contains(t, tv.plain[1], " Neurips ")
	assert.Contains(t, tv.plain[1], " 2017-06-12 ")
}

func TestTableView_TagSpans(t *testing.T) {
	tv := newTestTable(t)
	assert.Equal(t, []tagSpan{{0, 8, "agents"}, {9, 23, "transformers"}}, tv.tagSpans[0])

	ev, ok := tv.hitTag(0, tv.colStart(board.ColumnTag.Index())+3)
	require.True(t, ok)
	assert.Equal(t, board.TagClicked{Kind: board.PinCollection, Value: "agents"}, ev)

	// The gap between chips is not a tag.
	_, ok = tv.hitTag(0, tv.colStart(board.ColumnTag.Index())+8)
	assert.False(t, ok)

	// No venue on Toolformer.
	_, ok = tv.hitTag(0, tv.colStart(board.ColumnVenue.Index()))
	assert.False(t, ok)

	_, ok = tv.hitTag(7, 0)
	assert.False(t, ok)
}

func TestTableView_HeaderGlyphs(t *testing.T) {
	tv := newTestTable(t)
	assert.Equal(t, 4, strings.Count(tv.header, "▲"))
	assert.Equal(t, 1, strings.Count(tv.header, "▼"))

	setGlyphs(glyphSetASCII)
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })
	tv.RenderSortIndicators(board.SortSpec{Column: board.ColumnVenue, Direction: board.Ascending})
	assert.Equal(t, 5, strings.Count(tv.header, "^"))
	assert.NotContains(t, tv.header, "▲")
}

func TestTableView_BadgeSpans(t *testing.T) {
	tv := newTestTable(t)
	assert.Empty(t, tv.badgeLine)

	tv.RenderBadges([]board.Badge{{Kind: board.PinVenue, Label: "Venue:", Value: "neurips"}})
	// " Venue: Neurips " then "× ".
	require.Len(t, tv.badgeSpans, 1)
	assert.Equal(t, badgeSpan{start: 15, end: 18, kind: board.PinVenue}, tv.badgeSpans[0])
	assert.Contains(t, tv.badgeLine, "Venue: Neurips ×")

	kind, ok := tv.hitBadgeRemove(16)
	assert.True(t, ok)
	assert.Equal(t, board.PinVenue, kind)
	_, ok = tv.hitBadgeRemove(3)
	assert.False(t, ok)
}
