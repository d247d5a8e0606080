package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"paperboard/internal/board"
	"paperboard/internal/model"
)

func testPaper(title, authors, date, venue string, collections ...string) *model.Paper {
	p := &model.Paper{Title: title, Authors: authors, TotalLikes: 1200, TotalRead: 3400, Relevance: 0.5}
	if date != "" {
		t, _ := model.ParseDate(date)
		p.PublishedDate = &model.Date{Time: t, Raw: date}
	}
	if venue != "" {
		p.Venue = &model.Tag{Name: venue, Color: "#fde68a"}
	}
	for _, c := range collections {
		p.Collections = append(p.Collections, model.Tag{Name: c})
	}
	return p
}

// testPapers sorts newest first as: Toolformer, Attention, Deep Residual.
func testPapers() []*model.Paper {
	return []*model.Paper{
		testPaper("Attention Is All You Need", "Ashish Vaswani, Noam Shazeer", "2017-06-12", "neurips", "transformers"),
		testPaper("Deep Residual Learning", "Kaiming He and Xiangyu Zhang", "2016-12-10", "cvpr", "vision"),
		testPaper("Toolformer", "Timo Schick", "2023-02-09", "", "agents", "transformers"),
	}
}

func testSettings() board.Settings {
	return board.Settings{
		Location:  time.UTC,
		Widths:    board.Widths{48, 16, 24, 13, 34},
		MinWidths: board.Widths{30, 12, 14, 13, 11},
	}
}

func newTestModel(t *testing.T) appModel {
	t.Helper()
	setGlyphs(glyphSetUnicode)

	m := newAppModel(context.Background(), Options{
		Source:   "test.json",
		Settings: testSettings(),
		Load: func(context.Context, string) ([]*model.Paper, error) {
			return testPapers(), nil
		},
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 20})
	m = update(t, m, m.loadNow(t))
	return m
}

func (m appModel) loadNow(t *testing.T) tea.Msg {
	t.Helper()
	return loadPapers(m.ctx, m.opts)()
}

func update(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(appModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return am
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func visibleTitles(m appModel) []string {
	st := m.session.State()
	out := make([]string, 0, st.VisibleLen())
	for i := 0; i < st.VisibleLen(); i++ {
		out = append(out, st.VisibleAt(i).Title)
	}
	return out
}
