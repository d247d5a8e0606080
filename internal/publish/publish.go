package publish

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"paperboard/internal/board"
	"paperboard/internal/model"
)

type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html":
		return FormatHTML, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown export format: %s", s)
}

type WriteOptions struct {
	Format    Format
	Overwrite bool
	Title     string
}

type WriteResult struct {
	Written string `json:"written" yaml:"written"`
	Rows    int    `json:"rows" yaml:"rows"`
}

// Snapshot is a board.Renderer that keeps the last pushed outputs, so an export renders
// exactly what an interactive view would show.
type Snapshot struct {
	Rows     []*model.Paper
	Stats    board.Stats
	Badges   []board.Badge
	Sort     board.SortSpec
	Widths   board.Widths
	Location *time.Location
}

// Capture renders state once into a Snapshot.
func Capture(state board.State) *Snapshot {
	snap := &Snapshot{Location: state.Location()}
	board.NewSession(state, snap)
	return snap
}

func (s *Snapshot) RenderRows(rows []*model.Paper)        { s.Rows = rows }
func (s *Snapshot) RenderStats(st board.Stats)            { s.Stats = st }
func (s *Snapshot) RenderBadges(b []board.Badge)          { s.Badges = b }
func (s *Snapshot) RenderSortIndicators(sp board.SortSpec) { s.Sort = sp }
func (s *Snapshot) RenderWidths(w board.Widths)           { s.Widths = w }

// Render writes the snapshot in the requested format.
func Render(w io.Writer, snap *Snapshot, opt WriteOptions) error {
	if snap == nil {
		return errors.New("missing snapshot")
	}
	switch opt.Format {
	case FormatMarkdown:
		_, err := io.WriteString(w, RenderTableMarkdown(snap, opt.Title))
		return err
	case FormatHTML, "":
		return RenderHTML(w, snap, opt.Title)
	default:
		return fmt.Errorf("unknown export format: %s", opt.Format)
	}
}

// WriteFile renders the snapshot to path.
func WriteFile(snap *Snapshot, path string, opt WriteOptions) (WriteResult, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return WriteResult{}, errors.New("missing --out")
	}
	path = filepath.Clean(path)

	var buf bytes.Buffer
	if err := Render(&buf, snap, opt); err != nil {
		return WriteResult{}, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return WriteResult{}, err
		}
	}
	if err := writeFile(path, buf.Bytes(), opt.Overwrite); err != nil {
		return WriteResult{}, err
	}
	return WriteResult{Written: path, Rows: len(snap.Rows)}, nil
}

func writeFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
