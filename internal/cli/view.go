package cli

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"paperboard/internal/board"
	"paperboard/internal/store"
)

// viewFlags reproduce the interactive table's controls on the command line.
type viewFlags struct {
	search     string
	collection string
	year       string
	venue      string
	tag        string
	sort       string
}

func (f *viewFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.search, "search", "", "Case-insensitive substring of title or authors")
	cmd.Flags().StringVar(&f.collection, "collection", "", "Collection dropdown value (pins the collection)")
	cmd.Flags().StringVar(&f.year, "year", "", "Publication year")
	cmd.Flags().StringVar(&f.venue, "venue", "", "Pin a venue (clears any collection pin)")
	cmd.Flags().StringVar(&f.tag, "tag", "", "Pin a collection")
	cmd.Flags().StringVar(&f.sort, "sort", "", "Sort as column[:asc|desc] (default year:desc; none keeps file order)")
}

// events translates the flags into the table's user events, in the order a user would
// produce them: search, dropdowns, then pins.
func (f *viewFlags) events() []board.Event {
	var evs []board.Event
	if f.search != "" {
		evs = append(evs, board.SearchChanged{Text: f.search})
	}
	if f.collection != "" {
		evs = append(evs, board.DropdownChanged{Kind: board.DropdownCollection, Value: f.collection})
	}
	if f.year != "" {
		evs = append(evs, board.DropdownChanged{Kind: board.DropdownYear, Value: f.year})
	}
	if f.tag != "" {
		evs = append(evs, board.TagClicked{Kind: board.PinCollection, Value: f.tag})
	}
	if f.venue != "" {
		evs = append(evs, board.TagClicked{Kind: board.PinVenue, Value: f.venue})
	}
	return evs
}

// parseSortFlag parses column[:dir]. A bare column sorts ascending; "none" keeps the
// filtered order.
func parseSortFlag(s string) (board.SortSpec, error) {
	name, dir, hasDir := strings.Cut(strings.TrimSpace(s), ":")
	if strings.EqualFold(strings.TrimSpace(name), "none") {
		return board.SortSpec{}, nil
	}
	col, ok := board.ParseColumn(name)
	if !ok {
		return board.SortSpec{}, unknownColumnError{name: name}
	}
	d := board.Ascending
	if hasDir {
		d, ok = board.ParseDirection(dir)
		if !ok || d == board.DirectionNone {
			return board.SortSpec{}, unknownDirectionError{name: dir}
		}
	}
	return board.SortSpec{Column: col, Direction: d}, nil
}

// loadView loads the records and replays the flags against a fresh table state.
func loadView(cmd *cobra.Command, app *App, f *viewFlags) (board.State, error) {
	settings, err := app.settings()
	if err != nil {
		return board.State{}, err
	}
	if strings.TrimSpace(f.sort) != "" {
		spec, err := parseSortFlag(f.sort)
		if err != nil {
			return board.State{}, err
		}
		settings.Sort = &spec
	}

	recs, err := store.Load(cmd.Context(), app.cfg.Data)
	if err != nil {
		return board.State{}, err
	}
	st := board.NewState(recs.All(), settings)
	for _, ev := range f.events() {
		st, _ = board.Reduce(st, ev)
	}
	slog.Debug("view built", "records", recs.Len(), "visible", st.VisibleLen(), "sort", st.Sort().String())
	return st, nil
}

func viewMeta(st board.State) map[string]any {
	return map[string]any{
		"count":                st.Stats().Count,
		"distinct_collections": st.Stats().DistinctCollections,
		"sort":                 st.Sort().String(),
		"filters":              st.Badges(),
	}
}
