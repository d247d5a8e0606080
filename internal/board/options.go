package board

import (
	"sort"
	"strconv"
	"time"

	"paperboard/internal/model"
)

// Options are the choices offered by the collection and year dropdowns.
type Options struct {
	Collections []string `json:"collections" yaml:"collections"`
	Years       []string `json:"years" yaml:"years"`
}

// FilterOptions collects collection names (ascending) and publication years (newest
// first) across records. Records without a date contribute no year.
func FilterOptions(records []*model.Paper, loc *time.Location) Options {
	names := map[string]struct{}{}
	years := map[int]struct{}{}
	for _, p := range records {
		for _, c := range p.Collections {
			names[c.Name] = struct{}{}
		}
		if t, ok := p.Published(); ok {
			if loc == nil {
				loc = time.Local
			}
			years[t.In(loc).Year()] = struct{}{}
		}
	}

	opts := Options{Collections: make([]string, 0, len(names)), Years: make([]string, 0, len(years))}
	for n := range names {
		opts.Collections = append(opts.Collections, n)
	}
	sort.Strings(opts.Collections)

	ys := make([]int, 0, len(years))
	for y := range years {
		ys = append(ys, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ys)))
	for _, y := range ys {
		opts.Years = append(opts.Years, strconv.Itoa(y))
	}
	return opts
}
