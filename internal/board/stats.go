package board

import "paperboard/internal/model"

// Stats summarises the filtered records.
type Stats struct {
	Count               int `json:"count" yaml:"count"`
	DistinctCollections int `json:"distinct_collections" yaml:"distinct_collections"`
}

// ComputeStats counts records and distinct collection names (exact match).
func ComputeStats(records []*model.Paper) Stats {
	names := map[string]struct{}{}
	for _, p := range records {
		for _, c := range p.Collections {
			names[c.Name] = struct{}{}
		}
	}
	return Stats{Count: len(records), DistinctCollections: len(names)}
}
