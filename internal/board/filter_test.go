package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperboard/internal/model"
)

func TestFilter_SearchTitleCaseInsensitive(t *testing.T) {
	got := Filter(scenarioStore(), Criteria{SearchText: "alpha"}, time.UTC)
	assert.Equal(t, []string{"Alpha"}, titlesOf(got))
}

func TestFilter_SearchMatchesAuthors(t *testing.T) {
	recs := []*model.Paper{
		newPaper("One", byAuthors("Grace Hopper")),
		newPaper("Two", byAuthors("Alan Turing")),
		newPaper("Three"),
	}
	got := Filter(recs, Criteria{SearchText: "HOPPER"}, time.UTC)
	assert.Equal(t, []string{"One"}, titlesOf(got))
}

func TestFilter_PinnedVenueIgnoresDropdownCollection(t *testing.T) {
	recs := []*model.Paper{
		newPaper("a", inVenue("NeurIPS")),
		newPaper("b", inVenue("ICML"), inCollections("agents")),
		newPaper("c", inCollections("agents")),
		newPaper("d", inVenue("neurips")),
	}
	c := Criteria{DropdownCollection: "agents", PinnedVenue: "NeurIPS"}
	got := Filter(recs, c, time.UTC)
	assert.Equal(t, []string{"a"}, titlesOf(got))
}

func TestFilter_DropdownCollectionExactName(t *testing.T) {
	recs := []*model.Paper{
		newPaper("a", inCollections("Agents")),
		newPaper("b", inCollections("misc", "agents")),
	}
	got := Filter(recs, Criteria{DropdownCollection: "agents"}, time.UTC)
	assert.Equal(t, []string{"b"}, titlesOf(got))
}

func TestFilter_PinnedCollectionDoesNotDoubleFilter(t *testing.T) {
	recs := []*model.Paper{
		newPaper("a", inCollections("agents")),
		newPaper("b", inCollections("rl")),
	}
	c := Criteria{}.SetCollection("agents")
	got := Filter(recs, c, time.UTC)
	assert.Equal(t, []string{"a"}, titlesOf(got))

	// The pin alone, without the dropdown it drives, selects nothing by itself.
	got = Filter(recs, Criteria{PinnedCollection: "agents"}, time.UTC)
	assert.Equal(t, []string{"a", "b"}, titlesOf(got))
}

func TestFilter_YearUsesLocation(t *testing.T) {
	recs := []*model.Paper{
		newPaper("new-years-eve", published("2023-01-01T02:00:00Z")),
		newPaper("undated"),
	}
	west := time.FixedZone("UTC-5", -5*3600)

	got := Filter(recs, Criteria{DropdownYear: "2022"}, west)
	assert.Equal(t, []string{"new-years-eve"}, titlesOf(got))

	got = Filter(recs, Criteria{DropdownYear: "2023"}, time.UTC)
	assert.Equal(t, []string{"new-years-eve"}, titlesOf(got))

	got = Filter(recs, Criteria{}, time.UTC)
	assert.Len(t, got, 2, "undated records pass when no year is selected")
}

func TestFilter_Idempotent(t *testing.T) {
	recs := []*model.Paper{
		newPaper("a", inCollections("x"), published("2021-06-01")),
		newPaper("b", inCollections("x"), published("2021-07-01")),
		newPaper("c", inCollections("y")),
	}
	c := Criteria{DropdownCollection: "x", DropdownYear: "2021"}
	first := Filter(recs, c, time.UTC)
	second := Filter(recs, c, time.UTC)
	require.Len(t, second, len(first))
	for i := range first {
		assert.Same(t, first[i], second[i])
	}
}

func TestFilter_DoesNotMutateStore(t *testing.T) {
	recs := scenarioStore()
	before := titlesOf(recs)
	_ = Filter(recs, Criteria{SearchText: "beta"}, time.UTC)
	assert.Equal(t, before, titlesOf(recs))
}
