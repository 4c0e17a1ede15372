package songs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSongs() []Song {
	return []Song{
		{ID: "23", Title: "देव बरा", AltTitle: "God is Good", Category: "Praise"},
		{ID: "7", Title: "युद्धात चला", AltTitle: "Onward to Battle", Category: "Warfare"},
		{ID: "abc", Title: "नवीन", AltTitle: "New Song", Category: "Praise"},
		{ID: "230", Title: "प्रार्थना", AltTitle: "abc Prayer", Category: "Prayer"},
		{ID: "5", Title: "x", AltTitle: "Mystery", Category: "Uncharted"},
	}
}

func ids(songs []Song) []string {
	out := make([]string, len(songs))
	for i, s := range songs {
		out[i] = s.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		category string
		want     []string
	}{
		{"empty query returns everything in order", "", AllCategories, []string{"23", "7", "abc", "230", "5"}},
		{"id substring", "23", AllCategories, []string{"23", "230"}},
		{"english title ignores case", "ONWARD", AllCategories, []string{"7"}},
		{"marathi title", "देव", AllCategories, []string{"23"}},
		{"category only", "", "Praise", []string{"23", "abc"}},
		{"category and search", "23", "Prayer", []string{"230"}},
		{"unknown category matches exactly", "", "Uncharted", []string{"5"}},
		{"category not present", "", "Heaven", []string{}},
		{"category is case sensitive", "", "praise", []string{}},
		{"no match", "zzz", AllCategories, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(testSongs(), tt.search, tt.category)))
		})
	}
}

func TestFilter_IDIsCaseSensitiveTitlesAreNot(t *testing.T) {
	got := ids(Filter(testSongs(), "ABC", AllCategories))
	// "230" matches through its title "abc Prayer"; "abc" has no title match
	// and its id does not literally contain "ABC".
	assert.Equal(t, []string{"230"}, got)

	got = ids(Filter(testSongs(), "abc", AllCategories))
	assert.Equal(t, []string{"abc", "230"}, got)
}

func TestFilter_IsPureAndIdempotent(t *testing.T) {
	input := testSongs()
	before := ids(input)

	first := Filter(input, "a", "Praise")
	second := Filter(input, "a", "Praise")

	assert.Equal(t, first, second)
	assert.Equal(t, before, ids(input))
}

func TestFilter_ResultIsOrderedSubset(t *testing.T) {
	input := testSongs()
	got := Filter(input, "o", AllCategories)

	pos := -1
	for _, s := range got {
		idx := -1
		for i, in := range input {
			if in.ID == s.ID {
				idx = i
				break
			}
		}
		assert.Greater(t, idx, pos, "song %s out of order", s.ID)
		pos = idx
	}
}

func TestFilter_EmptyCatalog(t *testing.T) {
	assert.Empty(t, Filter(nil, "x", AllCategories))
	assert.Empty(t, Filter([]Song{}, "", AllCategories))
}

func TestFilter_EndToEnd(t *testing.T) {
	catalog := []Song{{
		ID: "23", Title: "देव बरा", AltTitle: "God is Good", Category: "Praise",
		Lyrics: "1.\nLine one\nChorus\nLine two",
	}}
	got := Filter(catalog, "23", AllCategories)
	assert.Equal(t, catalog, got)
}
