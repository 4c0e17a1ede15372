package songs

import "strings"

// AllCategories is the category value that disables category filtering.
const AllCategories = "All"

// Categories lists the capsules shown above the song list, in display order.
var Categories = []string{
	AllCategories,
	"Salvation",
	"Warfare",
	"Praise",
	"Prayer",
	"Christmas",
	"Heaven",
	"Identity",
}

// Filter returns the songs matching both searchText and category, in their
// original order. The input is never modified.
//
// The id is matched case-sensitively; both titles ignore case.
func Filter(songs []Song, searchText, category string) []Song {
	needle := strings.ToLower(searchText)
	out := make([]Song, 0, len(songs))
	for _, s := range songs {
		if !matchesCategory(s, category) {
			continue
		}
		if !matchesSearch(s, searchText, needle) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesCategory(s Song, category string) bool {
	return category == AllCategories || s.Category == category
}

func matchesSearch(s Song, raw, lowered string) bool {
	if raw == "" {
		return true
	}
	return strings.Contains(s.ID, raw) ||
		strings.Contains(strings.ToLower(s.Title), lowered) ||
		strings.Contains(strings.ToLower(s.AltTitle), lowered)
}
