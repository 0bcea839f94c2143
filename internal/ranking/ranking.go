// Package ranking orders public film listings. Popularity depends on
// derived like counts, so it works over a materialized candidate set
// rather than a store-level order-by.
package ranking

import (
	"sort"

	"github.com/Artser/ProStore/internal/models"
)

// Mode selects the listing order
type Mode string

const (
	Recent  Mode = "recent"
	Popular Mode = "popular"
)

// ParseMode maps a query parameter to a Mode, defaulting to Recent
func ParseMode(s string) Mode {
	if s == string(Popular) {
		return Popular
	}
	return Recent
}

// Sort orders films in place by the selected mode.
//
// Recent: created_at descending. Popular: likes_count descending with
// created_at descending as the tie-break, applied as a single stable
// pass with a two-key comparator so ties resolve deterministically.
func Sort(films []models.PublicFilm, mode Mode) {
	switch mode {
	case Popular:
		sort.SliceStable(films, func(i, j int) bool {
			if films[i].LikesCount != films[j].LikesCount {
				return films[i].LikesCount > films[j].LikesCount
			}
			return films[i].CreatedAt.After(films[j].CreatedAt)
		})
	default:
		sort.SliceStable(films, func(i, j int) bool {
			return films[i].CreatedAt.After(films[j].CreatedAt)
		})
	}
}
