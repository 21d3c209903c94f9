package memory

import (
	"sort"

	"github.com/cinelog/cinelog-backend/internal/domain"
)

// MostCommonDirectors returns up to quantity directors ranked by how many
// stored movies they directed, most common first; ties keep insertion
// order. A non-positive quantity is rejected.
func (r *Repository) MostCommonDirectors(quantity int) ([]*domain.Director, error) {
	if quantity <= 0 {
		return nil, invariant("quantity must be positive, got %d", quantity)
	}
	counts := make([]int, len(r.directors))
	for i, d := range r.directors {
		for _, m := range r.movies {
			if m.Director().Equal(d) {
				counts[i]++
			}
		}
	}
	return truncateByCount(r.directors, counts, quantity), nil
}

// MostCommonActors returns up to quantity actors ranked by how many stored
// movies they appear in, most common first; ties keep insertion order. A
// non-positive quantity is rejected.
func (r *Repository) MostCommonActors(quantity int) ([]*domain.Actor, error) {
	if quantity <= 0 {
		return nil, invariant("quantity must be positive, got %d", quantity)
	}
	counts := make([]int, len(r.actors))
	for i, a := range r.actors {
		for _, m := range r.movies {
			if m.HasActor(a) {
				counts[i]++
			}
		}
	}
	return truncateByCount(r.actors, counts, quantity), nil
}

// MostCommonGenres returns up to quantity genres ranked by how many stored
// movies carry them, most common first; ties keep insertion order. A
// non-positive quantity is rejected.
func (r *Repository) MostCommonGenres(quantity int) ([]*domain.Genre, error) {
	if quantity <= 0 {
		return nil, invariant("quantity must be positive, got %d", quantity)
	}
	counts := make([]int, len(r.genres))
	for i, g := range r.genres {
		for _, m := range r.movies {
			if m.HasGenre(g) {
				counts[i]++
			}
		}
	}
	return truncateByCount(r.genres, counts, quantity), nil
}

// truncateByCount orders entities by descending count, stable on ties, and
// truncates to quantity.
func truncateByCount[T any](entities []T, counts []int, quantity int) []T {
	idx := make([]int, len(entities))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return counts[idx[a]] > counts[idx[b]]
	})
	if quantity > len(idx) {
		quantity = len(idx)
	}
	out := make([]T, 0, quantity)
	for _, i := range idx[:quantity] {
		out = append(out, entities[i])
	}
	return out
}
