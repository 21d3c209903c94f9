package memory

import (
	"github.com/cinelog/cinelog-backend/internal/domain"
)

// AddReview commits a review. The gate requires the full bidirectional
// link: a user has claimed the review and lists it, and the reviewed movie
// lists it too. A review with the same id already present is a silent
// no-op; a new review failing the link invariant is rejected even if its
// content matches a stored one.
func (r *Repository) AddReview(review *domain.Review) error {
	if review == nil {
		return invariant("review is nil")
	}
	if review.User() == nil || !review.User().HasReview(review) {
		return invariant("review is not correctly linked to a user")
	}
	if review.Movie() == nil || !review.Movie().HasReview(review) {
		return invariant("review is not correctly linked to a movie")
	}
	if _, ok := r.reviewsByID[review.ID()]; ok {
		return nil
	}
	r.reviews = append(r.reviews, review)
	r.reviewsByID[review.ID()] = review
	return nil
}

// GetReview returns the review with the given id, nil when absent.
func (r *Repository) GetReview(id int) *domain.Review {
	return r.reviewsByID[id]
}

// Reviews returns all reviews in insertion order.
func (r *Repository) Reviews() []*domain.Review {
	out := make([]*domain.Review, len(r.reviews))
	copy(out, r.reviews)
	return out
}

// GetReviewsForMovie returns the reviews written for the given movie.
func (r *Repository) GetReviewsForMovie(movie *domain.Movie) []*domain.Review {
	result := []*domain.Review{}
	if movie == nil {
		return result
	}
	for _, review := range r.reviews {
		if review.Movie() != nil && review.Movie().Equal(movie) {
			result = append(result, review)
		}
	}
	return result
}
