package activity

import (
	"context"
	"fmt"

	"github.com/cinelog/cinelog-backend/internal/domain"
)

// WriteReviewInput holds parameters for the write-review operation.
type WriteReviewInput struct {
	MovieRank int
	Text      string
	Rating    int
}

// Validate validates the write-review input. Ratings run from 1 to 10.
func (i WriteReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.MovieRank <= 0 {
		errs = append(errs, domain.FieldError{Field: "movie_rank", Message: "must be positive"})
	}
	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if i.Rating < 1 || i.Rating > 10 {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 10"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// WriteReview creates a review for the movie with the given rank, links it
// to the user, and commits it.
func (s *Service) WriteReview(ctx context.Context, userID int, input WriteReviewInput) (*domain.Review, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("activity.WriteReview validate: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.user(userID)
	if err != nil {
		return nil, fmt.Errorf("activity.WriteReview user %d: %w", userID, err)
	}
	movie, err := s.movie(input.MovieRank)
	if err != nil {
		return nil, fmt.Errorf("activity.WriteReview movie rank %d: %w", input.MovieRank, err)
	}

	review := domain.NewReview(movie, input.Text, input.Rating)
	if !user.AddReview(review) {
		return nil, fmt.Errorf("activity.WriteReview %q: %w",
			movie.Title(), domain.NewValidationError("review", "could not be linked"))
	}
	if err := s.repo.AddReview(review); err != nil {
		return nil, fmt.Errorf("activity.WriteReview commit: %w", err)
	}

	s.log.InfoContext(ctx, "review written",
		"user_id", userID, "movie", movie.Title(), "review_id", review.ID())
	return review, nil
}
