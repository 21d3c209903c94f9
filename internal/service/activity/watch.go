package activity

import (
	"context"
	"fmt"

	"github.com/cinelog/cinelog-backend/internal/domain"
)

// WatchMovie records that the user watched the movie with the given rank.
// Watching the same movie again keeps the watched list duplicate-free but
// accumulates its runtime on the user's watch-time counter a second time.
func (s *Service) WatchMovie(ctx context.Context, userID, rank int) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.user(userID)
	if err != nil {
		return nil, fmt.Errorf("activity.WatchMovie user %d: %w", userID, err)
	}
	movie, err := s.movie(rank)
	if err != nil {
		return nil, fmt.Errorf("activity.WatchMovie movie rank %d: %w", rank, err)
	}

	if !user.WatchMovie(movie) {
		// A committed movie can still lack a runtime; it cannot be watched.
		return nil, fmt.Errorf("activity.WatchMovie %q: %w",
			movie.Title(), domain.NewValidationError("movie", "has no runtime"))
	}

	s.log.InfoContext(ctx, "movie watched",
		"user_id", userID, "movie", movie.Title(),
		"time_watched_minutes", user.TimeSpentWatchingMinutes())
	return user, nil
}

// WatchersOfMovie returns the users that have the movie with the given rank
// in their watched list.
func (s *Service) WatchersOfMovie(ctx context.Context, rank int) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movie, err := s.movie(rank)
	if err != nil {
		return nil, fmt.Errorf("activity.WatchersOfMovie movie rank %d: %w", rank, err)
	}
	return s.repo.GetUsersWatchedMovie(movie), nil
}
