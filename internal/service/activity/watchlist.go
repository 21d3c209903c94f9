package activity

import (
	"context"
	"fmt"

	"github.com/cinelog/cinelog-backend/internal/domain"
)

// Watchlist returns the user's watchlist. Returns ErrNotFound for an unknown
// user.
func (s *Service) Watchlist(ctx context.Context, userID int) (*domain.WatchList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, err := s.user(userID)
	if err != nil {
		return nil, fmt.Errorf("activity.Watchlist user %d: %w", userID, err)
	}
	return user.Watchlist(), nil
}

// AddToWatchlist puts the movie with the given rank on the user's watchlist
// and commits the watchlist. Adding a movie already on the list is a no-op.
func (s *Service) AddToWatchlist(ctx context.Context, userID, rank int) (*domain.WatchList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.user(userID)
	if err != nil {
		return nil, fmt.Errorf("activity.AddToWatchlist user %d: %w", userID, err)
	}
	movie, err := s.movie(rank)
	if err != nil {
		return nil, fmt.Errorf("activity.AddToWatchlist movie rank %d: %w", rank, err)
	}

	watchlist := user.Watchlist()
	watchlist.AddMovie(movie)
	if err := s.repo.AddWatchlist(watchlist); err != nil {
		return nil, fmt.Errorf("activity.AddToWatchlist commit: %w", err)
	}

	s.log.InfoContext(ctx, "movie added to watchlist",
		"user_id", userID, "movie", movie.Title())
	return watchlist, nil
}

// RemoveFromWatchlist takes the movie with the given rank off the user's
// watchlist. Removing an absent movie is a no-op.
func (s *Service) RemoveFromWatchlist(ctx context.Context, userID, rank int) (*domain.WatchList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.user(userID)
	if err != nil {
		return nil, fmt.Errorf("activity.RemoveFromWatchlist user %d: %w", userID, err)
	}
	movie, err := s.movie(rank)
	if err != nil {
		return nil, fmt.Errorf("activity.RemoveFromWatchlist movie rank %d: %w", rank, err)
	}

	watchlist := user.Watchlist()
	watchlist.RemoveMovie(movie)
	return watchlist, nil
}

// NextInWatchlist advances the watchlist's forward-only cursor and returns
// the next movie. Returns ErrNotFound when the cursor is exhausted.
func (s *Service) NextInWatchlist(ctx context.Context, userID int) (*domain.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.user(userID)
	if err != nil {
		return nil, fmt.Errorf("activity.NextInWatchlist user %d: %w", userID, err)
	}

	movie, ok := user.Watchlist().Next()
	if !ok {
		return nil, fmt.Errorf("activity.NextInWatchlist user %d: watchlist exhausted: %w", userID, domain.ErrNotFound)
	}
	return movie, nil
}
