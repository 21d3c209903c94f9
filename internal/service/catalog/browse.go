package catalog

import (
	"context"
	"fmt"

	"github.com/cinelog/cinelog-backend/internal/domain"
)

// ListMovies returns every movie in the catalogue, in ingestion order.
func (s *Service) ListMovies(ctx context.Context) []*domain.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movies.Movies()
}

// GetMovie returns the movie with the given title and release year.
// Returns ErrNotFound when no such movie exists.
func (s *Service) GetMovie(ctx context.Context, title string, releaseYear int) (*domain.Movie, error) {
	s.mu.RLock()
	movie := s.movies.GetMovie(title, releaseYear)
	s.mu.RUnlock()

	if movie == nil {
		return nil, fmt.Errorf("catalog.GetMovie %q (%d): %w", title, releaseYear, domain.ErrNotFound)
	}
	return movie, nil
}

// GetMovieByRank returns the movie with the given external rank.
// Returns ErrNotFound when no such movie exists.
func (s *Service) GetMovieByRank(ctx context.Context, rank int) (*domain.Movie, error) {
	s.mu.RLock()
	movie := s.movies.GetMovieByRank(rank)
	s.mu.RUnlock()

	if movie == nil {
		return nil, fmt.Errorf("catalog.GetMovieByRank %d: %w", rank, domain.ErrNotFound)
	}
	return movie, nil
}

// GetMoviesByRank returns the movies for the given ranks, in request order;
// unknown ranks are skipped.
func (s *Service) GetMoviesByRank(ctx context.Context, ranks []int) []*domain.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movies.GetMoviesByRank(ranks)
}

// ListGenres returns every genre seen in the catalogue.
func (s *Service) ListGenres(ctx context.Context) []*domain.Genre {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movies.Genres()
}

// MovieReviews returns the reviews written for the identified movie.
// Returns ErrNotFound when the movie is not in the catalogue.
func (s *Service) MovieReviews(ctx context.Context, title string, releaseYear int) ([]*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movie := s.movies.GetMovie(title, releaseYear)
	if movie == nil {
		return nil, fmt.Errorf("catalog.MovieReviews %q (%d): %w", title, releaseYear, domain.ErrNotFound)
	}
	return s.movies.GetReviewsForMovie(movie), nil
}
