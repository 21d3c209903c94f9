// Package catalog implements read-side browsing and filtering of the movie
// catalogue.
package catalog

import (
	"log/slog"
	"sync"

	"github.com/cinelog/cinelog-backend/internal/domain"
)

// movieRepo defines the repository surface needed by the catalog service.
type movieRepo interface {
	Movies() []*domain.Movie
	GetMovie(title string, releaseYear int) *domain.Movie
	GetMovieByRank(rank int) *domain.Movie
	GetMoviesByRank(ranks []int) []*domain.Movie
	GetMoviesByReleaseYear(year int) []*domain.Movie
	GetMoviesByDirector(director *domain.Director) []*domain.Movie
	GetMoviesByActors(actors []*domain.Actor) []*domain.Movie
	GetMoviesByGenres(genres []*domain.Genre) []*domain.Movie
	GetActorsByColleagues(colleagues []*domain.Actor) []*domain.Actor
	GetReviewsForMovie(movie *domain.Movie) []*domain.Review
	Genres() []*domain.Genre
	MostCommonActors(quantity int) ([]*domain.Actor, error)
	MostCommonDirectors(quantity int) ([]*domain.Director, error)
	MostCommonGenres(quantity int) ([]*domain.Genre, error)
}

// Service implements catalog queries. All operations are reads and take the
// shared repository lock in read mode.
type Service struct {
	log    *slog.Logger
	movies movieRepo
	mu     *sync.RWMutex
}

// NewService creates a new catalog service instance. mu is the process-wide
// repository lock shared with the other services.
func NewService(logger *slog.Logger, movies movieRepo, mu *sync.RWMutex) *Service {
	return &Service{
		log:    logger.With("service", "catalog"),
		movies: movies,
		mu:     mu,
	}
}
