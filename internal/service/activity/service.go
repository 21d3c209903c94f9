// Package activity implements user engagement with the catalogue: personal
// watchlists, watch events, reviews, and watching simulations.
package activity

import (
	"log/slog"
	"sync"

	watching "github.com/cinelog/cinelog-backend/internal/activity"
	"github.com/cinelog/cinelog-backend/internal/domain"
)

// activityRepo defines the repository surface needed by the activity service.
type activityRepo interface {
	GetUserByID(id int) *domain.User
	GetUsersWatchedMovie(movie *domain.Movie) []*domain.User
	GetMovieByRank(rank int) *domain.Movie
	AddWatchlist(watchlist *domain.WatchList) error
	AddReview(review *domain.Review) error
	GetReview(id int) *domain.Review
	AddWatchingSim(sim *watching.WatchingSimulation) error
	GetWatchingSim(id int) *watching.WatchingSimulation
	WatchingSims() []*watching.WatchingSimulation
	GetWatchingSimsForMovie(movie *domain.Movie) []*watching.WatchingSimulation
	GetWatchingSimsByUsers(users []*domain.User) []*watching.WatchingSimulation
	GetWatchingSimsWithNoUsers() []*watching.WatchingSimulation
}

// Service implements watchlist, watch, review, and simulation operations.
type Service struct {
	log  *slog.Logger
	repo activityRepo
	mu   *sync.RWMutex
}

// NewService creates a new activity service instance. mu is the process-wide
// repository lock shared with the other services.
func NewService(logger *slog.Logger, repo activityRepo, mu *sync.RWMutex) *Service {
	return &Service{
		log:  logger.With("service", "activity"),
		repo: repo,
		mu:   mu,
	}
}

// user resolves a user id under an already-held lock.
func (s *Service) user(userID int) (*domain.User, error) {
	user := s.repo.GetUserByID(userID)
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// movie resolves a movie rank under an already-held lock.
func (s *Service) movie(rank int) (*domain.Movie, error) {
	movie := s.repo.GetMovieByRank(rank)
	if movie == nil {
		return nil, domain.ErrNotFound
	}
	return movie, nil
}
