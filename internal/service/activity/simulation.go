package activity

import (
	"context"
	"fmt"

	watching "github.com/cinelog/cinelog-backend/internal/activity"
	"github.com/cinelog/cinelog-backend/internal/domain"
)

// RunSimulationInput holds parameters for the run-simulation operation.
// ReviewIDs name already-committed reviews to attach to the simulation.
type RunSimulationInput struct {
	MovieRank int
	UserIDs   []int
	ReviewIDs []int
}

// Validate validates the run-simulation input. A simulation with no users is
// allowed; it simply watches nothing.
func (i RunSimulationInput) Validate() error {
	if i.MovieRank <= 0 {
		return domain.NewValidationError("movie_rank", "must be positive")
	}
	return nil
}

// RunSimulation builds a watching simulation for the movie with the given
// rank, registers the users, fires the watch event, attaches the named
// reviews, and commits the result.
func (s *Service) RunSimulation(ctx context.Context, input RunSimulationInput) (*watching.WatchingSimulation, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("activity.RunSimulation validate: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	movie, err := s.movie(input.MovieRank)
	if err != nil {
		return nil, fmt.Errorf("activity.RunSimulation movie rank %d: %w", input.MovieRank, err)
	}

	sim := watching.NewWatchingSimulation(movie)
	for _, userID := range input.UserIDs {
		user, err := s.user(userID)
		if err != nil {
			return nil, fmt.Errorf("activity.RunSimulation user %d: %w", userID, err)
		}
		sim.AddUser(user)
	}

	sim.WatchMovie()

	for _, reviewID := range input.ReviewIDs {
		review := s.repo.GetReview(reviewID)
		if review == nil {
			return nil, fmt.Errorf("activity.RunSimulation review %d: %w", reviewID, domain.ErrNotFound)
		}
		sim.AddUserReview(review.User(), review)
	}

	if err := s.repo.AddWatchingSim(sim); err != nil {
		return nil, fmt.Errorf("activity.RunSimulation commit: %w", err)
	}

	s.log.InfoContext(ctx, "simulation run",
		"sim_id", sim.ID(), "movie", movie.Title(), "users", len(sim.Users()))
	return sim, nil
}

// GetSimulation returns the simulation with the given id. Returns
// ErrNotFound when absent.
func (s *Service) GetSimulation(ctx context.Context, id int) (*watching.WatchingSimulation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sim := s.repo.GetWatchingSim(id)
	if sim == nil {
		return nil, fmt.Errorf("activity.GetSimulation %d: %w", id, domain.ErrNotFound)
	}
	return sim, nil
}

// ListSimulations returns every committed simulation in commit order.
func (s *Service) ListSimulations(ctx context.Context) []*watching.WatchingSimulation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repo.WatchingSims()
}

// SimulationsForMovie returns the simulations watching the movie with the
// given rank.
func (s *Service) SimulationsForMovie(ctx context.Context, rank int) ([]*watching.WatchingSimulation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movie, err := s.movie(rank)
	if err != nil {
		return nil, fmt.Errorf("activity.SimulationsForMovie movie rank %d: %w", rank, err)
	}
	return s.repo.GetWatchingSimsForMovie(movie), nil
}

// SimulationsByUsers returns the simulations in which every one of the named
// users participates. Unknown user ids are dropped from the criteria; if
// none remain the result is empty.
func (s *Service) SimulationsByUsers(ctx context.Context, userIDs []int) []*watching.WatchingSimulation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domain.User, 0, len(userIDs))
	for _, id := range userIDs {
		if user := s.repo.GetUserByID(id); user != nil {
			users = append(users, user)
		}
	}
	return s.repo.GetWatchingSimsByUsers(users)
}

// SimulationsWithNoUsers returns the simulations nobody participates in.
func (s *Service) SimulationsWithNoUsers(ctx context.Context) []*watching.WatchingSimulation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repo.GetWatchingSimsWithNoUsers()
}
