package memory

import (
	"github.com/cinelog/cinelog-backend/internal/activity"
	"github.com/cinelog/cinelog-backend/internal/domain"
)

// AddWatchingSim commits a watching simulation. The gate requires the
// simulation's movie, every participating user, and every attached review to
// already be in the repository (reviews must be the stored objects, not
// copies), and forbids a review-bearing simulation with zero participants.
// A simulation with the same id already present is a silent no-op.
func (r *Repository) AddWatchingSim(sim *activity.WatchingSimulation) error {
	if sim == nil {
		return invariant("watching simulation is nil")
	}
	movie := sim.Movie()
	if movie == nil {
		return invariant("watching simulation has no movie")
	}
	if _, ok := r.moviesByKey[movie.Key()]; !ok {
		return invariant("watching simulation movie %q is not in the repository", movie.Title())
	}
	for _, u := range sim.Users() {
		if _, ok := r.usersByName[u.Username()]; !ok {
			return invariant("watching simulation user %q is not in the repository", u.Username())
		}
	}
	reviews := sim.Reviews()
	for _, rev := range reviews {
		if stored, ok := r.reviewsByID[rev.ID()]; !ok || stored != rev {
			return invariant("watching simulation review %d is not in the repository", rev.ID())
		}
	}
	if len(reviews) > 0 && len(sim.Users()) == 0 {
		return invariant("watching simulation holds reviews but has no users")
	}
	if _, ok := r.simsByID[sim.ID()]; ok {
		return nil
	}
	r.sims = append(r.sims, sim)
	r.simsByID[sim.ID()] = sim
	return nil
}

// GetWatchingSim returns the simulation with the given id, nil when absent.
func (r *Repository) GetWatchingSim(id int) *activity.WatchingSimulation {
	return r.simsByID[id]
}

// WatchingSims returns all simulations in insertion order.
func (r *Repository) WatchingSims() []*activity.WatchingSimulation {
	out := make([]*activity.WatchingSimulation, len(r.sims))
	copy(out, r.sims)
	return out
}

// GetWatchingSimsForMovie returns the simulations watching the given movie.
func (r *Repository) GetWatchingSimsForMovie(movie *domain.Movie) []*activity.WatchingSimulation {
	result := []*activity.WatchingSimulation{}
	if movie == nil {
		return result
	}
	for _, s := range r.sims {
		if s.Movie() != nil && s.Movie().Equal(movie) {
			result = append(result, s)
		}
	}
	return result
}

// GetWatchingSimsByUsers returns the simulations whose participant set
// contains every one of the given users. Users unknown to the repository
// are dropped from the criteria first; if none remain the result is
// immediately empty.
func (r *Repository) GetWatchingSimsByUsers(users []*domain.User) []*activity.WatchingSimulation {
	known := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if u == nil {
			continue
		}
		if repoUser, ok := r.usersByName[u.Username()]; ok {
			known = append(known, repoUser)
		}
	}

	result := []*activity.WatchingSimulation{}
	if len(known) == 0 {
		return result
	}

	for _, s := range r.sims {
		hasAll := true
		for _, u := range known {
			if !s.HasUser(u) {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, s)
		}
	}
	return result
}

// GetWatchingSimsWithNoUsers returns the simulations that currently have no
// participants.
func (r *Repository) GetWatchingSimsWithNoUsers() []*activity.WatchingSimulation {
	result := []*activity.WatchingSimulation{}
	for _, s := range r.sims {
		if len(s.Users()) == 0 {
			result = append(result, s)
		}
	}
	return result
}
