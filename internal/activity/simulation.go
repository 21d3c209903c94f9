// Package activity holds the watching simulation: a stateful process that
// advances a movie-watch event across a group of users and the reviews it
// produces, keeping user, movie, and review state mutually consistent.
package activity

import (
	"github.com/cinelog/cinelog-backend/internal/domain"
)

var nextSimulationID = 1

// ResetSimulationIDs restarts simulation id assignment from 1. Used when
// loading a fresh simulations dataset and between isolated test runs; never
// during normal operation.
func ResetSimulationIDs() { nextSimulationID = 1 }

// WatchingSimulation coordinates one movie-watch event for a set of users.
// It moves through reachable configurations rather than a strict
// progression: formed (movie only), populated (users added), watched (the
// watch event fired), reviewed (valid reviews attached) — and users and
// reviews may keep changing after any of those points.
type WatchingSimulation struct {
	id      int
	movie   *domain.Movie
	users   []*domain.User
	reviews []*domain.Review
}

// NewWatchingSimulation creates a simulation for a movie, assigning the next
// sequential id. The movie may be nil; such a simulation never passes the
// repository gate.
func NewWatchingSimulation(movie *domain.Movie) *WatchingSimulation {
	s := &WatchingSimulation{id: nextSimulationID, movie: movie}
	nextSimulationID++
	return s
}

// ID returns the process-unique simulation id.
func (s *WatchingSimulation) ID() int { return s.id }

// Movie returns the movie being watched, nil for a malformed simulation.
func (s *WatchingSimulation) Movie() *domain.Movie { return s.movie }

// Users returns the participating users in insertion order.
func (s *WatchingSimulation) Users() []*domain.User {
	out := make([]*domain.User, len(s.users))
	copy(out, s.users)
	return out
}

// Reviews returns the reviews produced in this simulation, in insertion
// order.
func (s *WatchingSimulation) Reviews() []*domain.Review {
	out := make([]*domain.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

// HasUser reports whether a user with the same identity participates.
func (s *WatchingSimulation) HasUser(user *domain.User) bool {
	if user == nil {
		return false
	}
	for _, u := range s.users {
		if u.Equal(user) {
			return true
		}
	}
	return false
}

// HasReview reports whether this exact review object is attached.
func (s *WatchingSimulation) HasReview(review *domain.Review) bool {
	for _, r := range s.reviews {
		if r == review {
			return true
		}
	}
	return false
}

// AddUser registers a user. Nil, invalid, and already-present users are
// no-ops.
func (s *WatchingSimulation) AddUser(user *domain.User) bool {
	if user == nil || !user.IsValid() || s.HasUser(user) {
		return false
	}
	s.users = append(s.users, user)
	return true
}

// RemoveUser unregisters a user; absent users are a no-op.
func (s *WatchingSimulation) RemoveUser(user *domain.User) bool {
	if user == nil {
		return false
	}
	for i, u := range s.users {
		if u.Equal(user) {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}

// WatchMovie fires the watch event: every currently registered user records
// the movie as watched. The watched list stays duplicate-free, but each call
// re-accumulates the movie's runtime on every user's watch-time counter;
// firing twice counts the minutes twice.
func (s *WatchingSimulation) WatchMovie() {
	for _, u := range s.users {
		u.WatchMovie(s.movie)
	}
}

// AddUserReview attaches a review written by a participating user. The user
// must be registered, the review unowned or already owned by exactly this
// user, the review's movie identical to the simulation's movie, and the
// movie already in the user's watched list. On success the review is linked
// through User.AddReview; it joins the simulation's review set only if it
// then actually appears in both the user's and the movie's review lists — a
// review failing that deeper invariant is dropped without error.
func (s *WatchingSimulation) AddUserReview(user *domain.User, review *domain.Review) bool {
	if user == nil || review == nil || !s.HasUser(user) {
		return false
	}
	if review.User() != nil && review.User() != user {
		return false
	}
	if review.Movie() != s.movie || !user.HasWatched(s.movie) {
		return false
	}

	user.AddReview(review)

	if user.HasReview(review) && s.movie.HasReview(review) && !s.HasReview(review) {
		s.reviews = append(s.reviews, review)
		return true
	}
	return false
}

// RemoveUserReview detaches a review from the simulation and cascades the
// removal to the owning user (and, through it, the movie). Absent reviews
// are a no-op.
func (s *WatchingSimulation) RemoveUserReview(review *domain.Review) bool {
	for i, r := range s.reviews {
		if r == review {
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			if review.User() != nil {
				review.User().RemoveReview(review)
			}
			return true
		}
	}
	return false
}

func (s *WatchingSimulation) String() string {
	title := ""
	if s.movie != nil {
		title = s.movie.Title()
	}
	return "<WatchingSimulation " + title + ">"
}
