// Package memory implements the in-memory repository: the single gate every
// entity must pass before it is considered durably stored. Each add
// operation validates the entity's own shape, then the cross-entity
// invariants for its kind, and only then inserts; re-adding the same logical
// entity is a silent no-op. Collections are sets by identity but keep
// insertion order for deterministic iteration.
//
// The repository assumes a single logical writer at a time; the surrounding
// layer serializes access.
package memory

import (
	"errors"
	"fmt"

	"github.com/cinelog/cinelog-backend/internal/activity"
	"github.com/cinelog/cinelog-backend/internal/domain"
)

// ErrInvariant is wrapped by every gate rejection. The wrapping message
// carries the human-readable reason; repository state is unchanged on
// rejection.
var ErrInvariant = errors.New("repository invariant violation")

func invariant(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvariant)...)
}

// Repository holds the canonical collections of every entity kind, keyed by
// identity where identity is unique and by surrogate id where it is
// structurally assigned, with secondary indexes for numeric lookups.
type Repository struct {
	actors       []*domain.Actor
	actorsByName map[string]*domain.Actor

	directors       []*domain.Director
	directorsByName map[string]*domain.Director

	genres       []*domain.Genre
	genresByName map[string]*domain.Genre

	movies       []*domain.Movie
	moviesByKey  map[domain.MovieKey]*domain.Movie
	moviesByRank map[int]*domain.Movie

	reviews     []*domain.Review
	reviewsByID map[int]*domain.Review

	users       []*domain.User
	usersByName map[string]*domain.User
	usersByID   map[int]*domain.User

	watchlists       []*domain.WatchList
	watchlistsByID   map[int]*domain.WatchList
	watchlistsByUser map[int]*domain.WatchList

	sims     []*activity.WatchingSimulation
	simsByID map[int]*activity.WatchingSimulation
}

// New creates an empty repository. One instance is created at process start
// and passed explicitly to everything that needs it; there is no package
// global.
func New() *Repository {
	return &Repository{
		actorsByName:     make(map[string]*domain.Actor),
		directorsByName:  make(map[string]*domain.Director),
		genresByName:     make(map[string]*domain.Genre),
		moviesByKey:      make(map[domain.MovieKey]*domain.Movie),
		moviesByRank:     make(map[int]*domain.Movie),
		reviewsByID:      make(map[int]*domain.Review),
		usersByName:      make(map[string]*domain.User),
		usersByID:        make(map[int]*domain.User),
		watchlistsByID:   make(map[int]*domain.WatchList),
		watchlistsByUser: make(map[int]*domain.WatchList),
		simsByID:         make(map[int]*activity.WatchingSimulation),
	}
}
