package ingest

import (
	"errors"
	"log/slog"

	"github.com/cinelog/cinelog-backend/internal/adapter/memory"
	"github.com/cinelog/cinelog-backend/internal/domain"
)

// Paths names the dataset files to load. An empty path skips that dataset.
type Paths struct {
	Movies      string
	Users       string
	Reviews     string
	Watchlists  string
	Simulations string
}

// Loader reads the dataset files in dependency order and commits the linked
// graph through the repository. Rows the repository rejects are logged and
// skipped, so a malformed upstream row costs that row, not the load. A
// dataset file that cannot be read aborts that dataset and every dataset
// depending on it, but not the ones that do not.
type Loader struct {
	repo  *memory.Repository
	log   *slog.Logger
	paths Paths
}

func NewLoader(repo *memory.Repository, log *slog.Logger, paths Paths) *Loader {
	return &Loader{repo: repo, log: log, paths: paths}
}

// Populate loads movies, users, reviews, watchlists and simulations, in
// that order. It returns the joined read errors of the datasets that
// failed; a nil return means every configured dataset loaded.
func (l *Loader) Populate() error {
	ds, err := ReadMovies(l.paths.Movies)
	if err != nil {
		return err
	}

	for _, actor := range ds.Actors {
		l.add("actor", l.repo.AddActor(actor))
	}
	for _, director := range ds.Directors {
		l.add("director", l.repo.AddDirector(director))
	}
	for _, genre := range ds.Genres {
		l.add("genre", l.repo.AddGenre(genre))
	}
	moviesByRank := make(map[int]*domain.Movie, len(ds.Movies))
	for _, movie := range ds.Movies {
		l.add("movie", l.repo.AddMovie(movie))
		if movie.Rank() > 0 {
			moviesByRank[movie.Rank()] = movie
		}
	}
	l.log.Info("movie dataset loaded",
		slog.Int("movies", len(ds.Movies)),
		slog.Int("actors", len(ds.Actors)),
		slog.Int("directors", len(ds.Directors)),
		slog.Int("genres", len(ds.Genres)))

	if l.paths.Users == "" {
		return nil
	}
	users, err := ReadUsers(l.paths.Users, moviesByRank)
	if err != nil {
		return err
	}
	usersByID := make(map[int]*domain.User, len(users))
	for _, user := range users {
		l.add("user", l.repo.AddUser(user))
		usersByID[user.ID()] = user
	}
	l.log.Info("user dataset loaded", slog.Int("users", len(users)))

	var errs []error
	reviewsFailed := false

	reviewsByID := map[int]*domain.Review{}
	if l.paths.Reviews != "" {
		reviews, err := ReadReviews(l.paths.Reviews, moviesByRank, usersByID)
		if err != nil {
			errs = append(errs, err)
			reviewsFailed = true
		} else {
			for _, review := range reviews {
				l.add("review", l.repo.AddReview(review))
				reviewsByID[review.ID()] = review
			}
			l.log.Info("review dataset loaded", slog.Int("reviews", len(reviews)))
		}
	}

	if l.paths.Watchlists != "" {
		watchlists, err := ReadWatchlists(l.paths.Watchlists, moviesByRank, usersByID)
		if err != nil {
			errs = append(errs, err)
		} else {
			for _, watchlist := range watchlists {
				l.add("watchlist", l.repo.AddWatchlist(watchlist))
			}
			l.log.Info("watchlist dataset loaded", slog.Int("watchlists", len(watchlists)))
		}
	}

	// Simulations reference reviews by id, so a failed review load takes
	// the simulation dataset down with it.
	if l.paths.Simulations != "" && !reviewsFailed {
		sims, err := ReadSimulations(l.paths.Simulations, moviesByRank, usersByID, reviewsByID)
		if err != nil {
			errs = append(errs, err)
		} else {
			for _, sim := range sims {
				l.add("simulation", l.repo.AddWatchingSim(sim))
			}
			l.log.Info("simulation dataset loaded", slog.Int("simulations", len(sims)))
		}
	}

	return errors.Join(errs...)
}

// add logs a rejected entity and moves on.
func (l *Loader) add(kind string, err error) {
	if err != nil {
		l.log.Warn("entity rejected", slog.String("kind", kind), slog.String("reason", err.Error()))
	}
}
