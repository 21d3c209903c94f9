package memory

import (
	"github.com/cinelog/cinelog-backend/internal/domain"
)

// AddActor commits an actor. Nil and invalid-identity actors are rejected;
// an actor with the same name already present is a silent no-op.
func (r *Repository) AddActor(actor *domain.Actor) error {
	if actor == nil || !actor.IsValid() {
		return invariant("actor has no valid identity")
	}
	if _, ok := r.actorsByName[actor.FullName()]; ok {
		return nil
	}
	r.actors = append(r.actors, actor)
	r.actorsByName[actor.FullName()] = actor
	return nil
}

// GetActor returns the actor with the given full name, nil when absent.
func (r *Repository) GetActor(fullName string) *domain.Actor {
	return r.actorsByName[domain.NormalizeName(fullName)]
}

// Actors returns all actors in insertion order.
func (r *Repository) Actors() []*domain.Actor {
	out := make([]*domain.Actor, len(r.actors))
	copy(out, r.actors)
	return out
}

// GetActorsByColleagues returns the actors that have worked with every one
// of the given colleagues. Colleagues unknown to the repository are dropped
// from the criteria first; if none remain the result is immediately empty.
func (r *Repository) GetActorsByColleagues(colleagues []*domain.Actor) []*domain.Actor {
	known := make([]*domain.Actor, 0, len(colleagues))
	for _, c := range colleagues {
		if c == nil {
			continue
		}
		if repoActor, ok := r.actorsByName[c.FullName()]; ok {
			known = append(known, repoActor)
		}
	}

	result := []*domain.Actor{}
	if len(known) == 0 {
		return result
	}

	for _, actor := range r.actors {
		workedWithAll := true
		for _, c := range known {
			if !actor.WorkedWith(c) {
				workedWithAll = false
				break
			}
		}
		if workedWithAll {
			result = append(result, actor)
		}
	}
	return result
}

// AddDirector commits a director. Nil and invalid-identity directors are
// rejected; a director already present is a silent no-op.
func (r *Repository) AddDirector(director *domain.Director) error {
	if director == nil || !director.IsValid() {
		return invariant("director has no valid identity")
	}
	if _, ok := r.directorsByName[director.FullName()]; ok {
		return nil
	}
	r.directors = append(r.directors, director)
	r.directorsByName[director.FullName()] = director
	return nil
}

// GetDirector returns the director with the given full name, nil when
// absent.
func (r *Repository) GetDirector(fullName string) *domain.Director {
	return r.directorsByName[domain.NormalizeName(fullName)]
}

// Directors returns all directors in insertion order.
func (r *Repository) Directors() []*domain.Director {
	out := make([]*domain.Director, len(r.directors))
	copy(out, r.directors)
	return out
}

// AddGenre commits a genre. Nil and invalid-identity genres are rejected; a
// genre already present is a silent no-op.
func (r *Repository) AddGenre(genre *domain.Genre) error {
	if genre == nil || !genre.IsValid() {
		return invariant("genre has no valid identity")
	}
	if _, ok := r.genresByName[genre.Name()]; ok {
		return nil
	}
	r.genres = append(r.genres, genre)
	r.genresByName[genre.Name()] = genre
	return nil
}

// Genres returns all genres in insertion order.
func (r *Repository) Genres() []*domain.Genre {
	out := make([]*domain.Genre, len(r.genres))
	copy(out, r.genres)
	return out
}

// AddMovie commits a movie. Movies without a valid (title, year) identity
// are rejected; a movie with the same identity already present is a silent
// no-op. A positive rank is indexed for rank lookups.
func (r *Repository) AddMovie(movie *domain.Movie) error {
	if movie == nil || !movie.IsValid() {
		return invariant("movie has no valid title and release year")
	}
	if _, ok := r.moviesByKey[movie.Key()]; ok {
		return nil
	}
	r.movies = append(r.movies, movie)
	r.moviesByKey[movie.Key()] = movie
	if movie.Rank() > 0 {
		r.moviesByRank[movie.Rank()] = movie
	}
	return nil
}

// GetMovie returns the movie with the given title and release year, nil
// when absent.
func (r *Repository) GetMovie(title string, releaseYear int) *domain.Movie {
	return r.moviesByKey[domain.MovieKey{Title: domain.NormalizeName(title), Year: releaseYear}]
}

// GetMovieByRank returns the movie with the given external rank, nil when
// absent.
func (r *Repository) GetMovieByRank(rank int) *domain.Movie {
	return r.moviesByRank[rank]
}

// GetMoviesByRank returns the movies for the given ranks, preserving the
// order of the request; unknown ranks are skipped.
func (r *Repository) GetMoviesByRank(ranks []int) []*domain.Movie {
	result := []*domain.Movie{}
	for _, rank := range ranks {
		if m, ok := r.moviesByRank[rank]; ok {
			result = append(result, m)
		}
	}
	return result
}

// Movies returns all movies in insertion order.
func (r *Repository) Movies() []*domain.Movie {
	out := make([]*domain.Movie, len(r.movies))
	copy(out, r.movies)
	return out
}

// GetMoviesByReleaseYear returns the movies released in the given year.
func (r *Repository) GetMoviesByReleaseYear(year int) []*domain.Movie {
	result := []*domain.Movie{}
	for _, m := range r.movies {
		if m.ReleaseYear() == year {
			result = append(result, m)
		}
	}
	return result
}

// GetMoviesByDirector returns the movies directed by the given director.
func (r *Repository) GetMoviesByDirector(director *domain.Director) []*domain.Movie {
	result := []*domain.Movie{}
	if director == nil {
		return result
	}
	for _, m := range r.movies {
		if m.Director().Equal(director) {
			result = append(result, m)
		}
	}
	return result
}

// GetMoviesByActors returns the movies whose cast contains every one of the
// given actors. Actors unknown to the repository are dropped from the
// criteria first; if none remain the result is immediately empty.
func (r *Repository) GetMoviesByActors(actors []*domain.Actor) []*domain.Movie {
	known := make([]*domain.Actor, 0, len(actors))
	for _, a := range actors {
		if a == nil {
			continue
		}
		if repoActor, ok := r.actorsByName[a.FullName()]; ok {
			known = append(known, repoActor)
		}
	}

	result := []*domain.Movie{}
	if len(known) == 0 {
		return result
	}

	for _, m := range r.movies {
		hasAll := true
		for _, a := range known {
			if !m.HasActor(a) {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, m)
		}
	}
	return result
}

// GetMoviesByGenres returns the movies carrying every one of the given
// genres. Genres unknown to the repository are dropped from the criteria
// first; if none remain the result is immediately empty.
func (r *Repository) GetMoviesByGenres(genres []*domain.Genre) []*domain.Movie {
	known := make([]*domain.Genre, 0, len(genres))
	for _, g := range genres {
		if g == nil {
			continue
		}
		if repoGenre, ok := r.genresByName[g.Name()]; ok {
			known = append(known, repoGenre)
		}
	}

	result := []*domain.Movie{}
	if len(known) == 0 {
		return result
	}

	for _, m := range r.movies {
		hasAll := true
		for _, g := range known {
			if !m.HasGenre(g) {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, m)
		}
	}
	return result
}
