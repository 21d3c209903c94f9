package ingest

import (
	"fmt"

	"github.com/cinelog/cinelog-backend/internal/domain"
)

// MovieDataset holds the linked result of reading a movie file: the movies
// themselves plus every distinct actor, director and genre that appeared in
// them, with colleague links already established.
type MovieDataset struct {
	Movies    []*domain.Movie
	Actors    []*domain.Actor
	Directors []*domain.Director
	Genres    []*domain.Genre
}

// ReadMovies reads the movie catalogue file. Actors, directors and genres
// are interned so that every movie sharing an actor shares the same object;
// actors listed together on a movie become colleagues of one another. A
// present-but-invalid runtime aborts the load, since it means the file is
// malformed rather than merely incomplete.
func ReadMovies(path string) (*MovieDataset, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	ds := &MovieDataset{}
	movieSeen := make(map[domain.MovieKey]bool)
	actorsByName := make(map[string]*domain.Actor)
	directorsByName := make(map[string]*domain.Director)
	genresByName := make(map[string]*domain.Genre)

	internActor := func(name string) *domain.Actor {
		a := domain.NewActor(name)
		if existing, ok := actorsByName[a.FullName()]; ok {
			return existing
		}
		if a.IsValid() {
			actorsByName[a.FullName()] = a
			ds.Actors = append(ds.Actors, a)
		}
		return a
	}

	for i, row := range rows {
		year, _ := optInt(row["Year"])
		movie := domain.NewMovie(row["Title"], year)

		if rank, ok := optInt(row["Rank"]); ok {
			movie.SetRank(rank)
		}
		movie.SetDescription(row["Description"])

		director := domain.NewDirector(row["Director"])
		if existing, ok := directorsByName[director.FullName()]; ok {
			director = existing
		} else if director.IsValid() {
			directorsByName[director.FullName()] = director
			ds.Directors = append(ds.Directors, director)
		}
		movie.SetDirector(director)

		cast := make([]*domain.Actor, 0, 4)
		for _, name := range splitList(row["Actors"]) {
			actor := internActor(name)
			if actor.IsValid() {
				cast = append(cast, actor)
			}
		}
		for _, actor := range cast {
			movie.AddActor(actor)
			for _, other := range cast {
				actor.AddColleague(other)
			}
		}

		for _, name := range splitList(row["Genre"]) {
			genre := domain.NewGenre(name)
			if existing, ok := genresByName[genre.Name()]; ok {
				genre = existing
			} else if genre.IsValid() {
				genresByName[genre.Name()] = genre
				ds.Genres = append(ds.Genres, genre)
			}
			movie.AddGenre(genre)
		}

		if minutes, ok := optInt(row["Runtime (Minutes)"]); ok {
			if err := movie.SetRuntimeMinutes(minutes); err != nil {
				return nil, fmt.Errorf("row %d: runtime %d: %w", i+2, minutes, err)
			}
		}
		if rating, ok := optFloat(row["Rating"]); ok {
			movie.SetExternalRating(rating)
		}
		if votes, ok := optInt(row["Votes"]); ok {
			movie.SetRatingVotes(votes)
		}
		if revenue, ok := optFloat(row["Revenue (Millions)"]); ok {
			movie.SetRevenueMillions(revenue)
		}
		if metascore, ok := optInt(row["Metascore"]); ok {
			movie.SetMetascore(metascore)
		}

		if movie.Title() != "" && !movieSeen[movie.Key()] {
			movieSeen[movie.Key()] = true
			ds.Movies = append(ds.Movies, movie)
		}
	}
	return ds, nil
}
