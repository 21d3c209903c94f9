package catalog

import (
	"context"

	"github.com/cinelog/cinelog-backend/internal/domain"
)

// FilterByYear returns the movies released in the given year.
func (s *Service) FilterByYear(ctx context.Context, year int) []*domain.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movies.GetMoviesByReleaseYear(year)
}

// FilterByDirector returns the movies directed by the named director.
func (s *Service) FilterByDirector(ctx context.Context, fullName string) []*domain.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movies.GetMoviesByDirector(domain.NewDirector(fullName))
}

// FilterByActors returns the movies whose cast contains every named actor.
// Names unknown to the catalogue are dropped from the criteria; if none
// remain the result is empty.
func (s *Service) FilterByActors(ctx context.Context, fullNames []string) []*domain.Movie {
	probes := make([]*domain.Actor, 0, len(fullNames))
	for _, name := range fullNames {
		probes = append(probes, domain.NewActor(name))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movies.GetMoviesByActors(probes)
}

// FilterByGenres returns the movies carrying every named genre. Names
// unknown to the catalogue are dropped from the criteria; if none remain
// the result is empty.
func (s *Service) FilterByGenres(ctx context.Context, names []string) []*domain.Movie {
	probes := make([]*domain.Genre, 0, len(names))
	for _, name := range names {
		probes = append(probes, domain.NewGenre(name))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movies.GetMoviesByGenres(probes)
}

// ActorsByColleagues returns the actors that have worked with every named
// colleague.
func (s *Service) ActorsByColleagues(ctx context.Context, fullNames []string) []*domain.Actor {
	probes := make([]*domain.Actor, 0, len(fullNames))
	for _, name := range fullNames {
		probes = append(probes, domain.NewActor(name))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movies.GetActorsByColleagues(probes)
}
