package catalog

import (
	"context"
	"fmt"

	"github.com/cinelog/cinelog-backend/internal/domain"
)

// MostCommonActors returns up to quantity actors ranked by how many stored
// movies they appear in.
func (s *Service) MostCommonActors(ctx context.Context, quantity int) ([]*domain.Actor, error) {
	if err := validateQuantity(quantity); err != nil {
		return nil, fmt.Errorf("catalog.MostCommonActors: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	actors, err := s.movies.MostCommonActors(quantity)
	if err != nil {
		return nil, fmt.Errorf("catalog.MostCommonActors: %w", err)
	}
	return actors, nil
}

// MostCommonDirectors returns up to quantity directors ranked by how many
// stored movies they directed.
func (s *Service) MostCommonDirectors(ctx context.Context, quantity int) ([]*domain.Director, error) {
	if err := validateQuantity(quantity); err != nil {
		return nil, fmt.Errorf("catalog.MostCommonDirectors: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	directors, err := s.movies.MostCommonDirectors(quantity)
	if err != nil {
		return nil, fmt.Errorf("catalog.MostCommonDirectors: %w", err)
	}
	return directors, nil
}

// MostCommonGenres returns up to quantity genres ranked by how many stored
// movies carry them.
func (s *Service) MostCommonGenres(ctx context.Context, quantity int) ([]*domain.Genre, error) {
	if err := validateQuantity(quantity); err != nil {
		return nil, fmt.Errorf("catalog.MostCommonGenres: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	genres, err := s.movies.MostCommonGenres(quantity)
	if err != nil {
		return nil, fmt.Errorf("catalog.MostCommonGenres: %w", err)
	}
	return genres, nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return domain.NewValidationError("quantity", "must be positive")
	}
	return nil
}
