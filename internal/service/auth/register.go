package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/cinelog/cinelog-backend/internal/domain"
)

// Register creates a new user with username + password credentials.
// Returns ErrAlreadyExists if the username is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Username = domain.NormalizeUsername(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.users.GetUser(input.Username) != nil {
		return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
	}

	user := domain.NewUser(input.Username, string(hash))
	if err := s.users.AddUser(user); err != nil {
		return nil, fmt.Errorf("auth.Register add user: %w", err)
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID(), user.Username())
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.Int("user_id", user.ID()),
		slog.String("username", user.Username()))

	return &AuthResult{AccessToken: accessToken, User: user}, nil
}
