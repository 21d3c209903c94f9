package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/cinelog/cinelog-backend/internal/domain"
)

// Login authenticates a user with username + password.
// Returns ErrUnauthorized if the user is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Username = domain.NormalizeUsername(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	user := s.users.GetUser(input.Username)
	s.mu.RUnlock()

	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password()), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID(), user.Username())
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int("user_id", user.ID()))

	return &AuthResult{AccessToken: accessToken, User: user}, nil
}

// ValidateToken checks an access token and resolves the user it names.
// Returns ErrUnauthorized for invalid tokens and unknown users.
func (s *Service) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	userID, _, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	s.mu.RLock()
	user := s.users.GetUserByID(userID)
	s.mu.RUnlock()

	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
