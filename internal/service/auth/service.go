// Package auth implements user registration and credential-based login on
// top of the entity repository, issuing JWT access tokens.
package auth

import (
	"log/slog"
	"sync"

	"github.com/cinelog/cinelog-backend/internal/domain"
)

// userRepo defines the repository surface needed by the auth service.
type userRepo interface {
	AddUser(user *domain.User) error
	GetUser(username string) *domain.User
	GetUserByID(id int) *domain.User
}

// jwtManager defines the token management interface needed by the auth
// service.
type jwtManager interface {
	GenerateAccessToken(userID int, username string) (string, error)
	ValidateAccessToken(token string) (int, string, error)
}

// Service implements auth operations. The repository is not safe for
// concurrent use, so every access goes through the shared lock.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	mu    *sync.RWMutex
}

// NewService creates a new auth service instance. mu is the process-wide
// repository lock shared with the other services.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, mu *sync.RWMutex) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		mu:    mu,
	}
}
