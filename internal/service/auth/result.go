package auth

import "github.com/cinelog/cinelog-backend/internal/domain"

// AuthResult is returned by the Register and Login operations.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
