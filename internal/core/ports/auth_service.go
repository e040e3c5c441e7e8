package ports

import (
	"context"

	"github.com/peoplehr/leave-system/internal/core/domain"
)

// AuthService implements signup, login, and profile management.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, upd UserUpdate) (*domain.User, error)
}
