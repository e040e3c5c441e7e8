package ports

import (
	"context"

	"github.com/peoplehr/leave-system/internal/core/domain"
)

// UserUpdate carries the mutable profile fields for a partial update.
// Nil pointers mean "leave unchanged". Password is plaintext at the service
// boundary; the service replaces it with a hash before the repository sees it.
type UserUpdate struct {
	Name           *string
	Email          *string
	ProfilePicture *string
	Password       *string
}

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Update applies the non-nil fields of upd and returns the updated user.
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	// UpdatePasswordByEmail overwrites the stored credential for the account.
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
}
