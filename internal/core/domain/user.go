package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an account in the system. PasswordHash is never serialized.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name,omitempty"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
