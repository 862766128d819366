package domain

import (
	"context"
	"time"
)

// User represents an account identity
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized
	CreatedAt    time.Time `json:"created_at"`
}

// UserRepository defines data access for users
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	// ExistsByUsernameOrEmail reports whether any user already holds either
	// unique field. Uniqueness is checked before insert; the unique indexes
	// are the storage-level backstop.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
