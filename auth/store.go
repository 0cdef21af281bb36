package auth

import "context"

// UserStore is the credential store contract. Implementations persist
// username + password-hash pairs and enforce username uniqueness.
type UserStore interface {
	// CreateUser persists a new user. Returns a ConflictError if the
	// username is already taken.
	CreateUser(ctx context.Context, user *User) (*User, error)
	// GetUserByUsername returns a NotFoundError if no such username exists.
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	// GetUserByID returns a NotFoundError if no such user exists.
	GetUserByID(ctx context.Context, id int) (*User, error)
}
