package directory

import (
	"context"
	"errors"
)

// Sentinel errors returned by UserDirectory implementations.
var (
	// ErrNotFound indicates that no user matches the lookup key.
	ErrNotFound = errors.New("user not found")

	// ErrEmailExists indicates that the email is already registered.
	ErrEmailExists = errors.New("email already in use")

	// ErrUsernameExists indicates that the username is already registered.
	ErrUsernameExists = errors.New("username already taken")
)

// UserDirectory is the capability used to look up and mutate player records.
// The in-memory implementation substitutes for the remote directory service
// in tests and development; the Postgres implementation backs production.
type UserDirectory interface {
	// FindByID returns the user with the given ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail returns the user with the given email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByUsername returns the user with the given username, or ErrNotFound.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByCredentials returns the user matching both email and username,
	// or ErrNotFound. Password verification is the caller's concern.
	FindByCredentials(ctx context.Context, email, username string) (*User, error)

	// Create inserts a new user record. It returns ErrEmailExists or
	// ErrUsernameExists on a uniqueness conflict.
	Create(ctx context.Context, u *User) error

	// Update replaces the stored record for u.ID. It returns ErrNotFound
	// if no such user exists.
	Update(ctx context.Context, u *User) error

	// Connect adds otherID to the connection set of userID. Connecting an
	// already-connected pair is a no-op.
	Connect(ctx context.Context, userID, otherID string) error

	// Disconnect removes otherID from the connection set of userID.
	Disconnect(ctx context.Context, userID, otherID string) error
}
