/*
Package session implements the client-side authentication state container.

A Manager owns a single Session: the signed-in player, an identity token, and
loading/error flags. Mutations (login, signup, logout, profile update, avatar
update) go through the Manager, which persists a snapshot of the session after
each change so it survives process restarts, and rehydrates it via CheckAuth.
*/
package session

import "snookerhub/internal/app/directory"

// Session is the current authentication context of the running client.
// The invariant is that Token is non-empty exactly when IsAuthenticated is
// true, except during an in-flight operation.
type Session struct {
	// User is the signed-in player record, nil when unauthenticated.
	User *directory.User `json:"user"`

	// Token is the opaque identity token persisted across restarts.
	Token string `json:"token"`

	// IsAuthenticated reports whether the session holds a valid identity.
	IsAuthenticated bool `json:"isAuthenticated"`

	// IsLoading is set while an asynchronous operation is in flight.
	IsLoading bool `json:"isLoading"`

	// Error holds the human-readable message of the last failed operation,
	// empty when the last operation succeeded.
	Error string `json:"error,omitempty"`
}

// Snapshot is the subset of session state written to durable storage.
// Loading and error flags are ephemeral and never persisted.
type Snapshot struct {
	User            *directory.User `json:"user"`
	Token           string          `json:"token"`
	IsAuthenticated bool            `json:"isAuthenticated"`
}
