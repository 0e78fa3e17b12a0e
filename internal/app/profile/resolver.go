package profile

import (
	"context"
	"errors"

	"snookerhub/internal/app/directory"
)

// Messages surfaced on the View when resolution fails.
const (
	msgNoUserInformation = "No user information"
	msgUserNotFound      = "User not found"
)

// Resolver resolves profile views: loading -> error | ready.
type Resolver struct {
	dir     directory.UserDirectory
	catalog *Catalog
}

// NewResolver creates a Resolver over the given directory and display catalog.
func NewResolver(dir directory.UserDirectory, catalog *Catalog) *Resolver {
	return &Resolver{dir: dir, catalog: catalog}
}

// Resolve determines whose profile to show and assembles the View.
//
// The target identity comes from routeID when present, otherwise from the
// signed-in player. With neither available the view lands in the error state
// with "No user information"; a directory miss lands in "User not found".
// On success the view is ready, with the connected flag derived from the
// viewer's connection set.
func (r *Resolver) Resolve(ctx context.Context, routeID string, viewer *directory.User) View {
	targetID := routeID
	if targetID == "" {
		if viewer == nil {
			return View{State: StateError, Err: msgNoUserInformation}
		}
		targetID = viewer.ID
	}

	target, err := r.dir.FindByID(ctx, targetID)
	if errors.Is(err, directory.ErrNotFound) {
		return View{State: StateError, Err: msgUserNotFound}
	}
	if err != nil {
		return View{State: StateError, Err: msgUserNotFound}
	}

	view := View{
		State:   StateReady,
		User:    target,
		Display: r.catalog.For(target.ID),
	}

	if viewer != nil {
		if viewer.ID == target.ID {
			view.IsOwnProfile = true
		} else {
			view.IsConnected = viewer.IsConnectedTo(target.ID)
		}
	}

	return view
}
