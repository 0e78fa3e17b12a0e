package profile

import (
	"context"
	"testing"

	"snookerhub/internal/app/directory"
)

func newTestResolver() (*Resolver, directory.UserDirectory) {
	dir := directory.NewMemoryDirectory(directory.FixtureUsers())
	return NewResolver(dir, NewCatalog(nil)), dir
}

func TestResolveNoUserInformation(t *testing.T) {
	r, _ := newTestResolver()

	view := r.Resolve(context.Background(), "", nil)

	if view.State != StateError {
		t.Fatalf("expected error state, got %q", view.State)
	}
	if view.Err != "No user information" {
		t.Fatalf("expected %q, got %q", "No user information", view.Err)
	}
}

func TestResolveUserNotFound(t *testing.T) {
	r, _ := newTestResolver()

	view := r.Resolve(context.Background(), "999", nil)

	if view.State != StateError {
		t.Fatalf("expected error state, got %q", view.State)
	}
	if view.Err != "User not found" {
		t.Fatalf("expected %q, got %q", "User not found", view.Err)
	}
}

func TestResolveByRouteID(t *testing.T) {
	r, _ := newTestResolver()

	view := r.Resolve(context.Background(), "2", nil)

	if view.State != StateReady {
		t.Fatalf("expected ready state, got %q (%s)", view.State, view.Err)
	}
	if view.User == nil || view.User.ID != "2" {
		t.Fatalf("expected user 2, got %+v", view.User)
	}
	if view.IsOwnProfile || view.IsConnected {
		t.Fatal("anonymous viewer must be neither owner nor connected")
	}
	if len(view.Display.Abilities) == 0 || len(view.Display.Skills) == 0 {
		t.Fatal("expected display content to be attached")
	}
}

func TestResolveFallsBackToViewer(t *testing.T) {
	r, dir := newTestResolver()
	viewer, _ := dir.FindByID(context.Background(), "1")

	view := r.Resolve(context.Background(), "", viewer)

	if view.State != StateReady {
		t.Fatalf("expected ready state, got %q (%s)", view.State, view.Err)
	}
	if view.User.ID != "1" {
		t.Fatalf("expected own profile, got user %q", view.User.ID)
	}
	if !view.IsOwnProfile {
		t.Fatal("expected IsOwnProfile to be set")
	}
	if view.IsConnected {
		t.Fatal("own profile is never marked connected")
	}
}

func TestResolveConnectedFlag(t *testing.T) {
	r, dir := newTestResolver()
	ctx := context.Background()

	viewer, _ := dir.FindByID(ctx, "1")

	// Fixture user 1 is connected to 2 but the viewer of 3's profile
	// derives the flag from their own connection set.
	view := r.Resolve(ctx, "2", viewer)
	if !view.IsConnected {
		t.Fatal("expected connected flag for user 2")
	}

	if err := dir.Disconnect(ctx, "1", "3"); err != nil {
		t.Fatalf("Disconnect() failed: %v", err)
	}
	viewer, _ = dir.FindByID(ctx, "1")

	view = r.Resolve(ctx, "3", viewer)
	if view.IsConnected {
		t.Fatal("expected no connected flag after disconnect")
	}
}
