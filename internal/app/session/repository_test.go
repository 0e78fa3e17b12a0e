package session

import (
	"context"
	"testing"

	"snookerhub/internal/app/directory"
)

func TestFileRepositoryRoundTrip(t *testing.T) {
	repo, err := NewFileRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileRepository() failed: %v", err)
	}
	ctx := context.Background()

	// Empty store yields (nil, nil).
	snap, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() on empty store failed: %v", err)
	}
	if snap != nil {
		t.Fatalf("expected nil snapshot, got %+v", snap)
	}

	users := directory.FixtureUsers()
	want := Snapshot{User: users[1], Token: "tok_abc", IsAuthenticated: true}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	snap, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if snap == nil {
		t.Fatal("expected stored snapshot")
	}
	if snap.Token != want.Token || !snap.IsAuthenticated {
		t.Fatalf("snapshot mismatch: %+v", snap)
	}
	if snap.User == nil || snap.User.ID != want.User.ID || snap.User.Email != want.User.Email {
		t.Fatalf("user mismatch: %+v", snap.User)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	snap, err = repo.Load(ctx)
	if err != nil || snap != nil {
		t.Fatalf("expected empty store after Clear(), got snap=%+v err=%v", snap, err)
	}

	// Clearing an already-empty store is not an error.
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear() on empty store failed: %v", err)
	}
}

func TestFileRepositoryOverwrites(t *testing.T) {
	repo, err := NewFileRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileRepository() failed: %v", err)
	}
	ctx := context.Background()

	if err := repo.Save(ctx, Snapshot{Token: "first"}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := repo.Save(ctx, Snapshot{Token: "second", IsAuthenticated: true}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	snap, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if snap.Token != "second" {
		t.Fatalf("expected latest snapshot to win, got %q", snap.Token)
	}
}
