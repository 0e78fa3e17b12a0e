package directory

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryDirectoryLookups(t *testing.T) {
	dir := NewMemoryDirectory(FixtureUsers())
	ctx := context.Background()

	u, err := dir.FindByID(ctx, "2")
	if err != nil {
		t.Fatalf("FindByID() failed: %v", err)
	}
	if u.Username != "sarah_j" {
		t.Fatalf("expected sarah_j, got %q", u.Username)
	}

	// Email lookup is case-insensitive.
	u, err = dir.FindByEmail(ctx, "SARAH@example.com")
	if err != nil {
		t.Fatalf("FindByEmail() failed: %v", err)
	}
	if u.ID != "2" {
		t.Fatalf("expected id 2, got %q", u.ID)
	}

	u, err = dir.FindByCredentials(ctx, "sarah@example.com", "sarah_j")
	if err != nil {
		t.Fatalf("FindByCredentials() failed: %v", err)
	}
	if u.ID != "2" {
		t.Fatalf("expected id 2, got %q", u.ID)
	}

	// Matching email with mismatched username is a miss.
	if _, err := dir.FindByCredentials(ctx, "sarah@example.com", "marcus_147"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := dir.FindByID(ctx, "999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryDirectoryReturnsCopies(t *testing.T) {
	dir := NewMemoryDirectory(FixtureUsers())
	ctx := context.Background()

	u, _ := dir.FindByID(ctx, "1")
	u.Bio = "mutated by caller"
	u.Connections = append(u.Connections, "999")

	fresh, _ := dir.FindByID(ctx, "1")
	if fresh.Bio == "mutated by caller" {
		t.Fatal("caller mutation leaked into directory state")
	}
	if fresh.IsConnectedTo("999") {
		t.Fatal("caller mutation of connections leaked into directory state")
	}
}

func TestMemoryDirectoryCreateConflicts(t *testing.T) {
	dir := NewMemoryDirectory(FixtureUsers())
	ctx := context.Background()

	err := dir.Create(ctx, &User{ID: "10", Email: "sarah@example.com", Username: "someone"})
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	err = dir.Create(ctx, &User{ID: "10", Email: "fresh@example.com", Username: "sarah_j"})
	if !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}

	// Empty usernames never collide.
	if err := dir.Create(ctx, &User{ID: "10", Email: "fresh@example.com"}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if err := dir.Create(ctx, &User{ID: "11", Email: "fresh2@example.com"}); err != nil {
		t.Fatalf("Create() with second empty username failed: %v", err)
	}
}

func TestMemoryDirectoryConnectDisconnect(t *testing.T) {
	dir := NewMemoryDirectory(FixtureUsers())
	ctx := context.Background()

	if err := dir.Connect(ctx, "3", "2"); err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}

	u, _ := dir.FindByID(ctx, "3")
	if !u.IsConnectedTo("2") {
		t.Fatal("expected connection to be recorded")
	}

	// Connecting twice does not duplicate the edge.
	if err := dir.Connect(ctx, "3", "2"); err != nil {
		t.Fatalf("repeat Connect() failed: %v", err)
	}
	u, _ = dir.FindByID(ctx, "3")
	count := 0
	for _, id := range u.Connections {
		if id == "2" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected a single edge, got %d", count)
	}

	if err := dir.Disconnect(ctx, "3", "2"); err != nil {
		t.Fatalf("Disconnect() failed: %v", err)
	}
	u, _ = dir.FindByID(ctx, "3")
	if u.IsConnectedTo("2") {
		t.Fatal("expected connection to be removed")
	}

	if err := dir.Connect(ctx, "3", "999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown peer, got %v", err)
	}
}

func TestMemoryDirectoryLatencyHonorsContext(t *testing.T) {
	dir := NewMemoryDirectory(FixtureUsers(), WithLatency(time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := dir.FindByID(ctx, "1")
	if err == nil {
		t.Fatal("expected context error")
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("lookup did not honor cancellation, took %v", elapsed)
	}
}

func TestUpdateApply(t *testing.T) {
	u := &User{Name: "Old", Bio: "old bio", Location: "Old Town", Avatar: "old.png"}

	name := "New"
	avatar := "new.png"
	Update{Name: &name, Avatar: &avatar}.Apply(u)

	if u.Name != "New" || u.Avatar != "new.png" {
		t.Fatalf("expected partial fields applied, got %+v", u)
	}
	if u.Bio != "old bio" || u.Location != "Old Town" {
		t.Fatalf("expected untouched fields preserved, got %+v", u)
	}
}
