/*
Package main is a small driver for the client-side session runtime.

It wires a session Manager over the fixture directory and a local session
repository, rehydrates any persisted session, and walks through a
login/profile/logout round trip, printing the session state at each step.
Useful for exercising the state container without the mobile shell.

The session repository backend is selected with SESSION_STORE: "file"
(default, under the user config dir) or "redis" (REDIS_ADDR/REDIS_PASSWORD).
*/
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"

	"snookerhub/internal/app/directory"
	"snookerhub/internal/app/profile"
	"snookerhub/internal/app/session"
	"snookerhub/internal/pkg/logx"
)

func newRepository() (session.Repository, error) {
	if os.Getenv("SESSION_STORE") == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("failed to reach redis: %w", err)
		}
		return session.NewRedisRepository(client), nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return session.NewFileRepository(filepath.Join(base, "snookerhub"))
}

func printSession(label string, s session.Session) {
	userID := "<none>"
	if s.User != nil {
		userID = s.User.ID
	}
	fmt.Printf("%-14s user=%s authenticated=%v loading=%v error=%q\n",
		label, userID, s.IsAuthenticated, s.IsLoading, s.Error)
}

func main() {
	logx.InitGlobalLogger(true)

	repo, err := newRepository()
	if err != nil {
		logx.Fatal(err, "Failed to initialize session repository")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your_default_insecure_secret_key_change_me"
	}

	// Simulated lookup latency stands in for the network round trip.
	dir := directory.NewMemoryDirectory(directory.FixtureUsers(),
		directory.WithLatency(150*time.Millisecond))

	mgr := session.NewManager(dir, repo, secret)
	ctx := context.Background()

	mgr.CheckAuth(ctx)
	printSession("rehydrated:", mgr.Session())

	if !mgr.Session().IsAuthenticated {
		mgr.Login(ctx, "sarah@example.com", "pw", "sarah_j")
		printSession("after login:", mgr.Session())
	}

	resolver := profile.NewResolver(dir, profile.NewCatalog(nil))
	view := resolver.Resolve(ctx, "1", mgr.Session().User)
	fmt.Printf("profile view:  state=%s user=%s connected=%v skills=%d\n",
		view.State, view.User.Username, view.IsConnected, len(view.Display.Skills))

	bio := "Updated from the session driver."
	mgr.UpdateProfile(ctx, directory.Update{Bio: &bio})
	printSession("after update:", mgr.Session())

	mgr.Logout(ctx)
	printSession("after logout:", mgr.Session())
}
