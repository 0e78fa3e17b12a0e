package presence

import (
	"testing"
	"time"
)

func TestHubOnlineTracking(t *testing.T) {
	h := NewHub()
	defer h.Shutdown()

	if h.IsOnline("1") {
		t.Fatal("expected player to start offline")
	}

	h.SetOnline("1")
	if !h.IsOnline("1") {
		t.Fatal("expected player to be online")
	}

	since, ok := h.OnlineSince("1")
	if !ok {
		t.Fatal("expected OnlineSince to report the player")
	}
	if time.Since(since) > time.Minute {
		t.Fatalf("implausible online timestamp: %v", since)
	}

	h.SetOffline("1")
	if h.IsOnline("1") {
		t.Fatal("expected player to be offline")
	}

	// Marking an offline player offline again is a no-op.
	h.SetOffline("1")
	if h.IsOnline("1") {
		t.Fatal("expected player to remain offline")
	}
}

func TestHubTracksPlayersIndependently(t *testing.T) {
	h := NewHub()
	defer h.Shutdown()

	h.SetOnline("1")
	h.SetOnline("2")
	h.SetOffline("1")

	if h.IsOnline("1") {
		t.Fatal("expected player 1 offline")
	}
	if !h.IsOnline("2") {
		t.Fatal("expected player 2 online")
	}
}
