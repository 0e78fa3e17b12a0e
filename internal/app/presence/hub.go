/*
Package presence tracks which players are online and pushes presence
transitions to subscribed WebSocket clients.

The Hub is the central coordinator: login/logout mark players online or
offline, and every transition is broadcast to subscribers so open profile
screens can refresh their activity indicators live.
*/
package presence

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"snookerhub/internal/pkg/logx"
)

// Event is one presence transition pushed to subscribers.
type Event struct {
	// Type is "online" or "offline".
	Type string `json:"type"`

	// UserID identifies the player whose presence changed.
	UserID string `json:"userId"`

	// At is the time of the transition.
	At time.Time `json:"at"`
}

// Hub coordinates presence state and its subscribers.
type Hub struct {
	// mu protects online and subscribers.
	mu sync.RWMutex

	// online maps player ID to the time they were marked online.
	online map[string]time.Time

	// subscribers holds all connected WebSocket clients.
	subscribers map[*Client]struct{}

	// broadcast carries presence events to the run loop.
	broadcast chan Event

	// wg waits for the run loop to drain during shutdown.
	wg sync.WaitGroup

	logger zerolog.Logger
}

// NewHub constructs a Hub and starts its broadcast loop.
func NewHub() *Hub {
	h := &Hub{
		online:      make(map[string]time.Time),
		subscribers: make(map[*Client]struct{}),
		broadcast:   make(chan Event, 64),
		logger:      logx.Logger().With().Str("component", "PresenceHub").Logger(),
	}

	h.wg.Add(1)
	go h.run()

	return h
}

// run delivers broadcast events to every subscriber until the channel closes.
func (h *Hub) run() {
	defer h.wg.Done()

	for ev := range h.broadcast {
		payload, err := json.Marshal(ev)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to encode presence event.")
			continue
		}

		h.mu.RLock()
		for client := range h.subscribers {
			select {
			case client.send <- payload:
			default:
				// Slow subscriber; drop the event rather than block the hub.
				h.logger.Warn().Str("user_id", ev.UserID).Msg("Presence subscriber too slow, event dropped.")
			}
		}
		h.mu.RUnlock()
	}
}

// SetOnline marks the player online and broadcasts the transition.
func (h *Hub) SetOnline(userID string) {
	h.mu.Lock()
	h.online[userID] = time.Now()
	h.mu.Unlock()

	h.publish(Event{Type: "online", UserID: userID, At: time.Now()})
}

// SetOffline marks the player offline and broadcasts the transition.
// Marking an already-offline player is a no-op.
func (h *Hub) SetOffline(userID string) {
	h.mu.Lock()
	_, wasOnline := h.online[userID]
	delete(h.online, userID)
	h.mu.Unlock()

	if wasOnline {
		h.publish(Event{Type: "offline", UserID: userID, At: time.Now()})
	}
}

// IsOnline reports whether the player is currently marked online.
func (h *Hub) IsOnline(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.online[userID]
	return ok
}

// OnlineSince returns the time the player was marked online, if they are.
func (h *Hub) OnlineSince(userID string) (time.Time, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	t, ok := h.online[userID]
	return t, ok
}

// publish queues the event for broadcast, dropping it when the hub is backed up.
func (h *Hub) publish(ev Event) {
	select {
	case h.broadcast <- ev:
	default:
		h.logger.Warn().Str("user_id", ev.UserID).Msg("Presence broadcast queue full, event dropped.")
	}
}

// subscribe registers a client for presence events.
func (h *Hub) subscribe(c *Client) {
	h.mu.Lock()
	h.subscribers[c] = struct{}{}
	h.mu.Unlock()
}

// unsubscribe removes a client and closes its send channel.
func (h *Hub) unsubscribe(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[c]; ok {
		delete(h.subscribers, c)
		close(c.send)
	}
}

// Shutdown stops the broadcast loop and disconnects all subscribers.
func (h *Hub) Shutdown() {
	h.logger.Info().Msg("Shutting down presence hub...")

	close(h.broadcast)
	h.wg.Wait()

	h.mu.Lock()
	for client := range h.subscribers {
		delete(h.subscribers, client)
		close(client.send)
	}
	h.mu.Unlock()
}
