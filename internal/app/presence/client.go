package presence

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"snookerhub/internal/pkg/logx"
)

const (
	// timeout duration for writing to the WebSocket connection.
	writeWait = 10 * time.Second

	// maximum time allowed for the server to wait for a Pong message from the client.
	pongWait = 60 * time.Second

	// frequency at which the server sends a Ping message.
	pingPeriod = (pongWait * 9) / 10

	// subscribers never send payloads; anything beyond control frames is noise.
	maxMessageSize = 512
)

// Client is one WebSocket subscriber of the presence feed.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	// send queues encoded presence events waiting to be written.
	send chan []byte

	logger zerolog.Logger
}

// NewClient wraps an upgraded connection and registers it with the hub.
func NewClient(hub *Hub, conn *websocket.Conn, viewerID string) *Client {
	c := &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 32),
		logger: logx.Logger().With().
			Str("component", "PresenceClient").
			Str("viewer_id", viewerID).
			Logger(),
	}

	hub.subscribe(c)
	return c
}

// ReadPump consumes (and discards) inbound frames to service the heartbeat,
// and tears the client down when the connection drops.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unsubscribe(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set read deadline")
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Info().Err(err).Msg("Presence subscriber disconnected unexpectedly")
			}
			return
		}
	}
}

// WritePump forwards queued presence events to the connection and keeps the
// heartbeat alive with periodic pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				// Hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
