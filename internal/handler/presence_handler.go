/*
Package handler provides the HTTP handlers and routing setup for the SnookerHub server.

This file contains the WebSocket endpoint through which clients subscribe to
live presence transitions.
*/
package handler

import (
	"net"
	"net/http"

	"github.com/gorilla/websocket"

	"snookerhub/internal/app/presence"
	"snookerhub/internal/pkg/auth/jwt"
	"snookerhub/internal/pkg/errs"
	"snookerhub/internal/pkg/limiter"
	"snookerhub/internal/pkg/logx"
	"snookerhub/internal/pkg/resp"
)

// HandlePresenceFeed upgrades the connection and streams presence events to
// the signed-in caller.
func HandlePresenceFeed(upgrader websocket.Upgrader, rateLimiter *limiter.IPRateLimiter, deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if ip == "" {
			ip = "unknown_ip"
		}

		if !rateLimiter.GetLimiter(ip).Allow() {
			logx.Warn("Presence feed rejected: rate limit exceeded.", "ip", ip)
			resp.RespondError(w, r, errs.NewError(errs.ErrRateLimitExceeded))
			return
		}

		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logx.Error(err, "Failed to upgrade presence connection to WebSocket")
			return
		}

		client := presence.NewClient(deps.Presence, conn, identity.ID)

		go client.WritePump()

		logx.Info("Presence subscriber connected", "viewer_id", identity.ID)

		client.ReadPump()
	}
}
