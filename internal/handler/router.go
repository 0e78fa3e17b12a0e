/*
Package handler provides the HTTP handlers and routing setup for the SnookerHub server.

This file defines the main Router, applying middleware like logging, CORS,
and IP-based rate limiting before delegating requests to specific handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"snookerhub/internal/pkg/auth/jwt"
	"snookerhub/internal/pkg/limiter"
	"snookerhub/internal/pkg/logx"
	"snookerhub/internal/pkg/resp"
)

const (
	AuthRate  = 0.2
	AuthBurst = 5
	FeedRate  = 0.2
	FeedBurst = 5
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It initializes IP-based rate limiters, configures CORS, and applies global
// and per-route middleware.
func Router(deps *AppDeps) http.Handler {
	authLimiter := limiter.NewIPRateLimiter(rate.Limit(AuthRate), AuthBurst)
	feedLimiter := limiter.NewIPRateLimiter(rate.Limit(FeedRate), FeedBurst)

	r := chi.NewRouter()

	allowedOrigins := make(map[string]struct{})
	for _, origin := range deps.Config.AllowedOrigins {
		allowedOrigins[origin] = struct{}{}
	}

	var wsUpgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if deps.Config.IsDevelopment() {
				return true
			}

			origin := r.Header.Get("Origin")
			if _, ok := allowedOrigins[origin]; ok {
				return true
			}

			logx.Warn("WebSocket connection rejected: Origin not allowed.", "origin", origin)
			return false
		},
	}

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "SnookerHub Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(jwt.IdentityExtractorMiddleware(deps.Config.JWTSecret))

		api.Route("/auth", func(auth chi.Router) {
			auth.Use(authLimiter.Middleware)
			auth.Post("/register", HandleRegister(deps))
			auth.Post("/login", HandleLogin(deps))
			auth.Post("/logout", HandleLogout(deps))
		})

		api.Route("/user", func(user chi.Router) {
			user.Get("/me", HandleCurrentUser(deps))
			user.Patch("/profile", HandleUpdateProfile(deps))
			user.Post("/avatar/presign", HandlePresignAvatarURL(deps))
		})

		api.Route("/profile", func(p chi.Router) {
			p.Get("/", HandleGetProfile(deps))
			p.Get("/{id}", HandleGetProfile(deps))
			p.Post("/{id}/connect", HandleConnect(deps))
			p.Delete("/{id}/connect", HandleDisconnect(deps))
			p.Post("/{id}/skills/endorse", HandleEndorseSkill(deps))
			p.Post("/{id}/recommendations/{recID}/like", HandleLikeRecommendation(deps))
		})

		api.Get("/avatar", HandleAvatarDownload(deps))

		api.Get("/presence", HandlePresenceFeed(wsUpgrader, feedLimiter, deps))
	})

	return r
}
