/*
Package handler provides the HTTP handlers and routing setup for the SnookerHub server.

This file implements the authentication endpoints: register, login, and logout.
*/
package handler

import (
	"errors"
	"net/http"
	"regexp"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"snookerhub/internal/app/directory"
	"snookerhub/internal/pkg/auth/jwt"
	"snookerhub/internal/pkg/errs"
	"snookerhub/internal/pkg/logx"
	"snookerhub/internal/pkg/randx"
	"snookerhub/internal/pkg/req"
	"snookerhub/internal/pkg/resp"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-z0-9_]{4,20}$`)
)

// userResponse shapes a player record for the JSON envelope.
func userResponse(deps *AppDeps, u *directory.User) map[string]any {
	return map[string]any{
		"id":           u.ID,
		"name":         u.Name,
		"username":     u.Username,
		"email":        u.Email,
		"avatar":       deps.FullAssetURL(u.Avatar),
		"bio":          u.Bio,
		"location":     u.Location,
		"stats":        u.Stats,
		"connections":  u.Connections,
		"isOnline":     deps.Presence.IsOnline(u.ID),
		"lastActiveAt": u.LastActiveAt.Format(time.RFC3339),
	}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Location string `json:"location"`
}

// HandleRegister creates a new player account. Registration deliberately does
// not sign the caller in; the client follows up with a login call.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if payload := jwt.GetPayloadFromContext(r); payload != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
			return
		}

		var input RegisterInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Name == "" || input.Email == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if input.Username != "" && !usernameRegex.MatchString(input.Username) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidUsername))
			return
		}

		passwordLen := utf8.RuneCountInString(input.Password)
		if passwordLen < 6 || passwordLen > 50 {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidPassword))
			return
		}

		if _, err := deps.Dir.FindByEmail(r.Context(), input.Email); err == nil {
			logx.Warn("registration conflict: email already registered", "email", input.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrEmailInUse))
			return
		} else if !errors.Is(err, directory.ErrNotFound) {
			logx.Error(err, "failed to check email during registration")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		if input.Username != "" {
			if _, err := deps.Dir.FindByUsername(r.Context(), input.Username); err == nil {
				logx.Warn("registration conflict: username already exists", "username", input.Username)
				resp.RespondError(w, r, errs.NewError(errs.ErrUsernameTaken))
				return
			} else if !errors.Is(err, directory.ErrNotFound) {
				logx.Error(err, "failed to check username during registration")
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
				return
			}
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		now := time.Now()
		user := &directory.User{
			ID:           randx.UserID(),
			Name:         input.Name,
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: string(hashedPassword),
			Avatar:       "avatars/default.png",
			Bio:          "New to SnookerHub.",
			Location:     input.Location,
			Stats:        directory.Stats{SkillLevel: "Beginner"},
			LastActiveAt: now,
			CreatedAt:    now,
		}

		if err := deps.Dir.Create(r.Context(), user); err != nil {
			switch {
			case errors.Is(err, directory.ErrEmailExists):
				resp.RespondError(w, r, errs.NewError(errs.ErrEmailInUse))
			case errors.Is(err, directory.ErrUsernameExists):
				resp.RespondError(w, r, errs.NewError(errs.ErrUsernameTaken))
			default:
				logx.Error(err, "failed to create user in directory")
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			}
			return
		}

		// No token here. The account exists but the caller is not signed in.
		resp.RespondSuccess(w, r, map[string]any{
			"user": userResponse(deps, user),
		})
	}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// HandleLogin verifies the email/username pair, checks the password when the
// account carries a credential hash, and issues an identity token.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if identity := jwt.GetPayloadFromContext(r); identity != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
			return
		}

		var input LoginInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		user, err := deps.Dir.FindByCredentials(r.Context(), input.Email, input.Username)
		if err != nil {
			logx.Warn("login: user lookup failed", "email", input.Email, "error", err)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		if user.PasswordHash != "" {
			if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
				logx.Warn("login: password mismatch", "email", input.Email)
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
				return
			}
		}

		payload := &jwt.Payload{
			ID:       user.ID,
			Username: user.Username,
			Avatar:   deps.FullAssetURL(user.Avatar),
		}

		token, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.SessionExpiration)
		if err != nil {
			logx.Error(err, "login: jwt generation failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		user.LastActiveAt = time.Now()
		if err := deps.Dir.Update(r.Context(), user); err != nil {
			logx.Error(err, "login: failed to update last_active_at", "user_id", user.ID)
		}

		deps.Presence.SetOnline(user.ID)

		resp.RespondSuccess(w, r, map[string]any{
			"token": token,
			"user":  userResponse(deps, user),
		})
	}
}

// HandleLogout marks the caller offline. It always succeeds: whatever state
// the server is in, the client must be able to drop its session.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if identity := jwt.GetPayloadFromContext(r); identity != nil {
			deps.Presence.SetOffline(identity.ID)
		}

		resp.RespondSuccess(w, r, map[string]any{
			"loggedOut": true,
		})
	}
}
