/*
Package handler provides the HTTP handlers and routing setup for the SnookerHub server.

This file implements the profile view endpoints: resolving a profile (own or
by route ID), mutating the connection set, and the social counters (skill
endorsements and recommendation likes).
*/
package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"snookerhub/internal/app/directory"
	"snookerhub/internal/app/profile"
	"snookerhub/internal/pkg/auth/jwt"
	"snookerhub/internal/pkg/errs"
	"snookerhub/internal/pkg/logx"
	"snookerhub/internal/pkg/req"
	"snookerhub/internal/pkg/resp"
)

// viewer resolves the signed-in player's record, or nil for anonymous callers.
func viewer(deps *AppDeps, r *http.Request) *directory.User {
	identity := jwt.GetPayloadFromContext(r)
	if identity == nil {
		return nil
	}

	u, err := deps.Dir.FindByID(r.Context(), identity.ID)
	if err != nil {
		logx.Warn("profile: signed-in account no longer resolves", "id", identity.ID)
		return nil
	}
	return u
}

// HandleGetProfile resolves a profile view. The "{id}" route parameter is
// optional; without it the signed-in player's own profile is shown.
func HandleGetProfile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		routeID := chi.URLParam(r, "id")
		current := viewer(deps, r)

		view := deps.Profiles.Resolve(r.Context(), routeID, current)

		if view.State == profile.StateError {
			switch view.Err {
			case "No user information":
				resp.RespondError(w, r, errs.NewError(errs.ErrNoUserInformation))
			default:
				resp.RespondError(w, r, errs.NewError(errs.ErrProfileNotFound))
			}
			return
		}

		view.User.IsOnline = deps.Presence.IsOnline(view.User.ID)

		resp.RespondSuccess(w, r, view)
	}
}

// HandleConnect adds the viewed player to the caller's connection set.
func HandleConnect(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		otherID := chi.URLParam(r, "id")
		if otherID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}
		if otherID == identity.ID {
			resp.RespondError(w, r, errs.NewError(errs.ErrSelfConnection))
			return
		}

		if err := deps.Dir.Connect(r.Context(), identity.ID, otherID); err != nil {
			if errors.Is(err, directory.ErrNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrProfileNotFound))
				return
			}
			logx.Error(err, "connect: directory mutation failed", "user_id", identity.ID, "other_id", otherID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"connected": true})
	}
}

// HandleDisconnect removes the viewed player from the caller's connection set.
func HandleDisconnect(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		otherID := chi.URLParam(r, "id")
		if otherID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if err := deps.Dir.Disconnect(r.Context(), identity.ID, otherID); err != nil {
			if errors.Is(err, directory.ErrNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrProfileNotFound))
				return
			}
			logx.Error(err, "disconnect: directory mutation failed", "user_id", identity.ID, "other_id", otherID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"connected": false})
	}
}

type EndorseSkillInput struct {
	Skill string `json:"skill"`
}

// HandleEndorseSkill increments the endorsement counter of a skill on the
// viewed player's profile.
func HandleEndorseSkill(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		targetID := chi.URLParam(r, "id")

		var input EndorseSkillInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if targetID == "" || input.Skill == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		count, err := deps.Catalog.EndorseSkill(targetID, input.Skill)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrSkillNotFound))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"skill":        input.Skill,
			"endorsements": count,
		})
	}
}

// HandleLikeRecommendation increments the like counter of a recommendation on
// the viewed player's profile.
func HandleLikeRecommendation(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		targetID := chi.URLParam(r, "id")
		recID := chi.URLParam(r, "recID")
		if targetID == "" || recID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		count, err := deps.Catalog.LikeRecommendation(targetID, recID)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrRecommendationNotFound))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"recommendation": recID,
			"likes":          count,
		})
	}
}
