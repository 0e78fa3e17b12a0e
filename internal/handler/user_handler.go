/*
Package handler provides the HTTP handlers and routing setup for the SnookerHub server.

This file implements the signed-in user endpoints: fetching the current
account and applying partial profile updates.
*/
package handler

import (
	"context"
	"net/http"
	"time"

	"snookerhub/internal/app/directory"
	"snookerhub/internal/pkg/auth/jwt"
	"snookerhub/internal/pkg/errs"
	"snookerhub/internal/pkg/logx"
	"snookerhub/internal/pkg/req"
	"snookerhub/internal/pkg/resp"
)

// HandleCurrentUser returns the account of the signed-in player.
func HandleCurrentUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		user, err := deps.Dir.FindByID(r.Context(), identity.ID)
		if err != nil {
			logx.Warn("current_user: account not found", "id", identity.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"user": userResponse(deps, user),
		})
	}
}

type UpdateProfileInput struct {
	Name     *string `json:"name"`
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
	Avatar   *string `json:"avatar"`
}

// HandleUpdateProfile merges a partial field set into the signed-in player's
// record. A replaced avatar object is deleted from storage in the background.
func HandleUpdateProfile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		var input UpdateProfileInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		upd := directory.Update{
			Name:     input.Name,
			Bio:      input.Bio,
			Location: input.Location,
		}

		if input.Avatar != nil {
			key, ok := deps.NormalizeAssetKey(*input.Avatar)
			if !ok {
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
				return
			}
			upd.Avatar = &key
		}

		user, err := deps.Dir.FindByID(r.Context(), identity.ID)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			return
		}

		oldKey := user.Avatar
		upd.Apply(user)

		if err := deps.Dir.Update(r.Context(), user); err != nil {
			logx.Error(err, "update_profile: directory update failed", "user_id", identity.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		if upd.Avatar != nil && deps.Avatars != nil &&
			oldKey != "" && oldKey != user.Avatar && oldKey != "avatars/default.png" {
			go func(k string) {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				_ = deps.Avatars.Delete(ctx, k)
			}(oldKey)
		}

		resp.RespondSuccess(w, r, map[string]any{
			"user": userResponse(deps, user),
		})
	}
}
