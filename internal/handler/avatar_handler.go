/*
Package handler provides the HTTP handlers and routing setup for the SnookerHub server.

This file implements avatar upload: clients request a presigned upload URL,
push the image straight to object storage, then confirm the key via the
profile update endpoint.
*/
package handler

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"snookerhub/internal/pkg/auth/jwt"
	"snookerhub/internal/pkg/errs"
	"snookerhub/internal/pkg/randx"
	"snookerhub/internal/pkg/req"
	"snookerhub/internal/pkg/resp"
)

const (
	// PresignedURLDuration bounds how long an upload URL stays valid.
	PresignedURLDuration = 10 * time.Minute

	// MaxAvatarBytes is the largest avatar image accepted (5 MB).
	MaxAvatarBytes int64 = 5 << 20
)

// allowedAvatarTypes maps accepted file extensions to their MIME types.
var allowedAvatarTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type PresignAvatarInput struct {
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
	FileSize int64  `json:"file_size"`
}

// HandlePresignAvatarURL generates a time-limited presigned URL for uploading
// a new avatar image, scoped to a fresh object key.
func HandlePresignAvatarURL(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		if deps.Avatars == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrAvatarStorageUnavailable))
			return
		}

		var input PresignAvatarInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.FileSize <= 0 || input.FileSize > MaxAvatarBytes {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		ext := strings.ToLower(filepath.Ext(input.FileName))
		expectedMime, ok := allowedAvatarTypes[ext]
		if !ok || expectedMime != input.MimeType {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		key := randx.AvatarKey(ext)

		url, err := deps.Avatars.PresignUpload(
			r.Context(),
			key,
			input.MimeType,
			input.FileSize,
			PresignedURLDuration,
		)

		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrAvatarStorageFailed))
			return
		}

		data := map[string]any{
			"presignedUrl": url,
			"avatarKey":    key,
			"fileName":     input.FileName,
		}
		resp.RespondSuccess(w, r, data)
	}
}

// HandleAvatarDownload redirects to a presigned download URL for the given
// avatar key.
func HandleAvatarDownload(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Avatars == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrAvatarStorageUnavailable))
			return
		}

		key := r.URL.Query().Get("k")
		if key == "" || !strings.HasPrefix(key, "avatars/") {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		url, err := deps.Avatars.PresignDownload(r.Context(), key, PresignedURLDuration)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrAvatarStorageFailed))
			return
		}

		http.Redirect(w, r, url, http.StatusFound)
	}
}
