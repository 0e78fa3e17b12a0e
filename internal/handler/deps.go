package handler

import (
	"strings"

	"snookerhub/internal/app/directory"
	"snookerhub/internal/app/presence"
	"snookerhub/internal/app/profile"
	"snookerhub/internal/app/storage"
	"snookerhub/internal/configs"
)

// AppDeps bundles the services the HTTP handlers operate on.
type AppDeps struct {
	Config   *configs.AppConfig
	Dir      directory.UserDirectory
	Profiles *profile.Resolver
	Catalog  *profile.Catalog
	Presence *presence.Hub

	// Avatars is nil when no storage backend is configured (development).
	Avatars storage.AvatarStore
}

// FullAssetURL turns a stored avatar key into a client-addressable URL.
// Absolute URLs and empty keys pass through unchanged.
func (d *AppDeps) FullAssetURL(key string) string {
	if key == "" || strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key
	}

	base := strings.TrimSuffix(d.Config.S3Endpoint, "/")
	if base == "" {
		return key
	}

	return base + "/" + d.Config.S3BucketName + "/" + key
}

// NormalizeAssetKey strips the public asset prefix from an avatar reference,
// yielding the bare object key. References pointing outside our storage are
// rejected.
func (d *AppDeps) NormalizeAssetKey(ref string) (string, bool) {
	if ref == "" {
		return "", true
	}

	if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
		// Already a bare key.
		return ref, !strings.Contains(ref, "..")
	}

	base := strings.TrimSuffix(d.Config.S3Endpoint, "/") + "/" + d.Config.S3BucketName + "/"
	if strings.HasPrefix(ref, base) {
		return strings.TrimPrefix(ref, base), true
	}

	return "", false
}
