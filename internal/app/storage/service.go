/*
Package storage provides the avatar object store behind the profile layer.

Avatars are uploaded directly by clients through presigned URLs; the server
only hands out URLs, verifies uploads, and deletes superseded objects.
*/
package storage

import (
	"context"
	"time"
)

// ServiceConfig holds the configuration required to connect to the storage service.
type ServiceConfig struct {
	S3BucketName      string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// AvatarStore defines the public interface for avatar object storage.
type AvatarStore interface {
	// PresignUpload generates a pre-signed URL for uploading an avatar object.
	PresignUpload(
		ctx context.Context,
		key string,
		mimeType string,
		fileSize int64,
		duration time.Duration,
	) (string, error)

	// PresignDownload generates a pre-signed URL for downloading an avatar object.
	PresignDownload(ctx context.Context, key string, duration time.Duration) (string, error)

	// Delete removes the object specified by the given key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether the object with the given key has been uploaded.
	Exists(ctx context.Context, key string) (bool, error)
}

// NewAvatarStore is the factory function for AvatarStore.
// It initializes and returns a concrete implementation based on the provided configuration.
func NewAvatarStore(cfg ServiceConfig) (AvatarStore, error) {
	// Currently, only S3-compatible implementations are supported.
	return newS3Store(cfg)
}
