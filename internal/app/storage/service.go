/*
Package storage provides presigned S3 access for avatar images.

Clients never upload through the API server. They request a time-limited
presigned URL, PUT the image straight to the bucket, then PATCH the resulting
public URL into their profile.
*/
package storage

import (
	"context"
	"time"
)

// PresignedURLDuration is the validity window of a presigned upload URL.
const PresignedURLDuration = 10 * time.Minute

// ServiceConfig holds the configuration required to connect to the storage backend.
type ServiceConfig struct {
	S3BucketName      string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// Service defines the public interface for avatar storage.
type Service interface {
	// PresignUpload generates a pre-signed URL for uploading a file.
	PresignUpload(
		ctx context.Context,
		key string,
		mimeType string,
		fileSize int64,
		duration time.Duration,
	) (string, error)

	// Delete removes the file specified by the given key.
	Delete(ctx context.Context, key string) error

	// PublicURL returns the address the uploaded object is served from.
	PublicURL(key string) string
}

// NewService is the factory function for Service.
// Currently only S3-compatible backends are supported.
func NewService(cfg ServiceConfig) (Service, error) {
	return newS3Client(cfg)
}
