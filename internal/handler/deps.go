package handler

import (
	"authapi/internal/app/storage"
	"authapi/internal/app/user"
	"authapi/internal/configs"
	"authapi/internal/pkg/hashx"
)

// AppDeps bundles the collaborators every handler needs. It is constructed
// once at startup and passed explicitly; no handler reaches for globals.
type AppDeps struct {
	Config *configs.AppConfig
	Users  user.Store
	Hasher *hashx.Hasher

	// Storage is nil when avatar storage is not configured; the presign
	// endpoint then reports the storage-unavailable error.
	Storage storage.Service
}
