/*
Package handler provides the HTTP handlers and routing setup for the account service.

This file holds the authenticated account endpoints: profile retrieval, the
admin listing, partial updates, deletion (self and admin), and avatar upload
presigning. Every endpoint acting on "self" resolves the target from the
verified token in the request context; none of them accepts a target
identifier from the caller.
*/
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"authapi/internal/app/storage"
	"authapi/internal/app/user"
	"authapi/internal/pkg/auth/jwt"
	"authapi/internal/pkg/errs"
	"authapi/internal/pkg/logx"
	"authapi/internal/pkg/randx"
	"authapi/internal/pkg/req"
	"authapi/internal/pkg/resp"
	"authapi/internal/pkg/validate"
)

// MaxAvatarSize caps presigned avatar uploads at 5 MB.
const MaxAvatarSize int64 = 5 << 20

// HandleGetUser returns the authenticated caller's own record.
func HandleGetUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := jwt.GetPayloadFromContext(r)
		if payload == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthenticated))
			return
		}

		u, err := deps.Users.GetByID(r.Context(), payload.ID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				// Token outlives the account when the row was deleted.
				logx.Warn("get_user: account no longer exists", "user_id", payload.ID)
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
				return
			}

			logx.Error(err, "get_user: fetch failed", "user_id", payload.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"user": u,
		})
	}
}

// HandleListUsers returns every account. Admin-only; an empty table answers
// 404 per the documented API behavior.
func HandleListUsers(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := deps.Users.List(r.Context())
		if err != nil {
			logx.Error(err, "list_users: fetch failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		if len(users) == 0 {
			resp.RespondError(w, r, errs.NewError(errs.ErrNoUsersFound))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"users": users,
		})
	}
}

type UpdateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Password string `json:"password"`
}

// HandleUpdateUser applies a partial update to the caller's own record.
// Only the provided fields change; a provided password is re-hashed before
// storage.
func HandleUpdateUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := jwt.GetPayloadFromContext(r)
		if payload == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthenticated))
			return
		}

		var input UpdateUserInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Name == "" && input.Email == "" && input.Bio == "" &&
			input.Image == "" && input.Password == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrNoUpdateFields))
			return
		}

		var fields []errs.FieldError
		patch := user.Patch{}

		if input.Name != "" {
			if fe := validate.Name(input.Name); fe != nil {
				fields = append(fields, *fe)
			} else {
				patch.Name = &input.Name
			}
		}
		if input.Email != "" {
			if fe := validate.Email(input.Email); fe != nil {
				fields = append(fields, *fe)
			} else {
				patch.Email = &input.Email
			}
		}
		if input.Bio != "" {
			if fe := validate.Bio(input.Bio); fe != nil {
				fields = append(fields, *fe)
			} else {
				patch.Bio = &input.Bio
			}
		}
		if input.Image != "" {
			if fe := validate.Image(input.Image); fe != nil {
				fields = append(fields, *fe)
			} else {
				patch.Image = &input.Image
			}
		}

		if len(fields) > 0 {
			resp.RespondError(w, r, errs.NewValidationError(fields))
			return
		}

		if input.Password != "" {
			if !validate.StrongPassword(input.Password) {
				resp.RespondError(w, r, errs.NewError(errs.ErrWeakPassword))
				return
			}

			secret, err := deps.Hasher.Hash(input.Password)
			if err != nil {
				logx.Error(err, "update_user: password hashing failed", "user_id", payload.ID)
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
				return
			}
			patch.Password = &secret
		}

		u, err := deps.Users.Update(r.Context(), payload.ID, patch)
		if err != nil {
			switch {
			case errors.Is(err, user.ErrNotFound):
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			case errors.Is(err, user.ErrEmailTaken):
				logx.Warn("update_user: email already registered", "user_id", payload.ID)
				resp.RespondError(w, r, errs.NewError(errs.ErrEmailTaken))
			default:
				logx.Error(err, "update_user: update failed", "user_id", payload.ID)
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			}
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"user": u,
		})
	}
}

// HandleDeleteAccount permanently deletes the caller's own account and clears
// the session cookies. Deletion is immediate; there is no soft delete.
func HandleDeleteAccount(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := jwt.GetPayloadFromContext(r)
		if payload == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthenticated))
			return
		}

		if err := deps.Users.Delete(r.Context(), payload.ID); err != nil {
			if errors.Is(err, user.ErrNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
				return
			}

			logx.Error(err, "delete_account: delete failed", "user_id", payload.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		clearAuthCookies(w, deps.Config)

		resp.RespondSuccess(w, r, nil)
	}
}

type AdminDeleteInput struct {
	ID string `json:"id"`
}

// HandleAdminDeleteUser deletes the account named in the request body. The
// role gate on the route is the only safeguard: any admin may delete any
// account, including another admin.
func HandleAdminDeleteUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input AdminDeleteInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.ID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrMissingTargetID))
			return
		}

		if err := deps.Users.Delete(r.Context(), input.ID); err != nil {
			if errors.Is(err, user.ErrNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
				return
			}

			logx.Error(err, "admin_delete: delete failed", "target_id", input.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}

// PresignAvatarInput defines the JSON input structure for generating an avatar upload URL.
type PresignAvatarInput struct {
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
	FileSize int64  `json:"file_size"`
}

// HandlePresignAvatarURL generates a time-limited presigned URL for uploading
// an avatar image. The client uploads directly to storage and then updates its
// profile image with the returned public URL.
func HandlePresignAvatarURL(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := jwt.GetPayloadFromContext(r)
		if payload == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthenticated))
			return
		}

		if deps.Storage == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrStorageFailed))
			return
		}

		var input PresignAvatarInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !strings.HasPrefix(input.MimeType, "image/") {
			resp.RespondError(w, r, errs.NewError(errs.ErrAvatarTypeInvalid))
			return
		}

		if input.FileSize <= 0 || input.FileSize > MaxAvatarSize {
			resp.RespondError(w, r, errs.NewError(errs.ErrAvatarTooLarge))
			return
		}

		fileExt := strings.ToLower(filepath.Ext(input.FileName))
		fileKey := fmt.Sprintf("avatars/%s/%s%s", payload.ID, randx.UserID(), fileExt)

		url, err := deps.Storage.PresignUpload(
			r.Context(),
			fileKey,
			input.MimeType,
			input.FileSize,
			storage.PresignedURLDuration,
		)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrStorageFailed))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"presignedUrl": url,
			"fileKey":      fileKey,
			"publicUrl":    deps.Storage.PublicURL(fileKey),
		})
	}
}
