package jwt

import (
	"context"
	"errors"
	"net/http"

	"authapi/internal/pkg/errs"
	"authapi/internal/pkg/logx"
	"authapi/internal/pkg/resp"
)

// Context key for storing the Payload struct, preventing key collisions with other packages.
type contextKey string

const (
	// ContextAuthPayloadKey is the key used to store the verified Payload (user identity) in the request Context.
	ContextAuthPayloadKey contextKey = "auth_payload"
)

// Authenticator extracts the session token from the request's token cookie and
// validates it. On success the verified Payload is injected into the request
// Context; a missing, invalid, or expired token terminates the request with 401.
func Authenticator(secretKey string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(TokenCookieName)
			if err != nil {
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthenticated))
				return
			}

			payload, err := ParseToken(cookie.Value, secretKey)
			if err != nil {
				if errors.Is(err, ErrTokenExpired) {
					logx.Warn("Expired session token presented")
					resp.RespondError(w, r, errs.NewError(errs.ErrTokenExpired))
					return
				}

				logx.Warn("Invalid session token presented", "error", err)
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthenticated))
				return
			}

			ctx := context.WithValue(r.Context(), ContextAuthPayloadKey, payload)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route on the verified identity's role. The role comes
// exclusively from the token payload placed in the Context by Authenticator;
// an empty allowed set admits any authenticated caller. Callers whose role is
// not in the set are rejected with 403.
func RequireRole(allowedRoles ...string) func(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload := GetPayloadFromContext(r)
			if payload == nil {
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthenticated))
				return
			}

			if len(allowed) > 0 {
				if _, ok := allowed[payload.Role]; !ok {
					logx.Warn("Role check failed", "user_id", payload.ID, "role", payload.Role)
					resp.RespondError(w, r, errs.NewError(errs.ErrForbidden))
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetPayloadFromContext safely extracts the verified Payload from the request Context.
// A nil return means the route was reached without passing Authenticator.
func GetPayloadFromContext(r *http.Request) *Payload {
	payload, ok := r.Context().Value(ContextAuthPayloadKey).(*Payload)

	if !ok {
		return nil
	}

	return payload
}
