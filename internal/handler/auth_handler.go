/*
Package handler provides the HTTP handlers and routing setup for the account service.

This file holds the unauthenticated session endpoints: registration, login, and logout.
*/
package handler

import (
	"errors"
	"net/http"

	"authapi/internal/app/user"
	"authapi/internal/pkg/auth/jwt"
	"authapi/internal/pkg/errs"
	"authapi/internal/pkg/logx"
	"authapi/internal/pkg/randx"
	"authapi/internal/pkg/req"
	"authapi/internal/pkg/resp"
	"authapi/internal/pkg/validate"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	// Bio and Image are accepted in the request body but ignored; new
	// accounts always start from the column defaults.
	Bio   string `json:"bio"`
	Image string `json:"image"`
}

// HandleRegister creates a new account, signs the caller in, and returns the
// created record with its session token.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input RegisterInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Name == "" || input.Email == "" || input.Password == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrMissingFields))
			return
		}

		if !validate.StrongPassword(input.Password) {
			resp.RespondError(w, r, errs.NewError(errs.ErrWeakPassword))
			return
		}

		if fields := validate.Collect(
			validate.Name(input.Name),
			validate.Email(input.Email),
		); len(fields) > 0 {
			resp.RespondError(w, r, errs.NewValidationError(fields))
			return
		}

		secret, err := deps.Hasher.Hash(input.Password)
		if err != nil {
			logx.Error(err, "register: password hashing failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		u := &user.User{
			ID:       randx.UserID(),
			Name:     input.Name,
			Email:    input.Email,
			Password: secret,
		}

		if err := deps.Users.Create(r.Context(), u); err != nil {
			if errors.Is(err, user.ErrEmailTaken) {
				logx.Warn("register: email already registered", "email", input.Email)
				resp.RespondError(w, r, errs.NewError(errs.ErrEmailTaken))
				return
			}

			logx.Error(err, "register: failed to create user in database")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		payload := &jwt.Payload{
			ID:   u.ID,
			Role: u.Role,
		}

		token, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.SessionExpiration)
		if err != nil {
			logx.Error(err, "register: token generation failed", "user_id", u.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		setAuthCookies(w, deps.Config, token, u.Role)

		resp.RespondCreated(w, r, map[string]any{
			"user":  u,
			"token": token,
		})
	}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies the caller's credentials and issues a fresh session token.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input LoginInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Email == "" || input.Password == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrMissingFields))
			return
		}

		u, err := deps.Users.GetByEmail(r.Context(), input.Email)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				logx.Warn("login: unknown email", "email", input.Email)
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
				return
			}

			logx.Error(err, "login: user fetch failed", "email", input.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		ok, err := deps.Hasher.Verify(input.Password, u.Password)
		if err != nil {
			logx.Error(err, "login: stored secret is malformed", "user_id", u.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}
		if !ok {
			logx.Warn("login: password mismatch", "user_id", u.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		payload := &jwt.Payload{
			ID:   u.ID,
			Role: u.Role,
		}

		token, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.SessionExpiration)
		if err != nil {
			logx.Error(err, "login: token generation failed", "user_id", u.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		setAuthCookies(w, deps.Config, token, u.Role)

		resp.RespondSuccess(w, r, map[string]any{
			"user":  u,
			"token": token,
		})
	}
}

// HandleLogout clears the session cookies. The token itself stays valid until
// its expiry; there is no server-side revocation.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(jwt.TokenCookieName); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNotLoggedIn))
			return
		}

		clearAuthCookies(w, deps.Config)

		resp.RespondSuccess(w, r, nil)
	}
}
