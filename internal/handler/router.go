/*
Package handler provides the HTTP handlers and routing setup for the account service.

This file defines the main Router, applying CORS, request logging, and panic
recovery before delegating to the account endpoints under /api/v1. Routes
requiring identity pass through the session Authenticator; admin-only routes
additionally pass the role gate.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"authapi/internal/app/user"
	"authapi/internal/pkg/auth/jwt"
	"authapi/internal/pkg/logx"
	"authapi/internal/pkg/resp"
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
func Router(deps *AppDeps) http.Handler {
	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "Auth API Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Route("/api/v1", func(api chi.Router) {
		api.Post("/register", HandleRegister(deps))
		api.Post("/login", HandleLogin(deps))
		api.Post("/logout", HandleLogout(deps))

		api.Group(func(priv chi.Router) {
			priv.Use(jwt.Authenticator(deps.Config.JWTSecret))

			priv.Get("/user", HandleGetUser(deps))
			priv.Patch("/user", HandleUpdateUser(deps))
			priv.Delete("/delete", HandleDeleteAccount(deps))
			priv.Post("/user/avatar/presign", HandlePresignAvatarURL(deps))

			priv.Group(func(admin chi.Router) {
				admin.Use(jwt.RequireRole(user.RoleAdmin))

				admin.Get("/users", HandleListUsers(deps))
				admin.Delete("/admin/delete", HandleAdminDeleteUser(deps))
			})
		})
	})

	return r
}
