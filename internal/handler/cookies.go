package handler

import (
	"net/http"

	"authapi/internal/configs"
	"authapi/internal/pkg/auth/jwt"
)

// RoleCookieName is the display-only cookie mirroring the account role.
// It is written for client convenience and never read for authorization;
// the role used by the server always comes from the verified session token.
const RoleCookieName = "role"

// setAuthCookies writes the session token and role cookies. Both are HttpOnly
// with SameSite=None and a max-age matching the token's validity window; the
// Secure attribute is set outside development so the cookies survive
// cross-site requests in browsers.
func setAuthCookies(w http.ResponseWriter, cfg *configs.AppConfig, token, role string) {
	maxAge := int(jwt.SessionExpiration.Seconds())

	http.SetCookie(w, &http.Cookie{
		Name:     jwt.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
		Secure:   cfg.IsProduction(),
	})

	http.SetCookie(w, &http.Cookie{
		Name:     RoleCookieName,
		Value:    role,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
		Secure:   cfg.IsProduction(),
	})
}

// clearAuthCookies expires both session cookies.
func clearAuthCookies(w http.ResponseWriter, cfg *configs.AppConfig) {
	for _, name := range []string{jwt.TokenCookieName, RoleCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteNoneMode,
			Secure:   cfg.IsProduction(),
		})
	}
}
