package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedEcho(t *testing.T, captured **Payload) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = GetPayloadFromContext(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticatorMissingCookie(t *testing.T) {
	var captured *Payload
	h := Authenticator(testSecret)(protectedEcho(t, &captured))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, captured)
}

func TestAuthenticatorInvalidToken(t *testing.T) {
	var captured *Payload
	h := Authenticator(testSecret)(protectedEcho(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "garbage"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, captured)
}

func TestAuthenticatorExpiredToken(t *testing.T) {
	var captured *Payload
	h := Authenticator(testSecret)(protectedEcho(t, &captured))

	token, err := GenerateToken(&Payload{ID: "u1", Role: "user"}, testSecret, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, captured)
}

func TestAuthenticatorValidToken(t *testing.T) {
	var captured *Payload
	h := Authenticator(testSecret)(protectedEcho(t, &captured))

	token, err := GenerateToken(&Payload{ID: "u1", Role: "admin"}, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "u1", captured.ID)
	assert.Equal(t, "admin", captured.Role)
}

func TestRequireRole(t *testing.T) {
	token, err := GenerateToken(&Payload{ID: "u1", Role: "user"}, testSecret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		allowed    []string
		wantStatus int
	}{
		{name: "role in set", allowed: []string{"user", "admin"}, wantStatus: http.StatusOK},
		{name: "role not in set", allowed: []string{"admin"}, wantStatus: http.StatusForbidden},
		{name: "empty set admits any authenticated caller", allowed: nil, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *Payload
			h := Authenticator(testSecret)(
				RequireRole(tt.allowed...)(protectedEcho(t, &captured)),
			)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireRoleWithoutAuthenticator(t *testing.T) {
	var captured *Payload
	h := RequireRole("admin")(protectedEcho(t, &captured))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
