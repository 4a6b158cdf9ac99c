package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	// SessionExpiration defines the validity window of a session token.
	SessionExpiration = 7 * 24 * time.Hour

	// TokenIssuer identifies the issuer of the token.
	TokenIssuer = "AuthAPI-Server"

	// TokenCookieName is the cookie the session token travels in.
	TokenCookieName = "token"
)

var (
	// ErrTokenExpired reports a well-formed, correctly signed token past its
	// validity window.
	ErrTokenExpired = errors.New("jwt: token expired")

	// ErrTokenInvalid reports a malformed token, a bad signature, or an
	// unexpected signing method.
	ErrTokenInvalid = errors.New("jwt: token invalid")
)

// GenerateToken creates and signs a new session token for the given account
// identity and role, valid for the provided duration.
func GenerateToken(payload *Payload, secretKey string, duration time.Duration) (string, error) {
	now := time.Now()

	payload.StandardClaims = jwt.StandardClaims{
		ExpiresAt: now.Add(duration).Unix(),
		IssuedAt:  now.Unix(),
		Issuer:    TokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)

	return token.SignedString([]byte(secretKey))
}

// ParseToken parses and validates a session token string using the provided
// secretKey. Expiry is reported as ErrTokenExpired; every other failure mode
// (malformed token, wrong signature, wrong algorithm) as ErrTokenInvalid, so
// callers can reject uniformly while observability keeps the distinction.
func ParseToken(tokenString string, secretKey string) (*Payload, error) {
	claims := &Payload{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
