package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the JSON Web Token claims asserted by a session token.
// It combines the standard claims required for validity checks with the two
// custom claims the service authorizes on: the account identifier and role.
type Payload struct {
	// StandardClaims embeds the JWT standard fields such as Exp (Expiration),
	// Iat (Issued At), and Iss (Issuer). These drive token validity checks.
	jwt.StandardClaims

	// ID is the unique identifier of the account the token was issued for.
	ID string `json:"id"`

	// Role is the account's role at issuance time ("user", "creator", or
	// "admin"). Authorization decisions read the role from here and nowhere
	// else; the separate role cookie is display-only.
	Role string `json:"role"`
}
