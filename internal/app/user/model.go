/*
Package user contains the account entity and its persistence layer.

The User struct is the sole entity of the service. Its password field holds the
one-way hashed secret and is excluded from JSON serialization, so a User value
can be returned from a handler as-is without ever leaking the secret.
*/
package user

import "time"

// Account roles. The database enforces the enumeration; these constants are the
// only values the service ever writes or compares.
const (
	RoleUser    = "user"
	RoleCreator = "creator"
	RoleAdmin   = "admin"
)

// Defaults applied by the users table for columns the client does not supply.
const (
	DefaultBio   = "I'm a new user!"
	DefaultImage = "https://example.com/avatar.jpg"
)

// User represents a registered account.
type User struct {
	// ID is the opaque, immutable account identifier assigned at creation.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Email is unique across all accounts.
	Email string `json:"email"`

	// Password is the hashed password secret. Never serialized.
	Password string `json:"-"`

	// Bio is a short biography, defaulted at creation.
	Bio string `json:"bio"`

	// Image is the avatar URL, defaulted at creation.
	Image string `json:"image"`

	// Role is one of RoleUser, RoleCreator, RoleAdmin.
	Role string `json:"role"`

	// IsVerified reports whether the account's email has been verified.
	IsVerified bool `json:"isVerified"`

	// CreatedAt is set once at registration and never mutated.
	CreatedAt time.Time `json:"createdAt"`
}
