/*
Package randx provides generation of unique, collision-resistant identifiers.

Account identifiers are opaque strings, never sequential integers, so an
identifier leaks nothing about registration order or account count.
*/
package randx

import "github.com/google/uuid"

// UserID generates a UUID v4 string to serve as a unique account identifier.
func UserID() string {
	return uuid.New().String()
}
