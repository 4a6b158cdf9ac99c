/*
Package hashx wraps bcrypt password hashing behind a small, explicit API.

Every hash embeds a fresh random salt, so hashing the same plaintext twice
yields different secrets while both still verify. The adaptive cost factor is
configurable; verification runs in constant time on the bcrypt side.
*/
package hashx

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedSecret is returned by Verify when the stored secret is not a
// valid bcrypt hash. A plain password mismatch is not an error.
var ErrMalformedSecret = errors.New("hashx: stored secret is not a valid bcrypt hash")

// Hasher hashes and verifies passwords with a fixed adaptive cost factor.
type Hasher struct {
	cost int
}

// New returns a Hasher with the given bcrypt cost. Costs outside bcrypt's
// supported range are clamped to the default.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash transforms the plaintext password into a salted, one-way secret.
// It fails only on catastrophic internal error.
func (h *Hasher) Hash(plaintext string) (string, error) {
	secret, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

// Verify recomputes the hash of plaintext using the salt embedded in secret
// and compares the results. It returns false on mismatch and ErrMalformedSecret
// only when secret cannot be parsed as a bcrypt hash.
func (h *Hasher) Verify(plaintext, secret string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(secret), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrMalformedSecret
}
