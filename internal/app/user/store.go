package user

import (
	"context"
	"errors"
)

var (
	// ErrNotFound reports that no account matched the given identifier or email.
	ErrNotFound = errors.New("user: not found")

	// ErrEmailTaken reports a create or update that collided with the unique
	// email constraint.
	ErrEmailTaken = errors.New("user: email already registered")
)

// Patch describes a partial account update. Nil fields are left unchanged;
// Password, when set, must already be hashed.
type Patch struct {
	Name     *string
	Email    *string
	Bio      *string
	Image    *string
	Password *string
}

// IsEmpty reports whether the patch would change nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Bio == nil && p.Image == nil && p.Password == nil
}

// Store is the persistence contract for accounts. Implementations map their
// backend's failure modes onto ErrNotFound and ErrEmailTaken; any other error
// is an internal failure.
type Store interface {
	// Create persists a new account. The caller supplies ID, Name, Email, and
	// the hashed Password; the store fills the remaining defaulted columns
	// back into u.
	Create(ctx context.Context, u *User) error

	// GetByID fetches an account by its identifier.
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail fetches an account by its unique email, secret included.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// List returns every account, oldest first.
	List(ctx context.Context) ([]User, error)

	// Update applies the non-nil fields of patch to the account and returns
	// the updated record.
	Update(ctx context.Context, id string, patch Patch) (*User, error)

	// Delete removes the account permanently.
	Delete(ctx context.Context, id string) error
}
