package user

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredUser(t *testing.T, s *MemoryStore, id, name, email string) *User {
	t.Helper()

	u := &User{ID: id, Name: name, Email: email, Password: "hashed"}
	require.NoError(t, s.Create(context.Background(), u))
	return u
}

func TestMemoryStoreCreateDefaults(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	u := newStoredUser(t, s, "id-1", "Ann", "ann@x.com")

	assert.Equal(t, DefaultBio, u.Bio)
	assert.Equal(t, DefaultImage, u.Image)
	assert.Equal(t, RoleUser, u.Role)
	assert.False(t, u.IsVerified)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestMemoryStoreDuplicateEmail(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	newStoredUser(t, s, "id-1", "Ann", "ann@x.com")

	err := s.Create(context.Background(), &User{ID: "id-2", Name: "Bob", Email: "ann@x.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// The first registration is unaffected.
	got, err := s.GetByEmail(context.Background(), "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
}

func TestMemoryStorePartialUpdate(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	u := newStoredUser(t, s, "id-1", "Ann", "ann@x.com")

	bio := "new bio"
	updated, err := s.Update(context.Background(), u.ID, Patch{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "new bio", updated.Bio)
	assert.Equal(t, "Ann", updated.Name)
	assert.Equal(t, "ann@x.com", updated.Email)
	assert.Equal(t, "hashed", updated.Password)
	assert.Equal(t, DefaultImage, updated.Image)
}

func TestMemoryStoreUpdateEmailCollision(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	newStoredUser(t, s, "id-1", "Ann", "ann@x.com")
	bob := newStoredUser(t, s, "id-2", "Bob", "bob@x.com")

	taken := "ann@x.com"
	_, err := s.Update(context.Background(), bob.ID, Patch{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestMemoryStoreDelete(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	u := newStoredUser(t, s, "id-1", "Ann", "ann@x.com")

	require.NoError(t, s.Delete(context.Background(), u.ID))

	_, err := s.GetByID(context.Background(), u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetByEmail(context.Background(), u.Email)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(context.Background(), u.ID), ErrNotFound)
}

func TestUserJSONExcludesPassword(t *testing.T) {
	t.Parallel()

	u := User{ID: "id-1", Name: "Ann", Email: "ann@x.com", Password: "hashed"}

	raw, err := json.Marshal(u)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.NotContains(t, fields, "password")
	assert.NotContains(t, string(raw), "hashed")
	assert.Equal(t, "ann@x.com", fields["email"])
}
