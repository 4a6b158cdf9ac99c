package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"authapi/internal/app/db"
)

const userColumns = "id, name, email, password, bio, image, role, is_verified, created_at"

// PostgresStore implements Store over a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore returns a Store backed by the given pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func scanUser(row pgx.Row, u *User) error {
	return row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Password,
		&u.Bio,
		&u.Image,
		&u.Role,
		&u.IsVerified,
		&u.CreatedAt,
	)
}

// Create inserts the account and reads the column defaults (bio, image, role,
// verified flag, creation timestamp) back into u. A unique-constraint hit on
// the email index is reported as ErrEmailTaken.
func (s *PostgresStore) Create(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (id, name, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING bio, image, role, is_verified, created_at`

	err := s.pool.QueryRow(ctx, query, u.ID, u.Name, u.Email, u.Password).
		Scan(&u.Bio, &u.Image, &u.Role, &u.IsVerified, &u.CreatedAt)

	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (s *PostgresStore) GetByID(ctx context.Context, id string) (*User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)

	u := &User{}
	if err := scanUser(s.pool.QueryRow(ctx, query, id), u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = $1", userColumns)

	u := &User{}
	if err := scanUser(s.pool.QueryRow(ctx, query, email), u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]User, error) {
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY created_at", userColumns)

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return users, nil
}

// Update builds a SET clause from the non-nil patch fields and returns the
// updated record. Email collisions map to ErrEmailTaken, a vanished account
// to ErrNotFound.
func (s *PostgresStore) Update(ctx context.Context, id string, patch Patch) (*User, error) {
	var sets []string
	var args []any

	addSet := func(column string, value *string) {
		if value != nil {
			args = append(args, *value)
			sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
		}
	}

	addSet("name", patch.Name)
	addSet("email", patch.Email)
	addSet("bio", patch.Bio)
	addSet("image", patch.Image)
	addSet("password", patch.Password)

	if len(sets) == 0 {
		return s.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), userColumns,
	)

	u := &User{}
	if err := scanUser(s.pool.QueryRow(ctx, query, args...), u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
