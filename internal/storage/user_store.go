package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kunalverma25/gomart/internal/database"
	"github.com/kunalverma25/gomart/internal/models/user"
)

const uniqueViolation = "23505"

type PGUserStore struct {
	db *database.Manager
}

func NewUserStore(db *database.Manager) *PGUserStore {
	return &PGUserStore{db: db}
}

// EnsureSchema creates the users table if it does not exist. The UNIQUE
// constraint on email is what makes concurrent duplicate registration safe.
func (s *PGUserStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	if _, err := s.db.Pool().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	return nil
}

func (s *PGUserStore) Create(ctx context.Context, email, passwordHash, name string) (*user.User, error) {
	query := `
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING id, email, name, created_at
	`

	var u user.User
	err := s.db.Pool().QueryRow(ctx, query, email, passwordHash, name).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &u, nil
}

func (s *PGUserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, email, name, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	var u user.User
	err := s.db.Pool().QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}
