package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/widyatama/credential-service/internal/auth/domain"
	autherror "github.com/widyatama/credential-service/internal/errors"
)

// DB is the slice of pgxpool.Pool the repository needs. pgxmock satisfies it
// too, which is how the tests drive this package without a database.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_hash, verified, created_at, updated_at
		FROM users
		WHERE username = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, username)

	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.Verified, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &user, nil
}

// Create inserts the user record. The username uniqueness race is decided by
// Postgres: a conflicting insert affects zero rows and is reported as a
// duplicate, never an overwrite.
func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	tag, err := r.db.Exec(ctx, `
        INSERT INTO users (id, username, email, password_hash, verified, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (username) DO NOTHING
    `, user.ID, user.Username, user.Email, user.PasswordHash, user.Verified,
		user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return autherror.ErrUsernameAlreadyInUse
	}

	return nil
}

// MarkVerified flips the verified flag. Re-verifying an already-verified user
// matches the row again, so the call stays idempotent.
func (r *PostgresRepository) MarkVerified(ctx context.Context, username string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET verified = true, updated_at = now()
		WHERE username = $1
	`, username)
	if err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return autherror.ErrUserNotFound
	}

	return nil
}
