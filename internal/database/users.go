package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type CreateUserParams struct {
	ID             uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Email          string
	HashedPassword string
	APIKey         string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO users (id, created_at, updated_at, email, hashed_password, api_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at, email, hashed_password, api_key, is_premium`,
		arg.ID, arg.CreatedAt, arg.UpdatedAt, arg.Email, arg.HashedPassword, arg.APIKey,
	)
	return scanUser(row)
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT id, created_at, updated_at, email, hashed_password, api_key, is_premium
		FROM users WHERE email = $1`,
		email,
	)
	return scanUser(row)
}

func (q *Queries) GetUserByAPIKey(ctx context.Context, apiKey string) (User, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT id, created_at, updated_at, email, hashed_password, api_key, is_premium
		FROM users WHERE api_key = $1`,
		apiKey,
	)
	return scanUser(row)
}

func (q *Queries) UpgradeUserToPremium(ctx context.Context, id uuid.UUID) error {
	result, err := q.db.ExecContext(ctx, `
		UPDATE users SET is_premium = TRUE, updated_at = NOW() WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (q *Queries) DeleteAllUsers(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM users`)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.Email, &u.HashedPassword, &u.APIKey, &u.IsPremium)
	return u, err
}
