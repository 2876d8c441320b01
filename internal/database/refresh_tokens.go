package database

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CreateRefreshTokenParams struct {
	Token     string
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    uuid.UUID
	ExpiresAt time.Time
}

func (q *Queries) CreateRefreshToken(ctx context.Context, arg CreateRefreshTokenParams) (RefreshToken, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO refresh_tokens (token, created_at, updated_at, user_id, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING token, created_at, updated_at, user_id, expires_at, revoked_at`,
		arg.Token, arg.CreatedAt, arg.UpdatedAt, arg.UserID, arg.ExpiresAt,
	)
	var rt RefreshToken
	err := row.Scan(&rt.Token, &rt.CreatedAt, &rt.UpdatedAt, &rt.UserID, &rt.ExpiresAt, &rt.RevokedAt)
	return rt, err
}

func (q *Queries) GetUserFromRefreshToken(ctx context.Context, token string) (User, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT u.id, u.created_at, u.updated_at, u.email, u.hashed_password, u.api_key, u.is_premium
		FROM users u
		JOIN refresh_tokens rt ON rt.user_id = u.id
		WHERE rt.token = $1
		  AND rt.revoked_at IS NULL
		  AND rt.expires_at > NOW()`,
		token,
	)
	return scanUser(row)
}

func (q *Queries) RevokeRefreshToken(ctx context.Context, token string) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE refresh_tokens SET revoked_at = NOW(), updated_at = NOW() WHERE token = $1`,
		token,
	)
	return err
}
