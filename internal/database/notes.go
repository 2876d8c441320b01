package database

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CreateNoteParams struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Body      string
	UserID    uuid.UUID
}

func (q *Queries) CreateNote(ctx context.Context, arg CreateNoteParams) (Note, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO notes (id, created_at, updated_at, body, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at, body, user_id`,
		arg.ID, arg.CreatedAt, arg.UpdatedAt, arg.Body, arg.UserID,
	)
	var n Note
	err := row.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt, &n.Body, &n.UserID)
	return n, err
}

func (q *Queries) GetNotesForUser(ctx context.Context, userID uuid.UUID) ([]Note, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, created_at, updated_at, body, user_id
		FROM notes WHERE user_id = $1
		ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt, &n.Body, &n.UserID); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (q *Queries) GetNote(ctx context.Context, id uuid.UUID) (Note, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT id, created_at, updated_at, body, user_id
		FROM notes WHERE id = $1`,
		id,
	)
	var n Note
	err := row.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt, &n.Body, &n.UserID)
	return n, err
}

func (q *Queries) DeleteNote(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	return err
}
