package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/warblerhq/warbler/internal/database"
	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/repository"
)

type MessageRepo struct {
	q database.Querier
}

func NewMessageRepo(db *database.DB) *MessageRepo {
	return &MessageRepo{q: db}
}

func (r *MessageRepo) WithTx(tx *sql.Tx) repository.MessageRepository {
	return &MessageRepo{q: tx}
}

func (r *MessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.q.ExecContext(ctx, query, msg.ID, msg.UserID, msg.Text, msg.CreatedAt)
	return err
}

func (r *MessageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	query := `
		SELECT m.id, m.user_id, m.text, m.created_at, u.username
		FROM messages m
		JOIN users u ON m.user_id = u.id
		WHERE m.id = $1`

	var msg domain.Message
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&msg.ID, &msg.UserID, &msg.Text, &msg.CreatedAt, &msg.AuthorUsername,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &msg, err
}

// ListByUser returns a user's messages newest first. The id tiebreak
// keeps the order stable for same-instant rows.
func (r *MessageRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	query := `
		SELECT m.id, m.user_id, m.text, m.created_at, u.username
		FROM messages m
		JOIN users u ON m.user_id = u.id
		WHERE m.user_id = $1
		ORDER BY m.created_at DESC, m.id`

	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

func (r *MessageRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM messages WHERE user_id = $1`, userID,
	).Scan(&n)
	return n, err
}

func (r *MessageRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanMessages(rows *sql.Rows) ([]domain.Message, error) {
	var msgs []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID, &msg.UserID, &msg.Text, &msg.CreatedAt, &msg.AuthorUsername,
		); err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}
