package sqldb

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/warblerhq/warbler/internal/database"
	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/repository"
)

type LikeRepo struct {
	q database.Querier
}

func NewLikeRepo(db *database.DB) *LikeRepo {
	return &LikeRepo{q: db}
}

func (r *LikeRepo) WithTx(tx *sql.Tx) repository.LikeRepository {
	return &LikeRepo{q: tx}
}

// Create inserts the edge as-is; the UNIQUE (user_id, message_id)
// constraint is what turns a racing double insert into a loud failure.
func (r *LikeRepo) Create(ctx context.Context, like *domain.Like) error {
	query := `
		INSERT INTO likes (id, user_id, message_id, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.q.ExecContext(ctx, query, like.ID, like.UserID, like.MessageID, like.CreatedAt)
	return err
}

func (r *LikeRepo) Delete(ctx context.Context, userID, messageID uuid.UUID) (bool, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND message_id = $2`,
		userID, messageID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *LikeRepo) Exists(ctx context.Context, userID, messageID uuid.UUID) (bool, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM likes WHERE user_id = $1 AND message_id = $2`,
		userID, messageID,
	).Scan(&n)
	return n > 0, err
}

// ListMessagesLikedBy returns the liked messages, most recently liked
// first.
func (r *LikeRepo) ListMessagesLikedBy(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	query := `
		SELECT m.id, m.user_id, m.text, m.created_at, u.username
		FROM likes l
		JOIN messages m ON l.message_id = m.id
		JOIN users u ON m.user_id = u.id
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC, l.id`

	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

func (r *LikeRepo) CountByMessage(ctx context.Context, messageID uuid.UUID) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM likes WHERE message_id = $1`, messageID,
	).Scan(&n)
	return n, err
}

func (r *LikeRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM likes WHERE user_id = $1`, userID,
	).Scan(&n)
	return n, err
}
