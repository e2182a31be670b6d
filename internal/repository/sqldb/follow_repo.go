package sqldb

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/warblerhq/warbler/internal/database"
	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/repository"
)

type FollowRepo struct {
	q database.Querier
}

func NewFollowRepo(db *database.DB) *FollowRepo {
	return &FollowRepo{q: db}
}

func (r *FollowRepo) WithTx(tx *sql.Tx) repository.FollowRepository {
	return &FollowRepo{q: tx}
}

// Create inserts the edge as-is. A duplicate (follower, followed) pair is
// a primary key violation and must surface, never be swallowed.
func (r *FollowRepo) Create(ctx context.Context, edge *domain.Follow) error {
	query := `
		INSERT INTO follows (follower_id, followed_id, created_at)
		VALUES ($1, $2, $3)`

	_, err := r.q.ExecContext(ctx, query, edge.FollowerID, edge.FollowedID, edge.CreatedAt)
	return err
}

func (r *FollowRepo) Delete(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`,
		followerID, followedID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Exists scans a count rather than EXISTS because sqlite hands the result
// back as an integer.
func (r *FollowRepo) Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM follows WHERE follower_id = $1 AND followed_id = $2`,
		followerID, followedID,
	).Scan(&n)
	return n > 0, err
}

const followUserColumns = "u.id, u.username, u.email, u.password_hash, u.image_url, u.header_image_url, u.bio, u.location, u.created_at"

func (r *FollowRepo) ListFollowers(ctx context.Context, userID uuid.UUID) ([]domain.User, error) {
	query := `
		SELECT ` + followUserColumns + `
		FROM follows f
		JOIN users u ON f.follower_id = u.id
		WHERE f.followed_id = $1
		ORDER BY u.username ASC`

	return r.listUsers(ctx, query, userID)
}

func (r *FollowRepo) ListFollowing(ctx context.Context, userID uuid.UUID) ([]domain.User, error) {
	query := `
		SELECT ` + followUserColumns + `
		FROM follows f
		JOIN users u ON f.followed_id = u.id
		WHERE f.follower_id = $1
		ORDER BY u.username ASC`

	return r.listUsers(ctx, query, userID)
}

func (r *FollowRepo) CountFollowers(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM follows WHERE followed_id = $1`, userID,
	).Scan(&n)
	return n, err
}

func (r *FollowRepo) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM follows WHERE follower_id = $1`, userID,
	).Scan(&n)
	return n, err
}

func (r *FollowRepo) listUsers(ctx context.Context, query string, arg any) ([]domain.User, error) {
	rows, err := r.q.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.PasswordHash,
			&u.ImageURL, &u.HeaderImageURL, &u.Bio, &u.Location, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
