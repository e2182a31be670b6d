// Package sqldb implements the repositories over database/sql. All query
// text uses $N placeholders, which both postgres and sqlite accept, so a
// single implementation serves both drivers.
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

const userColumns = "id, username, email, password_hash, image_url, header_image_url, bio, location, created_at"

type UserRepo struct {
	q database.Querier
}

func NewUserRepo(db *database.DB) *UserRepo {
	return &UserRepo{q: db}
}

func (r *UserRepo) WithTx(tx *sql.Tx) repository.UserRepository {
	return &UserRepo{q: tx}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.q.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.ImageURL, user.HeaderImageURL, user.Bio, user.Location, user.CreatedAt,
	)
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
}

// Search matches usernames by substring; an empty query lists everyone.
func (r *UserRepo) Search(ctx context.Context, q string) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username LIKE '%' || $1 || '%'
		ORDER BY username ASC`

	rows, err := r.q.QueryContext(ctx, query, q)
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

func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *UserRepo) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.q.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.ImageURL, &u.HeaderImageURL, &u.Bio, &u.Location, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &u, err
}
