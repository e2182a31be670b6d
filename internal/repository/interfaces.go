package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/warblerhq/warbler/internal/domain"
)

// Repositories run against the store handle by default; WithTx returns a
// view bound to an open transaction so a service can scope one operation
// to one commit.

type UserRepository interface {
	WithTx(tx *sql.Tx) UserRepository
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Search(ctx context.Context, q string) ([]domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type MessageRepository interface {
	WithTx(tx *sql.Tx) MessageRepository
	Create(ctx context.Context, msg *domain.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Message, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type FollowRepository interface {
	WithTx(tx *sql.Tx) FollowRepository
	Create(ctx context.Context, edge *domain.Follow) error
	Delete(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]domain.User, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]domain.User, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int, error)
}

type LikeRepository interface {
	WithTx(tx *sql.Tx) LikeRepository
	Create(ctx context.Context, like *domain.Like) error
	Delete(ctx context.Context, userID, messageID uuid.UUID) (bool, error)
	Exists(ctx context.Context, userID, messageID uuid.UUID) (bool, error)
	ListMessagesLikedBy(ctx context.Context, userID uuid.UUID) ([]domain.Message, error)
	CountByMessage(ctx context.Context, messageID uuid.UUID) (int, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
