package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/warblerhq/warbler/internal/database"
	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/repository"
)

var ErrSelfFollow = errors.New("users cannot follow themselves")

type FollowService struct {
	db      *database.DB
	follows repository.FollowRepository
}

func NewFollowService(db *database.DB, follows repository.FollowRepository) *FollowService {
	return &FollowService{
		db:      db,
		follows: follows,
	}
}

// Follow inserts the (follower, followed) edge in one transaction.
// Following yourself is rejected before the store is touched. A
// duplicate edge propagates as a uniqueness violation, an unknown user
// as a foreign key violation.
func (s *FollowService) Follow(ctx context.Context, followerID, followedID uuid.UUID) error {
	if followerID == followedID {
		return ErrSelfFollow
	}

	edge := &domain.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.db.InTx(ctx, func(tx *sql.Tx) error {
		return s.follows.WithTx(tx).Create(ctx, edge)
	}); err != nil {
		return fmt.Errorf("creating follow edge: %w", err)
	}
	return nil
}

// Unfollow removes the edge if present and reports whether it was there.
// Removing an absent edge is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	var removed bool
	err := s.db.InTx(ctx, func(tx *sql.Tx) error {
		var err error
		removed, err = s.follows.WithTx(tx).Delete(ctx, followerID, followedID)
		return err
	})
	return removed, err
}

// IsFollowing reports whether followerID follows followedID.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	return s.follows.Exists(ctx, followerID, followedID)
}

// IsFollowedBy reports whether otherID follows userID.
func (s *FollowService) IsFollowedBy(ctx context.Context, userID, otherID uuid.UUID) (bool, error) {
	return s.follows.Exists(ctx, otherID, userID)
}

func (s *FollowService) Followers(ctx context.Context, userID uuid.UUID) ([]domain.User, error) {
	users, err := s.follows.ListFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *FollowService) Following(ctx context.Context, userID uuid.UUID) ([]domain.User, error) {
	users, err := s.follows.ListFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
