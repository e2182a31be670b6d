package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/repository"
)

// ProfileStats are the aggregates shown on a profile header.
type ProfileStats struct {
	Messages  int `json:"messages"`
	Following int `json:"following"`
	Followers int `json:"followers"`
	Likes     int `json:"likes"`
}

type ProfileService struct {
	users    repository.UserRepository
	messages repository.MessageRepository
	follows  repository.FollowRepository
	likes    repository.LikeRepository
}

func NewProfileService(
	users repository.UserRepository,
	messages repository.MessageRepository,
	follows repository.FollowRepository,
	likes repository.LikeRepository,
) *ProfileService {
	return &ProfileService{
		users:    users,
		messages: messages,
		follows:  follows,
		likes:    likes,
	}
}

// Stats gathers the four profile counts concurrently. Each count writes
// a distinct field, so no locking is needed.
func (s *ProfileService) Stats(ctx context.Context, userID uuid.UUID) (*ProfileStats, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	var stats ProfileStats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats.Messages, err = s.messages.CountByUser(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Following, err = s.follows.CountFollowing(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Followers, err = s.follows.CountFollowers(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Likes, err = s.likes.CountByUser(ctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Search matches users by username substring; an empty query lists all
// users, which is the index page behavior.
func (s *ProfileService) Search(ctx context.Context, q string) ([]domain.User, error) {
	users, err := s.users.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
