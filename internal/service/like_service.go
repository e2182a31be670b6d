package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/warblerhq/warbler/internal/database"
	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/repository"
)

// ErrSelfLike is a domain rule, distinct from any store error: users may
// not like their own messages.
var ErrSelfLike = errors.New("users cannot like their own messages")

type LikeService struct {
	db       *database.DB
	likes    repository.LikeRepository
	messages repository.MessageRepository
}

func NewLikeService(db *database.DB, likes repository.LikeRepository, messages repository.MessageRepository) *LikeService {
	return &LikeService{
		db:       db,
		likes:    likes,
		messages: messages,
	}
}

// Toggle flips the like state for (userID, messageID) and reports the
// state after the call: true when the like was added, false when it was
// removed. There is no separate like/unlike entry point. The self-like
// check runs before any write; two toggles racing past the delete are
// caught by the store's unique (user, message) constraint.
func (s *LikeService) Toggle(ctx context.Context, userID, messageID uuid.UUID) (bool, error) {
	var liked bool

	err := s.db.InTx(ctx, func(tx *sql.Tx) error {
		messages := s.messages.WithTx(tx)
		likes := s.likes.WithTx(tx)

		msg, err := messages.GetByID(ctx, messageID)
		if err != nil {
			return err
		}
		if msg == nil {
			return ErrMessageNotFound
		}
		if msg.UserID == userID {
			return ErrSelfLike
		}

		removed, err := likes.Delete(ctx, userID, messageID)
		if err != nil {
			return err
		}
		if removed {
			liked = false
			return nil
		}

		like := &domain.Like{
			ID:        uuid.New(),
			UserID:    userID,
			MessageID: messageID,
			CreatedAt: time.Now().UTC(),
		}
		if err := likes.Create(ctx, like); err != nil {
			return err
		}
		liked = true
		return nil
	})

	return liked, err
}

// IsLiked reports whether userID currently likes messageID.
func (s *LikeService) IsLiked(ctx context.Context, userID, messageID uuid.UUID) (bool, error) {
	return s.likes.Exists(ctx, userID, messageID)
}

// LikesOf returns the messages userID has liked, most recent like first.
func (s *LikeService) LikesOf(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	msgs, err := s.likes.ListMessagesLikedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return msgs, nil
}

// LikeCount is the display aggregate for a single message.
func (s *LikeService) LikeCount(ctx context.Context, messageID uuid.UUID) (int, error) {
	return s.likes.CountByMessage(ctx, messageID)
}
