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

var ErrMessageNotFound = errors.New("message not found")

type MessageService struct {
	db       *database.DB
	messages repository.MessageRepository
}

func NewMessageService(db *database.DB, messages repository.MessageRepository) *MessageService {
	return &MessageService{
		db:       db,
		messages: messages,
	}
}

// Post stages a message for ownerID and persists it in one transaction.
// Text bounds (non-empty, at most 140 chars) are enforced by the store
// and surface here as validation errors; an unknown owner surfaces as a
// foreign key violation.
func (s *MessageService) Post(ctx context.Context, ownerID uuid.UUID, text string) (*domain.Message, error) {
	msg := &domain.Message{
		ID:        uuid.New(),
		UserID:    ownerID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.db.InTx(ctx, func(tx *sql.Tx) error {
		return s.messages.WithTx(tx).Create(ctx, msg)
	}); err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}
	return msg, nil
}

func (s *MessageService) Get(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}
	return msg, nil
}

// MessagesOf returns all messages owned by userID, newest first.
func (s *MessageService) MessagesOf(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	msgs, err := s.messages.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return msgs, nil
}

// Delete removes a message; its like edges go with it via cascade.
func (s *MessageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.InTx(ctx, func(tx *sql.Tx) error {
		removed, err := s.messages.WithTx(tx).Delete(ctx, id)
		if err != nil {
			return err
		}
		if !removed {
			return ErrMessageNotFound
		}
		return nil
	})
}
