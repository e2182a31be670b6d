package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/warblerhq/warbler/internal/database"
	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	db    *database.DB
	users repository.UserRepository
}

func NewUserService(db *database.DB, users repository.UserRepository) *UserService {
	return &UserService{
		db:    db,
		users: users,
	}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Delete removes the user row; the store cascades to owned messages,
// follow edges on both sides, and like edges, leaving no dangling
// references.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.InTx(ctx, func(tx *sql.Tx) error {
		removed, err := s.users.WithTx(tx).Delete(ctx, id)
		if err != nil {
			return err
		}
		if !removed {
			return ErrUserNotFound
		}
		return nil
	})
}
