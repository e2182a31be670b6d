package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/warblerhq/warbler/internal/credentials"
	"github.com/warblerhq/warbler/internal/database"
	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/repository"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type AuthService struct {
	db        *database.DB
	users     repository.UserRepository
	jwtSecret []byte
}

func NewAuthService(db *database.DB, users repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		users:     users,
		jwtSecret: []byte(jwtSecret),
	}
}

type SignupInput struct {
	Username string
	Password string
	Email    string
	ImageURL string
	Location string
}

// Signup stages a new user: the password is hashed and profile defaults
// filled in, but nothing touches the store. Signup never fails on
// constraint grounds; uniqueness and required-field violations surface
// only when the staged user is committed.
func (s *AuthService) Signup(input SignupInput) (*domain.User, error) {
	hash, err := credentials.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	imageURL := input.ImageURL
	if imageURL == "" {
		imageURL = domain.DefaultImageURL
	}

	user := &domain.User{
		ID:             uuid.New(),
		Username:       input.Username,
		Email:          input.Email,
		PasswordHash:   hash,
		ImageURL:       imageURL,
		HeaderImageURL: domain.DefaultHeaderImageURL,
		CreatedAt:      time.Now().UTC(),
	}
	if input.Location != "" {
		location := input.Location
		user.Location = &location
	}
	return user, nil
}

// Commit persists a staged user in one transaction. This is the single
// point where duplicate username/email or missing required fields come
// back, as store constraint errors.
func (s *AuthService) Commit(ctx context.Context, user *domain.User) error {
	return s.db.InTx(ctx, func(tx *sql.Tx) error {
		return s.users.WithTx(tx).Create(ctx, user)
	})
}

// Register is Signup followed by Commit.
func (s *AuthService) Register(ctx context.Context, input SignupInput) (*domain.User, error) {
	user, err := s.Signup(input)
	if err != nil {
		return nil, err
	}
	if err := s.Commit(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// Authenticate returns the matching user, or nil with no error when
// there is no match. An unknown username and a wrong password are
// deliberately indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !credentials.Verify(password, user.PasswordHash) {
		return nil, nil
	}
	return user, nil
}

// IssueToken signs an access token for the given user. The transport
// layer uses it to map authenticated state back to a user id.
func (s *AuthService) IssueToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ParseToken validates a token and returns the user id it was issued for.
func (s *AuthService) ParseToken(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	sub, _ := claims.GetSubject()
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}
