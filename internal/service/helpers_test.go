package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/warblerhq/warbler/internal/database"
	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/repository/sqldb"
	"github.com/warblerhq/warbler/internal/service"
)

const testJWTSecret = "test-secret"

// env is a fully wired service stack over a throwaway in-memory store,
// so every test runs against real schema constraints.
type env struct {
	db *database.DB

	userRepo    *sqldb.UserRepo
	messageRepo *sqldb.MessageRepo
	followRepo  *sqldb.FollowRepo
	likeRepo    *sqldb.LikeRepo

	auth     *service.AuthService
	users    *service.UserService
	follows  *service.FollowService
	messages *service.MessageService
	likes    *service.LikeService
	profiles *service.ProfileService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()

	db, err := database.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(ctx))

	userRepo := sqldb.NewUserRepo(db)
	messageRepo := sqldb.NewMessageRepo(db)
	followRepo := sqldb.NewFollowRepo(db)
	likeRepo := sqldb.NewLikeRepo(db)

	return &env{
		db:          db,
		userRepo:    userRepo,
		messageRepo: messageRepo,
		followRepo:  followRepo,
		likeRepo:    likeRepo,
		auth:        service.NewAuthService(db, userRepo, testJWTSecret),
		users:       service.NewUserService(db, userRepo),
		follows:     service.NewFollowService(db, followRepo),
		messages:    service.NewMessageService(db, messageRepo),
		likes:       service.NewLikeService(db, likeRepo, messageRepo),
		profiles:    service.NewProfileService(userRepo, messageRepo, followRepo, likeRepo),
	}
}

func (e *env) signup(t *testing.T, username, email, password string) *domain.User {
	t.Helper()
	user, err := e.auth.Register(context.Background(), service.SignupInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func (e *env) post(t *testing.T, owner *domain.User, text string) *domain.Message {
	t.Helper()
	msg, err := e.messages.Post(context.Background(), owner.ID, text)
	require.NoError(t, err)
	return msg
}
