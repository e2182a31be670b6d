package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/warblerhq/warbler/internal/config"
	"github.com/warblerhq/warbler/internal/database"
	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/logging"
	"github.com/warblerhq/warbler/internal/repository/sqldb"
	"github.com/warblerhq/warbler/internal/service"
)

// app wires config, store, and services for one command invocation.
type app struct {
	cfg *config.Config
	log *zap.SugaredLogger
	db  *database.DB

	auth     *service.AuthService
	users    *service.UserService
	follows  *service.FollowService
	messages *service.MessageService
	likes    *service.LikeService
	profiles *service.ProfileService
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logging.New()
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Debugw("connected to database", "driver", db.Driver())

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	userRepo := sqldb.NewUserRepo(db)
	messageRepo := sqldb.NewMessageRepo(db)
	followRepo := sqldb.NewFollowRepo(db)
	likeRepo := sqldb.NewLikeRepo(db)

	return &app{
		cfg:      cfg,
		log:      log,
		db:       db,
		auth:     service.NewAuthService(db, userRepo, cfg.JWTSecret),
		users:    service.NewUserService(db, userRepo),
		follows:  service.NewFollowService(db, followRepo),
		messages: service.NewMessageService(db, messageRepo),
		likes:    service.NewLikeService(db, likeRepo, messageRepo),
		profiles: service.NewProfileService(userRepo, messageRepo, followRepo, likeRepo),
	}, nil
}

func (a *app) close() {
	a.db.Close()
	_ = a.log.Sync()
}

func (a *app) resolveUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", username, err)
	}
	return user, nil
}
