package main

import (
	"context"
	"fmt"

	"github.com/just-nibble/codehost/internal/repository"
	"github.com/just-nibble/codehost/internal/seeder"
	"github.com/just-nibble/codehost/internal/usecases"
	"github.com/just-nibble/codehost/pkg/config"
	"github.com/just-nibble/codehost/pkg/log"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// app is the wiring shared by every subcommand.
type app struct {
	cfg   config.Config
	log   zerolog.Logger
	db    *gorm.DB
	store repository.Store

	users        usecases.UserUsecase
	repositories usecases.RepositoryUsecase
	commits      usecases.CommitUsecase
	issues       usecases.IssueUsecase
	stars        usecases.StarUsecase
	search       usecases.SearchUsecase
}

func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	logger := log.New(cfg.LogLevel, cfg.LogFormat)

	db, err := repository.Open(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Info().Str("driver", cfg.DB.Driver).Msg("database connected")

	store := repository.NewGormStore(db)
	return &app{
		cfg:          cfg,
		log:          logger,
		db:           db,
		store:        store,
		users:        usecases.NewUserUsecase(store, logger),
		repositories: usecases.NewRepositoryUsecase(store, logger),
		commits:      usecases.NewCommitUsecase(store, logger),
		issues:       usecases.NewIssueUsecase(store, logger),
		stars:        usecases.NewStarUsecase(store, logger),
		search:       usecases.NewSearchUsecase(store, logger),
	}, nil
}

func (a *app) migrate() error {
	if err := repository.Migrate(a.db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	a.log.Info().Msg("schema up to date")
	return nil
}

func (a *app) seed(ctx context.Context) error {
	_, err := seeder.SeedDatabase(ctx, a.store, seeder.Usecases{
		Users:        a.users,
		Repositories: a.repositories,
		Commits:      a.commits,
		Issues:       a.issues,
		Stars:        a.stars,
	}, a.log)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

func (a *app) close() {
	if err := repository.Close(a.db); err != nil {
		a.log.Warn().Err(err).Msg("close database")
	}
}
