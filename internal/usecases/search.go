package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/internal/repository"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type SearchUsecase interface {
	// Search matches users by username or bio and public repositories by
	// name or description, case-insensitively.
	Search(ctx context.Context, query string, kind domain.SearchType, page domain.Pagination) (*domain.SearchResult, error)
}

type searchUsecase struct {
	base
}

func NewSearchUsecase(store repository.Store, log zerolog.Logger) SearchUsecase {
	return &searchUsecase{base{store: store, log: log}}
}

func (uc *searchUsecase) Search(ctx context.Context, query string, kind domain.SearchType, page domain.Pagination) (*domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errcodes.Invalid("q must not be empty")
	}
	if kind == "" {
		kind = domain.SearchAll
	}
	switch kind {
	case domain.SearchAll, domain.SearchUsers, domain.SearchRepositories:
	default:
		return nil, errcodes.Invalid("type must be all, users or repositories, got %q", kind)
	}
	page = page.Normalize(domain.DefaultSearchLimit)

	result := domain.SearchResult{Users: []domain.User{}, Repositories: []domain.Repository{}}
	g, gctx := errgroup.WithContext(ctx)

	if kind != domain.SearchRepositories {
		g.Go(func() error {
			users, total, err := uc.store.Users().SearchUsers(gctx, query, page)
			if err != nil {
				return fmt.Errorf("search users: %w", err)
			}
			result.Users, result.UsersTotal = users, total
			return nil
		})
	}
	if kind != domain.SearchUsers {
		g.Go(func() error {
			repos, total, err := uc.store.Repositories().SearchRepositories(gctx, query, page)
			if err != nil {
				return fmt.Errorf("search repositories: %w", err)
			}
			if err := enrichRepositories(gctx, uc.store, repos); err != nil {
				return err
			}
			result.Repositories, result.RepositoriesTotal = repos, total
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, uc.fail("search", err)
	}
	return &result, nil
}
