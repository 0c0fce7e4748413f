package usecases

import (
	"context"
	"errors"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/internal/repository"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"github.com/rs/zerolog"
)

type StarUsecase interface {
	Star(ctx context.Context, userID, repoID uint) (*domain.Star, error)
	Unstar(ctx context.Context, userID, repoID uint) error
	IsStarred(ctx context.Context, userID, repoID uint) (bool, error)
	ListStarred(ctx context.Context, userID uint, page domain.Pagination) (*domain.List[domain.Repository], error)
	Count(ctx context.Context, repoID uint) (int64, error)
}

type starUsecase struct {
	base
}

func NewStarUsecase(store repository.Store, log zerolog.Logger) StarUsecase {
	return &starUsecase{base{store: store, log: log}}
}

func (uc *starUsecase) Star(ctx context.Context, userID, repoID uint) (*domain.Star, error) {
	var star *domain.Star
	err := uc.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := requireUser(ctx, tx, userID, "user_id"); err != nil {
			return err
		}
		if _, err := requireRepository(ctx, tx, repoID, "repository_id"); err != nil {
			return err
		}

		_, err := tx.Stars().StarByUserAndRepository(ctx, userID, repoID)
		switch {
		case err == nil:
			return errcodes.Conflict(msgAlreadyStarred)
		case !errors.Is(err, errcodes.ErrNoRecordFound):
			return err
		}

		star, err = tx.Stars().SaveStar(ctx, userID, repoID)
		return writeErr(err, errcodes.NotFound("user_id %d or repository_id %d: referenced entity not found", userID, repoID))
	})
	if err != nil {
		return nil, uc.fail("star repository", err)
	}
	return star, nil
}

func (uc *starUsecase) Unstar(ctx context.Context, userID, repoID uint) error {
	err := uc.store.Transaction(ctx, func(tx repository.Store) error {
		star, err := tx.Stars().StarByUserAndRepository(ctx, userID, repoID)
		if err == nil {
			err = tx.Stars().DeleteStar(ctx, star.ID)
		}
		if errors.Is(err, errcodes.ErrNoRecordFound) {
			return errcodes.NotFound("star not found")
		}
		return err
	})
	if err != nil {
		return uc.fail("unstar repository", err)
	}
	return nil
}

func (uc *starUsecase) IsStarred(ctx context.Context, userID, repoID uint) (bool, error) {
	_, err := uc.store.Stars().StarByUserAndRepository(ctx, userID, repoID)
	if errors.Is(err, errcodes.ErrNoRecordFound) {
		return false, nil
	}
	if err != nil {
		return false, uc.fail("check star", err)
	}
	return true, nil
}

func (uc *starUsecase) ListStarred(ctx context.Context, userID uint, page domain.Pagination) (*domain.List[domain.Repository], error) {
	if _, err := requireUser(ctx, uc.store, userID, ""); err != nil {
		return nil, uc.fail("list starred repositories", err)
	}
	repos, total, err := uc.store.Repositories().RepositoriesStarredBy(ctx, userID, page.Normalize(domain.DefaultLimit))
	if err != nil {
		return nil, uc.fail("list starred repositories", err)
	}
	if err := enrichRepositories(ctx, uc.store, repos); err != nil {
		return nil, uc.fail("list starred repositories", err)
	}
	return &domain.List[domain.Repository]{Items: repos, Total: total}, nil
}

func (uc *starUsecase) Count(ctx context.Context, repoID uint) (int64, error) {
	if _, err := requireRepository(ctx, uc.store, repoID, ""); err != nil {
		return 0, uc.fail("count stars", err)
	}
	n, err := uc.store.Stars().CountByRepository(ctx, repoID)
	if err != nil {
		return 0, uc.fail("count stars", err)
	}
	return n, nil
}
