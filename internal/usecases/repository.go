package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/internal/repository"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"github.com/just-nibble/codehost/pkg/validator"
	"github.com/rs/zerolog"
)

type RepositoryUsecase interface {
	Create(ctx context.Context, input domain.NewRepository) (*domain.Repository, error)
	Get(ctx context.Context, id uint) (*domain.Repository, error)
	// List returns public repositories, or every repository of
	// filter.OwnerID when it is set.
	List(ctx context.Context, filter domain.RepositoryFilter, page domain.Pagination) (*domain.List[domain.Repository], error)
	Update(ctx context.Context, id uint, patch domain.RepositoryPatch) (*domain.Repository, error)
	// Delete removes the repository with its commits, issues and stars.
	Delete(ctx context.Context, id uint) error
}

type repositoryUsecase struct {
	base
}

func NewRepositoryUsecase(store repository.Store, log zerolog.Logger) RepositoryUsecase {
	return &repositoryUsecase{base{store: store, log: log}}
}

func validateRepositoryName(name string) error {
	if !validator.HasLength(name, 1, 100) {
		return errcodes.Invalid("name must be 1-100 characters")
	}
	return nil
}

func (uc *repositoryUsecase) Create(ctx context.Context, input domain.NewRepository) (*domain.Repository, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateRepositoryName(name); err != nil {
		return nil, err
	}
	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	var repo *domain.Repository
	err := uc.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := requireUser(ctx, tx, input.OwnerID, "owner_id"); err != nil {
			return err
		}
		if err := uniqueRepositoryName(ctx, tx, input.OwnerID, name, 0); err != nil {
			return err
		}
		saved, err := tx.Repositories().SaveRepository(ctx, domain.Repository{
			Name:        name,
			Description: emptyToNil(input.Description),
			OwnerID:     input.OwnerID,
			IsPublic:    isPublic,
		})
		if err != nil {
			return writeErr(err, notFound("user", "owner_id", input.OwnerID))
		}
		repo, err = repositoryView(ctx, tx, saved.ID)
		return err
	})
	if err != nil {
		return nil, uc.fail("create repository", err)
	}
	return repo, nil
}

// repositoryView reads one repository with owner and star count.
func repositoryView(ctx context.Context, s repository.Store, id uint) (*domain.Repository, error) {
	repo, err := requireRepository(ctx, s, id, "")
	if err != nil {
		return nil, err
	}
	views := []domain.Repository{*repo}
	if err := enrichRepositories(ctx, s, views); err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (uc *repositoryUsecase) Get(ctx context.Context, id uint) (*domain.Repository, error) {
	repo, err := repositoryView(ctx, uc.store, id)
	if err != nil {
		return nil, uc.fail("get repository", err)
	}
	return repo, nil
}

func (uc *repositoryUsecase) List(ctx context.Context, filter domain.RepositoryFilter, page domain.Pagination) (*domain.List[domain.Repository], error) {
	if filter.OwnerID != 0 {
		if _, err := requireUser(ctx, uc.store, filter.OwnerID, ""); err != nil {
			return nil, uc.fail("list repositories", err)
		}
	} else {
		filter.PublicOnly = true
	}

	repos, total, err := uc.store.Repositories().ListRepositories(ctx, filter, page.Normalize(domain.DefaultLimit))
	if err != nil {
		return nil, uc.fail("list repositories", err)
	}
	if err := enrichRepositories(ctx, uc.store, repos); err != nil {
		return nil, uc.fail("list repositories", err)
	}
	return &domain.List[domain.Repository]{Items: repos, Total: total}, nil
}

func (uc *repositoryUsecase) Update(ctx context.Context, id uint, patch domain.RepositoryPatch) (*domain.Repository, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if err := validateRepositoryName(name); err != nil {
			return nil, err
		}
		patch.Name = &name
	}

	var repo *domain.Repository
	err := uc.store.Transaction(ctx, func(tx repository.Store) error {
		current, err := requireRepository(ctx, tx, id, "")
		if err != nil {
			return err
		}
		if patch.Name != nil && *patch.Name != current.Name {
			if err := uniqueRepositoryName(ctx, tx, current.OwnerID, *patch.Name, id); err != nil {
				return err
			}
		}
		if _, err := tx.Repositories().UpdateRepository(ctx, id, patch); err != nil {
			return writeErr(err, nil)
		}
		repo, err = repositoryView(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, uc.fail("update repository", err)
	}
	return repo, nil
}

func (uc *repositoryUsecase) Delete(ctx context.Context, id uint) error {
	err := uc.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := requireRepository(ctx, tx, id, ""); err != nil {
			return err
		}
		if err := deleteRepositoryChildren(ctx, tx, []uint{id}); err != nil {
			return err
		}
		err := tx.Repositories().DeleteRepository(ctx, id)
		if errors.Is(err, errcodes.ErrNoRecordFound) {
			return notFound("repository", "", id)
		}
		return err
	})
	if err != nil {
		return uc.fail("delete repository", err)
	}
	return nil
}

// deleteRepositoryChildren removes the stars, issues and commits of repoIDs.
func deleteRepositoryChildren(ctx context.Context, tx repository.Store, repoIDs []uint) error {
	if err := tx.Stars().DeleteStarsByRepositories(ctx, repoIDs); err != nil {
		return fmt.Errorf("delete stars: %w", err)
	}
	if err := tx.Issues().DeleteIssuesByRepositories(ctx, repoIDs); err != nil {
		return fmt.Errorf("delete issues: %w", err)
	}
	if err := tx.Commits().DeleteCommitsByRepositories(ctx, repoIDs); err != nil {
		return fmt.Errorf("delete commits: %w", err)
	}
	return nil
}
