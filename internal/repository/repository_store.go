package repository

import (
	"context"

	"github.com/just-nibble/codehost/internal/domain"
)

// RepositoryStore defines an interface for repository persistence
type RepositoryStore interface {
	SaveRepository(ctx context.Context, repo domain.Repository) (*domain.Repository, error)
	RepositoryByID(ctx context.Context, id uint) (*domain.Repository, error)
	RepositoryByOwnerAndName(ctx context.Context, ownerID uint, name string) (*domain.Repository, error)
	ListRepositories(ctx context.Context, filter domain.RepositoryFilter, page domain.Pagination) ([]domain.Repository, int64, error)
	SearchRepositories(ctx context.Context, query string, page domain.Pagination) ([]domain.Repository, int64, error)
	RepositoriesStarredBy(ctx context.Context, userID uint, page domain.Pagination) ([]domain.Repository, int64, error)
	RepositoryIDsByOwner(ctx context.Context, ownerID uint) ([]uint, error)
	UpdateRepository(ctx context.Context, id uint, patch domain.RepositoryPatch) (*domain.Repository, error)
	DeleteRepository(ctx context.Context, id uint) error
	DeleteRepositoriesByOwner(ctx context.Context, ownerID uint) error
}
