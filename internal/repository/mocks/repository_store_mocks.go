package mocks

import (
	"context"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/stretchr/testify/mock"
)

// RepositoryStore mock
type RepositoryStore struct {
	mock.Mock
}

func (m *RepositoryStore) SaveRepository(ctx context.Context, repo domain.Repository) (*domain.Repository, error) {
	args := m.Called(ctx, repo)
	return get[*domain.Repository](args, 0), args.Error(1)
}

func (m *RepositoryStore) RepositoryByID(ctx context.Context, id uint) (*domain.Repository, error) {
	args := m.Called(ctx, id)
	return get[*domain.Repository](args, 0), args.Error(1)
}

func (m *RepositoryStore) RepositoryByOwnerAndName(ctx context.Context, ownerID uint, name string) (*domain.Repository, error) {
	args := m.Called(ctx, ownerID, name)
	return get[*domain.Repository](args, 0), args.Error(1)
}

func (m *RepositoryStore) ListRepositories(ctx context.Context, filter domain.RepositoryFilter, page domain.Pagination) ([]domain.Repository, int64, error) {
	args := m.Called(ctx, filter, page)
	return get[[]domain.Repository](args, 0), get[int64](args, 1), args.Error(2)
}

func (m *RepositoryStore) SearchRepositories(ctx context.Context, query string, page domain.Pagination) ([]domain.Repository, int64, error) {
	args := m.Called(ctx, query, page)
	return get[[]domain.Repository](args, 0), get[int64](args, 1), args.Error(2)
}

func (m *RepositoryStore) RepositoriesStarredBy(ctx context.Context, userID uint, page domain.Pagination) ([]domain.Repository, int64, error) {
	args := m.Called(ctx, userID, page)
	return get[[]domain.Repository](args, 0), get[int64](args, 1), args.Error(2)
}

func (m *RepositoryStore) RepositoryIDsByOwner(ctx context.Context, ownerID uint) ([]uint, error) {
	args := m.Called(ctx, ownerID)
	return get[[]uint](args, 0), args.Error(1)
}

func (m *RepositoryStore) UpdateRepository(ctx context.Context, id uint, patch domain.RepositoryPatch) (*domain.Repository, error) {
	args := m.Called(ctx, id, patch)
	return get[*domain.Repository](args, 0), args.Error(1)
}

func (m *RepositoryStore) DeleteRepository(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *RepositoryStore) DeleteRepositoriesByOwner(ctx context.Context, ownerID uint) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}
