package mocks

import (
	"context"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/stretchr/testify/mock"
)

// CommitStore mock
type CommitStore struct {
	mock.Mock
}

func (m *CommitStore) SaveCommit(ctx context.Context, commit domain.Commit) (*domain.Commit, error) {
	args := m.Called(ctx, commit)
	return get[*domain.Commit](args, 0), args.Error(1)
}

func (m *CommitStore) CommitByID(ctx context.Context, id uint) (*domain.Commit, error) {
	args := m.Called(ctx, id)
	return get[*domain.Commit](args, 0), args.Error(1)
}

func (m *CommitStore) CommitByHash(ctx context.Context, hash string) (*domain.Commit, error) {
	args := m.Called(ctx, hash)
	return get[*domain.Commit](args, 0), args.Error(1)
}

func (m *CommitStore) CommitsByRepository(ctx context.Context, repoID uint, page domain.Pagination) ([]domain.Commit, int64, error) {
	args := m.Called(ctx, repoID, page)
	return get[[]domain.Commit](args, 0), get[int64](args, 1), args.Error(2)
}

func (m *CommitStore) UpdateCommit(ctx context.Context, id uint, patch domain.CommitPatch) (*domain.Commit, error) {
	args := m.Called(ctx, id, patch)
	return get[*domain.Commit](args, 0), args.Error(1)
}

func (m *CommitStore) DeleteCommit(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommitStore) DeleteCommitsByRepositories(ctx context.Context, repoIDs []uint) error {
	args := m.Called(ctx, repoIDs)
	return args.Error(0)
}

func (m *CommitStore) DeleteCommitsByAuthor(ctx context.Context, authorID uint) error {
	args := m.Called(ctx, authorID)
	return args.Error(0)
}
