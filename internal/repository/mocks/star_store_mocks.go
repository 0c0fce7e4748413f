package mocks

import (
	"context"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/stretchr/testify/mock"
)

// StarStore mock
type StarStore struct {
	mock.Mock
}

func (m *StarStore) SaveStar(ctx context.Context, userID, repoID uint) (*domain.Star, error) {
	args := m.Called(ctx, userID, repoID)
	return get[*domain.Star](args, 0), args.Error(1)
}

func (m *StarStore) StarByUserAndRepository(ctx context.Context, userID, repoID uint) (*domain.Star, error) {
	args := m.Called(ctx, userID, repoID)
	return get[*domain.Star](args, 0), args.Error(1)
}

func (m *StarStore) DeleteStar(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *StarStore) CountByRepository(ctx context.Context, repoID uint) (int64, error) {
	args := m.Called(ctx, repoID)
	return get[int64](args, 0), args.Error(1)
}

func (m *StarStore) CountsByRepositories(ctx context.Context, repoIDs []uint) (map[uint]int64, error) {
	args := m.Called(ctx, repoIDs)
	return get[map[uint]int64](args, 0), args.Error(1)
}

func (m *StarStore) DeleteStarsByRepositories(ctx context.Context, repoIDs []uint) error {
	args := m.Called(ctx, repoIDs)
	return args.Error(0)
}

func (m *StarStore) DeleteStarsByUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
