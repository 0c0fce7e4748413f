package mocks

import (
	"context"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/stretchr/testify/mock"
)

// UserStore mock
type UserStore struct {
	mock.Mock
}

func (m *UserStore) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	return get[*domain.User](args, 0), args.Error(1)
}

func (m *UserStore) UserByID(ctx context.Context, id uint) (*domain.User, error) {
	args := m.Called(ctx, id)
	return get[*domain.User](args, 0), args.Error(1)
}

func (m *UserStore) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	return get[*domain.User](args, 0), args.Error(1)
}

func (m *UserStore) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return get[*domain.User](args, 0), args.Error(1)
}

func (m *UserStore) ListUsers(ctx context.Context, page domain.Pagination) ([]domain.User, int64, error) {
	args := m.Called(ctx, page)
	return get[[]domain.User](args, 0), get[int64](args, 1), args.Error(2)
}

func (m *UserStore) SearchUsers(ctx context.Context, query string, page domain.Pagination) ([]domain.User, int64, error) {
	args := m.Called(ctx, query, page)
	return get[[]domain.User](args, 0), get[int64](args, 1), args.Error(2)
}

func (m *UserStore) UserSummaries(ctx context.Context, ids []uint) (map[uint]domain.UserSummary, error) {
	args := m.Called(ctx, ids)
	return get[map[uint]domain.UserSummary](args, 0), args.Error(1)
}

func (m *UserStore) UpdateUser(ctx context.Context, id uint, patch domain.UserPatch) (*domain.User, error) {
	args := m.Called(ctx, id, patch)
	return get[*domain.User](args, 0), args.Error(1)
}

func (m *UserStore) DeleteUser(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
