package mocks

import (
	"context"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/stretchr/testify/mock"
)

// IssueStore mock
type IssueStore struct {
	mock.Mock
}

func (m *IssueStore) SaveIssue(ctx context.Context, issue domain.Issue) (*domain.Issue, error) {
	args := m.Called(ctx, issue)
	return get[*domain.Issue](args, 0), args.Error(1)
}

func (m *IssueStore) IssueByID(ctx context.Context, id uint) (*domain.Issue, error) {
	args := m.Called(ctx, id)
	return get[*domain.Issue](args, 0), args.Error(1)
}

func (m *IssueStore) IssuesByRepository(ctx context.Context, repoID uint, status *domain.IssueStatus, page domain.Pagination) ([]domain.Issue, int64, error) {
	args := m.Called(ctx, repoID, status, page)
	return get[[]domain.Issue](args, 0), get[int64](args, 1), args.Error(2)
}

func (m *IssueStore) UpdateIssue(ctx context.Context, id uint, patch domain.IssuePatch) (*domain.Issue, error) {
	args := m.Called(ctx, id, patch)
	return get[*domain.Issue](args, 0), args.Error(1)
}

func (m *IssueStore) DeleteIssue(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *IssueStore) DeleteIssuesByRepositories(ctx context.Context, repoIDs []uint) error {
	args := m.Called(ctx, repoIDs)
	return args.Error(0)
}

func (m *IssueStore) DeleteIssuesByCreator(ctx context.Context, creatorID uint) error {
	args := m.Called(ctx, creatorID)
	return args.Error(0)
}
