package repository

import (
	"context"

	"github.com/just-nibble/codehost/internal/domain"
)

// IssueStore defines an interface for issue persistence
type IssueStore interface {
	SaveIssue(ctx context.Context, issue domain.Issue) (*domain.Issue, error)
	IssueByID(ctx context.Context, id uint) (*domain.Issue, error)
	// IssuesByRepository lists newest first, optionally restricted to one status.
	IssuesByRepository(ctx context.Context, repoID uint, status *domain.IssueStatus, page domain.Pagination) ([]domain.Issue, int64, error)
	UpdateIssue(ctx context.Context, id uint, patch domain.IssuePatch) (*domain.Issue, error)
	DeleteIssue(ctx context.Context, id uint) error
	DeleteIssuesByRepositories(ctx context.Context, repoIDs []uint) error
	DeleteIssuesByCreator(ctx context.Context, creatorID uint) error
}
