package repository

import (
	"context"

	"github.com/just-nibble/codehost/internal/domain"
)

// CommitStore defines an interface for commit persistence
type CommitStore interface {
	SaveCommit(ctx context.Context, commit domain.Commit) (*domain.Commit, error)
	CommitByID(ctx context.Context, id uint) (*domain.Commit, error)
	CommitByHash(ctx context.Context, hash string) (*domain.Commit, error)
	// CommitsByRepository lists newest first.
	CommitsByRepository(ctx context.Context, repoID uint, page domain.Pagination) ([]domain.Commit, int64, error)
	UpdateCommit(ctx context.Context, id uint, patch domain.CommitPatch) (*domain.Commit, error)
	DeleteCommit(ctx context.Context, id uint) error
	DeleteCommitsByRepositories(ctx context.Context, repoIDs []uint) error
	DeleteCommitsByAuthor(ctx context.Context, authorID uint) error
}
