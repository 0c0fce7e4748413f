package repository

import (
	"context"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCommitStore is a GORM-based implementation of CommitStore
type GormCommitStore struct {
	db *gorm.DB
}

// NewGormCommitStore initializes a new GormCommitStore
func NewGormCommitStore(db *gorm.DB) CommitStore {
	return &GormCommitStore{db: db}
}

// SaveCommit stores a repository commit into the database
func (s *GormCommitStore) SaveCommit(ctx context.Context, commit domain.Commit) (*domain.Commit, error) {
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}
	dbCommit := ToGormCommit(&commit)

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(dbCommit).Error; err != nil {
		return nil, classify(err)
	}
	return dbCommit.ToDomain(), nil
}

func (s *GormCommitStore) CommitByID(ctx context.Context, id uint) (*domain.Commit, error) {
	return s.commitWhere(ctx, "id = ?", id)
}

func (s *GormCommitStore) CommitByHash(ctx context.Context, hash string) (*domain.Commit, error) {
	return s.commitWhere(ctx, "hash = ?", hash)
}

func (s *GormCommitStore) commitWhere(ctx context.Context, query string, arg any) (*domain.Commit, error) {
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}
	var commit Commit
	err := s.db.WithContext(ctx).Where(query, arg).Limit(1).Find(&commit).Error
	if err != nil {
		return nil, err
	}
	if commit.ID == 0 {
		return nil, errcodes.ErrNoRecordFound
	}
	return commit.ToDomain(), nil
}

func (s *GormCommitStore) CommitsByRepository(ctx context.Context, repoID uint, page domain.Pagination) ([]domain.Commit, int64, error) {
	if ctx.Err() != nil {
		return nil, 0, errcodes.ErrContextCancelled
	}
	q := s.db.WithContext(ctx).Model(&Commit{}).Where("repository_id = ?", repoID).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbCommits []Commit
	if err := q.Scopes(paginate(page)).Order(newestFirst).Find(&dbCommits).Error; err != nil {
		return nil, 0, err
	}

	commits := make([]domain.Commit, 0, len(dbCommits))
	for _, c := range dbCommits {
		commits = append(commits, *c.ToDomain())
	}
	return commits, total, nil
}

func (s *GormCommitStore) UpdateCommit(ctx context.Context, id uint, patch domain.CommitPatch) (*domain.Commit, error) {
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}
	if patch.Message != nil {
		err := s.db.WithContext(ctx).Model(&Commit{}).Where("id = ?", id).Update("message", *patch.Message).Error
		if err != nil {
			return nil, classify(err)
		}
	}
	return s.CommitByID(ctx, id)
}

func (s *GormCommitStore) DeleteCommit(ctx context.Context, id uint) error {
	return deleteOne(ctx, s.db, &Commit{}, id)
}

func (s *GormCommitStore) DeleteCommitsByRepositories(ctx context.Context, repoIDs []uint) error {
	if len(repoIDs) == 0 {
		return nil
	}
	_, err := deleteWhere(ctx, s.db, &Commit{}, "repository_id IN ?", repoIDs)
	return err
}

func (s *GormCommitStore) DeleteCommitsByAuthor(ctx context.Context, authorID uint) error {
	_, err := deleteWhere(ctx, s.db, &Commit{}, "author_id = ?", authorID)
	return err
}
