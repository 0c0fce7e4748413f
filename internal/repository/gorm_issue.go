package repository

import (
	"context"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormIssueStore is a GORM-based implementation of IssueStore
type GormIssueStore struct {
	db *gorm.DB
}

// NewGormIssueStore initializes a new GormIssueStore
func NewGormIssueStore(db *gorm.DB) IssueStore {
	return &GormIssueStore{db: db}
}

func (s *GormIssueStore) SaveIssue(ctx context.Context, issue domain.Issue) (*domain.Issue, error) {
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}
	dbIssue := ToGormIssue(&issue)

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(dbIssue).Error; err != nil {
		return nil, classify(err)
	}
	return dbIssue.ToDomain(), nil
}

func (s *GormIssueStore) IssueByID(ctx context.Context, id uint) (*domain.Issue, error) {
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}
	var issue Issue
	if err := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&issue).Error; err != nil {
		return nil, err
	}
	if issue.ID == 0 {
		return nil, errcodes.ErrNoRecordFound
	}
	return issue.ToDomain(), nil
}

func (s *GormIssueStore) IssuesByRepository(ctx context.Context, repoID uint, status *domain.IssueStatus, page domain.Pagination) ([]domain.Issue, int64, error) {
	if ctx.Err() != nil {
		return nil, 0, errcodes.ErrContextCancelled
	}
	q := s.db.WithContext(ctx).Model(&Issue{}).Where("repository_id = ?", repoID)
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbIssues []Issue
	if err := q.Scopes(paginate(page)).Order(newestFirst).Find(&dbIssues).Error; err != nil {
		return nil, 0, err
	}

	issues := make([]domain.Issue, 0, len(dbIssues))
	for _, i := range dbIssues {
		issues = append(issues, *i.ToDomain())
	}
	return issues, total, nil
}

// UpdateIssue applies the non-nil fields of patch. An empty Description is
// stored as NULL.
func (s *GormIssueStore) UpdateIssue(ctx context.Context, id uint, patch domain.IssuePatch) (*domain.Issue, error) {
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}

	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = nullable(*patch.Description)
	}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}

	if len(updates) > 0 {
		err := s.db.WithContext(ctx).Model(&Issue{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return nil, classify(err)
		}
	}
	return s.IssueByID(ctx, id)
}

func (s *GormIssueStore) DeleteIssue(ctx context.Context, id uint) error {
	return deleteOne(ctx, s.db, &Issue{}, id)
}

func (s *GormIssueStore) DeleteIssuesByRepositories(ctx context.Context, repoIDs []uint) error {
	if len(repoIDs) == 0 {
		return nil
	}
	_, err := deleteWhere(ctx, s.db, &Issue{}, "repository_id IN ?", repoIDs)
	return err
}

func (s *GormIssueStore) DeleteIssuesByCreator(ctx context.Context, creatorID uint) error {
	_, err := deleteWhere(ctx, s.db, &Issue{}, "creator_id = ?", creatorID)
	return err
}
