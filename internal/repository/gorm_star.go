package repository

import (
	"context"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStarStore is a GORM-based implementation of StarStore
type GormStarStore struct {
	db *gorm.DB
}

// NewGormStarStore initializes a new GormStarStore
func NewGormStarStore(db *gorm.DB) StarStore {
	return &GormStarStore{db: db}
}

func (s *GormStarStore) SaveStar(ctx context.Context, userID, repoID uint) (*domain.Star, error) {
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}
	star := Star{UserID: userID, RepositoryID: repoID}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&star).Error; err != nil {
		return nil, classify(err)
	}
	return star.ToDomain(), nil
}

func (s *GormStarStore) StarByUserAndRepository(ctx context.Context, userID, repoID uint) (*domain.Star, error) {
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}
	var star Star
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND repository_id = ?", userID, repoID).
		Limit(1).
		Find(&star).Error
	if err != nil {
		return nil, err
	}
	if star.ID == 0 {
		return nil, errcodes.ErrNoRecordFound
	}
	return star.ToDomain(), nil
}

func (s *GormStarStore) DeleteStar(ctx context.Context, id uint) error {
	return deleteOne(ctx, s.db, &Star{}, id)
}

func (s *GormStarStore) CountByRepository(ctx context.Context, repoID uint) (int64, error) {
	if ctx.Err() != nil {
		return 0, errcodes.ErrContextCancelled
	}
	var count int64
	err := s.db.WithContext(ctx).Model(&Star{}).Where("repository_id = ?", repoID).Count(&count).Error
	return count, err
}

func (s *GormStarStore) CountsByRepositories(ctx context.Context, repoIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(repoIDs))
	if len(repoIDs) == 0 {
		return counts, nil
	}
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}

	var rows []struct {
		RepositoryID uint
		Stars        int64
	}
	err := s.db.WithContext(ctx).Model(&Star{}).
		Select("repository_id, COUNT(*) AS stars").
		Where("repository_id IN ?", repoIDs).
		Group("repository_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.RepositoryID] = row.Stars
	}
	return counts, nil
}

func (s *GormStarStore) DeleteStarsByRepositories(ctx context.Context, repoIDs []uint) error {
	if len(repoIDs) == 0 {
		return nil
	}
	_, err := deleteWhere(ctx, s.db, &Star{}, "repository_id IN ?", repoIDs)
	return err
}

func (s *GormStarStore) DeleteStarsByUser(ctx context.Context, userID uint) error {
	_, err := deleteWhere(ctx, s.db, &Star{}, "user_id = ?", userID)
	return err
}
