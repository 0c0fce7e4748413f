package repository

import (
	"context"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepositoryStore is a GORM-based implementation of RepositoryStore
type GormRepositoryStore struct {
	db *gorm.DB
}

// NewGormRepositoryStore initializes a new GormRepositoryStore
func NewGormRepositoryStore(db *gorm.DB) RepositoryStore {
	return &GormRepositoryStore{db: db}
}

func (r *GormRepositoryStore) SaveRepository(ctx context.Context, repo domain.Repository) (*domain.Repository, error) {
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}
	dbRepo := ToGormRepo(&repo)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(dbRepo).Error; err != nil {
		return nil, classify(err)
	}
	return dbRepo.ToDomain(), nil
}

func (r *GormRepositoryStore) RepositoryByID(ctx context.Context, id uint) (*domain.Repository, error) {
	return r.repoWhere(ctx, "id = ?", id)
}

func (r *GormRepositoryStore) RepositoryByOwnerAndName(ctx context.Context, ownerID uint, name string) (*domain.Repository, error) {
	return r.repoWhere(ctx, "owner_id = ? AND name = ?", ownerID, name)
}

func (r *GormRepositoryStore) repoWhere(ctx context.Context, query string, args ...any) (*domain.Repository, error) {
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}
	var repo Repository
	err := r.db.WithContext(ctx).Where(query, args...).Limit(1).Find(&repo).Error
	if err != nil {
		return nil, err
	}
	if repo.ID == 0 {
		return nil, errcodes.ErrNoRecordFound
	}
	return repo.ToDomain(), nil
}

func (r *GormRepositoryStore) ListRepositories(ctx context.Context, filter domain.RepositoryFilter, page domain.Pagination) ([]domain.Repository, int64, error) {
	q := r.db.WithContext(ctx).Model(&Repository{})
	if filter.OwnerID != 0 {
		q = q.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.PublicOnly {
		q = q.Where("is_public = ?", true)
	}
	return r.listRepos(ctx, q, "id", page)
}

// SearchRepositories matches query case-insensitively against the name or
// description of public repositories.
func (r *GormRepositoryStore) SearchRepositories(ctx context.Context, query string, page domain.Pagination) ([]domain.Repository, int64, error) {
	pattern := containsPattern(query)
	q := r.db.WithContext(ctx).Model(&Repository{}).
		Where("is_public = ?", true).
		Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, pattern, pattern)
	return r.listRepos(ctx, q, "id", page)
}

// RepositoriesStarredBy lists the repositories userID starred, most recent star first.
func (r *GormRepositoryStore) RepositoriesStarredBy(ctx context.Context, userID uint, page domain.Pagination) ([]domain.Repository, int64, error) {
	q := r.db.WithContext(ctx).Model(&Repository{}).
		Joins("JOIN stars ON stars.repository_id = repositories.id").
		Where("stars.user_id = ?", userID)
	return r.listRepos(ctx, q, "stars.created_at DESC, stars.id DESC", page)
}

func (r *GormRepositoryStore) listRepos(ctx context.Context, q *gorm.DB, order string, page domain.Pagination) ([]domain.Repository, int64, error) {
	if ctx.Err() != nil {
		return nil, 0, errcodes.ErrContextCancelled
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbRepos []Repository
	err := q.Select("repositories.*").Scopes(paginate(page)).Order(order).Find(&dbRepos).Error
	if err != nil {
		return nil, 0, err
	}

	repos := make([]domain.Repository, 0, len(dbRepos))
	for _, repo := range dbRepos {
		repos = append(repos, *repo.ToDomain())
	}
	return repos, total, nil
}

func (r *GormRepositoryStore) RepositoryIDsByOwner(ctx context.Context, ownerID uint) ([]uint, error) {
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}
	var ids []uint
	err := r.db.WithContext(ctx).Model(&Repository{}).Where("owner_id = ?", ownerID).Pluck("id", &ids).Error
	return ids, err
}

// UpdateRepository applies the non-nil fields of patch. An empty Description
// is stored as NULL.
func (r *GormRepositoryStore) UpdateRepository(ctx context.Context, id uint, patch domain.RepositoryPatch) (*domain.Repository, error) {
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}

	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = nullable(*patch.Description)
	}
	if patch.IsPublic != nil {
		updates["is_public"] = *patch.IsPublic
	}

	if len(updates) > 0 {
		err := r.db.WithContext(ctx).Model(&Repository{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return nil, classify(err)
		}
	}
	return r.RepositoryByID(ctx, id)
}

func (r *GormRepositoryStore) DeleteRepository(ctx context.Context, id uint) error {
	return deleteOne(ctx, r.db, &Repository{}, id)
}

func (r *GormRepositoryStore) DeleteRepositoriesByOwner(ctx context.Context, ownerID uint) error {
	_, err := deleteWhere(ctx, r.db, &Repository{}, "owner_id = ?", ownerID)
	return err
}
