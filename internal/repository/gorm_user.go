package repository

import (
	"context"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"gorm.io/gorm"
)

// GormUserStore is a GORM-based implementation of UserStore
type GormUserStore struct {
	db *gorm.DB
}

// NewGormUserStore initializes a new GormUserStore
func NewGormUserStore(db *gorm.DB) UserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}
	dbUser := ToGormUser(&user)

	if err := s.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return nil, classify(err)
	}
	return dbUser.ToDomain(), nil
}

func (s *GormUserStore) UserByID(ctx context.Context, id uint) (*domain.User, error) {
	return s.userWhere(ctx, "id = ?", id)
}

func (s *GormUserStore) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userWhere(ctx, "username = ?", username)
}

func (s *GormUserStore) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userWhere(ctx, "email = ?", email)
}

func (s *GormUserStore) userWhere(ctx context.Context, query string, arg any) (*domain.User, error) {
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}
	var user User
	err := s.db.WithContext(ctx).Where(query, arg).Limit(1).Find(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, errcodes.ErrNoRecordFound
	}
	return user.ToDomain(), nil
}

func (s *GormUserStore) ListUsers(ctx context.Context, page domain.Pagination) ([]domain.User, int64, error) {
	return s.listUsers(ctx, s.db.WithContext(ctx).Model(&User{}), page)
}

// SearchUsers matches query case-insensitively against username or bio.
func (s *GormUserStore) SearchUsers(ctx context.Context, query string, page domain.Pagination) ([]domain.User, int64, error) {
	pattern := containsPattern(query)
	q := s.db.WithContext(ctx).Model(&User{}).
		Where(`LOWER(username) LIKE ? ESCAPE '\' OR LOWER(bio) LIKE ? ESCAPE '\'`, pattern, pattern)
	return s.listUsers(ctx, q, page)
}

func (s *GormUserStore) listUsers(ctx context.Context, q *gorm.DB, page domain.Pagination) ([]domain.User, int64, error) {
	if ctx.Err() != nil {
		return nil, 0, errcodes.ErrContextCancelled
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbUsers []User
	if err := q.Scopes(paginate(page)).Order("id").Find(&dbUsers).Error; err != nil {
		return nil, 0, err
	}

	users := make([]domain.User, 0, len(dbUsers))
	for _, u := range dbUsers {
		users = append(users, *u.ToDomain())
	}
	return users, total, nil
}

func (s *GormUserStore) UserSummaries(ctx context.Context, ids []uint) (map[uint]domain.UserSummary, error) {
	summaries := make(map[uint]domain.UserSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}

	var dbUsers []User
	err := s.db.WithContext(ctx).
		Select("id", "username", "avatar_url").
		Where("id IN ?", ids).
		Find(&dbUsers).Error
	if err != nil {
		return nil, err
	}
	for _, u := range dbUsers {
		summaries[u.ID] = u.ToDomain().Summary()
	}
	return summaries, nil
}

// UpdateUser applies the non-nil fields of patch. An empty Bio or AvatarURL
// is stored as NULL.
func (s *GormUserStore) UpdateUser(ctx context.Context, id uint, patch domain.UserPatch) (*domain.User, error) {
	if ctx.Err() != nil {
		return nil, errcodes.ErrContextCancelled
	}

	updates := map[string]any{}
	if patch.Username != nil {
		updates["username"] = *patch.Username
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Bio != nil {
		updates["bio"] = nullable(*patch.Bio)
	}
	if patch.AvatarURL != nil {
		updates["avatar_url"] = nullable(*patch.AvatarURL)
	}

	if len(updates) > 0 {
		err := s.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return nil, classify(err)
		}
	}
	return s.UserByID(ctx, id)
}

func (s *GormUserStore) DeleteUser(ctx context.Context, id uint) error {
	return deleteOne(ctx, s.db, &User{}, id)
}
