package repository

import (
	"context"

	"github.com/just-nibble/codehost/pkg/errcodes"
	"gorm.io/gorm"
)

// Store groups the entity stores behind one transactional boundary.
type Store interface {
	Users() UserStore
	Repositories() RepositoryStore
	Commits() CommitStore
	Issues() IssueStore
	Stars() StarStore

	// Transaction runs fn against a Store bound to a single database
	// transaction. It commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(tx Store) error) error
	Ping(ctx context.Context) error
}

// GormStore is the GORM-backed Store
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps db. Every store it hands out shares db, so inside
// Transaction they all see the same transaction.
func NewGormStore(db *gorm.DB) Store {
	return &GormStore{db: db}
}

func (s *GormStore) Users() UserStore { return NewGormUserStore(s.db) }
func (s *GormStore) Repositories() RepositoryStore { return NewGormRepositoryStore(s.db) }
func (s *GormStore) Commits() CommitStore { return NewGormCommitStore(s.db) }
func (s *GormStore) Issues() IssueStore { return NewGormIssueStore(s.db) }
func (s *GormStore) Stars() StarStore { return NewGormStarStore(s.db) }

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	if ctx.Err() != nil {
		return errcodes.ErrContextCancelled
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// deleteWhere removes the matching rows of model and reports how many went.
func deleteWhere(ctx context.Context, db *gorm.DB, model any, query string, args ...any) (int64, error) {
	if ctx.Err() != nil {
		return 0, errcodes.ErrContextCancelled
	}
	res := db.WithContext(ctx).Where(query, args...).Delete(model)
	if res.Error != nil {
		return 0, classify(res.Error)
	}
	return res.RowsAffected, nil
}

// deleteOne is deleteWhere for a single row that must exist.
func deleteOne(ctx context.Context, db *gorm.DB, model any, id uint) error {
	n, err := deleteWhere(ctx, db, model, "id = ?", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return errcodes.ErrNoRecordFound
	}
	return nil
}

// nullable maps an empty optional text to NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
