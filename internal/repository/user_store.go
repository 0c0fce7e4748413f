package repository

import (
	"context"

	"github.com/just-nibble/codehost/internal/domain"
)

// UserStore defines an interface for user persistence
type UserStore interface {
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)
	UserByID(ctx context.Context, id uint) (*domain.User, error)
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, page domain.Pagination) ([]domain.User, int64, error)
	SearchUsers(ctx context.Context, query string, page domain.Pagination) ([]domain.User, int64, error)
	// UserSummaries returns the summary of every existing id in ids.
	UserSummaries(ctx context.Context, ids []uint) (map[uint]domain.UserSummary, error)
	UpdateUser(ctx context.Context, id uint, patch domain.UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}
