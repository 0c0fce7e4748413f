package repository

import (
	"context"

	"github.com/just-nibble/codehost/internal/domain"
)

// StarStore defines an interface for star persistence
type StarStore interface {
	SaveStar(ctx context.Context, userID, repoID uint) (*domain.Star, error)
	StarByUserAndRepository(ctx context.Context, userID, repoID uint) (*domain.Star, error)
	DeleteStar(ctx context.Context, id uint) error
	CountByRepository(ctx context.Context, repoID uint) (int64, error)
	// CountsByRepositories returns the star count of each id; ids without
	// stars are absent from the map.
	CountsByRepositories(ctx context.Context, repoIDs []uint) (map[uint]int64, error)
	DeleteStarsByRepositories(ctx context.Context, repoIDs []uint) error
	DeleteStarsByUser(ctx context.Context, userID uint) error
}
