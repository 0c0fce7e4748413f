package dtos

import (
	"time"

	"github.com/just-nibble/codehost/internal/domain"
)

type RepositoryInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	OwnerID     uint    `json:"owner_id"`
	IsPublic    *bool   `json:"is_public"`
}

func (in RepositoryInput) ToDomain() domain.NewRepository {
	return domain.NewRepository{Name: in.Name, Description: in.Description, OwnerID: in.OwnerID, IsPublic: in.IsPublic}
}

type RepositoryUpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}

func (in RepositoryUpdateInput) ToDomain() domain.RepositoryPatch {
	return domain.RepositoryPatch{Name: in.Name, Description: in.Description, IsPublic: in.IsPublic}
}

// Repository is a repository with its owner summary and star count.
type Repository struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	IsPublic    bool         `json:"is_public"`
	OwnerID     uint         `json:"owner_id"`
	Owner       *UserSummary `json:"owner"`
	StarsCount  int64        `json:"stars_count"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type RepositoryList struct {
	Repositories []Repository `json:"repositories"`
	Total        int64        `json:"total"`
}

func FromRepository(r domain.Repository) Repository {
	return Repository{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		IsPublic:    r.IsPublic,
		OwnerID:     r.OwnerID,
		Owner:       fromSummary(r.Owner),
		StarsCount:  r.StarsCount,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func FromRepositories(repos []domain.Repository) []Repository {
	out := make([]Repository, 0, len(repos))
	for _, r := range repos {
		out = append(out, FromRepository(r))
	}
	return out
}
