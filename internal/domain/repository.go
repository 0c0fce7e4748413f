package domain

import "time"

type Repository struct {
	ID          uint
	Name        string
	Description *string
	OwnerID     uint
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Filled on reads.
	Owner      *UserSummary
	StarsCount int64
}

type NewRepository struct {
	Name        string
	Description *string
	OwnerID     uint
	// IsPublic defaults to true when nil.
	IsPublic *bool
}

type RepositoryPatch struct {
	Name        *string
	Description *string
	IsPublic    *bool
}

// RepositoryFilter selects repositories for listing. A zero OwnerID with
// PublicOnly unset lists everything.
type RepositoryFilter struct {
	OwnerID    uint
	PublicOnly bool
}
