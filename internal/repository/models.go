package repository

import (
	"time"

	"github.com/just-nibble/codehost/internal/domain"
)

// Constraint names. They appear in PostgreSQL errors and are matched by the
// use cases to turn a store-level violation into the pre-check error.
const (
	ConstraintUsersUsername         = "uq_users_username"
	ConstraintUsersEmail            = "uq_users_email"
	ConstraintRepositoriesOwnerName = "uq_repositories_owner_name"
	ConstraintCommitsHash           = "uq_commits_hash"
	ConstraintStarsUserRepository   = "uq_stars_user_repository"
)

// User represents a user account
type User struct {
	ID        uint    `gorm:"primaryKey"`
	Username  string  `gorm:"size:50;not null;uniqueIndex:uq_users_username"`
	Email     string  `gorm:"size:255;not null;uniqueIndex:uq_users_email"`
	Bio       *string `gorm:"type:text"`
	AvatarURL *string `gorm:"size:500"`
	CreatedAt time.Time
}

// Repository represents a hosted repository
type Repository struct {
	ID          uint    `gorm:"primaryKey"`
	OwnerID     uint    `gorm:"not null;index;uniqueIndex:uq_repositories_owner_name,priority:1"`
	Owner       User    `gorm:"constraint:OnDelete:CASCADE"`
	Name        string  `gorm:"size:100;not null;uniqueIndex:uq_repositories_owner_name,priority:2"`
	Description *string `gorm:"type:text"`
	IsPublic    bool    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Commit represents a commit in a repository
type Commit struct {
	ID           uint       `gorm:"primaryKey"`
	RepositoryID uint       `gorm:"not null;index"`
	Repository   Repository `gorm:"constraint:OnDelete:CASCADE"`
	AuthorID     uint       `gorm:"not null;index"`
	Author       User       `gorm:"constraint:OnDelete:CASCADE"`
	Message      string     `gorm:"type:text;not null"`
	Hash         string     `gorm:"size:40;not null;uniqueIndex:uq_commits_hash"`
	CreatedAt    time.Time  `gorm:"index"`
}

// Issue represents an issue filed against a repository
type Issue struct {
	ID           uint       `gorm:"primaryKey"`
	RepositoryID uint       `gorm:"not null;index"`
	Repository   Repository `gorm:"constraint:OnDelete:CASCADE"`
	CreatorID    uint       `gorm:"not null;index"`
	Creator      User       `gorm:"constraint:OnDelete:CASCADE"`
	Title        string     `gorm:"size:255;not null"`
	Description  *string    `gorm:"type:text"`
	Status       string     `gorm:"size:20;not null;index"`
	CreatedAt    time.Time  `gorm:"index"`
	UpdatedAt    time.Time
}

// Star links a user to a repository they starred
type Star struct {
	ID           uint       `gorm:"primaryKey"`
	UserID       uint       `gorm:"not null;uniqueIndex:uq_stars_user_repository,priority:1"`
	User         User       `gorm:"constraint:OnDelete:CASCADE"`
	RepositoryID uint       `gorm:"not null;index;uniqueIndex:uq_stars_user_repository,priority:2"`
	Repository   Repository `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
}

// Models lists every table in migration order.
func Models() []any {
	return []any{&User{}, &Repository{}, &Commit{}, &Issue{}, &Star{}}
}

func (u *User) ToDomain() *domain.User {
	return &domain.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

func ToGormUser(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

func (r *Repository) ToDomain() *domain.Repository {
	return &domain.Repository{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		OwnerID:     r.OwnerID,
		IsPublic:    r.IsPublic,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func ToGormRepo(r *domain.Repository) *Repository {
	return &Repository{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Name:        r.Name,
		Description: r.Description,
		IsPublic:    r.IsPublic,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (c *Commit) ToDomain() *domain.Commit {
	return &domain.Commit{
		ID:           c.ID,
		RepositoryID: c.RepositoryID,
		AuthorID:     c.AuthorID,
		Message:      c.Message,
		Hash:         c.Hash,
		CreatedAt:    c.CreatedAt,
	}
}

func ToGormCommit(c *domain.Commit) *Commit {
	return &Commit{
		ID:           c.ID,
		RepositoryID: c.RepositoryID,
		AuthorID:     c.AuthorID,
		Message:      c.Message,
		Hash:         c.Hash,
		CreatedAt:    c.CreatedAt,
	}
}

func (i *Issue) ToDomain() *domain.Issue {
	return &domain.Issue{
		ID:           i.ID,
		RepositoryID: i.RepositoryID,
		CreatorID:    i.CreatorID,
		Title:        i.Title,
		Description:  i.Description,
		Status:       domain.IssueStatus(i.Status),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func ToGormIssue(i *domain.Issue) *Issue {
	return &Issue{
		ID:           i.ID,
		RepositoryID: i.RepositoryID,
		CreatorID:    i.CreatorID,
		Title:        i.Title,
		Description:  i.Description,
		Status:       string(i.Status),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func (s *Star) ToDomain() *domain.Star {
	return &domain.Star{
		ID:           s.ID,
		UserID:       s.UserID,
		RepositoryID: s.RepositoryID,
		CreatedAt:    s.CreatedAt,
	}
}
