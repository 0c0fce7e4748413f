// Package seeder fills an empty database with demo data.
package seeder

import (
	"context"
	"fmt"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/internal/repository"
	"github.com/just-nibble/codehost/internal/usecases"
	"github.com/rs/zerolog"
)

// Usecases the seeder writes through, so demo data obeys the same rules as
// API writes.
type Usecases struct {
	Users        usecases.UserUsecase
	Repositories usecases.RepositoryUsecase
	Commits      usecases.CommitUsecase
	Issues       usecases.IssueUsecase
	Stars        usecases.StarUsecase
}

type demoUser struct {
	username, email, bio string
}

var demoUsers = []demoUser{
	{"alice", "alice@example.com", "Maintainer of small tools"},
	{"bob", "bob@example.com", "Backend developer"},
	{"carol", "carol@example.com", ""},
}

// SeedDatabase seeds users, repositories, commits, issues and stars if the
// database has no users. It reports whether anything was written.
func SeedDatabase(ctx context.Context, store repository.Store, uc Usecases, log zerolog.Logger) (bool, error) {
	_, total, err := store.Users().ListUsers(ctx, domain.Pagination{Limit: 1})
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if total > 0 {
		log.Info().Int64("users", total).Msg("database not empty, skipping seed")
		return false, nil
	}

	log.Info().Msg("seeding database with demo data...")

	users := make([]*domain.User, 0, len(demoUsers))
	for _, d := range demoUsers {
		in := domain.NewUser{Username: d.username, Email: d.email}
		if d.bio != "" {
			in.Bio = &d.bio
		}
		u, err := uc.Users.Create(ctx, in)
		if err != nil {
			return false, fmt.Errorf("seed user %s: %w", d.username, err)
		}
		users = append(users, u)
	}
	alice, bob, carol := users[0], users[1], users[2]

	private := false
	desc := "Command line helpers"
	tools, err := uc.Repositories.Create(ctx, domain.NewRepository{OwnerID: alice.ID, Name: "tools", Description: &desc})
	if err != nil {
		return false, fmt.Errorf("seed repository: %w", err)
	}
	notes, err := uc.Repositories.Create(ctx, domain.NewRepository{OwnerID: alice.ID, Name: "notes", IsPublic: &private})
	if err != nil {
		return false, fmt.Errorf("seed repository: %w", err)
	}
	api, err := uc.Repositories.Create(ctx, domain.NewRepository{OwnerID: bob.ID, Name: "api"})
	if err != nil {
		return false, fmt.Errorf("seed repository: %w", err)
	}

	commits := []domain.NewCommit{
		{RepositoryID: tools.ID, AuthorID: alice.ID, Message: "Initial commit"},
		{RepositoryID: tools.ID, AuthorID: bob.ID, Message: "Add release script"},
		{RepositoryID: notes.ID, AuthorID: alice.ID, Message: "Start notes"},
		{RepositoryID: api.ID, AuthorID: bob.ID, Message: "Scaffold service"},
	}
	for _, c := range commits {
		if _, err := uc.Commits.Create(ctx, c); err != nil {
			return false, fmt.Errorf("seed commit: %w", err)
		}
	}

	issues := []domain.NewIssue{
		{RepositoryID: tools.ID, CreatorID: carol.ID, Title: "Release script fails on macOS"},
		{RepositoryID: api.ID, CreatorID: alice.ID, Title: "Document pagination"},
	}
	for _, i := range issues {
		if _, err := uc.Issues.Create(ctx, i); err != nil {
			return false, fmt.Errorf("seed issue: %w", err)
		}
	}

	stars := [][2]uint{{bob.ID, tools.ID}, {carol.ID, tools.ID}, {alice.ID, api.ID}}
	for _, s := range stars {
		if _, err := uc.Stars.Star(ctx, s[0], s[1]); err != nil {
			return false, fmt.Errorf("seed star: %w", err)
		}
	}

	log.Info().
		Int("users", len(users)).
		Int("commits", len(commits)).
		Int("issues", len(issues)).
		Int("stars", len(stars)).
		Msg("database seeding completed")
	return true, nil
}
