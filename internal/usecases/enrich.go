package usecases

import (
	"context"
	"fmt"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/internal/repository"
)

// enrichRepositories fills the owner summary and star count of every repo
// with two batched queries.
func enrichRepositories(ctx context.Context, s repository.Store, repos []domain.Repository) error {
	if len(repos) == 0 {
		return nil
	}
	ownerIDs := make([]uint, 0, len(repos))
	repoIDs := make([]uint, 0, len(repos))
	for _, r := range repos {
		ownerIDs = append(ownerIDs, r.OwnerID)
		repoIDs = append(repoIDs, r.ID)
	}

	owners, err := s.Users().UserSummaries(ctx, distinct(ownerIDs))
	if err != nil {
		return fmt.Errorf("load owners: %w", err)
	}
	counts, err := s.Stars().CountsByRepositories(ctx, repoIDs)
	if err != nil {
		return fmt.Errorf("count stars: %w", err)
	}

	for i := range repos {
		if owner, ok := owners[repos[i].OwnerID]; ok {
			repos[i].Owner = &owner
		}
		repos[i].StarsCount = counts[repos[i].ID]
	}
	return nil
}

func enrichCommits(ctx context.Context, s repository.Store, commits []domain.Commit) error {
	if len(commits) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(commits))
	for _, c := range commits {
		ids = append(ids, c.AuthorID)
	}
	authors, err := s.Users().UserSummaries(ctx, distinct(ids))
	if err != nil {
		return fmt.Errorf("load authors: %w", err)
	}
	for i := range commits {
		if author, ok := authors[commits[i].AuthorID]; ok {
			commits[i].Author = &author
		}
	}
	return nil
}

func enrichIssues(ctx context.Context, s repository.Store, issues []domain.Issue) error {
	if len(issues) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(issues))
	for _, i := range issues {
		ids = append(ids, i.CreatorID)
	}
	creators, err := s.Users().UserSummaries(ctx, distinct(ids))
	if err != nil {
		return fmt.Errorf("load creators: %w", err)
	}
	for i := range issues {
		if creator, ok := creators[issues[i].CreatorID]; ok {
			issues[i].Creator = &creator
		}
	}
	return nil
}

func distinct(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
