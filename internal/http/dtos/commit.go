package dtos

import (
	"time"

	"github.com/just-nibble/codehost/internal/domain"
)

// CommitInput is posted to a repository. Hash is generated when omitted.
type CommitInput struct {
	AuthorID uint   `json:"author_id"`
	Message  string `json:"message"`
	Hash     string `json:"hash"`
}

func (in CommitInput) ToDomain(repoID uint) domain.NewCommit {
	return domain.NewCommit{RepositoryID: repoID, AuthorID: in.AuthorID, Message: in.Message, Hash: in.Hash}
}

type CommitUpdateInput struct {
	Message *string `json:"message"`
}

func (in CommitUpdateInput) ToDomain() domain.CommitPatch {
	return domain.CommitPatch{Message: in.Message}
}

type Commit struct {
	ID           uint         `json:"id"`
	RepositoryID uint         `json:"repository_id"`
	AuthorID     uint         `json:"author_id"`
	Author       *UserSummary `json:"author"`
	Message      string       `json:"message"`
	Hash         string       `json:"hash"`
	CreatedAt    time.Time    `json:"created_at"`
}

type CommitList struct {
	Commits []Commit `json:"commits"`
	Total   int64    `json:"total"`
}

func FromCommit(c domain.Commit) Commit {
	return Commit{
		ID:           c.ID,
		RepositoryID: c.RepositoryID,
		AuthorID:     c.AuthorID,
		Author:       fromSummary(c.Author),
		Message:      c.Message,
		Hash:         c.Hash,
		CreatedAt:    c.CreatedAt,
	}
}

func FromCommits(commits []domain.Commit) []Commit {
	out := make([]Commit, 0, len(commits))
	for _, c := range commits {
		out = append(out, FromCommit(c))
	}
	return out
}
