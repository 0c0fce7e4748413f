package domain

import "time"

type Commit struct {
	ID           uint
	RepositoryID uint
	AuthorID     uint
	Message      string
	Hash         string
	CreatedAt    time.Time

	Author *UserSummary
}

// NewCommit is a commit to record. Hash is generated when empty.
type NewCommit struct {
	RepositoryID uint
	AuthorID     uint
	Message      string
	Hash         string
}

type CommitPatch struct {
	Message *string
}
