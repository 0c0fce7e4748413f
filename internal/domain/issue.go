package domain

import (
	"fmt"
	"strings"
	"time"
)

type IssueStatus string

const (
	IssueOpen   IssueStatus = "open"
	IssueClosed IssueStatus = "closed"
)

// ParseIssueStatus accepts open or closed in any case.
func ParseIssueStatus(s string) (IssueStatus, error) {
	switch st := IssueStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case IssueOpen, IssueClosed:
		return st, nil
	default:
		return "", fmt.Errorf("status must be open or closed, got %q", s)
	}
}

type Issue struct {
	ID           uint
	RepositoryID uint
	CreatorID    uint
	Title        string
	Description  *string
	Status       IssueStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Creator *UserSummary
}

type NewIssue struct {
	RepositoryID uint
	CreatorID    uint
	Title        string
	Description  *string
}

type IssuePatch struct {
	Title       *string
	Description *string
	Status      *IssueStatus
}
