package dtos

import (
	"time"

	"github.com/just-nibble/codehost/internal/domain"
)

type IssueInput struct {
	CreatorID   uint    `json:"creator_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func (in IssueInput) ToDomain(repoID uint) domain.NewIssue {
	return domain.NewIssue{RepositoryID: repoID, CreatorID: in.CreatorID, Title: in.Title, Description: in.Description}
}

type IssueUpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (in IssueUpdateInput) ToDomain() domain.IssuePatch {
	patch := domain.IssuePatch{Title: in.Title, Description: in.Description}
	if in.Status != nil {
		st := domain.IssueStatus(*in.Status)
		patch.Status = &st
	}
	return patch
}

type Issue struct {
	ID           uint         `json:"id"`
	RepositoryID uint         `json:"repository_id"`
	CreatorID    uint         `json:"creator_id"`
	Creator      *UserSummary `json:"creator"`
	Title        string       `json:"title"`
	Description  *string      `json:"description"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type IssueList struct {
	Issues []Issue `json:"issues"`
	Total  int64   `json:"total"`
}

func FromIssue(i domain.Issue) Issue {
	return Issue{
		ID:           i.ID,
		RepositoryID: i.RepositoryID,
		CreatorID:    i.CreatorID,
		Creator:      fromSummary(i.Creator),
		Title:        i.Title,
		Description:  i.Description,
		Status:       string(i.Status),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func FromIssues(issues []domain.Issue) []Issue {
	out := make([]Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, FromIssue(i))
	}
	return out
}
