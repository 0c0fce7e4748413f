package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/internal/repository"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"github.com/just-nibble/codehost/pkg/validator"
	"github.com/rs/zerolog"
)

type IssueUsecase interface {
	// Create opens an issue.
	Create(ctx context.Context, input domain.NewIssue) (*domain.Issue, error)
	Get(ctx context.Context, id uint) (*domain.Issue, error)
	// ListByRepository lists newest first. An empty status lists all issues.
	ListByRepository(ctx context.Context, repoID uint, status string, page domain.Pagination) (*domain.List[domain.Issue], error)
	Update(ctx context.Context, id uint, patch domain.IssuePatch) (*domain.Issue, error)
	Delete(ctx context.Context, id uint) error
}

type issueUsecase struct {
	base
}

func NewIssueUsecase(store repository.Store, log zerolog.Logger) IssueUsecase {
	return &issueUsecase{base{store: store, log: log}}
}

func validateTitle(title string) error {
	if !validator.HasLength(title, 1, 255) {
		return errcodes.Invalid("title must be 1-255 characters")
	}
	return nil
}

func (uc *issueUsecase) Create(ctx context.Context, input domain.NewIssue) (*domain.Issue, error) {
	title := strings.TrimSpace(input.Title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	var issue *domain.Issue
	err := uc.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := requireRepository(ctx, tx, input.RepositoryID, "repository_id"); err != nil {
			return err
		}
		if _, err := requireUser(ctx, tx, input.CreatorID, "creator_id"); err != nil {
			return err
		}
		saved, err := tx.Issues().SaveIssue(ctx, domain.Issue{
			RepositoryID: input.RepositoryID,
			CreatorID:    input.CreatorID,
			Title:        title,
			Description:  emptyToNil(input.Description),
			Status:       domain.IssueOpen,
		})
		if err != nil {
			return writeErr(err, errcodes.NotFound("repository_id %d or creator_id %d: referenced entity not found",
				input.RepositoryID, input.CreatorID))
		}
		issue, err = issueView(ctx, tx, saved.ID)
		return err
	})
	if err != nil {
		return nil, uc.fail("create issue", err)
	}
	return issue, nil
}

func issueView(ctx context.Context, s repository.Store, id uint) (*domain.Issue, error) {
	issue, err := s.Issues().IssueByID(ctx, id)
	if errors.Is(err, errcodes.ErrNoRecordFound) {
		return nil, notFound("issue", "", id)
	}
	if err != nil {
		return nil, fmt.Errorf("look up issue %d: %w", id, err)
	}
	views := []domain.Issue{*issue}
	if err := enrichIssues(ctx, s, views); err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (uc *issueUsecase) Get(ctx context.Context, id uint) (*domain.Issue, error) {
	issue, err := issueView(ctx, uc.store, id)
	if err != nil {
		return nil, uc.fail("get issue", err)
	}
	return issue, nil
}

func (uc *issueUsecase) ListByRepository(ctx context.Context, repoID uint, status string, page domain.Pagination) (*domain.List[domain.Issue], error) {
	var filter *domain.IssueStatus
	if status != "" {
		st, err := domain.ParseIssueStatus(status)
		if err != nil {
			return nil, errcodes.Invalid("%v", err)
		}
		filter = &st
	}

	if _, err := requireRepository(ctx, uc.store, repoID, ""); err != nil {
		return nil, uc.fail("list issues", err)
	}
	issues, total, err := uc.store.Issues().IssuesByRepository(ctx, repoID, filter, page.Normalize(domain.DefaultLimit))
	if err != nil {
		return nil, uc.fail("list issues", err)
	}
	if err := enrichIssues(ctx, uc.store, issues); err != nil {
		return nil, uc.fail("list issues", err)
	}
	return &domain.List[domain.Issue]{Items: issues, Total: total}, nil
}

func (uc *issueUsecase) Update(ctx context.Context, id uint, patch domain.IssuePatch) (*domain.Issue, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if err := validateTitle(title); err != nil {
			return nil, err
		}
		patch.Title = &title
	}
	if patch.Status != nil {
		st, err := domain.ParseIssueStatus(string(*patch.Status))
		if err != nil {
			return nil, errcodes.Invalid("%v", err)
		}
		patch.Status = &st
	}

	var issue *domain.Issue
	err := uc.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Issues().IssueByID(ctx, id); err != nil {
			if errors.Is(err, errcodes.ErrNoRecordFound) {
				return notFound("issue", "", id)
			}
			return err
		}
		if _, err := tx.Issues().UpdateIssue(ctx, id, patch); err != nil {
			return err
		}
		var err error
		issue, err = issueView(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, uc.fail("update issue", err)
	}
	return issue, nil
}

func (uc *issueUsecase) Delete(ctx context.Context, id uint) error {
	err := uc.store.Transaction(ctx, func(tx repository.Store) error {
		err := tx.Issues().DeleteIssue(ctx, id)
		if errors.Is(err, errcodes.ErrNoRecordFound) {
			return notFound("issue", "", id)
		}
		return err
	})
	if err != nil {
		return uc.fail("delete issue", err)
	}
	return nil
}
