package usecases

import (
	"context"
	"testing"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueUsecase_CreateOpens(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	repo := f.repo(t, alice.ID, "proj")

	issue := f.issue(t, repo.ID, alice.ID, "Crash on start")
	assert.Equal(t, domain.IssueOpen, issue.Status)
	require.NotNil(t, issue.Creator)
	assert.Equal(t, alice.ID, issue.Creator.ID)
}

func TestIssueUsecase_CreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	repo := f.repo(t, alice.ID, "proj")

	_, err := f.issues.Create(ctx, domain.NewIssue{RepositoryID: repo.ID, CreatorID: alice.ID, Title: ""})
	assertKind(t, err, errcodes.ErrInvalid, "title must be 1-255 characters")

	_, err = f.issues.Create(ctx, domain.NewIssue{RepositoryID: repo.ID, CreatorID: 999, Title: "t"})
	assertKind(t, err, errcodes.ErrNotFound, "creator_id 999: user not found")

	_, err = f.issues.Create(ctx, domain.NewIssue{RepositoryID: 999, CreatorID: alice.ID, Title: "t"})
	assertKind(t, err, errcodes.ErrNotFound, "repository_id 999: repository not found")
}

func TestIssueUsecase_StatusFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	repo := f.repo(t, alice.ID, "proj")
	first := f.issue(t, repo.ID, alice.ID, "first")
	f.issue(t, repo.ID, alice.ID, "second")

	closed, err := f.issues.Update(ctx, first.ID, domain.IssuePatch{Status: ptr(domain.IssueStatus("CLOSED"))})
	require.NoError(t, err)
	assert.Equal(t, domain.IssueClosed, closed.Status)
	assert.Equal(t, "first", closed.Title)

	list, err := f.issues.ListByRepository(ctx, repo.ID, "open", domain.Pagination{})
	require.NoError(t, err)
	require.EqualValues(t, 1, list.Total)
	assert.Equal(t, "second", list.Items[0].Title)

	all, err := f.issues.ListByRepository(ctx, repo.ID, "", domain.Pagination{})
	require.NoError(t, err)
	require.EqualValues(t, 2, all.Total)
	assert.Equal(t, "second", all.Items[0].Title)

	_, err = f.issues.ListByRepository(ctx, repo.ID, "pending", domain.Pagination{})
	assertKind(t, err, errcodes.ErrInvalid, "")

	_, err = f.issues.Update(ctx, first.ID, domain.IssuePatch{Status: ptr(domain.IssueStatus("pending"))})
	assertKind(t, err, errcodes.ErrInvalid, "")

	_, err = f.issues.ListByRepository(ctx, 999, "", domain.Pagination{})
	assertKind(t, err, errcodes.ErrNotFound, "")
}

func TestIssueUsecase_UpdateClearsDescription(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	repo := f.repo(t, alice.ID, "proj")
	issue, err := f.issues.Create(ctx, domain.NewIssue{RepositoryID: repo.ID, CreatorID: alice.ID, Title: "t", Description: ptr("d")})
	require.NoError(t, err)
	require.NotNil(t, issue.Description)

	updated, err := f.issues.Update(ctx, issue.ID, domain.IssuePatch{Description: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
	assert.Equal(t, domain.IssueOpen, updated.Status)
}

func TestIssueUsecase_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	repo := f.repo(t, alice.ID, "proj")
	issue := f.issue(t, repo.ID, alice.ID, "t")

	require.NoError(t, f.issues.Delete(ctx, issue.ID))

	_, err := f.issues.Get(ctx, issue.ID)
	assertKind(t, err, errcodes.ErrNotFound, "issue "+formatID(issue.ID)+" not found")

	_, err = f.issues.Update(ctx, issue.ID, domain.IssuePatch{Title: ptr("x")})
	assertKind(t, err, errcodes.ErrNotFound, "")
}
