package usecases

import (
	"context"
	"strconv"
	"testing"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/internal/repository"
	"github.com/just-nibble/codehost/internal/testdb"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// fixture wires every use case against one in-memory database.
type fixture struct {
	store   repository.Store
	users   UserUsecase
	repos   RepositoryUsecase
	commits CommitUsecase
	issues  IssueUsecase
	stars   StarUsecase
	search  SearchUsecase
}

func newFixture(t *testing.T, opts ...CommitOption) *fixture {
	t.Helper()
	store := testdb.NewStore(t)
	log := zerolog.Nop()
	return &fixture{
		store:   store,
		users:   NewUserUsecase(store, log),
		repos:   NewRepositoryUsecase(store, log),
		commits: NewCommitUsecase(store, log, opts...),
		issues:  NewIssueUsecase(store, log),
		stars:   NewStarUsecase(store, log),
		search:  NewSearchUsecase(store, log),
	}
}

func (f *fixture) user(t *testing.T, username string) *domain.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), domain.NewUser{Username: username, Email: username + "@x.com"})
	require.NoError(t, err)
	return u
}

func (f *fixture) repo(t *testing.T, ownerID uint, name string) *domain.Repository {
	t.Helper()
	r, err := f.repos.Create(context.Background(), domain.NewRepository{OwnerID: ownerID, Name: name})
	require.NoError(t, err)
	return r
}

func (f *fixture) commit(t *testing.T, repoID, authorID uint, msg string) *domain.Commit {
	t.Helper()
	c, err := f.commits.Create(context.Background(), domain.NewCommit{RepositoryID: repoID, AuthorID: authorID, Message: msg})
	require.NoError(t, err)
	return c
}

func (f *fixture) issue(t *testing.T, repoID, creatorID uint, title string) *domain.Issue {
	t.Helper()
	i, err := f.issues.Create(context.Background(), domain.NewIssue{RepositoryID: repoID, CreatorID: creatorID, Title: title})
	require.NoError(t, err)
	return i
}

func assertKind(t *testing.T, err error, kind error, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	if msg != "" {
		assert.Equal(t, msg, err.Error())
	}
}

// constReader yields the same byte forever.
type constReader byte

func (r constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r)
	}
	return len(p), nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
