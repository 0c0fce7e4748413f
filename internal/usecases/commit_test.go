package usecases

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/internal/repository/mocks"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"github.com/just-nibble/codehost/pkg/validator"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	hashAB = strings.Repeat("ab", 20)
	hashCD = strings.Repeat("cd", 20)
)

func TestCommitUsecase_GeneratesHash(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	repo := f.repo(t, alice.ID, "proj")

	c := f.commit(t, repo.ID, alice.ID, "init")
	assert.True(t, validator.IsCommitHash(c.Hash), c.Hash)
	require.NotNil(t, c.Author)
	assert.Equal(t, "alice", c.Author.Username)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestCommitUsecase_SuppliedHash(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	repo := f.repo(t, alice.ID, "proj")

	c, err := f.commits.Create(ctx, domain.NewCommit{RepositoryID: repo.ID, AuthorID: alice.ID, Message: "m", Hash: strings.ToUpper(hashAB)})
	require.NoError(t, err)
	assert.Equal(t, hashAB, c.Hash)

	_, err = f.commits.Create(ctx, domain.NewCommit{RepositoryID: repo.ID, AuthorID: alice.ID, Message: "m", Hash: hashAB})
	assertKind(t, err, errcodes.ErrConflict, "commit hash already exists")

	_, err = f.commits.Create(ctx, domain.NewCommit{RepositoryID: repo.ID, AuthorID: alice.ID, Message: "m", Hash: "xyz"})
	assertKind(t, err, errcodes.ErrInvalid, "")
}

func TestCommitUsecase_RetriesCollidingHash(t *testing.T) {
	random := io.MultiReader(bytes.NewReader(bytes.Repeat([]byte{0xab}, 20)), constReader(0xcd))
	f := newFixture(t, WithRandomSource(random))
	ctx := context.Background()
	alice := f.user(t, "alice")
	repo := f.repo(t, alice.ID, "proj")

	_, err := f.commits.Create(ctx, domain.NewCommit{RepositoryID: repo.ID, AuthorID: alice.ID, Message: "seed", Hash: hashAB})
	require.NoError(t, err)

	c := f.commit(t, repo.ID, alice.ID, "second")
	assert.Equal(t, hashCD, c.Hash)
}

func TestCommitUsecase_HashExhaustionIsInternal(t *testing.T) {
	f := newFixture(t, WithRandomSource(constReader(0xab)))
	ctx := context.Background()
	alice := f.user(t, "alice")
	repo := f.repo(t, alice.ID, "proj")
	f.commit(t, repo.ID, alice.ID, "first")

	_, err := f.commits.Create(ctx, domain.NewCommit{RepositoryID: repo.ID, AuthorID: alice.ID, Message: "second"})
	assertKind(t, err, errcodes.ErrInternal, "")

	list, err := f.commits.ListByRepository(ctx, repo.ID, domain.Pagination{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Total)
}

func TestCommitUsecase_HashAttemptsAreCapped(t *testing.T) {
	store := mocks.NewStore()
	store.RepositoryStore.On("RepositoryByID", mock.Anything, uint(1)).Return(&domain.Repository{ID: 1}, nil)
	store.UserStore.On("UserByID", mock.Anything, uint(2)).Return(&domain.User{ID: 2}, nil)
	store.CommitStore.On("CommitByHash", mock.Anything, hashAB).Return(&domain.Commit{ID: 9, Hash: hashAB}, nil)

	uc := NewCommitUsecase(store, zerolog.Nop(), WithRandomSource(constReader(0xab)))
	_, err := uc.Create(context.Background(), domain.NewCommit{RepositoryID: 1, AuthorID: 2, Message: "m"})

	assertKind(t, err, errcodes.ErrInternal, "")
	store.CommitStore.AssertNumberOfCalls(t, "CommitByHash", hashAttempts)
	store.CommitStore.AssertNotCalled(t, "SaveCommit", mock.Anything, mock.Anything)
}

func TestCommitUsecase_BrokenRandomSource(t *testing.T) {
	store := mocks.NewStore()
	store.RepositoryStore.On("RepositoryByID", mock.Anything, uint(1)).Return(&domain.Repository{ID: 1}, nil)
	store.UserStore.On("UserByID", mock.Anything, uint(2)).Return(&domain.User{ID: 2}, nil)

	uc := NewCommitUsecase(store, zerolog.Nop(), WithRandomSource(bytes.NewReader(nil)))
	_, err := uc.Create(context.Background(), domain.NewCommit{RepositoryID: 1, AuthorID: 2, Message: "m"})

	assertKind(t, err, errcodes.ErrInternal, "")
}

func TestCommitUsecase_HashRaceMapsToConflict(t *testing.T) {
	store := mocks.NewStore()
	store.RepositoryStore.On("RepositoryByID", mock.Anything, uint(1)).Return(&domain.Repository{ID: 1}, nil)
	store.UserStore.On("UserByID", mock.Anything, uint(2)).Return(&domain.User{ID: 2}, nil)
	store.CommitStore.On("CommitByHash", mock.Anything, hashAB).Return(nil, errcodes.ErrNoRecordFound)
	store.CommitStore.On("SaveCommit", mock.Anything, mock.Anything).
		Return(nil, &errcodes.ConstraintError{Kind: errcodes.UniqueViolation, Constraint: "uq_commits_hash", Err: errors.New("dup")})

	uc := NewCommitUsecase(store, zerolog.Nop())
	_, err := uc.Create(context.Background(), domain.NewCommit{RepositoryID: 1, AuthorID: 2, Message: "m", Hash: hashAB})

	assertKind(t, err, errcodes.ErrConflict, "commit hash already exists")
	store.AssertAll(t)
}

func TestCommitUsecase_MissingReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	repo := f.repo(t, alice.ID, "proj")

	_, err := f.commits.Create(ctx, domain.NewCommit{RepositoryID: 999, AuthorID: alice.ID, Message: "m"})
	assertKind(t, err, errcodes.ErrNotFound, "repository_id 999: repository not found")

	_, err = f.commits.Create(ctx, domain.NewCommit{RepositoryID: repo.ID, AuthorID: 999, Message: "m"})
	assertKind(t, err, errcodes.ErrNotFound, "author_id 999: user not found")

	_, err = f.commits.Create(ctx, domain.NewCommit{RepositoryID: repo.ID, AuthorID: alice.ID, Message: "   "})
	assertKind(t, err, errcodes.ErrInvalid, "message must not be empty")

	list, err := f.commits.ListByRepository(ctx, repo.ID, domain.Pagination{})
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestCommitUsecase_ListNewestFirstWithTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	repo := f.repo(t, alice.ID, "proj")

	var last *domain.Commit
	for range 5 {
		last = f.commit(t, repo.ID, alice.ID, "c")
	}

	page, err := f.commits.ListByRepository(ctx, repo.ID, domain.Pagination{Skip: 0, Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, last.ID, page.Items[0].ID)
	assert.Equal(t, "alice", page.Items[0].Author.Username)

	_, err = f.commits.ListByRepository(ctx, 999, domain.Pagination{})
	assertKind(t, err, errcodes.ErrNotFound, "repository 999 not found")
}

func TestCommitUsecase_UpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	repo := f.repo(t, alice.ID, "proj")
	c := f.commit(t, repo.ID, alice.ID, "init")

	updated, err := f.commits.Update(ctx, c.ID, domain.CommitPatch{Message: ptr("initial commit")})
	require.NoError(t, err)
	assert.Equal(t, "initial commit", updated.Message)
	assert.Equal(t, c.Hash, updated.Hash)

	_, err = f.commits.Update(ctx, c.ID, domain.CommitPatch{Message: ptr("")})
	assertKind(t, err, errcodes.ErrInvalid, "")

	require.NoError(t, f.commits.Delete(ctx, c.ID))
	err = f.commits.Delete(ctx, c.ID)
	assertKind(t, err, errcodes.ErrNotFound, "commit "+formatID(c.ID)+" not found")
}
