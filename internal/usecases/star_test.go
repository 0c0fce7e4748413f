package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/internal/repository/mocks"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStarUsecase_Toggle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	repo := f.repo(t, alice.ID, "proj")

	_, err := f.stars.Star(ctx, alice.ID, repo.ID)
	require.NoError(t, err)
	require.NoError(t, f.stars.Unstar(ctx, alice.ID, repo.ID))
	_, err = f.stars.Star(ctx, alice.ID, repo.ID)
	require.NoError(t, err)

	count, err := f.stars.Count(ctx, repo.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	starred, err := f.stars.IsStarred(ctx, alice.ID, repo.ID)
	require.NoError(t, err)
	assert.True(t, starred)
}

func TestStarUsecase_DuplicateActions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	repo := f.repo(t, alice.ID, "proj")

	err := f.stars.Unstar(ctx, alice.ID, repo.ID)
	assertKind(t, err, errcodes.ErrNotFound, "star not found")

	_, err = f.stars.Star(ctx, alice.ID, repo.ID)
	require.NoError(t, err)
	_, err = f.stars.Star(ctx, alice.ID, repo.ID)
	assertKind(t, err, errcodes.ErrConflict, "repository already starred")

	count, err := f.stars.Count(ctx, repo.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestStarUsecase_MissingReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	repo := f.repo(t, alice.ID, "proj")

	_, err := f.stars.Star(ctx, 999, repo.ID)
	assertKind(t, err, errcodes.ErrNotFound, "user_id 999: user not found")

	_, err = f.stars.Star(ctx, alice.ID, 999)
	assertKind(t, err, errcodes.ErrNotFound, "repository_id 999: repository not found")

	_, err = f.stars.Count(ctx, 999)
	assertKind(t, err, errcodes.ErrNotFound, "")

	_, err = f.stars.ListStarred(ctx, 999, domain.Pagination{})
	assertKind(t, err, errcodes.ErrNotFound, "")

	starred, err := f.stars.IsStarred(ctx, alice.ID, repo.ID)
	require.NoError(t, err)
	assert.False(t, starred)
}

func TestStarUsecase_ListStarredIsEnriched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	repo := f.repo(t, alice.ID, "proj")
	for _, u := range []uint{alice.ID, bob.ID} {
		_, err := f.stars.Star(ctx, u, repo.ID)
		require.NoError(t, err)
	}

	list, err := f.stars.ListStarred(ctx, bob.ID, domain.Pagination{})
	require.NoError(t, err)
	require.EqualValues(t, 1, list.Total)
	assert.EqualValues(t, 2, list.Items[0].StarsCount)
	assert.Equal(t, "alice", list.Items[0].Owner.Username)
}

func TestStarUsecase_RaceMapsToConflict(t *testing.T) {
	store := mocks.NewStore()
	store.UserStore.On("UserByID", mock.Anything, uint(1)).Return(&domain.User{ID: 1}, nil)
	store.RepositoryStore.On("RepositoryByID", mock.Anything, uint(2)).Return(&domain.Repository{ID: 2}, nil)
	store.StarStore.On("StarByUserAndRepository", mock.Anything, uint(1), uint(2)).Return(nil, errcodes.ErrNoRecordFound)
	store.StarStore.On("SaveStar", mock.Anything, uint(1), uint(2)).
		Return(nil, &errcodes.ConstraintError{Kind: errcodes.UniqueViolation, Constraint: "uq_stars_user_repository", Err: errors.New("dup")})

	uc := NewStarUsecase(store, zerolog.Nop())
	_, err := uc.Star(context.Background(), 1, 2)

	assertKind(t, err, errcodes.ErrConflict, "repository already starred")
	store.AssertAll(t)
}

func TestStarUsecase_ForeignKeyRaceMapsToNotFound(t *testing.T) {
	store := mocks.NewStore()
	store.UserStore.On("UserByID", mock.Anything, uint(1)).Return(&domain.User{ID: 1}, nil)
	store.RepositoryStore.On("RepositoryByID", mock.Anything, uint(2)).Return(&domain.Repository{ID: 2}, nil)
	store.StarStore.On("StarByUserAndRepository", mock.Anything, uint(1), uint(2)).Return(nil, errcodes.ErrNoRecordFound)
	store.StarStore.On("SaveStar", mock.Anything, uint(1), uint(2)).
		Return(nil, &errcodes.ConstraintError{Kind: errcodes.ForeignKeyViolation, Err: errors.New("fk")})

	uc := NewStarUsecase(store, zerolog.Nop())
	_, err := uc.Star(context.Background(), 1, 2)

	assertKind(t, err, errcodes.ErrNotFound, "")
}

func TestStarUsecase_TransactionFailureIsInternal(t *testing.T) {
	store := mocks.NewStore()
	store.On("Transaction", mock.Anything).Return(errors.New("database is closed"))

	uc := NewStarUsecase(store, zerolog.Nop())
	_, err := uc.Star(context.Background(), 1, 2)

	assertKind(t, err, errcodes.ErrInternal, "star repository failed")
	store.UserStore.AssertNotCalled(t, "UserByID", mock.Anything, mock.Anything)
}
