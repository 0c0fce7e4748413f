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

func TestSearchUsecase_All(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	_, err := f.users.Create(ctx, domain.NewUser{Username: "bob", Email: "b@x.com", Bio: ptr("Works with Alice")})
	require.NoError(t, err)
	f.repo(t, alice.ID, "alice-tools")
	_, err = f.repos.Create(ctx, domain.NewRepository{OwnerID: alice.ID, Name: "alice-private", IsPublic: ptr(false)})
	require.NoError(t, err)

	res, err := f.search.Search(ctx, "ALICE", "", domain.Pagination{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.UsersTotal)
	assert.Len(t, res.Users, 2)
	assert.EqualValues(t, 1, res.RepositoriesTotal)
	require.Len(t, res.Repositories, 1)
	assert.Equal(t, "alice-tools", res.Repositories[0].Name)
	assert.Equal(t, "alice", res.Repositories[0].Owner.Username)
}

func TestSearchUsecase_ByType(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	f.repo(t, alice.ID, "alice-tools")

	users, err := f.search.Search(ctx, "alice", domain.SearchUsers, domain.Pagination{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, users.UsersTotal)
	assert.Empty(t, users.Repositories)
	assert.Zero(t, users.RepositoriesTotal)

	repos, err := f.search.Search(ctx, "tools", domain.SearchRepositories, domain.Pagination{})
	require.NoError(t, err)
	assert.Empty(t, repos.Users)
	assert.EqualValues(t, 1, repos.RepositoriesTotal)
}

func TestSearchUsecase_RejectsBadInput(t *testing.T) {
	uc := NewSearchUsecase(mocks.NewStore(), zerolog.Nop())
	ctx := context.Background()

	_, err := uc.Search(ctx, "  ", domain.SearchAll, domain.Pagination{})
	assertKind(t, err, errcodes.ErrInvalid, "q must not be empty")

	_, err = uc.Search(ctx, "x", domain.SearchType("issues"), domain.Pagination{})
	assertKind(t, err, errcodes.ErrInvalid, "")
}

func TestSearchUsecase_DefaultsToSearchLimit(t *testing.T) {
	store := mocks.NewStore()
	page := domain.Pagination{Skip: 0, Limit: domain.DefaultSearchLimit}
	store.UserStore.On("SearchUsers", mock.Anything, "al", page).Return([]domain.User{}, int64(0), nil)

	uc := NewSearchUsecase(store, zerolog.Nop())
	_, err := uc.Search(context.Background(), "al", domain.SearchUsers, domain.Pagination{Skip: -3})

	require.NoError(t, err)
	store.AssertAll(t)
}

func TestSearchUsecase_StoreFailureIsInternal(t *testing.T) {
	store := mocks.NewStore()
	store.UserStore.On("SearchUsers", mock.Anything, "al", mock.Anything).Return(nil, int64(0), errors.New("conn reset"))
	store.RepositoryStore.On("SearchRepositories", mock.Anything, "al", mock.Anything).Return([]domain.Repository{}, int64(0), nil)

	uc := NewSearchUsecase(store, zerolog.Nop())
	_, err := uc.Search(context.Background(), "al", domain.SearchAll, domain.Pagination{})

	assertKind(t, err, errcodes.ErrInternal, "")
}
