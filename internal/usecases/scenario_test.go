package usecases

import (
	"context"
	"testing"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_CommitAndStar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u1, err := f.users.Create(ctx, domain.NewUser{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)
	r1, err := f.repos.Create(ctx, domain.NewRepository{OwnerID: u1.ID, Name: "proj"})
	require.NoError(t, err)

	c, err := f.commits.Create(ctx, domain.NewCommit{RepositoryID: r1.ID, AuthorID: u1.ID, Message: "init"})
	require.NoError(t, err)
	assert.Len(t, c.Hash, 40)
	assert.True(t, validator.IsCommitHash(c.Hash))

	got, err := f.repos.Get(ctx, r1.ID)
	require.NoError(t, err)
	assert.Zero(t, got.StarsCount)

	_, err = f.stars.Star(ctx, u1.ID, r1.ID)
	require.NoError(t, err)

	got, err = f.repos.Get(ctx, r1.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.StarsCount)
}
