package mocks

import (
	"context"

	"github.com/just-nibble/codehost/internal/repository"
	"github.com/stretchr/testify/mock"
)

// Store mock. Each entity store is its own mock so expectations stay
// per entity; Transaction runs the callback against the same Store.
type Store struct {
	mock.Mock

	UserStore       *UserStore
	RepositoryStore *RepositoryStore
	CommitStore     *CommitStore
	IssueStore      *IssueStore
	StarStore       *StarStore
}

// NewStore returns a Store whose entity mocks are ready for expectations.
func NewStore() *Store {
	return &Store{
		UserStore:       new(UserStore),
		RepositoryStore: new(RepositoryStore),
		CommitStore:     new(CommitStore),
		IssueStore:      new(IssueStore),
		StarStore:       new(StarStore),
	}
}

func (m *Store) Users() repository.UserStore { return m.UserStore }
func (m *Store) Repositories() repository.RepositoryStore { return m.RepositoryStore }
func (m *Store) Commits() repository.CommitStore { return m.CommitStore }
func (m *Store) Issues() repository.IssueStore { return m.IssueStore }
func (m *Store) Stars() repository.StarStore { return m.StarStore }

// Transaction calls fn directly. Set an expectation on "Transaction" only to
// make it fail; without one it behaves like a successful transaction.
func (m *Store) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	if m.hasExpectation("Transaction") {
		if err := m.Called(ctx).Error(0); err != nil {
			return err
		}
	}
	return fn(m)
}

func (m *Store) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Store) hasExpectation(method string) bool {
	for _, c := range m.ExpectedCalls {
		if c.Method == method {
			return true
		}
	}
	return false
}

// AssertAll checks the expectations of every entity mock.
func (m *Store) AssertAll(t mock.TestingT) bool {
	return mock.AssertExpectationsForObjects(t, m.UserStore, m.RepositoryStore, m.CommitStore, m.IssueStore, m.StarStore)
}

func get[T any](args mock.Arguments, i int) T {
	var zero T
	if v := args.Get(i); v != nil {
		return v.(T)
	}
	return zero
}
