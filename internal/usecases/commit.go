package usecases

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/internal/repository"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"github.com/just-nibble/codehost/pkg/validator"
	"github.com/rs/zerolog"
)

const (
	hashBytes    = 20
	hashAttempts = 5
)

type CommitUsecase interface {
	// Create records a commit. A missing hash is generated.
	Create(ctx context.Context, input domain.NewCommit) (*domain.Commit, error)
	Get(ctx context.Context, id uint) (*domain.Commit, error)
	ListByRepository(ctx context.Context, repoID uint, page domain.Pagination) (*domain.List[domain.Commit], error)
	Update(ctx context.Context, id uint, patch domain.CommitPatch) (*domain.Commit, error)
	Delete(ctx context.Context, id uint) error
}

type commitUsecase struct {
	base
	random io.Reader
}

type CommitOption func(*commitUsecase)

// WithRandomSource replaces crypto/rand as the source of generated hashes.
func WithRandomSource(r io.Reader) CommitOption {
	return func(uc *commitUsecase) {
		uc.random = r
	}
}

func NewCommitUsecase(store repository.Store, log zerolog.Logger, opts ...CommitOption) CommitUsecase {
	uc := &commitUsecase{base: base{store: store, log: log}, random: rand.Reader}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func validateMessage(msg string) error {
	if strings.TrimSpace(msg) == "" {
		return errcodes.Invalid("message must not be empty")
	}
	return nil
}

func (uc *commitUsecase) Create(ctx context.Context, input domain.NewCommit) (*domain.Commit, error) {
	if err := validateMessage(input.Message); err != nil {
		return nil, err
	}
	hash := strings.ToLower(strings.TrimSpace(input.Hash))
	if input.Hash != "" && !validator.IsCommitHash(hash) {
		return nil, errcodes.Invalid("hash must be 40 hexadecimal characters")
	}

	var commit *domain.Commit
	err := uc.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := requireRepository(ctx, tx, input.RepositoryID, "repository_id"); err != nil {
			return err
		}
		if _, err := requireUser(ctx, tx, input.AuthorID, "author_id"); err != nil {
			return err
		}

		var err error
		if hash == "" {
			hash, err = uc.uniqueHash(ctx, tx)
		} else {
			err = uc.checkHash(ctx, tx, hash)
		}
		if err != nil {
			return err
		}

		saved, err := tx.Commits().SaveCommit(ctx, domain.Commit{
			RepositoryID: input.RepositoryID,
			AuthorID:     input.AuthorID,
			Message:      input.Message,
			Hash:         hash,
		})
		if err != nil {
			return writeErr(err, errcodes.NotFound("repository_id %d or author_id %d: referenced entity not found",
				input.RepositoryID, input.AuthorID))
		}
		commit, err = commitView(ctx, tx, saved.ID)
		return err
	})
	if err != nil {
		return nil, uc.fail("create commit", err)
	}
	return commit, nil
}

func (uc *commitUsecase) checkHash(ctx context.Context, tx repository.Store, hash string) error {
	taken, err := hashTaken(ctx, tx, hash)
	if err != nil {
		return err
	}
	if taken {
		return errcodes.Conflict(msgHashTaken)
	}
	return nil
}

// uniqueHash draws hashes until one is unused. Running out of attempts means
// the random source is broken.
func (uc *commitUsecase) uniqueHash(ctx context.Context, tx repository.Store) (string, error) {
	for range hashAttempts {
		hash, err := newHash(uc.random)
		if err != nil {
			return "", errcodes.Internal(err, "read random source")
		}
		taken, err := hashTaken(ctx, tx, hash)
		if err != nil {
			return "", err
		}
		if !taken {
			return hash, nil
		}
		uc.log.Warn().Str("hash", hash).Msg("generated commit hash collided, retrying")
	}
	return "", errcodes.Internal(nil, "could not generate a unique commit hash after %d attempts", hashAttempts)
}

func newHash(r io.Reader) (string, error) {
	b := make([]byte, hashBytes)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func commitView(ctx context.Context, s repository.Store, id uint) (*domain.Commit, error) {
	commit, err := s.Commits().CommitByID(ctx, id)
	if errors.Is(err, errcodes.ErrNoRecordFound) {
		return nil, notFound("commit", "", id)
	}
	if err != nil {
		return nil, fmt.Errorf("look up commit %d: %w", id, err)
	}
	views := []domain.Commit{*commit}
	if err := enrichCommits(ctx, s, views); err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (uc *commitUsecase) Get(ctx context.Context, id uint) (*domain.Commit, error) {
	commit, err := commitView(ctx, uc.store, id)
	if err != nil {
		return nil, uc.fail("get commit", err)
	}
	return commit, nil
}

func (uc *commitUsecase) ListByRepository(ctx context.Context, repoID uint, page domain.Pagination) (*domain.List[domain.Commit], error) {
	if _, err := requireRepository(ctx, uc.store, repoID, ""); err != nil {
		return nil, uc.fail("list commits", err)
	}
	commits, total, err := uc.store.Commits().CommitsByRepository(ctx, repoID, page.Normalize(domain.DefaultLimit))
	if err != nil {
		return nil, uc.fail("list commits", err)
	}
	if err := enrichCommits(ctx, uc.store, commits); err != nil {
		return nil, uc.fail("list commits", err)
	}
	return &domain.List[domain.Commit]{Items: commits, Total: total}, nil
}

func (uc *commitUsecase) Update(ctx context.Context, id uint, patch domain.CommitPatch) (*domain.Commit, error) {
	if patch.Message != nil {
		if err := validateMessage(*patch.Message); err != nil {
			return nil, err
		}
	}

	var commit *domain.Commit
	err := uc.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Commits().CommitByID(ctx, id); err != nil {
			if errors.Is(err, errcodes.ErrNoRecordFound) {
				return notFound("commit", "", id)
			}
			return err
		}
		if _, err := tx.Commits().UpdateCommit(ctx, id, patch); err != nil {
			return err
		}
		var err error
		commit, err = commitView(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, uc.fail("update commit", err)
	}
	return commit, nil
}

func (uc *commitUsecase) Delete(ctx context.Context, id uint) error {
	err := uc.store.Transaction(ctx, func(tx repository.Store) error {
		err := tx.Commits().DeleteCommit(ctx, id)
		if errors.Is(err, errcodes.ErrNoRecordFound) {
			return notFound("commit", "", id)
		}
		return err
	})
	if err != nil {
		return uc.fail("delete commit", err)
	}
	return nil
}
