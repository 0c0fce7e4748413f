package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/internal/repository"
	"github.com/just-nibble/codehost/pkg/errcodes"
)

// Conflict messages shared by the pre-checks and the constraint backstop.
const (
	msgUsernameTaken  = "username already exists"
	msgEmailTaken     = "email already exists"
	msgBothTaken      = "username and email already exist"
	msgRepoNameTaken  = "repository with this name already exists for this user"
	msgHashTaken      = "commit hash already exists"
	msgAlreadyStarred = "repository already starred"
)

var uniqueConflicts = map[string]string{
	repository.ConstraintUsersUsername:         msgUsernameTaken,
	repository.ConstraintUsersEmail:            msgEmailTaken,
	repository.ConstraintRepositoriesOwnerName: msgRepoNameTaken,
	repository.ConstraintCommitsHash:           msgHashTaken,
	repository.ConstraintStarsUserRepository:   msgAlreadyStarred,
}

// notFound names the entity, and the referencing field when ref is set:
// "user 7 not found" or "owner_id 7: user not found".
func notFound(entity, ref string, id uint) error {
	if ref == "" {
		return errcodes.NotFound("%s %d not found", entity, id)
	}
	return errcodes.NotFound("%s %d: %s not found", ref, id, entity)
}

func requireUser(ctx context.Context, s repository.Store, id uint, ref string) (*domain.User, error) {
	user, err := s.Users().UserByID(ctx, id)
	if errors.Is(err, errcodes.ErrNoRecordFound) {
		return nil, notFound("user", ref, id)
	}
	if err != nil {
		return nil, fmt.Errorf("look up user %d: %w", id, err)
	}
	return user, nil
}

func requireRepository(ctx context.Context, s repository.Store, id uint, ref string) (*domain.Repository, error) {
	repo, err := s.Repositories().RepositoryByID(ctx, id)
	if errors.Is(err, errcodes.ErrNoRecordFound) {
		return nil, notFound("repository", ref, id)
	}
	if err != nil {
		return nil, fmt.Errorf("look up repository %d: %w", id, err)
	}
	return repo, nil
}

// uniqueUser rejects a username or email held by a user other than excludeID.
// Nil fields are not checked.
func uniqueUser(ctx context.Context, s repository.Store, username, email *string, excludeID uint) error {
	taken := func(u *domain.User, err error) (bool, error) {
		if errors.Is(err, errcodes.ErrNoRecordFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return u.ID != excludeID, nil
	}

	var nameTaken, emailTaken bool
	var err error
	if username != nil {
		if nameTaken, err = taken(s.Users().UserByUsername(ctx, *username)); err != nil {
			return fmt.Errorf("check username: %w", err)
		}
	}
	if email != nil {
		if emailTaken, err = taken(s.Users().UserByEmail(ctx, *email)); err != nil {
			return fmt.Errorf("check email: %w", err)
		}
	}

	switch {
	case nameTaken && emailTaken:
		return errcodes.Conflict(msgBothTaken)
	case nameTaken:
		return errcodes.Conflict(msgUsernameTaken)
	case emailTaken:
		return errcodes.Conflict(msgEmailTaken)
	}
	return nil
}

// uniqueRepositoryName rejects a name the owner already uses for a
// repository other than excludeID.
func uniqueRepositoryName(ctx context.Context, s repository.Store, ownerID uint, name string, excludeID uint) error {
	existing, err := s.Repositories().RepositoryByOwnerAndName(ctx, ownerID, name)
	if errors.Is(err, errcodes.ErrNoRecordFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("check repository name: %w", err)
	}
	if existing.ID != excludeID {
		return errcodes.Conflict(msgRepoNameTaken)
	}
	return nil
}

func hashTaken(ctx context.Context, s repository.Store, hash string) (bool, error) {
	_, err := s.Commits().CommitByHash(ctx, hash)
	if errors.Is(err, errcodes.ErrNoRecordFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check commit hash: %w", err)
	}
	return true, nil
}

// writeErr maps a constraint the database enforced after the pre-checks
// passed onto the error the matching check produces. onForeignKey is
// returned for a missing reference. Unknown violations become Internal.
func writeErr(err error, onForeignKey error) error {
	var ce *errcodes.ConstraintError
	if !errors.As(err, &ce) {
		return err
	}
	switch ce.Kind {
	case errcodes.UniqueViolation:
		if msg, ok := uniqueConflicts[ce.Constraint]; ok {
			return errcodes.Conflict(msg)
		}
	case errcodes.ForeignKeyViolation:
		if onForeignKey != nil {
			return onForeignKey
		}
	}
	return errcodes.Internal(err, "unexpected %s constraint violation", ce.Kind)
}
