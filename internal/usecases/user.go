package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/internal/repository"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"github.com/just-nibble/codehost/pkg/validator"
	"github.com/rs/zerolog"
)

const maxAvatarURLLength = 500

type UserUsecase interface {
	Create(ctx context.Context, input domain.NewUser) (*domain.User, error)
	Get(ctx context.Context, id uint) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, page domain.Pagination) (*domain.List[domain.User], error)
	Update(ctx context.Context, id uint, patch domain.UserPatch) (*domain.User, error)
	// Delete removes the user with everything they own or authored.
	Delete(ctx context.Context, id uint) error
}

type userUsecase struct {
	base
}

func NewUserUsecase(store repository.Store, log zerolog.Logger) UserUsecase {
	return &userUsecase{base{store: store, log: log}}
}

func validateUsername(username string) error {
	if !validator.IsUsername(username) {
		return errcodes.Invalid("username must be 3-50 letters, digits, '.', '_' or '-', starting and ending with a letter or digit")
	}
	return nil
}

func validateEmail(email string) error {
	if !validator.IsEmail(email) {
		return errcodes.Invalid("email %q is not a valid address", email)
	}
	return nil
}

func validateAvatarURL(url *string) error {
	if url != nil && len(*url) > maxAvatarURLLength {
		return errcodes.Invalid("avatar_url must be at most %d characters", maxAvatarURLLength)
	}
	return nil
}

func (uc *userUsecase) Create(ctx context.Context, input domain.NewUser) (*domain.User, error) {
	if err := validateUsername(input.Username); err != nil {
		return nil, err
	}
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validateAvatarURL(input.AvatarURL); err != nil {
		return nil, err
	}

	var user *domain.User
	err := uc.store.Transaction(ctx, func(tx repository.Store) error {
		if err := uniqueUser(ctx, tx, &input.Username, &input.Email, 0); err != nil {
			return err
		}
		saved, err := tx.Users().SaveUser(ctx, domain.User{
			Username:  input.Username,
			Email:     input.Email,
			Bio:       emptyToNil(input.Bio),
			AvatarURL: emptyToNil(input.AvatarURL),
		})
		if err != nil {
			return writeErr(err, nil)
		}
		user, err = tx.Users().UserByID(ctx, saved.ID)
		return err
	})
	if err != nil {
		return nil, uc.fail("create user", err)
	}
	return user, nil
}

func (uc *userUsecase) Get(ctx context.Context, id uint) (*domain.User, error) {
	user, err := requireUser(ctx, uc.store, id, "")
	if err != nil {
		return nil, uc.fail("get user", err)
	}
	return user, nil
}

func (uc *userUsecase) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := uc.store.Users().UserByUsername(ctx, username)
	if errors.Is(err, errcodes.ErrNoRecordFound) {
		return nil, errcodes.NotFound("user %q not found", username)
	}
	if err != nil {
		return nil, uc.fail("get user by username", err)
	}
	return user, nil
}

func (uc *userUsecase) List(ctx context.Context, page domain.Pagination) (*domain.List[domain.User], error) {
	users, total, err := uc.store.Users().ListUsers(ctx, page.Normalize(domain.DefaultLimit))
	if err != nil {
		return nil, uc.fail("list users", err)
	}
	return &domain.List[domain.User]{Items: users, Total: total}, nil
}

func (uc *userUsecase) Update(ctx context.Context, id uint, patch domain.UserPatch) (*domain.User, error) {
	if patch.Username != nil {
		if err := validateUsername(*patch.Username); err != nil {
			return nil, err
		}
	}
	if patch.Email != nil {
		if err := validateEmail(*patch.Email); err != nil {
			return nil, err
		}
	}
	if err := validateAvatarURL(patch.AvatarURL); err != nil {
		return nil, err
	}

	var user *domain.User
	err := uc.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := requireUser(ctx, tx, id, ""); err != nil {
			return err
		}
		if err := uniqueUser(ctx, tx, patch.Username, patch.Email, id); err != nil {
			return err
		}
		var err error
		user, err = tx.Users().UpdateUser(ctx, id, patch)
		return writeErr(err, nil)
	})
	if err != nil {
		return nil, uc.fail("update user", err)
	}
	return user, nil
}

func (uc *userUsecase) Delete(ctx context.Context, id uint) error {
	err := uc.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := requireUser(ctx, tx, id, ""); err != nil {
			return err
		}

		repoIDs, err := tx.Repositories().RepositoryIDsByOwner(ctx, id)
		if err != nil {
			return fmt.Errorf("list owned repositories: %w", err)
		}
		if err := deleteRepositoryChildren(ctx, tx, repoIDs); err != nil {
			return err
		}
		if err := tx.Repositories().DeleteRepositoriesByOwner(ctx, id); err != nil {
			return fmt.Errorf("delete owned repositories: %w", err)
		}

		if err := tx.Commits().DeleteCommitsByAuthor(ctx, id); err != nil {
			return fmt.Errorf("delete authored commits: %w", err)
		}
		if err := tx.Issues().DeleteIssuesByCreator(ctx, id); err != nil {
			return fmt.Errorf("delete created issues: %w", err)
		}
		if err := tx.Stars().DeleteStarsByUser(ctx, id); err != nil {
			return fmt.Errorf("delete stars: %w", err)
		}

		err = tx.Users().DeleteUser(ctx, id)
		if errors.Is(err, errcodes.ErrNoRecordFound) {
			return notFound("user", "", id)
		}
		return err
	})
	if err != nil {
		return uc.fail("delete user", err)
	}
	return nil
}

// emptyToNil drops an empty optional text so it is stored as NULL.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
