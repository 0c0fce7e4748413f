package errcodes

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("create user: %w", Conflict("username already exists"))

	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, ErrConflict, KindOf(err))
	assert.Equal(t, "conflict", KindName(err))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	assert.Equal(t, "create user: username already exists", err.Error())
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause, "could not save commit")

	assert.True(t, errors.Is(err, ErrInternal))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "could not save commit", err.Error())
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
}

func TestUnknownErrorsAreInternal(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, ErrInternal, KindOf(err))
	assert.Equal(t, "internal", KindName(err))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("user %d not found", 3)))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Invalid("limit must be positive")))
}

func TestConstraintErrorMessage(t *testing.T) {
	err := &ConstraintError{Kind: UniqueViolation, Constraint: "uq_users_email", Err: errors.New("dup")}

	assert.Contains(t, err.Error(), `unique constraint "uq_users_email"`)
	assert.ErrorContains(t, &ConstraintError{Kind: ForeignKeyViolation, Err: errors.New("fk")}, "foreign key constraint violated")
}
