package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/just-nibble/codehost/pkg/errcodes"
	"github.com/mattn/go-sqlite3"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// classify turns driver constraint errors into *errcodes.ConstraintError and
// returns anything else unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &errcodes.ConstraintError{Kind: errcodes.UniqueViolation, Constraint: pgErr.ConstraintName, Err: err}
		case pgForeignKeyViolation:
			return &errcodes.ConstraintError{Kind: errcodes.ForeignKeyViolation, Constraint: pgErr.ConstraintName, Err: err}
		}
		return err
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return &errcodes.ConstraintError{Kind: errcodes.UniqueViolation, Constraint: sqliteConstraint(liteErr.Error()), Err: err}
		case sqlite3.ErrConstraintForeignKey:
			return &errcodes.ConstraintError{Kind: errcodes.ForeignKeyViolation, Err: err}
		}
	}
	return err
}

// sqliteConstraint maps "UNIQUE constraint failed: users.email" to the index
// name, since SQLite reports the violated columns instead.
func sqliteConstraint(msg string) string {
	_, cols, ok := strings.Cut(msg, "constraint failed: ")
	if !ok {
		return ""
	}
	switch strings.TrimSpace(cols) {
	case "users.username":
		return ConstraintUsersUsername
	case "users.email":
		return ConstraintUsersEmail
	case "repositories.owner_id, repositories.name":
		return ConstraintRepositoriesOwnerName
	case "commits.hash":
		return ConstraintCommitsHash
	case "stars.user_id, stars.repository_id":
		return ConstraintStarsUserRepository
	default:
		return ""
	}
}
