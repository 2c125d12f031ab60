package infra

import (
	"context"
	"errors"
	"log/slog"

	"booth-booking/internal/pkg/errs"
	"booth-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err from its PostgreSQL code unless a kind is given.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k, constraint := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	level := slog.LevelWarn
	if k == KindDBFailure {
		level = slog.LevelError
	}
	slog.Log(context.Background(), level, "Repository error: "+msg,
		slog.String("kind", string(k)),
		slog.String("constraint", constraint),
	)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, Constraint: constraint, msg: msg, err: err}
}

func classify(err error) (RepositoryErrorKind, string) {
	if pgconv.IsNoRows(err) {
		return KindNotFound, ""
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure, ""
	}
	switch pgErr.Code {
	case pgErrUniqueViolation:
		return KindDuplicateKey, pgErr.ConstraintName
	case pgErrForeignKeyViolation:
		return KindForeignKeyViolated, pgErr.ConstraintName
	case pgErrExclusionViolation:
		return KindConflict, pgErr.ConstraintName
	default:
		return KindDBFailure, pgErr.ConstraintName
	}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ViolatedConstraint returns the constraint name carried by a repository error.
func ViolatedConstraint(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrExclusionViolation  = "23P01"
)

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
)
