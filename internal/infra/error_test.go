//go:build unit

package infra_test

import (
	"testing"

	"booth-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		kind       []infra.RepositoryErrorKind
		want       infra.RepositoryErrorKind
		constraint string
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505", ConstraintName: "bookings_reference_code_key"}, want: infra.KindDuplicateKey, constraint: "bookings_reference_code_key"},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01", ConstraintName: "holds_no_overlap"}, want: infra.KindConflict, constraint: "holds_no_overlap"},
		{name: "other pg error", err: &pgconn.PgError{Code: "57014"}, want: infra.KindDBFailure},
		{name: "plain error", err: assert.AnError, want: infra.KindDBFailure},
		{name: "explicit kind wins", err: assert.AnError, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tt.err, tt.kind...)
			assert.True(t, infra.IsKind(err, tt.want), "got %v", err)
			assert.Equal(t, tt.constraint, infra.ViolatedConstraint(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
