//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"court-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{"no rows", pgx.ErrNoRows, infra.KindNotFound},
		{"plain error", errors.New("connection reset"), infra.KindDBFailure},
		{"exclusion violation", &pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap"}, infra.KindConflict},
		{"hold slot unique", &pgconn.PgError{Code: "23505", ConstraintName: "temporary_holds_slot_key"}, infra.KindConflict},
		{"code unique", &pgconn.PgError{Code: "23505", ConstraintName: "temporary_holds_code_key"}, infra.KindDuplicateKey},
		{"foreign key", &pgconn.PgError{Code: "23503"}, infra.KindForeignKeyViolated},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op", tc.err)
			assert.True(t, infra.IsKind(err, tc.want), "got %v", err)
		})
	}
}

func TestWrapRepoErr_ExplicitKind(t *testing.T) {
	err := infra.WrapRepoErr("hold not found", nil, infra.KindNotFound)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.Equal(t, "NOT_FOUND: hold not found", err.Error())
}

func TestWrapRepoErr_Unwraps(t *testing.T) {
	cause := &pgconn.PgError{Code: "23505", ConstraintName: "reservations_code_key"}
	err := infra.WrapRepoErr("failed to create reservation", cause)

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "reservations_code_key", pgErr.ConstraintName)
}
