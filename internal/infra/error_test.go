//go:build unit

package infra

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []RepositoryErrorKind
		want RepositoryErrorKind
	}{
		{name: "generic failure", err: assert.AnError, want: KindDBFailure},
		{name: "no rows", err: pgx.ErrNoRows, want: KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: KindForeignKeyViolated},
		{name: "explicit kind wins", err: assert.AnError, kind: []RepositoryErrorKind{KindNotFound}, want: KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapRepoErr("failed to do thing", tt.err, tt.kind...)

			assert.True(t, IsKind(err, tt.want))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "failed to do thing")
		})
	}
}

func TestIsKind_NotRepositoryError(t *testing.T) {
	assert.False(t, IsKind(assert.AnError, KindDBFailure))
}
