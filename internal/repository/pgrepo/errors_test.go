package pgrepo

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
)

func TestConvertErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, domain.ErrRecordNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, domain.ErrDuplicateKey},
		{
			"wallet check",
			&pgconn.PgError{Code: "23514", ConstraintName: "wallets_available_cents_check"},
			domain.ErrInsufficientFunds,
		},
		{
			"order check",
			&pgconn.PgError{Code: "23514", ConstraintName: "orders_distinct_parties"},
			domain.ErrValidation,
		},
		{"other", errors.New("boom"), domain.ErrUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, convertErr(tc.err, "doing %s", "work"), tc.want)
		})
	}
	assert.NoError(t, convertErr(nil, "nothing"))
}

func TestPageBounds(t *testing.T) {
	limit, offset, err := pageBounds(repoargs.Page{})
	assert.NoError(t, err)
	assert.Equal(t, int32(defaultPageLimit), limit)
	assert.Equal(t, int32(0), offset)

	_, _, overflowErr := pageBounds(repoargs.Page{Limit: 1 << 40})
	assert.Error(t, overflowErr)
}

func TestMovementColumn(t *testing.T) {
	column, err := movementColumn(repoargs.WalletMovement{Bucket: domain.BucketOnHold, Cents: 10})
	assert.NoError(t, err)
	assert.Equal(t, "on_hold_cents", column)

	_, zeroErr := movementColumn(repoargs.WalletMovement{Bucket: domain.BucketAvailable, Cents: 0})
	assert.ErrorIs(t, zeroErr, domain.ErrValidation)

	_, bucketErr := movementColumn(repoargs.WalletMovement{Bucket: "savings", Cents: 10})
	assert.ErrorIs(t, bucketErr, domain.ErrValidation)
}
