package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerEffectFor_AllTypesCovered(t *testing.T) {
	types := append([]TransactionType{TransactionTypeTopup, TransactionTypeTransfer, TransactionTypePayout}, LoadMethods...)
	for _, tt := range types {
		_, ok := LedgerEffectFor(tt)
		assert.True(t, ok, "type %s has no ledger effect", tt)
	}
	_, ok := LedgerEffectFor("WIRE")
	assert.False(t, ok)
}

func TestLedgerEffect_Movements(t *testing.T) {
	sender := uuid.New()
	receiver := uuid.New()

	cases := []struct {
		name       string
		tx         Transaction
		wantDebit  *Movement
		wantCredit *Movement
	}{
		{
			name:       "load credits receiver amount",
			tx:         Transaction{Type: TransactionTypeZelleLoad, AmountCents: 2500, ReceiverID: &receiver},
			wantCredit: &Movement{UserID: receiver, Cents: 2500},
		},
		{
			name:      "payout debits sender amount plus fee",
			tx:        Transaction{Type: TransactionTypePayout, AmountCents: 10000, FeeCents: 150, SenderID: &sender},
			wantDebit: &Movement{UserID: sender, Cents: 10150},
		},
		{
			name: "transfer debits with fee and credits amount",
			tx: Transaction{
				Type: TransactionTypeTransfer, AmountCents: 700, FeeCents: 10,
				SenderID: &sender, ReceiverID: &receiver,
			},
			wantDebit:  &Movement{UserID: sender, Cents: 710},
			wantCredit: &Movement{UserID: receiver, Cents: 700},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			effect, ok := LedgerEffectFor(tc.tx.Type)
			require.True(t, ok)
			debit, credit, err := effect.Movements(&tc.tx)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDebit, debit)
			assert.Equal(t, tc.wantCredit, credit)
		})
	}
}

func TestLedgerEffect_MissingParty(t *testing.T) {
	effect, _ := LedgerEffectFor(TransactionTypePayout)
	_, _, err := effect.Movements(&Transaction{ID: uuid.New(), Type: TransactionTypePayout, AmountCents: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}
