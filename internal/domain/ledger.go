package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Party сторона транзакции, чей кошелек затрагивается.
type Party int

const (
	PartyNone Party = iota
	PartySender
	PartyReceiver
)

// LedgerEffect описывает, как одобренная транзакция меняет кошельки.
type LedgerEffect struct {
	Debit           Party
	Credit          Party
	DebitIncludeFee bool
}

// ledgerEffects единственная таблица соответствия тип -> эффект на балансы.
var ledgerEffects = map[TransactionType]LedgerEffect{
	TransactionTypeCardLoad:     {Credit: PartyReceiver},
	TransactionTypeBankLoad:     {Credit: PartyReceiver},
	TransactionTypeZelleLoad:    {Credit: PartyReceiver},
	TransactionTypeCashAppLoad:  {Credit: PartyReceiver},
	TransactionTypeApplePayLoad: {Credit: PartyReceiver},
	TransactionTypeTopup:        {Credit: PartyReceiver},
	TransactionTypePayout:       {Debit: PartySender, DebitIncludeFee: true},
	TransactionTypeTransfer:     {Debit: PartySender, Credit: PartyReceiver, DebitIncludeFee: true},
}

func LedgerEffectFor(t TransactionType) (LedgerEffect, bool) {
	e, ok := ledgerEffects[t]
	return e, ok
}

// Movement конкретное изменение одного кошелька.
type Movement struct {
	UserID uuid.UUID
	Cents  int64
}

// Movements разворачивает эффект для конкретной транзакции. Сначала всегда идет списание, затем зачисление.
func (e LedgerEffect) Movements(t *Transaction) (debit *Movement, credit *Movement, err error) {
	if e.Debit != PartyNone {
		userID, partyErr := partyID(t, e.Debit)
		if partyErr != nil {
			return nil, nil, partyErr
		}
		cents := t.AmountCents
		if e.DebitIncludeFee {
			cents += t.FeeCents
		}
		debit = &Movement{UserID: userID, Cents: cents}
	}
	if e.Credit != PartyNone {
		userID, partyErr := partyID(t, e.Credit)
		if partyErr != nil {
			return nil, nil, partyErr
		}
		credit = &Movement{UserID: userID, Cents: t.AmountCents}
	}
	return debit, credit, nil
}

func partyID(t *Transaction, p Party) (uuid.UUID, error) {
	var id *uuid.UUID
	var field string
	switch p {
	case PartySender:
		id, field = t.SenderID, "sender_id"
	case PartyReceiver:
		id, field = t.ReceiverID, "receiver_id"
	default:
		return uuid.Nil, fmt.Errorf("transaction %s: unknown party %d", t.ID, p)
	}
	if id == nil {
		return uuid.Nil, fmt.Errorf("transaction %s of type %s: %w", t.ID, t.Type, NewValidationError(field, "is required"))
	}
	return *id, nil
}
