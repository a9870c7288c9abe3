package domain

import (
	"time"

	"github.com/google/uuid"
)

type LedgerEventKind string

const (
	EventTransactionCreated  LedgerEventKind = "transaction.created"
	EventTransactionApproved LedgerEventKind = "transaction.approved"
	EventTransactionRejected LedgerEventKind = "transaction.rejected"
	EventWalletFunded        LedgerEventKind = "wallet.funded"
	EventEscrowOpened        LedgerEventKind = "escrow.opened"
	EventEscrowReleased      LedgerEventKind = "escrow.released"
	EventOrderTransitioned   LedgerEventKind = "order.transitioned"
)

// LedgerEvent запись о зафиксированном движении денег или смене статуса, уходит во внешний поток событий.
type LedgerEvent struct {
	Kind        LedgerEventKind `json:"kind"`
	EntityID    uuid.UUID       `json:"entity_id"`
	UserIDs     []uuid.UUID     `json:"user_ids,omitempty"`
	AmountCents int64           `json:"amount_cents,omitempty"`
	Status      string          `json:"status"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

func TransactionEvent(kind LedgerEventKind, t *Transaction) LedgerEvent {
	var users []uuid.UUID
	if t.SenderID != nil {
		users = append(users, *t.SenderID)
	}
	if t.ReceiverID != nil {
		users = append(users, *t.ReceiverID)
	}
	return LedgerEvent{
		Kind:        kind,
		EntityID:    t.ID,
		UserIDs:     users,
		AmountCents: t.AmountCents,
		Status:      string(t.ApprovalStatus),
		OccurredAt:  time.Now().UTC(),
	}
}

func OrderEvent(kind LedgerEventKind, o *Order) LedgerEvent {
	return LedgerEvent{
		Kind:        kind,
		EntityID:    o.ID,
		UserIDs:     []uuid.UUID{o.BuyerID, o.SellerID},
		AmountCents: o.AmountCents,
		Status:      string(o.Status),
		OccurredAt:  time.Now().UTC(),
	}
}
