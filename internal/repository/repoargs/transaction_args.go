package repoargs

import (
	"time"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/google/uuid"
)

type TransactionCreate struct {
	ID             uuid.UUID
	Type           domain.TransactionType
	AmountCents    int64
	FeeCents       int64
	SenderID       *uuid.UUID
	ReceiverID     *uuid.UUID
	BankID         *string
	Memo           *string
	Status         domain.TransactionStatus
	ApprovalStatus domain.ApprovalStatus
	ApprovedBy     *uuid.UUID
	ApprovedAt     *time.Time
}

// TransactionDecision terminal-обновление транзакции. Применяется только к строкам с approval_status = PENDING.
type TransactionDecision struct {
	ID              uuid.UUID
	Status          domain.TransactionStatus
	ApprovalStatus  domain.ApprovalStatus
	ApprovedBy      uuid.UUID
	ApprovedAt      time.Time
	RejectionReason *string
}
