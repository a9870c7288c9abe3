package domain

import (
	"time"

	"github.com/google/uuid"
)

type Wallet struct {
	UserID         uuid.UUID
	AvailableCents int64
	PendingCents   int64
	OnHoldCents    int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TotalCents сумма всех частей кошелька.
func (w *Wallet) TotalCents() int64 {
	return w.AvailableCents + w.PendingCents + w.OnHoldCents
}

type Transaction struct {
	ID              uuid.UUID
	Type            TransactionType
	AmountCents     int64
	FeeCents        int64
	SenderID        *uuid.UUID
	ReceiverID      *uuid.UUID
	BankID          *string
	Status          TransactionStatus
	ApprovalStatus  ApprovalStatus
	ApprovedBy      *uuid.UUID
	ApprovedAt      *time.Time
	RejectionReason *string
	Memo            *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Order struct {
	ID                uuid.UUID
	BuyerID           uuid.UUID
	SellerID          uuid.UUID
	AmountCents       int64
	ItemDescription   string
	Status            OrderStatus
	TrackingNumber    *string
	ShippingCarrier   *string
	PaidAt            *time.Time
	ShippedAt         *time.Time
	DeliveredAt       *time.Time
	ReleaseApprovedAt *time.Time
	CompletedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type EscrowHold struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	UserID      uuid.UUID
	SellerID    uuid.UUID
	AmountCents int64
	Status      EscrowStatus
	CreatedAt   time.Time
	ReleasedAt  *time.Time
}

type Shipment struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	Carrier        string
	TrackingNumber string
	CreatedAt      time.Time
}

type Profile struct {
	UserID uuid.UUID
	Handle string
}

type AdminDeposit struct {
	ID          uuid.UUID
	AdminID     uuid.UUID
	UserID      uuid.UUID
	AmountCents int64
	Note        *string
	CreatedAt   time.Time
}

type PlatformStats struct {
	TotalUsers          int64
	TotalDepositedCents int64
	Volume30dCents      int64
	ActiveToday         int64
}
