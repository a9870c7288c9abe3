package repoargs

import (
	"github.com/google/uuid"
)

type EscrowHoldCreate struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	UserID      uuid.UUID
	SellerID    uuid.UUID
	AmountCents int64
}

type ShipmentCreate struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	Carrier        string
	TrackingNumber string
}

type AdminDepositCreate struct {
	ID          uuid.UUID
	AdminID     uuid.UUID
	UserID      uuid.UUID
	AmountCents int64
	Note        *string
}
