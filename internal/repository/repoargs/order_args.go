package repoargs

import (
	"time"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/google/uuid"
)

type OrderCreate struct {
	ID              uuid.UUID
	BuyerID         uuid.UUID
	SellerID        uuid.UUID
	AmountCents     int64
	ItemDescription string
}

// Tracking данные отправления, которые проставляются заказу.
type Tracking struct {
	Carrier   string
	Number    string
	ShippedAt time.Time
}

// OrderTransition условное обновление статуса заказа: применяется только если текущий статус равен From.
// Нулевые временные метки не меняют соответствующие поля.
type OrderTransition struct {
	ID                uuid.UUID
	From              domain.OrderStatus
	To                domain.OrderStatus
	PaidAt            *time.Time
	DeliveredAt       *time.Time
	ReleaseApprovedAt *time.Time
	CompletedAt       *time.Time
	Tracking          *Tracking
	ClearTracking     bool
}

// DueOrders выборка заказов в статусе Status, у которых отметка времени старше Before.
type DueOrders struct {
	Status domain.OrderStatus
	Before time.Time
	Limit  uint
}
