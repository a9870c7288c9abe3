package domain

type OrderStatus string

const (
	OrderStatusPendingPayment        OrderStatus = "PENDING_PAYMENT"
	OrderStatusPendingShipment       OrderStatus = "PENDING_SHIPMENT"
	OrderStatusAwaitingAdminApproval OrderStatus = "AWAITING_ADMIN_APPROVAL"
	OrderStatusShipped               OrderStatus = "SHIPPED"
	OrderStatusAwaitingRelease       OrderStatus = "AWAITING_RELEASE"
	OrderStatusCompleted             OrderStatus = "COMPLETED"
	OrderStatusCancelled             OrderStatus = "CANCELLED"
)

// orderTransitions граф допустимых переходов. CANCELLED достижим из любого нетерминального состояния,
// но ни одна операция пока его не использует.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPendingPayment: {
		OrderStatusPendingShipment,
		OrderStatusAwaitingAdminApproval,
		OrderStatusCancelled,
	},
	OrderStatusPendingShipment: {
		OrderStatusAwaitingAdminApproval,
		OrderStatusCancelled,
	},
	OrderStatusAwaitingAdminApproval: {
		OrderStatusShipped,
		OrderStatusPendingShipment,
		OrderStatusCancelled,
	},
	OrderStatusShipped: {
		OrderStatusAwaitingRelease,
		OrderStatusCancelled,
	},
	OrderStatusAwaitingRelease: {
		OrderStatusCompleted,
		OrderStatusCancelled,
	},
}

// CanTransitionTo проверяет наличие ребра s -> to в графе состояний заказа.
func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendingPayment, OrderStatusPendingShipment, OrderStatusAwaitingAdminApproval,
		OrderStatusShipped, OrderStatusAwaitingRelease, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}
