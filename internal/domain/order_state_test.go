package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"payment confirmed", OrderStatusPendingPayment, OrderStatusPendingShipment, true},
		{"tracking before payment", OrderStatusPendingPayment, OrderStatusAwaitingAdminApproval, true},
		{"tracking submitted", OrderStatusPendingShipment, OrderStatusAwaitingAdminApproval, true},
		{"tracking approved", OrderStatusAwaitingAdminApproval, OrderStatusShipped, true},
		{"tracking rejected", OrderStatusAwaitingAdminApproval, OrderStatusPendingShipment, true},
		{"delivered", OrderStatusShipped, OrderStatusAwaitingRelease, true},
		{"released", OrderStatusAwaitingRelease, OrderStatusCompleted, true},
		{"cancel from shipped", OrderStatusShipped, OrderStatusCancelled, true},
		{"skip verification", OrderStatusPendingShipment, OrderStatusShipped, false},
		{"skip delivery", OrderStatusShipped, OrderStatusCompleted, false},
		{"backwards", OrderStatusAwaitingRelease, OrderStatusShipped, false},
		{"tracking on completed", OrderStatusCompleted, OrderStatusAwaitingAdminApproval, false},
		{"re-enter completed", OrderStatusCompleted, OrderStatusCompleted, false},
		{"cancel cancelled", OrderStatusCancelled, OrderStatusCancelled, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusShipped.IsTerminal())
	assert.False(t, OrderStatus("UNKNOWN").Valid())
}
