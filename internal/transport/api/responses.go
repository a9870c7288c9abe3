package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/fsdevblog/paywallet/internal/domain"
)

type WalletResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	AvailableCents int64     `json:"available_cents"`
	PendingCents   int64     `json:"pending_cents"`
	OnHoldCents    int64     `json:"on_hold_cents"`
	TotalCents     int64     `json:"total_cents"`
}

func newWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		UserID:         w.UserID,
		AvailableCents: w.AvailableCents,
		PendingCents:   w.PendingCents,
		OnHoldCents:    w.OnHoldCents,
		TotalCents:     w.TotalCents(),
	}
}

type TransactionResponse struct {
	ID              uuid.UUID                `json:"id"`
	Type            domain.TransactionType   `json:"type"`
	AmountCents     int64                    `json:"amount_cents"`
	FeeCents        int64                    `json:"fee_cents"`
	SenderID        *uuid.UUID               `json:"sender_id,omitempty"`
	ReceiverID      *uuid.UUID               `json:"receiver_id,omitempty"`
	BankID          *string                  `json:"bank_id,omitempty"`
	Status          domain.TransactionStatus `json:"status"`
	ApprovalStatus  domain.ApprovalStatus    `json:"approval_status"`
	ApprovedBy      *uuid.UUID               `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time               `json:"approved_at,omitempty"`
	RejectionReason *string                  `json:"rejection_reason,omitempty"`
	Memo            *string                  `json:"memo,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
}

func newTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		Type:            t.Type,
		AmountCents:     t.AmountCents,
		FeeCents:        t.FeeCents,
		SenderID:        t.SenderID,
		ReceiverID:      t.ReceiverID,
		BankID:          t.BankID,
		Status:          t.Status,
		ApprovalStatus:  t.ApprovalStatus,
		ApprovedBy:      t.ApprovedBy,
		ApprovedAt:      t.ApprovedAt,
		RejectionReason: t.RejectionReason,
		Memo:            t.Memo,
		CreatedAt:       t.CreatedAt,
	}
}

func newTransactionsResponse(transactions []domain.Transaction) []TransactionResponse {
	response := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		response[i] = newTransactionResponse(&transactions[i])
	}
	return response
}

type OrderResponse struct {
	ID                uuid.UUID          `json:"id"`
	BuyerID           uuid.UUID          `json:"buyer_id"`
	SellerID          uuid.UUID          `json:"seller_id"`
	AmountCents       int64              `json:"amount_cents"`
	ItemDescription   string             `json:"item_description"`
	Status            domain.OrderStatus `json:"status"`
	TrackingNumber    *string            `json:"tracking_number,omitempty"`
	ShippingCarrier   *string            `json:"shipping_carrier,omitempty"`
	PaidAt            *time.Time         `json:"paid_at,omitempty"`
	ShippedAt         *time.Time         `json:"shipped_at,omitempty"`
	DeliveredAt       *time.Time         `json:"delivered_at,omitempty"`
	ReleaseApprovedAt *time.Time         `json:"release_approved_at,omitempty"`
	CompletedAt       *time.Time         `json:"completed_at,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
}

func newOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		BuyerID:           o.BuyerID,
		SellerID:          o.SellerID,
		AmountCents:       o.AmountCents,
		ItemDescription:   o.ItemDescription,
		Status:            o.Status,
		TrackingNumber:    o.TrackingNumber,
		ShippingCarrier:   o.ShippingCarrier,
		PaidAt:            o.PaidAt,
		ShippedAt:         o.ShippedAt,
		DeliveredAt:       o.DeliveredAt,
		ReleaseApprovedAt: o.ReleaseApprovedAt,
		CompletedAt:       o.CompletedAt,
		CreatedAt:         o.CreatedAt,
	}
}

func newOrdersResponse(orders []domain.Order) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i := range orders {
		response[i] = newOrderResponse(&orders[i])
	}
	return response
}

type EscrowHoldResponse struct {
	ID          uuid.UUID           `json:"id"`
	OrderID     uuid.UUID           `json:"order_id"`
	UserID      uuid.UUID           `json:"user_id"`
	SellerID    uuid.UUID           `json:"seller_id"`
	AmountCents int64               `json:"amount_cents"`
	Status      domain.EscrowStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	ReleasedAt  *time.Time          `json:"released_at,omitempty"`
}

func newEscrowResponse(holds []domain.EscrowHold) []EscrowHoldResponse {
	response := make([]EscrowHoldResponse, len(holds))
	for i, h := range holds {
		response[i] = EscrowHoldResponse{
			ID:          h.ID,
			OrderID:     h.OrderID,
			UserID:      h.UserID,
			SellerID:    h.SellerID,
			AmountCents: h.AmountCents,
			Status:      h.Status,
			CreatedAt:   h.CreatedAt,
			ReleasedAt:  h.ReleasedAt,
		}
	}
	return response
}

type CreateOrderResponse struct {
	Order OrderResponse        `json:"order"`
	Holds []EscrowHoldResponse `json:"holds"`
}

type StatsResponse struct {
	TotalUsers          int64 `json:"total_users"`
	TotalDepositedCents int64 `json:"total_deposited_cents"`
	Volume30dCents      int64 `json:"volume_30d_cents"`
	ActiveToday         int64 `json:"active_today"`
}
