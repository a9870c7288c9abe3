package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrAlreadyProcessed  = errors.New("already processed")
	ErrNoHeldEscrow      = errors.New("no held escrow")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrValidation        = errors.New("validation failed")
)

// AlreadyProcessedError возвращается, когда решение по транзакции уже было принято ранее.
// Содержит сохраненное состояние транзакции, чтобы вызывающая сторона могла отдать прежний результат.
type AlreadyProcessedError struct {
	Transaction *Transaction
}

func NewAlreadyProcessedError(t *Transaction) error {
	return &AlreadyProcessedError{Transaction: t}
}

func (e *AlreadyProcessedError) Error() string {
	return fmt.Sprintf(
		"transaction %s already processed with approval status %s",
		e.Transaction.ID,
		e.Transaction.ApprovalStatus,
	)
}

func (e *AlreadyProcessedError) Unwrap() error {
	return ErrAlreadyProcessed
}

// InvalidTransitionError переход заказа From -> To запрещен графом состояний или текущим состоянием в БД.
type InvalidTransitionError struct {
	OrderID uuid.UUID
	From    OrderStatus
	To      OrderStatus
}

func NewInvalidTransitionError(orderID uuid.UUID, from, to OrderStatus) error {
	return &InvalidTransitionError{OrderID: orderID, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %s: transition %s -> %s is not allowed", e.OrderID, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// NoHeldEscrowError у заказа нет удерживаемой пары холдов. Order содержит текущую версию заказа.
type NoHeldEscrowError struct {
	Order    *Order
	released bool
}

func NewNoHeldEscrowError(order *Order) error {
	return &NoHeldEscrowError{Order: order}
}

// NewAlreadyReleasedError повторный release уже завершенного заказа.
func NewAlreadyReleasedError(order *Order) error {
	return &NoHeldEscrowError{Order: order, released: true}
}

func (e *NoHeldEscrowError) Error() string {
	if e.released {
		return fmt.Sprintf("order %s escrow already released", e.Order.ID)
	}
	return fmt.Sprintf("order %s has no held escrow", e.Order.ID)
}

func (e *NoHeldEscrowError) Unwrap() error {
	return ErrNoHeldEscrow
}

// AlreadyReleased true, если холды были освобождены предыдущим вызовом и заказ завершен.
func (e *NoHeldEscrowError) AlreadyReleased() bool {
	return e.released
}

// ValidationError ошибка входных данных с указанием поля.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
