package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTypedErrorsUnwrapToSentinels(t *testing.T) {
	processed := fmt.Errorf("decide: %w", NewAlreadyProcessedError(&Transaction{ID: uuid.New()}))
	assert.ErrorIs(t, processed, ErrAlreadyProcessed)

	var apErr *AlreadyProcessedError
	assert.True(t, errors.As(processed, &apErr))

	transition := NewInvalidTransitionError(uuid.New(), OrderStatusCompleted, OrderStatusShipped)
	assert.ErrorIs(t, transition, ErrInvalidTransition)

	released := NewAlreadyReleasedError(&Order{ID: uuid.New(), Status: OrderStatusCompleted})
	assert.ErrorIs(t, released, ErrNoHeldEscrow)

	var nhErr *NoHeldEscrowError
	assert.True(t, errors.As(released, &nhErr))
	assert.True(t, nhErr.AlreadyReleased())

	missing := NewNoHeldEscrowError(&Order{ID: uuid.New(), Status: OrderStatusCompleted})
	assert.True(t, errors.As(missing, &nhErr))
	assert.False(t, nhErr.AlreadyReleased())

	assert.ErrorIs(t, NewValidationError("reason", "is required"), ErrValidation)
}
