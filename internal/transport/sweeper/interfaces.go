package sweeper

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/fsdevblog/paywallet/internal/domain"
)

type Servicer interface {
	DueForDelivery(ctx context.Context, limit uint) ([]domain.Order, error)
	PromoteDelivered(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	DueForRelease(ctx context.Context, limit uint) ([]domain.Order, error)
	AutoRelease(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
}

// Locker распределенная блокировка итерации обработчика между репликами.
type Locker interface {
	// TryLock пытается захватить блокировку один раз. Возвращает функцию освобождения. false без ошибки
	// означает, что блокировку держит другой процесс.
	TryLock(ctx context.Context, key string) (func(context.Context) error, bool, error)
}
