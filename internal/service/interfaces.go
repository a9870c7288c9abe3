package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type WalletRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	Credit(ctx context.Context, movement repoargs.WalletMovement) (*domain.Wallet, error)
	Debit(ctx context.Context, movement repoargs.WalletMovement) (*domain.Wallet, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	ApplyDecision(ctx context.Context, args repoargs.TransactionDecision) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page repoargs.Page) ([]domain.Transaction, error)
	ListPending(ctx context.Context, page repoargs.Page) ([]domain.Transaction, error)
}

type OrderRepository interface {
	Create(ctx context.Context, args repoargs.OrderCreate) (*domain.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ApplyTransition(ctx context.Context, args repoargs.OrderTransition) (*domain.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page repoargs.Page) ([]domain.Order, error)
	ListByStatus(ctx context.Context, status domain.OrderStatus, page repoargs.Page) ([]domain.Order, error)
	GetDue(ctx context.Context, args repoargs.DueOrders) ([]domain.Order, error)
}

type EscrowRepository interface {
	CreateHolds(ctx context.Context, holds []repoargs.EscrowHoldCreate) ([]domain.EscrowHold, error)
	ReleaseHeld(ctx context.Context, orderID uuid.UUID, releasedAt time.Time) ([]domain.EscrowHold, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.EscrowHold, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page repoargs.Page) ([]domain.EscrowHold, error)
}

type ShipmentRepository interface {
	Create(ctx context.Context, args repoargs.ShipmentCreate) (*domain.Shipment, error)
	DeleteByOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.Shipment, error)
}

type DepositRepository interface {
	Create(ctx context.Context, args repoargs.AdminDepositCreate) (*domain.AdminDeposit, error)
}

type ProfileRepository interface {
	FindByHandle(ctx context.Context, handle string) (*domain.Profile, error)
}

type StatsRepository interface {
	PlatformStats(ctx context.Context, volumeSince time.Time, activeSince time.Time) (*domain.PlatformStats, error)
}

// EventPublisher отправляет события о зафиксированных изменениях во внешний поток. Ошибки доставки
// обрабатываются самим издателем, money movement к этому моменту уже закоммичен.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.LedgerEvent)
}
