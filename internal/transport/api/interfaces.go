package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
	"github.com/fsdevblog/paywallet/internal/service"
	"github.com/fsdevblog/paywallet/internal/transport/sweeper"
)

type LedgerServicer interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
}

type TransactionServicer interface {
	SubmitLoad(ctx context.Context, args service.SubmitLoadArgs) (*domain.Transaction, error)
	SubmitTransfer(ctx context.Context, args service.SubmitTransferArgs) (*domain.Transaction, error)
	SubmitPayout(ctx context.Context, args service.SubmitPayoutArgs) (*domain.Transaction, error)
	Decide(ctx context.Context, args service.DecideArgs) (*domain.Transaction, error)
	FundWallet(ctx context.Context, args service.FundWalletArgs) (*domain.Transaction, error)
	ListForUser(ctx context.Context, userID uuid.UUID, page repoargs.Page) ([]domain.Transaction, error)
	ListPending(ctx context.Context, page repoargs.Page) ([]domain.Transaction, error)
}

type OrderServicer interface {
	CreateOrder(ctx context.Context, args service.CreateOrderArgs) (*domain.Order, []domain.EscrowHold, error)
	ConfirmPayment(ctx context.Context, orderID, buyerID uuid.UUID) (*domain.Order, error)
	SubmitTracking(ctx context.Context, args service.SubmitTrackingArgs) (*domain.Order, error)
	DecideTracking(ctx context.Context, orderID uuid.UUID, approved bool) (*domain.Order, error)
	ReleaseOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ListForUser(ctx context.Context, userID uuid.UUID, page repoargs.Page) ([]domain.Order, error)
	ListPendingTracking(ctx context.Context, page repoargs.Page) ([]domain.Order, error)
	ListEscrow(ctx context.Context, userID uuid.UUID, page repoargs.Page) ([]domain.EscrowHold, error)
}

type StatsServicer interface {
	PlatformStats(ctx context.Context) (*domain.PlatformStats, error)
}

// Sweeper ручной запуск выборок обработчика таймеров.
type Sweeper interface {
	SweepDeliveries(ctx context.Context) (sweeper.Result, error)
	SweepReleases(ctx context.Context) (sweeper.Result, error)
}
