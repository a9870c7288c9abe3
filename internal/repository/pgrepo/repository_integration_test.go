//go:build integration

package pgrepo

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
)

type RepositoryIntegrationSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "db", "migrations")
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("paywallet"),
		tcpostgres.WithUsername("paywallet"),
		tcpostgres.WithPassword("paywallet"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, dsnErr := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(dsnErr)

	l := logrus.New()
	pool, connErr := Connect(ctx, migrationsDir(), dsn, l)
	s.Require().NoError(connErr)
	s.pool = pool
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		s.NoError(s.container.Terminate(context.Background()))
	}
}

func (s *RepositoryIntegrationSuite) TestWalletCreditDebit() {
	ctx := s.T().Context()
	repo := NewWalletRepository(s.pool)
	userID := uuid.New()

	_, getErr := repo.Get(ctx, userID)
	s.ErrorIs(getErr, domain.ErrRecordNotFound)

	_, debitMissingErr := repo.Debit(ctx, repoargs.WalletMovement{UserID: userID, Bucket: domain.BucketAvailable, Cents: 1})
	s.ErrorIs(debitMissingErr, domain.ErrInsufficientFunds)

	wallet, creditErr := repo.Credit(ctx, repoargs.WalletMovement{UserID: userID, Bucket: domain.BucketAvailable, Cents: 5000})
	s.Require().NoError(creditErr)
	s.Equal(int64(5000), wallet.AvailableCents)

	_, overdraftErr := repo.Debit(ctx, repoargs.WalletMovement{UserID: userID, Bucket: domain.BucketAvailable, Cents: 5001})
	s.ErrorIs(overdraftErr, domain.ErrInsufficientFunds)

	wallet, debitErr := repo.Debit(ctx, repoargs.WalletMovement{UserID: userID, Bucket: domain.BucketAvailable, Cents: 5000})
	s.Require().NoError(debitErr)
	s.Equal(int64(0), wallet.AvailableCents)
}

// TestWalletConcurrentDebits баланс никогда не уходит в минус и равен сумме зачислений минус успешные списания.
func (s *RepositoryIntegrationSuite) TestWalletConcurrentDebits() {
	ctx := s.T().Context()
	repo := NewWalletRepository(s.pool)
	userID := uuid.New()

	_, creditErr := repo.Credit(ctx, repoargs.WalletMovement{UserID: userID, Bucket: domain.BucketAvailable, Cents: 1000})
	s.Require().NoError(creditErr)

	var mu sync.Mutex
	var debited int64
	wg := new(sync.WaitGroup)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cents := int64(gofakeit.IntRange(50, 150))
			if _, err := repo.Debit(ctx, repoargs.WalletMovement{
				UserID: userID, Bucket: domain.BucketAvailable, Cents: cents,
			}); err == nil {
				mu.Lock()
				debited += cents
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	wallet, err := repo.Get(ctx, userID)
	s.Require().NoError(err)
	s.GreaterOrEqual(wallet.AvailableCents, int64(0))
	s.Equal(1000-debited, wallet.AvailableCents)
}

func (s *RepositoryIntegrationSuite) TestTransactionDecisionAppliedOnce() {
	ctx := s.T().Context()
	repo := NewTransactionRepository(s.pool)
	receiver := uuid.New()
	admin := uuid.New()

	created, createErr := repo.Create(ctx, repoargs.TransactionCreate{
		ID:             uuid.New(),
		Type:           domain.TransactionTypeCardLoad,
		AmountCents:    2500,
		ReceiverID:     &receiver,
		Status:         domain.TransactionStatusPending,
		ApprovalStatus: domain.ApprovalStatusPending,
	})
	s.Require().NoError(createErr)

	decision := repoargs.TransactionDecision{
		ID:             created.ID,
		Status:         domain.TransactionStatusCompleted,
		ApprovalStatus: domain.ApprovalStatusApproved,
		ApprovedBy:     admin,
		ApprovedAt:     time.Now(),
	}
	approved, approveErr := repo.ApplyDecision(ctx, decision)
	s.Require().NoError(approveErr)
	s.Equal(domain.ApprovalStatusApproved, approved.ApprovalStatus)
	s.Require().NotNil(approved.ApprovedBy)
	s.Equal(admin, *approved.ApprovedBy)

	_, replayErr := repo.ApplyDecision(ctx, decision)
	s.ErrorIs(replayErr, domain.ErrRecordNotFound)

	stored, findErr := repo.FindByID(ctx, created.ID)
	s.Require().NoError(findErr)
	s.Equal(domain.TransactionStatusCompleted, stored.Status)
	s.Equal(domain.ApprovalStatusApproved, stored.ApprovalStatus)

	_, missingErr := repo.FindByID(ctx, uuid.New())
	s.ErrorIs(missingErr, domain.ErrRecordNotFound)
}

func (s *RepositoryIntegrationSuite) TestOrderTransitionAndEscrow() {
	ctx := s.T().Context()
	orders := NewOrderRepository(s.pool)
	escrow := NewEscrowRepository(s.pool)
	shipments := NewShipmentRepository(s.pool)
	buyer, seller := uuid.New(), uuid.New()

	order, createErr := orders.Create(ctx, repoargs.OrderCreate{
		ID:              uuid.New(),
		BuyerID:         buyer,
		SellerID:        seller,
		AmountCents:     5000,
		ItemDescription: gofakeit.ProductName(),
	})
	s.Require().NoError(createErr)
	s.Equal(domain.OrderStatusPendingPayment, order.Status)

	holds, holdsErr := escrow.CreateHolds(ctx, []repoargs.EscrowHoldCreate{
		{ID: uuid.New(), OrderID: order.ID, UserID: buyer, SellerID: seller, AmountCents: -5000},
		{ID: uuid.New(), OrderID: order.ID, UserID: seller, SellerID: seller, AmountCents: 5000},
	})
	s.Require().NoError(holdsErr)
	s.Len(holds, 2)
	s.Equal(int64(0), holds[0].AmountCents+holds[1].AmountCents)

	held, heldErr := escrow.ListByOrder(ctx, order.ID)
	s.Require().NoError(heldErr)
	s.Require().Len(held, 2)
	s.Equal(buyer, held[0].UserID)
	s.Equal(int64(-5000), held[0].AmountCents)
	s.Equal(seller, held[1].UserID)
	s.Equal(int64(5000), held[1].AmountCents)
	for _, h := range held {
		s.Equal(domain.EscrowStatusHeld, h.Status)
	}

	buyerHolds, buyerErr := escrow.ListByUser(ctx, buyer, repoargs.Page{Limit: 10})
	s.Require().NoError(buyerErr)
	s.Require().Len(buyerHolds, 1)
	s.Equal(int64(-5000), buyerHolds[0].AmountCents)

	sellerHolds, sellerErr := escrow.ListByUser(ctx, seller, repoargs.Page{Limit: 10})
	s.Require().NoError(sellerErr)
	s.Require().Len(sellerHolds, 1)
	s.Equal(int64(5000), sellerHolds[0].AmountCents)

	shippedAt := time.Now().Add(-8 * 24 * time.Hour)
	submitted, submitErr := orders.ApplyTransition(ctx, repoargs.OrderTransition{
		ID:       order.ID,
		From:     domain.OrderStatusPendingPayment,
		To:       domain.OrderStatusAwaitingAdminApproval,
		Tracking: &repoargs.Tracking{Carrier: "UPS", Number: "1Z999", ShippedAt: shippedAt},
	})
	s.Require().NoError(submitErr)
	s.Require().NotNil(submitted.TrackingNumber)
	s.Equal("1Z999", *submitted.TrackingNumber)

	_, shipErr := shipments.Create(ctx, repoargs.ShipmentCreate{
		ID: uuid.New(), OrderID: order.ID, Carrier: "UPS", TrackingNumber: "1Z999",
	})
	s.Require().NoError(shipErr)

	recorded, listErr := shipments.ListByOrder(ctx, order.ID)
	s.Require().NoError(listErr)
	s.Require().Len(recorded, 1)
	s.Equal("UPS", recorded[0].Carrier)
	s.Equal("1Z999", recorded[0].TrackingNumber)

	// состояние в БД уже изменилось, повторный переход из PENDING_PAYMENT не применяется.
	_, staleErr := orders.ApplyTransition(ctx, repoargs.OrderTransition{
		ID:   order.ID,
		From: domain.OrderStatusPendingPayment,
		To:   domain.OrderStatusPendingShipment,
	})
	s.ErrorIs(staleErr, domain.ErrRecordNotFound)

	rejected, rejectErr := orders.ApplyTransition(ctx, repoargs.OrderTransition{
		ID:            order.ID,
		From:          domain.OrderStatusAwaitingAdminApproval,
		To:            domain.OrderStatusPendingShipment,
		ClearTracking: true,
	})
	s.Require().NoError(rejectErr)
	s.Nil(rejected.TrackingNumber)
	s.Nil(rejected.ShippingCarrier)
	s.Nil(rejected.ShippedAt)

	deleted, deleteErr := shipments.DeleteByOrder(ctx, order.ID)
	s.Require().NoError(deleteErr)
	s.Equal(int64(1), deleted)

	afterReject, afterErr := shipments.ListByOrder(ctx, order.ID)
	s.Require().NoError(afterErr)
	s.Empty(afterReject)

	stored, findErr := orders.FindByID(ctx, order.ID)
	s.Require().NoError(findErr)
	s.Equal(domain.OrderStatusPendingShipment, stored.Status)
	s.Nil(stored.TrackingNumber)

	released, releaseErr := escrow.ReleaseHeld(ctx, order.ID, time.Now())
	s.Require().NoError(releaseErr)
	s.Len(released, 2)

	settled, settledErr := escrow.ListByOrder(ctx, order.ID)
	s.Require().NoError(settledErr)
	s.Require().Len(settled, 2)
	for _, h := range settled {
		s.Equal(domain.EscrowStatusReleased, h.Status)
	}

	again, againErr := escrow.ReleaseHeld(ctx, order.ID, time.Now())
	s.Require().NoError(againErr)
	s.Empty(again)
}

// TestPlatformStatsCountsProfiles пользователи считаются по профилям, кошельки без профиля не учитываются.
func (s *RepositoryIntegrationSuite) TestPlatformStatsCountsProfiles() {
	ctx := s.T().Context()
	stats := NewStatsRepository(s.pool)
	since := time.Now().Add(-time.Hour)

	before, beforeErr := stats.PlatformStats(ctx, since, since)
	s.Require().NoError(beforeErr)

	withProfile, otherProfile, walletOnly := uuid.New(), uuid.New(), uuid.New()
	for _, id := range []uuid.UUID{withProfile, otherProfile} {
		_, err := s.pool.Exec(ctx, `INSERT INTO profiles (user_id, handle) VALUES ($1, $2)`,
			id, gofakeit.Username()+"-"+id.String()[:8])
		s.Require().NoError(err)
	}
	for _, id := range []uuid.UUID{withProfile, walletOnly} {
		_, err := s.pool.Exec(ctx, `INSERT INTO wallets (user_id, available_cents) VALUES ($1, 100)`, id)
		s.Require().NoError(err)
	}

	after, afterErr := stats.PlatformStats(ctx, since, since)
	s.Require().NoError(afterErr)
	s.Equal(before.TotalUsers+2, after.TotalUsers)
	s.Equal(before.TotalDepositedCents+200, after.TotalDepositedCents)
}

func (s *RepositoryIntegrationSuite) TestGetDueOrders() {
	ctx := s.T().Context()
	orders := NewOrderRepository(s.pool)
	buyer, seller := uuid.New(), uuid.New()

	order, createErr := orders.Create(ctx, repoargs.OrderCreate{
		ID: uuid.New(), BuyerID: buyer, SellerID: seller, AmountCents: 100, ItemDescription: "book",
	})
	s.Require().NoError(createErr)

	_, submitErr := orders.ApplyTransition(ctx, repoargs.OrderTransition{
		ID:       order.ID,
		From:     domain.OrderStatusPendingPayment,
		To:       domain.OrderStatusAwaitingAdminApproval,
		Tracking: &repoargs.Tracking{Carrier: "USPS", Number: "9400", ShippedAt: time.Now().Add(-10 * 24 * time.Hour)},
	})
	s.Require().NoError(submitErr)

	_, approveErr := orders.ApplyTransition(ctx, repoargs.OrderTransition{
		ID: order.ID, From: domain.OrderStatusAwaitingAdminApproval, To: domain.OrderStatusShipped,
	})
	s.Require().NoError(approveErr)

	due, dueErr := orders.GetDue(ctx, repoargs.DueOrders{
		Status: domain.OrderStatusShipped,
		Before: time.Now().Add(-7 * 24 * time.Hour),
		Limit:  100,
	})
	s.Require().NoError(dueErr)

	var found bool
	for _, o := range due {
		if o.ID == order.ID {
			found = true
		}
	}
	s.True(found)

	_, badStatusErr := orders.GetDue(ctx, repoargs.DueOrders{Status: domain.OrderStatusCompleted, Limit: 1})
	s.Error(badStatusErr)
}
