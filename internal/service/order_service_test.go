package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
)

type OrderServiceTestSuite struct {
	serviceSuite
	orderService *OrderService
	now          time.Time
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.setupMocks()

	orderService, servErr := NewOrderService(s.mockUOW)
	s.Require().NoError(servErr)
	s.now = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	s.orderService = orderService.SetPublisher(s.mockPublisher).SetDelays(DefaultDeliveryDelay, DefaultReleaseDelay)
	s.orderService.now = func() time.Time { return s.now }
}

func (s *OrderServiceTestSuite) makeOrder(status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:              uuid.New(),
		BuyerID:         uuid.New(),
		SellerID:        uuid.New(),
		AmountCents:     5000,
		ItemDescription: gofakeit.ProductName(),
		Status:          status,
	}
}

// expectTransition ожидает условное обновление заказа и возвращает заказ в новом состоянии.
func (s *OrderServiceTestSuite) expectTransition(order *domain.Order, check func(args repoargs.OrderTransition)) {
	s.mockOrderRepo.EXPECT().
		ApplyTransition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.OrderTransition) (*domain.Order, error) {
			s.Equal(order.ID, args.ID)
			s.Equal(order.Status, args.From)
			if check != nil {
				check(args)
			}
			updated := *order
			updated.Status = args.To
			if args.Tracking != nil {
				updated.ShippingCarrier = &args.Tracking.Carrier
				updated.TrackingNumber = &args.Tracking.Number
				updated.ShippedAt = &args.Tracking.ShippedAt
			}
			if args.ClearTracking {
				updated.ShippingCarrier, updated.TrackingNumber, updated.ShippedAt = nil, nil, nil
			}
			if args.CompletedAt != nil {
				updated.CompletedAt = args.CompletedAt
			}
			if args.ReleaseApprovedAt != nil {
				updated.ReleaseApprovedAt = args.ReleaseApprovedAt
			}
			return &updated, nil
		})
}

func (s *OrderServiceTestSuite) TestCreateOrder() {
	buyer, seller := uuid.New(), uuid.New()

	s.mockProfileRepo.EXPECT().
		FindByHandle(gomock.Any(), "@seller").
		Return(&domain.Profile{UserID: seller, Handle: "seller"}, nil)
	s.expectDo()
	gomock.InOrder(
		s.mockWalletRepo.EXPECT().
			Debit(gomock.Any(), repoargs.WalletMovement{UserID: buyer, Bucket: domain.BucketAvailable, Cents: 5000}).
			Return(&domain.Wallet{UserID: buyer, AvailableCents: 5000}, nil),
		s.mockWalletRepo.EXPECT().
			Credit(gomock.Any(), repoargs.WalletMovement{UserID: buyer, Bucket: domain.BucketOnHold, Cents: 5000}).
			Return(&domain.Wallet{UserID: buyer, AvailableCents: 5000, OnHoldCents: 5000}, nil),
		s.mockOrderRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args repoargs.OrderCreate) (*domain.Order, error) {
				s.Equal(buyer, args.BuyerID)
				s.Equal(seller, args.SellerID)
				s.Equal("Vintage lamp", args.ItemDescription)
				return &domain.Order{
					ID:              args.ID,
					BuyerID:         args.BuyerID,
					SellerID:        args.SellerID,
					AmountCents:     args.AmountCents,
					ItemDescription: args.ItemDescription,
					Status:          domain.OrderStatusPendingPayment,
				}, nil
			}),
		s.mockEscrowRepo.EXPECT().
			CreateHolds(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, holds []repoargs.EscrowHoldCreate) ([]domain.EscrowHold, error) {
				s.Require().Len(holds, 2)
				s.Equal(int64(-5000), holds[0].AmountCents)
				s.Equal(int64(5000), holds[1].AmountCents)
				s.Equal(holds[0].OrderID, holds[1].OrderID)
				s.Equal(buyer, holds[0].UserID, "отрицательный холд принадлежит покупателю")
				s.Equal(seller, holds[1].UserID, "положительный холд принадлежит продавцу")
				s.Equal(seller, holds[0].SellerID)
				s.Equal(seller, holds[1].SellerID)
				res := make([]domain.EscrowHold, 0, len(holds))
				for _, h := range holds {
					res = append(res, domain.EscrowHold{
						ID:          h.ID,
						OrderID:     h.OrderID,
						UserID:      h.UserID,
						SellerID:    h.SellerID,
						AmountCents: h.AmountCents,
						Status:      domain.EscrowStatusHeld,
					})
				}
				return res, nil
			}),
	)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event domain.LedgerEvent) {
			s.Equal(domain.EventEscrowOpened, event.Kind)
		})

	order, holds, err := s.orderService.CreateOrder(s.T().Context(), CreateOrderArgs{
		BuyerID:         buyer,
		SellerHandle:    "@seller",
		AmountCents:     5000,
		ItemDescription: " Vintage lamp ",
	})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPendingPayment, order.Status)
	s.Require().Len(holds, 2)
	s.Zero(holds[0].AmountCents + holds[1].AmountCents)
	s.Equal(buyer, holds[0].UserID)
	s.Equal(seller, holds[1].UserID)
}

// TestCreateOrder_InsufficientFunds ни заказ, ни холды не создаются.
func (s *OrderServiceTestSuite) TestCreateOrder_InsufficientFunds() {
	buyer := uuid.New()

	s.mockProfileRepo.EXPECT().FindByHandle(gomock.Any(), "seller").Return(&domain.Profile{UserID: uuid.New()}, nil)
	s.expectDo()
	s.mockWalletRepo.EXPECT().Debit(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInsufficientFunds)
	s.mockWalletRepo.EXPECT().Credit(gomock.Any(), gomock.Any()).Times(0)
	s.mockOrderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	s.mockEscrowRepo.EXPECT().CreateHolds(gomock.Any(), gomock.Any()).Times(0)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, _, err := s.orderService.CreateOrder(s.T().Context(), CreateOrderArgs{
		BuyerID:         buyer,
		SellerHandle:    "seller",
		AmountCents:     5000,
		ItemDescription: "lamp",
	})
	s.ErrorIs(err, domain.ErrInsufficientFunds)
}

func (s *OrderServiceTestSuite) TestCreateOrder_Invalid() {
	buyer := uuid.New()
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)

	s.Run("self purchase", func() {
		s.mockProfileRepo.EXPECT().FindByHandle(gomock.Any(), "me").Return(&domain.Profile{UserID: buyer}, nil)
		_, _, err := s.orderService.CreateOrder(s.T().Context(), CreateOrderArgs{
			BuyerID: buyer, SellerHandle: "me", AmountCents: 10, ItemDescription: "x",
		})
		s.ErrorIs(err, domain.ErrValidation)
	})
	s.Run("unknown seller", func() {
		s.mockProfileRepo.EXPECT().FindByHandle(gomock.Any(), "ghost").Return(nil, domain.ErrRecordNotFound)
		_, _, err := s.orderService.CreateOrder(s.T().Context(), CreateOrderArgs{
			BuyerID: buyer, SellerHandle: "ghost", AmountCents: 10, ItemDescription: "x",
		})
		s.ErrorIs(err, domain.ErrRecordNotFound)
	})
	s.Run("empty description", func() {
		_, _, err := s.orderService.CreateOrder(s.T().Context(), CreateOrderArgs{
			BuyerID: buyer, SellerHandle: "any", AmountCents: 10, ItemDescription: "  ",
		})
		s.ErrorIs(err, domain.ErrValidation)
	})
	s.Run("zero amount", func() {
		_, _, err := s.orderService.CreateOrder(s.T().Context(), CreateOrderArgs{
			BuyerID: buyer, SellerHandle: "any", ItemDescription: "x",
		})
		s.ErrorIs(err, domain.ErrValidation)
	})
}

func (s *OrderServiceTestSuite) TestConfirmPayment() {
	order := s.makeOrder(domain.OrderStatusPendingPayment)

	s.expectDo()
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)
	s.expectTransition(order, func(args repoargs.OrderTransition) {
		s.Equal(domain.OrderStatusPendingShipment, args.To)
		s.Require().NotNil(args.PaidAt)
		s.Equal(s.now, *args.PaidAt)
	})
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any())

	updated, err := s.orderService.ConfirmPayment(s.T().Context(), order.ID, order.BuyerID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPendingShipment, updated.Status)
}

func (s *OrderServiceTestSuite) TestConfirmPayment_NotBuyer() {
	order := s.makeOrder(domain.OrderStatusPendingPayment)

	s.expectDo()
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)
	s.mockOrderRepo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.orderService.ConfirmPayment(s.T().Context(), order.ID, order.SellerID)
	s.ErrorIs(err, domain.ErrNotAuthorized)
}

func (s *OrderServiceTestSuite) TestSubmitTracking() {
	order := s.makeOrder(domain.OrderStatusPendingShipment)

	s.expectDo()
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)
	s.expectTransition(order, func(args repoargs.OrderTransition) {
		s.Equal(domain.OrderStatusAwaitingAdminApproval, args.To)
		s.Require().NotNil(args.Tracking)
		s.Equal("UPS", args.Tracking.Carrier)
		s.Equal("1Z999", args.Tracking.Number)
		s.Equal(s.now, args.Tracking.ShippedAt)
	})
	s.mockShipRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.ShipmentCreate) (*domain.Shipment, error) {
			s.Equal(order.ID, args.OrderID)
			s.Equal("1Z999", args.TrackingNumber)
			return &domain.Shipment{ID: args.ID, OrderID: args.OrderID}, nil
		})
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any())

	updated, err := s.orderService.SubmitTracking(s.T().Context(), SubmitTrackingArgs{
		OrderID:        order.ID,
		SellerID:       order.SellerID,
		Carrier:        "UPS",
		TrackingNumber: " 1Z999 ",
	})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusAwaitingAdminApproval, updated.Status)
	s.Require().NotNil(updated.ShippedAt)
}

// TestSubmitTracking_FromPendingPayment граф разрешает отправку трекинга до подтверждения оплаты.
func (s *OrderServiceTestSuite) TestSubmitTracking_FromPendingPayment() {
	order := s.makeOrder(domain.OrderStatusPendingPayment)

	s.expectDo()
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)
	s.expectTransition(order, nil)
	s.mockShipRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Shipment{}, nil)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any())

	_, err := s.orderService.SubmitTracking(s.T().Context(), SubmitTrackingArgs{
		OrderID: order.ID, SellerID: order.SellerID, Carrier: "DHL", TrackingNumber: "42",
	})
	s.NoError(err)
}

func (s *OrderServiceTestSuite) TestSubmitTracking_Completed() {
	order := s.makeOrder(domain.OrderStatusCompleted)

	s.expectDo()
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)
	s.mockOrderRepo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).Times(0)
	s.mockShipRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.orderService.SubmitTracking(s.T().Context(), SubmitTrackingArgs{
		OrderID: order.ID, SellerID: order.SellerID, Carrier: "UPS", TrackingNumber: "1",
	})
	s.ErrorIs(err, domain.ErrInvalidTransition)

	var transitionErr *domain.InvalidTransitionError
	s.Require().True(errors.As(err, &transitionErr))
	s.Equal(domain.OrderStatusCompleted, transitionErr.From)
	s.Equal(domain.OrderStatusAwaitingAdminApproval, transitionErr.To)
}

func (s *OrderServiceTestSuite) TestSubmitTracking_NotSeller() {
	order := s.makeOrder(domain.OrderStatusPendingShipment)

	s.expectDo()
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)

	_, err := s.orderService.SubmitTracking(s.T().Context(), SubmitTrackingArgs{
		OrderID: order.ID, SellerID: order.BuyerID, Carrier: "UPS", TrackingNumber: "1",
	})
	s.ErrorIs(err, domain.ErrNotAuthorized)
}

func (s *OrderServiceTestSuite) TestDecideTracking_Approve() {
	order := s.makeOrder(domain.OrderStatusAwaitingAdminApproval)

	s.expectDo()
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)
	s.expectTransition(order, func(args repoargs.OrderTransition) {
		s.Equal(domain.OrderStatusShipped, args.To)
		s.False(args.ClearTracking)
		s.Require().NotNil(args.ReleaseApprovedAt)
		s.Equal(s.now, *args.ReleaseApprovedAt)
		s.Nil(args.CompletedAt)
	})
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any())

	updated, err := s.orderService.DecideTracking(s.T().Context(), order.ID, true)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusShipped, updated.Status)
	s.Require().NotNil(updated.ReleaseApprovedAt)
	s.Equal(s.now, *updated.ReleaseApprovedAt)
}

func (s *OrderServiceTestSuite) TestDecideTracking_Reject() {
	carrier, number, shippedAt := "UPS", "1Z1", s.now.Add(-time.Hour)
	order := s.makeOrder(domain.OrderStatusAwaitingAdminApproval)
	order.ShippingCarrier, order.TrackingNumber, order.ShippedAt = &carrier, &number, &shippedAt

	s.expectDo()
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)
	s.expectTransition(order, func(args repoargs.OrderTransition) {
		s.Equal(domain.OrderStatusPendingShipment, args.To)
		s.True(args.ClearTracking)
	})
	s.mockShipRepo.EXPECT().DeleteByOrder(gomock.Any(), order.ID).Return(int64(1), nil)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any())

	updated, err := s.orderService.DecideTracking(s.T().Context(), order.ID, false)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPendingShipment, updated.Status)
	s.Nil(updated.TrackingNumber)
	s.Nil(updated.ShippingCarrier)
	s.Nil(updated.ShippedAt)
}

func (s *OrderServiceTestSuite) TestDecideTracking_WrongState() {
	order := s.makeOrder(domain.OrderStatusPendingShipment)

	s.expectDo()
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)

	_, err := s.orderService.DecideTracking(s.T().Context(), order.ID, false)
	s.ErrorIs(err, domain.ErrInvalidTransition)
}

func (s *OrderServiceTestSuite) TestPromoteDelivered() {
	shippedAt := s.now.Add(-DefaultDeliveryDelay)
	order := s.makeOrder(domain.OrderStatusShipped)
	order.ShippedAt = &shippedAt

	s.expectDo()
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)
	s.expectTransition(order, func(args repoargs.OrderTransition) {
		s.Equal(domain.OrderStatusAwaitingRelease, args.To)
		s.Require().NotNil(args.DeliveredAt)
	})
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any())

	_, err := s.orderService.PromoteDelivered(s.T().Context(), order.ID)
	s.NoError(err)
}

func (s *OrderServiceTestSuite) TestPromoteDelivered_NotDue() {
	shippedAt := s.now.Add(-DefaultDeliveryDelay + time.Minute)
	order := s.makeOrder(domain.OrderStatusShipped)
	order.ShippedAt = &shippedAt

	s.expectDo()
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)
	s.mockOrderRepo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.orderService.PromoteDelivered(s.T().Context(), order.ID)
	s.ErrorIs(err, domain.ErrInvalidTransition)
}

func (s *OrderServiceTestSuite) heldPairFor(order *domain.Order) []domain.EscrowHold {
	return []domain.EscrowHold{
		{ID: uuid.New(), OrderID: order.ID, UserID: order.BuyerID, SellerID: order.SellerID, AmountCents: -order.AmountCents},
		{ID: uuid.New(), OrderID: order.ID, UserID: order.SellerID, SellerID: order.SellerID, AmountCents: order.AmountCents},
	}
}

// TestReleaseOrder_Once второй release возвращает завершенный заказ без повторного зачисления продавцу.
func (s *OrderServiceTestSuite) TestReleaseOrder_Once() {
	deliveredAt := s.now.Add(-time.Hour)
	order := s.makeOrder(domain.OrderStatusAwaitingRelease)
	order.DeliveredAt = &deliveredAt
	completed := *order
	completed.Status = domain.OrderStatusCompleted

	s.expectDo().Times(2)
	gomock.InOrder(
		s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil),
		s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(&completed, nil),
	)
	s.expectTransition(order, func(args repoargs.OrderTransition) {
		s.Equal(domain.OrderStatusCompleted, args.To)
		s.NotNil(args.CompletedAt)
		s.Nil(args.ReleaseApprovedAt, "одобрение фиксируется при проверке трека, а не при выплате")
	})
	s.mockEscrowRepo.EXPECT().ReleaseHeld(gomock.Any(), order.ID, s.now).Return(s.heldPairFor(order), nil)
	gomock.InOrder(
		s.mockWalletRepo.EXPECT().
			Debit(gomock.Any(), repoargs.WalletMovement{UserID: order.BuyerID, Bucket: domain.BucketOnHold, Cents: 5000}).
			Return(&domain.Wallet{}, nil),
		s.mockWalletRepo.EXPECT().
			Credit(gomock.Any(), repoargs.WalletMovement{UserID: order.SellerID, Bucket: domain.BucketAvailable, Cents: 5000}).
			Return(&domain.Wallet{}, nil),
	)
	s.mockTxRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error) {
			s.Equal(domain.TransactionTypePayout, args.Type)
			s.Equal(domain.ApprovalStatusApproved, args.ApprovalStatus)
			s.Require().NotNil(args.ReceiverID)
			s.Equal(order.SellerID, *args.ReceiverID)
			s.Require().NotNil(args.Memo)
			s.Contains(*args.Memo, order.ID.String())
			return &domain.Transaction{ID: args.ID}, nil
		})
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event domain.LedgerEvent) {
			s.Equal(domain.EventEscrowReleased, event.Kind)
		})

	released, err := s.orderService.ReleaseOrder(s.T().Context(), order.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusCompleted, released.Status)

	_, secondErr := s.orderService.ReleaseOrder(s.T().Context(), order.ID)
	s.ErrorIs(secondErr, domain.ErrNoHeldEscrow)

	var noHeldErr *domain.NoHeldEscrowError
	s.Require().True(errors.As(secondErr, &noHeldErr))
	s.True(noHeldErr.AlreadyReleased())
}

func (s *OrderServiceTestSuite) TestReleaseOrder_NotAwaitingRelease() {
	order := s.makeOrder(domain.OrderStatusShipped)

	s.expectDo()
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)
	s.mockEscrowRepo.EXPECT().ReleaseHeld(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockWalletRepo.EXPECT().Credit(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.orderService.ReleaseOrder(s.T().Context(), order.ID)
	s.ErrorIs(err, domain.ErrInvalidTransition)
}

// TestReleaseOrder_MissingHolds без пары холдов деньги не двигаются, транзакция откатывается.
func (s *OrderServiceTestSuite) TestReleaseOrder_MissingHolds() {
	order := s.makeOrder(domain.OrderStatusAwaitingRelease)

	s.expectDo()
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)
	s.expectTransition(order, nil)
	s.mockEscrowRepo.EXPECT().ReleaseHeld(gomock.Any(), order.ID, gomock.Any()).Return(s.heldPairFor(order)[:1], nil)
	s.mockWalletRepo.EXPECT().Debit(gomock.Any(), gomock.Any()).Times(0)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.orderService.ReleaseOrder(s.T().Context(), order.ID)
	s.ErrorIs(err, domain.ErrNoHeldEscrow)

	var noHeldErr *domain.NoHeldEscrowError
	s.Require().True(errors.As(err, &noHeldErr))
	s.False(noHeldErr.AlreadyReleased())
}

func (s *OrderServiceTestSuite) TestAutoRelease_NotDue() {
	deliveredAt := s.now.Add(-DefaultReleaseDelay + time.Second)
	order := s.makeOrder(domain.OrderStatusAwaitingRelease)
	order.DeliveredAt = &deliveredAt

	s.expectDo()
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), order.ID).Return(order, nil)
	s.mockOrderRepo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.orderService.AutoRelease(s.T().Context(), order.ID)
	s.ErrorIs(err, domain.ErrInvalidTransition)
}

func (s *OrderServiceTestSuite) TestDueQueries() {
	s.mockOrderRepo.EXPECT().
		GetDue(gomock.Any(), repoargs.DueOrders{
			Status: domain.OrderStatusShipped,
			Before: s.now.Add(-DefaultDeliveryDelay),
			Limit:  10,
		}).
		Return([]domain.Order{*s.makeOrder(domain.OrderStatusShipped)}, nil)
	s.mockOrderRepo.EXPECT().
		GetDue(gomock.Any(), repoargs.DueOrders{
			Status: domain.OrderStatusAwaitingRelease,
			Before: s.now.Add(-DefaultReleaseDelay),
			Limit:  10,
		}).
		Return(nil, nil)

	delivery, deliveryErr := s.orderService.DueForDelivery(s.T().Context(), 10)
	s.Require().NoError(deliveryErr)
	s.Len(delivery, 1)

	release, releaseErr := s.orderService.DueForRelease(s.T().Context(), 10)
	s.Require().NoError(releaseErr)
	s.Empty(release)
}
