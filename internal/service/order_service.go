package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
	"github.com/fsdevblog/paywallet/pkg/uow"
)

const (
	DefaultDeliveryDelay = 7 * 24 * time.Hour
	DefaultReleaseDelay  = 24 * time.Hour

	maxItemDescriptionLength = 512
	maxCarrierLength         = 64
	maxTrackingNumberLength  = 128
)

type OrderService struct {
	uow           uow.UOW
	orderRepo     OrderRepository
	escrowRepo    EscrowRepository
	profileRepo   ProfileRepository
	publisher     EventPublisher
	now           func() time.Time
	deliveryDelay time.Duration
	releaseDelay  time.Duration
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	escrowRepo, escrowErr := uow.GetRepositoryAs[EscrowRepository](u, uow.RepositoryName(repoargs.EscrowRepoName))
	if escrowErr != nil {
		return nil, escrowErr //nolint:wrapcheck
	}
	profileRepo, profileErr := uow.GetRepositoryAs[ProfileRepository](u, uow.RepositoryName(repoargs.ProfileRepoName))
	if profileErr != nil {
		return nil, profileErr //nolint:wrapcheck
	}
	return &OrderService{
		uow:           u,
		orderRepo:     orderRepo,
		escrowRepo:    escrowRepo,
		profileRepo:   profileRepo,
		publisher:     nopPublisher{},
		now:           time.Now,
		deliveryDelay: DefaultDeliveryDelay,
		releaseDelay:  DefaultReleaseDelay,
	}, nil
}

// SetPublisher устанавливает издателя событий.
func (o *OrderService) SetPublisher(p EventPublisher) *OrderService {
	o.publisher = p
	return o
}

// SetDelays устанавливает задержки автоматических переходов: SHIPPED -> AWAITING_RELEASE после delivery
// с момента отправки и AWAITING_RELEASE -> COMPLETED после release с момента доставки.
func (o *OrderService) SetDelays(delivery, release time.Duration) *OrderService {
	o.deliveryDelay = delivery
	o.releaseDelay = release
	return o
}

type CreateOrderArgs struct {
	BuyerID         uuid.UUID
	SellerHandle    string
	AmountCents     int64
	ItemDescription string
}

// CreateOrder создает заказ и открывает эскроу. Средства покупателя сразу переходят из доступных в
// удерживаемые, создается пара холдов (-amount покупателю, +amount продавцу). Все шаги выполняются в одной
// транзакции: при нехватке средств (domain.ErrInsufficientFunds) не создается ни заказ, ни холды.
func (o *OrderService) CreateOrder(
	ctx context.Context,
	args CreateOrderArgs,
) (*domain.Order, []domain.EscrowHold, error) {
	if err := validateAmount(args.AmountCents); err != nil {
		return nil, nil, fmt.Errorf("create order: %w", err)
	}
	description := strings.TrimSpace(args.ItemDescription)
	if description == "" || len([]rune(description)) > maxItemDescriptionLength {
		return nil, nil, fmt.Errorf(
			"create order: %w",
			domain.NewValidationError("item_description", "is required and must be at most 512 characters"),
		)
	}

	seller, sellerErr := o.profileRepo.FindByHandle(ctx, args.SellerHandle)
	if sellerErr != nil {
		return nil, nil, fmt.Errorf("create order: seller `%s`: %w", args.SellerHandle, sellerErr)
	}
	if seller.UserID == args.BuyerID {
		return nil, nil, fmt.Errorf(
			"create order: %w",
			domain.NewValidationError("seller_handle", "cannot buy from yourself"),
		)
	}

	var order *domain.Order
	var holds []domain.EscrowHold
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var openErr error
		order, holds, openErr = openEscrow(c, tx, repoargs.OrderCreate{
			ID:              uuid.New(),
			BuyerID:         args.BuyerID,
			SellerID:        seller.UserID,
			AmountCents:     args.AmountCents,
			ItemDescription: description,
		})
		return openErr
	})
	if txErr != nil {
		return nil, nil, fmt.Errorf("create order: %w", txErr)
	}
	o.publisher.Publish(ctx, domain.OrderEvent(domain.EventEscrowOpened, order))
	return order, holds, nil
}

// ConfirmPayment подтверждение оплаты покупателем: PENDING_PAYMENT -> PENDING_SHIPMENT.
func (o *OrderService) ConfirmPayment(ctx context.Context, orderID, buyerID uuid.UUID) (*domain.Order, error) {
	return o.transition(ctx, orderID, transitionRule{
		to:   domain.OrderStatusPendingShipment,
		from: []domain.OrderStatus{domain.OrderStatusPendingPayment},
		guard: func(order *domain.Order, _ time.Time) error {
			if order.BuyerID != buyerID {
				return fmt.Errorf("only buyer can confirm payment: %w", domain.ErrNotAuthorized)
			}
			return nil
		},
		patch: func(args *repoargs.OrderTransition, now time.Time) {
			args.PaidAt = &now
		},
	})
}

type SubmitTrackingArgs struct {
	OrderID        uuid.UUID
	SellerID       uuid.UUID
	Carrier        string
	TrackingNumber string
}

// SubmitTracking продавец передает данные отправления, заказ уходит на проверку администратору.
// Фиксирует shipped_at и создает запись Shipment.
func (o *OrderService) SubmitTracking(ctx context.Context, args SubmitTrackingArgs) (*domain.Order, error) {
	carrier := strings.TrimSpace(args.Carrier)
	number := strings.TrimSpace(args.TrackingNumber)
	if carrier == "" || len(carrier) > maxCarrierLength {
		return nil, fmt.Errorf("submit tracking: %w", domain.NewValidationError("carrier", "is required"))
	}
	if number == "" || len(number) > maxTrackingNumberLength {
		return nil, fmt.Errorf("submit tracking: %w", domain.NewValidationError("tracking_number", "is required"))
	}

	return o.transition(ctx, args.OrderID, transitionRule{
		to: domain.OrderStatusAwaitingAdminApproval,
		guard: func(order *domain.Order, _ time.Time) error {
			if order.SellerID != args.SellerID {
				return fmt.Errorf("only seller can submit tracking: %w", domain.ErrNotAuthorized)
			}
			return nil
		},
		patch: func(t *repoargs.OrderTransition, now time.Time) {
			t.Tracking = &repoargs.Tracking{Carrier: carrier, Number: number, ShippedAt: now}
		},
		after: func(c context.Context, tx uow.TX, order *domain.Order, _ time.Time) error {
			repo, repoErr := uow.GetAs[ShipmentRepository](tx, uow.RepositoryName(repoargs.ShipmentRepoName))
			if repoErr != nil {
				return repoErr //nolint:wrapcheck
			}
			_, err := repo.Create(c, repoargs.ShipmentCreate{
				ID:             uuid.New(),
				OrderID:        order.ID,
				Carrier:        carrier,
				TrackingNumber: number,
			})
			return err //nolint:wrapcheck
		},
	})
}

// DecideTracking решение администратора по данным отправления. При одобрении заказ переходит в SHIPPED
// и получает release_approved_at, при отказе возвращается в PENDING_SHIPMENT: данные отправления очищаются, записи Shipment удаляются.
func (o *OrderService) DecideTracking(ctx context.Context, orderID uuid.UUID, approved bool) (*domain.Order, error) {
	if approved {
		return o.transition(ctx, orderID, transitionRule{
			to:   domain.OrderStatusShipped,
			from: []domain.OrderStatus{domain.OrderStatusAwaitingAdminApproval},
			patch: func(t *repoargs.OrderTransition, now time.Time) {
				t.ReleaseApprovedAt = &now
			},
		})
	}
	return o.transition(ctx, orderID, transitionRule{
		to:   domain.OrderStatusPendingShipment,
		from: []domain.OrderStatus{domain.OrderStatusAwaitingAdminApproval},
		patch: func(t *repoargs.OrderTransition, _ time.Time) {
			t.ClearTracking = true
		},
		after: func(c context.Context, tx uow.TX, order *domain.Order, _ time.Time) error {
			repo, repoErr := uow.GetAs[ShipmentRepository](tx, uow.RepositoryName(repoargs.ShipmentRepoName))
			if repoErr != nil {
				return repoErr //nolint:wrapcheck
			}
			_, err := repo.DeleteByOrder(c, order.ID)
			return err //nolint:wrapcheck
		},
	})
}

// PromoteDelivered SHIPPED -> AWAITING_RELEASE, если с момента отправки прошло не меньше deliveryDelay.
func (o *OrderService) PromoteDelivered(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return o.transition(ctx, orderID, transitionRule{
		to: domain.OrderStatusAwaitingRelease,
		guard: func(order *domain.Order, now time.Time) error {
			if order.Status == domain.OrderStatusShipped && !isDue(order.ShippedAt, o.deliveryDelay, now) {
				return domain.NewInvalidTransitionError(order.ID, order.Status, domain.OrderStatusAwaitingRelease)
			}
			return nil
		},
		patch: func(t *repoargs.OrderTransition, now time.Time) {
			t.DeliveredAt = &now
		},
	})
}

// ReleaseOrder административный release эскроу: AWAITING_RELEASE -> COMPLETED.
// Повторный вызов для уже завершенного заказа вернет *domain.NoHeldEscrowError с текущим заказом,
// продавцу повторно ничего не зачисляется.
func (o *OrderService) ReleaseOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return o.release(ctx, orderID, false)
}

// AutoRelease release по таймеру: дополнительно требует, чтобы с момента доставки прошло releaseDelay.
func (o *OrderService) AutoRelease(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return o.release(ctx, orderID, true)
}

func (o *OrderService) release(ctx context.Context, orderID uuid.UUID, requireDue bool) (*domain.Order, error) {
	return o.transition(ctx, orderID, transitionRule{
		to:   domain.OrderStatusCompleted,
		kind: domain.EventEscrowReleased,
		guard: func(order *domain.Order, now time.Time) error {
			if order.Status == domain.OrderStatusCompleted {
				return domain.NewAlreadyReleasedError(order)
			}
			if requireDue && order.Status == domain.OrderStatusAwaitingRelease &&
				!isDue(order.DeliveredAt, o.releaseDelay, now) {
				return domain.NewInvalidTransitionError(order.ID, order.Status, domain.OrderStatusCompleted)
			}
			return nil
		},
		patch: func(t *repoargs.OrderTransition, now time.Time) {
			t.CompletedAt = &now
		},
		after: releaseEscrow,
	})
}

// DueForDelivery заказы SHIPPED, отправленные раньше now - deliveryDelay.
func (o *OrderService) DueForDelivery(ctx context.Context, limit uint) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetDue(ctx, repoargs.DueOrders{
		Status: domain.OrderStatusShipped,
		Before: o.now().Add(-o.deliveryDelay),
		Limit:  limit,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// DueForRelease заказы AWAITING_RELEASE, доставленные раньше now - releaseDelay.
func (o *OrderService) DueForRelease(ctx context.Context, limit uint) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetDue(ctx, repoargs.DueOrders{
		Status: domain.OrderStatusAwaitingRelease,
		Before: o.now().Add(-o.releaseDelay),
		Limit:  limit,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

func (o *OrderService) ListForUser(ctx context.Context, userID uuid.UUID, page repoargs.Page) ([]domain.Order, error) {
	orders, err := o.orderRepo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// ListPendingTracking очередь заказов на проверку данных отправления.
func (o *OrderService) ListPendingTracking(ctx context.Context, page repoargs.Page) ([]domain.Order, error) {
	orders, err := o.orderRepo.ListByStatus(ctx, domain.OrderStatusAwaitingAdminApproval, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// ListEscrow холды пользователя: как покупателя (отрицательные) и как продавца (положительные).
func (o *OrderService) ListEscrow(
	ctx context.Context,
	userID uuid.UUID,
	page repoargs.Page,
) ([]domain.EscrowHold, error) {
	holds, err := o.escrowRepo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return holds, nil
}

// transitionRule описание перехода заказа в состояние to.
type transitionRule struct {
	to domain.OrderStatus
	// from сужает допустимые исходные состояния относительно графа. Пустой срез означает любые по графу.
	from  []domain.OrderStatus
	guard func(order *domain.Order, now time.Time) error
	patch func(args *repoargs.OrderTransition, now time.Time)
	after func(ctx context.Context, tx uow.TX, order *domain.Order, now time.Time) error
	kind  domain.LedgerEventKind
}

// transition выполняет переход заказа в одной транзакции БД.
//
// Алгоритм работы:
//  1. Блокирует строку заказа и проверяет guard (права вызывающего, сроки).
//  2. Проверяет ребро графа от текущего состояния в БД, иначе *domain.InvalidTransitionError.
//  3. Применяет условное обновление WHERE status = текущий. Если состояние успело измениться, это тоже
//     *domain.InvalidTransitionError.
//  4. Выполняет after в той же транзакции (записи Shipment, release эскроу).
func (o *OrderService) transition(ctx context.Context, orderID uuid.UUID, rule transitionRule) (*domain.Order, error) {
	var result *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		order, getErr := repo.GetForUpdate(c, orderID)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}

		now := o.now()
		if rule.guard != nil {
			if err := rule.guard(order, now); err != nil {
				return err
			}
		}
		if !order.Status.CanTransitionTo(rule.to) ||
			(len(rule.from) > 0 && !slices.Contains(rule.from, order.Status)) {
			return domain.NewInvalidTransitionError(order.ID, order.Status, rule.to)
		}

		args := repoargs.OrderTransition{ID: order.ID, From: order.Status, To: rule.to}
		if rule.patch != nil {
			rule.patch(&args, now)
		}
		updated, updErr := repo.ApplyTransition(c, args)
		if updErr != nil {
			if errors.Is(updErr, domain.ErrRecordNotFound) {
				return domain.NewInvalidTransitionError(order.ID, order.Status, rule.to)
			}
			return updErr //nolint:wrapcheck
		}

		if rule.after != nil {
			if err := rule.after(c, tx, updated, now); err != nil {
				return err
			}
		}
		result = updated
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("order %s -> %s: %w", orderID, rule.to, txErr)
	}

	kind := rule.kind
	if kind == "" {
		kind = domain.EventOrderTransitioned
	}
	o.publisher.Publish(ctx, domain.OrderEvent(kind, result))
	return result, nil
}

func isDue(since *time.Time, delay time.Duration, now time.Time) bool {
	return since != nil && !since.After(now.Add(-delay))
}
