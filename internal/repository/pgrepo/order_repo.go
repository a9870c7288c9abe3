package pgrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
	"github.com/fsdevblog/paywallet/pkg/uow"
)

const orderColumns = `id, buyer_id, seller_id, amount_cents, item_description, status, tracking_number,
	shipping_carrier, paid_at, shipped_at, delivered_at, release_approved_at, completed_at, created_at, updated_at`

// dueColumns отметка времени, от которой отсчитывается задержка для автоматического перехода из статуса.
var dueColumns = map[domain.OrderStatus]string{
	domain.OrderStatusShipped:         "shipped_at",
	domain.OrderStatusAwaitingRelease: "delivered_at",
}

type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create создает заказ в статусе PENDING_PAYMENT.
func (o *OrderRepository) Create(ctx context.Context, args repoargs.OrderCreate) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `INSERT INTO orders (id, buyer_id, seller_id, amount_cents, item_description, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+orderColumns,
		args.ID,
		args.BuyerID,
		args.SellerID,
		args.AmountCents,
		args.ItemDescription,
		domain.OrderStatusPendingPayment,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for buyer `%s`", args.BuyerID)
	}
	return order, nil
}

func (o *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := scanOrder(o.db.QueryRow(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if err != nil {
		return nil, convertErr(err, "finding order `%s`", id)
	}
	return order, nil
}

// GetForUpdate блокирует строку заказа до конца текущей транзакции БД.
func (o *OrderRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := scanOrder(o.db.QueryRow(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1 FOR UPDATE", id))
	if err != nil {
		return nil, convertErr(err, "locking order `%s`", id)
	}
	return order, nil
}

// ApplyTransition меняет статус заказа только если текущий статус в БД равен args.From. Если статус
// успел измениться, вернется domain.ErrRecordNotFound.
func (o *OrderRepository) ApplyTransition(ctx context.Context, args repoargs.OrderTransition) (*domain.Order, error) {
	var carrier, number *string
	var shippedAt *time.Time
	if args.Tracking != nil {
		carrier = &args.Tracking.Carrier
		number = &args.Tracking.Number
		shippedAt = &args.Tracking.ShippedAt
	}

	row := o.db.QueryRow(ctx, `UPDATE orders SET
		status = $3,
		paid_at = COALESCE($4, paid_at),
		delivered_at = COALESCE($5, delivered_at),
		release_approved_at = COALESCE($6, release_approved_at),
		completed_at = COALESCE($7, completed_at),
		shipping_carrier = CASE WHEN $8::boolean THEN NULL ELSE COALESCE($9, shipping_carrier) END,
		tracking_number = CASE WHEN $8::boolean THEN NULL ELSE COALESCE($10, tracking_number) END,
		shipped_at = CASE WHEN $8::boolean THEN NULL ELSE COALESCE($11, shipped_at) END,
		updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING `+orderColumns,
		args.ID,
		args.From,
		args.To,
		args.PaidAt,
		args.DeliveredAt,
		args.ReleaseApprovedAt,
		args.CompletedAt,
		args.ClearTracking,
		carrier,
		number,
		shippedAt,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "transition order `%s` %s -> %s", args.ID, args.From, args.To)
	}
	return order, nil
}

// ListByUser возвращает заказы, где пользователь покупатель или продавец, от новых к старым.
func (o *OrderRepository) ListByUser(ctx context.Context, userID uuid.UUID, page repoargs.Page) ([]domain.Order, error) {
	limit, offset, pageErr := pageBounds(page)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting page bounds")
	}
	rows, err := o.db.Query(ctx, "SELECT "+orderColumns+` FROM orders
		WHERE buyer_id = $1 OR seller_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing orders of user `%s`", userID)
	}
	return collectOrders(rows, "listing orders of user `%s`", userID)
}

func (o *OrderRepository) ListByStatus(
	ctx context.Context,
	status domain.OrderStatus,
	page repoargs.Page,
) ([]domain.Order, error) {
	limit, offset, pageErr := pageBounds(page)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting page bounds")
	}
	rows, err := o.db.Query(ctx, "SELECT "+orderColumns+` FROM orders
		WHERE status = $1
		ORDER BY updated_at LIMIT $2 OFFSET $3`, status, limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing orders with status %s", status)
	}
	return collectOrders(rows, "listing orders with status %s", status)
}

// GetDue возвращает заказы в статусе args.Status, у которых отметка времени перехода старше args.Before.
func (o *OrderRepository) GetDue(ctx context.Context, args repoargs.DueOrders) ([]domain.Order, error) {
	column, ok := dueColumns[args.Status]
	if !ok {
		return nil, convertErr(
			fmt.Errorf("status %s has no time driven transition", args.Status),
			"getting due orders",
		)
	}
	limit, limitErr := safeConvertUintToInt32(args.Limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}
	rows, err := o.db.Query(ctx, fmt.Sprintf(`SELECT %[1]s FROM orders
		WHERE status = $1 AND %[2]s IS NOT NULL AND %[2]s < $2
		ORDER BY %[2]s LIMIT $3`, orderColumns, column), args.Status, args.Before, limit)
	if err != nil {
		return nil, convertErr(err, "getting due orders with status %s", args.Status)
	}
	return collectOrders(rows, "getting due orders with status %s", args.Status)
}

func collectOrders(rows pgx.Rows, format string, args ...any) ([]domain.Order, error) {
	defer rows.Close()
	var orders = make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, convertErr(err, format, args...)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, format, args...)
	}
	return orders, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID,
		&order.BuyerID,
		&order.SellerID,
		&order.AmountCents,
		&order.ItemDescription,
		&order.Status,
		&order.TrackingNumber,
		&order.ShippingCarrier,
		&order.PaidAt,
		&order.ShippedAt,
		&order.DeliveredAt,
		&order.ReleaseApprovedAt,
		&order.CompletedAt,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &order, nil
}
