package pgrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
	"github.com/fsdevblog/paywallet/pkg/uow"
)

const escrowColumns = "id, order_id, user_id, seller_id, amount_cents, status, created_at, released_at"

type EscrowRepository struct {
	db uow.DBTX
}

func NewEscrowRepository(db uow.DBTX) *EscrowRepository {
	return &EscrowRepository{db: db}
}

// CreateHolds вставляет холды одним батч запросом. Возвращает созданные строки в порядке holds или первую ошибку.
func (e *EscrowRepository) CreateHolds(
	ctx context.Context,
	holds []repoargs.EscrowHoldCreate,
) ([]domain.EscrowHold, error) {
	batch := new(pgx.Batch)
	for _, hold := range holds {
		batch.Queue(`INSERT INTO escrow_holds (id, order_id, user_id, seller_id, amount_cents, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+escrowColumns,
			hold.ID, hold.OrderID, hold.UserID, hold.SellerID, hold.AmountCents, domain.EscrowStatusHeld,
		)
	}
	results := e.db.SendBatch(ctx, batch)
	defer results.Close()

	var created = make([]domain.EscrowHold, len(holds))
	for i, hold := range holds {
		dbHold, err := scanEscrowHold(results.QueryRow())
		if err != nil {
			return nil, convertErr(err, "creating escrow hold for order `%s`", hold.OrderID)
		}
		created[i] = *dbHold
	}
	return created, nil
}

// ReleaseHeld переводит все удерживаемые холды заказа в released и возвращает их. Уже освобожденные холды
// не попадают в результат, поэтому повторный вызов вернет пустой срез.
func (e *EscrowRepository) ReleaseHeld(
	ctx context.Context,
	orderID uuid.UUID,
	releasedAt time.Time,
) ([]domain.EscrowHold, error) {
	rows, err := e.db.Query(ctx, `UPDATE escrow_holds SET status = $2, released_at = $3
		WHERE order_id = $1 AND status = $4
		RETURNING `+escrowColumns, orderID, domain.EscrowStatusReleased, releasedAt, domain.EscrowStatusHeld)
	if err != nil {
		return nil, convertErr(err, "releasing escrow of order `%s`", orderID)
	}
	return collectEscrowHolds(rows, "releasing escrow of order `%s`", orderID)
}

func (e *EscrowRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.EscrowHold, error) {
	rows, err := e.db.Query(ctx, "SELECT "+escrowColumns+` FROM escrow_holds
		WHERE order_id = $1 ORDER BY amount_cents`, orderID)
	if err != nil {
		return nil, convertErr(err, "listing escrow of order `%s`", orderID)
	}
	return collectEscrowHolds(rows, "listing escrow of order `%s`", orderID)
}

// ListByUser холды пользователя: отрицательные, где он покупатель, и положительные, где продавец.
func (e *EscrowRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	page repoargs.Page,
) ([]domain.EscrowHold, error) {
	limit, offset, pageErr := pageBounds(page)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting page bounds")
	}
	rows, err := e.db.Query(ctx, "SELECT "+escrowColumns+` FROM escrow_holds
		WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing escrow of user `%s`", userID)
	}
	return collectEscrowHolds(rows, "listing escrow of user `%s`", userID)
}

func collectEscrowHolds(rows pgx.Rows, format string, args ...any) ([]domain.EscrowHold, error) {
	defer rows.Close()
	var holds = make([]domain.EscrowHold, 0, 2) //nolint:mnd
	for rows.Next() {
		hold, err := scanEscrowHold(rows)
		if err != nil {
			return nil, convertErr(err, format, args...)
		}
		holds = append(holds, *hold)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, format, args...)
	}
	return holds, nil
}

func scanEscrowHold(row rowScanner) (*domain.EscrowHold, error) {
	var hold domain.EscrowHold
	err := row.Scan(
		&hold.ID,
		&hold.OrderID,
		&hold.UserID,
		&hold.SellerID,
		&hold.AmountCents,
		&hold.Status,
		&hold.CreatedAt,
		&hold.ReleasedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &hold, nil
}
