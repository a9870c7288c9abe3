package pgrepo

import (
	"context"

	"github.com/google/uuid"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
	"github.com/fsdevblog/paywallet/pkg/uow"
)

type ShipmentRepository struct {
	db uow.DBTX
}

func NewShipmentRepository(db uow.DBTX) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

func (s *ShipmentRepository) Create(ctx context.Context, args repoargs.ShipmentCreate) (*domain.Shipment, error) {
	var shipment domain.Shipment
	err := s.db.QueryRow(ctx, `INSERT INTO shipments (id, order_id, carrier, tracking_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, carrier, tracking_number, created_at`,
		args.ID, args.OrderID, args.Carrier, args.TrackingNumber,
	).Scan(&shipment.ID, &shipment.OrderID, &shipment.Carrier, &shipment.TrackingNumber, &shipment.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "creating shipment for order `%s`", args.OrderID)
	}
	return &shipment, nil
}

// DeleteByOrder удаляет все отправления заказа и возвращает кол-во удаленных строк.
func (s *ShipmentRepository) DeleteByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	tag, err := s.db.Exec(ctx, "DELETE FROM shipments WHERE order_id = $1", orderID)
	if err != nil {
		return 0, convertErr(err, "deleting shipments of order `%s`", orderID)
	}
	return tag.RowsAffected(), nil
}

func (s *ShipmentRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.Shipment, error) {
	rows, err := s.db.Query(ctx, `SELECT id, order_id, carrier, tracking_number, created_at
		FROM shipments WHERE order_id = $1 ORDER BY created_at`, orderID)
	if err != nil {
		return nil, convertErr(err, "listing shipments of order `%s`", orderID)
	}
	defer rows.Close()

	var shipments = make([]domain.Shipment, 0, 1)
	for rows.Next() {
		var shipment domain.Shipment
		if scanErr := rows.Scan(
			&shipment.ID,
			&shipment.OrderID,
			&shipment.Carrier,
			&shipment.TrackingNumber,
			&shipment.CreatedAt,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning shipment of order `%s`", orderID)
		}
		shipments = append(shipments, shipment)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing shipments of order `%s`", orderID)
	}
	return shipments, nil
}
