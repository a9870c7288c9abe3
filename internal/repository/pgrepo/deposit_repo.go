package pgrepo

import (
	"context"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
	"github.com/fsdevblog/paywallet/pkg/uow"
)

type DepositRepository struct {
	db uow.DBTX
}

func NewDepositRepository(db uow.DBTX) *DepositRepository {
	return &DepositRepository{db: db}
}

func (d *DepositRepository) Create(ctx context.Context, args repoargs.AdminDepositCreate) (*domain.AdminDeposit, error) {
	var deposit domain.AdminDeposit
	err := d.db.QueryRow(ctx, `INSERT INTO admin_deposits (id, admin_id, user_id, amount_cents, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, admin_id, user_id, amount_cents, note, created_at`,
		args.ID, args.AdminID, args.UserID, args.AmountCents, args.Note,
	).Scan(&deposit.ID, &deposit.AdminID, &deposit.UserID, &deposit.AmountCents, &deposit.Note, &deposit.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "creating admin deposit for user `%s`", args.UserID)
	}
	return &deposit, nil
}
