package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
	"github.com/fsdevblog/paywallet/pkg/uow"
)

const walletColumns = "user_id, available_cents, pending_cents, on_hold_cents, created_at, updated_at"

var bucketColumns = map[domain.Bucket]string{
	domain.BucketAvailable: "available_cents",
	domain.BucketPending:   "pending_cents",
	domain.BucketOnHold:    "on_hold_cents",
}

type WalletRepository struct {
	db uow.DBTX
}

func NewWalletRepository(db uow.DBTX) *WalletRepository {
	return &WalletRepository{db: db}
}

func (w *WalletRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	row := w.db.QueryRow(ctx, "SELECT "+walletColumns+" FROM wallets WHERE user_id = $1", userID)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "getting wallet of user `%s`", userID)
	}
	return wallet, nil
}

// Credit атомарно увеличивает часть кошелька. Кошелек создается при первом зачислении.
func (w *WalletRepository) Credit(ctx context.Context, movement repoargs.WalletMovement) (*domain.Wallet, error) {
	column, colErr := movementColumn(movement)
	if colErr != nil {
		return nil, colErr
	}
	query := fmt.Sprintf(`INSERT INTO wallets (user_id, %[1]s) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET %[1]s = wallets.%[1]s + EXCLUDED.%[1]s, updated_at = now()
		RETURNING %[2]s`, column, walletColumns)

	wallet, err := scanWallet(w.db.QueryRow(ctx, query, movement.UserID, movement.Cents))
	if err != nil {
		return nil, convertErr(
			err,
			"crediting %d cents to %s of user `%s`",
			movement.Cents, movement.Bucket, movement.UserID,
		)
	}
	return wallet, nil
}

// Debit атомарно уменьшает часть кошелька. Проверка достаточности средств выполняется в том же UPDATE,
// поэтому конкурентные списания не могут увести баланс в минус. Если средств недостаточно или кошелька нет,
// возвращается domain.ErrInsufficientFunds.
func (w *WalletRepository) Debit(ctx context.Context, movement repoargs.WalletMovement) (*domain.Wallet, error) {
	column, colErr := movementColumn(movement)
	if colErr != nil {
		return nil, colErr
	}
	query := fmt.Sprintf(`UPDATE wallets SET %[1]s = %[1]s - $2, updated_at = now()
		WHERE user_id = $1 AND %[1]s >= $2
		RETURNING %[2]s`, column, walletColumns)

	wallet, err := scanWallet(w.db.QueryRow(ctx, query, movement.UserID, movement.Cents))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf(
				"[repository/debiting %d cents from %s of user `%s`] %w",
				movement.Cents, movement.Bucket, movement.UserID, domain.ErrInsufficientFunds,
			)
		}
		return nil, convertErr(
			err,
			"debiting %d cents from %s of user `%s`",
			movement.Cents, movement.Bucket, movement.UserID,
		)
	}
	return wallet, nil
}

func movementColumn(movement repoargs.WalletMovement) (string, error) {
	if movement.Cents <= 0 {
		return "", fmt.Errorf("[repository/wallet movement] %w", domain.NewValidationError("cents", "must be positive"))
	}
	column, ok := bucketColumns[movement.Bucket]
	if !ok {
		return "", fmt.Errorf("[repository/wallet movement] %w", domain.NewValidationError("bucket", "unknown bucket"))
	}
	return column, nil
}

func scanWallet(row rowScanner) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := row.Scan(
		&wallet.UserID,
		&wallet.AvailableCents,
		&wallet.PendingCents,
		&wallet.OnHoldCents,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &wallet, nil
}
