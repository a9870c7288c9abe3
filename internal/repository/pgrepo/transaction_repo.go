package pgrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
	"github.com/fsdevblog/paywallet/pkg/uow"
)

const transactionColumns = `id, type, amount_cents, fee_cents, sender_id, receiver_id, bank_id, status,
	approval_status, approved_by, approved_at, rejection_reason, memo, created_at, updated_at`

type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(db uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (t *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.TransactionCreate,
) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `INSERT INTO transactions
		(id, type, amount_cents, fee_cents, sender_id, receiver_id, bank_id, memo, status, approval_status,
		 approved_by, approved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+transactionColumns,
		args.ID,
		args.Type,
		args.AmountCents,
		args.FeeCents,
		args.SenderID,
		args.ReceiverID,
		args.BankID,
		args.Memo,
		args.Status,
		args.ApprovalStatus,
		args.ApprovedBy,
		args.ApprovedAt,
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating %s transaction", args.Type)
	}
	return transaction, nil
}

func (t *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE id = $1", id)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding transaction `%s`", id)
	}
	return transaction, nil
}

// GetForUpdate блокирует строку транзакции до конца текущей транзакции БД.
func (t *TransactionRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE id = $1 FOR UPDATE", id)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "locking transaction `%s`", id)
	}
	return transaction, nil
}

// ApplyDecision переводит транзакцию в терминальное состояние. Условие approval_status = 'PENDING' гарантирует,
// что решение применяется не более одного раза. Если строка уже обработана, вернется domain.ErrRecordNotFound.
func (t *TransactionRepository) ApplyDecision(
	ctx context.Context,
	args repoargs.TransactionDecision,
) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `UPDATE transactions
		SET status = $2, approval_status = $3, approved_by = $4, approved_at = $5, rejection_reason = $6,
		    updated_at = now()
		WHERE id = $1 AND approval_status = 'PENDING'
		RETURNING `+transactionColumns,
		args.ID,
		args.Status,
		args.ApprovalStatus,
		args.ApprovedBy,
		args.ApprovedAt,
		args.RejectionReason,
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "applying decision %s to transaction `%s`", args.ApprovalStatus, args.ID)
	}
	return transaction, nil
}

// ListByUser возвращает транзакции, где пользователь отправитель или получатель, от новых к старым.
func (t *TransactionRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	page repoargs.Page,
) ([]domain.Transaction, error) {
	limit, offset, pageErr := pageBounds(page)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting page bounds")
	}
	rows, err := t.db.Query(ctx, "SELECT "+transactionColumns+` FROM transactions
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing transactions of user `%s`", userID)
	}
	return collectTransactions(rows, "listing transactions of user `%s`", userID)
}

// ListPending очередь транзакций, ожидающих решения администратора, от старых к новым.
func (t *TransactionRepository) ListPending(ctx context.Context, page repoargs.Page) ([]domain.Transaction, error) {
	limit, offset, pageErr := pageBounds(page)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting page bounds")
	}
	rows, err := t.db.Query(ctx, "SELECT "+transactionColumns+` FROM transactions
		WHERE approval_status = 'PENDING'
		ORDER BY created_at LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing pending transactions")
	}
	return collectTransactions(rows, "listing pending transactions")
}

func collectTransactions(rows pgx.Rows, format string, args ...any) ([]domain.Transaction, error) {
	defer rows.Close()
	var transactions = make([]domain.Transaction, 0)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, convertErr(err, format, args...)
		}
		transactions = append(transactions, *transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, format, args...)
	}
	return transactions, nil
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.ID,
		&t.Type,
		&t.AmountCents,
		&t.FeeCents,
		&t.SenderID,
		&t.ReceiverID,
		&t.BankID,
		&t.Status,
		&t.ApprovalStatus,
		&t.ApprovedBy,
		&t.ApprovedAt,
		&t.RejectionReason,
		&t.Memo,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &t, nil
}
