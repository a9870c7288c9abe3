package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
	"github.com/fsdevblog/paywallet/pkg/uow"
)

const maxMemoLength = 280

type TransactionService struct {
	uow        uow.UOW
	txRepo     TransactionRepository
	walletRepo WalletRepository
	publisher  EventPublisher
	now        func() time.Time
}

func NewTransactionService(u uow.UOW) (*TransactionService, error) {
	txRepo, txRepoErr := uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if txRepoErr != nil {
		return nil, txRepoErr //nolint:wrapcheck
	}
	walletRepo, walletRepoErr := uow.GetRepositoryAs[WalletRepository](u, uow.RepositoryName(repoargs.WalletRepoName))
	if walletRepoErr != nil {
		return nil, walletRepoErr //nolint:wrapcheck
	}
	return &TransactionService{
		uow:        u,
		txRepo:     txRepo,
		walletRepo: walletRepo,
		publisher:  nopPublisher{},
		now:        time.Now,
	}, nil
}

// SetPublisher устанавливает издателя событий журнала.
func (t *TransactionService) SetPublisher(p EventPublisher) *TransactionService {
	t.publisher = p
	return t
}

type SubmitLoadArgs struct {
	UserID      uuid.UUID
	Method      domain.TransactionType
	AmountCents int64
	Memo        string
}

// SubmitLoad создает отложенную заявку на пополнение. Баланс не меняется до решения администратора.
func (t *TransactionService) SubmitLoad(ctx context.Context, args SubmitLoadArgs) (*domain.Transaction, error) {
	if !args.Method.IsLoadMethod() {
		return nil, fmt.Errorf("submit load: %w", domain.NewValidationError("method", "unsupported load method"))
	}
	if err := validateAmount(args.AmountCents); err != nil {
		return nil, fmt.Errorf("submit load: %w", err)
	}
	memo, memoErr := optionalMemo(args.Memo)
	if memoErr != nil {
		return nil, fmt.Errorf("submit load: %w", memoErr)
	}

	transaction, err := t.txRepo.Create(ctx, repoargs.TransactionCreate{
		ID:             uuid.New(),
		Type:           args.Method,
		AmountCents:    args.AmountCents,
		ReceiverID:     &args.UserID,
		Memo:           memo,
		Status:         domain.TransactionStatusPending,
		ApprovalStatus: domain.ApprovalStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("submit load: %w", err)
	}
	t.publisher.Publish(ctx, domain.TransactionEvent(domain.EventTransactionCreated, transaction))
	return transaction, nil
}

type SubmitTransferArgs struct {
	SenderID    uuid.UUID
	ReceiverID  uuid.UUID
	AmountCents int64
	Memo        string
}

// SubmitTransfer мгновенный перевод между пользователями. Списание, зачисление и запись в журнал выполняются
// в одной транзакции БД, транзакция журнала создается сразу одобренной. При нехватке средств у отправителя
// вернется domain.ErrInsufficientFunds и ничего не будет записано.
func (t *TransactionService) SubmitTransfer(ctx context.Context, args SubmitTransferArgs) (*domain.Transaction, error) {
	if err := validateAmount(args.AmountCents); err != nil {
		return nil, fmt.Errorf("submit transfer: %w", err)
	}
	if args.SenderID == args.ReceiverID {
		return nil, fmt.Errorf(
			"submit transfer: %w",
			domain.NewValidationError("receiver_id", "cannot transfer to yourself"),
		)
	}
	memo, memoErr := optionalMemo(args.Memo)
	if memoErr != nil {
		return nil, fmt.Errorf("submit transfer: %w", memoErr)
	}

	var transaction *domain.Transaction
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if err := debit(c, tx, args.SenderID, domain.BucketAvailable, args.AmountCents); err != nil {
			return err
		}
		if err := credit(c, tx, args.ReceiverID, domain.BucketAvailable, args.AmountCents); err != nil {
			return err
		}

		repo, repoErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		now := t.now()
		created, createErr := repo.Create(c, repoargs.TransactionCreate{
			ID:             uuid.New(),
			Type:           domain.TransactionTypeTransfer,
			AmountCents:    args.AmountCents,
			SenderID:       &args.SenderID,
			ReceiverID:     &args.ReceiverID,
			Memo:           memo,
			Status:         domain.TransactionStatusCompleted,
			ApprovalStatus: domain.ApprovalStatusApproved,
			ApprovedAt:     &now,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		transaction = created
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("submit transfer: %w", txErr)
	}
	t.publisher.Publish(ctx, domain.TransactionEvent(domain.EventTransactionApproved, transaction))
	return transaction, nil
}

type SubmitPayoutArgs struct {
	UserID      uuid.UUID
	BankID      string
	AmountCents int64
	Speed       domain.PayoutSpeed
}

// SubmitPayout создает отложенную заявку на вывод средств с комиссией, зависящей от скорости вывода.
// Проверка баланса здесь предварительная, окончательная выполняется атомарным списанием при одобрении.
func (t *TransactionService) SubmitPayout(ctx context.Context, args SubmitPayoutArgs) (*domain.Transaction, error) {
	if err := validateAmount(args.AmountCents); err != nil {
		return nil, fmt.Errorf("submit payout: %w", err)
	}
	bankID := strings.TrimSpace(args.BankID)
	if bankID == "" {
		return nil, fmt.Errorf("submit payout: %w", domain.NewValidationError("bank_id", "is required"))
	}
	fee, feeErr := domain.PayoutFee(args.AmountCents, args.Speed)
	if feeErr != nil {
		return nil, fmt.Errorf("submit payout: %w", feeErr)
	}

	wallet, walletErr := walletSnapshot(ctx, t.walletRepo, args.UserID)
	if walletErr != nil {
		return nil, fmt.Errorf("submit payout: %w", walletErr)
	}
	if wallet.AvailableCents < args.AmountCents+fee {
		return nil, fmt.Errorf("submit payout: %w", domain.ErrInsufficientFunds)
	}

	memo := string(args.Speed)
	transaction, err := t.txRepo.Create(ctx, repoargs.TransactionCreate{
		ID:             uuid.New(),
		Type:           domain.TransactionTypePayout,
		AmountCents:    args.AmountCents,
		FeeCents:       fee,
		SenderID:       &args.UserID,
		BankID:         &bankID,
		Memo:           &memo,
		Status:         domain.TransactionStatusPending,
		ApprovalStatus: domain.ApprovalStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("submit payout: %w", err)
	}
	t.publisher.Publish(ctx, domain.TransactionEvent(domain.EventTransactionCreated, transaction))
	return transaction, nil
}

type DecideArgs struct {
	TransactionID uuid.UUID
	AdminID       uuid.UUID
	Action        domain.DecisionAction
	Reason        string
}

// Decide принимает решение администратора по отложенной транзакции.
//
// Алгоритм работы:
//  1. Блокирует строку транзакции. Если решение уже принято, возвращает *domain.AlreadyProcessedError
//     с сохраненной транзакцией, баланс не меняется. Отказ без причины отклоняется только для PENDING.
//  2. При одобрении применяет эффект на балансы по таблице domain.LedgerEffectFor.
//  3. Переводит транзакцию в терминальное состояние условным обновлением.
//
// Любая ошибка (например domain.ErrInsufficientFunds при выводе) откатывает все изменения, транзакция
// остается PENDING.
func (t *TransactionService) Decide(ctx context.Context, args DecideArgs) (*domain.Transaction, error) {
	if !args.Action.Valid() {
		return nil, fmt.Errorf("decide transaction: %w", domain.NewValidationError("action", "must be APPROVE or REJECT"))
	}
	reason := strings.TrimSpace(args.Reason)

	var decided *domain.Transaction
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		current, getErr := repo.GetForUpdate(c, args.TransactionID)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}
		if current.ApprovalStatus != domain.ApprovalStatusPending {
			return domain.NewAlreadyProcessedError(current)
		}
		// Причина проверяется после статуса: повтор уже принятого решения возвращает сохраненный результат.
		if args.Action == domain.DecisionReject && reason == "" {
			return domain.NewValidationError("reason", "is required to reject")
		}

		decision := repoargs.TransactionDecision{
			ID:         current.ID,
			ApprovedBy: args.AdminID,
			ApprovedAt: t.now(),
		}
		if args.Action == domain.DecisionApprove {
			if err := t.applyLedgerEffect(c, tx, current); err != nil {
				return err
			}
			decision.Status = domain.TransactionStatusCompleted
			decision.ApprovalStatus = domain.ApprovalStatusApproved
		} else {
			decision.Status = domain.TransactionStatusFailed
			decision.ApprovalStatus = domain.ApprovalStatusRejected
			decision.RejectionReason = &reason
		}

		updated, updErr := repo.ApplyDecision(c, decision)
		if updErr != nil {
			if errors.Is(updErr, domain.ErrRecordNotFound) {
				return domain.NewAlreadyProcessedError(current)
			}
			return updErr //nolint:wrapcheck
		}
		decided = updated
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("decide transaction %s: %w", args.TransactionID, txErr)
	}

	kind := domain.EventTransactionApproved
	if decided.ApprovalStatus == domain.ApprovalStatusRejected {
		kind = domain.EventTransactionRejected
	}
	t.publisher.Publish(ctx, domain.TransactionEvent(kind, decided))
	return decided, nil
}

func (t *TransactionService) applyLedgerEffect(ctx context.Context, tx uow.TX, transaction *domain.Transaction) error {
	effect, ok := domain.LedgerEffectFor(transaction.Type)
	if !ok {
		return domain.NewValidationError("type", "no ledger effect for "+string(transaction.Type))
	}
	debitMove, creditMove, moveErr := effect.Movements(transaction)
	if moveErr != nil {
		return moveErr //nolint:wrapcheck
	}
	return applyMovements(ctx, tx, debitMove, creditMove)
}

type FundWalletArgs struct {
	AdminID     uuid.UUID
	UserID      uuid.UUID
	AmountCents int64
	Note        string
}

// FundWallet административное пополнение кошелька. В одной транзакции зачисляет средства, записывает
// аудит admin_deposits и сразу одобренную TOPUP транзакцию журнала.
func (t *TransactionService) FundWallet(ctx context.Context, args FundWalletArgs) (*domain.Transaction, error) {
	if err := validateAmount(args.AmountCents); err != nil {
		return nil, fmt.Errorf("fund wallet: %w", err)
	}
	note, noteErr := optionalMemo(args.Note)
	if noteErr != nil {
		return nil, fmt.Errorf("fund wallet: %w", noteErr)
	}

	var transaction *domain.Transaction
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if err := credit(c, tx, args.UserID, domain.BucketAvailable, args.AmountCents); err != nil {
			return err
		}

		depositRepo, depositRepoErr := uow.GetAs[DepositRepository](tx, uow.RepositoryName(repoargs.DepositRepoName))
		if depositRepoErr != nil {
			return depositRepoErr //nolint:wrapcheck
		}
		if _, err := depositRepo.Create(c, repoargs.AdminDepositCreate{
			ID:          uuid.New(),
			AdminID:     args.AdminID,
			UserID:      args.UserID,
			AmountCents: args.AmountCents,
			Note:        note,
		}); err != nil {
			return err //nolint:wrapcheck
		}

		repo, repoErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		now := t.now()
		created, createErr := repo.Create(c, repoargs.TransactionCreate{
			ID:             uuid.New(),
			Type:           domain.TransactionTypeTopup,
			AmountCents:    args.AmountCents,
			ReceiverID:     &args.UserID,
			Memo:           note,
			Status:         domain.TransactionStatusCompleted,
			ApprovalStatus: domain.ApprovalStatusApproved,
			ApprovedBy:     &args.AdminID,
			ApprovedAt:     &now,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		transaction = created
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("fund wallet: %w", txErr)
	}
	t.publisher.Publish(ctx, domain.TransactionEvent(domain.EventWalletFunded, transaction))
	return transaction, nil
}

// ListForUser транзакции пользователя от новых к старым.
func (t *TransactionService) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
	page repoargs.Page,
) ([]domain.Transaction, error) {
	transactions, err := t.txRepo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

// ListPending очередь транзакций на рассмотрение администратором.
func (t *TransactionService) ListPending(ctx context.Context, page repoargs.Page) ([]domain.Transaction, error) {
	transactions, err := t.txRepo.ListPending(ctx, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

func validateAmount(cents int64) error {
	if cents <= 0 {
		return domain.NewValidationError("amount_cents", "must be positive")
	}
	return nil
}

func optionalMemo(memo string) (*string, error) {
	memo = strings.TrimSpace(memo)
	if memo == "" {
		return nil, nil //nolint:nilnil
	}
	if len([]rune(memo)) > maxMemoLength {
		return nil, domain.NewValidationError("memo", fmt.Sprintf("must be at most %d characters", maxMemoLength))
	}
	return &memo, nil
}
