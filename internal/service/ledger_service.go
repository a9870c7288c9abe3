package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
	"github.com/fsdevblog/paywallet/pkg/uow"
)

// LedgerService доступ к балансам пользователей. Изменение балансов выполняется только через credit и debit
// внутри транзакции unit of work.
type LedgerService struct {
	uow        uow.UOW
	walletRepo WalletRepository
}

func NewLedgerService(u uow.UOW) (*LedgerService, error) {
	walletRepo, err := uow.GetRepositoryAs[WalletRepository](u, uow.RepositoryName(repoargs.WalletRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &LedgerService{
		uow:        u,
		walletRepo: walletRepo,
	}, nil
}

// GetBalance возвращает снимок кошелька. Если кошелек еще не создан, возвращается кошелек с нулевыми балансами.
// Снимок может устареть к моменту следующего списания, поэтому решения о достаточности средств на нем
// не принимаются окончательно.
func (l *LedgerService) GetBalance(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	return walletSnapshot(ctx, l.walletRepo, userID)
}

func walletSnapshot(ctx context.Context, repo WalletRepository, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return &domain.Wallet{UserID: userID}, nil
		}
		return nil, fmt.Errorf("getting balance: %w", err)
	}
	return wallet, nil
}

// credit зачисляет cents в часть bucket кошелька userID в рамках транзакции tx.
func credit(ctx context.Context, tx uow.TX, userID uuid.UUID, bucket domain.Bucket, cents int64) error {
	repo, repoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}
	if _, err := repo.Credit(ctx, repoargs.WalletMovement{UserID: userID, Bucket: bucket, Cents: cents}); err != nil {
		return fmt.Errorf("credit: %w", err)
	}
	return nil
}

// debit списывает cents из части bucket кошелька userID в рамках транзакции tx. При нехватке средств
// возвращает ошибку domain.ErrInsufficientFunds, транзакция в этом случае должна быть откачена.
func debit(ctx context.Context, tx uow.TX, userID uuid.UUID, bucket domain.Bucket, cents int64) error {
	repo, repoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}
	if _, err := repo.Debit(ctx, repoargs.WalletMovement{UserID: userID, Bucket: bucket, Cents: cents}); err != nil {
		return fmt.Errorf("debit: %w", err)
	}
	return nil
}

// applyMovements применяет движения по доступным балансам: сначала списание, затем зачисление.
// Обе операции выполняются в одной транзакции, поэтому частичное применение невозможно.
func applyMovements(ctx context.Context, tx uow.TX, debitMove, creditMove *domain.Movement) error {
	if debitMove != nil {
		if err := debit(ctx, tx, debitMove.UserID, domain.BucketAvailable, debitMove.Cents); err != nil {
			return err
		}
	}
	if creditMove != nil {
		if err := credit(ctx, tx, creditMove.UserID, domain.BucketAvailable, creditMove.Cents); err != nil {
			return err
		}
	}
	return nil
}
