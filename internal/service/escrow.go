package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
	"github.com/fsdevblog/paywallet/pkg/uow"
)

const escrowPairSize = 2

// openEscrow списывает сумму заказа с доступного баланса покупателя в удерживаемый, создает заказ
// и пару холдов в рамках транзакции tx. Отрицательный холд принадлежит покупателю, положительный продавцу.
func openEscrow(
	ctx context.Context,
	tx uow.TX,
	args repoargs.OrderCreate,
) (*domain.Order, []domain.EscrowHold, error) {
	if err := debit(ctx, tx, args.BuyerID, domain.BucketAvailable, args.AmountCents); err != nil {
		return nil, nil, err
	}
	if err := credit(ctx, tx, args.BuyerID, domain.BucketOnHold, args.AmountCents); err != nil {
		return nil, nil, err
	}

	orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, nil, orderRepoErr //nolint:wrapcheck
	}
	order, orderErr := orderRepo.Create(ctx, args)
	if orderErr != nil {
		return nil, nil, orderErr //nolint:wrapcheck
	}

	escrowRepo, escrowRepoErr := uow.GetAs[EscrowRepository](tx, uow.RepositoryName(repoargs.EscrowRepoName))
	if escrowRepoErr != nil {
		return nil, nil, escrowRepoErr //nolint:wrapcheck
	}
	holds, holdsErr := escrowRepo.CreateHolds(ctx, []repoargs.EscrowHoldCreate{
		{
			ID:          uuid.New(),
			OrderID:     order.ID,
			UserID:      args.BuyerID,
			SellerID:    args.SellerID,
			AmountCents: -args.AmountCents,
		},
		{
			ID:          uuid.New(),
			OrderID:     order.ID,
			UserID:      args.SellerID,
			SellerID:    args.SellerID,
			AmountCents: args.AmountCents,
		},
	})
	if holdsErr != nil {
		return nil, nil, holdsErr //nolint:wrapcheck
	}
	return order, holds, nil
}

// releaseEscrow освобождает пару холдов заказа и переводит удерживаемые средства покупателя продавцу.
// Холды переводятся в released условным обновлением, поэтому при повторном вызове пара не найдется
// и вернется *domain.NoHeldEscrowError. Выплата продавцу фиксируется в журнале одобренной PAYOUT записью.
func releaseEscrow(ctx context.Context, tx uow.TX, order *domain.Order, now time.Time) error {
	escrowRepo, escrowRepoErr := uow.GetAs[EscrowRepository](tx, uow.RepositoryName(repoargs.EscrowRepoName))
	if escrowRepoErr != nil {
		return escrowRepoErr //nolint:wrapcheck
	}
	holds, releaseErr := escrowRepo.ReleaseHeld(ctx, order.ID, now)
	if releaseErr != nil {
		return releaseErr //nolint:wrapcheck
	}

	buyerHold, sellerHold, pairErr := heldPair(order, holds)
	if pairErr != nil {
		return pairErr
	}

	if err := debit(ctx, tx, buyerHold.UserID, domain.BucketOnHold, -buyerHold.AmountCents); err != nil {
		return err
	}
	if err := credit(ctx, tx, sellerHold.UserID, domain.BucketAvailable, sellerHold.AmountCents); err != nil {
		return err
	}

	txRepo, txRepoErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if txRepoErr != nil {
		return txRepoErr //nolint:wrapcheck
	}
	memo := fmt.Sprintf("Escrow release for order %s", order.ID)
	_, createErr := txRepo.Create(ctx, repoargs.TransactionCreate{
		ID:             uuid.New(),
		Type:           domain.TransactionTypePayout,
		AmountCents:    sellerHold.AmountCents,
		ReceiverID:     &sellerHold.UserID,
		Memo:           &memo,
		Status:         domain.TransactionStatusCompleted,
		ApprovalStatus: domain.ApprovalStatusApproved,
		ApprovedAt:     &now,
	})
	return createErr //nolint:wrapcheck
}

// heldPair проверяет, что освобождены ровно два холда заказа с суммами, дающими ноль.
func heldPair(order *domain.Order, holds []domain.EscrowHold) (*domain.EscrowHold, *domain.EscrowHold, error) {
	if len(holds) != escrowPairSize {
		return nil, nil, domain.NewNoHeldEscrowError(order)
	}
	buyerHold, sellerHold := &holds[0], &holds[1]
	if buyerHold.AmountCents > 0 {
		buyerHold, sellerHold = sellerHold, buyerHold
	}
	if buyerHold.AmountCents >= 0 || buyerHold.AmountCents+sellerHold.AmountCents != 0 {
		return nil, nil, domain.NewNoHeldEscrowError(order)
	}
	return buyerHold, sellerHold, nil
}
