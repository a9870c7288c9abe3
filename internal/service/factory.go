package service

import (
	"fmt"
	"time"

	"github.com/fsdevblog/paywallet/pkg/uow"
)

type AppServices struct {
	LedgerService      *LedgerService
	TransactionService *TransactionService
	OrderService       *OrderService
	StatsService       *StatsService
}

type FactoryArgs struct {
	Publisher     EventPublisher
	DeliveryDelay time.Duration
	ReleaseDelay  time.Duration
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	ledgerService, ledgerServiceErr := NewLedgerService(unitOfWork)
	if ledgerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerServiceErr.Error())
	}

	transactionService, transactionServiceErr := NewTransactionService(unitOfWork)
	if transactionServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", transactionServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(unitOfWork)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	statsService, statsServiceErr := NewStatsService(unitOfWork)
	if statsServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", statsServiceErr.Error())
	}

	deliveryDelay, releaseDelay := DefaultDeliveryDelay, DefaultReleaseDelay
	if args.DeliveryDelay > 0 {
		deliveryDelay = args.DeliveryDelay
	}
	if args.ReleaseDelay > 0 {
		releaseDelay = args.ReleaseDelay
	}
	orderService.SetDelays(deliveryDelay, releaseDelay)

	if args.Publisher != nil {
		transactionService.SetPublisher(args.Publisher)
		orderService.SetPublisher(args.Publisher)
	}

	return &AppServices{
		LedgerService:      ledgerService,
		TransactionService: transactionService,
		OrderService:       orderService,
		StatsService:       statsService,
	}, nil
}
