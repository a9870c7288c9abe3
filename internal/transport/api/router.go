package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/paywallet/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup         = "/api"
	WalletRoute        = "/wallet"
	TransactionsRoute  = "/transactions"
	LoadsRoute         = "/transactions/loads"
	TransfersRoute     = "/transactions/transfers"
	PayoutsRoute       = "/transactions/payouts"
	OrdersRoute        = "/orders"
	OrderPaymentRoute  = "/orders/:id/payment"
	OrderTrackingRoute = "/orders/:id/tracking"
	EscrowRoute        = "/escrow"

	AdminGroup                    = "/admin"
	AdminPendingTransactionsRoute = "/transactions/pending"
	AdminTransactionDecisionRoute = "/transactions/:id/decision"
	AdminPendingTrackingRoute     = "/orders/tracking"
	AdminTrackingDecisionRoute    = "/orders/:id/tracking/decision"
	AdminReleaseRoute             = "/orders/:id/release"
	AdminFundRoute                = "/wallets/fund"
	AdminStatsRoute               = "/stats"
	AdminSweepDeliveriesRoute     = "/sweeps/deliveries"
	AdminSweepReleasesRoute       = "/sweeps/releases"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	LedgerService  LedgerServicer
	TxService      TransactionServicer
	OrderService   OrderServicer
	StatsService   StatsServicer
	Sweeper        Sweeper
	JWTSecretKey   []byte
	RateLimitRPS   float64
	RateLimitBurst int
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	walletHandler := NewWalletHandler(args.LedgerService)
	transactionsHandler := NewTransactionsHandler(args.TxService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	adminHandler := NewAdminHandler(args.TxService, args.OrderService, args.StatsService, args.Sweeper)

	// Операции, двигающие деньги, ограничены по частоте для каждого пользователя.
	var moneyLimit []gin.HandlerFunc
	if args.RateLimitRPS > 0 {
		moneyLimit = append(moneyLimit, middlewares.NewRateLimiter(args.RateLimitRPS, args.RateLimitBurst).Middleware())
	}
	withLimit := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, moneyLimit...), h)
	}

	api := r.Group(RouteGroup)
	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(WalletRoute, walletHandler.Index)

	api.GET(TransactionsRoute, transactionsHandler.Index)
	api.POST(LoadsRoute, withLimit(transactionsHandler.Load)...)
	api.POST(TransfersRoute, withLimit(transactionsHandler.Transfer)...)
	api.POST(PayoutsRoute, withLimit(transactionsHandler.Payout)...)

	api.GET(OrdersRoute, ordersHandler.Index)
	api.POST(OrdersRoute, withLimit(ordersHandler.Create)...)
	api.POST(OrderPaymentRoute, ordersHandler.ConfirmPayment)
	api.POST(OrderTrackingRoute, ordersHandler.SubmitTracking)
	api.GET(EscrowRoute, ordersHandler.Escrow)

	admin := api.Group(AdminGroup, middlewares.AdminRequired())
	admin.GET(AdminPendingTransactionsRoute, adminHandler.PendingTransactions)
	admin.POST(AdminTransactionDecisionRoute, adminHandler.DecideTransaction)
	admin.GET(AdminPendingTrackingRoute, adminHandler.PendingTracking)
	admin.POST(AdminTrackingDecisionRoute, adminHandler.DecideTracking)
	admin.POST(AdminReleaseRoute, adminHandler.Release)
	admin.POST(AdminFundRoute, adminHandler.Fund)
	admin.GET(AdminStatsRoute, adminHandler.Stats)
	if args.Sweeper != nil {
		admin.POST(AdminSweepDeliveriesRoute, adminHandler.SweepDeliveries)
		admin.POST(AdminSweepReleasesRoute, adminHandler.SweepReleases)
	}
	return r, nil
}
