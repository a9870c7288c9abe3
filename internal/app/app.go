package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/paywallet/internal/config"
	"github.com/fsdevblog/paywallet/internal/repository/pgrepo"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
	"github.com/fsdevblog/paywallet/internal/service"
	"github.com/fsdevblog/paywallet/internal/transport/api"
	"github.com/fsdevblog/paywallet/internal/transport/events"
	"github.com/fsdevblog/paywallet/internal/transport/sweeper"
	"github.com/fsdevblog/paywallet/pkg/uow"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	redisPingTimeout  = 3 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"address":       a.Config.RunAddress,
		"kafkaBrokers":  a.Config.KafkaBrokers,
		"redis":         a.Config.RedisAddr != "",
		"deliveryDelay": a.Config.DeliveryDelay.String(),
		"releaseDelay":  a.Config.ReleaseDelay.String(),
	}).Info("starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn, a.Config.TxMaxAttempts)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	publisher, closePublisher, publisherErr := a.initPublisher()
	if publisherErr != nil {
		return fmt.Errorf("app run: %s", publisherErr.Error())
	}
	defer closePublisher()

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		Publisher:     publisher,
		DeliveryDelay: a.Config.DeliveryDelay,
		ReleaseDelay:  a.Config.ReleaseDelay,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	processor := sweeper.New(services.OrderService, a.Logger).
		SetInterval(a.Config.SweepInterval).
		SetBatchSize(uint(a.Config.SweepBatch)). //nolint:gosec
		SetWorkers(uint(a.Config.SweepWorkers))  //nolint:gosec

	if a.Config.RedisAddr != "" {
		redisClient, redisErr := a.initRedis(notifyCtx)
		if redisErr != nil {
			return fmt.Errorf("app run: %s", redisErr.Error())
		}
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				a.Logger.WithError(closeErr).Error("close redis client")
			}
		}()
		processor.SetLocker(sweeper.NewRedisLocker(redisClient))
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:         a.Logger,
		LedgerService:  services.LedgerService,
		TxService:      services.TransactionService,
		OrderService:   services.OrderService,
		StatsService:   services.StatsService,
		Sweeper:        processor,
		JWTSecretKey:   []byte(a.Config.JWTSecret),
		RateLimitRPS:   a.Config.RateLimitRPS,
		RateLimitBurst: a.Config.RateLimitBurst,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	server := &http.Server{
		Addr: a.Config.RunAddress,
		Handler: cors.New(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		}).Handler(router),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := server.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		defer wg.Done()
		processor.Run(notifyCtx)
	}()

	var runErr error
	select {
	case <-notifyCtx.Done():
		runErr = notifyCtx.Err()
	case runErr = <-errChan:
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		a.Logger.WithError(shutdownErr).Error("http server shutdown")
	}
	// дожидаемся завершения текущей итерации обработчика до закрытия пула.
	wg.Wait()

	return runErr
}

// initPublisher без брокеров события пишутся в лог.
func (a *App) initPublisher() (service.EventPublisher, func(), error) {
	if len(a.Config.KafkaBrokers) == 0 {
		return events.NewLogPublisher(a.Logger), func() {}, nil
	}

	producer, producerErr := events.NewSyncProducer(a.Config.KafkaBrokers)
	if producerErr != nil {
		return nil, nil, fmt.Errorf("init publisher: %w", producerErr)
	}
	publisher := events.NewKafkaPublisher(producer, a.Config.KafkaTopic, a.Logger)

	return publisher, func() {
		if closeErr := publisher.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Error("close kafka producer")
		}
	}, nil
}

func (a *App) initRedis(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: a.Config.RedisAddr})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		_ = client.Close()
		return nil, fmt.Errorf("init redis: %w", pingErr)
	}
	return client, nil
}

func initUOW(conn *pgxpool.Pool, maxAttempts uint) (*uow.UnitOfWork, error) {
	// Инварианты балансов держатся на блокировках строк и условных UPDATE, READ COMMITTED достаточно.
	unitOfWork := uow.NewUnitOfWork(conn).
		SetIsoLevel(pgx.ReadCommitted).
		SetMaxAttempts(maxAttempts)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.WalletRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewWalletRepository(dbtx)
		},
		repoargs.TransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransactionRepository(dbtx)
		},
		repoargs.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(dbtx)
		},
		repoargs.EscrowRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewEscrowRepository(dbtx)
		},
		repoargs.ShipmentRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewShipmentRepository(dbtx)
		},
		repoargs.DepositRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewDepositRepository(dbtx)
		},
		repoargs.ProfileRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewProfileRepository(dbtx)
		},
		repoargs.StatsRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewStatsRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
