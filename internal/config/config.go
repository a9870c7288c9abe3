package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultRunAddress    = "localhost:8080"
	defaultMigrationsDir = "internal/db/migrations"
	defaultKafkaTopic    = "paywallet.ledger"
	defaultDeliveryDelay = 7 * 24 * time.Hour
	defaultReleaseDelay  = 24 * time.Hour
	defaultSweepInterval = time.Minute
	defaultSweepBatch    = 100
	defaultSweepWorkers  = 10
	defaultTxMaxAttempts = 3
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTSecret     string `env:"JWT_SECRET"`

	// RedisAddr пустой адрес отключает распределенную блокировку обработчика таймеров.
	RedisAddr string `env:"REDIS_ADDR"`
	// KafkaBrokers без брокеров события только логируются.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC"`

	DeliveryDelay time.Duration `env:"DELIVERY_DELAY"`
	ReleaseDelay  time.Duration `env:"RELEASE_DELAY"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
	SweepBatch    int           `env:"SWEEP_BATCH"`
	SweepWorkers  int           `env:"SWEEP_WORKERS"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST"`

	// TxMaxAttempts попытки транзакции БД при deadlock и ошибках сериализации.
	TxMaxAttempts uint `env:"TX_MAX_ATTEMPTS"`
}

func LoadConfig() (*Config, error) {
	// .env необязателен, переменные окружения имеют приоритет над ним.
	if dotenvErr := godotenv.Load(); dotenvErr != nil && !errors.Is(dotenvErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", dotenvErr.Error())
	}
	return load(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func load(args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	if conf.SweepBatch <= 0 || conf.SweepWorkers <= 0 {
		return nil, errors.New("sweep batch and workers must be positive")
	}
	return conf, nil
}

func loadFlags(flagConfig *Config, args []string) error {
	flagSet := flag.NewFlagSet("paywallet", flag.ContinueOnError)

	flagSet.StringVar(&flagConfig.RunAddress, "a", defaultRunAddress, "Run address in format host:port")
	flagSet.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flagSet.StringVar(&flagConfig.MigrationsDir, "m", defaultMigrationsDir, "Database migrations directory")
	flagSet.StringVar(&flagConfig.JWTSecret, "j", "", "JWT secret key")
	flagSet.StringVar(&flagConfig.RedisAddr, "r", "", "Redis address for the sweeper lock")
	brokers := flagSet.String("k", "", "Comma separated kafka brokers")
	flagSet.StringVar(&flagConfig.KafkaTopic, "t", defaultKafkaTopic, "Kafka topic for ledger events")
	flagSet.DurationVar(&flagConfig.DeliveryDelay, "delivery-delay", defaultDeliveryDelay, "Shipped -> awaiting release delay")
	flagSet.DurationVar(&flagConfig.ReleaseDelay, "release-delay", defaultReleaseDelay, "Auto release delay")
	flagSet.DurationVar(&flagConfig.SweepInterval, "sweep-interval", defaultSweepInterval, "Sweeper tick interval")
	flagSet.IntVar(&flagConfig.SweepBatch, "sweep-batch", defaultSweepBatch, "Orders per sweep")
	flagSet.IntVar(&flagConfig.SweepWorkers, "sweep-workers", defaultSweepWorkers, "Sweeper workers")
	flagSet.Float64Var(&flagConfig.RateLimitRPS, "rate-rps", 0, "Money routes rate limit per user, 0 disables")
	flagSet.IntVar(&flagConfig.RateLimitBurst, "rate-burst", 1, "Money routes rate limit burst")
	flagSet.UintVar(&flagConfig.TxMaxAttempts, "tx-attempts", defaultTxMaxAttempts, "Database transaction attempts on conflicts")

	if err := flagSet.Parse(args); err != nil {
		return err //nolint:wrapcheck
	}

	if *brokers != "" {
		for _, b := range strings.Split(*brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				flagConfig.KafkaBrokers = append(flagConfig.KafkaBrokers, b)
			}
		}
	}
	return nil
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	brokers := envConfig.KafkaBrokers
	if len(brokers) == 0 {
		brokers = flagsConfig.KafkaBrokers
	}

	return &Config{
		RunAddress:     defaultIfZero(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:    defaultIfZero(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:  defaultIfZero(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:      defaultIfZero(envConfig.JWTSecret, flagsConfig.JWTSecret),
		RedisAddr:      defaultIfZero(envConfig.RedisAddr, flagsConfig.RedisAddr),
		KafkaBrokers:   brokers,
		KafkaTopic:     defaultIfZero(envConfig.KafkaTopic, flagsConfig.KafkaTopic),
		DeliveryDelay:  defaultIfZero(envConfig.DeliveryDelay, flagsConfig.DeliveryDelay),
		ReleaseDelay:   defaultIfZero(envConfig.ReleaseDelay, flagsConfig.ReleaseDelay),
		SweepInterval:  defaultIfZero(envConfig.SweepInterval, flagsConfig.SweepInterval),
		SweepBatch:     defaultIfZero(envConfig.SweepBatch, flagsConfig.SweepBatch),
		SweepWorkers:   defaultIfZero(envConfig.SweepWorkers, flagsConfig.SweepWorkers),
		RateLimitRPS:   defaultIfZero(envConfig.RateLimitRPS, flagsConfig.RateLimitRPS),
		RateLimitBurst: defaultIfZero(envConfig.RateLimitBurst, flagsConfig.RateLimitBurst),
		TxMaxAttempts:  defaultIfZero(envConfig.TxMaxAttempts, flagsConfig.TxMaxAttempts),
	}
}

func defaultIfZero[T comparable](value T, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}
