package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const (
	maxConnectAttempts   = 30
	connectRetryInterval = 3 * time.Second

	poolMaxConnLifetime   = time.Hour
	poolHealthCheckPeriod = 30 * time.Second
)

// Connect открывает пул соединений с postgres, повторяя попытки пока БД не станет доступна,
// и применяет миграции из migrationsDir.
func Connect(ctx context.Context, migrationsDir, dsn string, l *logrus.Logger) (*pgxpool.Pool, error) {
	log := l.WithField("component", "pgrepo")

	var lastErr error
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		pool, connErr := newPostgresConnection(ctx, dsn)
		if connErr == nil {
			if migrateErr := postgresMigrate(migrationsDir, dsn, log); migrateErr != nil {
				pool.Close()
				return nil, migrateErr
			}
			return pool, nil
		}
		lastErr = connErr

		log.WithError(connErr).
			WithField("CurrentAttempt", fmt.Sprintf("#%d / %d", attempt, maxConnectAttempts)).
			Warnf("init postgres connection error, retrying in %.f seconds", connectRetryInterval.Seconds())

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("init postgres connection: %w", ctx.Err())
		case <-time.After(connectRetryInterval):
		}
	}
	return nil, fmt.Errorf("init postgres connection after %d attempts: %w", maxConnectAttempts, lastErr)
}

func newPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("parse postgres config: %s", confErr.Error())
	}
	poolConfig.MaxConnLifetime = poolMaxConnLifetime
	poolConfig.HealthCheckPeriod = poolHealthCheckPeriod

	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %s", poolErr.Error())
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %s", pingErr.Error())
	}

	return pool, nil
}

func postgresMigrate(dir string, dsn string, log *logrus.Entry) error {
	m, mErr := migrate.New("file://"+dir, dsn)
	if mErr != nil {
		return fmt.Errorf("failed to create migrate instance: %w", mErr)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.WithFields(logrus.Fields{"source": srcErr, "database": dbErr}).Warn("close migrate instance")
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	version, dirty, versionErr := m.Version()
	if versionErr != nil && !errors.Is(versionErr, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", versionErr)
	}
	log.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("schema is up to date")
	return nil
}
