package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/pkg/uow"
)

type StatsRepository struct {
	db uow.DBTX
}

func NewStatsRepository(db uow.DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

// PlatformStats агрегаты для панели администратора: кол-во профилей пользователей, сумма доступных средств,
// объем транзакций начиная с volumeSince и кол-во уникальных участников транзакций начиная с activeSince.
func (s *StatsRepository) PlatformStats(
	ctx context.Context,
	volumeSince time.Time,
	activeSince time.Time,
) (*domain.PlatformStats, error) {
	var stats domain.PlatformStats
	err := s.db.QueryRow(ctx, `SELECT
		(SELECT count(*) FROM profiles),
		(SELECT COALESCE(sum(available_cents), 0) FROM wallets)::bigint,
		(SELECT COALESCE(sum(amount_cents), 0) FROM transactions WHERE created_at >= $1)::bigint,
		(SELECT count(DISTINCT u) FROM (
			SELECT sender_id AS u FROM transactions WHERE created_at >= $2 AND sender_id IS NOT NULL
			UNION
			SELECT receiver_id FROM transactions WHERE created_at >= $2 AND receiver_id IS NOT NULL
		) active)`,
		volumeSince, activeSince,
	).Scan(&stats.TotalUsers, &stats.TotalDepositedCents, &stats.Volume30dCents, &stats.ActiveToday)
	if err != nil {
		return nil, convertErr(err, "aggregating platform stats")
	}
	return &stats, nil
}
