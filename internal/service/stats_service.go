package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
	"github.com/fsdevblog/paywallet/pkg/uow"
)

const statsVolumeWindow = 30 * 24 * time.Hour

type StatsService struct {
	statsRepo StatsRepository
	now       func() time.Time
}

func NewStatsService(u uow.UOW) (*StatsService, error) {
	statsRepo, err := uow.GetRepositoryAs[StatsRepository](u, uow.RepositoryName(repoargs.StatsRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &StatsService{statsRepo: statsRepo, now: time.Now}, nil
}

// PlatformStats сводка для администратора. Объем транзакций считается за последние 30 дней,
// активные пользователи с начала текущих суток по UTC.
func (s *StatsService) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	now := s.now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	stats, err := s.statsRepo.PlatformStats(ctx, now.Add(-statsVolumeWindow), todayStart)
	if err != nil {
		return nil, fmt.Errorf("platform stats: %w", err)
	}
	return stats, nil
}
