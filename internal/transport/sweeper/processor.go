// Package sweeper продвигает заказы по таймерам: SHIPPED -> AWAITING_RELEASE и AWAITING_RELEASE -> COMPLETED.
package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/paywallet/internal/domain"
)

const (
	defaultServiceTimeout     = 5 * time.Second
	defaultInterval           = time.Minute
	defaultBatchSize     uint = 100
	defaultWorkers       uint = 10

	lockKey = "paywallet:sweeper"
)

// Processor периодически выбирает заказы, по которым истек таймер, и применяет к каждому переход
// в отдельной транзакции.
type Processor struct {
	svs       Servicer
	locker    Locker
	l         *logrus.Entry
	interval  time.Duration
	batchSize uint
	workers   uint
}

func New(svs Servicer, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "sweeper",
		"module":    "processor",
	})

	return &Processor{
		svs:       svs,
		l:         loggerEntry,
		interval:  defaultInterval,
		batchSize: defaultBatchSize,
		workers:   defaultWorkers,
	}
}

// SetInterval устанавливает паузу между итерациями.
func (p *Processor) SetInterval(interval time.Duration) *Processor {
	if interval > 0 {
		p.interval = interval
	}
	return p
}

// SetBatchSize устанавливает кол-во заказов, обрабатываемых за одну итерацию каждой выборки.
func (p *Processor) SetBatchSize(size uint) *Processor {
	if size > 0 {
		p.batchSize = size
	}
	return p
}

// SetWorkers устанавливает кол-во воркеров, параллельно обрабатывающих заказы.
func (p *Processor) SetWorkers(workers uint) *Processor {
	if workers > 0 {
		p.workers = workers
	}
	return p
}

// SetLocker включает распределенную блокировку итераций.
func (p *Processor) SetLocker(locker Locker) *Processor {
	p.locker = locker
	return p
}

// Result итог одной выборки.
type Result struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// Run запускает обработку по таймеру до отмены контекста.
//
// Алгоритм работы:
//  1. На каждом тике, если задан Locker, захватывает блокировку. Если ее держит другая реплика, тик пропускается.
//  2. Выполняет SweepDeliveries, затем SweepReleases.
//  3. Ошибки отдельных заказов логируются и не прерывают выборку.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"interval":  p.interval,
		"batchSize": p.batchSize,
		"workers":   p.workers,
		"locker":    p.locker != nil,
	}).Info("Starting")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
			if err := p.tick(ctx); err != nil && !errors.Is(err, context.Canceled) {
				p.l.WithError(err).Error("sweep error")
			}
		}
	}
}

func (p *Processor) tick(ctx context.Context) error {
	if p.locker != nil {
		unlock, acquired, lockErr := p.locker.TryLock(ctx, lockKey)
		if lockErr != nil {
			return fmt.Errorf("acquire lock: %w", lockErr)
		}
		if !acquired {
			p.l.Debug("lock is held by another instance, skip")
			return nil
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				p.l.WithError(err).Warn("release lock")
			}
		}()
	}

	deliveries, deliveriesErr := p.SweepDeliveries(ctx)
	if deliveriesErr != nil {
		return deliveriesErr
	}
	releases, releasesErr := p.SweepReleases(ctx)
	if releasesErr != nil {
		return releasesErr
	}

	if deliveries.Processed+deliveries.Failed+releases.Processed+releases.Failed > 0 {
		p.l.WithFields(logrus.Fields{
			"delivered":      deliveries.Processed,
			"deliveryFailed": deliveries.Failed,
			"released":       releases.Processed,
			"releaseFailed":  releases.Failed,
		}).Info("sweep done")
	}
	return nil
}

// SweepDeliveries переводит в AWAITING_RELEASE заказы SHIPPED, с отправки которых прошла задержка доставки.
func (p *Processor) SweepDeliveries(ctx context.Context) (Result, error) {
	return p.sweep(ctx, "delivery", p.svs.DueForDelivery, p.svs.PromoteDelivered)
}

// SweepReleases завершает заказы AWAITING_RELEASE, с доставки которых прошла задержка release, и переводит
// удерживаемые средства продавцу.
func (p *Processor) SweepReleases(ctx context.Context) (Result, error) {
	return p.sweep(ctx, "release", p.svs.DueForRelease, p.svs.AutoRelease)
}

type (
	produceFunc func(ctx context.Context, limit uint) ([]domain.Order, error)
	applyFunc   func(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
)

func (p *Processor) sweep(ctx context.Context, name string, produce produceFunc, apply applyFunc) (Result, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	orders, ordersErr := produce(produceCtx, p.batchSize)
	cancel()
	if ordersErr != nil {
		return Result{}, fmt.Errorf("%s sweep: %w", name, ordersErr)
	}
	if len(orders) == 0 {
		return Result{}, nil
	}

	return p.runWorkers(ctx, name, orders, apply), nil
}

// runWorkers запускает параллельных воркеров по паттерну fan-out/fan-in и ожидает конца их работы.
func (p *Processor) runWorkers(ctx context.Context, name string, orders []domain.Order, apply applyFunc) Result {
	var taskCh = make(chan uuid.UUID, len(orders))
	for _, order := range orders {
		taskCh <- order.ID
	}
	close(taskCh)

	var processed, skipped, failed atomic.Int64

	l := p.l.WithField("sweep", name)
	wg := new(sync.WaitGroup)
	for i := range min(p.workers, uint(len(orders))) {
		wg.Add(1)
		go func(workerID uint) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case orderID, ok := <-taskCh:
					if !ok {
						return
					}
					switch err := p.apply(ctx, apply, orderID); {
					case err == nil:
						processed.Add(1)
					case isSkip(err):
						skipped.Add(1)
						l.WithField("orderID", orderID).WithError(err).Debug("skip")
					default:
						failed.Add(1)
						l.WithFields(logrus.Fields{
							"worker":  workerID,
							"orderID": orderID,
						}).WithError(err).Error("apply transition")
					}
				}
			}
		}(i + 1)
	}
	wg.Wait()

	return Result{
		Processed: int(processed.Load()),
		Skipped:   int(skipped.Load()),
		Failed:    int(failed.Load()),
	}
}

func (p *Processor) apply(ctx context.Context, apply applyFunc, orderID uuid.UUID) error {
	applyCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	_, err := apply(applyCtx, orderID)
	return err
}

// isSkip заказ уже продвинут другим вызовом или таймер еще не истек.
func isSkip(err error) bool {
	if errors.Is(err, domain.ErrInvalidTransition) {
		return true
	}
	var noHeldErr *domain.NoHeldEscrowError
	return errors.As(err, &noHeldErr) && noHeldErr.AlreadyReleased()
}
