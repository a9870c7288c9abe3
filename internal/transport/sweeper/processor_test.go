package sweeper

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/transport/sweeper/mocks"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor   *Processor
	mockService *mocks.MockServicer
	mockLocker  *mocks.MockLocker
	ctrl        *gomock.Controller
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockServicer(s.ctrl)
	s.mockLocker = mocks.NewMockLocker(s.ctrl)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s.processor = New(s.mockService, logger).SetWorkers(3).SetBatchSize(10)
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func ordersWithIDs(n int) []domain.Order {
	orders := make([]domain.Order, n)
	for i := range orders {
		orders[i] = domain.Order{ID: uuid.New()}
	}
	return orders
}

func (s *ProcessorTestSuite) TestSweepDeliveries_NoOrders() {
	s.mockService.EXPECT().DueForDelivery(gomock.Any(), uint(10)).Return(nil, nil)
	s.mockService.EXPECT().PromoteDelivered(gomock.Any(), gomock.Any()).Times(0)

	result, err := s.processor.SweepDeliveries(s.T().Context())
	s.Require().NoError(err)
	s.Equal(Result{}, result)
}

func (s *ProcessorTestSuite) TestSweepDeliveries_ProduceError() {
	s.mockService.EXPECT().DueForDelivery(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUnknown)

	_, err := s.processor.SweepDeliveries(s.T().Context())
	s.ErrorIs(err, domain.ErrUnknown)
}

// TestSweepReleases_PerItemIsolation ошибка одного заказа не мешает обработке остальных.
func (s *ProcessorTestSuite) TestSweepReleases_PerItemIsolation() {
	orders := ordersWithIDs(5)
	s.mockService.EXPECT().DueForRelease(gomock.Any(), uint(10)).Return(orders, nil)

	s.mockService.EXPECT().AutoRelease(gomock.Any(), orders[0].ID).Return(&domain.Order{}, nil)
	s.mockService.EXPECT().AutoRelease(gomock.Any(), orders[1].ID).Return(nil, errors.New("db is down"))
	s.mockService.EXPECT().AutoRelease(gomock.Any(), orders[2].ID).Return(&domain.Order{}, nil)
	// Заказ уже завершен параллельным вызовом.
	s.mockService.EXPECT().AutoRelease(gomock.Any(), orders[3].ID).Return(
		nil,
		domain.NewAlreadyReleasedError(&domain.Order{ID: orders[3].ID, Status: domain.OrderStatusCompleted}),
	)
	// Состояние успело измениться.
	s.mockService.EXPECT().AutoRelease(gomock.Any(), orders[4].ID).Return(
		nil,
		domain.NewInvalidTransitionError(orders[4].ID, domain.OrderStatusCancelled, domain.OrderStatusCompleted),
	)

	result, err := s.processor.SweepReleases(s.T().Context())
	s.Require().NoError(err)
	s.Equal(Result{Processed: 2, Skipped: 2, Failed: 1}, result)
}

func (s *ProcessorTestSuite) TestSweepReleases_MissingHoldsIsFailure() {
	orders := ordersWithIDs(1)
	s.mockService.EXPECT().DueForRelease(gomock.Any(), gomock.Any()).Return(orders, nil)
	s.mockService.EXPECT().AutoRelease(gomock.Any(), orders[0].ID).Return(
		nil,
		domain.NewNoHeldEscrowError(&orders[0]),
	)

	result, err := s.processor.SweepReleases(s.T().Context())
	s.Require().NoError(err)
	s.Equal(1, result.Failed)
}

func (s *ProcessorTestSuite) TestTick_Locked() {
	s.processor.SetLocker(s.mockLocker)

	unlocked := false
	s.mockLocker.EXPECT().
		TryLock(gomock.Any(), lockKey).
		Return(func(context.Context) error {
			unlocked = true
			return nil
		}, true, nil)
	gomock.InOrder(
		s.mockService.EXPECT().DueForDelivery(gomock.Any(), gomock.Any()).Return(nil, nil),
		s.mockService.EXPECT().DueForRelease(gomock.Any(), gomock.Any()).Return(nil, nil),
	)

	s.Require().NoError(s.processor.tick(s.T().Context()))
	s.True(unlocked)
}

// TestTick_HeldByOther блокировку держит другая реплика, выборки не выполняются.
func (s *ProcessorTestSuite) TestTick_HeldByOther() {
	s.processor.SetLocker(s.mockLocker)

	s.mockLocker.EXPECT().TryLock(gomock.Any(), lockKey).Return(nil, false, nil)
	s.mockService.EXPECT().DueForDelivery(gomock.Any(), gomock.Any()).Times(0)
	s.mockService.EXPECT().DueForRelease(gomock.Any(), gomock.Any()).Times(0)

	s.NoError(s.processor.tick(s.T().Context()))
}

func (s *ProcessorTestSuite) TestRun_StopsOnCancel() {
	s.processor.SetInterval(10 * time.Millisecond)
	s.mockService.EXPECT().DueForDelivery(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	s.mockService.EXPECT().DueForRelease(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithTimeout(s.T().Context(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.processor.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("processor did not stop")
	}
}
