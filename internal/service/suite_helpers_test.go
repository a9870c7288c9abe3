package service

import (
	"context"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
	"github.com/fsdevblog/paywallet/internal/service/mocks"
	"github.com/fsdevblog/paywallet/pkg/uow"
	uowmocks "github.com/fsdevblog/paywallet/pkg/uow/mocks"
)

// serviceSuite общая часть тестов сервисов: моки unit of work и всех репозиториев.
type serviceSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockWalletRepo  *mocks.MockWalletRepository
	mockTxRepo      *mocks.MockTransactionRepository
	mockOrderRepo   *mocks.MockOrderRepository
	mockEscrowRepo  *mocks.MockEscrowRepository
	mockShipRepo    *mocks.MockShipmentRepository
	mockDepositRepo *mocks.MockDepositRepository
	mockProfileRepo *mocks.MockProfileRepository
	mockStatsRepo   *mocks.MockStatsRepository
	mockPublisher   *mocks.MockEventPublisher
}

func (s *serviceSuite) setupMocks() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockWalletRepo = mocks.NewMockWalletRepository(s.mockCtrl)
	s.mockTxRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(s.mockCtrl)
	s.mockEscrowRepo = mocks.NewMockEscrowRepository(s.mockCtrl)
	s.mockShipRepo = mocks.NewMockShipmentRepository(s.mockCtrl)
	s.mockDepositRepo = mocks.NewMockDepositRepository(s.mockCtrl)
	s.mockProfileRepo = mocks.NewMockProfileRepository(s.mockCtrl)
	s.mockStatsRepo = mocks.NewMockStatsRepository(s.mockCtrl)
	s.mockPublisher = mocks.NewMockEventPublisher(s.mockCtrl)

	repos := map[repoargs.RepositoryName]uow.Repository{
		repoargs.WalletRepoName:      s.mockWalletRepo,
		repoargs.TransactionRepoName: s.mockTxRepo,
		repoargs.OrderRepoName:       s.mockOrderRepo,
		repoargs.EscrowRepoName:      s.mockEscrowRepo,
		repoargs.ShipmentRepoName:    s.mockShipRepo,
		repoargs.DepositRepoName:     s.mockDepositRepo,
		repoargs.ProfileRepoName:     s.mockProfileRepo,
		repoargs.StatsRepoName:       s.mockStatsRepo,
	}
	// Моки получения репозиториев из uow (инициализация сервисов) и из транзакции.
	for name, repo := range repos {
		s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		s.mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}
}

// expectDo настраивает мок выполнения транзакции: fn вызывается с мок-транзакцией.
func (s *serviceSuite) expectDo() *gomock.Call {
	return s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *serviceSuite) TearDownTest() {
	s.mockCtrl.Finish()
}
