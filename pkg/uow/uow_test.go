package uow

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
)

type fakeRepo struct {
	db DBTX
}

type UOWTestSuite struct {
	suite.Suite
	unitOfWork *UnitOfWork
}

func TestUOWSuite(t *testing.T) {
	suite.Run(t, new(UOWTestSuite))
}

func (s *UOWTestSuite) SetupTest() {
	s.unitOfWork = NewUnitOfWork(nil)
	err := s.unitOfWork.Register("fake", func(db DBTX) Repository {
		return &fakeRepo{db: db}
	})
	s.Require().NoError(err)
}

func (s *UOWTestSuite) TestRegisterTwice() {
	err := s.unitOfWork.Register("fake", func(DBTX) Repository { return nil })
	s.ErrorIs(err, ErrRepositoryAlreadyRegistered)
}

func (s *UOWTestSuite) TestGetRepositoryAs() {
	repo, err := GetRepositoryAs[*fakeRepo](s.unitOfWork, "fake")
	s.Require().NoError(err)
	s.NotNil(repo)

	_, notFoundErr := GetRepositoryAs[*fakeRepo](s.unitOfWork, "missing")
	s.ErrorIs(notFoundErr, ErrRepositoryNotRegistered)

	_, typeErr := GetRepositoryAs[string](s.unitOfWork, "fake")
	s.ErrorIs(typeErr, ErrInvalidRepositoryType)
}

func (s *UOWTestSuite) TestTransactionGetAs() {
	tx := NewTransaction(nil, s.unitOfWork.repositories)

	repo, err := GetAs[*fakeRepo](tx, "fake")
	s.Require().NoError(err)
	s.NotNil(repo)

	_, typeErr := GetAs[int](tx, "fake")
	s.ErrorIs(typeErr, ErrInvalidRepositoryType)

	_, notFoundErr := GetAs[*fakeRepo](tx, "missing")
	s.ErrorIs(notFoundErr, ErrRepositoryNotRegistered)
}

func (s *UOWTestSuite) TestTransactionReusesRepository() {
	var created int
	unitOfWork := NewUnitOfWork(nil)
	s.Require().NoError(unitOfWork.Register("counted", func(db DBTX) Repository {
		created++
		return &fakeRepo{db: db}
	}))
	tx := NewTransaction(nil, unitOfWork.repositories)

	first, firstErr := GetAs[*fakeRepo](tx, "counted")
	s.Require().NoError(firstErr)
	second, secondErr := GetAs[*fakeRepo](tx, "counted")
	s.Require().NoError(secondErr)

	s.Same(first, second)
	s.Equal(1, created)

	// в новой транзакции репозиторий создается заново.
	_, otherErr := GetAs[*fakeRepo](NewTransaction(nil, unitOfWork.repositories), "counted")
	s.Require().NoError(otherErr)
	s.Equal(2, created)
}

func (s *UOWTestSuite) TestBuilders() {
	unitOfWork := NewUnitOfWork(nil)
	s.Equal(pgx.ReadCommitted, unitOfWork.txOptions.IsoLevel)
	s.Equal(uint(defaultMaxAttempts), unitOfWork.maxAttempts)

	same := unitOfWork.SetIsoLevel(pgx.Serializable).SetMaxAttempts(5)
	s.Same(unitOfWork, same)
	s.Equal(pgx.Serializable, unitOfWork.txOptions.IsoLevel)
	s.Equal(uint(5), unitOfWork.maxAttempts)

	// ноль попыток означает одну попытку без повторов.
	unitOfWork.SetMaxAttempts(0)
	s.Equal(uint(1), unitOfWork.maxAttempts)
}

func (s *UOWTestSuite) TestIsRetryable() {
	s.True(isRetryable(&pgconn.PgError{Code: "40P01"}))
	s.True(isRetryable(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "40001"})))
	s.False(isRetryable(&pgconn.PgError{Code: "23505"}))
	s.False(isRetryable(errors.New("plain")))
}

func (s *UOWTestSuite) TestJitterBounds() {
	for range 100 {
		v := jitter(100, 0.5, 0.5)
		s.GreaterOrEqual(v, 50.0)
		s.LessOrEqual(v, 150.0)
	}
}
