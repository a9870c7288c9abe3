package sweeper

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type LockerTestSuite struct {
	suite.Suite
	server *miniredis.Miniredis
	client *redis.Client
	locker *RedisLocker
}

func TestLockerSuite(t *testing.T) {
	suite.Run(t, new(LockerTestSuite))
}

func (s *LockerTestSuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.server.Addr()})
	s.locker = NewRedisLocker(s.client)
}

func (s *LockerTestSuite) TearDownTest() {
	s.NoError(s.client.Close())
}

func (s *LockerTestSuite) TestTryLock() {
	ctx := s.T().Context()

	unlock, acquired, err := s.locker.TryLock(ctx, lockKey)
	s.Require().NoError(err)
	s.Require().True(acquired)
	s.True(s.server.Exists(lockKey))

	// Вторая реплика блокировку не получает.
	_, acquiredAgain, againErr := NewRedisLocker(s.client).TryLock(ctx, lockKey)
	s.Require().NoError(againErr)
	s.False(acquiredAgain)

	s.Require().NoError(unlock(ctx))
	s.False(s.server.Exists(lockKey))

	_, acquiredAfter, afterErr := s.locker.TryLock(ctx, lockKey)
	s.Require().NoError(afterErr)
	s.True(acquiredAfter)
}

func (s *LockerTestSuite) TestTryLock_Expired() {
	ctx := s.T().Context()

	unlock, acquired, err := s.locker.SetExpiry(time.Second).TryLock(ctx, lockKey)
	s.Require().NoError(err)
	s.Require().True(acquired)

	s.server.FastForward(2 * time.Second)
	s.Error(unlock(ctx))
}
