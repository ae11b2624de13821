package session

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) createSession(id string, ttl time.Duration) {
	err := s.repo.Create(s.ctx, &CreateInput{
		Session: &models.ViewSession{
			ID:        id,
			Kind:      "cookieclicker",
			GuildID:   "guild",
			ChannelID: "channel",
			OwnerID:   "owner",
			CreatedAt: time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC),
		},
		TTL: ttl,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	s.createSession("abc", time.Minute)

	session, err := s.repo.Get(s.ctx, &GetInput{ID: "abc"})
	s.Require().NoError(err)
	s.Equal("abc", session.ID)
	s.Equal("owner", session.OwnerID)
	s.Equal(int64(0), session.Count)
	s.Empty(session.Participants)
	s.True(s.mr.TTL(sessionKeyPrefix+"abc") > 0)
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, &GetInput{ID: "missing"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestSetMessage() {
	s.createSession("abc", time.Minute)

	err := s.repo.SetMessage(s.ctx, &SetMessageInput{ID: "abc", ChannelID: "channel", MessageID: "message"})
	s.Require().NoError(err)

	session, err := s.repo.Get(s.ctx, &GetInput{ID: "abc"})
	s.Require().NoError(err)
	s.Equal("message", session.MessageID)
	s.True(s.mr.TTL(sessionKeyPrefix+"abc") > 0)
}

func (s *RedisRepositoryTestSuite) TestIncrRefreshesLifetime() {
	s.createSession("abc", 15*time.Second)
	s.mr.FastForward(10 * time.Second)

	count, err := s.repo.Incr(s.ctx, &IncrInput{ID: "abc", TTL: 15 * time.Second})
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	count, err = s.repo.Incr(s.ctx, &IncrInput{ID: "abc", TTL: 15 * time.Second})
	s.Require().NoError(err)
	s.Equal(int64(2), count)

	s.Equal(15*time.Second, s.mr.TTL(sessionKeyPrefix+"abc"))

	session, err := s.repo.Get(s.ctx, &GetInput{ID: "abc"})
	s.Require().NoError(err)
	s.Equal(int64(2), session.Count)
}

func (s *RedisRepositoryTestSuite) TestIncrExpired() {
	s.createSession("abc", 15*time.Second)
	s.mr.FastForward(16 * time.Second)

	_, err := s.repo.Incr(s.ctx, &IncrInput{ID: "abc"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestAddParticipant() {
	s.createSession("abc", time.Minute)

	added, err := s.repo.AddParticipant(s.ctx, &AddParticipantInput{ID: "abc", UserID: "u2"})
	s.Require().NoError(err)
	s.True(added)

	added, err = s.repo.AddParticipant(s.ctx, &AddParticipantInput{ID: "abc", UserID: "u2"})
	s.Require().NoError(err)
	s.False(added)

	_, err = s.repo.AddParticipant(s.ctx, &AddParticipantInput{ID: "abc", UserID: "u1"})
	s.Require().NoError(err)

	session, err := s.repo.Get(s.ctx, &GetInput{ID: "abc"})
	s.Require().NoError(err)
	s.Equal([]string{"u1", "u2"}, session.Participants)
	s.True(s.mr.TTL(participantsKeyPrefix+"abc") > 0)
}

func (s *RedisRepositoryTestSuite) TestAddParticipantMissing() {
	_, err := s.repo.AddParticipant(s.ctx, &AddParticipantInput{ID: "missing", UserID: "u1"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	s.createSession("abc", time.Minute)
	_, err := s.repo.AddParticipant(s.ctx, &AddParticipantInput{ID: "abc", UserID: "u1"})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Delete(s.ctx, &DeleteInput{ID: "abc"}))

	_, err = s.repo.Get(s.ctx, &GetInput{ID: "abc"})
	s.ErrorIs(err, ErrSessionNotFound)
	s.False(s.mr.Exists(participantsKeyPrefix + "abc"))
	s.False(s.mr.Exists(countKeyPrefix + "abc"))
}

func (s *RedisRepositoryTestSuite) TestLock() {
	ok, err := s.repo.Lock(s.ctx, &LockInput{Name: "pressf:channel", Owner: "a", TTL: time.Minute})
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.repo.Lock(s.ctx, &LockInput{Name: "pressf:channel", Owner: "b", TTL: time.Minute})
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.repo.Unlock(s.ctx, &UnlockInput{Name: "pressf:channel"}))

	ok, err = s.repo.Lock(s.ctx, &LockInput{Name: "pressf:channel", Owner: "b", TTL: time.Minute})
	s.Require().NoError(err)
	s.True(ok)
}

func (s *RedisRepositoryTestSuite) TestLockExpires() {
	ok, err := s.repo.Lock(s.ctx, &LockInput{Name: "pressf:channel", Owner: "a", TTL: time.Minute})
	s.Require().NoError(err)
	s.True(ok)

	s.mr.FastForward(61 * time.Second)

	ok, err = s.repo.Lock(s.ctx, &LockInput{Name: "pressf:channel", Owner: "b", TTL: time.Minute})
	s.Require().NoError(err)
	s.True(ok)
}
