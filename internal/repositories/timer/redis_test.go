package timer

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
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
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
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newTimer(messageID string, ends time.Duration) *models.Timer {
	return &models.Timer{
		GuildID:      "guild-1",
		MessageID:    messageID,
		EndTimestamp: s.testNow.Add(ends).Unix(),
		HostID:       "host-1",
		ChannelID:    "channel-1",
		Title:        "Sale",
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	s.Require().NoError(s.repo.Create(s.ctx, &CreateInput{Timer: s.newTimer("msg-1", time.Minute)}))

	t, err := s.repo.Get(s.ctx, &GetInput{GuildID: "guild-1", MessageID: "msg-1"})
	s.Require().NoError(err)

	s.Equal("guild-1", t.GuildID)
	s.Equal("msg-1", t.MessageID)
	s.Equal("host-1", t.HostID)
	s.Equal("channel-1", t.ChannelID)
	s.Equal("Sale", t.Title)
	s.Equal(s.testNow.Add(time.Minute).Unix(), t.EndTimestamp)
	s.Empty(t.Members)

	guilds, err := s.repo.ListGuilds(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"guild-1"}, guilds)
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, &GetInput{GuildID: "guild-1", MessageID: "nope"})
	s.ErrorIs(err, ErrTimerNotFound)
}

func (s *RedisRepositoryTestSuite) TestAddMemberNeverDuplicates() {
	s.Require().NoError(s.repo.Create(s.ctx, &CreateInput{Timer: s.newTimer("msg-1", time.Minute)}))

	added, err := s.repo.AddMember(s.ctx, &AddMemberInput{GuildID: "guild-1", MessageID: "msg-1", UserID: "user-1"})
	s.Require().NoError(err)
	s.True(added)

	added, err = s.repo.AddMember(s.ctx, &AddMemberInput{GuildID: "guild-1", MessageID: "msg-1", UserID: "user-1"})
	s.Require().NoError(err)
	s.False(added)

	t, err := s.repo.Get(s.ctx, &GetInput{GuildID: "guild-1", MessageID: "msg-1"})
	s.Require().NoError(err)
	s.Equal([]string{"user-1"}, t.Members)
}

func (s *RedisRepositoryTestSuite) TestAddMemberToMissingTimer() {
	_, err := s.repo.AddMember(s.ctx, &AddMemberInput{GuildID: "guild-1", MessageID: "msg-1", UserID: "user-1"})
	s.ErrorIs(err, ErrTimerNotFound)
	s.False(s.mr.Exists(membersKey("guild-1", "msg-1")))
}

func (s *RedisRepositoryTestSuite) TestListByGuildOrdersByDeadline() {
	s.Require().NoError(s.repo.Create(s.ctx, &CreateInput{Timer: s.newTimer("late", time.Hour)}))
	s.Require().NoError(s.repo.Create(s.ctx, &CreateInput{Timer: s.newTimer("soon", time.Minute)}))
	_, err := s.repo.AddMember(s.ctx, &AddMemberInput{GuildID: "guild-1", MessageID: "late", UserID: "user-2"})
	s.Require().NoError(err)

	out, err := s.repo.ListByGuild(s.ctx, &ListByGuildInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Timers, 2)
	s.Equal("soon", out.Timers[0].MessageID)
	s.Equal("late", out.Timers[1].MessageID)
	s.Equal([]string{"user-2"}, out.Timers[1].Members)

	empty, err := s.repo.ListByGuild(s.ctx, &ListByGuildInput{GuildID: "guild-2"})
	s.Require().NoError(err)
	s.Empty(empty.Timers)
}

func (s *RedisRepositoryTestSuite) TestClaimIsExclusive() {
	s.Require().NoError(s.repo.Create(s.ctx, &CreateInput{Timer: s.newTimer("msg-1", time.Minute)}))
	input := &ClaimInput{GuildID: "guild-1", MessageID: "msg-1", TTL: time.Minute}

	ok, err := s.repo.Claim(s.ctx, input)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.repo.Claim(s.ctx, input)
	s.Require().NoError(err)
	s.False(ok)

	s.mr.FastForward(2 * time.Minute)

	ok, err = s.repo.Claim(s.ctx, input)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *RedisRepositoryTestSuite) TestClaimAfterDeleteOwnsNothing() {
	s.Require().NoError(s.repo.Create(s.ctx, &CreateInput{Timer: s.newTimer("msg-1", time.Minute)}))
	input := &ClaimInput{GuildID: "guild-1", MessageID: "msg-1", TTL: time.Minute}

	ok, err := s.repo.Claim(s.ctx, input)
	s.Require().NoError(err)
	s.Require().True(ok)

	_, err = s.repo.Delete(s.ctx, &DeleteInput{GuildID: "guild-1", MessageIDs: []string{"msg-1"}})
	s.Require().NoError(err)

	ok, err = s.repo.Claim(s.ctx, input)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RedisRepositoryTestSuite) TestClaimUnknownTimer() {
	ok, err := s.repo.Claim(s.ctx, &ClaimInput{GuildID: "guild-1", MessageID: "missing", TTL: time.Minute})
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RedisRepositoryTestSuite) TestDeleteRemovesMembersAndClaim() {
	s.Require().NoError(s.repo.Create(s.ctx, &CreateInput{Timer: s.newTimer("msg-1", time.Minute)}))
	_, err := s.repo.AddMember(s.ctx, &AddMemberInput{GuildID: "guild-1", MessageID: "msg-1", UserID: "user-1"})
	s.Require().NoError(err)
	_, err = s.repo.Claim(s.ctx, &ClaimInput{GuildID: "guild-1", MessageID: "msg-1", TTL: time.Minute})
	s.Require().NoError(err)

	n, err := s.repo.Delete(s.ctx, &DeleteInput{GuildID: "guild-1", MessageIDs: []string{"msg-1"}})
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	// A second delete of the same key is a no-op
	n, err = s.repo.Delete(s.ctx, &DeleteInput{GuildID: "guild-1", MessageIDs: []string{"msg-1"}})
	s.Require().NoError(err)
	s.Equal(int64(0), n)

	_, err = s.repo.Get(s.ctx, &GetInput{GuildID: "guild-1", MessageID: "msg-1"})
	s.ErrorIs(err, ErrTimerNotFound)
	s.False(s.mr.Exists(membersKey("guild-1", "msg-1")))
	s.False(s.mr.Exists(claimKey("guild-1", "msg-1")))
}

func (s *RedisRepositoryTestSuite) TestDeleteGuildAndAll() {
	s.Require().NoError(s.repo.Create(s.ctx, &CreateInput{Timer: s.newTimer("msg-1", time.Minute)}))
	other := s.newTimer("msg-2", time.Minute)
	other.GuildID = "guild-2"
	s.Require().NoError(s.repo.Create(s.ctx, &CreateInput{Timer: other}))

	s.Require().NoError(s.repo.DeleteGuild(s.ctx, &DeleteGuildInput{GuildID: "guild-1"}))

	guilds, err := s.repo.ListGuilds(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"guild-2"}, guilds)

	s.Require().NoError(s.repo.DeleteAll(s.ctx))

	guilds, err = s.repo.ListGuilds(s.ctx)
	s.Require().NoError(err)
	s.Empty(guilds)
	s.False(s.mr.Exists(timersKey("guild-2")))
}
