package settings

import (
	"context"
	"testing"

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

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestScopeKeys() {
	s.Equal("settings:timers:global", Global("timers").Key())
	s.Equal("settings:timers:guild:1", Guild("timers", "1").Key())
	s.Equal("settings:afk:member:1:2", Member("afk", "1", "2").Key())
}

func (s *RedisRepositoryTestSuite) TestInvalidScope() {
	_, err := s.repo.GetAll(s.ctx, &GetAllInput{Scope: Scope{}})
	s.ErrorIs(err, ErrInvalidScope)

	err = s.repo.Set(s.ctx, &SetInput{Scope: Scope{Cog: "afk", UserID: "2"}, Fields: map[string]string{"a": "b"}})
	s.ErrorIs(err, ErrInvalidScope)
}

func (s *RedisRepositoryTestSuite) TestSetAndGetAll() {
	scope := Guild("timers", "guild-1")

	fields, err := s.repo.GetAll(s.ctx, &GetAllInput{Scope: scope})
	s.Require().NoError(err)
	s.Empty(fields)

	err = s.repo.Set(s.ctx, &SetInput{Scope: scope, Fields: map[string]string{
		"timer_emoji":    "⏰",
		"notify_members": "false",
	}})
	s.Require().NoError(err)

	fields, err = s.repo.GetAll(s.ctx, &GetAllInput{Scope: scope})
	s.Require().NoError(err)
	s.Equal(map[string]string{"timer_emoji": "⏰", "notify_members": "false"}, fields)

	guilds, err := s.repo.ListGuilds(s.ctx, &ListGuildsInput{Cog: "timers"})
	s.Require().NoError(err)
	s.Equal([]string{"guild-1"}, guilds)
}

func (s *RedisRepositoryTestSuite) TestMemberScopeIsNotIndexedAsGuild() {
	err := s.repo.Set(s.ctx, &SetInput{Scope: Member("afk", "guild-1", "user-1"), Fields: map[string]string{"afk": "true"}})
	s.Require().NoError(err)

	guilds, err := s.repo.ListGuilds(s.ctx, &ListGuildsInput{Cog: "afk"})
	s.Require().NoError(err)
	s.Empty(guilds)
}

func (s *RedisRepositoryTestSuite) TestSetIfAbsent() {
	scope := Guild("autoreaction", "guild-1")

	ok, err := s.repo.SetIfAbsent(s.ctx, &SetIfAbsentInput{Scope: scope, Field: "hello", Value: "👋"})
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.repo.SetIfAbsent(s.ctx, &SetIfAbsentInput{Scope: scope, Field: "hello", Value: "🍪"})
	s.Require().NoError(err)
	s.False(ok)

	fields, err := s.repo.GetAll(s.ctx, &GetAllInput{Scope: scope})
	s.Require().NoError(err)
	s.Equal("👋", fields["hello"])
}

func (s *RedisRepositoryTestSuite) TestDeleteFields() {
	scope := Guild("autoreaction", "guild-1")
	s.Require().NoError(s.repo.Set(s.ctx, &SetInput{Scope: scope, Fields: map[string]string{"a": "1", "b": "2"}}))

	n, err := s.repo.DeleteFields(s.ctx, &DeleteFieldsInput{Scope: scope, Fields: []string{"a", "missing"}})
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	fields, err := s.repo.GetAll(s.ctx, &GetAllInput{Scope: scope})
	s.Require().NoError(err)
	s.Equal(map[string]string{"b": "2"}, fields)
}

func (s *RedisRepositoryTestSuite) TestSets() {
	scope := Global("devlogs")

	added, err := s.repo.AddToSet(s.ctx, &SetMemberInput{Scope: scope, Set: "bypass", Member: "2"})
	s.Require().NoError(err)
	s.True(added)

	added, err = s.repo.AddToSet(s.ctx, &SetMemberInput{Scope: scope, Set: "bypass", Member: "2"})
	s.Require().NoError(err)
	s.False(added)

	_, err = s.repo.AddToSet(s.ctx, &SetMemberInput{Scope: scope, Set: "bypass", Member: "1"})
	s.Require().NoError(err)

	members, err := s.repo.GetSet(s.ctx, &GetSetInput{Scope: scope, Set: "bypass"})
	s.Require().NoError(err)
	s.Equal([]string{"1", "2"}, members)

	removed, err := s.repo.RemoveFromSet(s.ctx, &SetMemberInput{Scope: scope, Set: "bypass", Member: "2"})
	s.Require().NoError(err)
	s.True(removed)

	removed, err = s.repo.RemoveFromSet(s.ctx, &SetMemberInput{Scope: scope, Set: "bypass", Member: "2"})
	s.Require().NoError(err)
	s.False(removed)
}

func (s *RedisRepositoryTestSuite) TestLists() {
	scope := Member("afk", "guild-1", "user-1")

	for _, v := range []string{"first", "second"} {
		s.Require().NoError(s.repo.Append(s.ctx, &AppendInput{Scope: scope, List: "pinglogs", Value: v}))
	}

	values, err := s.repo.GetList(s.ctx, &GetListInput{Scope: scope, List: "pinglogs"})
	s.Require().NoError(err)
	s.Equal([]string{"first", "second"}, values)

	drained, err := s.repo.DrainList(s.ctx, &GetListInput{Scope: scope, List: "pinglogs"})
	s.Require().NoError(err)
	s.Equal([]string{"first", "second"}, drained)

	values, err = s.repo.GetList(s.ctx, &GetListInput{Scope: scope, List: "pinglogs"})
	s.Require().NoError(err)
	s.Empty(values)
}

func (s *RedisRepositoryTestSuite) TestClearDropsSetsAndLists() {
	scope := Guild("donationlogger", "guild-1")
	s.Require().NoError(s.repo.Set(s.ctx, &SetInput{Scope: scope, Fields: map[string]string{"setup": "true"}}))
	_, err := s.repo.AddToSet(s.ctx, &SetMemberInput{Scope: scope, Set: "managers", Member: "role-1"})
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Append(s.ctx, &AppendInput{Scope: scope, List: "notes", Value: "x"}))

	other := Guild("donationlogger", "guild-2")
	s.Require().NoError(s.repo.Set(s.ctx, &SetInput{Scope: other, Fields: map[string]string{"setup": "true"}}))

	s.Require().NoError(s.repo.Clear(s.ctx, &ClearInput{Scope: scope}))

	s.False(s.mr.Exists(scope.Key()))
	s.False(s.mr.Exists(scope.Key() + ":set:managers"))
	s.False(s.mr.Exists(scope.Key() + ":list:notes"))
	s.True(s.mr.Exists(other.Key()))

	guilds, err := s.repo.ListGuilds(s.ctx, &ListGuildsInput{Cog: "donationlogger"})
	s.Require().NoError(err)
	s.Equal([]string{"guild-2"}, guilds)
}

func (s *RedisRepositoryTestSuite) TestClearCog() {
	s.Require().NoError(s.repo.Set(s.ctx, &SetInput{Scope: Guild("pressf", "1"), Fields: map[string]string{"emoji": "F"}}))
	s.Require().NoError(s.repo.Set(s.ctx, &SetInput{Scope: Member("pressf", "1", "2"), Fields: map[string]string{"x": "y"}}))
	s.Require().NoError(s.repo.Set(s.ctx, &SetInput{Scope: Guild("afk", "1"), Fields: map[string]string{"nick": "true"}}))

	s.Require().NoError(s.repo.ClearCog(s.ctx, &ClearCogInput{Cog: "pressf"}))

	s.False(s.mr.Exists(Guild("pressf", "1").Key()))
	s.False(s.mr.Exists(Member("pressf", "1", "2").Key()))
	s.False(s.mr.Exists("settings:pressf:guilds"))
	s.True(s.mr.Exists(Guild("afk", "1").Key()))
}
