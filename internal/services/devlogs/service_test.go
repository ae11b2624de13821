package devlogs_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/noobcogs/internal/common/clock/mocks"
	gatewayMocks "github.com/KirkDiggler/noobcogs/internal/gateway/mocks"
	"github.com/KirkDiggler/noobcogs/internal/models"
	devlogRepo "github.com/KirkDiggler/noobcogs/internal/repositories/devlog"
	devlogMocks "github.com/KirkDiggler/noobcogs/internal/repositories/devlog/mocks"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"github.com/KirkDiggler/noobcogs/internal/services/devlogs"
	"github.com/KirkDiggler/noobcogs/internal/services/devlogs/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DevLogsServiceTestSuite struct {
	suite.Suite
	mr             *miniredis.Miniredis
	client         *redis.Client
	mockCtrl       *gomock.Controller
	mockGateway    *gatewayMocks.MockGateway
	mockClock      *clockMocks.MockClock
	mockDevLogRepo *devlogMocks.MockRepository
	mockSystemInfo *mocks.MockSystemInfo
	devLogsService devlogs.Service
	ctx            context.Context

	testTime  time.Time
	testInput *devlogs.OnCommandCompleteInput
}

func (s *DevLogsServiceTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	repo, err := settingsRepo.NewRedis(&settingsRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = gatewayMocks.NewMockGateway(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockDevLogRepo = devlogMocks.NewMockRepository(s.mockCtrl)
	s.mockSystemInfo = mocks.NewMockSystemInfo(s.mockCtrl)

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := devlogs.New(&devlogs.Config{
		SettingsRepo: repo,
		DevLogRepo:   s.mockDevLogRepo,
		Gateway:      s.mockGateway,
		SystemInfo:   s.mockSystemInfo,
		Clock:        s.mockClock,
		OwnerIDs:     []string{"owner-1", "owner-2"},
	})
	s.Require().NoError(err)
	s.devLogsService = svc
	s.ctx = context.Background()

	s.testInput = &devlogs.OnCommandCompleteInput{
		Command:     "eval",
		Content:     "/eval code:```print(1)```",
		AuthorID:    "owner-1",
		AuthorName:  "noob",
		GuildID:     "guild-1",
		GuildName:   "Noob Guild",
		ChannelID:   "channel-1",
		ChannelName: "general",
		JumpURL:     "https://discord.com/channels/guild-1/channel-1/1",
	}
}

func (s *DevLogsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestDevLogsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DevLogsServiceTestSuite))
}

func (s *DevLogsServiceTestSuite) expectSave() {
	s.mockDevLogRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *devlogRepo.SaveInput) error {
			s.Equal("eval", input.Entry.Command)
			s.Equal("/eval code:print(1)", input.Entry.Content)
			s.Equal(s.testTime, input.Entry.CreatedAt)
			input.Entry.ID = 1
			return nil
		})
}

func (s *DevLogsServiceTestSuite) TestLogsWatchedOwnerCommand() {
	s.Require().NoError(s.devLogsService.SetChannel(s.ctx, &devlogs.SetChannelInput{ChannelID: "logs"}))

	s.expectSave()
	s.mockGateway.EXPECT().
		SendMessage(gomock.Any(), "logs", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
			embed := msg.Embeds[0]
			s.Equal("EVAL Logs", embed.Title)
			s.Equal("```py\n/eval code:print(1)\n```", embed.Description)
			s.Require().Len(embed.Fields, 3)
			s.Equal("Channel", embed.Fields[0].Name)
			s.Equal("<#channel-1>\ngeneral\n(channel-1)", embed.Fields[0].Value)
			s.Equal("Noob Guild\n(guild-1)", embed.Fields[1].Value)
			s.Equal("noob\n(owner-1)", embed.Fields[2].Value)

			row := msg.Components[0].(discordgo.ActionsRow)
			button := row.Components[0].(discordgo.Button)
			s.Equal("Jump To Command", button.Label)
			s.Equal(s.testInput.JumpURL, button.URL)
			return &discordgo.Message{}, nil
		})

	out, err := s.devLogsService.OnCommandComplete(s.ctx, s.testInput)
	s.Require().NoError(err)
	s.True(out.Logged)
	s.True(out.Sent)
	s.Equal(int64(1), out.Entry.ID)
}

func (s *DevLogsServiceTestSuite) TestDMsField() {
	s.Require().NoError(s.devLogsService.SetChannel(s.ctx, &devlogs.SetChannelInput{ChannelID: "logs"}))
	s.testInput.GuildID = ""

	s.expectSave()
	s.mockGateway.EXPECT().
		SendMessage(gomock.Any(), "logs", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
			fields := msg.Embeds[0].Fields
			s.Require().Len(fields, 2)
			s.Equal("DMs", fields[0].Value)
			return &discordgo.Message{}, nil
		})

	_, err := s.devLogsService.OnCommandComplete(s.ctx, s.testInput)
	s.Require().NoError(err)
}

func (s *DevLogsServiceTestSuite) TestArchivesWithoutChannel() {
	s.expectSave()

	out, err := s.devLogsService.OnCommandComplete(s.ctx, s.testInput)
	s.Require().NoError(err)
	s.True(out.Logged)
	s.False(out.Sent)
}

func (s *DevLogsServiceTestSuite) TestSendFailureIsLogged() {
	s.Require().NoError(s.devLogsService.SetChannel(s.ctx, &devlogs.SetChannelInput{ChannelID: "logs"}))

	s.expectSave()
	s.mockGateway.EXPECT().SendMessage(gomock.Any(), "logs", gomock.Any()).Return(nil, errors.New("forbidden"))

	out, err := s.devLogsService.OnCommandComplete(s.ctx, s.testInput)
	s.Require().NoError(err)
	s.True(out.Logged)
	s.False(out.Sent)
}

func (s *DevLogsServiceTestSuite) TestSkipsNonOwners() {
	s.testInput.AuthorID = "someone"

	out, err := s.devLogsService.OnCommandComplete(s.ctx, s.testInput)
	s.Require().NoError(err)
	s.False(out.Logged)
}

func (s *DevLogsServiceTestSuite) TestSkipsUnwatchedCommands() {
	s.testInput.Command = "ping"

	out, err := s.devLogsService.OnCommandComplete(s.ctx, s.testInput)
	s.Require().NoError(err)
	s.False(out.Logged)
}

func (s *DevLogsServiceTestSuite) TestBypass() {
	s.Require().NoError(s.devLogsService.BypassAdd(s.ctx, &devlogs.BypassInput{UserID: "owner-1"}))
	s.ErrorIs(s.devLogsService.BypassAdd(s.ctx, &devlogs.BypassInput{UserID: "owner-1"}), devlogs.ErrAlreadyBypassed)

	out, err := s.devLogsService.OnCommandComplete(s.ctx, s.testInput)
	s.Require().NoError(err)
	s.False(out.Logged)

	list, err := s.devLogsService.BypassList(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"owner-1"}, list.UserIDs)
	s.Equal([]string{"` - ` <@owner-1> (`owner-1`)."}, list.Pages)

	s.Require().NoError(s.devLogsService.BypassRemove(s.ctx, &devlogs.BypassInput{UserID: "owner-1"}))
	s.ErrorIs(s.devLogsService.BypassRemove(s.ctx, &devlogs.BypassInput{UserID: "owner-1"}), devlogs.ErrNotBypassed)

	_, err = s.devLogsService.BypassList(s.ctx)
	s.ErrorIs(err, devlogs.ErrNoBypass)
}

func (s *DevLogsServiceTestSuite) TestWatch() {
	settings, err := s.devLogsService.GetSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"eval", "debug"}, settings.Settings.Watched)

	s.Require().NoError(s.devLogsService.Unwatch(s.ctx, &devlogs.WatchInput{Command: "eval"}))
	s.Require().NoError(s.devLogsService.Watch(s.ctx, &devlogs.WatchInput{Command: "Shell"}))
	s.ErrorIs(s.devLogsService.Watch(s.ctx, &devlogs.WatchInput{Command: "shell"}), devlogs.ErrAlreadyWatched)
	s.ErrorIs(s.devLogsService.Unwatch(s.ctx, &devlogs.WatchInput{Command: "eval"}), devlogs.ErrNotWatched)

	settings, err = s.devLogsService.GetSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"debug", "shell"}, settings.Settings.Watched)

	out, err := s.devLogsService.OnCommandComplete(s.ctx, s.testInput)
	s.Require().NoError(err)
	s.False(out.Logged)

	s.Require().NoError(s.devLogsService.Reset(s.ctx))
	settings, err = s.devLogsService.GetSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"eval", "debug"}, settings.Settings.Watched)
}

func (s *DevLogsServiceTestSuite) TestHistory() {
	s.mockDevLogRepo.EXPECT().
		Recent(gomock.Any(), &devlogRepo.RecentInput{Limit: 10}).
		Return([]*models.DevLogEntry{{ID: 3, Command: "eval", Content: "/eval `1+1`", AuthorID: "owner-1", CreatedAt: s.testTime}}, nil)

	out, err := s.devLogsService.History(s.ctx, &devlogs.HistoryInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Pages, 1)
	s.True(strings.HasPrefix(out.Pages[0], "` 3. ` **eval** by <@owner-1> <t:1745064000:R>"))
	s.True(strings.HasSuffix(out.Pages[0], "`/eval 1+1`"))
}

func (s *DevLogsServiceTestSuite) TestHistoryEmpty() {
	s.mockDevLogRepo.EXPECT().
		Recent(gomock.Any(), &devlogRepo.RecentInput{Limit: 50, AuthorID: "owner-2"}).
		Return([]*models.DevLogEntry{}, nil)

	_, err := s.devLogsService.History(s.ctx, &devlogs.HistoryInput{Limit: 500, AuthorID: "owner-2"})
	s.ErrorIs(err, devlogs.ErrNoHistory)
}

func (s *DevLogsServiceTestSuite) TestDebug() {
	s.mockSystemInfo.EXPECT().Collect(gomock.Any()).Return(&devlogs.SystemReport{CPUCount: 8}, nil)

	report, err := s.devLogsService.Debug(s.ctx)
	s.Require().NoError(err)
	s.Equal(8, report.CPUCount)
}

func (s *DevLogsServiceTestSuite) TestIsOwner() {
	s.True(s.devLogsService.IsOwner("owner-2"))
	s.False(s.devLogsService.IsOwner(""))
	s.False(s.devLogsService.IsOwner("someone"))
}
