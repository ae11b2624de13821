package customerror

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/common/clock/mocks"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CustomErrorServiceTestSuite struct {
	suite.Suite
	mr                 *miniredis.Miniredis
	client             *redis.Client
	mockCtrl           *gomock.Controller
	mockClock          *mocks.MockClock
	customErrorService Service
	ctx                context.Context

	testTime    time.Time
	testContext *CommandContext
}

func (s *CustomErrorServiceTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	repo, err := settingsRepo.NewRedis(&settingsRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{SettingsRepo: repo, Clock: s.mockClock})
	s.Require().NoError(err)
	s.customErrorService = svc
	s.ctx = context.Background()

	s.testContext = &CommandContext{
		AuthorName:     "noob",
		AuthorID:       "42",
		GuildName:      "Noob Guild",
		GuildID:        "7",
		ChannelName:    "general",
		ChannelID:      "9",
		Prefix:         "/",
		Command:        "timer start",
		MessageContent: "/timer start 1h",
		MessageID:      "11",
		MessageJumpURL: "https://discord.com/channels/7/9/11",
		Err:            errors.New("boom"),
	}
}

func (s *CustomErrorServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestCustomErrorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomErrorServiceTestSuite))
}

func (s *CustomErrorServiceTestSuite) TestRenderPlaceholders() {
	out := Render("{author}|{author(id)}|{author(mention)}|{guild}|{guild(id)}|{channel}|{channel(id)}|{channel(mention)}|{prefix}|{error}|{command}|{message_content}|{message_id}|{message_jump_url}", s.testContext)
	s.Equal("noob|42|<@42>|Noob Guild|7|general|9|<#9>|/|boom|timer start|/timer start 1h|11|https://discord.com/channels/7/9/11", out)
}

func (s *CustomErrorServiceTestSuite) TestRenderLeavesUnknownPlaceholders() {
	s.Equal("{unknown} timer start {author(name)}", Render("{unknown} {command} {author(name)}", s.testContext))
}

func (s *CustomErrorServiceTestSuite) TestReportUsesDefaultMessage() {
	out, err := s.customErrorService.Report(s.ctx, &ReportInput{Context: s.testContext})
	s.Require().NoError(err)
	s.Equal("`Error in command 'timer start'. Check your console or logs for details.`", out.Content)

	last, err := s.customErrorService.LastError(s.ctx)
	s.Require().NoError(err)
	s.Equal("timer start", last.Command)
	s.Equal("boom", last.Error)
	s.Equal(s.testTime, last.ReportedAt)
}

func (s *CustomErrorServiceTestSuite) TestNoLastError() {
	_, err := s.customErrorService.LastError(s.ctx)
	s.ErrorIs(err, ErrNoLastError)
}

func (s *CustomErrorServiceTestSuite) TestSetMessage() {
	s.Require().NoError(s.customErrorService.SetMessage(s.ctx, &SetMessageInput{Message: "Oops {author(mention)}: {error}"}))

	out, err := s.customErrorService.Report(s.ctx, &ReportInput{Context: s.testContext})
	s.Require().NoError(err)
	s.Equal("Oops <@42>: boom", out.Content)

	s.Require().NoError(s.customErrorService.SetMessage(s.ctx, &SetMessageInput{}))

	settings, err := s.customErrorService.GetSettings(s.ctx, &GetSettingsInput{})
	s.Require().NoError(err)
	s.Equal(DefaultMessage, settings.Template)
}

func (s *CustomErrorServiceTestSuite) TestPreviewUsesTestError() {
	s.Require().NoError(s.customErrorService.SetMessage(s.ctx, &SetMessageInput{Message: "{command}: {error}"}))

	preview := *s.testContext
	preview.Err = nil
	preview.Command = "customerror showsettings"

	out, err := s.customErrorService.GetSettings(s.ctx, &GetSettingsInput{Preview: &preview})
	s.Require().NoError(err)
	s.Equal("{command}: {error}", out.Template)
	s.Equal("customerror showsettings: This is a test error.", out.Preview)
}

func (s *CustomErrorServiceTestSuite) TestReset() {
	s.Require().NoError(s.customErrorService.SetMessage(s.ctx, &SetMessageInput{Message: "custom"}))
	_, err := s.customErrorService.Report(s.ctx, &ReportInput{Context: s.testContext})
	s.Require().NoError(err)

	s.Require().NoError(s.customErrorService.Reset(s.ctx))

	_, err = s.customErrorService.LastError(s.ctx)
	s.ErrorIs(err, ErrNoLastError)

	settings, err := s.customErrorService.GetSettings(s.ctx, &GetSettingsInput{})
	s.Require().NoError(err)
	s.Equal(DefaultMessage, settings.Template)
}
