package timer

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/common/clock/mocks"
	gatewayMocks "github.com/KirkDiggler/noobcogs/internal/gateway/mocks"
	"github.com/KirkDiggler/noobcogs/internal/models"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	settingsMocks "github.com/KirkDiggler/noobcogs/internal/repositories/settings/mocks"
	timerRepo "github.com/KirkDiggler/noobcogs/internal/repositories/timer"
	timerMocks "github.com/KirkDiggler/noobcogs/internal/repositories/timer/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TimerServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockTimerRepo    *timerMocks.MockRepository
	mockSettingsRepo *settingsMocks.MockRepository
	mockGateway      *gatewayMocks.MockGateway
	mockClock        *mocks.MockClock
	timerService     Service
	ctx              context.Context

	// Test data
	testTime      time.Time
	testGuildID   string
	testChannelID string
	testMessageID string
	testHostID    string
	testMemberID  string

	// Reusable test fixtures
	saleTimer *models.Timer
}

func (s *TimerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTimerRepo = timerMocks.NewMockRepository(s.mockCtrl)
	s.mockSettingsRepo = settingsMocks.NewMockRepository(s.mockCtrl)
	s.mockGateway = gatewayMocks.NewMockGateway(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGuildID = "test-guild-id"
	s.testChannelID = "test-channel-id"
	s.testMessageID = "test-message-id"
	s.testHostID = "test-host-id"
	s.testMemberID = "test-member-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.saleTimer = &models.Timer{
		GuildID:      s.testGuildID,
		MessageID:    s.testMessageID,
		ChannelID:    s.testChannelID,
		HostID:       s.testHostID,
		Title:        "Sale",
		EndTimestamp: s.testTime.Add(15 * time.Second).Unix(),
	}

	svc, err := New(&Config{
		TimerRepo:    s.mockTimerRepo,
		SettingsRepo: s.mockSettingsRepo,
		Gateway:      s.mockGateway,
		Clock:        s.mockClock,
	})
	s.Require().NoError(err)
	s.timerService = svc
}

func (s *TimerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *TimerServiceTestSuite) expectGuildSettings(fields map[string]string) {
	s.mockSettingsRepo.EXPECT().
		GetAll(gomock.Any(), &settingsRepo.GetAllInput{Scope: settingsRepo.Guild(cogName, s.testGuildID)}).
		Return(fields, nil)
}

func (s *TimerServiceTestSuite) expectGlobalSettings(fields map[string]string) {
	s.mockSettingsRepo.EXPECT().
		GetAll(gomock.Any(), &settingsRepo.GetAllInput{Scope: settingsRepo.Global(cogName)}).
		Return(fields, nil)
}

func (s *TimerServiceTestSuite) expectActiveTimer(timer *models.Timer) {
	s.mockTimerRepo.EXPECT().
		ListByGuild(gomock.Any(), &timerRepo.ListByGuildInput{GuildID: s.testGuildID}).
		Return(&timerRepo.ListByGuildOutput{Timers: []*models.Timer{timer}}, nil)
	s.mockTimerRepo.EXPECT().
		Get(gomock.Any(), &timerRepo.GetInput{GuildID: s.testGuildID, MessageID: timer.MessageID}).
		Return(timer, nil)
}

func (s *TimerServiceTestSuite) expectClaim(claimed bool) {
	s.mockTimerRepo.EXPECT().
		Claim(gomock.Any(), &timerRepo.ClaimInput{GuildID: s.testGuildID, MessageID: s.testMessageID, TTL: time.Minute}).
		Return(claimed, nil)
}

func (s *TimerServiceTestSuite) expectDelete() {
	s.mockTimerRepo.EXPECT().
		Delete(gomock.Any(), &timerRepo.DeleteInput{GuildID: s.testGuildID, MessageIDs: []string{s.testMessageID}}).
		Return(int64(1), nil)
}

// expectEndAction sets up the message edit, one notification chunk and the completion reply
func (s *TimerServiceTestSuite) expectEndAction(notification string, label string) {
	s.mockGateway.EXPECT().
		Message(gomock.Any(), s.testChannelID, s.testMessageID).
		Return(&discordgo.Message{ID: s.testMessageID}, nil)
	s.mockGateway.EXPECT().
		Member(gomock.Any(), s.testGuildID, gomock.Any()).
		Return(&discordgo.Member{}, nil).
		AnyTimes()

	s.mockGateway.EXPECT().
		EditMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, edit *discordgo.MessageEdit) (*discordgo.Message, error) {
			s.Require().NotNil(edit.Embeds)
			embed := (*edit.Embeds)[0]
			s.Equal("Sale", embed.Title)
			s.Equal("This timer has ended.\nHosted by: <@"+s.testHostID+">", embed.Description)
			s.Equal(ColourEnded, embed.Color)
			s.Equal("Ended at", embed.Footer.Text)

			button := (*edit.Components)[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
			s.Equal(label, button.Label)
			s.True(button.Disabled)
			s.Equal(discordgo.SecondaryButton, button.Style)
			return &discordgo.Message{ID: s.testMessageID}, nil
		})

	gomock.InOrder(
		s.mockGateway.EXPECT().
			SendMessage(gomock.Any(), s.testChannelID, &discordgo.MessageSend{Content: notification}).
			Return(&discordgo.Message{ID: "notification-id"}, nil),
		s.mockGateway.EXPECT().
			SendMessage(gomock.Any(), s.testChannelID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
				s.Equal("The timer for **Sale** has ended!", msg.Content)
				s.Require().NotNil(msg.Reference)
				s.Equal(s.testMessageID, msg.Reference.MessageID)
				s.Empty(msg.AllowedMentions.Parse)

				jump := msg.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
				s.Equal("Jump To Timer", jump.Label)
				s.Equal(models.JumpURL(s.testGuildID, s.testChannelID, s.testMessageID), jump.URL)
				return &discordgo.Message{ID: "reply-id"}, nil
			}),
	)

	s.mockGateway.EXPECT().DeleteMessageAfter(s.testChannelID, "notification-id", 3*time.Second)
}

func (s *TimerServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{SettingsRepo: s.mockSettingsRepo, Gateway: s.mockGateway, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilTimerRepo)

	_, err = New(&Config{TimerRepo: s.mockTimerRepo, SettingsRepo: s.mockSettingsRepo, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilGateway)
}

func (s *TimerServiceTestSuite) TestCreateTimer_Success() {
	s.expectGlobalSettings(map[string]string{})
	s.expectGuildSettings(map[string]string{})

	s.mockGateway.EXPECT().
		SendMessage(gomock.Any(), s.testChannelID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
			embed := msg.Embeds[0]
			s.Equal("Sale", embed.Title)
			s.Contains(embed.Description, "Click the ⏰ button to get notified when this timer ends.\n")
			s.Contains(embed.Description, "Hosted by: <@"+s.testHostID+">")
			s.Equal("Ends at", embed.Footer.Text)

			button := msg.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
			s.Equal("0", button.Label)
			s.Equal(NotifyButtonID, button.CustomID)
			s.False(button.Disabled)
			s.Equal(discordgo.SuccessButton, button.Style)
			return &discordgo.Message{ID: s.testMessageID}, nil
		})

	s.mockTimerRepo.EXPECT().
		Create(gomock.Any(), &timerRepo.CreateInput{Timer: s.saleTimer}).
		Return(nil)

	out, err := s.timerService.CreateTimer(s.ctx, &CreateTimerInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		HostID:    s.testHostID,
		Duration:  "15s",
		Title:     "Sale",
	})
	s.Require().NoError(err)
	s.Equal(s.testMessageID, out.Timer.MessageID)
	s.Equal(s.testTime.Unix()+15, out.Timer.EndTimestamp)
}

func (s *TimerServiceTestSuite) TestCreateTimer_DefaultTitleNotificationsOff() {
	s.expectGlobalSettings(map[string]string{})
	s.expectGuildSettings(map[string]string{fieldNotify: "false"})

	s.mockGateway.EXPECT().
		SendMessage(gomock.Any(), s.testChannelID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
			embed := msg.Embeds[0]
			s.Equal(DefaultTitle, embed.Title)
			s.NotContains(embed.Description, "Click the")

			button := msg.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
			s.Equal("Disabled", button.Label)
			s.True(button.Disabled)
			return &discordgo.Message{ID: s.testMessageID}, nil
		})
	s.mockTimerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	out, err := s.timerService.CreateTimer(s.ctx, &CreateTimerInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		HostID:    s.testHostID,
		Duration:  "1h30m",
	})
	s.Require().NoError(err)
	s.Equal(DefaultTitle, out.Timer.Title)
}

func (s *TimerServiceTestSuite) TestCreateTimer_TooShort() {
	s.expectGlobalSettings(map[string]string{})

	// No message is posted and no record is stored
	_, err := s.timerService.CreateTimer(s.ctx, &CreateTimerInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		HostID:    s.testHostID,
		Duration:  "5s",
	})
	s.ErrorIs(err, ErrDurationTooShort)
}

func (s *TimerServiceTestSuite) TestCreateTimer_TooLong() {
	s.expectGlobalSettings(map[string]string{fieldMaxDuration: "86400"})

	_, err := s.timerService.CreateTimer(s.ctx, &CreateTimerInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		HostID:    s.testHostID,
		Duration:  "2d",
	})
	s.EqualError(err, "Max duration for timers is: **1 day**.")
}

func (s *TimerServiceTestSuite) TestCheckExpired_EndsTimerPastDeadline() {
	expired := *s.saleTimer
	expired.Members = []string{s.testMemberID}
	later := &models.Timer{
		GuildID:      s.testGuildID,
		MessageID:    "later-message-id",
		EndTimestamp: s.testTime.Add(time.Hour).Unix(),
	}

	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockClock.EXPECT().Now().Return(s.testTime.Add(16 * time.Second)).AnyTimes()
	svc, err := New(&Config{
		TimerRepo:    s.mockTimerRepo,
		SettingsRepo: s.mockSettingsRepo,
		Gateway:      s.mockGateway,
		Clock:        s.mockClock,
	})
	s.Require().NoError(err)

	s.mockTimerRepo.EXPECT().ListGuilds(gomock.Any()).Return([]string{s.testGuildID}, nil)
	s.mockTimerRepo.EXPECT().
		ListByGuild(gomock.Any(), &timerRepo.ListByGuildInput{GuildID: s.testGuildID}).
		Return(&timerRepo.ListByGuildOutput{Timers: []*models.Timer{&expired, later}}, nil)
	s.expectClaim(true)
	s.expectGuildSettings(map[string]string{})
	s.expectEndAction("<@"+s.testHostID+">,<@"+s.testMemberID+">", "1")
	s.expectDelete()

	s.NoError(svc.CheckExpired(s.ctx))
}

func (s *TimerServiceTestSuite) TestCheckExpired_NothingDue() {
	s.mockTimerRepo.EXPECT().ListGuilds(gomock.Any()).Return([]string{s.testGuildID}, nil)
	s.mockTimerRepo.EXPECT().
		ListByGuild(gomock.Any(), &timerRepo.ListByGuildInput{GuildID: s.testGuildID}).
		Return(&timerRepo.ListByGuildOutput{Timers: []*models.Timer{s.saleTimer}}, nil)

	s.NoError(s.timerService.CheckExpired(s.ctx))
}

func (s *TimerServiceTestSuite) TestCheckExpired_MessageGoneDropsRecord() {
	expired := *s.saleTimer
	expired.EndTimestamp = s.testTime.Add(-time.Minute).Unix()

	s.mockTimerRepo.EXPECT().ListGuilds(gomock.Any()).Return([]string{s.testGuildID}, nil)
	s.mockTimerRepo.EXPECT().
		ListByGuild(gomock.Any(), gomock.Any()).
		Return(&timerRepo.ListByGuildOutput{Timers: []*models.Timer{&expired}}, nil)
	s.expectClaim(true)
	s.expectGuildSettings(map[string]string{})
	s.mockGateway.EXPECT().
		Message(gomock.Any(), s.testChannelID, s.testMessageID).
		Return(nil, &discordgo.RESTError{
			Response: &http.Response{StatusCode: http.StatusNotFound, Status: "404 Not Found"},
			Message:  &discordgo.APIErrorMessage{Code: discordgo.ErrCodeUnknownMessage},
		})
	s.expectDelete()

	s.NoError(s.timerService.CheckExpired(s.ctx))
}

func (s *TimerServiceTestSuite) TestCheckExpired_AlreadyClaimed() {
	expired := *s.saleTimer
	expired.EndTimestamp = s.testTime.Add(-time.Minute).Unix()

	s.mockTimerRepo.EXPECT().ListGuilds(gomock.Any()).Return([]string{s.testGuildID}, nil)
	s.mockTimerRepo.EXPECT().
		ListByGuild(gomock.Any(), gomock.Any()).
		Return(&timerRepo.ListByGuildOutput{Timers: []*models.Timer{&expired}}, nil)
	s.expectClaim(false)

	s.NoError(s.timerService.CheckExpired(s.ctx))
}

func (s *TimerServiceTestSuite) TestEndTimer_BeforeDeadline() {
	s.expectActiveTimer(s.saleTimer)
	s.expectClaim(true)
	s.expectGuildSettings(map[string]string{})
	s.expectEndAction("<@"+s.testHostID+">", "0")
	s.expectDelete()

	err := s.timerService.EndTimer(s.ctx, &EndTimerInput{
		GuildID:   s.testGuildID,
		MessageID: s.testMessageID,
		ActorID:   s.testHostID,
	})
	s.NoError(err)
}

func (s *TimerServiceTestSuite) TestEndTimer_NoTimers() {
	s.mockTimerRepo.EXPECT().
		ListByGuild(gomock.Any(), gomock.Any()).
		Return(&timerRepo.ListByGuildOutput{}, nil)

	err := s.timerService.EndTimer(s.ctx, &EndTimerInput{GuildID: s.testGuildID, MessageID: s.testMessageID})
	s.ErrorIs(err, ErrNoTimers)
}

func (s *TimerServiceTestSuite) TestEndTimer_UnknownMessage() {
	s.mockTimerRepo.EXPECT().
		ListByGuild(gomock.Any(), gomock.Any()).
		Return(&timerRepo.ListByGuildOutput{Timers: []*models.Timer{s.saleTimer}}, nil)
	s.mockTimerRepo.EXPECT().
		Get(gomock.Any(), &timerRepo.GetInput{GuildID: s.testGuildID, MessageID: "other"}).
		Return(nil, timerRepo.ErrTimerNotFound)

	err := s.timerService.EndTimer(s.ctx, &EndTimerInput{GuildID: s.testGuildID, MessageID: "other"})
	s.ErrorIs(err, ErrTimerNotFound)
}

func (s *TimerServiceTestSuite) TestEndTimer_ClaimedByPollLoop() {
	s.expectActiveTimer(s.saleTimer)
	s.expectClaim(false)

	err := s.timerService.EndTimer(s.ctx, &EndTimerInput{GuildID: s.testGuildID, MessageID: s.testMessageID, Moderator: true})
	s.ErrorIs(err, ErrTimerNotFound)
}

func (s *TimerServiceTestSuite) TestEndTimer_NotHost() {
	s.expectActiveTimer(s.saleTimer)

	err := s.timerService.EndTimer(s.ctx, &EndTimerInput{
		GuildID:   s.testGuildID,
		MessageID: s.testMessageID,
		ActorID:   s.testMemberID,
	})
	s.ErrorIs(err, ErrNotTimerHost)
}

func (s *TimerServiceTestSuite) TestCancelTimer_NotHost() {
	s.expectActiveTimer(s.saleTimer)

	err := s.timerService.CancelTimer(s.ctx, &CancelTimerInput{
		GuildID:     s.testGuildID,
		MessageID:   s.testMessageID,
		CancelledBy: s.testMemberID,
	})
	s.ErrorIs(err, ErrNotTimerHost)
}

func (s *TimerServiceTestSuite) TestCheckExpired_SkipsMembersWhoLeft() {
	expired := *s.saleTimer
	expired.EndTimestamp = s.testTime.Add(-time.Minute).Unix()
	expired.Members = []string{"left-id", s.testMemberID}

	unknownMember := &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusNotFound, Status: "404 Not Found"},
		Message:  &discordgo.APIErrorMessage{Code: discordgo.ErrCodeUnknownMember},
	}

	s.mockTimerRepo.EXPECT().ListGuilds(gomock.Any()).Return([]string{s.testGuildID}, nil)
	s.mockTimerRepo.EXPECT().
		ListByGuild(gomock.Any(), gomock.Any()).
		Return(&timerRepo.ListByGuildOutput{Timers: []*models.Timer{&expired}}, nil)
	s.expectClaim(true)
	s.expectGuildSettings(map[string]string{})
	s.mockGateway.EXPECT().
		Message(gomock.Any(), s.testChannelID, s.testMessageID).
		Return(&discordgo.Message{ID: s.testMessageID}, nil)
	s.mockGateway.EXPECT().Member(gomock.Any(), s.testGuildID, s.testHostID).Return(nil, unknownMember)
	s.mockGateway.EXPECT().Member(gomock.Any(), s.testGuildID, "left-id").Return(nil, unknownMember)
	s.mockGateway.EXPECT().Member(gomock.Any(), s.testGuildID, s.testMemberID).Return(&discordgo.Member{}, nil)
	s.mockGateway.EXPECT().
		EditMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, edit *discordgo.MessageEdit) (*discordgo.Message, error) {
			s.Equal("This timer has ended.\nHosted by: [Host not found in guild]", (*edit.Embeds)[0].Description)

			button := (*edit.Components)[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
			s.Equal("2", button.Label)
			return &discordgo.Message{}, nil
		})

	var sent []string
	s.mockGateway.EXPECT().
		SendMessage(gomock.Any(), s.testChannelID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
			sent = append(sent, msg.Content)
			return &discordgo.Message{ID: "sent-id"}, nil
		}).
		Times(2)
	s.mockGateway.EXPECT().DeleteMessageAfter(s.testChannelID, "sent-id", 3*time.Second)
	s.expectDelete()

	s.NoError(s.timerService.CheckExpired(s.ctx))

	s.Equal([]string{"<@" + s.testMemberID + ">", "The timer for **Sale** has ended!"}, sent)
}

// interruptedPoll runs a poll over two expired timers in Redis and calls
// interrupt while the first one is being ended. It returns how many
// completion replies each timer got.
func (s *TimerServiceTestSuite) interruptedPoll(interrupt func(svc Service)) map[string]int {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo, err := timerRepo.NewRedis(&timerRepo.Config{RedisClient: client})
	s.Require().NoError(err)

	for i, id := range []string{"first-id", "second-id"} {
		t := *s.saleTimer
		t.MessageID = id
		t.EndTimestamp = s.testTime.Add(time.Duration(i-2) * time.Minute).Unix()
		s.Require().NoError(repo.Create(s.ctx, &timerRepo.CreateInput{Timer: &t}))
	}

	svc, err := New(&Config{
		TimerRepo:    repo,
		SettingsRepo: s.mockSettingsRepo,
		Gateway:      s.mockGateway,
		Clock:        s.mockClock,
	})
	s.Require().NoError(err)

	s.mockSettingsRepo.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(map[string]string{}, nil).AnyTimes()
	s.mockGateway.EXPECT().Member(gomock.Any(), gomock.Any(), gomock.Any()).Return(&discordgo.Member{}, nil).AnyTimes()
	s.mockGateway.EXPECT().EditMessage(gomock.Any(), gomock.Any()).Return(&discordgo.Message{}, nil).AnyTimes()
	s.mockGateway.EXPECT().DeleteMessageAfter(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.mockGateway.EXPECT().
		Message(gomock.Any(), s.testChannelID, "first-id").
		DoAndReturn(func(context.Context, string, string) (*discordgo.Message, error) {
			interrupt(svc)
			return &discordgo.Message{ID: "first-id"}, nil
		})
	s.mockGateway.EXPECT().
		Message(gomock.Any(), s.testChannelID, "second-id").
		Return(&discordgo.Message{ID: "second-id"}, nil).
		AnyTimes()

	replies := map[string]int{}
	s.mockGateway.EXPECT().
		SendMessage(gomock.Any(), s.testChannelID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
			if msg.Reference != nil {
				replies[msg.Reference.MessageID]++
			}
			return &discordgo.Message{ID: "sent-id"}, nil
		}).
		AnyTimes()

	s.Require().NoError(svc.CheckExpired(s.ctx))

	guilds, err := repo.ListGuilds(s.ctx)
	s.Require().NoError(err)
	for _, guildID := range guilds {
		out, err := repo.ListByGuild(s.ctx, &timerRepo.ListByGuildInput{GuildID: guildID})
		s.Require().NoError(err)
		s.Empty(out.Timers)
	}

	return replies
}

func (s *TimerServiceTestSuite) TestCheckExpired_ManualEndDuringPoll() {
	replies := s.interruptedPoll(func(svc Service) {
		err := svc.EndTimer(s.ctx, &EndTimerInput{GuildID: s.testGuildID, MessageID: "second-id", Moderator: true})
		s.Require().NoError(err)
	})

	s.Equal(map[string]int{"first-id": 1, "second-id": 1}, replies)
}

func (s *TimerServiceTestSuite) TestCheckExpired_CancelDuringPoll() {
	replies := s.interruptedPoll(func(svc Service) {
		err := svc.CancelTimer(s.ctx, &CancelTimerInput{
			GuildID:     s.testGuildID,
			MessageID:   "second-id",
			CancelledBy: "mod-id",
			Moderator:   true,
		})
		s.Require().NoError(err)
	})

	s.Equal(map[string]int{"first-id": 1}, replies)
}

func (s *TimerServiceTestSuite) TestCancelTimer_NoNotificationOrReply() {
	s.expectActiveTimer(s.saleTimer)
	s.expectClaim(true)
	s.expectDelete()
	s.expectGuildSettings(map[string]string{})

	s.mockGateway.EXPECT().
		Message(gomock.Any(), s.testChannelID, s.testMessageID).
		Return(&discordgo.Message{
			ID:     s.testMessageID,
			Embeds: []*discordgo.MessageEmbed{{Title: "Sale", Description: "running"}},
		}, nil)
	s.mockGateway.EXPECT().
		EditMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, edit *discordgo.MessageEdit) (*discordgo.Message, error) {
			embed := (*edit.Embeds)[0]
			s.Equal("Sale", embed.Title)
			s.Equal("This timer was cancelled.\nCancelled by: <@mod-id>", embed.Description)
			s.Equal(ColourCancelled, embed.Color)
			s.Equal("Cancelled at", embed.Footer.Text)

			button := (*edit.Components)[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
			s.True(button.Disabled)
			return &discordgo.Message{}, nil
		})

	err := s.timerService.CancelTimer(s.ctx, &CancelTimerInput{
		GuildID:     s.testGuildID,
		MessageID:   s.testMessageID,
		CancelledBy: "mod-id",
		Moderator:   true,
	})
	s.NoError(err)
}

func (s *TimerServiceTestSuite) TestOptIn_Success() {
	s.expectGuildSettings(map[string]string{})
	s.mockTimerRepo.EXPECT().
		Get(gomock.Any(), &timerRepo.GetInput{GuildID: s.testGuildID, MessageID: s.testMessageID}).
		Return(s.saleTimer, nil)
	s.mockTimerRepo.EXPECT().
		AddMember(gomock.Any(), &timerRepo.AddMemberInput{GuildID: s.testGuildID, MessageID: s.testMessageID, UserID: s.testMemberID}).
		Return(true, nil)

	out, err := s.timerService.OptIn(s.ctx, &OptInInput{GuildID: s.testGuildID, MessageID: s.testMessageID, UserID: s.testMemberID})
	s.Require().NoError(err)
	s.Equal(1, out.MemberCount)

	button := out.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
	s.Equal("1", button.Label)
}

func (s *TimerServiceTestSuite) TestOptIn_Duplicate() {
	withMember := *s.saleTimer
	withMember.Members = []string{s.testMemberID}

	s.expectGuildSettings(map[string]string{})
	s.mockTimerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&withMember, nil)
	s.mockTimerRepo.EXPECT().AddMember(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := s.timerService.OptIn(s.ctx, &OptInInput{GuildID: s.testGuildID, MessageID: s.testMessageID, UserID: s.testMemberID})
	s.ErrorIs(err, ErrAlreadyNotified)
}

func (s *TimerServiceTestSuite) TestOptIn_Host() {
	s.expectGuildSettings(map[string]string{})
	s.mockTimerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(s.saleTimer, nil)

	_, err := s.timerService.OptIn(s.ctx, &OptInInput{GuildID: s.testGuildID, MessageID: s.testMessageID, UserID: s.testHostID})
	s.ErrorIs(err, ErrHostOptIn)
}

func (s *TimerServiceTestSuite) TestOptIn_NotificationsOff() {
	s.expectGuildSettings(map[string]string{fieldNotify: "false"})

	_, err := s.timerService.OptIn(s.ctx, &OptInInput{GuildID: s.testGuildID, MessageID: s.testMessageID, UserID: s.testMemberID})
	s.ErrorIs(err, ErrNotificationsOff)
}

func (s *TimerServiceTestSuite) TestHandleMessageDelete() {
	s.mockTimerRepo.EXPECT().
		Delete(gomock.Any(), &timerRepo.DeleteInput{GuildID: s.testGuildID, MessageIDs: []string{s.testMessageID, "other"}}).
		Return(int64(1), nil)

	err := s.timerService.HandleMessageDelete(s.ctx, &HandleMessageDeleteInput{
		GuildID:    s.testGuildID,
		MessageIDs: []string{s.testMessageID, "other"},
	})
	s.NoError(err)
}

func (s *TimerServiceTestSuite) TestHandleMessageDelete_DirectMessage() {
	err := s.timerService.HandleMessageDelete(s.ctx, &HandleMessageDeleteInput{MessageIDs: []string{s.testMessageID}})
	s.NoError(err)
}

func (s *TimerServiceTestSuite) TestSetMaxDuration() {
	s.ErrorIs(s.timerService.SetMaxDuration(s.ctx, &SetMaxDurationInput{Duration: "5s"}), ErrInvalidMaxDuration)
	s.ErrorIs(s.timerService.SetMaxDuration(s.ctx, &SetMaxDurationInput{Duration: "15d"}), ErrInvalidMaxDuration)
	s.ErrorIs(s.timerService.SetMaxDuration(s.ctx, &SetMaxDurationInput{Duration: "soon"}), ErrInvalidMaxDuration)

	s.mockSettingsRepo.EXPECT().
		Set(gomock.Any(), &settingsRepo.SetInput{
			Scope:  settingsRepo.Global(cogName),
			Fields: map[string]string{fieldMaxDuration: "604800"},
		}).
		Return(nil)

	s.NoError(s.timerService.SetMaxDuration(s.ctx, &SetMaxDurationInput{Duration: "7d"}))
}

func (s *TimerServiceTestSuite) TestSetButtonColour() {
	s.ErrorIs(s.timerService.SetButtonColour(s.ctx, &SetButtonColourInput{
		GuildID: s.testGuildID,
		State:   ButtonStateEnded,
		Colour:  "purple",
	}), ErrInvalidButtonColour)

	s.mockSettingsRepo.EXPECT().
		Set(gomock.Any(), &settingsRepo.SetInput{
			Scope:  settingsRepo.Guild(cogName, s.testGuildID),
			Fields: map[string]string{fieldEndedColour: "grey"},
		}).
		Return(nil)
	s.NoError(s.timerService.SetButtonColour(s.ctx, &SetButtonColourInput{
		GuildID: s.testGuildID,
		State:   ButtonStateEnded,
		Colour:  "Gray",
	}))

	s.mockSettingsRepo.EXPECT().
		DeleteFields(gomock.Any(), &settingsRepo.DeleteFieldsInput{
			Scope:  settingsRepo.Guild(cogName, s.testGuildID),
			Fields: []string{fieldStartedColour},
		}).
		Return(int64(1), nil)
	s.NoError(s.timerService.SetButtonColour(s.ctx, &SetButtonColourInput{
		GuildID: s.testGuildID,
		State:   ButtonStateStarted,
		Colour:  "reset",
	}))
}

func (s *TimerServiceTestSuite) TestToggleNotify() {
	s.expectGuildSettings(map[string]string{})
	s.mockSettingsRepo.EXPECT().
		Set(gomock.Any(), &settingsRepo.SetInput{
			Scope:  settingsRepo.Guild(cogName, s.testGuildID),
			Fields: map[string]string{fieldNotify: "false"},
		}).
		Return(nil)

	out, err := s.timerService.ToggleNotify(s.ctx, &ToggleNotifyInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.False(out.NotifyMembers)
}

func (s *TimerServiceTestSuite) TestResetGuild() {
	s.mockSettingsRepo.EXPECT().
		Clear(gomock.Any(), &settingsRepo.ClearInput{Scope: settingsRepo.Guild(cogName, s.testGuildID)}).
		Return(nil)
	s.mockTimerRepo.EXPECT().
		DeleteGuild(gomock.Any(), &timerRepo.DeleteGuildInput{GuildID: s.testGuildID}).
		Return(nil)

	s.NoError(s.timerService.ResetGuild(s.ctx, &ResetGuildInput{GuildID: s.testGuildID}))
}

func (s *TimerServiceTestSuite) TestRun_StopsOnCancel() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		s.timerService.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("poll loop did not stop")
	}
}

func TestTimerServiceSuite(t *testing.T) {
	suite.Run(t, new(TimerServiceTestSuite))
}
