package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/noobcogs/internal/common/timeout"
	uuidMocks "github.com/KirkDiggler/noobcogs/internal/common/uuid/mocks"
	gatewayMocks "github.com/KirkDiggler/noobcogs/internal/gateway/mocks"
	"github.com/KirkDiggler/noobcogs/internal/models"
	afkMocks "github.com/KirkDiggler/noobcogs/internal/services/afk/mocks"
	"github.com/KirkDiggler/noobcogs/internal/services/customerror"
	customErrorMocks "github.com/KirkDiggler/noobcogs/internal/services/customerror/mocks"
	"github.com/KirkDiggler/noobcogs/internal/services/devlogs"
	devLogsMocks "github.com/KirkDiggler/noobcogs/internal/services/devlogs/mocks"
	donationMocks "github.com/KirkDiggler/noobcogs/internal/services/donation/mocks"
	"github.com/KirkDiggler/noobcogs/internal/services/timer"
	timerMocks "github.com/KirkDiggler/noobcogs/internal/services/timer/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeSession records what the bot sends back for an interaction
type fakeSession struct {
	responses []*discordgo.InteractionResponse
	followups []*discordgo.WebhookParams
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeSession) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.followups = append(f.followups, data)
	return &discordgo.Message{ID: "followup"}, nil
}

func (f *fakeSession) last() *discordgo.InteractionResponse {
	if len(f.responses) == 0 {
		return nil
	}
	return f.responses[len(f.responses)-1]
}

type BotTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockGateway     *gatewayMocks.MockGateway
	mockCustomError *customErrorMocks.MockService
	mockDevLogs     *devLogsMocks.MockService
	mockUUID        *uuidMocks.MockUUID
	mockTimer       *timerMocks.MockService
	mockAFK         *afkMocks.MockService
	mockDonation    *donationMocks.MockService
	timeouts        *timeout.Fake
	session         *fakeSession
	bot             *Bot
	ctx             context.Context

	// Test data
	testGuildID   string
	testChannelID string
	testUserID    string
	testOwnerID   string
}

func (s *BotTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = gatewayMocks.NewMockGateway(s.mockCtrl)
	s.mockCustomError = customErrorMocks.NewMockService(s.mockCtrl)
	s.mockDevLogs = devLogsMocks.NewMockService(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockTimer = timerMocks.NewMockService(s.mockCtrl)
	s.mockAFK = afkMocks.NewMockService(s.mockCtrl)
	s.mockDonation = donationMocks.NewMockService(s.mockCtrl)
	s.timeouts = &timeout.Fake{}
	s.session = &fakeSession{}
	s.ctx = context.Background()

	s.testGuildID = "test-guild-id"
	s.testChannelID = "test-channel-id"
	s.testUserID = "test-user-id"
	s.testOwnerID = "test-owner-id"

	bot, err := newBot(&Config{
		OwnerIDs:    []string{s.testOwnerID},
		Gateway:     s.mockGateway,
		CustomError: s.mockCustomError,
		DevLogs:     s.mockDevLogs,
		UUID:        s.mockUUID,
		Modules: []Module{
			NewTimerCommand(s.mockTimer, nil),
			NewAFKCommand(s.mockAFK, s.mockGateway, nil),
			NewDonationCommand(s.mockDonation),
		},
	})
	s.Require().NoError(err)

	bot.prompts = newPrompts(s.mockUUID, timeout.New(s.timeouts.AfterFunc))
	bot.pages = newPaginator(s.mockUUID, timeout.New(s.timeouts.AfterFunc))
	s.bot = bot
}

func (s *BotTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *BotTestSuite) interaction(userID string, perms int64) *discordgo.Interaction {
	return &discordgo.Interaction{
		ID:        "test-interaction-id",
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		Member: &discordgo.Member{
			User:        &discordgo.User{ID: userID, Username: "tester"},
			Roles:       []string{"manager-role"},
			Permissions: perms,
		},
	}
}

func (s *BotTestSuite) command(userID, name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	i := s.interaction(userID, 0)
	i.Type = discordgo.InteractionApplicationCommand
	i.Data = discordgo.ApplicationCommandInteractionData{Name: name, Options: options}
	return &discordgo.InteractionCreate{Interaction: i}
}

func (s *BotTestSuite) component(userID, customID string) *discordgo.InteractionCreate {
	i := s.interaction(userID, 0)
	i.Type = discordgo.InteractionMessageComponent
	i.Message = &discordgo.Message{ID: "test-message-id", ChannelID: s.testChannelID, Content: "timer"}
	i.Data = discordgo.MessageComponentInteractionData{CustomID: customID, ComponentType: discordgo.ButtonComponent}
	return &discordgo.InteractionCreate{Interaction: i}
}

func sub(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: options,
	}
}

func str(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func integer(name string, value int64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(value)}
}

func user(name, id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionUser, Value: id}
}

func (s *BotTestSuite) expectCompleted(command, content string) {
	s.mockDevLogs.EXPECT().
		OnCommandComplete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *devlogs.OnCommandCompleteInput) (*devlogs.OnCommandCompleteOutput, error) {
			s.Equal(command, input.Command)
			s.Equal(content, input.Content)
			s.Equal(s.testGuildID, input.GuildID)
			return &devlogs.OnCommandCompleteOutput{}, nil
		})
}

func (s *BotTestSuite) TestCommandRepliesAndLogs() {
	s.mockTimer.EXPECT().
		CreateTimer(s.ctx, &timer.CreateTimerInput{
			GuildID:   s.testGuildID,
			ChannelID: s.testChannelID,
			HostID:    s.testUserID,
			Duration:  "1h",
			Title:     "Sale",
		}).
		Return(&timer.CreateTimerOutput{Timer: &models.Timer{Title: "Sale", EndTimestamp: 1700003600}}, nil)
	s.expectCompleted("timer", "/timer start duration:1h title:Sale")

	s.bot.route(s.ctx, s.session, s.command(s.testUserID, "timer", sub("start", str("duration", "1h"), str("title", "Sale"))))

	s.Require().Len(s.session.responses, 1)
	resp := s.session.last()
	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	s.Equal("Timer **Sale** started, it ends <t:1700003600:R>.", resp.Data.Content)
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
}

func (s *BotTestSuite) TestUserErrorIsRepliedWithoutReport() {
	s.mockTimer.EXPECT().
		CreateTimer(s.ctx, gomock.Any()).
		Return(nil, timer.ErrDurationTooShort)

	s.bot.route(s.ctx, s.session, s.command(s.testUserID, "timer", sub("start", str("duration", "5s"))))

	s.Require().Len(s.session.responses, 1)
	s.Equal(timer.ErrDurationTooShort.Error(), s.session.last().Data.Content)
	s.Equal(discordgo.MessageFlagsEphemeral, s.session.last().Data.Flags)
}

func (s *BotTestSuite) TestUnexpectedErrorIsReported() {
	failure := errors.New("redis is down")
	s.mockTimer.EXPECT().
		CreateTimer(s.ctx, gomock.Any()).
		Return(nil, failure)
	s.mockCustomError.EXPECT().
		Report(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *customerror.ReportInput) (*customerror.ReportOutput, error) {
			s.Equal("timer start", input.Context.Command)
			s.Equal(s.testUserID, input.Context.AuthorID)
			s.Equal("/", input.Context.Prefix)
			s.ErrorIs(input.Context.Err, failure)
			return &customerror.ReportOutput{Content: "`Error in command 'timer start'.`"}, nil
		})

	s.bot.route(s.ctx, s.session, s.command(s.testUserID, "timer", sub("start", str("duration", "1h"))))

	s.Require().Len(s.session.responses, 1)
	s.Equal("`Error in command 'timer start'.`", s.session.last().Data.Content)
}

func (s *BotTestSuite) TestReportFailureFallsBack() {
	s.mockTimer.EXPECT().
		CreateTimer(s.ctx, gomock.Any()).
		Return(nil, errors.New("redis is down"))
	s.mockCustomError.EXPECT().
		Report(s.ctx, gomock.Any()).
		Return(nil, errors.New("settings unavailable"))

	s.bot.route(s.ctx, s.session, s.command(s.testUserID, "timer", sub("start", str("duration", "1h"))))

	s.Require().Len(s.session.responses, 1)
	s.Equal("Something went wrong while running that command.", s.session.last().Data.Content)
}

func (s *BotTestSuite) TestOwnerOnlySubcommand() {
	s.bot.route(s.ctx, s.session, s.command(s.testUserID, "timerset", sub("maxduration", str("duration", "7d"))))

	s.Require().Len(s.session.responses, 1)
	s.Equal(ErrNotOwner.Error(), s.session.last().Data.Content)
}

func (s *BotTestSuite) TestOwnerCanRunOwnerSubcommand() {
	s.mockTimer.EXPECT().
		SetMaxDuration(s.ctx, &timer.SetMaxDurationInput{Duration: "7d"}).
		Return(nil)
	s.expectCompleted("timerset", "/timerset maxduration duration:7d")

	s.bot.route(s.ctx, s.session, s.command(s.testOwnerID, "timerset", sub("maxduration", str("duration", "7d"))))

	s.Require().Len(s.session.responses, 1)
	s.Equal("The maximum duration of timers has been updated.", s.session.last().Data.Content)
}

func (s *BotTestSuite) TestGuildOnlyCommand() {
	create := s.command(s.testUserID, "timer", sub("list"))
	create.GuildID = ""
	create.User = create.Member.User
	create.Member = nil

	s.bot.route(s.ctx, s.session, create)

	s.Require().Len(s.session.responses, 1)
	s.Equal(ErrGuildOnly.Error(), s.session.last().Data.Content)
}

func (s *BotTestSuite) TestUnknownCommandIsIgnored() {
	s.bot.route(s.ctx, s.session, s.command(s.testUserID, "nope"))

	s.Empty(s.session.responses)
}

func (s *BotTestSuite) TestComponentRoutedByPrefix() {
	row := []discordgo.MessageComponent{discordgo.ActionsRow{}}
	s.mockTimer.EXPECT().
		OptIn(s.ctx, &timer.OptInInput{
			GuildID:   s.testGuildID,
			MessageID: "test-message-id",
			UserID:    s.testUserID,
		}).
		Return(&timer.OptInOutput{MemberCount: 1, Components: row}, nil)

	s.bot.route(s.ctx, s.session, s.component(s.testUserID, timer.NotifyButtonID))

	s.Require().Len(s.session.responses, 1)
	update := s.session.last()
	s.Equal(discordgo.InteractionResponseUpdateMessage, update.Type)
	s.Equal("timer", update.Data.Content)
	s.Equal(row, update.Data.Components)

	s.Require().Len(s.session.followups, 1)
	s.Equal("You will be notified when this timer ends.", s.session.followups[0].Content)
	s.Equal(discordgo.MessageFlagsEphemeral, s.session.followups[0].Flags)
}

func (s *BotTestSuite) TestComponentUserErrorIsReplied() {
	s.mockTimer.EXPECT().
		OptIn(s.ctx, gomock.Any()).
		Return(nil, timer.ErrHostOptIn)

	s.bot.route(s.ctx, s.session, s.component(s.testUserID, timer.NotifyButtonID))

	s.Require().Len(s.session.responses, 1)
	s.Equal(timer.ErrHostOptIn.Error(), s.session.last().Data.Content)
}

func (s *BotTestSuite) askReset() {
	s.mockUUID.EXPECT().NewUUID().Return("prompt-id")
	s.expectCompleted("timerset", "/timerset resetguild")

	s.bot.route(s.ctx, s.session, s.command(s.testUserID, "timerset", sub("resetguild")))

	s.Require().Len(s.session.responses, 1)
	s.Require().Len(s.session.last().Data.Components, 1)
}

func (s *BotTestSuite) TestConfirmYesRunsAction() {
	s.askReset()
	s.mockTimer.EXPECT().
		ResetGuild(s.ctx, &timer.ResetGuildInput{GuildID: s.testGuildID}).
		Return(nil)

	s.bot.route(s.ctx, s.session, s.component(s.testUserID, confirmYes+"prompt-id"))

	s.Require().Len(s.session.responses, 2)
	s.Equal(discordgo.InteractionResponseUpdateMessage, s.session.last().Type)
	s.Equal("The timer settings of this server have been reset.", s.session.last().Data.Content)
	s.Empty(s.session.last().Data.Components)
	s.True(s.timeouts.Last().Stopped())
}

func (s *BotTestSuite) TestConfirmNoCancels() {
	s.askReset()

	s.bot.route(s.ctx, s.session, s.component(s.testUserID, confirmNo+"prompt-id"))

	s.Require().Len(s.session.responses, 2)
	s.Equal("Alright, I have cancelled that.", s.session.last().Data.Content)
}

func (s *BotTestSuite) TestConfirmRejectsOtherUsers() {
	s.askReset()

	s.bot.route(s.ctx, s.session, s.component("someone-else", confirmYes+"prompt-id"))

	s.Require().Len(s.session.responses, 2)
	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, s.session.last().Type)
	s.Equal(ErrNotYourPrompt.Error(), s.session.last().Data.Content)
}

func (s *BotTestSuite) TestConfirmExpires() {
	s.askReset()
	s.Equal(confirmTimeout, s.timeouts.Last().After)

	s.timeouts.Last().Fire()
	s.bot.route(s.ctx, s.session, s.component(s.testUserID, confirmYes+"prompt-id"))

	s.Require().Len(s.session.responses, 2)
	s.Equal(ErrPromptExpired.Error(), s.session.last().Data.Content)
}

func (s *BotTestSuite) TestConfirmActionUserError() {
	s.askReset()
	s.mockTimer.EXPECT().
		ResetGuild(s.ctx, gomock.Any()).
		Return(timer.ErrNoTimers)

	s.bot.route(s.ctx, s.session, s.component(s.testUserID, confirmYes+"prompt-id"))

	s.Require().Len(s.session.responses, 2)
	s.Equal(discordgo.InteractionResponseUpdateMessage, s.session.last().Type)
	s.Equal(timer.ErrNoTimers.Error(), s.session.last().Data.Content)
}

func (s *BotTestSuite) TestPaginatorWrapsAround() {
	s.mockUUID.EXPECT().NewUUID().Return("pages-id")
	pages := textPages("Pages", []string{"one", "two", "three"}, colourDefault)

	r := s.bot.newRequest(s.session, s.command(s.testUserID, "timer", sub("list")).Interaction)
	s.Require().NoError(s.bot.pages.start(s.ctx, r, pages, false))
	s.Require().Len(s.session.responses, 1)
	s.Equal("one", s.session.last().Data.Embeds[0].Description)
	s.Equal("Page (1/3)", s.session.last().Data.Embeds[0].Footer.Text)

	s.bot.route(s.ctx, s.session, s.component(s.testUserID, pagePrev+"pages-id"))
	s.Equal("three", s.session.last().Data.Embeds[0].Description)

	s.bot.route(s.ctx, s.session, s.component(s.testUserID, pageNext+"pages-id"))
	s.Equal("one", s.session.last().Data.Embeds[0].Description)

	s.bot.route(s.ctx, s.session, s.component(s.testUserID, pageNext+"pages-id"))
	s.Equal("two", s.session.last().Data.Embeds[0].Description)
	s.Equal(pageTimeout, s.timeouts.Last().After)
}

func (s *BotTestSuite) TestPaginatorSinglePageHasNoButtons() {
	r := s.bot.newRequest(s.session, s.command(s.testUserID, "timer", sub("list")).Interaction)
	s.Require().NoError(s.bot.pages.start(s.ctx, r, textPages("Pages", []string{"only"}, colourDefault), true))

	s.Require().Len(s.session.responses, 1)
	s.Empty(s.session.last().Data.Components)
	s.Nil(s.session.last().Data.Embeds[0].Footer)
}

func (s *BotTestSuite) TestPaginatorExpiredDropsButtons() {
	s.mockUUID.EXPECT().NewUUID().Return("pages-id")
	r := s.bot.newRequest(s.session, s.command(s.testUserID, "timer", sub("list")).Interaction)
	s.Require().NoError(s.bot.pages.start(s.ctx, r, textPages("Pages", []string{"one", "two"}, colourDefault), false))

	s.timeouts.Last().Fire()
	s.bot.route(s.ctx, s.session, s.component(s.testUserID, pageNext+"pages-id"))

	s.Equal(discordgo.InteractionResponseUpdateMessage, s.session.last().Type)
	s.Empty(s.session.last().Data.Components)
}

func (s *BotTestSuite) TestNewBotRejectsDuplicateCommands() {
	_, err := newBot(&Config{
		Gateway:     s.mockGateway,
		CustomError: s.mockCustomError,
		DevLogs:     s.mockDevLogs,
		UUID:        s.mockUUID,
		Modules: []Module{
			NewTimerCommand(s.mockTimer, nil),
			NewTimerCommand(s.mockTimer, nil),
		},
	})
	s.Error(err)
}

func (s *BotTestSuite) TestNewBotRequiresDependencies() {
	_, err := newBot(&Config{Gateway: s.mockGateway})
	s.Error(err)
}

func TestBotSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}
