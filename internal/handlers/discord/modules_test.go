package discord

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/models"
	"github.com/KirkDiggler/noobcogs/internal/services/afk"
	"github.com/KirkDiggler/noobcogs/internal/services/donation"
	"github.com/KirkDiggler/noobcogs/internal/services/timer"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/mock/gomock"
)

func (s *BotTestSuite) TestAFKStartsAndWarnsAboutNick() {
	s.mockAFK.EXPECT().
		StartAFK(s.ctx, &afk.StartAFKInput{
			GuildID: s.testGuildID,
			UserID:  s.testUserID,
			Reason:  "lunch",
		}).
		Return(&afk.StartAFKOutput{NickWarning: "I could not change your nickname."}, nil)
	s.expectCompleted("afk", "/afk reason:lunch")

	s.bot.route(s.ctx, s.session, s.command(s.testUserID, "afk", str("reason", "lunch")))

	s.Require().Len(s.session.responses, 1)
	s.Equal("You are now AFK. Any member that pings you will now get notified.", s.session.last().Data.Content)
	s.Zero(s.session.last().Data.Flags)

	s.Require().Len(s.session.followups, 1)
	s.Equal("I could not change your nickname.", s.session.followups[0].Content)
	s.Equal(discordgo.MessageFlagsEphemeral, s.session.followups[0].Flags)
}

func (s *BotTestSuite) TestAFKCooldown() {
	s.mockAFK.EXPECT().
		StartAFK(s.ctx, gomock.Any()).
		Return(&afk.StartAFKOutput{}, nil).
		Times(1)
	s.expectCompleted("afk", "/afk")

	s.bot.route(s.ctx, s.session, s.command(s.testUserID, "afk"))
	s.bot.route(s.ctx, s.session, s.command(s.testUserID, "afk"))

	s.Require().Len(s.session.responses, 2)
	s.Contains(s.session.last().Data.Content, "This command is on cooldown.")
	s.Equal(discordgo.MessageFlagsEphemeral, s.session.last().Data.Flags)
}

func (s *BotTestSuite) TestAFKForceNeedsManageGuild() {
	s.bot.route(s.ctx, s.session, s.command(s.testUserID, "afkset",
		sub("forceafk", user("member", "target-id"))))

	s.Require().Len(s.session.responses, 1)
	s.Equal(ErrMissingPerms.Error(), s.session.last().Data.Content)
}

func (s *BotTestSuite) TestAFKBackWhenNotAway() {
	s.mockAFK.EXPECT().
		GetSettings(s.ctx, &afk.MemberInput{GuildID: s.testGuildID, UserID: s.testUserID}).
		Return(&afk.GetSettingsOutput{Status: &models.AFKStatus{}, Settings: &models.AFKSettings{}}, nil)
	s.expectCompleted("afkset", "/afkset back")

	s.bot.route(s.ctx, s.session, s.command(s.testUserID, "afkset", sub("back")))

	s.Require().Len(s.session.responses, 1)
	s.Equal("It appears you are not AFK.", s.session.last().Data.Content)
}

func (s *BotTestSuite) pingMessage() *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        "ping-message-id",
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		Content:   "hey <@away-user>",
		Author:    &discordgo.User{ID: s.testUserID, Username: "tester"},
		Mentions:  []*discordgo.User{{ID: "away-user"}},
	}}
}

func (s *BotTestSuite) afkModule() *AFKCommand {
	m, ok := s.bot.commands["afk"].(*AFKCommand)
	s.Require().True(ok)
	return m
}

func (s *BotTestSuite) TestAFKNoticeIsSentAndDeleted() {
	s.mockAFK.EXPECT().
		HandleMessage(s.ctx, &afk.HandleMessageInput{
			GuildID:    s.testGuildID,
			ChannelID:  s.testChannelID,
			MessageID:  "ping-message-id",
			AuthorID:   s.testUserID,
			AuthorName: "tester",
			Content:    "hey <@away-user>",
			Mentions:   []afk.Mention{{UserID: "away-user"}},
		}).
		Return(&afk.HandleMessageOutput{
			Notices: []afk.PingNotice{{UserID: "away-user", Reason: "Gone fishing", DeleteAfter: 10}},
		}, nil)
	s.mockGateway.EXPECT().
		SendMessage(s.ctx, s.testChannelID, gomock.Any()).
		DoAndReturn(func(_ context.Context, channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
			s.Require().Len(msg.Embeds, 1)
			s.Equal("Gone fishing", msg.Embeds[0].Description)
			s.Equal("ping-message-id", msg.Reference.MessageID)
			s.Empty(msg.AllowedMentions.Parse)
			return &discordgo.Message{ID: "notice-id", ChannelID: channelID}, nil
		})
	s.mockGateway.EXPECT().DeleteMessageAfter(s.testChannelID, "notice-id", 10*time.Second)

	s.afkModule().HandleEvent(s.ctx, s.pingMessage())
}

func (s *BotTestSuite) TestAFKWelcomeBackWithPingLog() {
	s.mockAFK.EXPECT().
		HandleMessage(s.ctx, gomock.Any()).
		Return(&afk.HandleMessageOutput{
			WelcomeBack: "Welcome back tester! I've removed your AFK status.",
			Returned:    &afk.EndAFKOutput{Name: "tester", PingPages: []string{"**friend** pinged you"}},
		}, nil)

	var sent []*discordgo.MessageSend
	s.mockGateway.EXPECT().
		SendMessage(s.ctx, s.testChannelID, gomock.Any()).
		DoAndReturn(func(_ context.Context, channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
			sent = append(sent, msg)
			return &discordgo.Message{ID: "reply-id", ChannelID: channelID}, nil
		}).
		Times(2)

	s.afkModule().HandleEvent(s.ctx, s.pingMessage())

	s.Require().Len(sent, 2)
	s.Equal("Welcome back tester! I've removed your AFK status.", sent[0].Content)
	s.Require().Len(sent[1].Embeds, 1)
	s.Equal("You have recieved some pings while you were AFK, tester.", sent[1].Embeds[0].Title)
	s.Equal("**friend** pinged you", sent[1].Embeds[0].Description)
}

func (s *BotTestSuite) TestAFKIgnoresDirectMessages() {
	event := s.pingMessage()
	event.GuildID = ""

	s.afkModule().HandleEvent(s.ctx, event)
}

func (s *BotTestSuite) TestAFKForgetsMembersWhoLeave() {
	s.mockAFK.EXPECT().
		HandleMemberRemove(s.ctx, &afk.MemberInput{GuildID: s.testGuildID, UserID: "leaver"}).
		Return(nil)

	s.afkModule().HandleEvent(s.ctx, &discordgo.GuildMemberRemove{Member: &discordgo.Member{
		GuildID: s.testGuildID,
		User:    &discordgo.User{ID: "leaver"},
	}})
}

func (s *BotTestSuite) timerModule() *TimerCommand {
	m, ok := s.bot.commands["timer"].(*TimerCommand)
	s.Require().True(ok)
	return m
}

func (s *BotTestSuite) TestTimerDropsDeletedMessages() {
	s.mockTimer.EXPECT().
		HandleMessageDelete(s.ctx, &timer.HandleMessageDeleteInput{
			GuildID:    s.testGuildID,
			MessageIDs: []string{"one", "two"},
		}).
		Return(nil)

	s.timerModule().HandleEvent(s.ctx, &discordgo.MessageDeleteBulk{
		GuildID:  s.testGuildID,
		Messages: []string{"one", "two"},
	})
}

func (s *BotTestSuite) TestTimerDeleteErrorIsLogged() {
	s.mockTimer.EXPECT().
		HandleMessageDelete(s.ctx, gomock.Any()).
		Return(errors.New("redis is down"))

	s.timerModule().HandleEvent(s.ctx, &discordgo.MessageDelete{Message: &discordgo.Message{
		ID:      "gone",
		GuildID: s.testGuildID,
	}})
}

func (s *BotTestSuite) TestDonationChangeUsesMemberRoles() {
	embed := &discordgo.MessageEmbed{Title: "Successfully Added"}
	s.mockDonation.EXPECT().
		Add(s.ctx, &donation.ChangeInput{
			GuildID:   s.testGuildID,
			ChannelID: s.testChannelID,
			Actor: donation.Actor{
				UserID:  s.testUserID,
				RoleIDs: []string{"manager-role"},
			},
			Bank:     "Gold",
			MemberID: "donor-id",
			Amount:   50,
			JumpURL:  "https://discord.com/channels/test-guild-id/test-channel-id",
		}).
		Return(&donation.ChangeOutput{Embed: embed}, nil)
	s.expectCompleted("donationlogger", "/donationlogger add amount:50 bank:Gold member:donor-id")

	s.bot.route(s.ctx, s.session, s.command(s.testUserID, "donationlogger",
		sub("add", user("member", "donor-id"), str("bank", "Gold"), integer("amount", 50))))

	s.Require().Len(s.session.responses, 1)
	s.Equal([]*discordgo.MessageEmbed{embed}, s.session.last().Data.Embeds)
	s.Zero(s.session.last().Data.Flags)
}

func (s *BotTestSuite) TestDonationServiceRejection() {
	s.mockDonation.EXPECT().
		Add(s.ctx, gomock.Any()).
		Return(nil, donation.ErrNotSetup)

	s.bot.route(s.ctx, s.session, s.command(s.testUserID, "donationlogger",
		sub("add", user("member", "donor-id"), str("bank", "Gold"), integer("amount", 50))))

	s.Require().Len(s.session.responses, 1)
	s.Equal(donation.ErrNotSetup.Error(), s.session.last().Data.Content)
}

func (s *BotTestSuite) TestTimerCommandsAreModeratorGated() {
	for _, cmd := range s.timerModule().Commands() {
		s.NotNil(cmd.DefaultMemberPermissions, cmd.Name)
	}
}

func (s *BotTestSuite) TestTimerEndRefusesOtherMembers() {
	s.mockTimer.EXPECT().
		EndTimer(s.ctx, &timer.EndTimerInput{
			GuildID:   s.testGuildID,
			MessageID: "timer-id",
			ActorID:   s.testUserID,
		}).
		Return(timer.ErrNotTimerHost)

	s.bot.route(s.ctx, s.session, s.command(s.testUserID, "timer", sub("end", str("message_id", "timer-id"))))

	s.Require().Len(s.session.responses, 1)
	s.Equal(timer.ErrNotTimerHost.Error(), s.session.last().Data.Content)
	s.Equal(discordgo.MessageFlagsEphemeral, s.session.last().Data.Flags)
}

func (s *BotTestSuite) TestTimerCancelByModerator() {
	s.mockTimer.EXPECT().
		CancelTimer(s.ctx, &timer.CancelTimerInput{
			GuildID:     s.testGuildID,
			MessageID:   "timer-id",
			CancelledBy: s.testUserID,
			Moderator:   true,
		}).
		Return(nil)
	s.expectCompleted("timer", "/timer cancel message_id:timer-id")

	cmd := s.command(s.testUserID, "timer", sub("cancel", str("message_id", "timer-id")))
	cmd.Member.Permissions = discordgo.PermissionManageMessages

	s.bot.route(s.ctx, s.session, cmd)

	s.Require().Len(s.session.responses, 1)
	s.Equal("Cancelled that timer.", s.session.last().Data.Content)
}
