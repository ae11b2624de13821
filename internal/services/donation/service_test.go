package donation

import (
	"context"
	"net/http"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/noobcogs/internal/common/clock/mocks"
	gatewayMocks "github.com/KirkDiggler/noobcogs/internal/gateway/mocks"
	bankRepo "github.com/KirkDiggler/noobcogs/internal/repositories/bank"
	leaderboardRepo "github.com/KirkDiggler/noobcogs/internal/repositories/leaderboard"
	sessionRepo "github.com/KirkDiggler/noobcogs/internal/repositories/session"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"github.com/alicebob/miniredis/v2"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DonationServiceTestSuite struct {
	suite.Suite
	mr              *miniredis.Miniredis
	client          *redis.Client
	mockCtrl        *gomock.Controller
	mockGateway     *gatewayMocks.MockGateway
	mockClock       *clockMocks.MockClock
	leaderboardRepo leaderboardRepo.Repository
	sessionRepo     sessionRepo.Repository
	donationService *service
	ctx             context.Context

	testGuildID string
	manager     Actor
}

func (s *DonationServiceTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	settings, err := settingsRepo.NewRedis(&settingsRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	banks, err := bankRepo.NewRedis(&bankRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.leaderboardRepo, err = leaderboardRepo.NewRedis(&leaderboardRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.sessionRepo, err = sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = gatewayMocks.NewMockGateway(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockClock.EXPECT().Now().Return(time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)).AnyTimes()

	s.ctx = context.Background()
	s.testGuildID = "guild-1"
	s.manager = Actor{UserID: "mod", RoleIDs: []string{"role-manager"}}

	svc, err := New(&Config{
		SettingsRepo:    settings,
		BankRepo:        banks,
		LeaderboardRepo: s.leaderboardRepo,
		SessionRepo:     s.sessionRepo,
		Gateway:         s.mockGateway,
		Clock:           s.mockClock,
	})
	s.Require().NoError(err)
	s.donationService = svc
}

func (s *DonationServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestDonationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DonationServiceTestSuite))
}

func (s *DonationServiceTestSuite) setup(logChannelID string) {
	_, err := s.donationService.Setup(s.ctx, &SetupInput{
		GuildID:        s.testGuildID,
		Actor:          Actor{UserID: "admin", ManageGuild: true},
		ManagerRoleIDs: []string{"role-manager"},
		LogChannelID:   logChannelID,
		Banks: []BankSpec{
			{Name: "Gold", Emoji: "🪙"},
			{Name: "Events"},
		},
	})
	s.Require().NoError(err)
}

func (s *DonationServiceTestSuite) expectMember(userID string, roles ...string) {
	s.mockGateway.EXPECT().
		Member(gomock.Any(), s.testGuildID, userID).
		Return(&discordgo.Member{User: &discordgo.User{ID: userID, Username: userID}, Roles: roles}, nil)
}

func (s *DonationServiceTestSuite) change(amount int64) *ChangeInput {
	return &ChangeInput{
		GuildID:  s.testGuildID,
		Actor:    s.manager,
		Bank:     "gold",
		MemberID: "alice",
		Amount:   amount,
	}
}

func (s *DonationServiceTestSuite) board() leaderboardRepo.Board {
	return leaderboardRepo.Board{Name: "donation:gold", GuildID: s.testGuildID}
}

func (s *DonationServiceTestSuite) TestRequiresSetup() {
	_, err := s.donationService.Add(s.ctx, s.change(10))
	s.ErrorIs(err, ErrNotSetup)
}

func (s *DonationServiceTestSuite) TestRequiresManager() {
	s.setup("")

	input := s.change(10)
	input.Actor = Actor{UserID: "pleb", RoleIDs: []string{"role-other"}}
	_, err := s.donationService.Add(s.ctx, input)
	s.ErrorIs(err, ErrNotManager)
	s.Equal("You need to be a donationlogger manager or higher to run this command.", err.Error())
}

func (s *DonationServiceTestSuite) TestSetupOnce() {
	s.setup("")

	_, err := s.donationService.Setup(s.ctx, &SetupInput{
		GuildID:        s.testGuildID,
		Actor:          Actor{UserID: "admin", ManageGuild: true},
		ManagerRoleIDs: []string{"role-manager"},
		Banks:          []BankSpec{{Name: "Gold"}},
	})
	s.ErrorIs(err, ErrAlreadySetup)
}

func (s *DonationServiceTestSuite) TestSetupInProgress() {
	locked, err := s.sessionRepo.Lock(s.ctx, &sessionRepo.LockInput{
		Name:  setupLock(s.testGuildID),
		Owner: "someone",
		TTL:   time.Minute,
	})
	s.Require().NoError(err)
	s.Require().True(locked)

	_, err = s.donationService.Setup(s.ctx, &SetupInput{
		GuildID:        s.testGuildID,
		Actor:          Actor{UserID: "admin", ManageGuild: true},
		ManagerRoleIDs: []string{"role-manager"},
		Banks:          []BankSpec{{Name: "Gold"}},
	})
	s.ErrorIs(err, ErrSetupInProgress)
}

func (s *DonationServiceTestSuite) TestSetupReleasesLock() {
	s.setup("")

	locked, err := s.sessionRepo.Lock(s.ctx, &sessionRepo.LockInput{
		Name:  setupLock(s.testGuildID),
		Owner: "someone",
		TTL:   time.Minute,
	})
	s.Require().NoError(err)
	s.True(locked)
}

func (s *DonationServiceTestSuite) TestUnknownBank() {
	s.setup("")

	input := s.change(10)
	input.Bank = "Silver"
	_, err := s.donationService.Add(s.ctx, input)
	s.Require().Error(err)
	s.Equal("Bank `Silver` does not exist.", err.Error())
}

func (s *DonationServiceTestSuite) TestAddGrantsReachedRoles() {
	s.setup("")

	_, err := s.donationService.BankRolesAdd(s.ctx, &BankRolesInput{
		GuildID: s.testGuildID, Actor: s.manager, Name: "Gold", Threshold: 150, RoleIDs: []string{"role-150"},
	})
	s.Require().NoError(err)
	_, err = s.donationService.BankRolesAdd(s.ctx, &BankRolesInput{
		GuildID: s.testGuildID, Actor: s.manager, Name: "Gold", Threshold: 200, RoleIDs: []string{"role-200"},
	})
	s.Require().NoError(err)

	s.Require().NoError(s.leaderboardRepo.SetScore(s.ctx, &leaderboardRepo.SetScoreInput{
		Board: s.board(), UserID: "alice", Score: 100,
	}))

	s.expectMember("alice")
	s.mockGateway.EXPECT().AddRole(gomock.Any(), s.testGuildID, "alice", "role-150").Return(nil)

	out, err := s.donationService.Add(s.ctx, s.change(50))
	s.Require().NoError(err)

	s.Equal(int64(100), out.Previous)
	s.Equal(int64(150), out.Updated)
	s.Equal([]string{"role-150"}, out.Roles)
	s.Equal("Successfully Added", out.Embed.Title)
	s.Equal("🪙 **50** was added to **alice**'s **__Gold__** donation balance.\n"+
		"Their total donation balance is now **🪙 150** on **__Gold__**.", out.Embed.Description)
	s.Require().Len(out.Embed.Fields, 1)
	s.Equal("Added Donation Roles:", out.Embed.Fields[0].Name)
	s.Equal("<@&role-150>", out.Embed.Fields[0].Value)
	s.Nil(out.Embed.Footer)
}

func (s *DonationServiceTestSuite) TestAddAppliesMultiplier() {
	s.setup("")

	_, err := s.donationService.BankMultiplier(s.ctx, &BankMultiplierInput{
		GuildID: s.testGuildID, Actor: s.manager, Name: "gold", Multiplier: 1.5,
	})
	s.Require().NoError(err)

	s.expectMember("alice")
	out, err := s.donationService.Add(s.ctx, s.change(1000))
	s.Require().NoError(err)

	s.Equal(int64(1500), out.Amount)
	s.Equal(int64(1500), out.Updated)
	s.Equal("Donation Multiplier: x1.5", out.Embed.Footer.Text)
}

func (s *DonationServiceTestSuite) TestAddTooHigh() {
	s.setup("")

	_, err := s.donationService.Add(s.ctx, s.change(MaxAmount+1))
	s.ErrorIs(err, ErrAmountTooHigh)
}

func (s *DonationServiceTestSuite) TestHiddenBank() {
	s.setup("")

	_, err := s.donationService.BankHidden(s.ctx, &BankHiddenInput{
		GuildID: s.testGuildID, Actor: s.manager, Name: "Gold", Hidden: true,
	})
	s.Require().NoError(err)

	_, err = s.donationService.Add(s.ctx, s.change(10))
	s.ErrorIs(err, ErrBankHidden)

	_, err = s.donationService.Leaderboard(s.ctx, &LeaderboardInput{GuildID: s.testGuildID, Actor: s.manager, Bank: "gold"})
	s.ErrorIs(err, ErrBankHidden)
}

func (s *DonationServiceTestSuite) TestRemoveZeroBalance() {
	s.setup("")

	_, err := s.donationService.Remove(s.ctx, s.change(10))
	s.ErrorIs(err, ErrZeroBalance)
}

func (s *DonationServiceTestSuite) TestRemoveBelowZeroDropsEntry() {
	s.setup("")

	_, err := s.donationService.BankRolesAdd(s.ctx, &BankRolesInput{
		GuildID: s.testGuildID, Actor: s.manager, Name: "Gold", Threshold: 50, RoleIDs: []string{"role-50"},
	})
	s.Require().NoError(err)

	s.Require().NoError(s.leaderboardRepo.SetScore(s.ctx, &leaderboardRepo.SetScoreInput{
		Board: s.board(), UserID: "alice", Score: 80,
	}))

	s.expectMember("alice", "role-50")
	s.mockGateway.EXPECT().RemoveRole(gomock.Any(), s.testGuildID, "alice", "role-50").Return(nil)

	out, err := s.donationService.Remove(s.ctx, s.change(100))
	s.Require().NoError(err)

	s.Equal(int64(80), out.Previous)
	s.Equal(int64(0), out.Updated)
	s.Equal([]string{"role-50"}, out.Roles)
	s.Equal("Successfully Removed", out.Embed.Title)

	score, err := s.leaderboardRepo.Score(s.ctx, &leaderboardRepo.ScoreInput{Board: s.board(), UserID: "alice"})
	s.Require().NoError(err)
	s.False(score.Found)
}

func (s *DonationServiceTestSuite) TestSetGrantsAndRemoves() {
	s.setup("")

	for threshold, role := range map[int64]string{100: "role-100", 500: "role-500"} {
		_, err := s.donationService.BankRolesAdd(s.ctx, &BankRolesInput{
			GuildID: s.testGuildID, Actor: s.manager, Name: "Gold", Threshold: threshold, RoleIDs: []string{role},
		})
		s.Require().NoError(err)
	}

	s.expectMember("alice", "role-500")
	s.mockGateway.EXPECT().AddRole(gomock.Any(), s.testGuildID, "alice", "role-100").Return(nil)
	s.mockGateway.EXPECT().RemoveRole(gomock.Any(), s.testGuildID, "alice", "role-500").Return(nil)

	out, err := s.donationService.Set(s.ctx, s.change(200))
	s.Require().NoError(err)

	s.Equal([]string{"role-100", "role-500"}, out.Roles)
	s.Equal("🪙 **200** was set as **alice**'s **__Gold__** donation balance.", out.Embed.Description)
	s.Equal("<@&role-100> and <@&role-500>", out.Embed.Fields[0].Value)
}

func (s *DonationServiceTestSuite) TestRoleFailureIsSkipped() {
	s.setup("")

	_, err := s.donationService.BankRolesAdd(s.ctx, &BankRolesInput{
		GuildID: s.testGuildID, Actor: s.manager, Name: "Gold", Threshold: 10, RoleIDs: []string{"role-10"},
	})
	s.Require().NoError(err)

	s.expectMember("alice")
	s.mockGateway.EXPECT().
		AddRole(gomock.Any(), s.testGuildID, "alice", "role-10").
		Return(&discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusForbidden}})

	out, err := s.donationService.Add(s.ctx, s.change(10))
	s.Require().NoError(err)
	s.Empty(out.Roles)
	s.Equal(int64(10), out.Updated)
}

func (s *DonationServiceTestSuite) TestChangeIsLogged() {
	s.setup("log-channel")

	s.expectMember("alice")
	s.mockGateway.EXPECT().
		SendMessage(gomock.Any(), "log-channel", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
			s.Require().Len(msg.Embeds, 1)
			embed := msg.Embeds[0]
			s.Equal("Donation Added", embed.Title)

			values := make(map[string]string)
			for _, field := range embed.Fields {
				values[field.Name] = field.Value
			}
			s.Equal("🪙 0", values["Previous Balance"])
			s.Equal("🪙 2,500", values["Updated Balance"])
			s.Equal("for the giveaway", values["Note"])
			s.Equal("Jump To Command", msg.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.Button).Label)
			return &discordgo.Message{ID: "log"}, nil
		})

	input := s.change(2500)
	input.Note = "for the giveaway"
	input.JumpURL = "https://discord.com/channels/guild-1/channel-1/message-1"
	_, err := s.donationService.Add(s.ctx, input)
	s.Require().NoError(err)
}

func (s *DonationServiceTestSuite) TestBalance() {
	s.setup("")

	s.Require().NoError(s.leaderboardRepo.SetScore(s.ctx, &leaderboardRepo.SetScoreInput{
		Board: s.board(), UserID: "alice", Score: 1234,
	}))

	s.expectMember("alice")
	out, err := s.donationService.Balance(s.ctx, &BalanceInput{
		GuildID: s.testGuildID, Actor: s.manager, MemberID: "alice", Bank: "Gold",
	})
	s.Require().NoError(err)
	s.Equal("Bank: Gold\nTotal amount donated: 🪙 1,234", out.Embed.Description)

	s.expectMember("alice")
	out, err = s.donationService.Balance(s.ctx, &BalanceInput{
		GuildID: s.testGuildID, Actor: s.manager, MemberID: "alice",
	})
	s.Require().NoError(err)
	s.Equal(map[string]int64{"gold": 1234, "events": 0}, out.Balances)
	s.Len(out.Embed.Fields, 2)
}

func (s *DonationServiceTestSuite) TestCheck() {
	s.setup("")

	for user, score := range map[string]int64{"alice": 500, "bob": 100, "carol": 300} {
		s.Require().NoError(s.leaderboardRepo.SetScore(s.ctx, &leaderboardRepo.SetScoreInput{
			Board: s.board(), UserID: user, Score: score,
		}))
	}

	out, err := s.donationService.Check(s.ctx, &CheckInput{
		GuildID: s.testGuildID, Actor: Actor{UserID: "carol", ManageGuild: true}, Bank: "gold", Mode: CheckMore, Amount: 300,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)
	s.Equal("alice", out.Entries[0].UserID)
	s.Equal("1. <@alice> (`alice`): **500**\n➡️ 2. <@carol> (`carol`): **300**", out.Pages[0].Description)
	s.Equal("Page (1/1)", out.Pages[0].Footer.Text)

	out, err = s.donationService.Check(s.ctx, &CheckInput{
		GuildID: s.testGuildID, Actor: s.manager, Bank: "gold", Mode: CheckLess, Amount: 400,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)
	s.Equal("bob", out.Entries[0].UserID)
	s.Equal("carol", out.Entries[1].UserID)

	out, err = s.donationService.Check(s.ctx, &CheckInput{
		GuildID: s.testGuildID, Actor: s.manager, Bank: "gold", Mode: CheckLess, Amount: 50,
	})
	s.Require().NoError(err)
	s.Empty(out.Entries)
	s.Equal("No one has donated less than **50** yet.", out.Pages[0].Description)
}

func (s *DonationServiceTestSuite) TestLeaderboard() {
	s.setup("")

	for user, score := range map[string]int64{"alice": 500, "ghost": 400, "bob": 0} {
		s.Require().NoError(s.leaderboardRepo.SetScore(s.ctx, &leaderboardRepo.SetScoreInput{
			Board: s.board(), UserID: user, Score: score,
		}))
	}

	s.expectMember("alice")
	s.mockGateway.EXPECT().
		Member(gomock.Any(), s.testGuildID, "ghost").
		Return(nil, &discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusNotFound}}).
		Times(2)

	out, err := s.donationService.Leaderboard(s.ctx, &LeaderboardInput{GuildID: s.testGuildID, Actor: s.manager, Bank: "gold", Top: 5})
	s.Require().NoError(err)
	s.Equal("Top 5 donators for [Gold]", out.Embed.Title)
	s.Require().Len(out.Entries, 1)
	s.Equal("1. alice", out.Embed.Fields[0].Name)
	s.Equal("🪙 500", out.Embed.Fields[0].Value)

	s.expectMember("alice")
	out, err = s.donationService.Leaderboard(s.ctx, &LeaderboardInput{
		GuildID: s.testGuildID, Actor: s.manager, Bank: "gold", Top: 5, ShowLeftUsers: true,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)
	s.Equal("2. [Member not found in guild] (ghost)", out.Embed.Fields[1].Name)
}

func (s *DonationServiceTestSuite) TestLeaderboardEmpty() {
	s.setup("")

	out, err := s.donationService.Leaderboard(s.ctx, &LeaderboardInput{GuildID: s.testGuildID, Actor: s.manager, Bank: "events"})
	s.Require().NoError(err)
	s.Equal("Top 10 donators for [Events]", out.Embed.Title)
	s.Equal("It seems no one has donated from this bank yet.", out.Embed.Description)
}

func (s *DonationServiceTestSuite) TestBankManagement() {
	s.setup("")

	_, err := s.donationService.BankAdd(s.ctx, &BankAddInput{GuildID: s.testGuildID, Actor: s.manager, Bank: BankSpec{Name: "gold"}})
	s.Require().Error(err)
	s.Equal("Bank `gold` already exists.", err.Error())

	out, err := s.donationService.BankEmoji(s.ctx, &BankEmojiInput{GuildID: s.testGuildID, Actor: s.manager, Name: "Events", Emoji: "🎉"})
	s.Require().NoError(err)
	s.Equal("🎉", out.Bank.Emoji)

	_, err = s.donationService.BankRolesAdd(s.ctx, &BankRolesInput{
		GuildID: s.testGuildID, Actor: s.manager, Name: "Events", Threshold: 10, RoleIDs: []string{"a", "b"},
	})
	s.Require().NoError(err)
	out, err = s.donationService.BankRolesRemove(s.ctx, &BankRolesInput{
		GuildID: s.testGuildID, Actor: s.manager, Name: "Events", Threshold: 10, RoleIDs: []string{"a"},
	})
	s.Require().NoError(err)
	s.Equal(map[int64][]string{10: {"b"}}, out.Bank.Roles)

	s.Require().NoError(s.donationService.BankRemove(s.ctx, &BankRemoveInput{GuildID: s.testGuildID, Actor: s.manager, Name: "Events"}))
	err = s.donationService.BankRemove(s.ctx, &BankRemoveInput{GuildID: s.testGuildID, Actor: s.manager, Name: "Gold"})
	s.ErrorIs(err, ErrLastBank)
}

func (s *DonationServiceTestSuite) TestResetUser() {
	s.setup("")

	s.Require().NoError(s.leaderboardRepo.SetScore(s.ctx, &leaderboardRepo.SetScoreInput{
		Board: s.board(), UserID: "alice", Score: 10,
	}))

	s.Require().NoError(s.donationService.ResetUser(s.ctx, &ResetUserInput{GuildID: s.testGuildID, Actor: s.manager, MemberID: "alice"}))

	score, err := s.leaderboardRepo.Score(s.ctx, &leaderboardRepo.ScoreInput{Board: s.board(), UserID: "alice"})
	s.Require().NoError(err)
	s.False(score.Found)
}

func (s *DonationServiceTestSuite) TestResetAllowsSetupAgain() {
	s.setup("")

	s.Require().NoError(s.leaderboardRepo.SetScore(s.ctx, &leaderboardRepo.SetScoreInput{
		Board: s.board(), UserID: "alice", Score: 10,
	}))

	s.Require().NoError(s.donationService.Reset(s.ctx, &ResetInput{GuildID: s.testGuildID, Actor: s.manager}))

	_, err := s.donationService.Add(s.ctx, s.change(10))
	s.ErrorIs(err, ErrNotSetup)

	s.setup("")
	score, err := s.leaderboardRepo.Score(s.ctx, &leaderboardRepo.ScoreInput{Board: s.board(), UserID: "alice"})
	s.Require().NoError(err)
	s.False(score.Found)
}
