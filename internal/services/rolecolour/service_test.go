package rolecolour

import (
	"context"
	"errors"
	"testing"
	"time"

	colourMocks "github.com/KirkDiggler/noobcogs/internal/colour/mocks"
	gatewayMocks "github.com/KirkDiggler/noobcogs/internal/gateway/mocks"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"github.com/alicebob/miniredis/v2"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoleColourServiceTestSuite struct {
	suite.Suite
	mr                *miniredis.Miniredis
	client            *redis.Client
	mockCtrl          *gomock.Controller
	mockGateway       *gatewayMocks.MockGateway
	mockPicker        *colourMocks.MockPicker
	roleColourService Service
	ctx               context.Context

	testGuild *discordgo.Guild
	botMember *discordgo.Member
}

func (s *RoleColourServiceTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	repo, err := settingsRepo.NewRedis(&settingsRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = gatewayMocks.NewMockGateway(s.mockCtrl)
	s.mockPicker = colourMocks.NewMockPicker(s.mockCtrl)

	svc, err := New(&Config{
		SettingsRepo: repo,
		Gateway:      s.mockGateway,
		Picker:       s.mockPicker,
		Interval:     time.Hour,
		GuildPacing:  time.Millisecond,
	})
	s.Require().NoError(err)
	s.roleColourService = svc
	s.ctx = context.Background()

	s.testGuild = &discordgo.Guild{
		ID:      "guild-1",
		OwnerID: "owner",
		Roles: []*discordgo.Role{
			{ID: "guild-1", Position: 0},
			{ID: "rainbow", Position: 2, Color: 0x123456},
			{ID: "bot-role", Position: 5, Permissions: discordgo.PermissionManageRoles},
			{ID: "admin", Position: 8},
		},
	}
	s.botMember = &discordgo.Member{User: &discordgo.User{ID: "bot"}, Roles: []string{"bot-role"}}

	s.mockGateway.EXPECT().BotUserID().Return("bot").AnyTimes()
}

func (s *RoleColourServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestRoleColourServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoleColourServiceTestSuite))
}

func (s *RoleColourServiceTestSuite) setRole(roleID string) {
	s.mockGateway.EXPECT().Guild(gomock.Any(), "guild-1").Return(s.testGuild, nil)
	s.mockGateway.EXPECT().Member(gomock.Any(), "guild-1", "bot").Return(s.botMember, nil)

	_, err := s.roleColourService.SetRole(s.ctx, &SetRoleInput{GuildID: "guild-1", RoleID: roleID})
	s.Require().NoError(err)
}

func (s *RoleColourServiceTestSuite) TestSetRole() {
	s.mockGateway.EXPECT().Guild(gomock.Any(), "guild-1").Return(s.testGuild, nil)
	s.mockGateway.EXPECT().Member(gomock.Any(), "guild-1", "bot").Return(s.botMember, nil)

	out, err := s.roleColourService.SetRole(s.ctx, &SetRoleInput{GuildID: "guild-1", RoleID: "rainbow"})
	s.Require().NoError(err)
	s.Equal("rainbow", out.Role.ID)
}

func (s *RoleColourServiceTestSuite) TestSetRoleAboveBot() {
	s.mockGateway.EXPECT().Guild(gomock.Any(), "guild-1").Return(s.testGuild, nil)
	s.mockGateway.EXPECT().Member(gomock.Any(), "guild-1", "bot").Return(s.botMember, nil)

	_, err := s.roleColourService.SetRole(s.ctx, &SetRoleInput{GuildID: "guild-1", RoleID: "admin"})
	s.ErrorIs(err, ErrRoleTooHigh)
}

func (s *RoleColourServiceTestSuite) TestSetRoleSameAsBotTopRole() {
	s.mockGateway.EXPECT().Guild(gomock.Any(), "guild-1").Return(s.testGuild, nil)
	s.mockGateway.EXPECT().Member(gomock.Any(), "guild-1", "bot").Return(s.botMember, nil)

	_, err := s.roleColourService.SetRole(s.ctx, &SetRoleInput{GuildID: "guild-1", RoleID: "bot-role"})
	s.ErrorIs(err, ErrRoleTooHigh)
}

func (s *RoleColourServiceTestSuite) TestClearRole() {
	s.setRole("rainbow")

	out, err := s.roleColourService.SetRole(s.ctx, &SetRoleInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Nil(out.Role)

	s.mockGateway.EXPECT().Guild(gomock.Any(), "guild-1").Return(s.testGuild, nil)
	s.mockGateway.EXPECT().Member(gomock.Any(), "guild-1", "bot").Return(s.botMember, nil)
	settings, err := s.roleColourService.GetSettings(s.ctx, &GetSettingsInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Empty(settings.Settings.RoleID)
}

func (s *RoleColourServiceTestSuite) TestCycleRecoloursEnabledGuilds() {
	s.setRole("rainbow")
	s.Require().NoError(s.roleColourService.SetStatus(s.ctx, &SetStatusInput{GuildID: "guild-1", Enabled: true}))

	// a guild with a role but disabled is skipped
	s.Require().NoError(s.roleColourService.SetStatus(s.ctx, &SetStatusInput{GuildID: "guild-2", Enabled: false}))

	s.mockGateway.EXPECT().Guild(gomock.Any(), "guild-1").Return(s.testGuild, nil)
	s.mockPicker.EXPECT().Pick(0x123456).Return(0xABCDEF)
	s.mockGateway.EXPECT().EditRoleColour(gomock.Any(), "guild-1", "rainbow", 0xABCDEF).Return(nil)

	s.NoError(s.roleColourService.Cycle(s.ctx))
}

func (s *RoleColourServiceTestSuite) TestCycleSwallowsGuildErrors() {
	s.setRole("rainbow")
	s.Require().NoError(s.roleColourService.SetStatus(s.ctx, &SetStatusInput{GuildID: "guild-1", Enabled: true}))

	s.mockGateway.EXPECT().Guild(gomock.Any(), "guild-1").Return(s.testGuild, nil)
	s.mockPicker.EXPECT().Pick(gomock.Any()).Return(1)
	s.mockGateway.EXPECT().EditRoleColour(gomock.Any(), "guild-1", "rainbow", 1).Return(errors.New("missing permissions"))

	s.NoError(s.roleColourService.Cycle(s.ctx))
}

func (s *RoleColourServiceTestSuite) TestCycleStopsOnCancel() {
	s.setRole("rainbow")
	s.Require().NoError(s.roleColourService.SetStatus(s.ctx, &SetStatusInput{GuildID: "guild-1", Enabled: true}))

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.Error(s.roleColourService.Cycle(ctx))
}

func (s *RoleColourServiceTestSuite) TestRunStopsOnCancel() {
	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan struct{})
	go func() {
		s.roleColourService.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("run did not stop")
	}
}

func (s *RoleColourServiceTestSuite) TestGetSettingsWarnings() {
	s.setRole("rainbow")

	// the role has since been moved above the bot
	moved := *s.testGuild
	moved.Roles = []*discordgo.Role{
		{ID: "guild-1", Position: 0},
		{ID: "rainbow", Position: 9},
		{ID: "bot-role", Position: 5},
	}

	s.mockGateway.EXPECT().Guild(gomock.Any(), "guild-1").Return(&moved, nil)
	s.mockGateway.EXPECT().Member(gomock.Any(), "guild-1", "bot").Return(s.botMember, nil)

	out, err := s.roleColourService.GetSettings(s.ctx, &GetSettingsInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal([]string{WarningNoPermission, WarningRoleTooHigh, WarningDisabled}, out.Warnings)
}

func (s *RoleColourServiceTestSuite) TestReset() {
	s.setRole("rainbow")
	s.Require().NoError(s.roleColourService.Reset(s.ctx, &ResetInput{GuildID: "guild-1"}))

	s.mockGateway.EXPECT().Guild(gomock.Any(), "guild-1").Return(s.testGuild, nil)
	s.mockGateway.EXPECT().Member(gomock.Any(), "guild-1", "bot").Return(s.botMember, nil)

	out, err := s.roleColourService.GetSettings(s.ctx, &GetSettingsInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Empty(out.Settings.RoleID)
	s.Nil(out.Role)
}
