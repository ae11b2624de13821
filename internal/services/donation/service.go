package donation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/common/clock"
	"github.com/KirkDiggler/noobcogs/internal/common/format"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	bankRepo "github.com/KirkDiggler/noobcogs/internal/repositories/bank"
	leaderboardRepo "github.com/KirkDiggler/noobcogs/internal/repositories/leaderboard"
	sessionRepo "github.com/KirkDiggler/noobcogs/internal/repositories/session"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const cogName = "donationlogger"

// Setting fields
const (
	fieldSetup        = "setup"
	fieldLogChannel   = "log_channel"
	setManagerRoles   = "manager_roles"
	boardPrefix       = "donation:"
	setupLockDuration = 10 * time.Minute
	pageLimit         = 2000
)

const (
	colourAdded   = 0x00ff00
	colourRemoved = 0xff0000
	colourInfo    = 0x5865f2
)

// service implements the Service interface
type service struct {
	settingsRepo    settingsRepo.Repository
	bankRepo        bankRepo.Repository
	leaderboardRepo leaderboardRepo.Repository
	sessionRepo     sessionRepo.Repository
	gateway         gateway.Gateway
	clock           clock.Clock
	logger          *zap.Logger
}

// New creates a new donation logger service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}

	if cfg.BankRepo == nil {
		return nil, ErrNilBankRepo
	}

	if cfg.LeaderboardRepo == nil {
		return nil, ErrNilLeaderboardRepo
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		settingsRepo:    cfg.SettingsRepo,
		bankRepo:        cfg.BankRepo,
		leaderboardRepo: cfg.LeaderboardRepo,
		sessionRepo:     cfg.SessionRepo,
		gateway:         cfg.Gateway,
		clock:           cfg.Clock,
		logger:          logger,
	}, nil
}

// Setup configures a guild's managers, log channel and banks
func (s *service) Setup(ctx context.Context, input *SetupInput) (*SetupOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !input.Actor.ManageGuild {
		return nil, ErrSetupPermission
	}

	if len(input.ManagerRoleIDs) == 0 {
		return nil, ErrNoManagers
	}

	if len(input.Banks) == 0 {
		return nil, ErrNoBanks
	}

	banks := make([]*models.Bank, 0, len(input.Banks))
	seen := make(map[string]bool)
	for _, spec := range input.Banks {
		bank, err := newBank(spec)
		if err != nil {
			return nil, err
		}
		if seen[bank.Key()] {
			return nil, &BankExistsError{Name: bank.Name}
		}
		seen[bank.Key()] = true
		banks = append(banks, bank)
	}

	locked, err := s.sessionRepo.Lock(ctx, &sessionRepo.LockInput{
		Name:  setupLock(input.GuildID),
		Owner: input.Actor.UserID,
		TTL:   setupLockDuration,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to lock setup: %w", err)
	}

	if !locked {
		return nil, ErrSetupInProgress
	}

	defer func() {
		if err := s.sessionRepo.Unlock(ctx, &sessionRepo.UnlockInput{Name: setupLock(input.GuildID)}); err != nil {
			s.logger.Warn("failed to release setup lock",
				zap.String("guild_id", input.GuildID),
				zap.Error(err),
			)
		}
	}()

	settings, err := s.loadSettings(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	if settings.Setup {
		return nil, ErrAlreadySetup
	}

	for _, bank := range banks {
		err := s.bankRepo.CreateBank(ctx, &bankRepo.SaveBankInput{GuildID: input.GuildID, Bank: bank})
		if err != nil {
			if errors.Is(err, bankRepo.ErrBankExists) {
				return nil, &BankExistsError{Name: bank.Name}
			}
			return nil, fmt.Errorf("failed to create bank: %w", err)
		}
	}

	scope := settingsRepo.Guild(cogName, input.GuildID)
	for _, roleID := range input.ManagerRoleIDs {
		_, err := s.settingsRepo.AddToSet(ctx, &settingsRepo.SetMemberInput{
			Scope:  scope,
			Set:    setManagerRoles,
			Member: roleID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to add manager role: %w", err)
		}
	}

	fields := map[string]string{fieldSetup: "true"}
	if input.LogChannelID != "" {
		fields[fieldLogChannel] = input.LogChannelID
	}

	if err := s.settingsRepo.Set(ctx, &settingsRepo.SetInput{Scope: scope, Fields: fields}); err != nil {
		return nil, fmt.Errorf("failed to save donation settings: %w", err)
	}

	s.logger.Info("donation logger set up",
		zap.String("guild_id", input.GuildID),
		zap.Int("banks", len(banks)),
	)

	settings, err = s.loadSettings(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	return &SetupOutput{Settings: settings, Banks: banks}, nil
}

// GetSettings returns the guild's configuration and banks
func (s *service) GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	settings, err := s.authorize(ctx, input.GuildID, input.Actor)
	if err != nil {
		return nil, err
	}

	banks, err := s.bankRepo.ListBanks(ctx, &bankRepo.ListBanksInput{GuildID: input.GuildID})
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}

	return &GetSettingsOutput{Settings: settings, Banks: banks}, nil
}

// SetLogChannel changes or clears the log channel
func (s *service) SetLogChannel(ctx context.Context, input *SetLogChannelInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if _, err := s.authorize(ctx, input.GuildID, input.Actor); err != nil {
		return err
	}

	scope := settingsRepo.Guild(cogName, input.GuildID)
	if input.ChannelID == "" {
		_, err := s.settingsRepo.DeleteFields(ctx, &settingsRepo.DeleteFieldsInput{
			Scope:  scope,
			Fields: []string{fieldLogChannel},
		})
		if err != nil {
			return fmt.Errorf("failed to clear log channel: %w", err)
		}
		return nil
	}

	err := s.settingsRepo.Set(ctx, &settingsRepo.SetInput{
		Scope:  scope,
		Fields: map[string]string{fieldLogChannel: input.ChannelID},
	})
	if err != nil {
		return fmt.Errorf("failed to set log channel: %w", err)
	}

	return nil
}

// AddManagerRole lets a role run donation commands
func (s *service) AddManagerRole(ctx context.Context, input *ManagerRoleInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if _, err := s.authorize(ctx, input.GuildID, input.Actor); err != nil {
		return err
	}

	_, err := s.settingsRepo.AddToSet(ctx, &settingsRepo.SetMemberInput{
		Scope:  settingsRepo.Guild(cogName, input.GuildID),
		Set:    setManagerRoles,
		Member: input.RoleID,
	})
	if err != nil {
		return fmt.Errorf("failed to add manager role: %w", err)
	}

	return nil
}

// RemoveManagerRole stops a role from running donation commands
func (s *service) RemoveManagerRole(ctx context.Context, input *ManagerRoleInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if _, err := s.authorize(ctx, input.GuildID, input.Actor); err != nil {
		return err
	}

	_, err := s.settingsRepo.RemoveFromSet(ctx, &settingsRepo.SetMemberInput{
		Scope:  settingsRepo.Guild(cogName, input.GuildID),
		Set:    setManagerRoles,
		Member: input.RoleID,
	})
	if err != nil {
		return fmt.Errorf("failed to remove manager role: %w", err)
	}

	return nil
}

// BankAdd creates a bank
func (s *service) BankAdd(ctx context.Context, input *BankAddInput) (*BankOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if _, err := s.authorize(ctx, input.GuildID, input.Actor); err != nil {
		return nil, err
	}

	bank, err := newBank(input.Bank)
	if err != nil {
		return nil, err
	}

	err = s.bankRepo.CreateBank(ctx, &bankRepo.SaveBankInput{GuildID: input.GuildID, Bank: bank})
	if err != nil {
		if errors.Is(err, bankRepo.ErrBankExists) {
			return nil, &BankExistsError{Name: bank.Name}
		}
		return nil, fmt.Errorf("failed to create bank: %w", err)
	}

	return &BankOutput{Bank: bank}, nil
}

// BankRemove deletes a bank and every balance in it
func (s *service) BankRemove(ctx context.Context, input *BankRemoveInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if _, err := s.authorize(ctx, input.GuildID, input.Actor); err != nil {
		return err
	}

	bank, err := s.getBank(ctx, input.GuildID, input.Name)
	if err != nil {
		return err
	}

	banks, err := s.bankRepo.ListBanks(ctx, &bankRepo.ListBanksInput{GuildID: input.GuildID})
	if err != nil {
		return fmt.Errorf("failed to list banks: %w", err)
	}

	if len(banks) <= 1 {
		return ErrLastBank
	}

	err = s.bankRepo.DeleteBank(ctx, &bankRepo.DeleteBankInput{GuildID: input.GuildID, Name: bank.Key()})
	if err != nil {
		return fmt.Errorf("failed to delete bank: %w", err)
	}

	err = s.leaderboardRepo.Clear(ctx, &leaderboardRepo.ClearInput{Board: board(input.GuildID, bank)})
	if err != nil {
		return fmt.Errorf("failed to clear bank balances: %w", err)
	}

	return nil
}

// BankHidden hides or shows a bank
func (s *service) BankHidden(ctx context.Context, input *BankHiddenInput) (*BankOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.updateBank(ctx, input.GuildID, input.Actor, input.Name, func(bank *models.Bank) error {
		bank.Hidden = input.Hidden
		return nil
	})
}

// BankMultiplier changes the multiplier applied to added amounts
func (s *service) BankMultiplier(ctx context.Context, input *BankMultiplierInput) (*BankOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Multiplier < 0 || math.IsNaN(input.Multiplier) || math.IsInf(input.Multiplier, 0) {
		return nil, ErrInvalidMulti
	}

	return s.updateBank(ctx, input.GuildID, input.Actor, input.Name, func(bank *models.Bank) error {
		bank.Multiplier = input.Multiplier
		return nil
	})
}

// BankEmoji changes the emoji shown next to amounts
func (s *service) BankEmoji(ctx context.Context, input *BankEmojiInput) (*BankOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.updateBank(ctx, input.GuildID, input.Actor, input.Name, func(bank *models.Bank) error {
		bank.Emoji = strings.TrimSpace(input.Emoji)
		if bank.Emoji == "" {
			bank.Emoji = DefaultEmoji
		}
		return nil
	})
}

// BankRolesAdd grants roles at a threshold
func (s *service) BankRolesAdd(ctx context.Context, input *BankRolesInput) (*BankOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Threshold <= 0 {
		return nil, ErrInvalidThreshold
	}

	if len(input.RoleIDs) == 0 {
		return nil, ErrNoRoles
	}

	return s.updateBank(ctx, input.GuildID, input.Actor, input.Name, func(bank *models.Bank) error {
		if bank.Roles == nil {
			bank.Roles = make(map[int64][]string)
		}

		roles := bank.Roles[input.Threshold]
		for _, roleID := range input.RoleIDs {
			if !slices.Contains(roles, roleID) {
				roles = append(roles, roleID)
			}
		}
		bank.Roles[input.Threshold] = roles
		return nil
	})
}

// BankRolesRemove drops roles from a threshold; no roles drops the threshold
func (s *service) BankRolesRemove(ctx context.Context, input *BankRolesInput) (*BankOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.updateBank(ctx, input.GuildID, input.Actor, input.Name, func(bank *models.Bank) error {
		if len(input.RoleIDs) == 0 {
			delete(bank.Roles, input.Threshold)
			return nil
		}

		roles := slices.DeleteFunc(bank.Roles[input.Threshold], func(roleID string) bool {
			return slices.Contains(input.RoleIDs, roleID)
		})
		if len(roles) == 0 {
			delete(bank.Roles, input.Threshold)
		} else {
			bank.Roles[input.Threshold] = roles
		}
		return nil
	})
}

// Add records a donation, applying the bank multiplier, and grants reached roles
func (s *service) Add(ctx context.Context, input *ChangeInput) (*ChangeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	settings, bank, err := s.prepareChange(ctx, input)
	if err != nil {
		return nil, err
	}

	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	amount := input.Amount
	if bank.Multiplier > 0 {
		amount = int64(math.RoundToEven(float64(amount) * bank.Multiplier))
	}

	if amount > MaxAmount {
		return nil, ErrAmountTooHigh
	}

	member, err := s.gateway.Member(ctx, input.GuildID, input.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	updated, err := s.leaderboardRepo.Incr(ctx, &leaderboardRepo.IncrInput{
		Board:  board(input.GuildID, bank),
		UserID: input.MemberID,
		By:     amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add donation: %w", err)
	}

	out := &ChangeOutput{
		Bank:     bank,
		Amount:   amount,
		Previous: updated - amount,
		Updated:  updated,
		Roles:    s.grantRoles(ctx, input.GuildID, member, bank, updated),
	}

	out.Embed = &discordgo.MessageEmbed{
		Title: "Successfully Added",
		Description: fmt.Sprintf(
			"%s **%s** was added to **%s**'s **__%s__** donation balance.\n"+
				"Their total donation balance is now **%s %s** on **__%s__**.",
			bank.Emoji, format.Number(amount), memberName(member), bank.Name,
			bank.Emoji, format.Number(updated), bank.Name,
		),
		Color:     colourAdded,
		Timestamp: clock.EmbedTimestamp(s.clock),
	}
	if bank.Multiplier > 0 {
		out.Embed.Footer = &discordgo.MessageEmbedFooter{
			Text: "Donation Multiplier: x" + strconv.FormatFloat(bank.Multiplier, 'f', -1, 64),
		}
	}
	addRolesField(out.Embed, "Added Donation Roles:", out.Roles)

	s.logChange(ctx, settings, input, "Added", out)

	return out, nil
}

// Remove takes an amount off a member's balance and removes roles above the result
func (s *service) Remove(ctx context.Context, input *ChangeInput) (*ChangeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	settings, bank, err := s.prepareChange(ctx, input)
	if err != nil {
		return nil, err
	}

	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	b := board(input.GuildID, bank)
	current, err := s.leaderboardRepo.Score(ctx, &leaderboardRepo.ScoreInput{Board: b, UserID: input.MemberID})
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	if !current.Found || current.Score == 0 {
		return nil, ErrZeroBalance
	}

	member, err := s.gateway.Member(ctx, input.GuildID, input.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	remaining, err := s.leaderboardRepo.Incr(ctx, &leaderboardRepo.IncrInput{
		Board:  b,
		UserID: input.MemberID,
		By:     -input.Amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove donation: %w", err)
	}

	updated := remaining
	if remaining < 0 {
		if _, err := s.leaderboardRepo.Remove(ctx, &leaderboardRepo.RemoveInput{Board: b, UserID: input.MemberID}); err != nil {
			return nil, fmt.Errorf("failed to drop balance: %w", err)
		}
		updated = 0
	}

	out := &ChangeOutput{
		Bank:     bank,
		Amount:   input.Amount,
		Previous: remaining + input.Amount,
		Updated:  updated,
		Roles:    s.takeRoles(ctx, input.GuildID, member, bank, updated),
	}

	out.Embed = &discordgo.MessageEmbed{
		Title: "Successfully Removed",
		Description: fmt.Sprintf(
			"%s **%s** was removed from **%s**'s **__%s__** donation balance.\n"+
				"Their total donation balance is now **%s %s** on **__%s__**.",
			bank.Emoji, format.Number(input.Amount), memberName(member), bank.Name,
			bank.Emoji, format.Number(updated), bank.Name,
		),
		Color:     colourRemoved,
		Timestamp: clock.EmbedTimestamp(s.clock),
	}
	addRolesField(out.Embed, "Removed Donation Roles:", out.Roles)

	s.logChange(ctx, settings, input, "Removed", out)

	return out, nil
}

// Set overwrites a member's balance and brings their roles in line with it
func (s *service) Set(ctx context.Context, input *ChangeInput) (*ChangeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	settings, bank, err := s.prepareChange(ctx, input)
	if err != nil {
		return nil, err
	}

	if input.Amount < 0 {
		return nil, ErrNegativeAmount
	}

	if input.Amount > MaxAmount {
		return nil, ErrAmountTooHigh
	}

	member, err := s.gateway.Member(ctx, input.GuildID, input.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	b := board(input.GuildID, bank)
	current, err := s.leaderboardRepo.Score(ctx, &leaderboardRepo.ScoreInput{Board: b, UserID: input.MemberID})
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	err = s.leaderboardRepo.SetScore(ctx, &leaderboardRepo.SetScoreInput{
		Board:  b,
		UserID: input.MemberID,
		Score:  input.Amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set balance: %w", err)
	}

	roles := s.grantRoles(ctx, input.GuildID, member, bank, input.Amount)
	roles = append(roles, s.takeRoles(ctx, input.GuildID, member, bank, input.Amount)...)

	out := &ChangeOutput{
		Bank:     bank,
		Amount:   input.Amount,
		Previous: current.Score,
		Updated:  input.Amount,
		Roles:    roles,
	}

	out.Embed = &discordgo.MessageEmbed{
		Title: "Successfully Set",
		Description: fmt.Sprintf(
			"%s **%s** was set as **%s**'s **__%s__** donation balance.",
			bank.Emoji, format.Number(input.Amount), memberName(member), bank.Name,
		),
		Color:     colourInfo,
		Timestamp: clock.EmbedTimestamp(s.clock),
	}
	addRolesField(out.Embed, "Added/Removed Donation Roles:", out.Roles)

	s.logChange(ctx, settings, input, "Set", out)

	return out, nil
}

// Balance shows a member's balance in one bank or every visible bank
func (s *service) Balance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if _, err := s.authorize(ctx, input.GuildID, input.Actor); err != nil {
		return nil, err
	}

	var banks []*models.Bank
	if input.Bank != "" {
		bank, err := s.visibleBank(ctx, input.GuildID, input.Bank)
		if err != nil {
			return nil, err
		}
		banks = []*models.Bank{bank}
	} else {
		all, err := s.bankRepo.ListBanks(ctx, &bankRepo.ListBanksInput{GuildID: input.GuildID})
		if err != nil {
			return nil, fmt.Errorf("failed to list banks: %w", err)
		}
		for _, bank := range all {
			if !bank.Hidden {
				banks = append(banks, bank)
			}
		}
	}

	name := input.MemberID
	member, err := s.gateway.Member(ctx, input.GuildID, input.MemberID)
	switch {
	case err == nil:
		name = memberName(member)
	case !gateway.IsNotFound(err):
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	out := &BalanceOutput{
		Balances: make(map[string]int64, len(banks)),
		Embed: &discordgo.MessageEmbed{
			Title:     fmt.Sprintf("%s (%s)", name, input.MemberID),
			Color:     colourInfo,
			Timestamp: clock.EmbedTimestamp(s.clock),
		},
	}

	for _, bank := range banks {
		score, err := s.leaderboardRepo.Score(ctx, &leaderboardRepo.ScoreInput{
			Board:  board(input.GuildID, bank),
			UserID: input.MemberID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get balance: %w", err)
		}
		out.Balances[bank.Key()] = score.Score

		if input.Bank != "" {
			out.Embed.Description = fmt.Sprintf("Bank: %s\nTotal amount donated: %s %s",
				bank.Name, bank.Emoji, format.Number(score.Score))
			continue
		}

		out.Embed.Fields = append(out.Embed.Fields, &discordgo.MessageEmbedField{
			Name:   bank.Name,
			Value:  fmt.Sprintf("%s %s", bank.Emoji, format.Number(score.Score)),
			Inline: true,
		})
	}

	if len(banks) == 0 {
		out.Embed.Description = "There are no banks to show."
	}

	return out, nil
}

// Check lists donators with at least, or less than, an amount
func (s *service) Check(ctx context.Context, input *CheckInput) (*CheckOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if _, err := s.authorize(ctx, input.GuildID, input.Actor); err != nil {
		return nil, err
	}

	bank, err := s.visibleBank(ctx, input.GuildID, input.Bank)
	if err != nil {
		return nil, err
	}

	b := board(input.GuildID, bank)

	var entries []*models.LeaderboardEntry
	var title string
	switch input.Mode {
	case CheckAll:
		entries, err = s.leaderboardRepo.Top(ctx, &leaderboardRepo.TopInput{Board: b})
		title = fmt.Sprintf("All donators for [%s]", bank.Name)
	case CheckMore, CheckLess:
		if input.Amount <= 0 {
			return nil, ErrInvalidAmount
		}

		rng := &leaderboardRepo.RangeInput{Board: b, Min: input.Amount, Max: math.MaxInt64}
		if input.Mode == CheckLess {
			rng = &leaderboardRepo.RangeInput{Board: b, Min: math.MinInt64, Max: input.Amount - 1}
		}

		entries, err = s.leaderboardRepo.Range(ctx, rng)
		if input.Mode == CheckLess {
			slices.Reverse(entries)
		}
		title = fmt.Sprintf("All members who have donated %s than %s for [%s]",
			input.Mode, format.Number(input.Amount), bank.Name)
	default:
		return nil, ErrInvalidMode
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get donators: %w", err)
	}

	lines := make([]string, 0, len(entries))
	for i, entry := range entries {
		entry.Rank = i + 1

		marker := ""
		if entry.UserID == input.Actor.UserID {
			marker = "➡️ "
		}
		lines = append(lines, fmt.Sprintf("%s%d. %s (`%s`): **%s**",
			marker, entry.Rank, gateway.Mention(entry.UserID), entry.UserID, format.Number(entry.Score)))
	}

	if len(lines) == 0 {
		if input.Mode == CheckAll {
			lines = append(lines, "It seems no one has donated from this bank yet.")
		} else {
			lines = append(lines, fmt.Sprintf("No one has donated %s than **%s** yet.",
				input.Mode, format.Number(input.Amount)))
		}
	}

	text := gateway.PagifyLines(lines, "\n", pageLimit)
	pages := make([]*discordgo.MessageEmbed, 0, len(text))
	for i, page := range text {
		pages = append(pages, &discordgo.MessageEmbed{
			Title:       title,
			Description: page,
			Color:       colourInfo,
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Page (%d/%d)", i+1, len(text)),
			},
		})
	}

	return &CheckOutput{Entries: entries, Pages: pages}, nil
}

// Leaderboard ranks a bank's donators, skipping empty balances
func (s *service) Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if _, err := s.authorize(ctx, input.GuildID, input.Actor); err != nil {
		return nil, err
	}

	bank, err := s.visibleBank(ctx, input.GuildID, input.Bank)
	if err != nil {
		return nil, err
	}

	top := input.Top
	if top <= 0 {
		top = DefaultLeaderboardSize
	}

	all, err := s.leaderboardRepo.Top(ctx, &leaderboardRepo.TopInput{Board: board(input.GuildID, bank)})
	if err != nil {
		return nil, fmt.Errorf("failed to get donators: %w", err)
	}

	embed := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("Top %d donators for [%s]", top, bank.Name),
		Color:     colourInfo,
		Timestamp: clock.EmbedTimestamp(s.clock),
	}

	var entries []*models.LeaderboardEntry
	for _, entry := range all {
		if len(entries) == top {
			break
		}

		if entry.Score <= 0 {
			continue
		}

		var name string
		member, err := s.gateway.Member(ctx, input.GuildID, entry.UserID)
		switch {
		case err == nil:
			name = memberName(member)
		case gateway.IsNotFound(err):
			if !input.ShowLeftUsers {
				continue
			}
			name = fmt.Sprintf("[Member not found in guild] (%s)", entry.UserID)
		default:
			return nil, fmt.Errorf("failed to get member: %w", err)
		}

		entries = append(entries, &models.LeaderboardEntry{
			Rank:   len(entries) + 1,
			UserID: entry.UserID,
			Score:  entry.Score,
		})
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%d. %s", len(entries), name),
			Value: fmt.Sprintf("%s %s", bank.Emoji, format.Number(entry.Score)),
		})
	}

	if len(entries) == 0 {
		embed.Description = "It seems no one has donated from this bank yet."
	}

	return &LeaderboardOutput{Entries: entries, Embed: embed}, nil
}

// ResetUser drops a member's balance in one bank or all of them
func (s *service) ResetUser(ctx context.Context, input *ResetUserInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if _, err := s.authorize(ctx, input.GuildID, input.Actor); err != nil {
		return err
	}

	var banks []*models.Bank
	if input.Bank != "" {
		bank, err := s.getBank(ctx, input.GuildID, input.Bank)
		if err != nil {
			return err
		}
		banks = []*models.Bank{bank}
	} else {
		all, err := s.bankRepo.ListBanks(ctx, &bankRepo.ListBanksInput{GuildID: input.GuildID})
		if err != nil {
			return fmt.Errorf("failed to list banks: %w", err)
		}
		banks = all
	}

	for _, bank := range banks {
		_, err := s.leaderboardRepo.Remove(ctx, &leaderboardRepo.RemoveInput{
			Board:  board(input.GuildID, bank),
			UserID: input.MemberID,
		})
		if err != nil {
			return fmt.Errorf("failed to reset balance: %w", err)
		}
	}

	return nil
}

// Reset drops every bank, balance and setting of the guild
func (s *service) Reset(ctx context.Context, input *ResetInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if _, err := s.authorize(ctx, input.GuildID, input.Actor); err != nil {
		return err
	}

	banks, err := s.bankRepo.ListBanks(ctx, &bankRepo.ListBanksInput{GuildID: input.GuildID})
	if err != nil {
		return fmt.Errorf("failed to list banks: %w", err)
	}

	for _, bank := range banks {
		err := s.leaderboardRepo.Clear(ctx, &leaderboardRepo.ClearInput{Board: board(input.GuildID, bank)})
		if err != nil {
			return fmt.Errorf("failed to clear bank balances: %w", err)
		}
	}

	if err := s.bankRepo.DeleteGuild(ctx, &bankRepo.DeleteGuildInput{GuildID: input.GuildID}); err != nil {
		return fmt.Errorf("failed to delete banks: %w", err)
	}

	err = s.settingsRepo.Clear(ctx, &settingsRepo.ClearInput{Scope: settingsRepo.Guild(cogName, input.GuildID)})
	if err != nil {
		return fmt.Errorf("failed to clear donation settings: %w", err)
	}

	s.logger.Info("donation logger reset", zap.String("guild_id", input.GuildID))

	return nil
}

func (s *service) loadSettings(ctx context.Context, guildID string) (*models.DonationSettings, error) {
	scope := settingsRepo.Guild(cogName, guildID)

	fields, err := s.settingsRepo.GetAll(ctx, &settingsRepo.GetAllInput{Scope: scope})
	if err != nil {
		return nil, fmt.Errorf("failed to get donation settings: %w", err)
	}

	managers, err := s.settingsRepo.GetSet(ctx, &settingsRepo.GetSetInput{Scope: scope, Set: setManagerRoles})
	if err != nil {
		return nil, fmt.Errorf("failed to get manager roles: %w", err)
	}

	return &models.DonationSettings{
		Setup:        fields[fieldSetup] == "true",
		LogChannelID: fields[fieldLogChannel],
		ManagerRoles: managers,
	}, nil
}

// authorize requires a set up guild and a manager or Manage Server actor
func (s *service) authorize(ctx context.Context, guildID string, actor Actor) (*models.DonationSettings, error) {
	settings, err := s.loadSettings(ctx, guildID)
	if err != nil {
		return nil, err
	}

	if !settings.Setup {
		return nil, ErrNotSetup
	}

	if actor.ManageGuild {
		return settings, nil
	}

	for _, roleID := range actor.RoleIDs {
		if slices.Contains(settings.ManagerRoles, roleID) {
			return settings, nil
		}
	}

	return nil, ErrNotManager
}

func (s *service) getBank(ctx context.Context, guildID, name string) (*models.Bank, error) {
	bank, err := s.bankRepo.GetBank(ctx, &bankRepo.GetBankInput{GuildID: guildID, Name: models.BankKey(name)})
	if err != nil {
		if errors.Is(err, bankRepo.ErrBankNotFound) {
			return nil, &BankNotFoundError{Name: name}
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}

	return bank, nil
}

func (s *service) visibleBank(ctx context.Context, guildID, name string) (*models.Bank, error) {
	bank, err := s.getBank(ctx, guildID, name)
	if err != nil {
		return nil, err
	}

	if bank.Hidden {
		return nil, ErrBankHidden
	}

	return bank, nil
}

func (s *service) prepareChange(ctx context.Context, input *ChangeInput) (*models.DonationSettings, *models.Bank, error) {
	settings, err := s.authorize(ctx, input.GuildID, input.Actor)
	if err != nil {
		return nil, nil, err
	}

	bank, err := s.visibleBank(ctx, input.GuildID, input.Bank)
	if err != nil {
		return nil, nil, err
	}

	return settings, bank, nil
}

func (s *service) updateBank(ctx context.Context, guildID string, actor Actor, name string, change func(*models.Bank) error) (*BankOutput, error) {
	if _, err := s.authorize(ctx, guildID, actor); err != nil {
		return nil, err
	}

	bank, err := s.getBank(ctx, guildID, name)
	if err != nil {
		return nil, err
	}

	if err := change(bank); err != nil {
		return nil, err
	}

	if err := s.bankRepo.SaveBank(ctx, &bankRepo.SaveBankInput{GuildID: guildID, Bank: bank}); err != nil {
		return nil, fmt.Errorf("failed to save bank: %w", err)
	}

	return &BankOutput{Bank: bank}, nil
}

// grantRoles adds every role reached by balance that the member lacks
func (s *service) grantRoles(ctx context.Context, guildID string, member *discordgo.Member, bank *models.Bank, balance int64) []string {
	var granted []string
	for _, roleID := range bank.RolesReachedBy(balance) {
		if slices.Contains(member.Roles, roleID) || slices.Contains(granted, roleID) {
			continue
		}

		if err := s.gateway.AddRole(ctx, guildID, member.User.ID, roleID); err != nil {
			s.logger.Warn("failed to grant donation role",
				zap.String("guild_id", guildID),
				zap.String("user_id", member.User.ID),
				zap.String("role_id", roleID),
				zap.Error(err),
			)
			continue
		}
		granted = append(granted, roleID)
	}

	return granted
}

// takeRoles removes every role above balance that the member holds, unless a lower threshold also grants it
func (s *service) takeRoles(ctx context.Context, guildID string, member *discordgo.Member, bank *models.Bank, balance int64) []string {
	reached := bank.RolesReachedBy(balance)

	var taken []string
	for _, roleID := range bank.RolesAbove(balance) {
		if !slices.Contains(member.Roles, roleID) || slices.Contains(reached, roleID) || slices.Contains(taken, roleID) {
			continue
		}

		if err := s.gateway.RemoveRole(ctx, guildID, member.User.ID, roleID); err != nil {
			s.logger.Warn("failed to remove donation role",
				zap.String("guild_id", guildID),
				zap.String("user_id", member.User.ID),
				zap.String("role_id", roleID),
				zap.Error(err),
			)
			continue
		}
		taken = append(taken, roleID)
	}

	return taken
}

// logChange posts a balance change to the log channel; failures are logged only
func (s *service) logChange(ctx context.Context, settings *models.DonationSettings, input *ChangeInput, action string, out *ChangeOutput) {
	if settings.LogChannelID == "" {
		return
	}

	bank := out.Bank
	embed := &discordgo.MessageEmbed{
		Title: "Donation " + action,
		Color: colourInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Member", Value: fmt.Sprintf("%s (`%s`)", gateway.Mention(input.MemberID), input.MemberID), Inline: true},
			{Name: "Moderator", Value: fmt.Sprintf("%s (`%s`)", gateway.Mention(input.Actor.UserID), input.Actor.UserID), Inline: true},
			{Name: "Bank", Value: bank.Name, Inline: true},
			{Name: "Amount", Value: fmt.Sprintf("%s %s", bank.Emoji, format.Number(out.Amount)), Inline: true},
			{Name: "Previous Balance", Value: fmt.Sprintf("%s %s", bank.Emoji, format.Number(out.Previous)), Inline: true},
			{Name: "Updated Balance", Value: fmt.Sprintf("%s %s", bank.Emoji, format.Number(out.Updated)), Inline: true},
		},
		Timestamp: clock.EmbedTimestamp(s.clock),
	}
	addRolesField(embed, "Roles", out.Roles)
	if note := strings.TrimSpace(input.Note); note != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Note",
			Value: format.Truncate(note, 1024),
		})
	}

	msg := &discordgo.MessageSend{
		Embeds:          []*discordgo.MessageEmbed{embed},
		AllowedMentions: &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}},
	}
	if input.JumpURL != "" {
		msg.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{Label: "Jump To Command", Style: discordgo.LinkButton, URL: input.JumpURL},
				},
			},
		}
	}

	if _, err := s.gateway.SendMessage(ctx, settings.LogChannelID, msg); err != nil {
		s.logger.Error("failed to post donation log",
			zap.String("guild_id", input.GuildID),
			zap.String("channel_id", settings.LogChannelID),
			zap.Error(err),
		)
	}
}

func newBank(spec BankSpec) (*models.Bank, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	emoji := strings.TrimSpace(spec.Emoji)
	if emoji == "" {
		emoji = DefaultEmoji
	}

	return &models.Bank{
		Name:  name,
		Emoji: emoji,
		Roles: make(map[int64][]string),
	}, nil
}

func board(guildID string, bank *models.Bank) leaderboardRepo.Board {
	return leaderboardRepo.Board{Name: boardPrefix + bank.Key(), GuildID: guildID}
}

func setupLock(guildID string) string {
	return cogName + ":setup:" + guildID
}

func memberName(member *discordgo.Member) string {
	if member.User != nil && member.User.Username != "" {
		return member.User.Username
	}
	return gateway.DisplayName(member)
}

func addRolesField(embed *discordgo.MessageEmbed, name string, roleIDs []string) {
	if len(roleIDs) == 0 {
		return
	}

	mentions := make([]string, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		mentions = append(mentions, gateway.RoleMention(roleID))
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  name,
		Value: format.List(mentions),
	})
}
