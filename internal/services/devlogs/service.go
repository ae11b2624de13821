package devlogs

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/common/clock"
	"github.com/KirkDiggler/noobcogs/internal/common/format"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	devlogRepo "github.com/KirkDiggler/noobcogs/internal/repositories/devlog"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const cogName = "devlogs"

// Setting fields
const (
	fieldChannel       = "default_channel"
	fieldWatchedCustom = "watched_custom"

	setBypass  = "bypass"
	setWatched = "watched"
)

const (
	logColour       = 0x5865F2
	maxCodeLength   = 4000
	listPageLength  = 2000
	defaultHistory  = 10
	maxHistoryLimit = 50
)

// service implements the Service interface
type service struct {
	settingsRepo settingsRepo.Repository
	devlogRepo   devlogRepo.Repository
	gateway      gateway.Gateway
	systemInfo   SystemInfo
	clock        clock.Clock
	logger       *zap.Logger
	owners       []string
}

// New creates a new devlogs service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}

	if cfg.DevLogRepo == nil {
		return nil, ErrNilDevLogRepo
	}

	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	if cfg.SystemInfo == nil {
		return nil, ErrNilSystemInfo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		settingsRepo: cfg.SettingsRepo,
		devlogRepo:   cfg.DevLogRepo,
		gateway:      cfg.Gateway,
		systemInfo:   cfg.SystemInfo,
		clock:        cfg.Clock,
		logger:       logger,
		owners:       cfg.OwnerIDs,
	}, nil
}

// IsOwner reports whether a user is a bot owner
func (s *service) IsOwner(userID string) bool {
	return userID != "" && slices.Contains(s.owners, userID)
}

// OnCommandComplete archives an owner's watched command and posts it to the log channel
func (s *service) OnCommandComplete(ctx context.Context, input *OnCommandCompleteInput) (*OnCommandCompleteOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out := &OnCommandCompleteOutput{}
	if !s.IsOwner(input.AuthorID) {
		return out, nil
	}

	scope := settingsRepo.Global(cogName)

	bypass, err := s.settingsRepo.GetSet(ctx, &settingsRepo.GetSetInput{Scope: scope, Set: setBypass})
	if err != nil {
		return nil, fmt.Errorf("failed to get bypass list: %w", err)
	}
	if slices.Contains(bypass, input.AuthorID) {
		return out, nil
	}

	watched, _, err := s.watched(ctx)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(watched, strings.ToLower(input.Command)) {
		return out, nil
	}

	entry := &models.DevLogEntry{
		Command:   input.Command,
		Content:   strings.ReplaceAll(input.Content, "```", ""),
		AuthorID:  input.AuthorID,
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
		JumpURL:   input.JumpURL,
		CreatedAt: s.clock.Now().UTC(),
	}

	if err := s.devlogRepo.Save(ctx, &devlogRepo.SaveInput{Entry: entry}); err != nil {
		return nil, fmt.Errorf("failed to archive command: %w", err)
	}
	out.Logged = true
	out.Entry = entry

	fields, err := s.settingsRepo.GetAll(ctx, &settingsRepo.GetAllInput{Scope: scope})
	if err != nil {
		return nil, fmt.Errorf("failed to get devlogs settings: %w", err)
	}

	channelID := fields[fieldChannel]
	if channelID == "" {
		return out, nil
	}

	msg := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{logEmbed(input, entry)},
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

	if _, err := s.gateway.SendMessage(ctx, channelID, msg); err != nil {
		s.logger.Error("Error occurred while sending dev logs",
			zap.String("command", input.Command),
			zap.String("channel_id", channelID),
			zap.Error(err),
		)
		return out, nil
	}
	out.Sent = true

	return out, nil
}

func logEmbed(input *OnCommandCompleteInput, entry *models.DevLogEntry) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s Logs", strings.ToUpper(input.Command)),
		Description: "```py\n" + format.Truncate(entry.Content, maxCodeLength) + "\n```",
		Color:       logColour,
		Timestamp:   entry.CreatedAt.Format(time.RFC3339),
		Author: &discordgo.MessageEmbedAuthor{
			Name:    input.AuthorName,
			IconURL: input.AuthorIcon,
		},
	}

	if input.GuildID == "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Channel", Value: "DMs", Inline: true})
	} else {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{
				Name:   "Channel",
				Value:  fmt.Sprintf("%s\n%s\n(%s)", gateway.ChannelMention(input.ChannelID), input.ChannelName, input.ChannelID),
				Inline: true,
			},
			&discordgo.MessageEmbedField{
				Name:   "Guild",
				Value:  fmt.Sprintf("%s\n(%s)", input.GuildName, input.GuildID),
				Inline: true,
			},
		)
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Author",
		Value:  fmt.Sprintf("%s\n(%s)", input.AuthorName, input.AuthorID),
		Inline: true,
	})

	return embed
}

// SetChannel changes the log channel
func (s *service) SetChannel(ctx context.Context, input *SetChannelInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	scope := settingsRepo.Global(cogName)
	if input.ChannelID == "" {
		_, err := s.settingsRepo.DeleteFields(ctx, &settingsRepo.DeleteFieldsInput{Scope: scope, Fields: []string{fieldChannel}})
		return err
	}

	return s.settingsRepo.Set(ctx, &settingsRepo.SetInput{
		Scope:  scope,
		Fields: map[string]string{fieldChannel: input.ChannelID},
	})
}

// BypassAdd stops logging a user's commands
func (s *service) BypassAdd(ctx context.Context, input *BypassInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	added, err := s.settingsRepo.AddToSet(ctx, &settingsRepo.SetMemberInput{
		Scope:  settingsRepo.Global(cogName),
		Set:    setBypass,
		Member: input.UserID,
	})
	if err != nil {
		return fmt.Errorf("failed to add to bypass list: %w", err)
	}

	if !added {
		return ErrAlreadyBypassed
	}
	return nil
}

// BypassRemove resumes logging a user's commands
func (s *service) BypassRemove(ctx context.Context, input *BypassInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	removed, err := s.settingsRepo.RemoveFromSet(ctx, &settingsRepo.SetMemberInput{
		Scope:  settingsRepo.Global(cogName),
		Set:    setBypass,
		Member: input.UserID,
	})
	if err != nil {
		return fmt.Errorf("failed to remove from bypass list: %w", err)
	}

	if !removed {
		return ErrNotBypassed
	}
	return nil
}

// BypassList renders the bypassed users
func (s *service) BypassList(ctx context.Context) (*BypassListOutput, error) {
	ids, err := s.settingsRepo.GetSet(ctx, &settingsRepo.GetSetInput{Scope: settingsRepo.Global(cogName), Set: setBypass})
	if err != nil {
		return nil, fmt.Errorf("failed to get bypass list: %w", err)
	}

	if len(ids) == 0 {
		return nil, ErrNoBypass
	}

	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, fmt.Sprintf("` - ` %s (`%s`).", gateway.Mention(id), id))
	}

	return &BypassListOutput{
		UserIDs: ids,
		Pages:   gateway.PagifyLines(lines, "\n", listPageLength),
	}, nil
}

// Watch starts logging a command
func (s *service) Watch(ctx context.Context, input *WatchInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := s.customiseWatched(ctx); err != nil {
		return err
	}

	added, err := s.settingsRepo.AddToSet(ctx, &settingsRepo.SetMemberInput{
		Scope:  settingsRepo.Global(cogName),
		Set:    setWatched,
		Member: strings.ToLower(strings.TrimSpace(input.Command)),
	})
	if err != nil {
		return fmt.Errorf("failed to watch command: %w", err)
	}

	if !added {
		return ErrAlreadyWatched
	}
	return nil
}

// Unwatch stops logging a command
func (s *service) Unwatch(ctx context.Context, input *WatchInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := s.customiseWatched(ctx); err != nil {
		return err
	}

	removed, err := s.settingsRepo.RemoveFromSet(ctx, &settingsRepo.SetMemberInput{
		Scope:  settingsRepo.Global(cogName),
		Set:    setWatched,
		Member: strings.ToLower(strings.TrimSpace(input.Command)),
	})
	if err != nil {
		return fmt.Errorf("failed to unwatch command: %w", err)
	}

	if !removed {
		return ErrNotWatched
	}
	return nil
}

// History reads the newest archived entries
func (s *service) History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistory
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	entries, err := s.devlogRepo.Recent(ctx, &devlogRepo.RecentInput{Limit: limit, AuthorID: input.AuthorID})
	if err != nil {
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}

	if len(entries) == 0 {
		return nil, ErrNoHistory
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("` %d. ` **%s** by %s %s\n%s",
			e.ID, e.Command, gateway.Mention(e.AuthorID),
			format.Timestamp(e.CreatedAt, format.StyleRelative),
			"`"+format.Truncate(strings.ReplaceAll(e.Content, "`", ""), 200)+"`"))
	}

	return &HistoryOutput{
		Entries: entries,
		Pages:   gateway.PagifyLines(lines, "\n", listPageLength),
	}, nil
}

// Debug collects host statistics
func (s *service) Debug(ctx context.Context) (*SystemReport, error) {
	return s.systemInfo.Collect(ctx)
}

// GetSettings returns the devlogs settings
func (s *service) GetSettings(ctx context.Context) (*GetSettingsOutput, error) {
	scope := settingsRepo.Global(cogName)

	fields, err := s.settingsRepo.GetAll(ctx, &settingsRepo.GetAllInput{Scope: scope})
	if err != nil {
		return nil, fmt.Errorf("failed to get devlogs settings: %w", err)
	}

	bypass, err := s.settingsRepo.GetSet(ctx, &settingsRepo.GetSetInput{Scope: scope, Set: setBypass})
	if err != nil {
		return nil, fmt.Errorf("failed to get bypass list: %w", err)
	}

	watched, _, err := s.watched(ctx)
	if err != nil {
		return nil, err
	}

	return &GetSettingsOutput{Settings: &models.DevLogSettings{
		ChannelID: fields[fieldChannel],
		Bypass:    bypass,
		Watched:   watched,
	}}, nil
}

// Reset drops every devlogs setting
func (s *service) Reset(ctx context.Context) error {
	return s.settingsRepo.ClearCog(ctx, &settingsRepo.ClearCogInput{Cog: cogName})
}

// watched returns the logged commands and whether an owner has changed them
func (s *service) watched(ctx context.Context) ([]string, bool, error) {
	scope := settingsRepo.Global(cogName)

	fields, err := s.settingsRepo.GetAll(ctx, &settingsRepo.GetAllInput{Scope: scope})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get devlogs settings: %w", err)
	}

	if custom, _ := strconv.ParseBool(fields[fieldWatchedCustom]); !custom {
		return slices.Clone(DefaultWatched), false, nil
	}

	watched, err := s.settingsRepo.GetSet(ctx, &settingsRepo.GetSetInput{Scope: scope, Set: setWatched})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get watched commands: %w", err)
	}
	return watched, true, nil
}

// customiseWatched copies the defaults into the store before the first change
func (s *service) customiseWatched(ctx context.Context) error {
	_, custom, err := s.watched(ctx)
	if err != nil || custom {
		return err
	}

	scope := settingsRepo.Global(cogName)
	for _, cmd := range DefaultWatched {
		if _, err := s.settingsRepo.AddToSet(ctx, &settingsRepo.SetMemberInput{Scope: scope, Set: setWatched, Member: cmd}); err != nil {
			return fmt.Errorf("failed to watch command: %w", err)
		}
	}

	return s.settingsRepo.Set(ctx, &settingsRepo.SetInput{
		Scope:  scope,
		Fields: map[string]string{fieldWatchedCustom: "true"},
	})
}
