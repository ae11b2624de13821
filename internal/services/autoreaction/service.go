package autoreaction

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Guild scope fields map a lowercased word to its emoji
const cogName = "autoreaction"

// service implements the Service interface
type service struct {
	settingsRepo settingsRepo.Repository
	gateway      gateway.Gateway
	logger       *zap.Logger
}

// New creates a new automatic reaction service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}

	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		settingsRepo: cfg.SettingsRepo,
		gateway:      cfg.Gateway,
		logger:       logger,
	}, nil
}

// Add stores a reaction for a word
func (s *service) Add(ctx context.Context, input *AddInput) (*models.AutoReaction, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	word := strings.ToLower(strings.TrimSpace(input.Word))
	if word == "" {
		return nil, ErrEmptyWord
	}

	emoji := strings.TrimSpace(input.Emoji)
	if emoji == "" {
		return nil, ErrInvalidEmoji
	}

	if id, ok := gateway.CustomEmojiID(emoji); ok {
		guild, err := s.gateway.Guild(ctx, input.GuildID)
		if err != nil {
			return nil, fmt.Errorf("failed to get guild: %w", err)
		}
		if !hasEmoji(guild.Emojis, id) {
			return nil, ErrInvalidEmoji
		}
	}

	added, err := s.settingsRepo.SetIfAbsent(ctx, &settingsRepo.SetIfAbsentInput{
		Scope: settingsRepo.Guild(cogName, input.GuildID),
		Field: word,
		Value: emoji,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add reaction: %w", err)
	}

	if !added {
		return nil, ErrDuplicateWord
	}

	return &models.AutoReaction{Word: word, Emoji: emoji}, nil
}

// Remove drops the reaction of a word
func (s *service) Remove(ctx context.Context, input *RemoveInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	removed, err := s.settingsRepo.DeleteFields(ctx, &settingsRepo.DeleteFieldsInput{
		Scope:  settingsRepo.Guild(cogName, input.GuildID),
		Fields: []string{strings.ToLower(strings.TrimSpace(input.Word))},
	})
	if err != nil {
		return fmt.Errorf("failed to remove reaction: %w", err)
	}

	if removed == 0 {
		return ErrWordNotSet
	}

	return nil
}

// List returns the guild's reactions ordered by word
func (s *service) List(ctx context.Context, input *GuildInput) ([]*models.AutoReaction, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	reactions, err := s.reactions(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	if len(reactions) == 0 {
		return nil, ErrNoReactions
	}

	return reactions, nil
}

// ClearRemoved drops reactions whose custom emoji is gone and returns how many
func (s *service) ClearRemoved(ctx context.Context, input *GuildInput) (int, error) {
	if input == nil {
		return 0, errors.New("input cannot be nil")
	}

	guild, err := s.gateway.Guild(ctx, input.GuildID)
	if err != nil {
		return 0, fmt.Errorf("failed to get guild: %w", err)
	}

	return s.dropMissing(ctx, input.GuildID, guild.Emojis)
}

// HandleMessage adds every matching reaction to a message
func (s *service) HandleMessage(ctx context.Context, input *HandleMessageInput) error {
	if input == nil || input.GuildID == "" || input.AuthorBot || input.Content == "" {
		return nil
	}

	reactions, err := s.reactions(ctx, input.GuildID)
	if err != nil {
		return err
	}

	content := strings.ToLower(input.Content)
	for _, r := range reactions {
		if !strings.Contains(content, r.Word) {
			continue
		}

		if err := s.gateway.AddReaction(ctx, input.ChannelID, input.MessageID, gateway.ReactionEmoji(r.Emoji)); err != nil {
			s.logger.Debug("failed to add automatic reaction",
				zap.String("guild_id", input.GuildID),
				zap.String("word", r.Word),
				zap.Error(err),
			)
		}
	}

	return nil
}

// HandleEmojisUpdate drops reactions whose custom emoji was deleted
func (s *service) HandleEmojisUpdate(ctx context.Context, input *HandleEmojisUpdateInput) error {
	if input == nil || input.GuildID == "" {
		return nil
	}

	removed, err := s.dropMissing(ctx, input.GuildID, input.Emojis)
	if err != nil {
		return err
	}

	if removed > 0 {
		s.logger.Info("removed automatic reactions of deleted emojis",
			zap.String("guild_id", input.GuildID),
			zap.Int("count", removed),
		)
	}

	return nil
}

// ResetGuild drops a guild's reactions
func (s *service) ResetGuild(ctx context.Context, input *GuildInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return s.settingsRepo.Clear(ctx, &settingsRepo.ClearInput{Scope: settingsRepo.Guild(cogName, input.GuildID)})
}

// ResetCog drops every guild's reactions
func (s *service) ResetCog(ctx context.Context) error {
	return s.settingsRepo.ClearCog(ctx, &settingsRepo.ClearCogInput{Cog: cogName})
}

func (s *service) dropMissing(ctx context.Context, guildID string, emojis []*discordgo.Emoji) (int, error) {
	reactions, err := s.reactions(ctx, guildID)
	if err != nil {
		return 0, err
	}

	var missing []string
	for _, r := range reactions {
		id, ok := gateway.CustomEmojiID(r.Emoji)
		if ok && !hasEmoji(emojis, id) {
			missing = append(missing, r.Word)
		}
	}

	if len(missing) == 0 {
		return 0, nil
	}

	removed, err := s.settingsRepo.DeleteFields(ctx, &settingsRepo.DeleteFieldsInput{
		Scope:  settingsRepo.Guild(cogName, guildID),
		Fields: missing,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to remove reactions: %w", err)
	}

	return int(removed), nil
}

func (s *service) reactions(ctx context.Context, guildID string) ([]*models.AutoReaction, error) {
	fields, err := s.settingsRepo.GetAll(ctx, &settingsRepo.GetAllInput{Scope: settingsRepo.Guild(cogName, guildID)})
	if err != nil {
		return nil, fmt.Errorf("failed to get reactions: %w", err)
	}

	reactions := make([]*models.AutoReaction, 0, len(fields))
	for word, emoji := range fields {
		reactions = append(reactions, &models.AutoReaction{Word: word, Emoji: emoji})
	}
	sort.Slice(reactions, func(i, j int) bool { return reactions[i].Word < reactions[j].Word })

	return reactions, nil
}

func hasEmoji(emojis []*discordgo.Emoji, id string) bool {
	for _, e := range emojis {
		if e.ID == id && e.Available {
			return true
		}
	}
	return false
}
