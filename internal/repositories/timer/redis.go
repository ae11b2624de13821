package timer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/noobcogs/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	timersKeyPrefix  = "timers:"
	membersKeyPrefix = "timer_members:"
	claimKeyPrefix   = "timer_claim:"
	guildsKey        = "timer_guilds"
)

// ErrTimerNotFound is returned when a timer is not found
var ErrTimerNotFound = errors.New("timer not found")

// Config holds configuration for the Redis timer repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed timer repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func timersKey(guildID string) string {
	return timersKeyPrefix + guildID
}

func membersKey(guildID, messageID string) string {
	return fmt.Sprintf("%s%s:%s", membersKeyPrefix, guildID, messageID)
}

func claimKey(guildID, messageID string) string {
	return fmt.Sprintf("%s%s:%s", claimKeyPrefix, guildID, messageID)
}

// Create persists a timer to Redis
func (r *redisRepository) Create(ctx context.Context, input *CreateInput) error {
	if input == nil || input.Timer == nil {
		return errors.New("input and timer cannot be nil")
	}

	t := input.Timer
	if t.GuildID == "" || t.MessageID == "" {
		return errors.New("timer guild ID and message ID cannot be empty")
	}

	timerJSON, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal timer: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, timersKey(t.GuildID), t.MessageID, timerJSON)
	pipe.SAdd(ctx, guildsKey, t.GuildID)
	if len(t.Members) > 0 {
		members := make([]interface{}, len(t.Members))
		for i, m := range t.Members {
			members[i] = m
		}
		pipe.SAdd(ctx, membersKey(t.GuildID, t.MessageID), members...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save timer: %w", err)
	}

	return nil
}

// Get retrieves a timer from Redis
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*models.Timer, error) {
	if input == nil || input.GuildID == "" || input.MessageID == "" {
		return nil, errors.New("input, guild ID and message ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	timerCmd := pipe.HGet(ctx, timersKey(input.GuildID), input.MessageID)
	membersCmd := pipe.SMembers(ctx, membersKey(input.GuildID, input.MessageID))

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get timer: %w", err)
	}

	timerJSON, err := timerCmd.Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTimerNotFound
		}
		return nil, fmt.Errorf("failed to get timer: %w", err)
	}

	return decode(input.GuildID, input.MessageID, timerJSON, membersCmd.Val())
}

// ListByGuild retrieves all timers of a guild from Redis
func (r *redisRepository) ListByGuild(ctx context.Context, input *ListByGuildInput) (*ListByGuildOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	raw, err := r.client.HGetAll(ctx, timersKey(input.GuildID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list timers: %w", err)
	}

	if len(raw) == 0 {
		return &ListByGuildOutput{Timers: []*models.Timer{}}, nil
	}

	// Fetch every member set in one round trip
	pipe := r.client.Pipeline()
	memberCmds := make(map[string]*redis.StringSliceCmd, len(raw))
	for messageID := range raw {
		memberCmds[messageID] = pipe.SMembers(ctx, membersKey(input.GuildID, messageID))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get timer members: %w", err)
	}

	timers := make([]*models.Timer, 0, len(raw))
	for messageID, timerJSON := range raw {
		t, err := decode(input.GuildID, messageID, timerJSON, memberCmds[messageID].Val())
		if err != nil {
			return nil, err
		}
		timers = append(timers, t)
	}

	sort.Slice(timers, func(i, j int) bool {
		if timers[i].EndTimestamp == timers[j].EndTimestamp {
			return timers[i].MessageID < timers[j].MessageID
		}
		return timers[i].EndTimestamp < timers[j].EndTimestamp
	})

	return &ListByGuildOutput{Timers: timers}, nil
}

// ListGuilds returns the indexed guild IDs
func (r *redisRepository) ListGuilds(ctx context.Context) ([]string, error) {
	guilds, err := r.client.SMembers(ctx, guildsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list timer guilds: %w", err)
	}

	sort.Strings(guilds)
	return guilds, nil
}

// AddMember opts a member in to a timer's notification
func (r *redisRepository) AddMember(ctx context.Context, input *AddMemberInput) (bool, error) {
	if input == nil || input.GuildID == "" || input.MessageID == "" || input.UserID == "" {
		return false, errors.New("input, guild ID, message ID and user ID cannot be empty")
	}

	exists, err := r.client.HExists(ctx, timersKey(input.GuildID), input.MessageID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check timer: %w", err)
	}
	if !exists {
		return false, ErrTimerNotFound
	}

	added, err := r.client.SAdd(ctx, membersKey(input.GuildID, input.MessageID), input.UserID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to add timer member: %w", err)
	}

	return added == 1, nil
}

// Claim takes the end-action lock of a timer
func (r *redisRepository) Claim(ctx context.Context, input *ClaimInput) (bool, error) {
	if input == nil || input.GuildID == "" || input.MessageID == "" {
		return false, errors.New("input, guild ID and message ID cannot be empty")
	}

	ok, err := r.client.SetNX(ctx, claimKey(input.GuildID, input.MessageID), 1, input.TTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim timer: %w", err)
	}
	if !ok {
		return false, nil
	}

	// A claim on a timer that was already deleted owns nothing
	exists, err := r.client.HExists(ctx, timersKey(input.GuildID), input.MessageID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check claimed timer: %w", err)
	}

	return exists, nil
}

// Delete removes timers along with their members and claims
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (int64, error) {
	if input == nil || input.GuildID == "" {
		return 0, errors.New("input and guild ID cannot be empty")
	}

	if len(input.MessageIDs) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(input.MessageIDs)*2)
	for _, messageID := range input.MessageIDs {
		keys = append(keys, membersKey(input.GuildID, messageID), claimKey(input.GuildID, messageID))
	}

	pipe := r.client.TxPipeline()
	deleted := pipe.HDel(ctx, timersKey(input.GuildID), input.MessageIDs...)
	pipe.Del(ctx, keys...)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to delete timers: %w", err)
	}

	return deleted.Val(), nil
}

// DeleteGuild removes every timer of a guild
func (r *redisRepository) DeleteGuild(ctx context.Context, input *DeleteGuildInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	messageIDs, err := r.client.HKeys(ctx, timersKey(input.GuildID)).Result()
	if err != nil {
		return fmt.Errorf("failed to list timers: %w", err)
	}

	if _, err := r.Delete(ctx, &DeleteInput{GuildID: input.GuildID, MessageIDs: messageIDs}); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, timersKey(input.GuildID))
	pipe.SRem(ctx, guildsKey, input.GuildID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete guild timers: %w", err)
	}

	return nil
}

// DeleteAll removes every timer of every guild
func (r *redisRepository) DeleteAll(ctx context.Context) error {
	guilds, err := r.ListGuilds(ctx)
	if err != nil {
		return err
	}

	for _, guildID := range guilds {
		if err := r.DeleteGuild(ctx, &DeleteGuildInput{GuildID: guildID}); err != nil {
			return err
		}
	}

	return nil
}

func decode(guildID, messageID, timerJSON string, members []string) (*models.Timer, error) {
	var t models.Timer
	if err := json.Unmarshal([]byte(timerJSON), &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal timer %s: %w", messageID, err)
	}

	sort.Strings(members)
	t.GuildID = guildID
	t.MessageID = messageID
	t.Members = members

	return &t, nil
}
