package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/noobcogs/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	leaderboardKeyPrefix = "leaderboard:"
)

// Config holds configuration for the Redis leaderboard repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis sorted sets
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed leaderboard repository
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

func (b Board) key() string {
	return fmt.Sprintf("%s%s:%s", leaderboardKeyPrefix, b.Name, b.GuildID)
}

func (b Board) valid() bool {
	return b.Name != "" && b.GuildID != ""
}

// Incr changes a member's score
func (r *redisRepository) Incr(ctx context.Context, input *IncrInput) (int64, error) {
	if input == nil || !input.Board.valid() || input.UserID == "" {
		return 0, errors.New("input, board and user ID cannot be empty")
	}

	score, err := r.client.ZIncrBy(ctx, input.Board.key(), float64(input.By), input.UserID).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment score: %w", err)
	}

	return int64(score), nil
}

// SetScore overwrites a member's score
func (r *redisRepository) SetScore(ctx context.Context, input *SetScoreInput) error {
	if input == nil || !input.Board.valid() || input.UserID == "" {
		return errors.New("input, board and user ID cannot be empty")
	}

	err := r.client.ZAdd(ctx, input.Board.key(), redis.Z{
		Score:  float64(input.Score),
		Member: input.UserID,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to set score: %w", err)
	}

	return nil
}

// Ensure adds a member at zero without touching an existing score
func (r *redisRepository) Ensure(ctx context.Context, input *EnsureInput) error {
	if input == nil || !input.Board.valid() || input.UserID == "" {
		return errors.New("input, board and user ID cannot be empty")
	}

	err := r.client.ZAddNX(ctx, input.Board.key(), redis.Z{Score: 0, Member: input.UserID}).Err()
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	return nil
}

// Score reads a member's score
func (r *redisRepository) Score(ctx context.Context, input *ScoreInput) (*ScoreOutput, error) {
	if input == nil || !input.Board.valid() || input.UserID == "" {
		return nil, errors.New("input, board and user ID cannot be empty")
	}

	score, err := r.client.ZScore(ctx, input.Board.key(), input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return &ScoreOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	return &ScoreOutput{Score: int64(score), Found: true}, nil
}

// Top returns the ranking
func (r *redisRepository) Top(ctx context.Context, input *TopInput) ([]*models.LeaderboardEntry, error) {
	if input == nil || !input.Board.valid() {
		return nil, errors.New("input and board cannot be empty")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	zs, err := r.client.ZRevRangeWithScores(ctx, input.Board.key(), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return toEntries(zs), nil
}

// Range returns members within a score range
func (r *redisRepository) Range(ctx context.Context, input *RangeInput) ([]*models.LeaderboardEntry, error) {
	if input == nil || !input.Board.valid() {
		return nil, errors.New("input and board cannot be empty")
	}

	zs, err := r.client.ZRevRangeByScoreWithScores(ctx, input.Board.key(), &redis.ZRangeBy{
		Min: strconv.FormatInt(input.Min, 10),
		Max: strconv.FormatInt(input.Max, 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score range: %w", err)
	}

	return toEntries(zs), nil
}

// Remove drops a member from a ranking
func (r *redisRepository) Remove(ctx context.Context, input *RemoveInput) (bool, error) {
	if input == nil || !input.Board.valid() || input.UserID == "" {
		return false, errors.New("input, board and user ID cannot be empty")
	}

	n, err := r.client.ZRem(ctx, input.Board.key(), input.UserID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to remove member: %w", err)
	}

	return n == 1, nil
}

// Clear drops a guild's ranking
func (r *redisRepository) Clear(ctx context.Context, input *ClearInput) error {
	if input == nil || !input.Board.valid() {
		return errors.New("input and board cannot be empty")
	}

	if err := r.client.Del(ctx, input.Board.key()).Err(); err != nil {
		return fmt.Errorf("failed to clear leaderboard: %w", err)
	}

	return nil
}

// ClearAll drops a ranking across guilds
func (r *redisRepository) ClearAll(ctx context.Context, input *ClearAllInput) error {
	if input == nil || input.Name == "" {
		return errors.New("input and name cannot be empty")
	}

	var keys []string
	iter := r.client.Scan(ctx, 0, leaderboardKeyPrefix+input.Name+":*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan leaderboards: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear leaderboards: %w", err)
	}

	return nil
}

func toEntries(zs []redis.Z) []*models.LeaderboardEntry {
	entries := make([]*models.LeaderboardEntry, 0, len(zs))
	for i, z := range zs {
		member, _ := z.Member.(string)
		entries = append(entries, &models.LeaderboardEntry{
			Rank:   i + 1,
			UserID: member,
			Score:  int64(z.Score),
		})
	}
	return entries
}
