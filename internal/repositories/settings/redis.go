package settings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	keyPrefix       = "settings:"
	guildsKeySuffix = ":guilds"
	setKeyInfix     = ":set:"
	listKeyInfix    = ":list:"
)

// ErrInvalidScope is returned when a scope has no cog or a member scope has no guild
var ErrInvalidScope = errors.New("invalid settings scope")

// Config holds configuration for the Redis settings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed settings repository
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

func guildsKey(cog string) string {
	return keyPrefix + cog + guildsKeySuffix
}

func setKey(scope Scope, name string) string {
	return scope.Key() + setKeyInfix + name
}

func listKey(scope Scope, name string) string {
	return scope.Key() + listKeyInfix + name
}

// indexGuild records that the cog has state for the scope's guild
func indexGuild(ctx context.Context, pipe redis.Pipeliner, scope Scope) {
	if scope.GuildID != "" && scope.UserID == "" {
		pipe.SAdd(ctx, guildsKey(scope.Cog), scope.GuildID)
	}
}

// GetAll reads a whole scope
func (r *redisRepository) GetAll(ctx context.Context, input *GetAllInput) (map[string]string, error) {
	if input == nil || !input.Scope.valid() {
		return nil, ErrInvalidScope
	}

	fields, err := r.client.HGetAll(ctx, input.Scope.Key()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return fields, nil
}

// Set writes fields of a scope
func (r *redisRepository) Set(ctx context.Context, input *SetInput) error {
	if input == nil || !input.Scope.valid() {
		return ErrInvalidScope
	}

	if len(input.Fields) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(input.Fields)*2)
	for k, v := range input.Fields {
		values = append(values, k, v)
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, input.Scope.Key(), values...)
	indexGuild(ctx, pipe, input.Scope)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set settings: %w", err)
	}

	return nil
}

// SetIfAbsent writes a single field unless it already exists
func (r *redisRepository) SetIfAbsent(ctx context.Context, input *SetIfAbsentInput) (bool, error) {
	if input == nil || !input.Scope.valid() || input.Field == "" {
		return false, ErrInvalidScope
	}

	pipe := r.client.TxPipeline()
	set := pipe.HSetNX(ctx, input.Scope.Key(), input.Field, input.Value)
	indexGuild(ctx, pipe, input.Scope)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to set setting: %w", err)
	}

	return set.Val(), nil
}

// DeleteFields removes fields from a scope
func (r *redisRepository) DeleteFields(ctx context.Context, input *DeleteFieldsInput) (int64, error) {
	if input == nil || !input.Scope.valid() {
		return 0, ErrInvalidScope
	}

	if len(input.Fields) == 0 {
		return 0, nil
	}

	n, err := r.client.HDel(ctx, input.Scope.Key(), input.Fields...).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to delete settings: %w", err)
	}

	return n, nil
}

// Clear drops a scope with everything stored under it
func (r *redisRepository) Clear(ctx context.Context, input *ClearInput) error {
	if input == nil || !input.Scope.valid() {
		return ErrInvalidScope
	}

	key := input.Scope.Key()
	keys := []string{key}

	for _, pattern := range []string{key + setKeyInfix + "*", key + listKeyInfix + "*"} {
		found, err := r.scan(ctx, pattern)
		if err != nil {
			return err
		}
		keys = append(keys, found...)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, keys...)
	if input.Scope.GuildID != "" && input.Scope.UserID == "" {
		pipe.SRem(ctx, guildsKey(input.Scope.Cog), input.Scope.GuildID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}

	return nil
}

// ClearCog drops every key of a cog
func (r *redisRepository) ClearCog(ctx context.Context, input *ClearCogInput) error {
	if input == nil || input.Cog == "" {
		return ErrInvalidScope
	}

	keys, err := r.scan(ctx, keyPrefix+input.Cog+":*")
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear cog settings: %w", err)
	}

	return nil
}

// ListGuilds returns the indexed guild IDs, sorted
func (r *redisRepository) ListGuilds(ctx context.Context, input *ListGuildsInput) ([]string, error) {
	if input == nil || input.Cog == "" {
		return nil, ErrInvalidScope
	}

	guilds, err := r.client.SMembers(ctx, guildsKey(input.Cog)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list guilds: %w", err)
	}

	sort.Strings(guilds)
	return guilds, nil
}

// AddToSet adds a member to a set-valued setting
func (r *redisRepository) AddToSet(ctx context.Context, input *SetMemberInput) (bool, error) {
	if input == nil || !input.Scope.valid() || input.Set == "" {
		return false, ErrInvalidScope
	}

	pipe := r.client.TxPipeline()
	added := pipe.SAdd(ctx, setKey(input.Scope, input.Set), input.Member)
	indexGuild(ctx, pipe, input.Scope)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to add to set: %w", err)
	}

	return added.Val() == 1, nil
}

// RemoveFromSet removes a member from a set-valued setting
func (r *redisRepository) RemoveFromSet(ctx context.Context, input *SetMemberInput) (bool, error) {
	if input == nil || !input.Scope.valid() || input.Set == "" {
		return false, ErrInvalidScope
	}

	removed, err := r.client.SRem(ctx, setKey(input.Scope, input.Set), input.Member).Result()
	if err != nil {
		return false, fmt.Errorf("failed to remove from set: %w", err)
	}

	return removed == 1, nil
}

// GetSet returns the members of a set-valued setting, sorted
func (r *redisRepository) GetSet(ctx context.Context, input *GetSetInput) ([]string, error) {
	if input == nil || !input.Scope.valid() || input.Set == "" {
		return nil, ErrInvalidScope
	}

	members, err := r.client.SMembers(ctx, setKey(input.Scope, input.Set)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get set: %w", err)
	}

	sort.Strings(members)
	return members, nil
}

// Append pushes a value onto a list-valued setting
func (r *redisRepository) Append(ctx context.Context, input *AppendInput) error {
	if input == nil || !input.Scope.valid() || input.List == "" {
		return ErrInvalidScope
	}

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, listKey(input.Scope, input.List), input.Value)
	indexGuild(ctx, pipe, input.Scope)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append to list: %w", err)
	}

	return nil
}

// GetList returns a list-valued setting
func (r *redisRepository) GetList(ctx context.Context, input *GetListInput) ([]string, error) {
	if input == nil || !input.Scope.valid() || input.List == "" {
		return nil, ErrInvalidScope
	}

	values, err := r.client.LRange(ctx, listKey(input.Scope, input.List), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}

	return values, nil
}

// DrainList reads and deletes a list-valued setting in one transaction
func (r *redisRepository) DrainList(ctx context.Context, input *GetListInput) ([]string, error) {
	if input == nil || !input.Scope.valid() || input.List == "" {
		return nil, ErrInvalidScope
	}

	key := listKey(input.Scope, input.List)

	pipe := r.client.TxPipeline()
	values := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to drain list: %w", err)
	}

	return values.Val(), nil
}

func (r *redisRepository) scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", pattern, err)
	}
	return keys, nil
}
