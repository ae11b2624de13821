package session

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
	sessionKeyPrefix      = "view_session:"
	countKeyPrefix        = "view_session_count:"
	participantsKeyPrefix = "view_session_participants:"
	lockKeyPrefix         = "view_session_lock:"
)

// ErrSessionNotFound is returned when a session does not exist or has expired
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

func sessionKeys(id string) []string {
	return []string{sessionKeyPrefix + id, countKeyPrefix + id, participantsKeyPrefix + id}
}

// Create stores a new session
func (r *redisRepository) Create(ctx context.Context, input *CreateInput) error {
	if input == nil || input.Session == nil {
		return errors.New("session cannot be nil")
	}

	if input.Session.ID == "" {
		return errors.New("session ID is required")
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKeyPrefix+input.Session.ID, data, input.TTL)
	pipe.Set(ctx, countKeyPrefix+input.Session.ID, input.Session.Count, input.TTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

// Get retrieves a session with its count and participants
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*models.ViewSession, error) {
	if input == nil || input.ID == "" {
		return nil, errors.New("session ID is required")
	}

	keys := sessionKeys(input.ID)

	pipe := r.client.Pipeline()
	data := pipe.Get(ctx, keys[0])
	count := pipe.Get(ctx, keys[1])
	participants := pipe.SMembers(ctx, keys[2])

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	raw, err := data.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.ViewSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	session.Count, _ = count.Int64()
	session.Participants = participants.Val()
	sort.Strings(session.Participants)

	return &session, nil
}

// SetMessage records the message a session is attached to, keeping its lifetime
func (r *redisRepository) SetMessage(ctx context.Context, input *SetMessageInput) error {
	if input == nil || input.ID == "" {
		return errors.New("session ID is required")
	}

	session, err := r.Get(ctx, &GetInput{ID: input.ID})
	if err != nil {
		return err
	}

	session.ChannelID = input.ChannelID
	session.MessageID = input.MessageID

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.SetArgs(ctx, sessionKeyPrefix+input.ID, data, redis.SetArgs{KeepTTL: true}).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

// Incr bumps the session count
func (r *redisRepository) Incr(ctx context.Context, input *IncrInput) (int64, error) {
	if input == nil || input.ID == "" {
		return 0, errors.New("session ID is required")
	}

	keys := sessionKeys(input.ID)

	exists, err := r.client.Exists(ctx, keys[0]).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to check session: %w", err)
	}
	if exists == 0 {
		return 0, ErrSessionNotFound
	}

	pipe := r.client.TxPipeline()
	count := pipe.Incr(ctx, keys[1])
	if input.TTL > 0 {
		for _, key := range keys {
			pipe.Expire(ctx, key, input.TTL)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to count interaction: %w", err)
	}

	return count.Val(), nil
}

// AddParticipant records a participant; the set lives as long as the session
func (r *redisRepository) AddParticipant(ctx context.Context, input *AddParticipantInput) (bool, error) {
	if input == nil || input.ID == "" {
		return false, errors.New("session ID is required")
	}

	keys := sessionKeys(input.ID)

	ttl, err := r.client.PTTL(ctx, keys[0]).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	// PTTL reports -2 for missing keys
	if ttl == -2 {
		return false, ErrSessionNotFound
	}

	pipe := r.client.TxPipeline()
	added := pipe.SAdd(ctx, keys[2], input.UserID)
	if ttl > 0 {
		pipe.PExpire(ctx, keys[2], ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to add participant: %w", err)
	}

	return added.Val() == 1, nil
}

// Delete removes a session
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) error {
	if input == nil || input.ID == "" {
		return errors.New("session ID is required")
	}

	if err := r.client.Del(ctx, sessionKeys(input.ID)...).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Lock takes a named lock
func (r *redisRepository) Lock(ctx context.Context, input *LockInput) (bool, error) {
	if input == nil || input.Name == "" {
		return false, errors.New("lock name is required")
	}

	ok, err := r.client.SetNX(ctx, lockKeyPrefix+input.Name, input.Owner, input.TTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to take lock: %w", err)
	}

	return ok, nil
}

// Unlock releases a named lock
func (r *redisRepository) Unlock(ctx context.Context, input *UnlockInput) error {
	if input == nil || input.Name == "" {
		return errors.New("lock name is required")
	}

	if err := r.client.Del(ctx, lockKeyPrefix+input.Name).Err(); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}

	return nil
}
