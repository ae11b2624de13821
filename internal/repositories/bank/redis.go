package bank

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
	// Key prefix for Redis
	banksKeyPrefix = "donation_banks:"
)

var (
	// ErrBankNotFound is returned when a bank is not found
	ErrBankNotFound = errors.New("bank not found")

	// ErrBankExists is returned when creating a bank whose name is taken
	ErrBankExists = errors.New("bank already exists")
)

// Config holds configuration for the Redis bank repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed bank repository
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

func banksKey(guildID string) string {
	return banksKeyPrefix + guildID
}

func encode(input *SaveBankInput) ([]byte, error) {
	if input == nil || input.GuildID == "" || input.Bank == nil || input.Bank.Key() == "" {
		return nil, errors.New("input, guild ID and bank name cannot be empty")
	}

	bankJSON, err := json.Marshal(input.Bank)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bank: %w", err)
	}

	return bankJSON, nil
}

// CreateBank stores a bank unless one with the same name exists
func (r *redisRepository) CreateBank(ctx context.Context, input *SaveBankInput) error {
	bankJSON, err := encode(input)
	if err != nil {
		return err
	}

	created, err := r.client.HSetNX(ctx, banksKey(input.GuildID), input.Bank.Key(), bankJSON).Result()
	if err != nil {
		return fmt.Errorf("failed to create bank: %w", err)
	}
	if !created {
		return ErrBankExists
	}

	return nil
}

// SaveBank stores a bank
func (r *redisRepository) SaveBank(ctx context.Context, input *SaveBankInput) error {
	bankJSON, err := encode(input)
	if err != nil {
		return err
	}

	if err := r.client.HSet(ctx, banksKey(input.GuildID), input.Bank.Key(), bankJSON).Err(); err != nil {
		return fmt.Errorf("failed to save bank: %w", err)
	}

	return nil
}

// GetBank retrieves a bank from Redis
func (r *redisRepository) GetBank(ctx context.Context, input *GetBankInput) (*models.Bank, error) {
	if input == nil || input.GuildID == "" || input.Name == "" {
		return nil, errors.New("input, guild ID and bank name cannot be empty")
	}

	bankJSON, err := r.client.HGet(ctx, banksKey(input.GuildID), models.BankKey(input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}

	var b models.Bank
	if err := json.Unmarshal([]byte(bankJSON), &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bank: %w", err)
	}

	return &b, nil
}

// ListBanks retrieves all banks of a guild
func (r *redisRepository) ListBanks(ctx context.Context, input *ListBanksInput) ([]*models.Bank, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	raw, err := r.client.HGetAll(ctx, banksKey(input.GuildID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}

	banks := make([]*models.Bank, 0, len(raw))
	for key, bankJSON := range raw {
		var b models.Bank
		if err := json.Unmarshal([]byte(bankJSON), &b); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bank %s: %w", key, err)
		}
		banks = append(banks, &b)
	}

	sort.Slice(banks, func(i, j int) bool { return banks[i].Key() < banks[j].Key() })
	return banks, nil
}

// DeleteBank removes a bank from Redis
func (r *redisRepository) DeleteBank(ctx context.Context, input *DeleteBankInput) error {
	if input == nil || input.GuildID == "" || input.Name == "" {
		return errors.New("input, guild ID and bank name cannot be empty")
	}

	n, err := r.client.HDel(ctx, banksKey(input.GuildID), models.BankKey(input.Name)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete bank: %w", err)
	}
	if n == 0 {
		return ErrBankNotFound
	}

	return nil
}

// DeleteGuild removes every bank of a guild
func (r *redisRepository) DeleteGuild(ctx context.Context, input *DeleteGuildInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	if err := r.client.Del(ctx, banksKey(input.GuildID)).Err(); err != nil {
		return fmt.Errorf("failed to delete banks: %w", err)
	}

	return nil
}
