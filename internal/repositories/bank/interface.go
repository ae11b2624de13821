package bank

import (
	"context"

	"github.com/KirkDiggler/noobcogs/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/noobcogs/internal/repositories/bank Repository

// Repository defines the interface for donation bank persistence
type Repository interface {
	// CreateBank stores a new bank, failing if the name is taken
	CreateBank(ctx context.Context, input *SaveBankInput) error

	// SaveBank stores or overwrites a bank
	SaveBank(ctx context.Context, input *SaveBankInput) error

	// GetBank retrieves a bank by case-insensitive name
	GetBank(ctx context.Context, input *GetBankInput) (*models.Bank, error)

	// ListBanks retrieves every bank of a guild ordered by name
	ListBanks(ctx context.Context, input *ListBanksInput) ([]*models.Bank, error)

	// DeleteBank removes a bank
	DeleteBank(ctx context.Context, input *DeleteBankInput) error

	// DeleteGuild removes every bank of a guild
	DeleteGuild(ctx context.Context, input *DeleteGuildInput) error
}
