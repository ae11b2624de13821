package devlog

import (
	"context"

	"github.com/KirkDiggler/noobcogs/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/noobcogs/internal/repositories/devlog Repository

// Repository archives logged developer commands
type Repository interface {
	// Save stores an entry and fills in its ID
	Save(ctx context.Context, input *SaveInput) error

	// Recent returns the newest entries first
	Recent(ctx context.Context, input *RecentInput) ([]*models.DevLogEntry, error)

	// Close releases the database
	Close() error
}
